package model

// Action is the outcome of the suggestion engine.
type Action string

const (
	ActionBuy    Action = "BUY"
	ActionSell   Action = "SELL"
	ActionNoData Action = "NO_DATA"
)

// Suggestion is the buy/sell recommendation for one ticker.
type Suggestion struct {
	Symbol        string  `json:"symbol"`
	Action        Action  `json:"action"`
	LastClose     float64 `json:"last_close,omitempty"`
	PreviousClose float64 `json:"previous_close,omitempty"`
}
