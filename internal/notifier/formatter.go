package notifier

import (
	"errors"
	"fmt"
	"strings"

	"StockDashboard/internal/customerrors"
	"StockDashboard/internal/model"
)

// FormatSuggestion renders the one-line recommendation shown on the suggestions page.
func FormatSuggestion(s model.Suggestion) string {
	switch s.Action {
	case model.ActionBuy:
		return fmt.Sprintf("Consider buying %s.", s.Symbol)
	case model.ActionSell:
		return fmt.Sprintf("Consider selling %s.", s.Symbol)
	default:
		return fmt.Sprintf("Not enough price history to make a suggestion for %s.", s.Symbol)
	}
}

// FormatError maps err onto a message for its error class. Provider errors carry
// the provider's own text.
func FormatError(err error, symbols ...string) string {
	if err == nil {
		return ""
	}
	subject := "the requested symbol"
	if len(symbols) > 0 {
		subject = strings.Join(symbols, " and ")
	}

	switch customerrors.Kind(err) {
	case "network":
		return "Could not reach the market data provider. Check your connection and try again."
	case "provider":
		msg := "The market data provider rejected the request"
		var pe *customerrors.ProviderError
		if errors.As(err, &pe) && pe.Message != "" {
			return fmt.Sprintf("%s: %s", msg, pe.Message)
		}
		return msg + "."
	case "empty":
		return fmt.Sprintf("No data available for %s. Check the ticker symbol.", subject)
	case "insufficient":
		return fmt.Sprintf("Not enough data to build this chart for %s.", subject)
	case "invalid":
		return "Invalid request: " + strings.Replace(err.Error(), customerrors.ErrInvalidInput.Error()+": ", "", 1)
	case "malformed":
		return fmt.Sprintf("The provider returned unreadable data for %s.", subject)
	default:
		return "Something went wrong while preparing this page. Please try again later."
	}
}

// FormatAnalysis renders the indicator block shown under the analysis chart.
func FormatAnalysis(sum *model.AnalysisSummary) string {
	if sum == nil {
		return ""
	}
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s | %d trading days\n", sum.Symbol, sum.Points))
	b.WriteString(fmt.Sprintf("Last close: %.2f\n", sum.LastClose))

	dev := 0.0
	if sum.MA200 > 0 {
		dev = (sum.LastClose - sum.MA200) / sum.MA200 * 100
	}
	b.WriteString(fmt.Sprintf("MA20: %.2f | MA50: %.2f | MA200: %.2f (%+.1f%%)\n", sum.MA20, sum.MA50, sum.MA200, dev))
	b.WriteString(fmt.Sprintf("RSI(14): %.1f\n", sum.RSI14))
	b.WriteString(fmt.Sprintf("52-week range: %.2f - %.2f (position %.0f%%)\n", sum.Low52w, sum.High52w, sum.Position52w*100))
	b.WriteString(fmt.Sprintf("30-day range: %.2f - %.2f", sum.Low30d, sum.High30d))
	return b.String()
}
