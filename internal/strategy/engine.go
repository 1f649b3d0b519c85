package strategy

import "StockDashboard/internal/model"

// MinPoints is the shortest history Suggest can judge.
const MinPoints = 2

// Suggest compares the two most recent closes. A rise means Buy; a fall or an
// unchanged close means Sell. There is no threshold and no smoothing.
func Suggest(symbol string, series *model.SeriesResult) model.Suggestion {
	s := model.Suggestion{Symbol: symbol, Action: model.ActionNoData}
	if symbol == "" && series != nil {
		s.Symbol = series.Symbol
	}
	if series.Len() < MinPoints {
		return s
	}

	n := len(series.Points)
	s.LastClose = series.Points[n-1].Close
	s.PreviousClose = series.Points[n-2].Close
	if s.LastClose > s.PreviousClose {
		s.Action = model.ActionBuy
	} else {
		s.Action = model.ActionSell
	}
	return s
}
