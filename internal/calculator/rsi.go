package calculator

import (
	"errors"
	"fmt"

	"StockDashboard/internal/customerrors"
	"StockDashboard/internal/model"
)

// CalculateRSI computes the Wilder-smoothed RSI of closes over period.
// It needs period+1 points.
func CalculateRSI(points []model.PricePoint, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(points) < period+1 {
		return 0, fmt.Errorf("rsi(%d) over %d points: %w", period, len(points), customerrors.ErrInsufficientData)
	}

	closes := extractCloses(points)
	n := float64(period)

	// seed with the simple average of the first period changes
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		gain, loss := split(closes[i] - closes[i-1])
		avgGain += gain / n
		avgLoss += loss / n
	}

	for i := period + 1; i < len(closes); i++ {
		gain, loss := split(closes[i] - closes[i-1])
		avgGain = (avgGain*(n-1) + gain) / n
		avgLoss = (avgLoss*(n-1) + loss) / n
	}

	if avgLoss == 0 {
		return 100, nil
	}
	return 100 - 100/(1+avgGain/avgLoss), nil
}

func split(change float64) (gain, loss float64) {
	if change > 0 {
		return change, 0
	}
	return 0, -change
}
