package calculator

import (
	"errors"
	"fmt"

	"StockDashboard/internal/customerrors"
	"StockDashboard/internal/model"
)

// CalculateSMA computes the simple moving average of the last period prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, fmt.Errorf("sma(%d) over %d prices: %w", period, len(prices), customerrors.ErrInsufficientData)
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// CalculateMovingAverage returns the period-day SMA of closes from ascending points.
func CalculateMovingAverage(points []model.PricePoint, period int) (float64, error) {
	return CalculateSMA(extractCloses(points), period)
}

func extractCloses(points []model.PricePoint) []float64 {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Close
	}
	return closes
}
