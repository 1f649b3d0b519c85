package calculator

import (
	"errors"
	"fmt"
	"math"

	"StockDashboard/internal/customerrors"
	"StockDashboard/internal/model"
)

// Trading-day windows for the range indicators.
const (
	Window52Week = 252
	Window30Day  = 22
)

// HighLow returns the highest high and lowest low over the last window points.
// Shorter series are scanned in full.
func HighLow(points []model.PricePoint, window int) (high, low float64, err error) {
	if len(points) == 0 {
		return 0, 0, fmt.Errorf("high/low: %w", customerrors.ErrInsufficientData)
	}
	if window <= 0 {
		return 0, 0, errors.New("window must be positive")
	}
	high, low = math.Inf(-1), math.Inf(1)
	for _, p := range points[max(0, len(points)-window):] {
		high = math.Max(high, p.High)
		low = math.Min(low, p.Low)
	}
	return high, low, nil
}

// Calculate52WeekRange returns the high and low of the most recent 252 trading days.
func Calculate52WeekRange(points []model.PricePoint) (high, low float64, err error) {
	return HighLow(points, Window52Week)
}

// Calculate30DayRange returns the high and low of the most recent 22 trading days.
func Calculate30DayRange(points []model.PricePoint) (high, low float64, err error) {
	return HighLow(points, Window30Day)
}

// Calculate52WeekPosition places current within [low, high], clamped to 0..1.
// A flat range sits at 0.5.
func Calculate52WeekPosition(current, high, low float64) (float64, error) {
	switch {
	case high < low:
		return 0, errors.New("high must be >= low")
	case high == low:
		return 0.5, nil
	}
	return math.Min(1, math.Max(0, (current-low)/(high-low))), nil
}
