package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the provider's calendar date format, also used for chart x values.
const DateLayout = "2006-01-02"

// PricePoint represents a single daily bar.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Consistent reports whether Low <= Open, Close <= High holds.
func (p PricePoint) Consistent() bool {
	return p.Low <= p.Open && p.Low <= p.Close && p.Open <= p.High && p.Close <= p.High
}

// SeriesResult holds one normalized time series, ascending by date.
type SeriesResult struct {
	Symbol        string       `json:"symbol"`
	LastRefreshed string       `json:"last_refreshed,omitempty"`
	Points        []PricePoint `json:"points"`
	Skipped       int          `json:"skipped"`
	SkippedDates  []string     `json:"skipped_dates,omitempty"`
	Inconsistent  int          `json:"inconsistent"`
	Empty         bool         `json:"empty"`
}

// Len returns the number of points, treating a nil series as empty.
func (s *SeriesResult) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Points)
}

// Closes returns the close prices in series order.
func (s *SeriesResult) Closes() []float64 {
	closes := make([]float64, s.Len())
	for i := range closes {
		closes[i] = s.Points[i].Close
	}
	return closes
}

// Dates returns the point dates formatted with DateLayout.
func (s *SeriesResult) Dates() []string {
	dates := make([]string, s.Len())
	for i := range dates {
		dates[i] = s.Points[i].Date.Format(DateLayout)
	}
	return dates
}

// OverviewRecord is company metadata exactly as the provider returned it.
type OverviewRecord map[string]any

// OutputSize selects how much history the provider returns.
type OutputSize string

const (
	Full    OutputSize = "full"
	Compact OutputSize = "compact"
)

// ParseOutputSize accepts "full" or "compact"; empty input yields def.
func ParseOutputSize(s string, def OutputSize) (OutputSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case string(Full):
		return Full, nil
	case string(Compact):
		return Compact, nil
	}
	return "", fmt.Errorf("unknown range %q", s)
}
