package collector

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"StockDashboard/internal/calculator"
	"StockDashboard/internal/customerrors"
	"StockDashboard/internal/model"
	"StockDashboard/internal/trace"
)

// MockFetcher returns controllable fixed data for development and testing.
// Symbols without an entry in Series get a generated series around Price.
type MockFetcher struct {
	Price     float64
	Count     int
	Overviews map[string]model.OverviewRecord
	Series    map[string]*model.SeriesResult
	Errs      map[string]error
	Calls     []string

	mu sync.Mutex
}

func (m *MockFetcher) record(call string) {
	m.mu.Lock()
	m.Calls = append(m.Calls, call)
	m.mu.Unlock()
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchOverview(_ context.Context, symbol string) (model.OverviewRecord, error) {
	m.record("overview:" + symbol)
	if err := m.Errs[symbol]; err != nil {
		return nil, err
	}
	if rec, ok := m.Overviews[symbol]; ok {
		return rec, nil
	}
	return model.OverviewRecord{"Symbol": symbol, "Name": symbol + " Inc."}, nil
}

func (m *MockFetcher) FetchDaily(_ context.Context, symbol string, size model.OutputSize) (*model.SeriesResult, error) {
	m.record("daily:" + symbol + ":" + string(size))
	if err := m.Errs[symbol]; err != nil {
		return nil, err
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	count := m.Count
	if count == 0 {
		count = 30
	}
	return GenerateMockSeries(symbol, m.Price, count), nil
}

// GenerateMockSeries builds a deterministic ascending series of count points.
func GenerateMockSeries(symbol string, basePrice float64, count int) *model.SeriesResult {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		points[i] = model.PricePoint{
			Date:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return &model.SeriesResult{Symbol: symbol, Points: points, Empty: count == 0}
}

// CleanSymbol trims and upper-cases a ticker; blank input is invalid.
func CleanSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return "", fmt.Errorf("%w: ticker symbol is required", customerrors.ErrInvalidInput)
	}
	return s, nil
}

// Collector is the single entry point pages use to reach the data provider.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Overview fetches the company overview for symbol.
func (c *Collector) Overview(ctx context.Context, symbol string) (model.OverviewRecord, error) {
	symbol, err := CleanSymbol(symbol)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rec, err := c.Fetcher.FetchOverview(ctx, symbol)
	logger := trace.Logger(ctx)
	if err != nil {
		logger.Error().Err(err).Str("symbol", symbol).Str("kind", customerrors.Kind(err)).Msg("fetch overview")
		return nil, err
	}
	logger.Info().Str("symbol", symbol).Int("fields", len(rec)).Dur("took", time.Since(start)).Msg("overview fetched")
	return rec, nil
}

// Daily fetches and normalizes the daily series for symbol.
func (c *Collector) Daily(ctx context.Context, symbol string, size model.OutputSize) (*model.SeriesResult, error) {
	symbol, err := CleanSymbol(symbol)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	res, err := c.Fetcher.FetchDaily(ctx, symbol, size)
	logger := trace.Logger(ctx)
	if err != nil {
		logger.Error().Err(err).Str("symbol", symbol).Str("kind", customerrors.Kind(err)).Msg("fetch daily")
		return nil, err
	}
	logger.Info().
		Str("symbol", symbol).
		Str("size", string(size)).
		Int("points", res.Len()).
		Int("skipped", res.Skipped).
		Dur("took", time.Since(start)).
		Msg("daily series fetched")
	return res, nil
}

// Analyze computes the analysis-page indicators. An indicator without enough
// history falls back to a neutral value and is logged, never failing the page.
func (c *Collector) Analyze(ctx context.Context, s *model.SeriesResult) (*model.AnalysisSummary, error) {
	if s.Len() == 0 {
		return nil, fmt.Errorf("analyze: %w", customerrors.ErrInsufficientData)
	}
	logger := trace.Logger(ctx)
	last := s.Points[len(s.Points)-1].Close
	sum := &model.AnalysisSummary{Symbol: s.Symbol, Points: s.Len(), LastClose: last}

	for _, ma := range []struct {
		period int
		dst    *float64
	}{
		{20, &sum.MA20},
		{50, &sum.MA50},
		{200, &sum.MA200},
	} {
		v, err := calculator.CalculateMovingAverage(s.Points, ma.period)
		if err != nil {
			logger.Warn().Err(err).Int("period", ma.period).Msg("moving average unavailable, using last close")
			v = last
		}
		*ma.dst = v
	}

	if rsi, err := calculator.CalculateRSI(s.Points, 14); err != nil {
		logger.Warn().Err(err).Msg("rsi unavailable, defaulting to 50")
		sum.RSI14 = 50
	} else {
		sum.RSI14 = rsi
	}

	// ranges cannot fail on a non-empty series
	sum.High52w, sum.Low52w, _ = calculator.Calculate52WeekRange(s.Points)
	sum.High30d, sum.Low30d, _ = calculator.Calculate30DayRange(s.Points)

	if pos, err := calculator.Calculate52WeekPosition(last, sum.High52w, sum.Low52w); err != nil {
		logger.Warn().Err(err).Msg("52-week position unavailable")
		sum.Position52w = 0.5
	} else {
		sum.Position52w = pos
	}
	return sum, nil
}
