package collector

import (
	"context"

	"StockDashboard/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchOverview(ctx context.Context, symbol string) (model.OverviewRecord, error)
	FetchDaily(ctx context.Context, symbol string, size model.OutputSize) (*model.SeriesResult, error)
	Name() string
}
