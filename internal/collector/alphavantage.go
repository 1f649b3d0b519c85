package collector

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"StockDashboard/internal/customerrors"
	"StockDashboard/internal/model"
	"StockDashboard/internal/series"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultAlphaVantageURL = "https://www.alphavantage.co/query"

	functionOverview   = "OVERVIEW"
	functionDaily      = "TIME_SERIES_DAILY"
	maxErrorBodyLength = 300
)

// AlphaVantageFetcher implements Fetcher using the Alpha Vantage query API.
// Every call is a single GET; nothing is retried.
type AlphaVantageFetcher struct {
	BaseURL string
	APIKey  string
	Client  *resty.Client
}

// NewAlphaVantageFetcher creates a fetcher with optional proxy support.
func NewAlphaVantageFetcher(baseURL, apiKey, proxyURL string, timeout time.Duration) *AlphaVantageFetcher {
	if baseURL == "" {
		baseURL = DefaultAlphaVantageURL
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "StockDashboard/1.0")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &AlphaVantageFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  client,
	}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

func (f *AlphaVantageFetcher) FetchOverview(ctx context.Context, symbol string) (model.OverviewRecord, error) {
	body, err := f.query(ctx, map[string]string{
		"function": functionOverview,
		"symbol":   symbol,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch overview %s: %w", symbol, err)
	}
	root, err := series.Classify(body)
	if err != nil {
		return nil, fmt.Errorf("fetch overview %s: %w", symbol, err)
	}
	// Unknown symbols come back as an empty object.
	rec, ok := root.Value().(map[string]interface{})
	if !ok || len(rec) == 0 {
		return nil, fmt.Errorf("fetch overview %s: %w", symbol, customerrors.ErrEmptySeries)
	}
	return model.OverviewRecord(rec), nil
}

func (f *AlphaVantageFetcher) FetchDaily(ctx context.Context, symbol string, size model.OutputSize) (*model.SeriesResult, error) {
	body, err := f.query(ctx, map[string]string{
		"function":   functionDaily,
		"symbol":     symbol,
		"outputsize": string(size),
		"datatype":   "json",
	})
	if err != nil {
		return nil, fmt.Errorf("fetch daily %s: %w", symbol, err)
	}
	res, err := series.Normalize(body)
	if err != nil {
		return nil, fmt.Errorf("fetch daily %s: %w", symbol, err)
	}
	if res.Symbol == "" {
		res.Symbol = symbol
	}
	if res.Empty {
		return nil, fmt.Errorf("fetch daily %s: %w", symbol, customerrors.ErrEmptySeries)
	}
	return res, nil
}

func (f *AlphaVantageFetcher) query(ctx context.Context, params map[string]string) ([]byte, error) {
	params["apikey"] = f.APIKey
	resp, err := f.Client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(f.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", customerrors.ErrNetwork, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &customerrors.ProviderError{
			Status:  resp.StatusCode(),
			Message: truncate(resp.String(), maxErrorBodyLength),
		}
	}
	return resp.Body(), nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
