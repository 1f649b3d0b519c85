package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StockDashboard/internal/customerrors"
	"StockDashboard/internal/model"
)

const compactAAPL = `{
    "Meta Data": {"2. Symbol": "AAPL", "3. Last Refreshed": "2024-03-08"},
    "Time Series (Daily)": {
        "2024-03-08": {"1. open": "104", "2. high": "106", "3. low": "102", "4. close": "103", "5. volume": "10"},
        "2024-03-07": {"1. open": "101", "2. high": "106", "3. low": "100", "4. close": "105", "5. volume": "10"},
        "2024-03-06": {"1. open": "102", "2. high": "103", "3. low": "100", "4. close": "101", "5. volume": "10"},
        "2024-03-05": {"1. open": "100", "2. high": "103", "3. low": "99", "4. close": "102", "5. volume": "10"},
        "2024-03-04": {"1. open": "99", "2. high": "101", "3. low": "98", "4. close": "100", "5. volume": "10"}
    }
}`

// newProvider serves body with status for every request and records the last query.
func newProvider(t *testing.T, status int, body string, lastQuery *map[string]string) *AlphaVantageFetcher {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastQuery != nil {
			q := map[string]string{}
			for k := range r.URL.Query() {
				q[k] = r.URL.Query().Get(k)
			}
			*lastQuery = q
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewAlphaVantageFetcher(srv.URL, "test-key", "", 5*time.Second)
}

func TestFetchDaily_ParsesAndOrders(t *testing.T) {
	var q map[string]string
	f := newProvider(t, http.StatusOK, compactAAPL, &q)

	res, err := f.FetchDaily(context.Background(), "AAPL", model.Compact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q["function"] != "TIME_SERIES_DAILY" || q["symbol"] != "AAPL" || q["apikey"] != "test-key" || q["outputsize"] != "compact" {
		t.Errorf("unexpected query: %v", q)
	}
	want := []float64{100, 102, 101, 105, 103}
	got := res.Closes()
	if len(got) != len(want) {
		t.Fatalf("expected %d closes, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("close[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFetchDaily_ErrorPayloadIsProviderError(t *testing.T) {
	payloads := map[string]string{
		"note":          `{"Note": "Thank you for using Alpha Vantage! Our standard API call frequency is 25 requests per day."}`,
		"error message": `{"Error Message": "Invalid API call."}`,
		"information":   `{"Information": "The **demo** API key is for demo purposes only."}`,
	}
	for name, body := range payloads {
		t.Run(name, func(t *testing.T) {
			f := newProvider(t, http.StatusOK, body, nil)
			res, err := f.FetchDaily(context.Background(), "AAPL", model.Full)
			if res != nil {
				t.Errorf("expected no series, got %+v", res)
			}
			if !errors.Is(err, customerrors.ErrProvider) {
				t.Fatalf("expected ErrProvider, got %v", err)
			}
			if errors.Is(err, customerrors.ErrEmptySeries) {
				t.Error("error payload must not be reported as an empty series")
			}
		})
	}
}

func TestFetchDaily_EmptySeries(t *testing.T) {
	f := newProvider(t, http.StatusOK, `{"Meta Data": {}, "Time Series (Daily)": {}}`, nil)
	_, err := f.FetchDaily(context.Background(), "ZZZZ", model.Compact)
	if !errors.Is(err, customerrors.ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
}

func TestFetchDaily_HTTPStatusIsProviderError(t *testing.T) {
	f := newProvider(t, http.StatusInternalServerError, "upstream down", nil)
	_, err := f.FetchDaily(context.Background(), "AAPL", model.Compact)
	var pe *customerrors.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
	if pe.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", pe.Status)
	}
}

func TestFetchDaily_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f := NewAlphaVantageFetcher(url, "k", "", time.Second)
	_, err := f.FetchDaily(context.Background(), "AAPL", model.Compact)
	if !errors.Is(err, customerrors.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if errors.Is(err, customerrors.ErrProvider) {
		t.Error("network failure must not be reported as provider error")
	}
}

func TestFetchOverview(t *testing.T) {
	var q map[string]string
	f := newProvider(t, http.StatusOK, `{"Symbol": "IBM", "Name": "International Business Machines", "PERatio": "22.1"}`, &q)
	rec, err := f.FetchOverview(context.Background(), "IBM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q["function"] != "OVERVIEW" || q["symbol"] != "IBM" {
		t.Errorf("unexpected query: %v", q)
	}
	if rec["Name"] != "International Business Machines" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestFetchOverview_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown symbol", `{}`, customerrors.ErrEmptySeries},
		{"rate limited", `{"Note": "call frequency exceeded"}`, customerrors.ErrProvider},
		{"garbage", `not json`, customerrors.ErrProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProvider(t, http.StatusOK, tt.body, nil)
			_, err := f.FetchOverview(context.Background(), "XYZ")
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
