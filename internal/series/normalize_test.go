package series

import (
	"errors"
	"strings"
	"testing"

	"StockDashboard/internal/customerrors"

	"github.com/tidwall/gjson"
)

const dailyPayload = `{
    "Meta Data": {
        "1. Information": "Daily Prices (open, high, low, close) and Volumes",
        "2. Symbol": "IBM",
        "3. Last Refreshed": "2024-03-08",
        "4. Output Size": "Compact",
        "5. Time Zone": "US/Eastern"
    },
    "Time Series (Daily)": {
        "2024-03-08": {"1. open": "195.0", "2. high": "197.5", "3. low": "194.0", "4. close": "196.2", "5. volume": "4000000"},
        "2024-03-07": {"1. open": "193.1", "2. high": "195.9", "3. low": "192.7", "4. close": "195.0", "5. volume": "3500000"},
        "2024-03-06": {"1. open": "192.0", "2. high": "193.9", "3. low": "191.4", "4. close": "193.1", "5. volume": "3000000"}
    }
}`

func TestNormalize_AscendingOrder(t *testing.T) {
	res, err := Normalize([]byte(dailyPayload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Symbol != "IBM" || res.LastRefreshed != "2024-03-08" {
		t.Errorf("meta data not read: symbol=%q refreshed=%q", res.Symbol, res.LastRefreshed)
	}
	if len(res.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(res.Points))
	}
	for i := 1; i < len(res.Points); i++ {
		if !res.Points[i-1].Date.Before(res.Points[i].Date) {
			t.Errorf("points not strictly ascending at %d: %s >= %s",
				i, res.Points[i-1].Date, res.Points[i].Date)
		}
	}
	first := res.Points[0]
	if first.Open != 192.0 || first.High != 193.9 || first.Low != 191.4 || first.Close != 193.1 || first.Volume != 3000000 {
		t.Errorf("unexpected first point: %+v", first)
	}
	if res.Empty || res.Skipped != 0 || res.Inconsistent != 0 {
		t.Errorf("unexpected flags: empty=%v skipped=%d inconsistent=%d", res.Empty, res.Skipped, res.Inconsistent)
	}
}

func TestNormalize_SkipsMalformedPoints(t *testing.T) {
	payload := `{"Time Series (Daily)": {
        "2024-03-08": {"1. open": "10", "2. high": "12", "3. low": "9", "4. close": "11"},
        "2024-03-07": {"1. open": "10", "2. high": "abc", "3. low": "9", "4. close": "11"},
        "2024-03-06": {"1. open": "10", "2. high": "12", "3. low": "9"},
        "not-a-date": {"1. open": "10", "2. high": "12", "3. low": "9", "4. close": "11"},
        "2024-03-05": {"1. open": "10", "2. high": "12", "3. low": "9", "4. close": "10.5"}
    }}`
	res, err := Normalize([]byte(payload))
	if err != nil {
		t.Fatalf("one bad point must not abort the series: %v", err)
	}
	if len(res.Points) != 2 {
		t.Fatalf("expected 2 surviving points, got %d", len(res.Points))
	}
	if res.Skipped != 3 {
		t.Errorf("expected 3 skipped points, got %d (%v)", res.Skipped, res.SkippedDates)
	}
	if res.Points[0].Close != 10.5 || res.Points[1].Close != 11 {
		t.Errorf("unexpected closes: %v", res.Closes())
	}
}

func TestNormalize_SameDayInTwoFormats(t *testing.T) {
	payload := `{"Time Series (Daily)": {
        "2024-03-08": {"1. open": "10", "2. high": "12", "3. low": "9", "4. close": "11"},
        "2024-03-08 00:00:00": {"1. open": "20", "2. high": "22", "3. low": "19", "4. close": "21"},
        "2024-03-07": {"1. open": "10", "2. high": "12", "3. low": "9", "4. close": "10"}
    }}`
	res, err := Normalize([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Points) != 2 || res.Skipped != 1 {
		t.Fatalf("expected 2 points and 1 skipped, got points=%d skipped=%d", len(res.Points), res.Skipped)
	}
	for i := 1; i < len(res.Points); i++ {
		if !res.Points[i-1].Date.Before(res.Points[i].Date) {
			t.Errorf("points not strictly ascending at %d: %s then %s", i, res.Points[i-1].Date, res.Points[i].Date)
		}
	}
	if res.Points[1].Close != 11 {
		t.Errorf("expected the first record for 2024-03-08 to win, got close %v", res.Points[1].Close)
	}
	if len(res.SkippedDates) != 1 || res.SkippedDates[0] != "2024-03-08 00:00:00" {
		t.Errorf("unexpected skipped dates %v", res.SkippedDates)
	}
}

func TestNormalize_CountsInconsistentPoints(t *testing.T) {
	payload := `{"Time Series (Daily)": {
        "2024-03-08": {"1. open": "10", "2. high": "9", "3. low": "8", "4. close": "9.5"}
    }}`
	res, err := Normalize([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Inconsistent != 1 || len(res.Points) != 1 {
		t.Errorf("expected point kept and flagged, got points=%d inconsistent=%d", len(res.Points), res.Inconsistent)
	}
}

func TestNormalize_EmptySeries(t *testing.T) {
	res, err := Normalize([]byte(`{"Meta Data": {"2. Symbol": "X"}, "Time Series (Daily)": {}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Empty || res.Len() != 0 {
		t.Errorf("expected empty series, got %+v", res)
	}
}

func TestNormalize_ProviderMessages(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		field   string
	}{
		{"rate limit note", `{"Note": "Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute."}`, "Note"},
		{"invalid symbol", `{"Error Message": "Invalid API call. Please retry or visit the documentation."}`, "Error Message"},
		{"premium information", `{"Information": "This is a premium endpoint."}`, "Information"},
		{"missing time series", `{"Meta Data": {"2. Symbol": "IBM"}}`, ""},
		{"note next to meta data", `{"Meta Data": {"2. Symbol": "IBM"}, "Note": "call frequency exceeded"}`, "Note"},
		{"not an object", `[1, 2, 3]`, ""},
		{"not json", `<html>busy</html>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Normalize([]byte(tt.payload))
			if res != nil {
				t.Errorf("expected no series, got %+v", res)
			}
			if !errors.Is(err, customerrors.ErrProvider) {
				t.Fatalf("expected ErrProvider, got %v", err)
			}
			if errors.Is(err, customerrors.ErrEmptySeries) {
				t.Error("provider message must not look like an empty series")
			}
			var pe *customerrors.ProviderError
			if errors.As(err, &pe) && pe.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, pe.Field)
			}
			if tt.field == "Note" && !strings.Contains(err.Error(), "call frequency") {
				t.Errorf("expected the provider text in %q", err.Error())
			}
		})
	}
}

func TestClassify_NoticeAlongsideData(t *testing.T) {
	root, err := Classify([]byte(`{"Information": "delayed data", "Symbol": "IBM"}`))
	if err != nil {
		t.Fatalf("notice next to data should pass, got %v", err)
	}
	if root.Get("Symbol").String() != "IBM" {
		t.Errorf("unexpected root: %s", root.Raw)
	}
}

func TestParsePoint_Malformed(t *testing.T) {
	tests := []struct {
		date   string
		record string
	}{
		{"2024-13-01", `{"1. open": "1", "2. high": "1", "3. low": "1", "4. close": "1"}`},
		{"2024-03-01", `"oops"`},
		{"2024-03-01", `{"1. open": "1", "2. high": "1", "3. low": "1", "4. close": null}`},
		{"2024-03-01", `{"1. open": "NaN", "2. high": "1", "3. low": "1", "4. close": "1"}`},
	}
	for _, tt := range tests {
		_, err := ParsePoint(tt.date, gjson.Parse(tt.record))
		if !errors.Is(err, customerrors.ErrMalformedRecord) {
			t.Errorf("ParsePoint(%s, %s): expected ErrMalformedRecord, got %v", tt.date, tt.record, err)
		}
	}
}

func TestFieldName(t *testing.T) {
	tests := map[string]string{
		"1. open":           "open",
		"4. close":          "close",
		"5. adjusted close": "adjusted close",
		"3. Last Refreshed": "last refreshed",
		"close":             "close",
	}
	for in, want := range tests {
		if got := fieldName(in); got != want {
			t.Errorf("fieldName(%q) = %q, want %q", in, got, want)
		}
	}
}
