package series

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"StockDashboard/internal/customerrors"
	"StockDashboard/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	timeSeriesPrefix = "Time Series"
	metaDataKey      = "Meta Data"
	intradayLayout   = "2006-01-02 15:04:05"
)

// Top-level keys the provider uses instead of data when it refuses a request.
// All of them arrive with HTTP 200.
var messageFields = []string{"Error Message", "Note", "Information"}

// Classify checks the payload shape and returns the parsed root object.
// A body that is not a JSON object, carries "Error Message", or consists only of
// provider notices yields a *customerrors.ProviderError.
func Classify(raw []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, &customerrors.ProviderError{Message: "malformed JSON response"}
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return gjson.Result{}, &customerrors.ProviderError{Message: "unexpected response shape"}
	}

	if v := root.Get("Error Message"); v.Exists() {
		return gjson.Result{}, &customerrors.ProviderError{Field: "Error Message", Message: v.String()}
	}

	var keys, notices int
	root.ForEach(func(key, _ gjson.Result) bool {
		keys++
		if isMessageField(key.String()) {
			notices++
		}
		return true
	})
	if notices > 0 && notices == keys {
		return gjson.Result{}, firstNotice(root)
	}
	return root, nil
}

// firstNotice returns the first provider message field in root, or nil.
func firstNotice(root gjson.Result) *customerrors.ProviderError {
	var notice *customerrors.ProviderError
	root.ForEach(func(key, value gjson.Result) bool {
		if isMessageField(key.String()) {
			notice = &customerrors.ProviderError{Field: key.String(), Message: value.String()}
			return false
		}
		return true
	})
	return notice
}

func isMessageField(key string) bool {
	for _, f := range messageFields {
		if key == f {
			return true
		}
	}
	return false
}

// Normalize parses a daily time-series payload into an ascending SeriesResult.
// Points that fail ParsePoint are skipped and counted; a payload without any
// time-series object is a provider error.
func Normalize(raw []byte) (*model.SeriesResult, error) {
	root, err := Classify(raw)
	if err != nil {
		return nil, err
	}

	var ts gjson.Result
	root.ForEach(func(key, value gjson.Result) bool {
		if strings.HasPrefix(key.String(), timeSeriesPrefix) && value.IsObject() {
			ts = value
			return false
		}
		return true
	})
	if !ts.Exists() {
		if notice := firstNotice(root); notice != nil {
			return nil, notice
		}
		return nil, &customerrors.ProviderError{Message: "response has no time series"}
	}

	res := &model.SeriesResult{}
	root.Get(metaDataKey).ForEach(func(key, value gjson.Result) bool {
		switch fieldName(key.String()) {
		case "symbol":
			res.Symbol = value.String()
		case "last refreshed":
			res.LastRefreshed = value.String()
		}
		return true
	})

	// keyed on the parsed date: "2024-03-08" and "2024-03-08 00:00:00" are the same day
	seen := make(map[int64]bool)
	ts.ForEach(func(key, record gjson.Result) bool {
		date := key.String()
		p, err := ParsePoint(date, record)
		if err != nil {
			log.Debug().Err(err).Str("symbol", res.Symbol).Msg("skip point")
			res.Skipped++
			res.SkippedDates = append(res.SkippedDates, date)
			return true
		}
		if seen[p.Date.Unix()] {
			log.Debug().Str("symbol", res.Symbol).Str("date", date).Msg("skip duplicate date")
			res.Skipped++
			res.SkippedDates = append(res.SkippedDates, date)
			return true
		}
		seen[p.Date.Unix()] = true

		if !p.Consistent() {
			res.Inconsistent++
		}
		res.Points = append(res.Points, p)
		return true
	})

	sort.Slice(res.Points, func(i, j int) bool { return res.Points[i].Date.Before(res.Points[j].Date) })
	res.Empty = len(res.Points) == 0

	if res.Skipped > 0 || res.Inconsistent > 0 {
		log.Warn().
			Str("symbol", res.Symbol).
			Int("points", len(res.Points)).
			Int("skipped", res.Skipped).
			Int("inconsistent", res.Inconsistent).
			Msg("series normalized with issues")
	}
	return res, nil
}

// ParsePoint converts one per-date record ({"1. open": "...", ...}) into a PricePoint.
// Missing or non-numeric open/high/low/close fields fail with ErrMalformedRecord;
// volume is optional.
func ParsePoint(date string, record gjson.Result) (model.PricePoint, error) {
	t, err := parseDate(date)
	if err != nil {
		return model.PricePoint{}, fmt.Errorf("%w: date %q: %v", customerrors.ErrMalformedRecord, date, err)
	}
	if !record.IsObject() {
		return model.PricePoint{}, fmt.Errorf("%w: %s: record is not an object", customerrors.ErrMalformedRecord, date)
	}

	fields := make(map[string]string, 5)
	record.ForEach(func(key, value gjson.Result) bool {
		fields[fieldName(key.String())] = value.String()
		return true
	})

	p := model.PricePoint{Date: t}
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"open", &p.Open},
		{"high", &p.High},
		{"low", &p.Low},
		{"close", &p.Close},
	} {
		v, err := parsePrice(fields[f.name])
		if err != nil {
			return model.PricePoint{}, fmt.Errorf("%w: %s %s: %v", customerrors.ErrMalformedRecord, date, f.name, err)
		}
		*f.dst = v
	}
	if v, err := parsePrice(fields["volume"]); err == nil {
		p.Volume = v
	}
	return p, nil
}

// fieldName strips the provider's ordinal prefix: "1. open" -> "open".
func fieldName(key string) string {
	if i := strings.Index(key, ". "); i >= 0 {
		if _, err := strconv.Atoi(key[:i]); err == nil {
			key = key[i+2:]
		}
	}
	return strings.ToLower(strings.TrimSpace(key))
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(model.DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(intradayLayout, s)
}

func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}
