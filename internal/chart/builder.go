package chart

import (
	"fmt"
	"slices"

	"StockDashboard/internal/customerrors"
	"StockDashboard/internal/model"
)

const (
	CompareTitle  = "Stock Price Comparison"
	scatterMarker = 5
	barHeight     = 400
)

// Request describes one chart. Secondary is nil for single-series pages.
type Request struct {
	Kind           model.ChartKind
	Primary        *model.SeriesResult
	Secondary      *model.SeriesResult
	Palette        model.Palette
	PrimaryLabel   string
	SecondaryLabel string
}

// Build constructs the chart for req. It refuses to build anything from an empty
// or missing series rather than render a partial chart.
func Build(req Request) (*model.ChartSpec, error) {
	if !slices.Contains(model.ChartKinds, req.Kind) {
		return nil, fmt.Errorf("%w: unsupported chart kind %q", customerrors.ErrInvalidInput, req.Kind)
	}
	if req.Primary.Len() == 0 {
		return nil, fmt.Errorf("build %s: primary series: %w", req.Kind, customerrors.ErrInsufficientData)
	}
	if req.PrimaryLabel == "" {
		req.PrimaryLabel = req.Primary.Symbol
	}

	if req.Secondary == nil {
		if req.Kind != model.KindCandlestick {
			return nil, fmt.Errorf("build %s: second series required: %w", req.Kind, customerrors.ErrInsufficientData)
		}
		return single(req), nil
	}

	if req.Secondary.Len() == 0 {
		return nil, fmt.Errorf("build %s: secondary series: %w", req.Kind, customerrors.ErrInsufficientData)
	}
	if req.SecondaryLabel == "" {
		req.SecondaryLabel = req.Secondary.Symbol
	}

	var spec *model.ChartSpec
	switch req.Kind {
	case model.KindLine:
		spec = compareLine(req)
	case model.KindCandlestick:
		spec = compareCandlestick(req)
	case model.KindBar:
		spec = compareBar(req)
	case model.KindOHLC:
		spec = compareOHLC(req)
	case model.KindScatter3D:
		spec = compareScatter3D(req)
	}
	spec.Kind = req.Kind
	spec.Title = CompareTitle
	spec.Layout.Title = model.Title{Text: CompareTitle}
	return spec, nil
}

func single(req Request) *model.ChartSpec {
	up, down := req.Palette.Colors()
	title := req.PrimaryLabel + " Daily Prices"
	return &model.ChartSpec{
		Kind:  model.KindCandlestick,
		Title: title,
		Data:  []model.Trace{ohlcTrace("candlestick", req.PrimaryLabel, req.Primary, up, down)},
		Layout: model.Layout{
			Title: model.Title{Text: title},
			XAxis: axis("Date"),
			YAxis: axis("Price"),
		},
	}
}

func compareLine(req Request) *model.ChartSpec {
	c1, c2 := req.Palette.Colors()
	return &model.ChartSpec{
		Data: []model.Trace{
			lineTrace(req.PrimaryLabel, req.Primary, c1),
			lineTrace(req.SecondaryLabel, req.Secondary, c2),
		},
		Layout: model.Layout{XAxis: axis("Date"), YAxis: axis("Close")},
	}
}

// compareCandlestick swaps the increasing/decreasing colors on the second trace
// so the two series stay distinguishable.
func compareCandlestick(req Request) *model.ChartSpec {
	c1, c2 := req.Palette.Colors()
	return &model.ChartSpec{
		Data: []model.Trace{
			ohlcTrace("candlestick", req.PrimaryLabel, req.Primary, c1, c2),
			ohlcTrace("candlestick", req.SecondaryLabel, req.Secondary, c2, c1),
		},
		Layout: model.Layout{XAxis: axis("Date"), YAxis: axis("Price")},
	}
}

func compareOHLC(req Request) *model.ChartSpec {
	c1, c2 := req.Palette.Colors()
	return &model.ChartSpec{
		Data: []model.Trace{
			ohlcTrace("ohlc", req.PrimaryLabel, req.Primary, c1, c2),
			ohlcTrace("ohlc", req.SecondaryLabel, req.Secondary, c2, c1),
		},
		Layout: model.Layout{XAxis: axis("Date"), YAxis: axis("Price")},
	}
}

func compareBar(req Request) *model.ChartSpec {
	c1, c2 := req.Palette.Colors()
	return &model.ChartSpec{
		Data: []model.Trace{
			barTrace(req.PrimaryLabel, req.Primary, c1),
			barTrace(req.SecondaryLabel, req.Secondary, c2),
		},
		Layout: model.Layout{
			XAxis:  axis("Date"),
			YAxis:  axis("Stock Price"),
			Height: barHeight,
			Annotations: []model.Annotation{{
				Text: fmt.Sprintf("%s vs. %s", req.PrimaryLabel, req.SecondaryLabel),
				XRef: "paper", YRef: "paper",
				X: 0, Y: 1.08,
			}},
		},
	}
}

// compareScatter3D pairs the two series by position, not by date: point i of the
// primary series is plotted against point i of the secondary one, and the longer
// series is truncated. A warning is attached when that pairing misaligns dates.
func compareScatter3D(req Request) *model.ChartSpec {
	c1, _ := req.Palette.Colors()
	n := min(req.Primary.Len(), req.Secondary.Len())

	x := req.Primary.Dates()[:n]
	y := req.Primary.Closes()[:n]
	z := req.Secondary.Closes()[:n]

	spec := &model.ChartSpec{
		Data: []model.Trace{{
			Type:   "scatter3d",
			Name:   fmt.Sprintf("%s vs. %s", req.PrimaryLabel, req.SecondaryLabel),
			Mode:   "markers",
			X:      x,
			Y:      y,
			Z:      z,
			Marker: &model.Marker{Color: c1, Size: scatterMarker},
		}},
		Layout: model.Layout{
			Scene: &model.Scene{
				XAxis: *axis("Date"),
				YAxis: *axis(req.PrimaryLabel + " Stock Price"),
				ZAxis: *axis(req.SecondaryLabel + " Stock Price"),
			},
		},
	}
	if w := alignmentWarning(req.Primary, req.Secondary); w != "" {
		spec.Warnings = append(spec.Warnings, w)
	}
	return spec
}

func alignmentWarning(a, b *model.SeriesResult) string {
	if a.Len() != b.Len() {
		return fmt.Sprintf("series lengths differ (%d vs %d): points are paired by position and truncated to %d",
			a.Len(), b.Len(), min(a.Len(), b.Len()))
	}
	for i := range a.Points {
		if !a.Points[i].Date.Equal(b.Points[i].Date) {
			return fmt.Sprintf("series dates differ from %s: points are paired by position, not by date",
				a.Points[i].Date.Format(model.DateLayout))
		}
	}
	return ""
}

func lineTrace(name string, s *model.SeriesResult, color string) model.Trace {
	return model.Trace{
		Type: "scatter",
		Name: name,
		Mode: "lines",
		X:    s.Dates(),
		Y:    s.Closes(),
		Line: &model.Line{Color: color},
	}
}

func barTrace(name string, s *model.SeriesResult, color string) model.Trace {
	return model.Trace{
		Type:   "bar",
		Name:   name,
		X:      s.Dates(),
		Y:      s.Closes(),
		Marker: &model.Marker{Color: color},
	}
}

func ohlcTrace(typ, name string, s *model.SeriesResult, up, down string) model.Trace {
	n := s.Len()
	t := model.Trace{
		Type:       typ,
		Name:       name,
		X:          s.Dates(),
		Open:       make([]float64, n),
		High:       make([]float64, n),
		Low:        make([]float64, n),
		Close:      make([]float64, n),
		Increasing: &model.Direction{Line: model.Line{Color: up}},
		Decreasing: &model.Direction{Line: model.Line{Color: down}},
	}
	for i, p := range s.Points {
		t.Open[i], t.High[i], t.Low[i], t.Close[i] = p.Open, p.High, p.Low, p.Close
	}
	return t
}

func axis(title string) *model.Axis {
	return &model.Axis{Title: model.Title{Text: title}}
}
