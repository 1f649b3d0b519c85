package model

import (
	"fmt"
	"strings"
)

// ChartKind selects the chart representation.
type ChartKind string

const (
	KindLine        ChartKind = "line"
	KindCandlestick ChartKind = "candlestick"
	KindBar         ChartKind = "bar"
	KindOHLC        ChartKind = "ohlc"
	KindScatter3D   ChartKind = "scatter3d"
)

// ChartKinds lists every kind in menu order.
var ChartKinds = []ChartKind{KindLine, KindCandlestick, KindBar, KindOHLC, KindScatter3D}

var chartKindLabels = map[string]ChartKind{
	"line chart":        KindLine,
	"candlestick chart": KindCandlestick,
	"bar chart":         KindBar,
	"ohlc chart":        KindOHLC,
	"3d scatter plot":   KindScatter3D,
}

// ParseChartKind accepts a kind id ("ohlc") or its menu label ("OHLC Chart").
func ParseChartKind(s string) (ChartKind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, k := range ChartKinds {
		if v == string(k) {
			return k, nil
		}
	}
	if k, ok := chartKindLabels[v]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown chart kind %q", s)
}

// Palette is one of the two selectable color pairs.
type Palette string

const (
	RedGreen   Palette = "red_green"
	BlueOrange Palette = "blue_orange"
)

// ParsePalette accepts "red_green"/"Red/Green" and "blue_orange"/"Blue/Orange"; empty yields def.
func ParsePalette(s string, def Palette) (Palette, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer("/", "_", "-", "_", " ", "_").Replace(v)
	switch v {
	case "":
		return def, nil
	case string(RedGreen):
		return RedGreen, nil
	case string(BlueOrange):
		return BlueOrange, nil
	}
	return "", fmt.Errorf("unknown palette %q", s)
}

// Colors returns the (increasing / series 1, decreasing / series 2) color pair.
func (p Palette) Colors() (string, string) {
	if p == BlueOrange {
		return "blue", "orange"
	}
	return "green", "red"
}

// Line, Marker and Direction mirror the Plotly trace attributes the renderer reads.
type Line struct {
	Color string `json:"color,omitempty"`
}

type Marker struct {
	Color string `json:"color,omitempty"`
	Size  int    `json:"size,omitempty"`
}

type Direction struct {
	Line Line `json:"line"`
}

// Trace is one Plotly trace.
type Trace struct {
	Type       string     `json:"type"`
	Name       string     `json:"name,omitempty"`
	Mode       string     `json:"mode,omitempty"`
	X          []string   `json:"x"`
	Y          []float64  `json:"y,omitempty"`
	Z          []float64  `json:"z,omitempty"`
	Open       []float64  `json:"open,omitempty"`
	High       []float64  `json:"high,omitempty"`
	Low        []float64  `json:"low,omitempty"`
	Close      []float64  `json:"close,omitempty"`
	Line       *Line      `json:"line,omitempty"`
	Marker     *Marker    `json:"marker,omitempty"`
	Increasing *Direction `json:"increasing,omitempty"`
	Decreasing *Direction `json:"decreasing,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Title `json:"title"`
}

type Scene struct {
	XAxis Axis `json:"xaxis"`
	YAxis Axis `json:"yaxis"`
	ZAxis Axis `json:"zaxis"`
}

type Annotation struct {
	Text      string  `json:"text"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	ShowArrow bool    `json:"showarrow"`
}

// Layout is the Plotly layout subset the dashboard sets.
type Layout struct {
	Title       Title        `json:"title"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	Scene       *Scene       `json:"scene,omitempty"`
	Height      int          `json:"height,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// ChartSpec is a complete chart description handed to the renderer.
type ChartSpec struct {
	Kind     ChartKind `json:"kind"`
	Title    string    `json:"title"`
	Data     []Trace   `json:"data"`
	Layout   Layout    `json:"layout"`
	Warnings []string  `json:"warnings,omitempty"`
}
