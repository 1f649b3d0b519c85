package model

import "testing"

func TestParseChartKind(t *testing.T) {
	tests := []struct {
		in   string
		want ChartKind
	}{
		{"line", KindLine},
		{"Candlestick Chart", KindCandlestick},
		{" BAR ", KindBar},
		{"OHLC Chart", KindOHLC},
		{"3D Scatter Plot", KindScatter3D},
		{"scatter3d", KindScatter3D},
	}
	for _, tt := range tests {
		got, err := ParseChartKind(tt.in)
		if err != nil {
			t.Errorf("ParseChartKind(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChartKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := ParseChartKind("pie"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestParsePalette(t *testing.T) {
	tests := []struct {
		in       string
		want     Palette
		up, down string
	}{
		{"", RedGreen, "green", "red"},
		{"Red/Green", RedGreen, "green", "red"},
		{"blue_orange", BlueOrange, "blue", "orange"},
		{"Blue/Orange", BlueOrange, "blue", "orange"},
	}
	for _, tt := range tests {
		p, err := ParsePalette(tt.in, RedGreen)
		if err != nil {
			t.Fatalf("ParsePalette(%q): %v", tt.in, err)
		}
		if p != tt.want {
			t.Errorf("ParsePalette(%q) = %q, want %q", tt.in, p, tt.want)
		}
		up, down := p.Colors()
		if up != tt.up || down != tt.down {
			t.Errorf("%s colors = (%s, %s), want (%s, %s)", p, up, down, tt.up, tt.down)
		}
	}
	if _, err := ParsePalette("purple", RedGreen); err == nil {
		t.Error("expected error for unknown palette")
	}
}

func TestParseOutputSize(t *testing.T) {
	if got, _ := ParseOutputSize("", Compact); got != Compact {
		t.Errorf("empty range should use default, got %q", got)
	}
	if got, _ := ParseOutputSize("FULL", Compact); got != Full {
		t.Errorf("expected full, got %q", got)
	}
	if _, err := ParseOutputSize("weekly", Full); err == nil {
		t.Error("expected error for unknown range")
	}
}
