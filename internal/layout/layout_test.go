package layout

import (
	"testing"

	"ceremony/internal/catalog"
)

func TestScale(t *testing.T) {
	tests := []struct {
		width float64
		want  float64
	}{
		{500, 1.0},
		{250, 0.5},
		{1000, 2.0},
		{375, 0.75},
	}

	for _, tt := range tests {
		if got := Scale(tt.width); got != tt.want {
			t.Errorf("Scale(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestPlace(t *testing.T) {
	el := catalog.TemplateElement{
		ID:   "title",
		X:    50,
		Y:    65,
		Style: catalog.StyleSpec{FontSize: 48, Width: 80},
	}

	f := Place(el, 0.5)
	if f.LeftPercent != 50 || f.TopPercent != 65 {
		t.Errorf("position = (%v, %v), want (50, 65)", f.LeftPercent, f.TopPercent)
	}
	if f.WidthPercent != 80 {
		t.Errorf("WidthPercent = %v, want 80", f.WidthPercent)
	}
	// Only the font size is scaled; position and width stay percentages.
	if f.FontSizePx != 24 {
		t.Errorf("FontSizePx = %v, want 24", f.FontSizePx)
	}
}

func TestPlaceDefaultFontSize(t *testing.T) {
	f := Place(catalog.TemplateElement{X: 10, Y: 20}, 0.5)
	if f.FontSizePx != DefaultFontSize*0.5 {
		t.Errorf("FontSizePx = %v, want %v", f.FontSizePx, DefaultFontSize*0.5)
	}
}

func TestMetric(t *testing.T) {
	if got := Metric(100, 0.5); got != 50 {
		t.Errorf("Metric(100, 0.5) = %v, want 50", got)
	}
	if got := Metric(35, 2); got != 70 {
		t.Errorf("Metric(35, 2) = %v, want 70", got)
	}
}
