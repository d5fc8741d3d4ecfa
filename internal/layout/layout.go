// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package layout converts the catalog's percentage-based element geometry
// and reference-width style metrics into absolute rendering parameters for
// a concrete container width.
package layout

import "ceremony/internal/catalog"

const (
	// ReferenceWidth is the design canvas width all fontSize values and
	// pixel metrics in the catalog are expressed against.
	ReferenceWidth = 500.0

	// DefaultFontSize applies when an element's style omits fontSize.
	DefaultFontSize = 16.0
)

// Scale returns the factor that maps reference-width pixel metrics onto
// the given container width.
func Scale(containerWidth float64) float64 {
	return containerWidth / ReferenceWidth
}

// Frame is the computed placement of an element. LeftPercent/TopPercent
// locate the element's centerpoint as percentages of the canvas; the
// presentation layer must anchor the element at its own center (translate
// -50%,-50%), which keeps placement independent of the element's size.
// WidthPercent is 0 when the element sizes to its content.
type Frame struct {
	LeftPercent  float64 `json:"leftPercent"`
	TopPercent   float64 `json:"topPercent"`
	WidthPercent float64 `json:"widthPercent,omitempty"`
	FontSizePx   float64 `json:"fontSizePx,omitempty"`
}

// Place computes the frame for an element at the given scale factor. Only
// the font size is an absolute pixel metric; position and width stay
// percentages of the canvas.
func Place(el catalog.TemplateElement, scale float64) Frame {
	fontSize := el.Style.FontSize
	if fontSize == 0 {
		fontSize = DefaultFontSize
	}
	return Frame{
		LeftPercent:  el.X,
		TopPercent:   el.Y,
		WidthPercent: el.Style.Width,
		FontSizePx:   fontSize * scale,
	}
}

// Metric scales an absolute reference-width pixel value.
func Metric(v, scale float64) float64 {
	return v * scale
}
