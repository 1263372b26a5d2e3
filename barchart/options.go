// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

// Space reserved along each axis for tick labels and the unit label,
// subtracted from the canvas dimensions to get the plot area.
const (
	yAxisSpace = 80
	xAxisSpace = 80
)

// Options configures one chart render. The zero value leaves no room
// to draw in; start from DefaultOptions.
type Options struct {
	// TotalWidth and TotalHeight are the canvas dimensions.
	TotalWidth  float64
	TotalHeight float64

	// BorderPadding is the margin between the canvas edge and the
	// plot area.
	BorderPadding float64

	// GroupPadding is the spacing reserved between adjacent bar
	// groups.
	GroupPadding float64

	// BarPadding is the spacing between bars within one group.
	BarPadding float64

	// ShowDelta draws the percentage spread between the fastest
	// and slowest variant above each group.
	ShowDelta bool

	// MaxBarWidth caps the computed bar width.
	MaxBarWidth float64

	// YLabel is the unit label drawn along the y axis.
	YLabel string
}

// DefaultOptions returns the standard chart configuration: an 800x600
// canvas with delta annotations enabled and throughput units on the
// y axis.
func DefaultOptions() *Options {
	return &Options{
		TotalWidth:    800,
		TotalHeight:   600,
		BorderPadding: 10,
		GroupPadding:  20,
		BarPadding:    3,
		ShowDelta:     true,
		MaxBarWidth:   30,
		YLabel:        "Gb/s",
	}
}

// availWidth returns the width of the plot area: the canvas width
// minus the y-axis reserve and the border padding on both sides.
func (o *Options) availWidth() float64 {
	return o.TotalWidth - yAxisSpace - o.BorderPadding*2
}

// availHeight returns the height of the plot area: the canvas height
// minus the x-axis reserve and the border padding on both sides.
func (o *Options) availHeight() float64 {
	return o.TotalHeight - xAxisSpace - o.BorderPadding*2
}
