// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"errors"
	"fmt"
	"sort"
)

// Render-time failure conditions, checked before anything is drawn.
var (
	// ErrEmptyInput indicates a chart with no groups.
	ErrEmptyInput = errors.New("no groups to render")

	// ErrNoData indicates that no group has a bar with a positive
	// value, leaving nothing to set the y scale with.
	ErrNoData = errors.New("no bar values to render")

	// ErrDegenerateLayout indicates a canvas too small for the
	// axis reserves and border padding.
	ErrDegenerateLayout = errors.New("plot area is not positive")
)

// A Canvas receives drawing primitives. Styles are raw SVG style
// strings such as "fill:none;stroke:black"; transforms are raw
// transform strings such as "translate(0,50)".
//
// *svg.SVG from github.com/ajstarks/svgo/float satisfies Canvas.
type Canvas interface {
	// Rect draws a w by h rectangle with upper-left corner (x, y).
	Rect(x, y, w, h float64, style ...string)
	// Line draws a line from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2 float64, style ...string)
	// Text draws t anchored at (x, y).
	Text(x, y float64, t string, style ...string)
	// Gstyle opens a group with the given style attribute.
	Gstyle(style string)
	// Gtransform opens a group with the given transform attribute.
	Gtransform(transform string)
	// Gend closes the most recently opened group.
	Gend()
}

// A layout captures the geometry shared by every drawing step of one
// render.
type layout struct {
	opt        *Options
	availW     float64
	availH     float64
	maxValue   float32
	groupWidth float64
	barWidth   float64
	firstX     float64
}

// newLayout validates chart and opt and computes the shared geometry.
func newLayout(chart *Chart, opt *Options) (*layout, error) {
	if len(chart.Groups) == 0 {
		return nil, ErrEmptyInput
	}
	availW, availH := opt.availWidth(), opt.availHeight()
	if availW <= 0 || availH <= 0 {
		return nil, fmt.Errorf("%gx%g canvas leaves a %gx%g plot area: %w",
			opt.TotalWidth, opt.TotalHeight, availW, availH, ErrDegenerateLayout)
	}

	var maxValue float32
	maxBars := 0
	for _, g := range chart.Groups {
		if len(g.Bars) > maxBars {
			maxBars = len(g.Bars)
		}
		for _, bar := range g.Bars {
			if bar.Value > maxValue {
				maxValue = bar.Value
			}
		}
	}
	if maxValue <= 0 {
		return nil, ErrNoData
	}

	groupWidth := availW / float64(len(chart.Groups))
	barWidth := groupWidth / float64(maxBars)
	if barWidth > opt.MaxBarWidth {
		barWidth = opt.MaxBarWidth
	}

	return &layout{
		opt:        opt,
		availW:     availW,
		availH:     availH,
		maxValue:   maxValue,
		groupWidth: groupWidth,
		barWidth:   barWidth,
		firstX:     yAxisSpace + opt.BorderPadding,
	}, nil
}

// yFor returns the y coordinate of value v. Bars grow up from the
// baseline at BorderPadding + availHeight toward the top of the plot
// area, which the maximum value reaches exactly.
func (l *layout) yFor(v float32) float64 {
	height := l.availH * (float64(v) / float64(l.maxValue))
	return l.availH + l.opt.BorderPadding - height
}

// Render draws chart onto c: the y axis with ticks, gridlines and the
// unit label, the x baseline, the bar groups with their labels and
// optional delta annotations, the variant legend, and the title. The
// whole drawing is wrapped in a group translated 50 units down with
// the chart font applied.
//
// Render fails with ErrEmptyInput if chart has no groups,
// ErrDegenerateLayout if opt leaves no positive plot area, or
// ErrNoData if no group has a bar with a positive value. Nothing is
// drawn on error.
func Render(c Canvas, title string, chart *Chart, opt *Options) error {
	l, err := newLayout(chart, opt)
	if err != nil {
		return err
	}

	c.Gtransform("translate(0,50)")
	c.Gstyle("font-family:Roboto-Regular,Roboto, sans-serif")

	drawYScale(c, l)
	drawXScale(c, l)

	x := l.firstX
	for i := range chart.Groups {
		drawGroup(c, l, &chart.Groups[i], x)
		x += l.groupWidth
	}

	drawLegend(c, l, chart.Colors)

	c.Text(opt.BorderPadding+l.availW-70, 0, title,
		"text-anchor:middle;font-weight:bold")

	c.Gend()
	c.Gend()
	return nil
}

// drawYScale draws the y axis: a tick mark, gridline and value label
// per tick, then the unit label, then the axis line itself.
func drawYScale(c Canvas, l *layout) {
	const numMarkings = 8

	axisX := l.firstX - 5

	for _, val := range axisTicks(l.maxValue, numMarkings) {
		y := l.yFor(val)
		c.Line(axisX, y, axisX-5, y, "stroke:#000000")
		// Gridlines span BarPadding+availW, a little short of
		// the plot's right edge.
		c.Line(axisX-5, y, l.opt.BarPadding+l.availW, y, "stroke:#999999")
		c.Text(axisX-10, y+4, formatTick(val), "font-size:12;direction:rtl")
	}

	mid := (l.opt.BorderPadding + l.availH) / 2
	c.Text(30, mid, l.opt.YLabel, "text-anchor:middle")

	c.Line(axisX, l.opt.BorderPadding, axisX, l.opt.BorderPadding+l.availH,
		"stroke:#000000")
}

// drawXScale draws the baseline under the bars. Group labels stand in
// for per-group ticks.
func drawXScale(c Canvas, l *layout) {
	y := l.opt.BorderPadding + l.availH
	c.Line(l.firstX-5, y, l.firstX+l.availW, y, "stroke:#000000")
}

// drawGroup draws one group's bars, its label below the baseline and,
// when enabled, the delta annotation above its tallest bar.
func drawGroup(c Canvas, l *layout, g *Group, startX float64) {
	baseline := l.availH + l.opt.BorderPadding

	x := startX
	for _, bar := range g.Bars {
		height := l.availH * (float64(bar.Value) / float64(l.maxValue))
		c.Rect(x, l.yFor(bar.Value), l.barWidth, height, "fill:"+bar.Color)
		x += l.barWidth + l.opt.BarPadding
	}

	c.Text(startX+l.barWidth, baseline+20, g.Label, "text-anchor:middle")

	if l.opt.ShowDelta && len(g.Bars) > 0 {
		min, max := minMax(g.Bars)
		c.Text(startX+l.barWidth, l.yFor(max)-10, percentDelta(min, max),
			"text-anchor:middle")
	}
}

// drawLegend draws the color key: a framed box near the top right of
// the plot area with one row per variant in sorted order, each row a
// variant name and its color swatch.
func drawLegend(c Canvas, l *layout, colors map[string]string) {
	variants := make([]string, 0, len(colors))
	longest := 0
	for v := range colors {
		variants = append(variants, v)
		if len(v) > longest {
			longest = len(v)
		}
	}
	sort.Strings(variants)

	const (
		padding   = 10
		rowHeight = 20
	)
	// Size the frame to the longest name, but keep the historical
	// minimum width so small legends look the same as before.
	width := float64(longest*7 + 40)
	if width < 120 {
		width = 120
	}
	height := float64(padding*2 + len(variants)*rowHeight)

	c.Gtransform(fmt.Sprintf("translate(%d,%d)", int(l.availW)-100, 20))
	c.Rect(0, 0, width, height, "fill:#FFFFFF;stroke:#121212")
	y := float64(padding + 5)
	for _, v := range variants {
		c.Text(10, y+10, v, "font-size:12")
		c.Rect(width-30, y, 20, rowHeight-10, "fill:"+colors[v])
		y += rowHeight
	}
	c.Gend()
}

// minMax returns the smallest and largest value in bars, which must
// be non-empty.
func minMax(bars []Bar) (min, max float32) {
	min, max = bars[0].Value, bars[0].Value
	for _, bar := range bars[1:] {
		if bar.Value < min {
			min = bar.Value
		}
		if bar.Value > max {
			max = bar.Value
		}
	}
	return
}

// percentDelta formats the spread between the slowest and fastest
// variant of a group as a percentage gain over the slowest.
func percentDelta(min, max float32) string {
	return fmt.Sprintf("+%.2f%%", (max-min)/min*100)
}
