// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"fmt"
	"image/color"
	"io"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// pngDPI is the raster resolution. The canvas dimensions in Options
// are interpreted as pixels at this density, so the written image is
// TotalWidth by TotalHeight pixels.
const pngDPI = 96

// WritePNG renders chart as a PNG image on w. It validates the chart
// and options the same way Render does and writes nothing on error.
//
// The raster backend reuses the chart model but delegates layout to
// the plotting library: within each group, bars are keyed by variant
// in sorted order, so a variant missing from a group leaves a gap
// instead of packing the remaining bars together. Colors, group
// labels, delta annotations, the legend, and the title carry over
// from the vector output.
func WritePNG(w io.Writer, title string, chart *Chart, opt *Options) error {
	if _, err := newLayout(chart, opt); err != nil {
		return err
	}

	variantOf := make(map[string]string, len(chart.Colors))
	variants := make([]string, 0, len(chart.Colors))
	for v, c := range chart.Colors {
		variants = append(variants, v)
		variantOf[c] = v
	}
	sort.Strings(variants)

	// One value series per variant, indexed by group. A variant
	// missing from a group keeps a zero-height slot so the other
	// variants stay aligned on their offsets.
	series := make(map[string]plotter.Values, len(variants))
	for _, v := range variants {
		series[v] = make(plotter.Values, len(chart.Groups))
	}
	labels := make([]string, len(chart.Groups))
	for gi, g := range chart.Groups {
		labels[gi] = g.Label
		for _, bar := range g.Bars {
			if v, ok := variantOf[bar.Color]; ok {
				series[v][gi] = float64(bar.Value)
			}
		}
	}

	pl := plot.New()
	pl.Title.Text = title
	pl.Y.Label.Text = opt.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	barWidth := vg.Points(opt.MaxBarWidth / 2)
	barSpacing := vg.Points(opt.BarPadding)
	// Total width of one bar group, center to center.
	groupWidth := (barWidth + barSpacing) * vg.Length(len(variants)-1)

	for i, v := range variants {
		bc, err := plotter.NewBarChart(series[v], barWidth)
		if err != nil {
			return err
		}
		bc.Offset = (barWidth+barSpacing)*vg.Length(i) - groupWidth/2
		bc.Color, err = hexColor(chart.Colors[v])
		if err != nil {
			return err
		}
		bc.LineStyle.Width = 0
		pl.Add(bc)
		pl.Legend.Add(v, bc)
	}
	pl.Legend.Top = true
	pl.NominalX(labels...)

	if opt.ShowDelta {
		var xys plotter.XYs
		var texts []string
		for gi := range chart.Groups {
			bars := chart.Groups[gi].Bars
			if len(bars) == 0 {
				continue
			}
			min, max := minMax(bars)
			xys = append(xys, plotter.XY{X: float64(gi), Y: float64(max)})
			texts = append(texts, percentDelta(min, max))
		}
		deltas, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
		if err != nil {
			return err
		}
		pl.Add(deltas)
	}

	width := vg.Length(opt.TotalWidth) / pngDPI * vg.Inch
	height := vg.Length(opt.TotalHeight) / pngDPI * vg.Inch
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height),
		vgimg.UseDPI(pngDPI), vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(can))
	_, err := can.WriteTo(w)
	return err
}

// hexColor converts a #RRGGBB palette entry to a drawing color.
func hexColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{r, g, b, 0xff}, nil
}
