// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// The canonical Canvas implementation is an SVG document writer.
var _ Canvas = (*svg.SVG)(nil)

// WriteSVG renders chart as a complete SVG document on w. The chart
// and options are validated up front, the same way Render validates
// them, so nothing is written on error.
func WriteSVG(w io.Writer, title string, chart *Chart, opt *Options) error {
	if _, err := newLayout(chart, opt); err != nil {
		return err
	}
	canvas := svg.New(w)
	canvas.Start(opt.TotalWidth, opt.TotalHeight)
	if err := Render(canvas, title, chart, opt); err != nil {
		return err
	}
	canvas.End()
	return nil
}
