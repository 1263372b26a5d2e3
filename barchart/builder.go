// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package barchart builds grouped bar charts from benchmark results
// and renders them with exact, deterministic geometry.
//
// A Builder aggregates critfmt Results into groups keyed by benchmark
// name and input size. ToChart turns the aggregate into a Chart: one
// Group per key in ascending key order, with a stable color assigned
// to every variant. Render draws a Chart onto a Canvas; WriteSVG and
// WritePNG wrap Render with concrete document sinks.
package barchart

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/PSeitz/grouped-bar-chart/critfmt"
)

// Palette is the fixed bar color sequence. Colors are assigned from
// the end of the palette: the first variant in sorted order gets the
// last color. Colors are never reused within a chart, so a chart can
// have at most len(Palette) variants.
var Palette = []string{"#37123C", "#71677C", "#A99F96", "#DDA77B"}

// ErrPaletteExhausted indicates a data set with more distinct
// variants than Palette has colors.
var ErrPaletteExhausted = errors.New("variant count exceeds palette size")

// A Bar is one rendered measurement: the bar's value and fill color.
type Bar struct {
	Value float32
	Color string
}

// A Group is one cluster of adjacent bars: the measurements sharing a
// benchmark name and input size. Label names the input-size bucket.
type Group struct {
	Label string
	Bars  []Bar
}

// A Chart is the renderer-agnostic model of one grouped bar chart.
// Groups are in left-to-right render order. Colors maps each variant
// name to its bar color, the same in every group.
type Chart struct {
	Groups []Group
	Colors map[string]string
}

// A Builder collects benchmark results into a Chart.
type Builder struct {
	// buckets maps group keys to the measurements aggregated under
	// them, in insertion order.
	buckets map[string]*bucket

	// variants is the set of variant names observed across all
	// results. Color assignment is global so that a variant keeps
	// its color in every group.
	variants map[string]bool

	// exclude is the set of input sizes to drop.
	exclude map[uint64]bool
}

type bucket struct {
	size uint64
	meas []measurement
}

type measurement struct {
	variant    string
	throughput float64
}

// NewBuilder creates a new Builder for collecting benchmark results
// into a grouped bar chart.
func NewBuilder() *Builder {
	return &Builder{
		buckets:  make(map[string]*bucket),
		variants: make(map[string]bool),
		exclude:  make(map[uint64]bool),
	}
}

// Exclude registers an input size whose results should be dropped
// even when they are otherwise well formed, such as a known-outlier
// measurement. It applies to subsequent calls to Add.
func (b *Builder) Exclude(size uint64) {
	b.exclude[size] = true
}

// Add adds one benchmark result to the chart. Results that share a
// benchmark name and input size accumulate in one group, in the order
// they were added.
func (b *Builder) Add(res *critfmt.Result) {
	if b.exclude[res.Bytes] {
		return
	}
	key := res.GroupKey()
	bk := b.buckets[key]
	if bk == nil {
		bk = &bucket{size: res.Bytes}
		b.buckets[key] = bk
	}
	bk.meas = append(bk.meas, measurement{res.Variant, res.Throughput})
	b.variants[res.Variant] = true
}

// ToChart finalizes a Builder into a Chart.
//
// The distinct variant names are sorted ascending and matched against
// Palette back to front, so the assignment depends only on the set of
// names, not on their frequency or position in the input. ToChart
// fails with ErrPaletteExhausted if there are more variants than
// palette colors; colors never cycle.
//
// Groups are ordered by ascending group key, which fixes their
// left-to-right placement in the rendered chart.
func (b *Builder) ToChart() (*Chart, error) {
	variants := make([]string, 0, len(b.variants))
	for v := range b.variants {
		variants = append(variants, v)
	}
	sort.Strings(variants)
	if len(variants) > len(Palette) {
		return nil, fmt.Errorf("%d variants, %d palette colors: %w",
			len(variants), len(Palette), ErrPaletteExhausted)
	}
	colors := make(map[string]string, len(variants))
	for i, v := range variants {
		colors[v] = Palette[len(Palette)-1-i]
	}

	keys := make([]string, 0, len(b.buckets))
	for k := range b.buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	chart := &Chart{Colors: colors}
	for _, k := range keys {
		bk := b.buckets[k]
		g := Group{Label: sizeLabel(bk.size)}
		for _, m := range bk.meas {
			g.Bars = append(g.Bars, Bar{float32(m.throughput), colors[m.variant]})
		}
		chart.Groups = append(chart.Groups, g)
	}
	return chart, nil
}

// sizeLabels maps well-known benchmark corpus sizes to display names.
var sizeLabels = map[uint64]string{
	725:     "725b Text",
	34308:   "34K Text",
	64723:   "65K Text",
	66675:   "66K JSON",
	9991663: "10Mb Dickens",
}

// sizeLabel returns the display label for an input-size bucket: the
// corpus name when the size has one, otherwise the decimal size
// itself.
func sizeLabel(size uint64) string {
	if name, ok := sizeLabels[size]; ok {
		return name
	}
	return strconv.FormatUint(size, 10)
}
