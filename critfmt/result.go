// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critfmt provides a streaming reader for cargo-criterion's
// machine-readable benchmark output.
//
// cargo-criterion run with --message-format=json emits one JSON object
// per line describing a benchmark lifecycle event. This package
// decodes the "benchmark-complete" events into Results carrying the
// benchmark name, the variant under test, the input size, and the
// derived throughput; every other event kind is skipped.
//
// The reader is structured as a streaming operation to allow
// incremental processing and avoid dictating a data model. This
// package is designed to be used with the higher-level package
// barchart.
package critfmt

import "strconv"

// A Result is a single completed benchmark run, decoded from one
// "benchmark-complete" message.
//
// A Result contains no references, so a struct copy is a full copy.
type Result struct {
	// Name is the benchmark name, the first component of the
	// message id.
	Name string

	// Variant is the implementation or configuration under test,
	// the second component of the message id.
	Variant string

	// Bytes is the input size in bytes, the third component of
	// the message id. It is always positive.
	Bytes uint64

	// Throughput is Bytes divided by the typical duration
	// estimate in nanoseconds. Bytes over nanoseconds is the same
	// ratio as gigabytes per second; it is reported unscaled.
	Throughput float64

	// fileName and line record where this Record was read from.
	fileName string
	line     int
}

// GroupKey returns the aggregation key of r: the benchmark name and
// input size joined as "name/size". Results that share a key belong to
// the same bar group, and the lexical order of the keys fixes the
// left-to-right group order in a rendered chart.
func (r *Result) GroupKey() string {
	return r.Name + "/" + strconv.FormatUint(r.Bytes, 10)
}

// Pos returns the file name and line number of a Result that was read
// by a Reader. For Results that were not read from a file, it returns
// "", 0.
func (r *Result) Pos() (fileName string, line int) {
	return r.fileName, r.line
}
