// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchbar renders grouped bar charts from cargo-criterion benchmark
// output.
//
// Usage:
//
//	benchbar -o out.svg [options] bench.json [more.json ...]
//
// Each input file contains the line-delimited JSON message stream
// written by "cargo criterion --message-format=json". Records whose
// reason is "benchmark-complete" carry a benchmark id of the form
// name/variant/size, such as "compress/lz4_flex/66675", and a typical
// duration estimate in nanoseconds. Benchbar computes the throughput
// of every such record, groups records by benchmark name and input
// size, and draws one bar per record with a consistent color per
// variant. All other record kinds are ignored, so the raw criterion
// stream can be fed in unfiltered. Passing "-" as an input reads
// standard input, and records from multiple inputs are merged as if
// concatenated.
//
// The -o flag names the output file and is required; "-" writes to
// standard output. The format is chosen by the output file extension:
// .svg for a vector chart, .html for the same chart wrapped in a
// standalone page, and .png for a raster image. The -format flag
// overrides the extension.
//
// Groups are annotated with the percentage spread between their
// slowest and fastest bar; -delta=false turns the annotation off. The
// -exclude flag drops listed input sizes from the chart entirely,
// which is useful for pruning outlier corpora that would dwarf the
// other groups.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PSeitz/grouped-bar-chart/barchart"
	"github.com/PSeitz/grouped-bar-chart/critfmt"
)

var exit = os.Exit // replaced during testing

func main() {
	log.SetPrefix("benchbar: ")
	log.SetFlags(0)
	if err := benchbar(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// benchbar runs the command with the given arguments, writing the
// chart for "-o -" to stdout and usage output to stderr.
func benchbar(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchbar", flag.ExitOnError)
	flags.SetOutput(stderr)
	usage := func() {
		fmt.Fprintf(stderr, "usage: benchbar -o out.svg [options] bench.json [more.json ...]\n")
		fmt.Fprintf(stderr, "options:\n")
		flags.PrintDefaults()
		exit(2)
	}
	flags.Usage = usage
	var (
		flagOut     = flags.String("o", "", "write the chart to `file` (required); \"-\" means stdout")
		flagTitle   = flags.String("title", "", "chart `title`")
		flagFormat  = flags.String("format", "", "output `format`: svg, html, or png (default from the -o extension)")
		flagDelta   = flags.Bool("delta", true, "annotate groups with the percent spread between variants")
		flagWidth   = flags.Float64("width", 800, "canvas width in `pixels`")
		flagHeight  = flags.Float64("height", 600, "canvas height in `pixels`")
		flagExclude = flags.String("exclude", "", "comma-separated input `sizes` to drop")
		flagYLabel  = flags.String("ylabel", "Gb/s", "y axis unit `label`")
	)
	flags.Parse(args)
	if flags.NArg() < 1 || *flagOut == "" {
		usage()
	}

	format := *flagFormat
	if format == "" {
		format = formatForPath(*flagOut)
	}
	switch format {
	case "svg", "html", "png":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	excludes, err := parseExcludes(*flagExclude)
	if err != nil {
		return err
	}

	b := barchart.NewBuilder()
	for _, size := range excludes {
		b.Exclude(size)
	}
	files := critfmt.Files{Paths: flags.Args(), AllowStdin: true}
	for files.Scan() {
		switch rec := files.Result().(type) {
		case *critfmt.Result:
			b.Add(rec)
		case *critfmt.SyntaxError:
			// Stop at the first malformed record.
			return rec
		}
	}
	if err := files.Err(); err != nil {
		return err
	}

	chart, err := b.ToChart()
	if err != nil {
		return err
	}

	opt := barchart.DefaultOptions()
	opt.TotalWidth = *flagWidth
	opt.TotalHeight = *flagHeight
	opt.ShowDelta = *flagDelta
	opt.YLabel = *flagYLabel

	var buf bytes.Buffer
	switch format {
	case "svg":
		err = barchart.WriteSVG(&buf, *flagTitle, chart, opt)
	case "html":
		err = writeHTML(&buf, *flagTitle, chart, opt)
	case "png":
		err = barchart.WritePNG(&buf, *flagTitle, chart, opt)
	}
	if err != nil {
		return err
	}

	if *flagOut == "-" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(*flagOut, buf.Bytes(), 0666)
}

// formatForPath maps an output file name to a chart format.
func formatForPath(path string) string {
	switch filepath.Ext(path) {
	case ".html", ".htm":
		return "html"
	case ".png":
		return "png"
	default:
		return "svg"
	}
}

// parseExcludes parses the -exclude flag, a comma-separated list of
// decimal input sizes.
func parseExcludes(s string) ([]uint64, error) {
	if s == "" {
		return nil, nil
	}
	var sizes []uint64
	for _, field := range strings.Split(s, ",") {
		size, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("-exclude: bad size %q", field)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}
