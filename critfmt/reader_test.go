// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"
)

func parseAll(t *testing.T, data string) []Record {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test")
	var out []Record
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *Result:
			res := *rec
			// Wipe position information for comparisons.
			res.fileName = ""
			res.line = 0
			out = append(out, &res)
		case *SyntaxError:
			out = append(out, rec)
		default:
			t.Fatalf("unexpected result type %T", rec)
		}
	}
	if err := r.Err(); err != nil {
		t.Fatal("parsing failed: ", err)
	}
	return out
}

func printRecord(w io.Writer, r Record) {
	switch r := r.(type) {
	case *Result:
		fmt.Fprintf(w, "%s/%s/%d %v\n", r.Name, r.Variant, r.Bytes, r.Throughput)
	case *SyntaxError:
		fmt.Fprintf(w, "SyntaxError: %s\n", r)
	default:
		panic(fmt.Sprintf("unknown record type %T", r))
	}
}

func res(name, variant string, size uint64, throughput float64) *Result {
	return &Result{Name: name, Variant: variant, Bytes: size, Throughput: throughput}
}

func compareRecords(t *testing.T, got, want []Record) {
	t.Helper()
	var diff bytes.Buffer
	for i := 0; i < len(got) || i < len(want); i++ {
		if i >= len(got) {
			fmt.Fprintf(&diff, "[%d] got: none, want:\n", i)
			printRecord(&diff, want[i])
		} else if i >= len(want) {
			fmt.Fprintf(&diff, "[%d] want: none, got:\n", i)
			printRecord(&diff, got[i])
		} else if !reflect.DeepEqual(got[i], want[i]) {
			fmt.Fprintf(&diff, "[%d] got:\n", i)
			printRecord(&diff, got[i])
			fmt.Fprintf(&diff, "[%d] want:\n", i)
			printRecord(&diff, want[i])
		}
	}
	if diff.Len() != 0 {
		t.Error(diff.String())
	}
}

func TestReader(t *testing.T) {
	type testCase struct {
		name, input string
		want        []Record
	}
	for _, test := range []testCase{
		{
			"basic",
			`{"reason":"benchmark-complete","id":"copy/fast/1024","typical":{"estimate":1000.0}}
{"reason":"group-complete","id":"copy"}
{"reason":"benchmark-complete","id":"copy/slow/1024","typical":{"estimate":2000.0}}
`,
			[]Record{
				res("copy", "fast", 1024, 1.024),
				res("copy", "slow", 1024, 0.512),
			},
		},
		{
			// Other event kinds are expected and skipped, even
			// when they carry none of the benchmark fields.
			"other events",
			`{"reason":"group-complete"}
{"reason":"benchmark-start","id":"copy/fast/1024"}
{"reason":"group-complete","id":"copy"}
`,
			nil,
		},
		{
			// Only the first three id components matter.
			"extra id components",
			`{"reason":"benchmark-complete","id":"copy/fast/100/extra/bits","typical":{"estimate":50.0}}
`,
			[]Record{
				res("copy", "fast", 100, 2),
			},
		},
		{
			"bad lines",
			`{
{"id":"a/b/1","typical":{"estimate":1}}
{"reason":"benchmark-complete","typical":{"estimate":1}}
{"reason":"benchmark-complete","id":"a/b","typical":{"estimate":1}}
{"reason":"benchmark-complete","id":"a/b/xyz","typical":{"estimate":1}}
{"reason":"benchmark-complete","id":"a/b/99999999999999999999999","typical":{"estimate":1}}
{"reason":"benchmark-complete","id":"a/b/-1","typical":{"estimate":1}}
{"reason":"benchmark-complete","id":"a/b/0","typical":{"estimate":1}}
{"reason":"benchmark-complete","id":"a/b/10"}
{"reason":"benchmark-complete","id":"a/b/10","typical":{}}
{"reason":"benchmark-complete","id":"a/b/10","typical":{"estimate":0}}
{"reason":"benchmark-complete","id":"a/b/10","typical":{"estimate":-1.5}}
{"reason":"benchmark-complete","id":"a/b/10","typical":{"estimate":5.0}}
`,
			[]Record{
				&SyntaxError{"test", 1, "malformed JSON: unexpected end of JSON input"},
				&SyntaxError{"test", 2, "missing reason field"},
				&SyntaxError{"test", 3, "missing benchmark id"},
				&SyntaxError{"test", 4, `benchmark id "a/b": want name/variant/size`},
				&SyntaxError{"test", 5, "parsing input size: invalid syntax"},
				&SyntaxError{"test", 6, "parsing input size: value out of range"},
				&SyntaxError{"test", 7, "parsing input size: invalid syntax"},
				&SyntaxError{"test", 8, "input size must be positive"},
				&SyntaxError{"test", 9, "missing typical.estimate"},
				&SyntaxError{"test", 10, "missing typical.estimate"},
				&SyntaxError{"test", 11, "non-positive duration estimate 0"},
				&SyntaxError{"test", 12, "non-positive duration estimate -1.5"},
				res("a", "b", 10, 2),
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := parseAll(t, test.input)
			compareRecords(t, got, test.want)
		})
	}
}

func TestReaderThroughput(t *testing.T) {
	// Two variants of the same benchmark and size must land in the
	// same group with throughput in bytes per nanosecond.
	got := parseAll(t, `{"reason":"benchmark-complete","id":"copy/fast/1024","typical":{"estimate":1000.0}}
{"reason":"benchmark-complete","id":"copy/slow/1024","typical":{"estimate":2000.0}}
`)
	want := []Record{
		res("copy", "fast", 1024, 1.024),
		res("copy", "slow", 1024, 0.512),
	}
	compareRecords(t, got, want)
	for _, rec := range got {
		if key := rec.(*Result).GroupKey(); key != "copy/1024" {
			t.Errorf("got group key %q, want %q", key, "copy/1024")
		}
	}
}

func TestReaderPos(t *testing.T) {
	r := NewReader(strings.NewReader(`{"reason":"group-complete"}
{"reason":"benchmark-complete","id":"copy/fast/1024","typical":{"estimate":1000.0}}
`), "data.json")
	if !r.Scan() {
		t.Fatal("Scan returned false, want one result")
	}
	file, line := r.Result().Pos()
	if file != "data.json" || line != 2 {
		t.Errorf("got position %s:%d, want data.json:2", file, line)
	}
	if r.Scan() {
		t.Errorf("got extra record %v", r.Result())
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
}
