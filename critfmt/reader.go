// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Reader reads the cargo-criterion JSON message stream.
//
// Its API is modeled on bufio.Scanner. The Reader retains ownership of
// the Result it returns; a caller that needs to retain a Result across
// calls to Scan must copy it.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	s   *bufio.Scanner
	err error // current I/O error

	// cur is the record to return from Result: either &result or
	// a *SyntaxError for the line it was parsed from.
	cur Record

	result Result

	interns map[string]string
}

// A SyntaxError represents a malformed record on a particular line of
// a benchmark results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

var noResult = &SyntaxError{"", 0, "Reader.Scan has not been called"}
var errSkip = &SyntaxError{"", 0, "skip line"}

// NewReader constructs a reader to parse the criterion message stream
// from r. fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// newSyntaxError returns a *SyntaxError at the Reader's current position.
func (r *Reader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.result.fileName, r.result.line, msg}
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.err = nil
	r.cur = nil
	if r.interns == nil {
		r.interns = make(map[string]string)
	}

	// Wipe the Result.
	r.result = Result{fileName: fileName}
}

// Scan advances the reader to the next record and reports whether a
// record was read.
// The caller should use the Result method to get the record.
// If Scan reaches EOF or an I/O error occurs, it returns false,
// in which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	r.cur = nil

	// Process lines until one produces a record or we hit EOF.
	for r.s.Scan() {
		r.result.line++
		if err := r.parseLine(r.s.Bytes()); err == nil {
			r.cur = &r.result
			return true
		} else if err != errSkip {
			r.cur = err
			return true
		}
	}

	// We hit EOF. Check for I/O errors.
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.result.fileName, r.result.line, err)
	}
	return false
}

// message is the wire form of one criterion line. Only the fields the
// loader consumes are decoded; everything else in the object is
// ignored.
type message struct {
	Reason  string `json:"reason"`
	ID      string `json:"id"`
	Typical *struct {
		Estimate *float64 `json:"estimate"`
	} `json:"typical"`
}

// parseLine parses line as one criterion message and updates r.result.
// It returns errSkip for well-formed messages of any kind other than
// "benchmark-complete".
func (r *Reader) parseLine(line []byte) *SyntaxError {
	var m message
	if err := json.Unmarshal(line, &m); err != nil {
		return r.newSyntaxError("malformed JSON: " + err.Error())
	}
	if m.Reason == "" {
		return r.newSyntaxError("missing reason field")
	}
	if m.Reason != "benchmark-complete" {
		return errSkip
	}

	// The id is a /-delimited path. The first three components are
	// the benchmark name, the variant, and the input size; any
	// further components are ignored.
	if m.ID == "" {
		return r.newSyntaxError("missing benchmark id")
	}
	parts := strings.Split(m.ID, "/")
	if len(parts) < 3 {
		return r.newSyntaxError(fmt.Sprintf("benchmark id %q: want name/variant/size", m.ID))
	}
	size, err := strconv.ParseUint(parts[2], 10, 64)
	switch err := err.(type) {
	case nil:
		// ok
	case *strconv.NumError:
		return r.newSyntaxError("parsing input size: " + err.Err.Error())
	default:
		return r.newSyntaxError(err.Error())
	}
	if size == 0 {
		return r.newSyntaxError("input size must be positive")
	}

	if m.Typical == nil || m.Typical.Estimate == nil {
		return r.newSyntaxError("missing typical.estimate")
	}
	durationNS := *m.Typical.Estimate
	if durationNS <= 0 {
		return r.newSyntaxError(fmt.Sprintf("non-positive duration estimate %v", durationNS))
	}

	r.result.Name = r.intern(parts[0])
	r.result.Variant = r.intern(parts[1])
	r.result.Bytes = size
	r.result.Throughput = float64(size) / durationNS
	return nil
}

// intern returns a canonical copy of x. The same few names and
// variants repeat on most lines, so this keeps one string per distinct
// value.
func (r *Reader) intern(x string) string {
	const maxIntern = 1024
	if s, ok := r.interns[x]; ok {
		return s
	}
	if len(r.interns) >= maxIntern {
		// Evict a random item from the interns table. The
		// choice of item doesn't affect correctness, so we do
		// the simple thing.
		for k := range r.interns {
			delete(r.interns, k)
			break
		}
	}
	r.interns[x] = x
	return x
}

// A Record is a single record read from a criterion message stream.
// It may be a *Result or a *SyntaxError.
type Record interface {
	// Pos returns the position of this record as a file name and a
	// 1-based line number within that file. If this record was not read
	// from a file, it returns "", 0.
	Pos() (fileName string, line int)
}

var _ Record = (*Result)(nil)
var _ Record = (*SyntaxError)(nil)

// Result returns the record that was just read by Scan. This is
// either a *Result or a *SyntaxError indicating a parse error.
//
// Parse errors are non-fatal to the Reader, so the caller can continue
// to call Scan. A batch consumer with no use for a partial data set
// should treat the first *SyntaxError as fatal.
//
// If this returns a *Result, the caller should not retain the Result,
// as it will be overwritten by the next call to Scan.
func (r *Reader) Result() Record {
	if r.cur == nil {
		// This should only happen if Scan has never been called.
		return noResult
	}
	return r.cur
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}
