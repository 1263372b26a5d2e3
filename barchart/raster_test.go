// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, "lz4_flex", twoBarChart(), DefaultOptions()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
		t.Errorf("output does not start with the PNG signature")
	}
}

func TestWritePNGError(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, "t", &Chart{}, DefaultOptions()); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got error %v, want ErrEmptyInput", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes on a failed render", buf.Len())
	}
}

func TestHexColor(t *testing.T) {
	got, err := hexColor("#37123C")
	if err != nil {
		t.Fatalf("hexColor: %v", err)
	}
	if want := (color.NRGBA{0x37, 0x12, 0x3C, 0xFF}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	for _, bad := range []string{"", "37123C", "#XY123C", "plum"} {
		if _, err := hexColor(bad); err == nil {
			t.Errorf("no error for %q", bad)
		}
	}
}
