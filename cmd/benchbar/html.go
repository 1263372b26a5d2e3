// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"html/template"
	"io"

	"github.com/PSeitz/grouped-bar-chart/barchart"
)

// htmlPage wraps a rendered chart in a standalone page. The SVG is
// inlined so the page has no external references.
var htmlPage = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; }
.benchbar { display: block; margin: 2em auto; width: fit-content; }
</style>
</head>
<body>
<div class="benchbar">
{{.Chart}}
</div>
</body>
</html>
`))

// writeHTML renders chart as an SVG document embedded in an HTML page.
func writeHTML(w io.Writer, title string, chart *barchart.Chart, opt *barchart.Options) error {
	var svg bytes.Buffer
	if err := barchart.WriteSVG(&svg, title, chart, opt); err != nil {
		return err
	}
	return htmlPage.Execute(w, struct {
		Title string
		Chart template.HTML
	}{title, template.HTML(svg.String())})
}
