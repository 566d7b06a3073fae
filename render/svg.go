/*
 * Copyright © 2026, the qrcode project authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package render turns a finished symbol's module grid into output
// formats: an SVG document and a Unicode terminal rendering. It operates on
// the [][]bool a qrcode.QRCode's Matrix method returns, so it has no
// dependency on the qrcode package itself.
package render

import (
	"fmt"
	"strings"
)

// SVGOptions controls SVG output. The quiet-zone border, if any, should
// already be baked into the matrix passed to SVG; BoxSize only scales the
// module grid.
type SVGOptions struct {
	BoxSize        int  // pixels per module; 0 defaults to 10
	IncludeDocType bool // emit the XML prolog and DOCTYPE
}

// SVG renders matrix (true == dark module) as an SVG document: a single
// path made of one unit square per dark module, scaled by BoxSize.
func SVG(matrix [][]bool, opts SVGOptions) (string, error) {
	size := len(matrix)
	if size == 0 {
		return "", fmt.Errorf("render: empty matrix")
	}
	if opts.BoxSize < 0 {
		return "", fmt.Errorf("render: box size must not be negative")
	}
	box := opts.BoxSize
	if box == 0 {
		box = 10
	}

	var sb strings.Builder
	if opts.IncludeDocType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	dim := size * box
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", dim)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y, row := range matrix {
		for x, dark := range row {
			if !dark {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh%dv%dh-%dz", x*box, y*box, box, box, box)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
