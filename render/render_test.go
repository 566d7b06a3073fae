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

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkerboard(n int) [][]bool {
	m := make([][]bool, n)
	for r := range m {
		m[r] = make([]bool, n)
		for c := range m[r] {
			m[r][c] = (r+c)%2 == 0
		}
	}
	return m
}

func TestTerminalPacksTwoRowsPerLine(t *testing.T) {
	m := [][]bool{
		{true, false},
		{false, true},
	}
	out := Terminal(m)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, []rune{'▀', '▄'}, []rune(lines[0]))
}

func TestTerminalOddHeight(t *testing.T) {
	m := [][]bool{
		{true},
		{false},
		{true},
	}
	out := Terminal(m)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, []rune{'▀'}, []rune(lines[1]))
}

func TestSVGProducesWellFormedDocument(t *testing.T) {
	m := checkerboard(4)
	out, err := SVG(m, SVGOptions{BoxSize: 2})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, "viewBox=\"0 0 8 8\"")
}

func TestSVGRejectsEmptyMatrix(t *testing.T) {
	_, err := SVG(nil, SVGOptions{})
	assert.Error(t, err)
}

func TestSVGRejectsNegativeBoxSize(t *testing.T) {
	m := checkerboard(2)
	_, err := SVG(m, SVGOptions{BoxSize: -1})
	assert.Error(t, err)
}

func TestSVGDefaultsBoxSize(t *testing.T) {
	m := checkerboard(2)
	out, err := SVG(m, SVGOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "viewBox=\"0 0 20 20\"")
}
