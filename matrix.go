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

package qrcode

// cellState is the tri-state value of a Matrix cell during construction.
type cellState uint8

const (
	cellUnset cellState = iota
	cellDark
	cellLight
)

// Matrix is the square grid of modules that make up a QR symbol. During
// construction cells pass through cellUnset before the functional patterns
// and then the data placer fill every cell.
type Matrix struct {
	size  int
	cells [][]cellState
}

// newMatrix allocates an empty size x size grid, every cell cellUnset.
func newMatrix(size int) *Matrix {
	cells := make([][]cellState, size)
	for i := range cells {
		cells[i] = make([]cellState, size)
	}
	return &Matrix{size: size, cells: cells}
}

// clone returns a deep copy, used when a cached skeleton is reused across
// builds so mask trials never mutate the shared copy.
func (m *Matrix) clone() *Matrix {
	out := newMatrix(m.size)
	for r := range m.cells {
		copy(out.cells[r], m.cells[r])
	}
	return out
}

func (m *Matrix) get(r, c int) cellState {
	return m.cells[r][c]
}

func (m *Matrix) set(r, c int, dark bool) {
	if dark {
		m.cells[r][c] = cellDark
	} else {
		m.cells[r][c] = cellLight
	}
}

func (m *Matrix) isDark(r, c int) bool {
	return m.cells[r][c] == cellDark
}

func (m *Matrix) isUnset(r, c int) bool {
	return m.cells[r][c] == cellUnset
}

// drawFunctionPatterns stamps every non-data region of the symbol: the
// three finder patterns with their separators, the timing patterns, the
// alignment patterns, the always-dark module, and the format/version
// reservation strips (written later, by formatInfo/versionInfo, but marked
// non-unset here so the placer skips them).
func (m *Matrix) drawFunctionPatterns(version int) {
	m.drawFinderPattern(0, 0)
	m.drawFinderPattern(m.size-7, 0)
	m.drawFinderPattern(0, m.size-7)
	m.drawAlignmentPatterns(version)
	m.drawTimingPatterns()
	m.reserveFormatInfo()
	if version >= 7 {
		m.reserveVersionInfo()
	}
	m.set(m.size-8, 8, true) // dark module
}

// drawFinderPattern draws a 7x7 finder square plus its 1-module light
// separator, with the square's top-left corner at (row, col).
func (m *Matrix) drawFinderPattern(row, col int) {
	for r := -1; r < 8; r++ {
		rr := row + r
		if rr < 0 || rr >= m.size {
			continue
		}
		for c := -1; c < 8; c++ {
			cc := col + c
			if cc < 0 || cc >= m.size {
				continue
			}
			dark := (0 <= r && r <= 6 && (c == 0 || c == 6)) ||
				(0 <= c && c <= 6 && (r == 0 || r == 6)) ||
				(2 <= r && r <= 4 && 2 <= c && c <= 4)
			m.set(rr, cc, dark)
		}
	}
}

// drawAlignmentPatterns places a 5x5 alignment mark (ring + center dot) at
// every candidate center for this version, skipping centers that overlap
// an already-placed finder pattern.
func (m *Matrix) drawAlignmentPatterns(version int) {
	positions := alignmentPatternPositions[version]
	for _, row := range positions {
		for _, col := range positions {
			if !m.isUnset(row, col) {
				continue
			}
			for r := -2; r <= 2; r++ {
				for c := -2; c <= 2; c++ {
					dark := r == -2 || r == 2 || c == -2 || c == 2 || (r == 0 && c == 0)
					m.set(row+r, col+c, dark)
				}
			}
		}
	}
}

// drawTimingPatterns fills row 6 and column 6 between the finders with
// alternating modules, dark at each end, skipping cells an alignment
// pattern already claimed.
func (m *Matrix) drawTimingPatterns() {
	for i := 8; i < m.size-8; i++ {
		if m.isUnset(6, i) {
			m.set(6, i, i%2 == 0)
		}
		if m.isUnset(i, 6) {
			m.set(i, 6, i%2 == 0)
		}
	}
}

// reserveFormatInfo marks the two format-info strips as non-unset (light)
// placeholders; stampFormatInfo overwrites them with real bits later.
func (m *Matrix) reserveFormatInfo() {
	for i := 0; i <= 8; i++ {
		if m.isUnset(8, i) {
			m.set(8, i, false)
		}
		if m.isUnset(i, 8) {
			m.set(i, 8, false)
		}
	}
	for i := 0; i < 8; i++ {
		m.set(m.size-1-i, 8, false)
		m.set(8, m.size-1-i, false)
	}
}

// reserveVersionInfo marks the two 3x6 version-info blocks (versions >= 7).
func (m *Matrix) reserveVersionInfo() {
	for r := 0; r < 6; r++ {
		for c := m.size - 11; c < m.size-8; c++ {
			m.set(r, c, false)
			m.set(c, r, false)
		}
	}
}
