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

// maskFuncs is the fixed table of the eight mask predicates from Table 23;
// maskFuncs[p](i, j) reports whether the module at (row i, col j) is
// inverted under mask pattern p. A table of pure functions replaces the
// lambda dispatch of the source this package was ported from.
var maskFuncs = [8]func(i, j int) bool{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return (i*j)%2+(i*j)%3 == 0 },
	func(i, j int) bool { return ((i*j)%2+(i*j)%3)%2 == 0 },
	func(i, j int) bool { return ((i+j)%2+(i*j)%3)%2 == 0 },
}

// placeData walks the unset cells of m in the standard's zig-zag order and
// fills them, MSB-first, from data, applying mask pattern maskIndex to each
// written bit. Remainder bits beyond the supplied data read as zero.
func placeData(m *Matrix, data []byte, maskIndex int) {
	maskFn := maskFuncs[maskIndex]
	bitIndex := 0
	byteIndex := 0

	row := m.size - 1
	dir := -1
	for col := m.size - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		for {
			for _, c := range [2]int{col, col - 1} {
				if m.isUnset(row, c) {
					dark := false
					if byteIndex < len(data) {
						dark = (data[byteIndex]>>uint(7-bitIndex))&1 == 1
					}
					if maskFn(row, c) {
						dark = !dark
					}
					m.set(row, c, dark)

					bitIndex++
					if bitIndex == 8 {
						bitIndex = 0
						byteIndex++
					}
				}
			}
			row += dir
			if row < 0 || row >= m.size {
				row -= dir
				dir = -dir
				break
			}
		}
	}
}
