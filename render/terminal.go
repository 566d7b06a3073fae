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

import "strings"

// Terminal renders matrix (true == dark module) using Unicode half-block
// characters, packing two module rows into each line of text so the
// printed symbol keeps roughly square proportions in a terminal, whose
// character cells are taller than they are wide.
func Terminal(matrix [][]bool) string {
	var sb strings.Builder
	size := len(matrix)
	for y := 0; y < size; y += 2 {
		for x := 0; x < len(matrix[y]); x++ {
			top := matrix[y][x]
			bottom := y+1 < size && matrix[y+1][x]
			sb.WriteRune(halfBlock(top, bottom))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// halfBlock picks the Unicode block character whose top/bottom halves are
// filled according to top and bottom.
func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top && !bottom:
		return '▀'
	case !top && bottom:
		return '▄'
	default:
		return ' '
	}
}
