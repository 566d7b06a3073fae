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

// rsBlockGroup is one run of identically-sized RS blocks: count blocks each
// with total codewords and data codewords as given.
type rsBlockGroup struct {
	count int
	total int
	data  int
}

// rsBlockTable[version-1][ecLevel] lists the RS block groups prescribed by
// ISO/IEC 18004 Annex... table for that (version, error correction level)
// pair, ordered Low, Medium, Quartile, High. Most entries are a single
// group; versions whose raw codeword count doesn't split evenly across
// blocks carry a second group one codeword longer.
var rsBlockTable = [40][4][]rsBlockGroup{
	{ // version 1
		{{count: 1, total: 26, data: 19}}, // L
		{{count: 1, total: 26, data: 16}}, // M
		{{count: 1, total: 26, data: 13}}, // Q
		{{count: 1, total: 26, data: 9}}, // H
	},
	{ // version 2
		{{count: 1, total: 44, data: 34}}, // L
		{{count: 1, total: 44, data: 28}}, // M
		{{count: 1, total: 44, data: 22}}, // Q
		{{count: 1, total: 44, data: 16}}, // H
	},
	{ // version 3
		{{count: 1, total: 70, data: 55}}, // L
		{{count: 1, total: 70, data: 44}}, // M
		{{count: 2, total: 35, data: 17}}, // Q
		{{count: 2, total: 35, data: 13}}, // H
	},
	{ // version 4
		{{count: 1, total: 100, data: 80}}, // L
		{{count: 2, total: 50, data: 32}}, // M
		{{count: 2, total: 50, data: 24}}, // Q
		{{count: 4, total: 25, data: 9}}, // H
	},
	{ // version 5
		{{count: 1, total: 134, data: 108}}, // L
		{{count: 2, total: 67, data: 43}}, // M
		{{count: 2, total: 33, data: 15}, {count: 2, total: 34, data: 16}}, // Q
		{{count: 2, total: 33, data: 11}, {count: 2, total: 34, data: 12}}, // H
	},
	{ // version 6
		{{count: 2, total: 86, data: 68}}, // L
		{{count: 4, total: 43, data: 27}}, // M
		{{count: 4, total: 43, data: 19}}, // Q
		{{count: 4, total: 43, data: 15}}, // H
	},
	{ // version 7
		{{count: 2, total: 98, data: 78}}, // L
		{{count: 4, total: 49, data: 31}}, // M
		{{count: 2, total: 32, data: 14}, {count: 4, total: 33, data: 15}}, // Q
		{{count: 4, total: 39, data: 13}, {count: 1, total: 40, data: 14}}, // H
	},
	{ // version 8
		{{count: 2, total: 121, data: 97}}, // L
		{{count: 2, total: 60, data: 38}, {count: 2, total: 61, data: 39}}, // M
		{{count: 4, total: 40, data: 18}, {count: 2, total: 41, data: 19}}, // Q
		{{count: 4, total: 40, data: 14}, {count: 2, total: 41, data: 15}}, // H
	},
	{ // version 9
		{{count: 2, total: 146, data: 116}}, // L
		{{count: 3, total: 58, data: 36}, {count: 2, total: 59, data: 37}}, // M
		{{count: 4, total: 36, data: 16}, {count: 4, total: 37, data: 17}}, // Q
		{{count: 4, total: 36, data: 12}, {count: 4, total: 37, data: 13}}, // H
	},
	{ // version 10
		{{count: 2, total: 86, data: 68}, {count: 2, total: 87, data: 69}}, // L
		{{count: 4, total: 69, data: 43}, {count: 1, total: 70, data: 44}}, // M
		{{count: 6, total: 43, data: 19}, {count: 2, total: 44, data: 20}}, // Q
		{{count: 6, total: 43, data: 15}, {count: 2, total: 44, data: 16}}, // H
	},
	{ // version 11
		{{count: 4, total: 101, data: 81}}, // L
		{{count: 1, total: 80, data: 50}, {count: 4, total: 81, data: 51}}, // M
		{{count: 4, total: 50, data: 22}, {count: 4, total: 51, data: 23}}, // Q
		{{count: 3, total: 36, data: 12}, {count: 8, total: 37, data: 13}}, // H
	},
	{ // version 12
		{{count: 2, total: 116, data: 92}, {count: 2, total: 117, data: 93}}, // L
		{{count: 6, total: 58, data: 36}, {count: 2, total: 59, data: 37}}, // M
		{{count: 4, total: 46, data: 20}, {count: 6, total: 47, data: 21}}, // Q
		{{count: 7, total: 42, data: 14}, {count: 4, total: 43, data: 15}}, // H
	},
	{ // version 13
		{{count: 4, total: 133, data: 107}}, // L
		{{count: 8, total: 59, data: 37}, {count: 1, total: 60, data: 38}}, // M
		{{count: 8, total: 44, data: 20}, {count: 4, total: 45, data: 21}}, // Q
		{{count: 12, total: 33, data: 11}, {count: 4, total: 34, data: 12}}, // H
	},
	{ // version 14
		{{count: 3, total: 145, data: 115}, {count: 1, total: 146, data: 116}}, // L
		{{count: 4, total: 64, data: 40}, {count: 5, total: 65, data: 41}}, // M
		{{count: 11, total: 36, data: 16}, {count: 5, total: 37, data: 17}}, // Q
		{{count: 11, total: 36, data: 12}, {count: 5, total: 37, data: 13}}, // H
	},
	{ // version 15
		{{count: 5, total: 109, data: 87}, {count: 1, total: 110, data: 88}}, // L
		{{count: 5, total: 65, data: 41}, {count: 5, total: 66, data: 42}}, // M
		{{count: 5, total: 54, data: 24}, {count: 7, total: 55, data: 25}}, // Q
		{{count: 11, total: 36, data: 12}, {count: 7, total: 37, data: 13}}, // H
	},
	{ // version 16
		{{count: 5, total: 122, data: 98}, {count: 1, total: 123, data: 99}}, // L
		{{count: 7, total: 73, data: 45}, {count: 3, total: 74, data: 46}}, // M
		{{count: 15, total: 43, data: 19}, {count: 2, total: 44, data: 20}}, // Q
		{{count: 3, total: 45, data: 15}, {count: 13, total: 46, data: 16}}, // H
	},
	{ // version 17
		{{count: 1, total: 135, data: 107}, {count: 5, total: 136, data: 108}}, // L
		{{count: 10, total: 74, data: 46}, {count: 1, total: 75, data: 47}}, // M
		{{count: 1, total: 50, data: 22}, {count: 15, total: 51, data: 23}}, // Q
		{{count: 2, total: 42, data: 14}, {count: 17, total: 43, data: 15}}, // H
	},
	{ // version 18
		{{count: 5, total: 150, data: 120}, {count: 1, total: 151, data: 121}}, // L
		{{count: 9, total: 69, data: 43}, {count: 4, total: 70, data: 44}}, // M
		{{count: 17, total: 50, data: 22}, {count: 1, total: 51, data: 23}}, // Q
		{{count: 2, total: 42, data: 14}, {count: 19, total: 43, data: 15}}, // H
	},
	{ // version 19
		{{count: 3, total: 141, data: 113}, {count: 4, total: 142, data: 114}}, // L
		{{count: 3, total: 70, data: 44}, {count: 11, total: 71, data: 45}}, // M
		{{count: 17, total: 47, data: 21}, {count: 4, total: 48, data: 22}}, // Q
		{{count: 9, total: 39, data: 13}, {count: 16, total: 40, data: 14}}, // H
	},
	{ // version 20
		{{count: 3, total: 135, data: 107}, {count: 5, total: 136, data: 108}}, // L
		{{count: 3, total: 67, data: 41}, {count: 13, total: 68, data: 42}}, // M
		{{count: 15, total: 54, data: 24}, {count: 5, total: 55, data: 25}}, // Q
		{{count: 15, total: 43, data: 15}, {count: 10, total: 44, data: 16}}, // H
	},
	{ // version 21
		{{count: 4, total: 144, data: 116}, {count: 4, total: 145, data: 117}}, // L
		{{count: 17, total: 68, data: 42}}, // M
		{{count: 17, total: 50, data: 22}, {count: 6, total: 51, data: 23}}, // Q
		{{count: 19, total: 46, data: 16}, {count: 6, total: 47, data: 17}}, // H
	},
	{ // version 22
		{{count: 2, total: 139, data: 111}, {count: 7, total: 140, data: 112}}, // L
		{{count: 17, total: 74, data: 46}}, // M
		{{count: 7, total: 54, data: 24}, {count: 16, total: 55, data: 25}}, // Q
		{{count: 34, total: 37, data: 13}}, // H
	},
	{ // version 23
		{{count: 4, total: 151, data: 121}, {count: 5, total: 152, data: 122}}, // L
		{{count: 4, total: 75, data: 47}, {count: 14, total: 76, data: 48}}, // M
		{{count: 11, total: 54, data: 24}, {count: 14, total: 55, data: 25}}, // Q
		{{count: 16, total: 45, data: 15}, {count: 14, total: 46, data: 16}}, // H
	},
	{ // version 24
		{{count: 6, total: 147, data: 117}, {count: 4, total: 148, data: 118}}, // L
		{{count: 6, total: 73, data: 45}, {count: 14, total: 74, data: 46}}, // M
		{{count: 11, total: 54, data: 24}, {count: 16, total: 55, data: 25}}, // Q
		{{count: 30, total: 46, data: 16}, {count: 2, total: 47, data: 17}}, // H
	},
	{ // version 25
		{{count: 8, total: 132, data: 106}, {count: 4, total: 133, data: 107}}, // L
		{{count: 8, total: 75, data: 47}, {count: 13, total: 76, data: 48}}, // M
		{{count: 7, total: 54, data: 24}, {count: 22, total: 55, data: 25}}, // Q
		{{count: 22, total: 45, data: 15}, {count: 13, total: 46, data: 16}}, // H
	},
	{ // version 26
		{{count: 10, total: 142, data: 114}, {count: 2, total: 143, data: 115}}, // L
		{{count: 19, total: 74, data: 46}, {count: 4, total: 75, data: 47}}, // M
		{{count: 28, total: 50, data: 22}, {count: 6, total: 51, data: 23}}, // Q
		{{count: 33, total: 46, data: 16}, {count: 4, total: 47, data: 17}}, // H
	},
	{ // version 27
		{{count: 8, total: 152, data: 122}, {count: 4, total: 153, data: 123}}, // L
		{{count: 22, total: 73, data: 45}, {count: 3, total: 74, data: 46}}, // M
		{{count: 8, total: 53, data: 23}, {count: 26, total: 54, data: 24}}, // Q
		{{count: 12, total: 45, data: 15}, {count: 28, total: 46, data: 16}}, // H
	},
	{ // version 28
		{{count: 3, total: 147, data: 117}, {count: 10, total: 148, data: 118}}, // L
		{{count: 3, total: 73, data: 45}, {count: 23, total: 74, data: 46}}, // M
		{{count: 4, total: 54, data: 24}, {count: 31, total: 55, data: 25}}, // Q
		{{count: 11, total: 45, data: 15}, {count: 31, total: 46, data: 16}}, // H
	},
	{ // version 29
		{{count: 7, total: 146, data: 116}, {count: 7, total: 147, data: 117}}, // L
		{{count: 21, total: 73, data: 45}, {count: 7, total: 74, data: 46}}, // M
		{{count: 1, total: 53, data: 23}, {count: 37, total: 54, data: 24}}, // Q
		{{count: 19, total: 45, data: 15}, {count: 26, total: 46, data: 16}}, // H
	},
	{ // version 30
		{{count: 5, total: 145, data: 115}, {count: 10, total: 146, data: 116}}, // L
		{{count: 19, total: 75, data: 47}, {count: 10, total: 76, data: 48}}, // M
		{{count: 15, total: 54, data: 24}, {count: 25, total: 55, data: 25}}, // Q
		{{count: 23, total: 45, data: 15}, {count: 25, total: 46, data: 16}}, // H
	},
	{ // version 31
		{{count: 13, total: 145, data: 115}, {count: 3, total: 146, data: 116}}, // L
		{{count: 2, total: 74, data: 46}, {count: 29, total: 75, data: 47}}, // M
		{{count: 42, total: 54, data: 24}, {count: 1, total: 55, data: 25}}, // Q
		{{count: 23, total: 45, data: 15}, {count: 28, total: 46, data: 16}}, // H
	},
	{ // version 32
		{{count: 17, total: 145, data: 115}}, // L
		{{count: 10, total: 74, data: 46}, {count: 23, total: 75, data: 47}}, // M
		{{count: 10, total: 54, data: 24}, {count: 35, total: 55, data: 25}}, // Q
		{{count: 19, total: 45, data: 15}, {count: 35, total: 46, data: 16}}, // H
	},
	{ // version 33
		{{count: 17, total: 145, data: 115}, {count: 1, total: 146, data: 116}}, // L
		{{count: 14, total: 74, data: 46}, {count: 21, total: 75, data: 47}}, // M
		{{count: 29, total: 54, data: 24}, {count: 19, total: 55, data: 25}}, // Q
		{{count: 11, total: 45, data: 15}, {count: 46, total: 46, data: 16}}, // H
	},
	{ // version 34
		{{count: 13, total: 145, data: 115}, {count: 6, total: 146, data: 116}}, // L
		{{count: 14, total: 74, data: 46}, {count: 23, total: 75, data: 47}}, // M
		{{count: 44, total: 54, data: 24}, {count: 7, total: 55, data: 25}}, // Q
		{{count: 59, total: 46, data: 16}, {count: 1, total: 47, data: 17}}, // H
	},
	{ // version 35
		{{count: 12, total: 151, data: 121}, {count: 7, total: 152, data: 122}}, // L
		{{count: 12, total: 75, data: 47}, {count: 26, total: 76, data: 48}}, // M
		{{count: 39, total: 54, data: 24}, {count: 14, total: 55, data: 25}}, // Q
		{{count: 22, total: 45, data: 15}, {count: 41, total: 46, data: 16}}, // H
	},
	{ // version 36
		{{count: 6, total: 151, data: 121}, {count: 14, total: 152, data: 122}}, // L
		{{count: 6, total: 75, data: 47}, {count: 34, total: 76, data: 48}}, // M
		{{count: 46, total: 54, data: 24}, {count: 10, total: 55, data: 25}}, // Q
		{{count: 2, total: 45, data: 15}, {count: 64, total: 46, data: 16}}, // H
	},
	{ // version 37
		{{count: 17, total: 152, data: 122}, {count: 4, total: 153, data: 123}}, // L
		{{count: 29, total: 74, data: 46}, {count: 14, total: 75, data: 47}}, // M
		{{count: 49, total: 54, data: 24}, {count: 10, total: 55, data: 25}}, // Q
		{{count: 24, total: 45, data: 15}, {count: 46, total: 46, data: 16}}, // H
	},
	{ // version 38
		{{count: 4, total: 152, data: 122}, {count: 18, total: 153, data: 123}}, // L
		{{count: 13, total: 74, data: 46}, {count: 32, total: 75, data: 47}}, // M
		{{count: 48, total: 54, data: 24}, {count: 14, total: 55, data: 25}}, // Q
		{{count: 42, total: 45, data: 15}, {count: 32, total: 46, data: 16}}, // H
	},
	{ // version 39
		{{count: 20, total: 147, data: 117}, {count: 4, total: 148, data: 118}}, // L
		{{count: 40, total: 75, data: 47}, {count: 7, total: 76, data: 48}}, // M
		{{count: 43, total: 54, data: 24}, {count: 22, total: 55, data: 25}}, // Q
		{{count: 10, total: 45, data: 15}, {count: 67, total: 46, data: 16}}, // H
	},
	{ // version 40
		{{count: 19, total: 148, data: 118}, {count: 6, total: 149, data: 119}}, // L
		{{count: 18, total: 75, data: 47}, {count: 31, total: 76, data: 48}}, // M
		{{count: 34, total: 54, data: 24}, {count: 34, total: 55, data: 25}}, // Q
		{{count: 20, total: 45, data: 15}, {count: 61, total: 46, data: 16}}, // H
	},
}
var alignmentPatternPositions = [41][]int{
	nil, // version 0 unused
	{}, // version 1
	{6, 18}, // version 2
	{6, 22}, // version 3
	{6, 26}, // version 4
	{6, 30}, // version 5
	{6, 34}, // version 6
	{6, 22, 38}, // version 7
	{6, 24, 42}, // version 8
	{6, 26, 46}, // version 9
	{6, 28, 50}, // version 10
	{6, 30, 54}, // version 11
	{6, 32, 58}, // version 12
	{6, 34, 62}, // version 13
	{6, 26, 46, 66}, // version 14
	{6, 26, 48, 70}, // version 15
	{6, 26, 50, 74}, // version 16
	{6, 30, 54, 78}, // version 17
	{6, 30, 56, 82}, // version 18
	{6, 30, 58, 86}, // version 19
	{6, 34, 62, 90}, // version 20
	{6, 28, 50, 72, 94}, // version 21
	{6, 26, 50, 74, 98}, // version 22
	{6, 30, 54, 78, 102}, // version 23
	{6, 28, 54, 80, 106}, // version 24
	{6, 32, 58, 84, 110}, // version 25
	{6, 30, 58, 86, 114}, // version 26
	{6, 34, 62, 90, 118}, // version 27
	{6, 26, 50, 74, 98, 122}, // version 28
	{6, 30, 54, 78, 102, 126}, // version 29
	{6, 26, 52, 78, 104, 130}, // version 30
	{6, 30, 56, 82, 108, 134}, // version 31
	{6, 34, 60, 86, 112, 138}, // version 32
	{6, 30, 58, 86, 114, 142}, // version 33
	{6, 34, 62, 90, 118, 146}, // version 34
	{6, 30, 54, 78, 102, 126, 150}, // version 35
	{6, 24, 50, 76, 102, 128, 154}, // version 36
	{6, 28, 54, 80, 106, 132, 158}, // version 37
	{6, 32, 58, 84, 110, 136, 162}, // version 38
	{6, 26, 54, 82, 110, 138, 166}, // version 39
	{6, 30, 58, 86, 114, 142, 170}, // version 40
}

// RSBlock describes one Reed-Solomon block's layout within a symbol.
type RSBlock struct {
	TotalCount int
	DataCount  int
}

// ECCount returns the number of error-correction codewords in the block.
func (b RSBlock) ECCount() int {
	return b.TotalCount - b.DataCount
}

// rsBlocks returns the ordered list of RS blocks for a version and error
// correction level, expanding rsBlockTable's run-length groups.
func rsBlocks(version int, ec ECLevel) []RSBlock {
	groups := rsBlockTable[version-1][ec.tableIndex()]
	var blocks []RSBlock
	for _, g := range groups {
		for i := 0; i < g.count; i++ {
			blocks = append(blocks, RSBlock{TotalCount: g.total, DataCount: g.data})
		}
	}
	return blocks
}

// bitLimitCache memoizes 8 * sum(data counts) for each (ec, version), the
// BIT_LIMIT_TABLE the version-fit algorithm scans upward from version 1.
var bitLimitCache [4][41]int

func init() {
	for ec := Low; ec <= High; ec++ {
		for v := 1; v <= 40; v++ {
			total := 0
			for _, b := range rsBlocks(v, ec) {
				total += b.DataCount
			}
			bitLimitCache[ec][v] = total * 8
		}
	}
}

// bitLimit returns the data bit capacity of a given version and error
// correction level.
func bitLimit(version int, ec ECLevel) int {
	return bitLimitCache[ec][version]
}

// ALPHANUMERIC_NUM: the 45-character alphanumeric set in canonical order,
// defined as alphanumericCharset in mode.go.

// Constants required at the system boundary by spec.md §6.
const (
	g15     = 0x537  // BCH(15,5) generator for format info
	g15Mask = 0x5412 // XOR mask applied to format info after BCH division
	g18     = 0x1F25 // BCH(18,6) generator for version info

	pad0 = 0xEC // first alternating pad byte
	pad1 = 0x11 // second alternating pad byte

	penaltyN1 = 3  // base cost of a run of >=5 same-colored modules
	penaltyN2 = 3  // per uniform 2x2 block
	penaltyN3 = 40 // per finder-like 1:1:3:1:1 run
	penaltyN4 = 10 // per 5% of dark-module imbalance past 50%
)
