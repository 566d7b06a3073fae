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

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitLimitKnownValues(t *testing.T) {
	cases := []struct {
		version  int
		ec       ECLevel
		dataCW   int
	}{
		{3, Medium, 44},
		{3, Quartile, 34},
		{3, High, 26},
		{6, Low, 136},
		{7, Low, 156},
		{9, Low, 232},
		{9, Medium, 182},
		{12, High, 158},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("v%d-%s", tc.version, tc.ec), func(t *testing.T) {
			assert.Equal(t, tc.dataCW*8, bitLimit(tc.version, tc.ec))
		})
	}
}

func TestRSBlocksTotalMatchesBitLimit(t *testing.T) {
	for v := 1; v <= 40; v++ {
		for ec := Low; ec <= High; ec++ {
			total := 0
			for _, b := range rsBlocks(v, ec) {
				total += b.DataCount
			}
			assert.Equal(t, bitLimit(v, ec), total*8, "version %d ec %s", v, ec)
		}
	}
}

func TestRSBlocksECCountPositive(t *testing.T) {
	for v := 1; v <= 40; v++ {
		for ec := Low; ec <= High; ec++ {
			for _, b := range rsBlocks(v, ec) {
				assert.Greater(t, b.ECCount(), 0)
				assert.Greater(t, b.DataCount, 0)
			}
		}
	}
}

func TestAlignmentPatternPositions(t *testing.T) {
	cases := []struct {
		version int
		want    []int
	}{
		{1, []int{}},
		{2, []int{6, 18}},
		{3, []int{6, 22}},
		{6, []int{6, 34}},
		{16, []int{6, 26, 50, 74}},
		{25, []int{6, 32, 58, 84, 110}},
		{39, []int{6, 26, 54, 82, 110, 138, 166}},
		{40, []int{6, 30, 58, 86, 114, 142, 170}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, alignmentPatternPositions[tc.version], "version %d", tc.version)
	}
}
