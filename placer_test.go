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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceDataFillsEveryUnsetCell(t *testing.T) {
	for version := 1; version <= 10; version++ {
		skeleton := newMatrix(version*4 + 17)
		skeleton.drawFunctionPatterns(version)

		data := make([]byte, bitLimit(version, Low)/8)
		for mask := 0; mask < 8; mask++ {
			trial := skeleton.clone()
			placeData(trial, data, mask)
			for r := 0; r < trial.size; r++ {
				for c := 0; c < trial.size; c++ {
					assert.False(t, trial.isUnset(r, c), "version %d mask %d (%d,%d)", version, mask, r, c)
				}
			}
		}
	}
}

func TestPlaceDataSkipsColumnSix(t *testing.T) {
	skeleton := newMatrix(21)
	skeleton.drawFunctionPatterns(1)
	data := make([]byte, bitLimit(1, Low)/8)
	placeData(skeleton, data, 0)
	// column 6 is the vertical timing pattern and must retain its
	// alternating pattern, never a data bit.
	for i := 8; i < skeleton.size-8; i++ {
		assert.Equal(t, i%2 == 0, skeleton.isDark(i, 6))
	}
}

func TestMaskFuncsCount(t *testing.T) {
	assert.Equal(t, 8, len(maskFuncs))
}
