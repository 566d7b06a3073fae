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

func TestDrawFunctionPatternsHasBothColors(t *testing.T) {
	for version := 1; version <= 40; version++ {
		t.Run(fmt.Sprintf("version %d", version), func(t *testing.T) {
			size := version*4 + 17
			m := newMatrix(size)
			m.drawFunctionPatterns(version)

			hasDark, hasLight := false, false
			for r := 0; r < size; r++ {
				for c := 0; c < size; c++ {
					if m.isDark(r, c) {
						hasDark = true
					} else if !m.isUnset(r, c) {
						hasLight = true
					}
				}
			}
			assert.True(t, hasDark)
			assert.True(t, hasLight)
			assert.True(t, m.isDark(size-8, 8), "dark module")
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := newMatrix(21)
	m.drawFunctionPatterns(1)
	clone := m.clone()
	clone.set(0, 0, false)
	assert.True(t, m.isDark(0, 0))
	assert.False(t, clone.isDark(0, 0))
}

func TestFinderPatternSeparatorIsLight(t *testing.T) {
	m := newMatrix(21)
	m.drawFunctionPatterns(1)
	// the module just outside the top-left finder, on its separator ring
	assert.False(t, m.isDark(7, 0))
	assert.False(t, m.isDark(0, 7))
}
