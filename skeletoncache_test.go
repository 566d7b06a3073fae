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
	"github.com/stretchr/testify/require"
)

func TestMemCacheGetPut(t *testing.T) {
	cache := NewMemCache()
	_, ok := cache.Get(5)
	assert.False(t, ok)

	m := newMatrix(37)
	cache.Put(5, m)

	got, ok := cache.Get(5)
	require.True(t, ok)
	assert.Same(t, m, got)
}

func TestSkeletonForReturnsIndependentClones(t *testing.T) {
	cache := NewMemCache()
	a := skeletonFor(cache, 3)
	b := skeletonFor(cache, 3)

	a.set(0, 0, false)
	assert.True(t, b.isDark(0, 0))
}

func TestSkeletonForWithoutCacheStillWorks(t *testing.T) {
	m := skeletonFor(nil, 2)
	assert.Equal(t, 2*4+17, m.size)
}

func TestBuildProducesSameResultWithOrWithoutCache(t *testing.T) {
	cache := NewMemCache()
	q1 := New(Medium, WithSkeletonCache(cache))
	q1.AddData([]byte("cached"))
	require.NoError(t, q1.Build())

	q2 := New(Medium)
	q2.AddData([]byte("cached"))
	require.NoError(t, q2.Build())

	assert.Equal(t, q1.Matrix(), q2.Matrix())
}
