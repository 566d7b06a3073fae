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

import "sync"

// SkeletonCache memoizes the functional-pattern skeleton of a matrix by
// version. It externalizes the module-level cache_qr_mat of the encoder
// this package was ported from: presence or absence of a cache must never
// affect Build's output, only how much work a miss costs.
type SkeletonCache interface {
	Get(version int) (*Matrix, bool)
	Put(version int, m *Matrix)
}

// memCache is a process-wide, read-mostly SkeletonCache backed by a mutex.
// A compute-if-absent primitive would avoid redundant concurrent misses,
// but since a miss only recomputes without externally observable
// difference (spec.md §5), the simpler lock-around-a-map is sufficient.
type memCache struct {
	mu    sync.RWMutex
	cache map[int]*Matrix
}

// NewMemCache returns a SkeletonCache suitable for sharing across
// QRCode values within a process. Leaving a QRCode without a cache (the
// default from New) is equally valid and simply recomputes the skeleton on every Build.
func NewMemCache() SkeletonCache {
	return &memCache{cache: make(map[int]*Matrix)}
}

func (c *memCache) Get(version int) (*Matrix, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.cache[version]
	return m, ok
}

func (c *memCache) Put(version int, m *Matrix) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[version] = m
}

// skeletonFor returns the functional-pattern skeleton for version, reading
// from and populating cache when one is supplied.
func skeletonFor(cache SkeletonCache, version int) *Matrix {
	if cache != nil {
		if m, ok := cache.Get(version); ok {
			return m.clone()
		}
	}
	size := version*4 + 17
	m := newMatrix(size)
	m.drawFunctionPatterns(version)
	if cache != nil {
		cache.Put(version, m)
	}
	return m.clone()
}
