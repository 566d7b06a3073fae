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

// bitsOf unpacks buf into one int (0 or 1) per bit, MSB first, for
// comparison against literal bit-pattern test vectors.
func bitsOf(buf *BitBuffer) []int {
	out := make([]int, buf.Len())
	for i := range out {
		byteIndex := i / 8
		pos := uint(i % 8)
		out[i] = int((buf.Bytes()[byteIndex] >> (7 - pos)) & 1)
	}
	return out
}

func TestBitBufferPut(t *testing.T) {
	buf := &BitBuffer{}

	buf.Put(0, 0)
	assert.Equal(t, 0, buf.Len())

	buf.Put(1, 1)
	assert.Equal(t, 1, buf.Len())
	assert.Equal(t, []byte{0x80}, buf.Bytes())

	buf.Put(0, 1)
	assert.Equal(t, 2, buf.Len())
	assert.Equal(t, []int{1, 0}, bitsOf(buf))

	buf.Put(5, 3)
	assert.Equal(t, 5, buf.Len())
	assert.Equal(t, []int{1, 0, 1, 0, 1}, bitsOf(buf))

	buf.Put(6, 3)
	assert.Equal(t, 8, buf.Len())
	assert.Equal(t, []int{1, 0, 1, 0, 1, 1, 1, 0}, bitsOf(buf))
	assert.Equal(t, []byte{0b10101110}, buf.Bytes())
}

func TestBitBufferMultiByte(t *testing.T) {
	buf := &BitBuffer{}
	buf.Put(0x1FF, 9)
	assert.Equal(t, 9, buf.Len())
	assert.Equal(t, []byte{0xFF, 0x80}, buf.Bytes())
}

func TestBitBufferPutBit(t *testing.T) {
	buf := &BitBuffer{}
	buf.PutBit(true)
	buf.PutBit(false)
	buf.PutBit(true)
	assert.Equal(t, []int{1, 0, 1}, bitsOf(buf))
}
