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

func TestBestMode(t *testing.T) {
	cases := []struct {
		data string
		mode Mode
	}{
		{"", ModeNumeric},
		{"0", ModeNumeric},
		{"79068", ModeNumeric},
		{"A", ModeAlphanumeric},
		{"XYZ", ModeAlphanumeric},
		{"+123 ABC$", ModeAlphanumeric},
		{"a", ModeByte},
		{"XYZ!", ModeByte},
		{"\x01", ModeByte},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.mode, bestMode([]byte(tc.data)), tc.data)
	}
}

func TestNewSegmentWithModeRejectsMismatch(t *testing.T) {
	_, err := NewSegmentWithMode([]byte("abc"), ModeAlphanumeric)
	assert.Error(t, err)
	var qrErr *Error
	assert.ErrorAs(t, err, &qrErr)
	assert.Equal(t, InvalidMode, qrErr.Kind)

	seg, err := NewSegmentWithMode([]byte("ABC 123"), ModeAlphanumeric)
	assert.NoError(t, err)
	assert.Equal(t, ModeAlphanumeric, seg.Mode())
}

func TestSegmentWriteNumeric(t *testing.T) {
	cases := []struct {
		text string
		bits []int
	}{
		{"9", []int{1, 0, 0, 1}},
		{"81", []int{1, 0, 1, 0, 0, 0, 1}},
		{"673", []int{1, 0, 1, 0, 1, 0, 0, 0, 0, 1}},
	}
	for _, tc := range cases {
		seg := NewSegment([]byte(tc.text))
		assert.Equal(t, ModeNumeric, seg.Mode())
		buf := &BitBuffer{}
		seg.writePayload(buf)
		assert.Equal(t, tc.bits, bitsOf(buf), tc.text)
	}
}

func TestSegmentWriteAlphanumeric(t *testing.T) {
	cases := []struct {
		text string
		bits []int
	}{
		{"A", []int{0, 0, 1, 0, 1, 0}},
		{"%:", []int{1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0}},
		{"Q R", []int{1, 0, 0, 1, 0, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 1}},
	}
	for _, tc := range cases {
		seg := NewSegment([]byte(tc.text))
		assert.Equal(t, ModeAlphanumeric, seg.Mode())
		buf := &BitBuffer{}
		seg.writePayload(buf)
		assert.Equal(t, tc.bits, bitsOf(buf), tc.text)
	}
}

func TestSegmentWriteByte(t *testing.T) {
	seg := NewSegment([]byte{0xEF, 0xBB})
	assert.Equal(t, ModeByte, seg.Mode())
	buf := &BitBuffer{}
	seg.writePayload(buf)
	assert.Equal(t, []byte{0xEF, 0xBB}, buf.Bytes())
}

func TestSegmentBitLengthMatchesWrittenLength(t *testing.T) {
	for _, text := range []string{"", "9", "673", "A", "%:", "Q R", "hello!"} {
		seg := NewSegment([]byte(text))
		buf := &BitBuffer{}
		seg.writePayload(buf)
		assert.Equal(t, seg.bitLength(), buf.Len(), text)
	}
}

func TestCharCountBitsBands(t *testing.T) {
	assert.Equal(t, 10, charCountBits(1, ModeNumeric))
	assert.Equal(t, 12, charCountBits(10, ModeNumeric))
	assert.Equal(t, 14, charCountBits(27, ModeNumeric))
	assert.Equal(t, 9, charCountBits(9, ModeAlphanumeric))
	assert.Equal(t, 11, charCountBits(26, ModeAlphanumeric))
	assert.Equal(t, 16, charCountBits(40, ModeByte))
}
