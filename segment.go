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

import "strings"

// numberLength maps the count of digits in a trailing numeric group (1, 2,
// or 3) to the number of bits used to encode that group.
var numberLength = [4]int{0, 4, 7, 10}

// Segment is an immutable fragment of a QR payload tagged with the mode
// used to encode it.
type Segment struct {
	mode Mode
	data []byte
}

// NewSegment builds a segment from data, auto-detecting the most compact
// mode able to represent it (numeric, then alphanumeric, then byte).
func NewSegment(data []byte) *Segment {
	return &Segment{mode: bestMode(data), data: data}
}

// NewSegmentWithMode builds a segment using an explicitly chosen mode.
// It returns an *Error of kind InvalidMode if data cannot be represented in
// that mode.
func NewSegmentWithMode(data []byte, mode Mode) (*Segment, error) {
	switch mode {
	case ModeNumeric:
		if !numericRegexp.Match(data) {
			return nil, &Error{Kind: InvalidMode, Msg: "data is not all digits for numeric mode"}
		}
	case ModeAlphanumeric:
		if !alphanumericRegexp.Match(data) {
			return nil, &Error{Kind: InvalidMode, Msg: "data contains characters outside the alphanumeric set"}
		}
	case ModeByte:
		// Any byte sequence is representable in byte mode.
	default:
		return nil, &Error{Kind: InvalidMode, Msg: "unsupported mode"}
	}
	return &Segment{mode: mode, data: data}, nil
}

// Mode reports the segment's encoding mode.
func (s *Segment) Mode() Mode {
	return s.mode
}

// Len returns the number of characters (not bits) carried by the segment,
// the value written into the character-count indicator.
func (s *Segment) Len() int {
	return len(s.data)
}

// bitLength returns the number of payload bits this segment contributes,
// not counting its mode indicator or character-count indicator.
func (s *Segment) bitLength() int {
	switch s.mode {
	case ModeNumeric:
		n := len(s.data)
		full, rem := n/3, n%3
		return full*10 + numberLength[rem]
	case ModeAlphanumeric:
		n := len(s.data)
		return (n/2)*11 + (n%2)*6
	default: // ModeByte
		return len(s.data) * 8
	}
}

// write appends this segment's mode indicator, character-count indicator,
// and payload bits to buf at the given version (which determines the
// character-count indicator width).
func (s *Segment) write(buf *BitBuffer, version int) {
	buf.Put(int(s.mode), 4)
	buf.Put(len(s.data), charCountBits(version, s.mode))
	s.writePayload(buf)
}

func (s *Segment) writePayload(buf *BitBuffer) {
	switch s.mode {
	case ModeNumeric:
		for i := 0; i < len(s.data); i += 3 {
			end := i + 3
			if end > len(s.data) {
				end = len(s.data)
			}
			chunk := s.data[i:end]
			n := len(chunk)
			value := 0
			for _, c := range chunk {
				value = value*10 + int(c-'0')
			}
			buf.Put(value, numberLength[n])
		}
	case ModeAlphanumeric:
		for i := 0; i < len(s.data); i += 2 {
			if i+1 < len(s.data) {
				v1 := strings.IndexByte(alphanumericCharset, s.data[i])
				v2 := strings.IndexByte(alphanumericCharset, s.data[i+1])
				buf.Put(v1*45+v2, 11)
			} else {
				v1 := strings.IndexByte(alphanumericCharset, s.data[i])
				buf.Put(v1, 6)
			}
		}
	default: // ModeByte
		for _, b := range s.data {
			buf.Put(int(b), 8)
		}
	}
}
