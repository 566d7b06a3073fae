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

import "regexp"

// Mode is the encoding mode of a Segment. Kanji is reserved by the
// standard's mode indicator space but unsupported by this package.
type Mode int

const (
	ModeNumeric      Mode = 0b0001
	ModeAlphanumeric Mode = 0b0010
	ModeByte         Mode = 0b0100
)

func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "numeric"
	case ModeAlphanumeric:
		return "alphanumeric"
	case ModeByte:
		return "byte"
	default:
		return "unknown"
	}
}

// MODE_SIZE_SMALL/MEDIUM/LARGE: character-count indicator bit widths by
// mode, for versions 1-9, 10-26, and 27-40 respectively.
var (
	modeSizeSmall  = map[Mode]int{ModeNumeric: 10, ModeAlphanumeric: 9, ModeByte: 8}
	modeSizeMedium = map[Mode]int{ModeNumeric: 12, ModeAlphanumeric: 11, ModeByte: 16}
	modeSizeLarge  = map[Mode]int{ModeNumeric: 14, ModeAlphanumeric: 13, ModeByte: 16}
)

// charCountBits returns the character-count indicator width for mode m at
// the given version.
func charCountBits(version int, m Mode) int {
	switch {
	case version < 1 || version > 40:
		panic(&Error{Kind: InvalidInput, Msg: "version out of range"})
	case version <= 9:
		return modeSizeSmall[m]
	case version <= 26:
		return modeSizeMedium[m]
	default:
		return modeSizeLarge[m]
	}
}

// band identifies which of the three character-count width bands a version
// falls into; two versions in the same band always share cc_width for every
// mode, which is what the two-pass version-fit loop checks for stability.
func band(version int) int {
	switch {
	case version <= 9:
		return 0
	case version <= 26:
		return 1
	default:
		return 2
	}
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
	alphanumericRegexp = regexp.MustCompile(`^[0-9A-Z $%*+\-./:]*$`)
)

// bestMode picks the most compact mode that can represent data, in the
// order numeric, alphanumeric, byte.
func bestMode(data []byte) Mode {
	s := string(data)
	switch {
	case numericRegexp.MatchString(s):
		return ModeNumeric
	case alphanumericRegexp.MatchString(s):
		return ModeAlphanumeric
	default:
		return ModeByte
	}
}
