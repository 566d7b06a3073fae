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

// ECLevel is the error correction level of a symbol.
type ECLevel int

const (
	Low      ECLevel = iota // recovers ~7% of data
	Medium                  // recovers ~15% of data
	Quartile                // recovers ~25% of data
	High                    // recovers ~30% of data
)

// tableIndex returns this level's position in rsBlockTable's per-version
// group, ordered Low, Medium, Quartile, High.
func (e ECLevel) tableIndex() int {
	switch e {
	case Low, Medium, Quartile, High:
		return int(e)
	default:
		panic(&Error{Kind: InvalidInput, Msg: "unknown error correction level"})
	}
}

// formatBits returns the 2-bit ordinal the standard uses inside format
// info. Note this is NOT the same ordering as the ECLevel iota values: the
// standard numbers the levels L=1, M=0, Q=3, H=2.
func (e ECLevel) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic(&Error{Kind: InvalidInput, Msg: "unknown error correction level"})
	}
}

func (e ECLevel) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

// ParseECLevel maps a single-letter string ("L", "M", "Q", "H") to an
// ECLevel, for use by configuration and CLI layers.
func ParseECLevel(s string) (ECLevel, error) {
	switch s {
	case "L", "l":
		return Low, nil
	case "M", "m":
		return Medium, nil
	case "Q", "q":
		return Quartile, nil
	case "H", "h":
		return High, nil
	default:
		return 0, &Error{Kind: InvalidInput, Msg: "unrecognized error correction level " + s}
	}
}
