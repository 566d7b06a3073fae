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

// Kind classifies the errors a caller of this package can receive from
// Build. InternalInvariant conditions are never returned this way — they
// panic, since they indicate a bug in this package rather than bad input.
type Kind int

const (
	// InvalidInput covers malformed configuration: a version outside
	// [1,40], a mask pattern outside [0,7], a negative border, or an
	// unrecognized error correction level.
	InvalidInput Kind = iota
	// InvalidMode means an explicit mode was requested that cannot
	// represent the given payload (e.g. alphanumeric mode with lowercase
	// letters).
	InvalidMode
	// DataOverflow means the assembled bitstream exceeds the capacity of
	// the pinned version, or of version 40 when the version is auto-fitted,
	// at the requested error correction level.
	DataOverflow
	// InternalInvariant marks an unreachable condition. It is exported so
	// callers using errors.As can recognize it, but this package never
	// returns one from Build; it always panics instead.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case InvalidMode:
		return "invalid mode"
	case DataOverflow:
		return "data overflow"
	case InternalInvariant:
		return "internal invariant violated"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by this package's exported functions.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}
