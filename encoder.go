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

// Package qrcode builds ISO/IEC 18004 Model 2 QR symbols: segment analysis,
// bitstream assembly, Reed-Solomon error correction, module placement, mask
// selection, and format/version stamping.
package qrcode

import "log/slog"

// QRCode accumulates segments and builds them into a finished symbol. The
// zero value is not usable; construct one with New.
type QRCode struct {
	ec      ECLevel
	version int // 0 selects auto-fit
	mask    int // negative selects auto-select
	border  int
	cache   SkeletonCache
	logger  *slog.Logger

	segments []*Segment

	built        bool
	finalVersion int
	finalMask    int
	matrix       *Matrix
}

// Option configures a QRCode at construction time.
type Option func(*QRCode)

// WithVersion pins the symbol to an explicit version instead of the
// smallest one the payload fits in. Build returns a DataOverflow error if
// the payload does not fit at this version.
func WithVersion(version int) Option {
	return func(q *QRCode) { q.version = version }
}

// WithMask pins the mask pattern instead of running the penalty-score
// selection across all eight.
func WithMask(mask int) Option {
	return func(q *QRCode) { q.mask = mask }
}

// WithBorder sets the quiet-zone width, in modules, added on every side by
// Matrix. The standard recommends 4; the default matches it.
func WithBorder(border int) Option {
	return func(q *QRCode) { q.border = border }
}

// WithSkeletonCache supplies a SkeletonCache so repeated builds at the same
// version skip redrawing the functional patterns.
func WithSkeletonCache(cache SkeletonCache) Option {
	return func(q *QRCode) { q.cache = cache }
}

// WithLogger overrides the *slog.Logger used for build diagnostics. The
// default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(q *QRCode) { q.logger = logger }
}

// New returns a QRCode at the given error correction level, ready to
// receive segments via AddSegment or AddData.
func New(ec ECLevel, opts ...Option) *QRCode {
	q := &QRCode{
		ec:     ec,
		mask:   -1,
		border: 4,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// AddSegment appends a pre-built segment to the payload.
func (q *QRCode) AddSegment(seg *Segment) {
	q.segments = append(q.segments, seg)
}

// AddData appends data as a single segment, auto-detecting its mode.
func (q *QRCode) AddData(data []byte) {
	q.AddSegment(NewSegment(data))
}

// ccBitsForBand returns the character-count indicator width mode would use
// at a version in the given band (0, 1, or 2), without pinning to one
// concrete version. Used by the version-fit search before a candidate
// version is known.
func ccBitsForBand(band int, m Mode) int {
	switch band {
	case 0:
		return modeSizeSmall[m]
	case 1:
		return modeSizeMedium[m]
	default:
		return modeSizeLarge[m]
	}
}

// bitsForBand returns the total payload bit length (mode indicators,
// character-count indicators, and data) assuming every segment's
// character-count indicator is sized for the given band.
func (q *QRCode) bitsForBand(band int) int {
	total := 0
	for _, seg := range q.segments {
		total += 4 + ccBitsForBand(band, seg.mode) + seg.bitLength()
	}
	return total
}

// bitsForVersion is bitsForBand specialized to one concrete version.
func (q *QRCode) bitsForVersion(version int) int {
	total := 0
	for _, seg := range q.segments {
		total += 4 + charCountBits(version, seg.mode) + seg.bitLength()
	}
	return total
}

// fitVersion picks the smallest version whose capacity, at q.ec, holds the
// accumulated segments. Because a segment's character-count indicator width
// depends on which of the three version bands it lands in, the search
// fixes a band, finds the smallest fitting version under that assumption,
// and restarts whenever that version landed in a different band than
// assumed. Three passes always suffice: bands only widen a segment's
// indicator, so each restart's fitted version can only grow, and there are
// only three bands to move through.
func (q *QRCode) fitVersion() (int, error) {
	if q.version != 0 {
		if q.version < 1 || q.version > 40 {
			return 0, &Error{Kind: InvalidInput, Msg: "version out of range [1,40]"}
		}
		if q.bitsForVersion(q.version) > bitLimit(q.version, q.ec) {
			return 0, &Error{Kind: DataOverflow, Msg: "payload does not fit in the requested version"}
		}
		return q.version, nil
	}

	assumedBand := 0
	for pass := 0; pass < 3; pass++ {
		total := q.bitsForBand(assumedBand)
		fitted := 0
		for v := 1; v <= 40; v++ {
			if total <= bitLimit(v, q.ec) {
				fitted = v
				break
			}
		}
		if fitted == 0 {
			return 0, &Error{Kind: DataOverflow, Msg: "payload does not fit in any version at this error correction level"}
		}
		if band(fitted) == assumedBand {
			return fitted, nil
		}
		assumedBand = band(fitted)
	}
	panic(&Error{Kind: InternalInvariant, Msg: "version fit did not converge in three passes"})
}

// Build runs the full encoding pipeline: picks a version (unless pinned),
// assembles the bitstream, computes Reed-Solomon error correction,
// places data modules (trying all eight masks unless one is pinned), and
// stamps the final format and version info. It may be called more than
// once; each call replaces the previously built matrix.
func (q *QRCode) Build() error {
	if q.border < 0 {
		return &Error{Kind: InvalidInput, Msg: "border must not be negative"}
	}

	version, err := q.fitVersion()
	if err != nil {
		q.logger.Error("qrcode: version fit failed", "error", err)
		return err
	}

	buf := &BitBuffer{}
	for _, seg := range q.segments {
		seg.write(buf, version)
	}

	capacity := bitLimit(version, q.ec)
	if remaining := capacity - buf.Len(); remaining > 0 {
		term := remaining
		if term > 4 {
			term = 4
		}
		buf.Put(0, term)
	}
	for buf.Len()%8 != 0 {
		buf.PutBit(false)
	}
	for toggle := 0; buf.Len() < capacity; toggle++ {
		if toggle%2 == 0 {
			buf.Put(pad0, 8)
		} else {
			buf.Put(pad1, 8)
		}
	}

	codewords := encodeRS(buf.Bytes(), version, q.ec)
	skeleton := skeletonFor(q.cache, version)

	var maskIndex int
	var matrix *Matrix
	if q.mask >= 0 {
		if q.mask > 7 {
			return &Error{Kind: InvalidInput, Msg: "mask pattern out of range [0,7]"}
		}
		maskIndex = q.mask
		matrix = skeleton.clone()
		placeData(matrix, codewords, maskIndex)
	} else {
		maskIndex, matrix = selectBestMask(skeleton, version, codewords)
	}

	stampFormatInfo(matrix, q.ec, maskIndex)
	if version >= 7 {
		stampVersionInfo(matrix, version)
	}

	q.finalVersion = version
	q.finalMask = maskIndex
	q.matrix = matrix
	q.built = true

	q.logger.Debug("qrcode: build complete",
		"version", version,
		"ec", q.ec,
		"mask", maskIndex,
		"size", matrix.size,
		"codewords", len(codewords),
	)
	return nil
}

// Version returns the version chosen by the most recent Build. It panics
// if Build has not succeeded yet.
func (q *QRCode) Version() int {
	q.mustBeBuilt()
	return q.finalVersion
}

// Mask returns the mask pattern chosen (or pinned) by the most recent
// Build. It panics if Build has not succeeded yet.
func (q *QRCode) Mask() int {
	q.mustBeBuilt()
	return q.finalMask
}

// Matrix returns the finished symbol as a square grid of booleans (true
// means a dark module), surrounded by the configured quiet-zone border. It
// panics if Build has not succeeded yet.
func (q *QRCode) Matrix() [][]bool {
	q.mustBeBuilt()
	n := q.matrix.size
	size := n + q.border*2
	out := make([][]bool, size)
	for r := range out {
		out[r] = make([]bool, size)
		if r < q.border || r >= q.border+n {
			continue
		}
		for c := q.border; c < q.border+n; c++ {
			out[r][c] = q.matrix.isDark(r-q.border, c-q.border)
		}
	}
	return out
}

func (q *QRCode) mustBeBuilt() {
	if !q.built {
		panic(&Error{Kind: InternalInvariant, Msg: "qrcode: Matrix/Version/Mask called before a successful Build"})
	}
}
