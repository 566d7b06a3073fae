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

// encodeRS splits data into the RS blocks prescribed for (version, ec),
// computes each block's error-correction codewords, and interleaves data
// and EC bytes across blocks per ISO/IEC 18004 §8.3.
func encodeRS(data []byte, version int, ec ECLevel) []byte {
	blocks := rsBlocks(version, ec)

	dataParts := make([][]byte, len(blocks))
	ecParts := make([][]byte, len(blocks))

	offset := 0
	maxData, maxEC := 0, 0
	for i, b := range blocks {
		d := data[offset : offset+b.DataCount]
		offset += b.DataCount
		dataParts[i] = d

		gen := rsGenerator(b.ECCount())
		msg := make([]int, len(d)+b.ECCount())
		for j, v := range d {
			msg[j] = int(v)
		}
		remainder := newPolynomial(msg).mod(gen)

		ecBytes := make([]byte, b.ECCount())
		pad := len(ecBytes) - len(remainder)
		for j, v := range remainder {
			ecBytes[pad+j] = byte(v)
		}
		ecParts[i] = ecBytes

		if len(d) > maxData {
			maxData = len(d)
		}
		if len(ecBytes) > maxEC {
			maxEC = len(ecBytes)
		}
	}

	total := 0
	for _, b := range blocks {
		total += b.TotalCount
	}
	out := make([]byte, 0, total)

	for i := 0; i < maxData; i++ {
		for _, d := range dataParts {
			if i < len(d) {
				out = append(out, d[i])
			}
		}
	}
	for i := 0; i < maxEC; i++ {
		for _, e := range ecParts {
			if i < len(e) {
				out = append(out, e[i])
			}
		}
	}

	return out
}
