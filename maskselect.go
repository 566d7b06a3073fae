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

// penaltyScore sums the four ISO/IEC 18004 §8.8.2 penalty rules for a
// finished trial matrix.
func penaltyScore(m *Matrix) int {
	return penaltyRuns(m) + penaltyBlocks(m) + penaltyFinderLike(m) + penaltyBalance(m)
}

// penaltyRuns implements rule 1: runs of >=5 same-colored modules in a row
// or column each cost N1 plus one point per module past the fifth.
func penaltyRuns(m *Matrix) int {
	total := 0
	n := m.size
	for r := 0; r < n; r++ {
		total += runPenalty(func(i int) bool { return m.isDark(r, i) }, n)
	}
	for c := 0; c < n; c++ {
		total += runPenalty(func(i int) bool { return m.isDark(i, c) }, n)
	}
	return total
}

func runPenalty(at func(i int) bool, n int) int {
	total := 0
	prev := at(0)
	runLen := 1
	for i := 1; i < n; i++ {
		if at(i) == prev {
			runLen++
			continue
		}
		if runLen >= 5 {
			total += penaltyN1 + (runLen - 5)
		}
		prev = at(i)
		runLen = 1
	}
	if runLen >= 5 {
		total += penaltyN1 + (runLen - 5)
	}
	return total
}

// penaltyBlocks implements rule 2: every uniform 2x2 window of modules
// (overlapping windows each count) costs N2.
func penaltyBlocks(m *Matrix) int {
	total := 0
	for r := 0; r < m.size-1; r++ {
		for c := 0; c < m.size-1; c++ {
			v := m.isDark(r, c)
			if v == m.isDark(r, c+1) && v == m.isDark(r+1, c) && v == m.isDark(r+1, c+1) {
				total += penaltyN2
			}
		}
	}
	return total
}

// finderLikePattern and its reverse are the two 11-bit sequences rule 3
// looks for; true means dark.
var (
	finderLikePattern = [11]bool{true, false, true, true, true, false, true, false, false, false, false}
	finderLikeReverse = [11]bool{false, false, false, false, true, false, true, true, true, false, true}
)

// penaltyFinderLike implements rule 3, scanning rows then columns for the
// 1:1:3:1:1-ratio patterns 10111010000 and 00001011101. The vertical scan
// mirrors the horizontal scan exactly (the source this was ported from has
// an off-by-one in its vertical scan; this corrects it per the standard).
func penaltyFinderLike(m *Matrix) int {
	total := 0
	n := m.size
	for r := 0; r < n; r++ {
		total += finderLikeCount(func(i int) bool { return m.isDark(r, i) }, n)
	}
	for c := 0; c < n; c++ {
		total += finderLikeCount(func(i int) bool { return m.isDark(i, c) }, n)
	}
	return total
}

func finderLikeCount(at func(i int) bool, n int) int {
	total := 0
	for i := 0; i+10 < n; i++ {
		if matchesAt(at, i, finderLikePattern) || matchesAt(at, i, finderLikeReverse) {
			total += penaltyN3
		}
	}
	return total
}

func matchesAt(at func(i int) bool, offset int, pattern [11]bool) bool {
	for k, want := range pattern {
		if at(offset+k) != want {
			return false
		}
	}
	return true
}

// penaltyBalance implements rule 4: N4 points for every 5% the dark-module
// ratio sits past 50%.
func penaltyBalance(m *Matrix) int {
	dark := 0
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			if m.isDark(r, c) {
				dark++
			}
		}
	}
	total := m.size * m.size
	diffNum := dark*100 - 50*total
	if diffNum < 0 {
		diffNum = -diffNum
	}
	return penaltyN4 * (diffNum / (5 * total))
}

// selectBestMask builds all 8 candidate symbols from skeleton (functional
// patterns only, no format/version bits written) and the interleaved
// codeword stream, scores each, and returns the index of the lowest-scoring
// one. Ties favor the lowest index because the loop only replaces the
// current best on a strictly lower score.
func selectBestMask(skeleton *Matrix, version int, codewords []byte) (int, *Matrix) {
	bestIndex := 0
	var bestMatrix *Matrix
	bestScore := 0

	for mask := 0; mask < 8; mask++ {
		trial := skeleton.clone()
		placeData(trial, codewords, mask)
		stampFormatPlaceholder(trial)
		if version >= 7 {
			stampVersionPlaceholder(trial)
		}
		score := penaltyScore(trial)
		if mask == 0 || score < bestScore {
			bestScore = score
			bestIndex = mask
			bestMatrix = trial
		}
	}

	return bestIndex, bestMatrix
}
