/*
Copyright 2024 The Unitext Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package segment implements the UAX #29 grapheme cluster, word and
// sentence boundary rule sets over scalar sequences.
package segment

import "github.com/unitext-go/unitext/uchar"

// IsGraphemeBoundary reports whether there is an extended grapheme cluster
// boundary immediately before seq[i], following the GB1-GB999 rule chain
// in priority order. i must satisfy 0 <= i <= len(seq); IsGraphemeBoundary
// always reports true for i == 0 and i == len(seq) (GB1, GB2).
func IsGraphemeBoundary(seq []rune, i int) bool {
	if i <= 0 || i >= len(seq) {
		return true
	}
	before, after := seq[i-1], seq[i]
	gbBefore, gbAfter := uchar.GraphemeBreakProperty(before), uchar.GraphemeBreakProperty(after)

	// GB3: CR x LF.
	if gbBefore == uchar.GraphemeCR && gbAfter == uchar.GraphemeLF {
		return false
	}
	// GB4, GB5: break before/after Control, CR, LF, except GB3.
	if isGraphemeControl(gbBefore) {
		return true
	}
	if isGraphemeControl(gbAfter) {
		return true
	}
	// GB6, GB7, GB8: Hangul syllable sequences.
	if gbBefore == uchar.GraphemeL && (gbAfter == uchar.GraphemeL || gbAfter == uchar.GraphemeV || gbAfter == uchar.GraphemeLV || gbAfter == uchar.GraphemeLVT) {
		return false
	}
	if (gbBefore == uchar.GraphemeLV || gbBefore == uchar.GraphemeV) && (gbAfter == uchar.GraphemeV || gbAfter == uchar.GraphemeT) {
		return false
	}
	if (gbBefore == uchar.GraphemeLVT || gbBefore == uchar.GraphemeT) && gbAfter == uchar.GraphemeT {
		return false
	}
	// GB9: x (Extend | ZWJ).
	if gbAfter == uchar.GraphemeExtend || gbAfter == uchar.GraphemeZWJ {
		return false
	}
	// GB9a: x SpacingMark.
	if gbAfter == uchar.GraphemeSpacingMark {
		return false
	}
	// GB9b: Prepend x.
	if gbBefore == uchar.GraphemePrepend {
		return false
	}
	// GB11: Extended_Pictographic Extend* ZWJ x Extended_Pictographic.
	if gbBefore == uchar.GraphemeZWJ && uchar.IsExtendedPictographic(after) && extendedPictographicBeforeZWJ(seq, i-1) {
		return false
	}
	// GB12, GB13: regional indicator pairs.
	if gbBefore == uchar.GraphemeRegionalIndicator && gbAfter == uchar.GraphemeRegionalIndicator {
		return !precedingRegionalIndicatorCountIsOdd(seq, i-1)
	}
	// GB999: otherwise break.
	return true
}

func isGraphemeControl(gb uchar.GraphemeBreak) bool {
	return gb == uchar.GraphemeControl || gb == uchar.GraphemeCR || gb == uchar.GraphemeLF
}

// extendedPictographicBeforeZWJ reports whether the run ending at the ZWJ
// at position zwjPos (scanning backward over Extend scalars) began with an
// Extended_Pictographic scalar, per GB11's \p{Extended_Pictographic}
// Extend* ZWJ lookbehind.
func extendedPictographicBeforeZWJ(seq []rune, zwjPos int) bool {
	i := zwjPos - 1
	for i >= 0 && uchar.GraphemeBreakProperty(seq[i]) == uchar.GraphemeExtend {
		i--
	}
	return i >= 0 && uchar.IsExtendedPictographic(seq[i])
}

// precedingRegionalIndicatorCountIsOdd reports whether an odd number of
// Regional_Indicator scalars immediately precede and include position pos,
// which determines whether the RI at pos is the second half of a flag
// emoji pair (GB12/GB13 require counting back to the start of the run).
func precedingRegionalIndicatorCountIsOdd(seq []rune, pos int) bool {
	count := 0
	for i := pos; i >= 0 && uchar.GraphemeBreakProperty(seq[i]) == uchar.GraphemeRegionalIndicator; i-- {
		count++
	}
	return count%2 == 1
}

// FirstGraphemeLength returns the length, in scalars, of the first
// extended grapheme cluster of seq, or 0 for an empty sequence.
func FirstGraphemeLength(seq []rune) int {
	for i := 1; i <= len(seq); i++ {
		if IsGraphemeBoundary(seq, i) {
			return i
		}
	}
	return 0
}

// GraphemeCount returns the number of extended grapheme clusters in seq.
func GraphemeCount(seq []rune) int {
	n := 0
	for i := 0; i <= len(seq); i++ {
		if IsGraphemeBoundary(seq, i) && i > 0 {
			n++
		}
	}
	return n
}

// Graphemes splits seq into its extended grapheme clusters.
func Graphemes(seq []rune) [][]rune {
	var out [][]rune
	start := 0
	for i := 1; i <= len(seq); i++ {
		if IsGraphemeBoundary(seq, i) {
			out = append(out, seq[start:i])
			start = i
		}
	}
	return out
}
