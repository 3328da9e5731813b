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

package segment

import "github.com/unitext-go/unitext/uchar"

// IsWordBoundary reports whether there is a word boundary immediately
// before seq[i], following the WB1-WB999 rule chain.
func IsWordBoundary(seq []rune, i int) bool {
	if i <= 0 || i >= len(seq) {
		return true
	}
	before, after := seq[i-1], seq[i]
	wbBefore, wbAfter := uchar.WordBreakProperty(before), uchar.WordBreakProperty(after)

	// WB3: CR x LF.
	if wbBefore == uchar.WordCR && wbAfter == uchar.WordLF {
		return false
	}
	// WB3a, WB3b: break around CR, LF, Newline.
	if isWordNewline(wbBefore) {
		return true
	}
	if isWordNewline(wbAfter) {
		return true
	}
	// WB3c: ZWJ x Extended_Pictographic.
	if wbBefore == uchar.WordZWJ && uchar.IsExtendedPictographic(after) {
		return false
	}
	// WB3d: WSegSpace x WSegSpace.
	if wbBefore == uchar.WordWSegSpace && wbAfter == uchar.WordWSegSpace {
		return false
	}
	// WB4: do not break before Extend, Format or ZWJ.
	if wbAfter == uchar.WordExtend || wbAfter == uchar.WordFormat || wbAfter == uchar.WordZWJ {
		return false
	}

	eb, ea := effectiveWordBefore(seq, i), effectiveWordAfter(seq, i)

	// WB5: AHLetter x AHLetter.
	if isAHLetter(eb) && isAHLetter(ea) {
		return false
	}
	// WB6, WB7: AHLetter (MidLetter | MidNumLetQ) AHLetter.
	if isAHLetter(eb) && isMidLetterQ(wbAfter) && isAHLetter(effectiveWordAfter(seq, i+1)) {
		return false
	}
	if isMidLetterQ(wbBefore) && isAHLetter(ea) && isAHLetter(effectiveWordBefore(seq, i-1)) {
		return false
	}
	// WB7a: Hebrew_Letter x Single_Quote.
	if eb == uchar.WordHebrewLetter && wbAfter == uchar.WordSingleQuote {
		return false
	}
	// WB7b, WB7c: Hebrew_Letter Double_Quote Hebrew_Letter.
	if eb == uchar.WordHebrewLetter && wbAfter == uchar.WordDoubleQuote && effectiveWordAfter(seq, i+1) == uchar.WordHebrewLetter {
		return false
	}
	if wbBefore == uchar.WordDoubleQuote && ea == uchar.WordHebrewLetter && effectiveWordBefore(seq, i-1) == uchar.WordHebrewLetter {
		return false
	}
	// WB8, WB9, WB10: Numeric/AHLetter mixtures.
	if eb == uchar.WordNumeric && ea == uchar.WordNumeric {
		return false
	}
	if isAHLetter(eb) && ea == uchar.WordNumeric {
		return false
	}
	if eb == uchar.WordNumeric && isAHLetter(ea) {
		return false
	}
	// WB11, WB12: Numeric (MidNum | MidNumLetQ) Numeric.
	if eb == uchar.WordNumeric && isMidNumQ(wbAfter) && effectiveWordAfter(seq, i+1) == uchar.WordNumeric {
		return false
	}
	if isMidNumQ(wbBefore) && ea == uchar.WordNumeric && effectiveWordBefore(seq, i-1) == uchar.WordNumeric {
		return false
	}
	// WB13: Katakana x Katakana.
	if eb == uchar.WordKatakana && ea == uchar.WordKatakana {
		return false
	}
	// WB13a, WB13b: ExtendNumLet glue.
	if isExtendNumLetHost(eb) && ea == uchar.WordExtendNumLet {
		return false
	}
	if eb == uchar.WordExtendNumLet && isExtendNumLetHost(ea) {
		return false
	}
	// WB15, WB16: regional indicator pairs.
	if wbBefore == uchar.WordRegionalIndicator && wbAfter == uchar.WordRegionalIndicator {
		return !precedingWordRegionalIndicatorCountIsOdd(seq, i-1)
	}
	// WB999: otherwise break.
	return true
}

func isWordNewline(wb uchar.WordBreak) bool {
	return wb == uchar.WordCR || wb == uchar.WordLF || wb == uchar.WordNewline
}

func isAHLetter(wb uchar.WordBreak) bool {
	return wb == uchar.WordALetter || wb == uchar.WordHebrewLetter
}

func isMidLetterQ(wb uchar.WordBreak) bool {
	return wb == uchar.WordMidLetter || wb == uchar.WordMidNumLet || wb == uchar.WordSingleQuote
}

func isMidNumQ(wb uchar.WordBreak) bool {
	return wb == uchar.WordMidNum || wb == uchar.WordMidNumLet || wb == uchar.WordSingleQuote
}

func isExtendNumLetHost(wb uchar.WordBreak) bool {
	return isAHLetter(wb) || wb == uchar.WordNumeric || wb == uchar.WordKatakana || wb == uchar.WordExtendNumLet
}

// effectiveWordBefore and effectiveWordAfter implement WB4: a scalar's
// Word_Break category, for the purposes of every later rule, is that of
// the nearest non-Extend/Format/ZWJ scalar in the given direction.
func effectiveWordBefore(seq []rune, i int) uchar.WordBreak {
	for j := i; j > 0; j-- {
		wb := uchar.WordBreakProperty(seq[j-1])
		if wb == uchar.WordExtend || wb == uchar.WordFormat || wb == uchar.WordZWJ {
			continue
		}
		return wb
	}
	return uchar.WordOther
}

func effectiveWordAfter(seq []rune, i int) uchar.WordBreak {
	for j := i; j < len(seq); j++ {
		wb := uchar.WordBreakProperty(seq[j])
		if wb == uchar.WordExtend || wb == uchar.WordFormat || wb == uchar.WordZWJ {
			continue
		}
		return wb
	}
	return uchar.WordOther
}

func precedingWordRegionalIndicatorCountIsOdd(seq []rune, pos int) bool {
	count := 0
	for i := pos; i >= 0 && uchar.WordBreakProperty(seq[i]) == uchar.WordRegionalIndicator; i-- {
		count++
	}
	return count%2 == 1
}

// FirstWordLength returns the length, in scalars, of the first
// word-boundary-delimited run of seq, or 0 for an empty sequence.
func FirstWordLength(seq []rune) int {
	for i := 1; i <= len(seq); i++ {
		if IsWordBoundary(seq, i) {
			return i
		}
	}
	return 0
}

// Words splits seq into its words, including the intervening runs of
// whitespace and punctuation as their own "words" (UAX #29 defines word
// boundaries, not a filter for which runs count as linguistic words).
func Words(seq []rune) [][]rune {
	var out [][]rune
	start := 0
	for i := 1; i <= len(seq); i++ {
		if IsWordBoundary(seq, i) {
			out = append(out, seq[start:i])
			start = i
		}
	}
	return out
}

// WordCount returns the number of word-boundary-delimited runs in seq.
func WordCount(seq []rune) int {
	return len(Words(seq))
}
