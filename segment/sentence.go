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

// IsSentenceBoundary reports whether there is a sentence boundary
// immediately before seq[i]. Unlike grapheme and word boundaries, the
// default outcome for sentences is NOT to break: SB4 and SB11 are the only
// rules that produce a boundary, every other rule (and the fallback)
// suppresses one.
func IsSentenceBoundary(seq []rune, i int) bool {
	if i <= 0 || i >= len(seq) {
		return true
	}
	before, after := seq[i-1], seq[i]
	sbBefore, sbAfter := uchar.SentenceBreakProperty(before), uchar.SentenceBreakProperty(after)

	// SB3: CR x LF.
	if sbBefore == uchar.SentenceCR && sbAfter == uchar.SentenceLF {
		return false
	}
	// SB4: (Sep | CR | LF) ÷.
	if isSentenceSep(sbBefore) {
		return true
	}
	// SB5: do not break before Extend or Format.
	if sbAfter == uchar.SentenceExtend || sbAfter == uchar.SentenceFormat {
		return false
	}

	eb := effSentenceBefore(seq, i)
	ea := effSentenceAfter(seq, i)

	// SB6: ATerm x Numeric.
	if eb == uchar.SentenceATerm && ea == uchar.SentenceNumeric {
		return false
	}
	// SB7: (Upper | Lower) ATerm x Upper.
	if eb == uchar.SentenceATerm && ea == uchar.SentenceUpper {
		if prev := effSentenceBeforeIndex(seq, lastEffIndexBefore(seq, i)); prev == uchar.SentenceUpper || prev == uchar.SentenceLower {
			return false
		}
	}
	// SB8: ATerm Close* Sp* x (¬SATerm/Upper/Lower/OLetter/Sep)* Lower.
	if sb8Matches(seq, i) {
		return false
	}
	isSATerm := func(sb uchar.SentenceBreak) bool { return sb == uchar.SentenceATerm || sb == uchar.SentenceSTerm }
	// SB8a: SATerm Close* Sp* x (SContinue | SATerm).
	if satermCloseSp(seq, i) && (isSATerm(sbAfter) || sbAfter == uchar.SentenceSContinue) {
		return false
	}
	// SB9: SATerm Close* x (Close | Sp | Sep | CR | LF).
	if satermClose(seq, i) && (sbAfter == uchar.SentenceClose || sbAfter == uchar.SentenceSp || isSentenceSep(sbAfter)) {
		return false
	}
	// SB10: SATerm Close* Sp* x (Sp | Sep | CR | LF).
	if satermCloseSp(seq, i) && (sbAfter == uchar.SentenceSp || isSentenceSep(sbAfter)) {
		return false
	}
	// SB11: SATerm Close* Sp* ÷.
	if satermCloseSp(seq, i) {
		return true
	}
	// SB998/SB999: otherwise, do not break.
	return false
}

func isSentenceSep(sb uchar.SentenceBreak) bool {
	return sb == uchar.SentenceSep || sb == uchar.SentenceCR || sb == uchar.SentenceLF
}

func effSentenceBefore(seq []rune, i int) uchar.SentenceBreak {
	for j := i; j > 0; j-- {
		sb := uchar.SentenceBreakProperty(seq[j-1])
		if sb == uchar.SentenceExtend || sb == uchar.SentenceFormat {
			continue
		}
		return sb
	}
	return uchar.SentenceOther
}

func effSentenceAfter(seq []rune, i int) uchar.SentenceBreak {
	for j := i; j < len(seq); j++ {
		sb := uchar.SentenceBreakProperty(seq[j])
		if sb == uchar.SentenceExtend || sb == uchar.SentenceFormat {
			continue
		}
		return sb
	}
	return uchar.SentenceOther
}

// lastEffIndexBefore returns the index of the nearest non-Extend/Format
// scalar before i, or -1 if none exists.
func lastEffIndexBefore(seq []rune, i int) int {
	for j := i; j > 0; j-- {
		sb := uchar.SentenceBreakProperty(seq[j-1])
		if sb == uchar.SentenceExtend || sb == uchar.SentenceFormat {
			continue
		}
		return j - 1
	}
	return -1
}

func effSentenceBeforeIndex(seq []rune, idx int) uchar.SentenceBreak {
	if idx < 0 {
		return uchar.SentenceOther
	}
	return effSentenceBefore(seq, idx)
}

// satermClose reports whether, scanning backward from i, the run matches
// SATerm Close* ending exactly at i. satermCloseHead additionally reports
// which terminator (ATerm or STerm) heads the run, which SB8 needs: its
// lookahead only applies behind an ATerm.
func satermClose(seq []rune, i int) bool {
	_, ok := satermCloseHead(seq, i)
	return ok
}

func satermCloseHead(seq []rune, i int) (uchar.SentenceBreak, bool) {
	j := i
	for j > 0 {
		sb := effCategoryAt(seq, j-1)
		if sb == uchar.SentenceClose {
			j--
			continue
		}
		if sb == uchar.SentenceATerm || sb == uchar.SentenceSTerm {
			return sb, true
		}
		return uchar.SentenceOther, false
	}
	return uchar.SentenceOther, false
}

// satermCloseSp reports whether, scanning backward from i, the run matches
// SATerm Close* Sp* ending exactly at i.
func satermCloseSp(seq []rune, i int) bool {
	_, ok := satermCloseSpHead(seq, i)
	return ok
}

func satermCloseSpHead(seq []rune, i int) (uchar.SentenceBreak, bool) {
	j := i
	for j > 0 {
		sb := effCategoryAt(seq, j-1)
		if sb == uchar.SentenceSp {
			j--
			continue
		}
		break
	}
	return satermCloseHead(seq, j)
}

// effCategoryAt returns the Sentence_Break category of seq[k], skipping
// backward over any Extend/Format directly at k (SB5's "ignore" rule
// applies per-scalar, not just at a fixed scan origin).
func effCategoryAt(seq []rune, k int) uchar.SentenceBreak {
	for k >= 0 {
		sb := uchar.SentenceBreakProperty(seq[k])
		if sb == uchar.SentenceExtend || sb == uchar.SentenceFormat {
			k--
			continue
		}
		return sb
	}
	return uchar.SentenceOther
}

// sb8Matches implements SB8's lookahead: ATerm Close* Sp* x
// (¬(OLetter|Upper|Lower|Sep|CR|LF|STerm|ATerm))* Lower.
func sb8Matches(seq []rune, i int) bool {
	if head, ok := satermCloseSpHead(seq, i); !ok || head != uchar.SentenceATerm {
		return false
	}
	for j := i; j < len(seq); j++ {
		sb := uchar.SentenceBreakProperty(seq[j])
		switch sb {
		case uchar.SentenceExtend, uchar.SentenceFormat:
			continue
		case uchar.SentenceLower:
			return true
		case uchar.SentenceOLetter, uchar.SentenceUpper, uchar.SentenceSep,
			uchar.SentenceCR, uchar.SentenceLF, uchar.SentenceSTerm, uchar.SentenceATerm:
			return false
		default:
			continue
		}
	}
	return false
}

// FirstSentenceLength returns the length, in scalars, of the first
// sentence of seq, or 0 for an empty sequence.
func FirstSentenceLength(seq []rune) int {
	for i := 1; i <= len(seq); i++ {
		if IsSentenceBoundary(seq, i) {
			return i
		}
	}
	return 0
}

// Sentences splits seq into its sentences.
func Sentences(seq []rune) [][]rune {
	var out [][]rune
	start := 0
	for i := 1; i <= len(seq); i++ {
		if IsSentenceBoundary(seq, i) {
			out = append(out, seq[start:i])
			start = i
		}
	}
	return out
}

// SentenceCount returns the number of sentence-boundary-delimited runs in
// seq.
func SentenceCount(seq []rune) int {
	return len(Sentences(seq))
}
