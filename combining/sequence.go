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

// Package combining implements the Unicode Standard's combining character
// sequence and extended combining character sequence definitions (D50-D56a
// in the core specification's conformance chapter).
package combining

import (
	"github.com/unitext-go/unitext/hangul"
	"github.com/unitext-go/unitext/uchar"
)

const (
	zwnj = 0x200C
	zwj  = 0x200D
)

// isCombiningCharacter reports whether c is a combining character (D52):
// General_Category Mn, Mc or Me, or a nonzero Canonical_Combining_Class.
func isCombiningCharacter(c rune) bool {
	gc := uchar.GeneralCategory(c)
	return gc == uchar.Mn || gc == uchar.Mc || gc == uchar.Me || uchar.CombiningClass(c) != 0
}

// isSequenceExtender reports whether c may extend a combining character
// sequence past its base: a combining character, or ZWJ/ZWNJ (which are Cf,
// not marks, but D56 names them explicitly).
func isSequenceExtender(c rune) bool {
	return c == zwj || c == zwnj || isCombiningCharacter(c)
}

// isBaseCharacter reports whether c can head a combining character
// sequence (D51): a graphic character (Zs, letter, number, punctuation or
// symbol) that is not itself a combining mark.
func isBaseCharacter(c rune) bool {
	gc := uchar.GeneralCategory(c)
	return gc == uchar.Zs || uchar.IsLetterCategory(gc) || uchar.IsNumberCategory(gc) ||
		uchar.IsPunctuationCategory(gc) || uchar.IsSymbolCategory(gc)
}

// CombiningCharacterSequenceLength returns the length, in scalars, of the
// combining character sequence (D56) beginning at seq[i]: a base character
// followed by a maximal run of combining characters and ZWJ/ZWNJ, or (the
// defective case) such a run with no preceding base. A scalar that is
// neither a base nor an extender begins no sequence at all and yields 0.
func CombiningCharacterSequenceLength(seq []rune, i int) int {
	if i < 0 || i >= len(seq) {
		return 0
	}
	j := i
	if isBaseCharacter(seq[j]) {
		j++
	}
	for j < len(seq) && isSequenceExtender(seq[j]) {
		j++
	}
	return j - i
}

// CombiningCharacterSequenceCount returns the number of combining
// character sequences in seq.
func CombiningCharacterSequenceCount(seq []rune) int {
	n := 0
	for i := 0; i < len(seq); {
		l := CombiningCharacterSequenceLength(seq, i)
		if l <= 0 {
			l = 1
		}
		i += l
		n++
	}
	return n
}

// ExtendedCombiningCharacterSequenceLength returns the length of the
// extended combining character sequence (D56a) beginning at seq[i]: the
// same as a plain combining character sequence, except that a standard
// Korean (Hangul) syllable block, any maximal L*V*T* jamo run or a
// precomposed LV/LVT syllable followed by further jamo, may also serve as
// the extended base the trailing extender run attaches to.
func ExtendedCombiningCharacterSequenceLength(seq []rune, i int) int {
	if i < 0 || i >= len(seq) {
		return 0
	}
	j := i
	if n := standardKoreanSyllableBlockLength(seq, i); n > 0 {
		j += n
	} else if isBaseCharacter(seq[j]) {
		j++
	}
	for j < len(seq) && isSequenceExtender(seq[j]) {
		j++
	}
	return j - i
}

// ExtendedCombiningCharacterSequenceCount returns the number of extended
// combining character sequences in seq.
func ExtendedCombiningCharacterSequenceCount(seq []rune) int {
	n := 0
	for i := 0; i < len(seq); {
		l := ExtendedCombiningCharacterSequenceLength(seq, i)
		if l <= 0 {
			l = 1
		}
		i += l
		n++
	}
	return n
}

// standardKoreanSyllableBlockLength matches the regular grammar
// L* (V+ | LV-syllable V* | LVT-syllable)? T*, non-empty,
// starting at seq[i], returning 0 if seq[i] begins no such block. The T*
// loop terminates when either the end of seq is reached or the scalar is
// not a trailing jamo; matchedCore only requires that some part of the
// grammar matched, so lone L+ or T+ runs (and L+ T+ with no vowel) still
// count as blocks.
func standardKoreanSyllableBlockLength(seq []rune, i int) int {
	j := i
	for j < len(seq) && hangul.IsLeading(seq[j]) {
		j++
	}
	matchedCore := j > i

	switch {
	case j < len(seq) && hangul.IsVowel(seq[j]):
		for j < len(seq) && hangul.IsVowel(seq[j]) {
			j++
		}
		matchedCore = true
	case j < len(seq) && isPrecomposedLV(seq[j]):
		j++
		for j < len(seq) && hangul.IsVowel(seq[j]) {
			j++
		}
		matchedCore = true
	case j < len(seq) && isPrecomposedLVT(seq[j]):
		j++
		matchedCore = true
	}

	for j < len(seq) && hangul.IsTrailing(seq[j]) {
		j++
		matchedCore = true
	}
	if !matchedCore {
		return 0
	}
	return j - i
}

func isPrecomposedLV(c rune) bool {
	return hangul.IsPrecomposed(c) && (c-hangul.SBase)%hangul.TCount == 0
}

func isPrecomposedLVT(c rune) bool {
	return hangul.IsPrecomposed(c) && (c-hangul.SBase)%hangul.TCount != 0
}
