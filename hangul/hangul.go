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

// Package hangul implements the algorithmic decomposition and composition
// of precomposed Hangul syllables. Unlike every other part of the module,
// it needs no property-table lookups: the relationship between a syllable
// and its leading/vowel/trailing jamo is pure arithmetic (UAX #15, Hangul).
package hangul

// Constants from the Hangul Syllable decomposition algorithm.
const (
	SBase  = 0xAC00
	LBase  = 0x1100
	VBase  = 0x1161
	TBase  = 0x11A7
	LCount = 19
	VCount = 21
	TCount = 28
	NCount = VCount * TCount // 588
	SCount = LCount * NCount // 11172
)

// IsPrecomposed reports whether c is a precomposed Hangul syllable, i.e.
// SBase <= c < SBase+SCount.
func IsPrecomposed(c rune) bool {
	return c >= SBase && c < SBase+SCount
}

// IsLeading, IsVowel, IsTrailing report whether c falls in the jamo range
// for that position. IsTrailing excludes TBase itself: a trailing jamo of
// value TBase means "no trailing consonant" and never appears as a
// standalone scalar in a decomposed sequence.
func IsLeading(c rune) bool  { return c >= LBase && c < LBase+LCount }
func IsVowel(c rune) bool    { return c >= VBase && c < VBase+VCount }
func IsTrailing(c rune) bool { return c > TBase && c < TBase+TCount }

// Decompose expands a precomposed syllable into its L, V and optional T
// jamo, appending them to out. The caller must ensure IsPrecomposed(c).
func Decompose(c rune, out []rune) []rune {
	sIndex := c - SBase
	l := LBase + sIndex/NCount
	v := VBase + (sIndex%NCount)/TCount
	t := TBase + sIndex%TCount
	out = append(out, l, v)
	if t != TBase {
		out = append(out, t)
	}
	return out
}

// IsDecomposedSyllable reports whether seq begins with an L+V or
// (LV|precomposed-with-no-trailing)+T run recognized as the start of a
// Hangul composition, mirroring the check the composition algorithm makes
// before falling back to canonical-composition-pair lookup.
func IsDecomposedSyllable(seq []rune) bool {
	if len(seq) < 2 {
		return false
	}
	first, second := seq[0], seq[1]
	if IsLeading(first) && IsVowel(second) {
		return true
	}
	if first >= SBase && first < SBase+SCount && (first-SBase)%TCount == 0 && IsTrailing(second) {
		return true
	}
	return false
}

// Compose folds a run beginning with L,V[,T] (or LV,T) into the
// corresponding precomposed syllable, returning the composed scalar and the
// number of input scalars consumed (2 or 3). The caller must ensure
// IsDecomposedSyllable(seq).
func Compose(seq []rune) (composed rune, consumed int) {
	first, second := seq[0], seq[1]
	if IsLeading(first) {
		lIndex := first - LBase
		vIndex := second - VBase
		s := SBase + lIndex*NCount + vIndex*TCount
		if len(seq) > 2 && IsTrailing(seq[2]) {
			return s + (seq[2] - TBase), 3
		}
		return s, 2
	}
	// first is itself a precomposed LV syllable; second is a trailing jamo.
	return first + (second - TBase), 2
}
