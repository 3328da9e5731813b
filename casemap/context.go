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

package casemap

import "github.com/unitext-go/unitext/uchar"

// The context predicates below implement SpecialCasing.txt's conditions
// (Final_Sigma, After_Soft_Dotted, More_Above, Before_Dot, After_I), each
// defined over the untouched input sequence rather than any
// partially-cased output, exactly as the condition definitions specify.
//
// After_Soft_Dotted, More_Above, Before_Dot and After_I all scan past
// scalars whose Canonical_Combining_Class is neither 0 nor 230 (Above):
// that is what "skipping ccc∉{0,230}" means below, not Case_Ignorable,
// which only governs Final_Sigma.

// skipCCC reports whether c's combining class should be skipped over while
// scanning for a context predicate's target scalar: anything other than a
// starter (ccc 0) or an Above mark (ccc 230).
func skipCCC(c rune) bool {
	ccc := uchar.CombiningClass(c)
	return ccc != 0 && ccc != 230
}

// afterSoftDotted reports whether, scanning leftward from i-1 and skipping
// scalars with ccc neither 0 nor 230, the first scalar encountered is
// Soft_Dotted.
func afterSoftDotted(seq []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		c := seq[j]
		if skipCCC(c) {
			continue
		}
		return uchar.IsSoftDotted(c)
	}
	return false
}

// beforeDot reports whether, scanning rightward from i+1 and skipping
// scalars with ccc neither 0 nor 230, the first scalar encountered is
// U+0307 COMBINING DOT ABOVE.
func beforeDot(seq []rune, i int) bool {
	for j := i + 1; j < len(seq); j++ {
		c := seq[j]
		if skipCCC(c) {
			continue
		}
		return c == 0x0307
	}
	return false
}

// moreAbove reports whether, scanning rightward from i+1 and skipping
// scalars with ccc neither 0 nor 230, the first scalar encountered has
// ccc == 230 (Above).
func moreAbove(seq []rune, i int) bool {
	for j := i + 1; j < len(seq); j++ {
		c := seq[j]
		if skipCCC(c) {
			continue
		}
		return uchar.CombiningClass(c) == 230
	}
	return false
}

// afterI reports whether, scanning leftward from i-1 and skipping scalars
// with ccc neither 0 nor 230, the first scalar encountered is U+0049
// LATIN CAPITAL LETTER I.
func afterI(seq []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		c := seq[j]
		if skipCCC(c) {
			continue
		}
		return c == 0x0049
	}
	return false
}

// finalSigma reports whether c at position i is preceded by a Cased
// letter (skipping Case_Ignorable scalars) and NOT followed, after
// skipping Case_Ignorable scalars, by another Cased letter: D130's
// definition of the position a Greek capital sigma lowercases to ς
// instead of σ.
func finalSigma(seq []rune, i int) bool {
	before := false
	for j := i - 1; j >= 0; j-- {
		c := seq[j]
		if uchar.IsCased(c) {
			before = true
			break
		}
		if !uchar.IsCaseIgnorable(c) {
			break
		}
	}
	if !before {
		return false
	}
	for j := i + 1; j < len(seq); j++ {
		c := seq[j]
		if uchar.IsCased(c) {
			return false
		}
		if !uchar.IsCaseIgnorable(c) {
			return true
		}
	}
	return true
}
