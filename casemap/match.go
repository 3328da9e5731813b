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

import "github.com/unitext-go/unitext/norm"

// PlainCaselessMatch reports whether x and y compare equal after full case
// folding alone, with no normalization: fold(X) == fold(Y).
func PlainCaselessMatch(x, y []rune, turkic bool) bool {
	return runesEqual(ToCaseFold(x, turkic), ToCaseFold(y, turkic))
}

// CanonicalCaselessMatch reports whether x and y are canonically
// equivalent once case differences are folded out:
// NFD(fold(NFD(X))) == NFD(fold(NFD(Y))).
func CanonicalCaselessMatch(x, y []rune, turkic bool) bool {
	return runesEqual(canonicalFoldKey(x, turkic), canonicalFoldKey(y, turkic))
}

func canonicalFoldKey(seq []rune, turkic bool) []rune {
	return norm.ToNFD(ToCaseFold(norm.ToNFD(seq), turkic))
}

// CompatibilityCaselessMatch reports whether x and y are compatibility
// equivalent once case differences are folded out at both the canonical
// and compatibility level:
// NFKD(fold(NFKD(fold(NFD(X))))) == NFKD(fold(NFKD(fold(NFD(Y))))).
func CompatibilityCaselessMatch(x, y []rune, turkic bool) bool {
	return runesEqual(compatibilityFoldKey(x, turkic), compatibilityFoldKey(y, turkic))
}

func compatibilityFoldKey(seq []rune, turkic bool) []rune {
	step := ToCaseFold(norm.ToNFD(seq), turkic)
	step = ToCaseFold(norm.ToNFKD(step), turkic)
	return norm.ToNFKD(step)
}
