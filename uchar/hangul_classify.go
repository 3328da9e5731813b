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

package uchar

import "github.com/unitext-go/unitext/hangul"

// hangulGraphemeBreak classifies precomposed Hangul syllables as LV or LVT
// by arithmetic alone (Hangul_Syllable_Type is a deterministic function of
// SIndex, not curated data). Jamo themselves (L, V, T) are curated in
// graphemeBreakRanges since they are a small, fixed set of ranges.
func hangulGraphemeBreak(c rune) (GraphemeBreak, bool) {
	if !hangul.IsPrecomposed(c) {
		return 0, false
	}
	sIndex := c - hangul.SBase
	if sIndex%hangul.TCount == 0 {
		return GraphemeLV, true
	}
	return GraphemeLVT, true
}
