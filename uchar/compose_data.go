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

// compositionExclusions lists scalars that have a canonical decomposition
// but are excluded from composition (CompositionExclusions.txt). None of
// the curated Latin-1 entries are excluded, so this set is currently
// empty; it exists so a future data expansion has somewhere to put one.
var compositionExclusions = map[rune]bool{}

func buildCompositions() map[[2]rune]rune {
	m := make(map[[2]rune]rune, len(latin1CanonicalDecomps))
	for _, d := range latin1CanonicalDecomps {
		if compositionExclusions[d.from] {
			continue
		}
		m[[2]rune{d.base, d.mark}] = d.from
	}
	return m
}
