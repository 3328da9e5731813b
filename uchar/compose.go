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

// compositions maps a (starter, combining-mark) pair to its canonical
// composite, already filtered the way a real generator would filter it:
// no Composition_Exclusions entries, no singleton or non-starter
// decompositions. The engine assumes the table given to it is correct; it
// does no exclusion filtering of its own (Design Notes, Composition
// exclusions).
var compositions = buildCompositions()

// LookupComposition reports the canonical composite of the pair (first,
// second), if the pair has one.
func LookupComposition(first, second rune) (rune, bool) {
	c, ok := compositions[[2]rune{first, second}]
	return c, ok
}
