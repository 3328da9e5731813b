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

// Decomposition is a Normalization record's decomposition mapping: the
// sequence a scalar expands to, and whether that expansion is a
// compatibility mapping (only honored by NFKC/NFKD) or a canonical one
// (honored by every form). Decomposition mappings are a small, irregular
// exception list rather than a dense per-range property, so they are
// modeled as a map keyed by scalar instead of a Table[V comparable]; a
// decomposition's Mapping is a []rune and slices cannot be table values.
type Decomposition struct {
	Mapping []rune
	Compat  bool
}

// decompositions holds only scalars with a non-trivial decomposition;
// every other scalar decomposes to itself. Entries are pre-expanded to a
// single level: a mapping may itself contain scalars with further
// decompositions, and Lookup's caller (the normalization engine) recurses.
var decompositions = buildDecompositions()

// LookupDecomposition reports the Normalization record's decomposition for
// c, if any. Precomposed Hangul syllables are excluded: their "mapping" is
// pure arithmetic (package hangul) rather than table data.
func LookupDecomposition(c rune) (Decomposition, bool) {
	d, ok := decompositions[c]
	return d, ok
}
