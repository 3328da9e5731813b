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

package norm

import (
	"github.com/unitext-go/unitext/hangul"
	"github.com/unitext-go/unitext/uchar"
)

// decompose fully expands every scalar in seq: recursively, so a mapping
// that itself contains a decomposable scalar is carried all the way down,
// and compat controls whether compatibility mappings are honored in
// addition to canonical ones.
func decompose(seq []rune, compat bool) []rune {
	out := make([]rune, 0, len(seq))
	for _, r := range seq {
		out = appendDecomposed(out, r, compat)
	}
	return out
}

func appendDecomposed(out []rune, r rune, compat bool) []rune {
	if hangul.IsPrecomposed(r) {
		return hangul.Decompose(r, out)
	}
	d, ok := uchar.LookupDecomposition(r)
	if !ok || (d.Compat && !compat) {
		return append(out, r)
	}
	for _, m := range d.Mapping {
		out = appendDecomposed(out, m, compat)
	}
	return out
}

// reorder applies the canonical ordering algorithm in place: within each
// maximal run of non-starter combining marks, scalars are stable-sorted by
// increasing Canonical_Combining_Class.
func reorder(seq []rune) {
	i := 0
	for i < len(seq) {
		if uchar.IsStarter(seq[i]) {
			i++
			continue
		}
		j := i
		for j < len(seq) && !uchar.IsStarter(seq[j]) {
			j++
		}
		reorderRun(seq[i:j])
		i = j
	}
}

// reorderRun stable-sorts a run of combining marks by ccc with a simple
// insertion sort: runs are short (almost always one or two marks), so the
// O(n^2) worst case never matters in practice.
func reorderRun(run []rune) {
	for i := 1; i < len(run); i++ {
		ccc := uchar.CombiningClass(run[i])
		j := i
		for j > 0 && uchar.CombiningClass(run[j-1]) > ccc {
			run[j-1], run[j] = run[j], run[j-1]
			j--
		}
	}
}
