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

// composeRun runs the canonical composition algorithm over a fully
// decomposed, canonically ordered sequence. A trailing combining mark
// composes into its preceding starter unless it is "blocked": a character
// of equal or higher combining class already sits between it and the
// starter. Because the input is canonically ordered, blocking reduces to
// tracking the combining class of the most recently appended scalar that
// did not itself get absorbed into the starter.
func composeRun(seq []rune) []rune {
	if len(seq) == 0 {
		return seq
	}
	out := make([]rune, 0, len(seq))
	out = append(out, seq[0])
	starterPos := 0
	lastClass := int16(-1)
	if !uchar.IsStarter(seq[0]) {
		lastClass = int16(uchar.CombiningClass(seq[0]))
	}

	for _, ch := range seq[1:] {
		cls := int16(uchar.CombiningClass(ch))
		if comp, ok := tryCompose(out[starterPos], ch); ok && lastClass < cls {
			out[starterPos] = comp
			continue
		}
		out = append(out, ch)
		if cls == 0 {
			starterPos = len(out) - 1
			lastClass = -1
		} else {
			lastClass = cls
		}
	}
	return out
}

// tryCompose composes a starter and a following scalar, first checking the
// algorithmic Hangul jamo rule and falling back to the canonical
// composition table.
func tryCompose(starter, next rune) (rune, bool) {
	pair := []rune{starter, next}
	if hangul.IsDecomposedSyllable(pair) {
		c, _ := hangul.Compose(pair)
		return c, true
	}
	return uchar.LookupComposition(starter, next)
}
