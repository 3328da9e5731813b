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

import (
	"github.com/unitext-go/unitext/segment"
	"github.com/unitext-go/unitext/uchar"
)

// mappingKind selects which of a special-casing record's three sequences
// (or which of the three simple mappings) a call to fullMapping wants.
type mappingKind int

const (
	upperKind mappingKind = iota
	lowerKind
	titleKind
)

// fullMapping resolves the full case mapping of seq[i] for the given
// language: walk seq[i]'s special-casing records (if any) in declaration
// order and return the first whose language and context condition both
// apply; since the default record, when one exists, carries
// LangAny/CondNone and always matches, that single loop also covers the
// unconditional-entry fallback without a separate pass. With no applicable
// record at all, fall back to the simple mapping.
func fullMapping(seq []rune, i int, lang Lang, kind mappingKind) []rune {
	c := seq[i]
	for _, rec := range specialCasing[c] {
		if !rec.Lang.matches(lang) || !rec.Cond.holds(seq, i) {
			continue
		}
		switch kind {
		case upperKind:
			return rec.Upper
		case lowerKind:
			return rec.Lower
		default:
			return rec.Title
		}
	}
	switch kind {
	case upperKind:
		return []rune{SimpleUppercase(c)}
	case lowerKind:
		return []rune{SimpleLowercase(c)}
	default:
		return []rune{SimpleTitlecase(c)}
	}
}

// ToUppercase and ToLowercase apply full case mapping to every scalar of
// seq under the given BCP-47 language tag (the empty string means "no
// tailoring"), concatenating each position's replacement.
func ToUppercase(seq []rune, lang string) []rune {
	return mapAll(seq, ParseLang(lang), upperKind)
}

func ToLowercase(seq []rune, lang string) []rune {
	return mapAll(seq, ParseLang(lang), lowerKind)
}

func mapAll(seq []rune, l Lang, kind mappingKind) []rune {
	out := make([]rune, 0, len(seq))
	for i := range seq {
		out = append(out, fullMapping(seq, i, l, kind)...)
	}
	return out
}

// ToTitlecase walks seq, copying non-cased scalars verbatim and applying
// the title mapping to the first cased scalar of each word (per
// segment.IsWordBoundary) and the lower mapping to every cased scalar
// after it, up to the next word boundary. This is the one point in the
// module where the case engine depends on the segmentation engines,
// matching the data-flow note in the system overview that titlecasing
// requires word boundaries.
func ToTitlecase(seq []rune, lang string) []rune {
	l := ParseLang(lang)
	out := make([]rune, 0, len(seq))
	titledThisWord := false
	for i, c := range seq {
		if segment.IsWordBoundary(seq, i) {
			titledThisWord = false
		}
		if !uchar.IsCased(c) {
			out = append(out, c)
			continue
		}
		if !titledThisWord {
			out = append(out, fullMapping(seq, i, l, titleKind)...)
			titledThisWord = true
		} else {
			out = append(out, fullMapping(seq, i, l, lowerKind)...)
		}
	}
	return out
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i, r := range a {
		if r != b[i] {
			return false
		}
	}
	return true
}
