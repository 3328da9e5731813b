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

// ChangesWhenLowercased, ChangesWhenUppercased and ChangesWhenTitlecased
// report the derived Changes_When_* property for a single scalar: whether
// its context-free (no language tag, no surrounding sequence) full
// mapping differs from itself. These live here rather than in uchar
// because, unlike every other derived core property, they are defined in
// terms of the case-mapping tables this package owns.
func ChangesWhenLowercased(c rune) bool {
	return !runesEqual(fullMapping([]rune{c}, 0, LangAny, lowerKind), []rune{c})
}

func ChangesWhenUppercased(c rune) bool {
	return !runesEqual(fullMapping([]rune{c}, 0, LangAny, upperKind), []rune{c})
}

func ChangesWhenTitlecased(c rune) bool {
	return !runesEqual(fullMapping([]rune{c}, 0, LangAny, titleKind), []rune{c})
}

// ChangesWhenCasefolded reports whether c's full case fold (turkic=false)
// differs from itself.
func ChangesWhenCasefolded(c rune) bool {
	return !runesEqual(foldOne(c, false), []rune{c})
}

// ChangesWhenCasemapped reports whether any of the three case mappings
// changes c: the union Changes_When_* property used by identifier and
// security-profile style checks.
func ChangesWhenCasemapped(c rune) bool {
	return ChangesWhenLowercased(c) || ChangesWhenUppercased(c) || ChangesWhenTitlecased(c)
}

// IsLowercase, IsUppercase, IsTitlecase and IsCasefolded report whether a
// sequence equals its own full lower/upper/title mapping or case fold,
// i.e. whether converting seq would be a no-op. The module computes these
// directly rather than through a per-scalar Changes_When_* shortcut, since
// titlecase in particular depends on word boundaries and is not a pure
// per-scalar property.
func IsLowercase(seq []rune) bool { return runesEqual(ToLowercase(seq, ""), seq) }
func IsUppercase(seq []rune) bool { return runesEqual(ToUppercase(seq, ""), seq) }
func IsTitlecase(seq []rune) bool { return runesEqual(ToTitlecase(seq, ""), seq) }

func IsCasefolded(seq []rune, turkic bool) bool {
	return runesEqual(ToCaseFold(seq, turkic), seq)
}
