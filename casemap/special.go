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

import "strings"

// Lang identifies one of the BCP-47 primary language subtags that
// SpecialCasing.txt actually conditions on. LangAny is the zero value and
// matches every call regardless of the caller-supplied tag; it is what an
// unconditional ("default") special-casing entry carries.
type Lang uint8

const (
	LangAny Lang = iota
	LangTr
	LangAz
	LangLt
)

// ParseLang maps a caller-supplied BCP-47 tag to the Lang values this
// package's curated special-casing data actually conditions on. Tags this
// module does not curate special casing for (or the empty string) resolve
// to LangAny, meaning "whatever the default unconditional entry says."
func ParseLang(tag string) Lang {
	switch strings.ToLower(tag) {
	case "tr":
		return LangTr
	case "az":
		return LangAz
	case "lt":
		return LangLt
	default:
		return LangAny
	}
}

// matches reports whether an entry declared for declaredLang applies when
// the caller asked for callerLang: an entry with no language restriction
// always applies, and a language-restricted entry applies only to an exact
// match.
func (declaredLang Lang) matches(callerLang Lang) bool {
	return declaredLang == LangAny || declaredLang == callerLang
}

// Condition identifies one of SpecialCasing.txt's context predicates (or
// its negation), each implemented in context.go.
type Condition uint8

const (
	CondNone Condition = iota
	CondFinalSigma
	CondNotFinalSigma
	CondAfterSoftDotted
	CondMoreAbove
	CondBeforeDot
	CondNotBeforeDot
	CondAfterI
)

// holds evaluates the condition at position i of seq.
func (cond Condition) holds(seq []rune, i int) bool {
	switch cond {
	case CondNone:
		return true
	case CondFinalSigma:
		return finalSigma(seq, i)
	case CondNotFinalSigma:
		return !finalSigma(seq, i)
	case CondAfterSoftDotted:
		return afterSoftDotted(seq, i)
	case CondMoreAbove:
		return moreAbove(seq, i)
	case CondBeforeDot:
		return beforeDot(seq, i)
	case CondNotBeforeDot:
		return !beforeDot(seq, i)
	case CondAfterI:
		return afterI(seq, i)
	default:
		return true
	}
}

// specialCase is one SpecialCasing.txt record: a scalar's upper, lower and
// title replacement under a given language restriction and context
// predicate. Records for the same scalar are declaration-ordered in
// specialCasing so that the resolution order in full.go (first entry
// whose language and condition both apply) matches the UCD's own
// first-match semantics, with the unconditional default record (LangAny,
// CondNone) placed last.
type specialCase struct {
	Lang                Lang
	Cond                Condition
	Upper, Lower, Title []rune
}

// specialCasing holds every curated scalar with context- or
// language-sensitive casing, keyed by the scalar the rule fires on. Every
// other scalar has no special-casing entries and resolves straight to its
// simple mapping.
var specialCasing = map[rune][]specialCase{
	// LATIN CAPITAL LETTER I: Lithuanian retains the dot when further
	// above-marks follow; Turkish and Azeri lowercase to dotless ı unless a
	// combining dot above follows (that pairing is handled by the After_I
	// deletion rule on U+0307 below).
	0x0049: {
		{Lang: LangLt, Cond: CondMoreAbove, Upper: []rune{0x0049}, Lower: []rune{0x0069, 0x0307}, Title: []rune{0x0049}},
		{Lang: LangTr, Cond: CondNotBeforeDot, Upper: []rune{0x0049}, Lower: []rune{0x0131}, Title: []rune{0x0049}},
		{Lang: LangAz, Cond: CondNotBeforeDot, Upper: []rune{0x0049}, Lower: []rune{0x0131}, Title: []rune{0x0049}},
	},
	// LATIN SMALL LETTER I: under tr/az, uppercases and titlecases to
	// LATIN CAPITAL LETTER I WITH DOT ABOVE rather than plain I.
	0x0069: {
		{Lang: LangTr, Cond: CondNone, Upper: []rune{0x0130}, Lower: []rune{0x0069}, Title: []rune{0x0130}},
		{Lang: LangAz, Cond: CondNone, Upper: []rune{0x0130}, Lower: []rune{0x0069}, Title: []rune{0x0130}},
	},
	// LATIN CAPITAL LETTER I WITH DOT ABOVE: lowercases to bare "i" under
	// tr/az (the combining dot is redundant there), to "i"+0307 otherwise.
	0x0130: {
		{Lang: LangTr, Cond: CondNone, Upper: []rune{0x0130}, Lower: []rune{0x0069}, Title: []rune{0x0130}},
		{Lang: LangAz, Cond: CondNone, Upper: []rune{0x0130}, Lower: []rune{0x0069}, Title: []rune{0x0130}},
		{Lang: LangAny, Cond: CondNone, Upper: []rune{0x0130}, Lower: []rune{0x0069, 0x0307}, Title: []rune{0x0130}},
	},
	// LATIN CAPITAL LETTER J and I WITH OGONEK: Lithuanian keeps the
	// combining dot above when further combining marks follow, so the
	// soft-dot distinction a plain lowercase "j"/"į" would lose survives.
	0x004A: {
		{Lang: LangLt, Cond: CondMoreAbove, Upper: []rune{0x004A}, Lower: []rune{0x006A, 0x0307}, Title: []rune{0x004A}},
	},
	0x012E: {
		{Lang: LangLt, Cond: CondMoreAbove, Upper: []rune{0x012E}, Lower: []rune{0x012F, 0x0307}, Title: []rune{0x012E}},
	},
	// COMBINING DOT ABOVE: deleted when lowercasing after U+0049 under
	// tr/az, where "I" + dot-above is just a spelled-out İ and the
	// lowercase i already carries its own dot. Lithuanian keeps it after a
	// Soft_Dotted base for the same reason it adds one to j/į: the dot
	// must survive lowercasing.
	0x0307: {
		{Lang: LangLt, Cond: CondAfterSoftDotted, Upper: []rune{0x0307}, Lower: []rune{0x0307}, Title: []rune{0x0307}},
		{Lang: LangTr, Cond: CondAfterI, Upper: []rune{0x0307}, Lower: []rune{}, Title: []rune{0x0307}},
		{Lang: LangAz, Cond: CondAfterI, Upper: []rune{0x0307}, Lower: []rune{}, Title: []rune{0x0307}},
	},
	// GREEK CAPITAL LETTER SIGMA: lowercases to final sigma ς at the end
	// of a cased word, to medial sigma σ everywhere else.
	0x03A3: {
		{Lang: LangAny, Cond: CondFinalSigma, Upper: []rune{0x03A3}, Lower: []rune{0x03C2}, Title: []rune{0x03A3}},
		{Lang: LangAny, Cond: CondNone, Upper: []rune{0x03A3}, Lower: []rune{0x03C3}, Title: []rune{0x03A3}},
	},
	// LATIN SMALL LETTER SHARP S: the classic length-changing mapping;
	// full uppercase expands to "SS", full titlecase to "Ss"; its simple
	// uppercase mapping (used when no full engine is in play) is the
	// capital sharp s added in Unicode 5.1, kept in simple_data.go.
	0x00DF: {
		{Lang: LangAny, Cond: CondNone, Upper: []rune{0x0053, 0x0053}, Lower: []rune{0x00DF}, Title: []rune{0x0053, 0x0073}},
	},
}
