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

// Category is the General_Category value of a scalar: one of the 30
// categories defined by the Unicode Character Database.
type Category uint8

const (
	Cn Category = iota // unassigned, the table default
	Lu
	Ll
	Lt
	Lm
	Lo
	Mn
	Mc
	Me
	Nd
	Nl
	No
	Pc
	Pd
	Ps
	Pe
	Pi
	Pf
	Po
	Sm
	Sc
	Sk
	So
	Zs
	Zl
	Zp
	Cc
	Cf
	Cs
	Co
)

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Cn"
}

var categoryNames = [...]string{
	Cn: "Cn", Lu: "Lu", Ll: "Ll", Lt: "Lt", Lm: "Lm", Lo: "Lo",
	Mn: "Mn", Mc: "Mc", Me: "Me",
	Nd: "Nd", Nl: "Nl", No: "No",
	Pc: "Pc", Pd: "Pd", Ps: "Ps", Pe: "Pe", Pi: "Pi", Pf: "Pf", Po: "Po",
	Sm: "Sm", Sc: "Sc", Sk: "Sk", So: "So",
	Zs: "Zs", Zl: "Zl", Zp: "Zp",
	Cc: "Cc", Cf: "Cf", Cs: "Cs", Co: "Co",
}

var categoryTable = NewTable(Cn, categoryRanges)

// GeneralCategory looks up the General_Category of a scalar. It is total
// over [0, MaxScalar]; scalars with no curated entry report Cn (unassigned).
func GeneralCategory(c rune) Category {
	return categoryTable.Lookup(c)
}

// IsCasedLetterCategory reports whether gc is one of Lu, Ll, Lt.
func IsCasedLetterCategory(gc Category) bool {
	return gc == Lu || gc == Ll || gc == Lt
}

// IsLetterCategory reports whether gc is any of the L* categories.
func IsLetterCategory(gc Category) bool {
	return gc == Lu || gc == Ll || gc == Lt || gc == Lm || gc == Lo
}

// IsMarkCategory reports whether gc is any of the M* categories.
func IsMarkCategory(gc Category) bool {
	return gc == Mn || gc == Mc || gc == Me
}

// IsNumberCategory reports whether gc is any of the N* categories.
func IsNumberCategory(gc Category) bool {
	return gc == Nd || gc == Nl || gc == No
}

// IsPunctuationCategory reports whether gc is any of the P* categories.
func IsPunctuationCategory(gc Category) bool {
	switch gc {
	case Pc, Pd, Ps, Pe, Pi, Pf, Po:
		return true
	}
	return false
}

// IsSymbolCategory reports whether gc is any of the S* categories.
func IsSymbolCategory(gc Category) bool {
	switch gc {
	case Sm, Sc, Sk, So:
		return true
	}
	return false
}

// IsSeparatorCategory reports whether gc is any of the Z* categories.
func IsSeparatorCategory(gc Category) bool {
	return gc == Zs || gc == Zl || gc == Zp
}

// IsOtherCategory reports whether gc is any of the C* categories.
func IsOtherCategory(gc Category) bool {
	switch gc {
	case Cc, Cf, Cs, Co, Cn:
		return true
	}
	return false
}

func IsCasedLetter(c rune) bool { return IsCasedLetterCategory(GeneralCategory(c)) }
func IsLetter(c rune) bool      { return IsLetterCategory(GeneralCategory(c)) }
func IsMark(c rune) bool        { return IsMarkCategory(GeneralCategory(c)) }
func IsNumber(c rune) bool      { return IsNumberCategory(GeneralCategory(c)) }
func IsPunctuation(c rune) bool { return IsPunctuationCategory(GeneralCategory(c)) }
func IsSymbol(c rune) bool      { return IsSymbolCategory(GeneralCategory(c)) }
func IsSeparator(c rune) bool   { return IsSeparatorCategory(GeneralCategory(c)) }
func IsOther(c rune) bool       { return IsOtherCategory(GeneralCategory(c)) }
