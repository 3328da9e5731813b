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

// The DerivedCoreProperties described by the data model are, per the
// property substrate contract, "pure compositions of categories and
// flags"; unlike General_Category or the binary PropList flags they are
// not curated into their own Table, they are computed on every call from
// the tables that are. Changes_When_* is the one exception: those five
// properties depend on the case-mapping tables, which live in package
// casemap to avoid a dependency from uchar (property substrate) back onto
// the case engine, so casemap implements them directly.

// IsMath reports the derived Math property: General_Category Sm, or the
// Other_Math binary property.
func IsMath(c rune) bool {
	return GeneralCategory(c) == Sm || IsOtherMath(c)
}

// IsAlphabetic reports the derived Alphabetic property.
func IsAlphabetic(c rune) bool {
	switch GeneralCategory(c) {
	case Lu, Ll, Lt, Lm, Lo, Nl:
		return true
	}
	return IsOtherAlphabetic(c)
}

// IsLowercase reports the derived Lowercase property.
func IsLowercase(c rune) bool {
	return GeneralCategory(c) == Ll || IsOtherLowercase(c)
}

// IsUppercase reports the derived Uppercase property.
func IsUppercase(c rune) bool {
	return GeneralCategory(c) == Lu || IsOtherUppercase(c)
}

// IsCased reports the derived Cased property (D135): Lu, Ll, Lt, or
// Other_Lowercase/Other_Uppercase.
func IsCased(c rune) bool {
	gc := GeneralCategory(c)
	return gc == Lu || gc == Ll || gc == Lt || IsOtherLowercase(c) || IsOtherUppercase(c)
}

// IsCaseIgnorable reports the derived Case_Ignorable property (D136): Mn,
// Me, Cf, Lm, Sk category, or Word_Break MidLetter/MidNumLet/Single_Quote.
func IsCaseIgnorable(c rune) bool {
	switch GeneralCategory(c) {
	case Mn, Me, Cf, Lm, Sk:
		return true
	}
	switch WordBreakProperty(c) {
	case WordMidLetter, WordMidNumLet, WordSingleQuote:
		return true
	}
	return false
}

// IsIDStart reports the derived ID_Start property.
func IsIDStart(c rune) bool {
	switch GeneralCategory(c) {
	case Lu, Ll, Lt, Lm, Lo, Nl:
		return true
	}
	return HasBinary(c, OtherIDStart)
}

// IsIDContinue reports the derived ID_Continue property.
func IsIDContinue(c rune) bool {
	if IsIDStart(c) {
		return true
	}
	switch GeneralCategory(c) {
	case Mn, Mc, Nd, Pc:
		return true
	}
	return HasBinary(c, OtherIDContinue)
}

// IsXIDStart and IsXIDContinue are the NFKC-closed variants of ID_Start
// and ID_Continue. The curated dataset carries no scalar whose XID value
// diverges from the plain ID value, so these currently delegate directly;
// callers should not rely on that coincidence surviving a fuller table.
func IsXIDStart(c rune) bool    { return IsIDStart(c) }
func IsXIDContinue(c rune) bool { return IsIDContinue(c) }

// IsDefaultIgnorable reports the derived Default_Ignorable_Code_Point
// property: Other_Default_Ignorable, variation selectors and format
// controls, minus white space and prepended concatenation marks.
func IsDefaultIgnorable(c rune) bool {
	if IsWhiteSpace(c) || IsPrependedConcatenationMark(c) {
		return false
	}
	return HasBinary(c, OtherDefaultIgnorableCodePoint) || IsVariationSelector(c) || GeneralCategory(c) == Cf
}

// IsGraphemeExtend reports the derived Grapheme_Extend property: Me, Mn
// category, or Other_Grapheme_Extend, excluding ZWJ (which forms its own
// Grapheme_Cluster_Break class).
func IsGraphemeExtend(c rune) bool {
	if c == 0x200D {
		return false
	}
	gc := GeneralCategory(c)
	return gc == Me || gc == Mn || IsOtherGraphemeExtend(c)
}

// IsGraphemeBase reports the derived Grapheme_Base property: any graphic
// character (D50) that is not Grapheme_Extend.
func IsGraphemeBase(c rune) bool {
	gc := GeneralCategory(c)
	graphic := gc == Zs || IsLetterCategory(gc) || IsMarkCategory(gc) ||
		IsNumberCategory(gc) || IsPunctuationCategory(gc) || IsSymbolCategory(gc)
	return graphic && !IsGraphemeExtend(c)
}

// IsGraphemeLink reports the derived Grapheme_Link property (Virama-class
// joiners). The curated dataset does not model any Grapheme_Link scalars;
// script-specific virama data is out of the module's curated scope.
func IsGraphemeLink(c rune) bool {
	return false
}
