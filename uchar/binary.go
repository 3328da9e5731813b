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

// Binary is the bitset of PropList.txt-style binary properties for a single
// scalar. Each bit is one of the 33 flags in the data model.
type Binary uint64

const (
	WhiteSpace Binary = 1 << iota
	BidiControl
	JoinControl
	Dash
	Hyphen
	QuotationMark
	TerminalPunctuation
	OtherMath
	HexDigit
	ASCIIHexDigit
	OtherAlphabetic
	Ideographic
	Diacritic
	Extender
	OtherLowercase
	OtherUppercase
	NoncharacterCodePoint
	OtherGraphemeExtend
	IDSBinaryOperator
	IDSTrinaryOperator
	Radical
	UnifiedIdeograph
	OtherDefaultIgnorableCodePoint
	Deprecated
	SoftDotted
	LogicalOrderException
	OtherIDStart
	OtherIDContinue
	SentenceTerminal
	VariationSelector
	PatternWhiteSpace
	PatternSyntax
	PrependedConcatenationMark
)

var binaryTable = NewTable(Binary(0), binaryRanges)

// BinaryProperties returns the full binary-property bitset for a scalar.
func BinaryProperties(c rune) Binary {
	return binaryTable.Lookup(c)
}

// Has reports whether flag is set for c.
func (b Binary) Has(flag Binary) bool { return b&flag != 0 }

func HasBinary(c rune, flag Binary) bool { return BinaryProperties(c).Has(flag) }

func IsWhiteSpace(c rune) bool           { return HasBinary(c, WhiteSpace) }
func IsBidiControl(c rune) bool          { return HasBinary(c, BidiControl) }
func IsJoinControl(c rune) bool          { return HasBinary(c, JoinControl) }
func IsDash(c rune) bool                 { return HasBinary(c, Dash) }
func IsHyphen(c rune) bool               { return HasBinary(c, Hyphen) }
func IsQuotationMark(c rune) bool        { return HasBinary(c, QuotationMark) }
func IsTerminalPunctuation(c rune) bool  { return HasBinary(c, TerminalPunctuation) }
func IsOtherMath(c rune) bool            { return HasBinary(c, OtherMath) }
func IsHexDigit(c rune) bool             { return HasBinary(c, HexDigit) }
func IsASCIIHexDigit(c rune) bool        { return HasBinary(c, ASCIIHexDigit) }
func IsOtherAlphabetic(c rune) bool      { return HasBinary(c, OtherAlphabetic) }
func IsIdeographic(c rune) bool          { return HasBinary(c, Ideographic) }
func IsDiacritic(c rune) bool            { return HasBinary(c, Diacritic) }
func IsExtender(c rune) bool             { return HasBinary(c, Extender) }
func IsOtherLowercase(c rune) bool       { return HasBinary(c, OtherLowercase) }
func IsOtherUppercase(c rune) bool       { return HasBinary(c, OtherUppercase) }
func IsNoncharacterCodePoint(c rune) bool {
	last16 := c & 0xFFFF
	return last16 == 0xFFFE || last16 == 0xFFFF || (c >= 0xFDD0 && c <= 0xFDEF)
}
func IsOtherGraphemeExtend(c rune) bool  { return HasBinary(c, OtherGraphemeExtend) }
func IsSoftDotted(c rune) bool           { return HasBinary(c, SoftDotted) }
func IsSentenceTerminal(c rune) bool     { return HasBinary(c, SentenceTerminal) }
func IsVariationSelector(c rune) bool    { return HasBinary(c, VariationSelector) }
func IsPatternWhiteSpace(c rune) bool    { return HasBinary(c, PatternWhiteSpace) }
func IsPatternSyntax(c rune) bool        { return HasBinary(c, PatternSyntax) }
func IsPrependedConcatenationMark(c rune) bool {
	return HasBinary(c, PrependedConcatenationMark)
}
