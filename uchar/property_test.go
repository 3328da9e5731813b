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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableLayersLaterRangesOverEarlier(t *testing.T) {
	tbl := NewTable(0, []Range[int]{
		{0x00, 0x100, 1},
		{0x40, 0x60, 2}, // refines the middle of the broad range
	})
	assert.Equal(t, 1, tbl.Lookup(0x3F))
	assert.Equal(t, 2, tbl.Lookup(0x40))
	assert.Equal(t, 2, tbl.Lookup(0x5F))
	assert.Equal(t, 1, tbl.Lookup(0x60))
	assert.Equal(t, 0, tbl.Lookup(0x100), "outside every range reads the default")
}

func TestTableIsTotalOverTheScalarRange(t *testing.T) {
	tbl := NewTable(7, nil)
	assert.Equal(t, 7, tbl.Lookup(0))
	assert.Equal(t, 7, tbl.Lookup(MaxScalar))
	assert.Equal(t, 0, tbl.Lookup(MaxScalar+1), "out of range degrades to the zero value")
	assert.Equal(t, 0, tbl.Lookup(-1))
}

func TestGeneralCategory(t *testing.T) {
	cases := []struct {
		c    rune
		want Category
	}{
		{'A', Lu},
		{'a', Ll},
		{'0', Nd},
		{' ', Zs},
		{0x0301, Mn}, // combining acute
		{0x4E00, Lo}, // CJK ideograph
		{0xAC00, Lo}, // Hangul syllable
		{0x200D, Cf}, // ZWJ
		{0x10FFFE, Cn},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GeneralCategory(tc.c), "GeneralCategory(%#x)", tc.c)
	}
}

func TestCategoryPredicates(t *testing.T) {
	assert.True(t, IsLetter('A'))
	assert.True(t, IsCasedLetter('a'))
	assert.False(t, IsCasedLetter(0x4E00))
	assert.True(t, IsMark(0x0301))
	assert.True(t, IsNumber('7'))
	assert.True(t, IsPunctuation('!'))
	assert.True(t, IsSymbol('+'))
	assert.True(t, IsSeparator(' '))
	assert.True(t, IsOther(0x10FFFE))
}

func TestBinaryProperties(t *testing.T) {
	assert.True(t, IsWhiteSpace(' '))
	assert.True(t, IsWhiteSpace('\t'))
	assert.False(t, IsWhiteSpace('x'))
	assert.True(t, IsDash('-'))
	assert.True(t, IsHyphen('-'))
	assert.True(t, IsQuotationMark('"'))
	assert.True(t, IsTerminalPunctuation('.'))
	assert.True(t, IsASCIIHexDigit('f'))
	assert.False(t, IsASCIIHexDigit('g'))
	assert.True(t, IsSoftDotted('i'))
	assert.True(t, IsSoftDotted('j'))
	assert.False(t, IsSoftDotted('I'))
	assert.True(t, IsSentenceTerminal('?'))
	assert.True(t, IsJoinControl(0x200D))
	assert.True(t, IsVariationSelector(0xFE0F))
}

func TestNoncharacterCodePointIsArithmetic(t *testing.T) {
	assert.True(t, IsNoncharacterCodePoint(0xFFFE))
	assert.True(t, IsNoncharacterCodePoint(0xFFFF))
	assert.True(t, IsNoncharacterCodePoint(0x1FFFE))
	assert.True(t, IsNoncharacterCodePoint(0xFDD0))
	assert.False(t, IsNoncharacterCodePoint(0xFDF0))
	assert.False(t, IsNoncharacterCodePoint('A'))
}

func TestDerivedCoreProperties(t *testing.T) {
	assert.True(t, IsAlphabetic('A'))
	assert.True(t, IsAlphabetic(0x4E00))
	assert.False(t, IsAlphabetic('1'))
	assert.True(t, IsCased('a'))
	assert.True(t, IsCased('A'))
	assert.False(t, IsCased(0x4E00))
	assert.True(t, IsCaseIgnorable(0x0301), "combining marks are case-ignorable")
	assert.True(t, IsCaseIgnorable('\''), "Single_Quote is case-ignorable")
	assert.True(t, IsCaseIgnorable('.'), "MidNumLet is case-ignorable")
	assert.False(t, IsCaseIgnorable('a'))
	assert.True(t, IsIDStart('A'))
	assert.False(t, IsIDStart('1'))
	assert.True(t, IsIDContinue('1'))
	assert.True(t, IsIDContinue('_'))
	assert.True(t, IsGraphemeExtend(0x0308))
	assert.False(t, IsGraphemeExtend(0x200D), "ZWJ is its own break class, not Grapheme_Extend")
	assert.True(t, IsGraphemeBase('A'))
	assert.False(t, IsGraphemeBase(0x0308))
}

func TestCombiningClass(t *testing.T) {
	assert.Equal(t, uint8(0), CombiningClass('a'))
	assert.Equal(t, uint8(230), CombiningClass(0x0301), "acute is an above mark")
	assert.Equal(t, uint8(220), CombiningClass(0x0316), "grave below is a below mark")
	assert.Equal(t, uint8(202), CombiningClass(0x0327), "cedilla attaches below")
	assert.Equal(t, uint8(240), CombiningClass(0x0345), "ypogegrammeni sorts after above marks")
	assert.True(t, IsStarter('a'))
	assert.False(t, IsStarter(0x0301))
}

func TestGraphemeBreakProperty(t *testing.T) {
	assert.Equal(t, GraphemeCR, GraphemeBreakProperty('\r'))
	assert.Equal(t, GraphemeLF, GraphemeBreakProperty('\n'))
	assert.Equal(t, GraphemeControl, GraphemeBreakProperty(0x07))
	assert.Equal(t, GraphemeExtend, GraphemeBreakProperty(0x0301))
	assert.Equal(t, GraphemeZWJ, GraphemeBreakProperty(0x200D))
	assert.Equal(t, GraphemeRegionalIndicator, GraphemeBreakProperty(0x1F1FA))
	assert.Equal(t, GraphemeOther, GraphemeBreakProperty('a'))
}

func TestHangulGraphemeBreakIsComputedArithmetically(t *testing.T) {
	require.Equal(t, GraphemeLV, GraphemeBreakProperty(0xAC00), "GA has no trailing consonant")
	require.Equal(t, GraphemeLVT, GraphemeBreakProperty(0xAC01), "GAG has one")
	require.Equal(t, GraphemeL, GraphemeBreakProperty(0x1100))
	require.Equal(t, GraphemeV, GraphemeBreakProperty(0x1161))
	require.Equal(t, GraphemeT, GraphemeBreakProperty(0x11A8))
}

func TestWordAndSentenceBreakProperties(t *testing.T) {
	assert.Equal(t, WordALetter, WordBreakProperty('a'))
	assert.Equal(t, WordNumeric, WordBreakProperty('3'))
	assert.Equal(t, WordMidNumLet, WordBreakProperty('.'))
	assert.Equal(t, WordSingleQuote, WordBreakProperty('\''))
	assert.Equal(t, WordWSegSpace, WordBreakProperty(' '))
	assert.Equal(t, WordExtendNumLet, WordBreakProperty('_'))

	assert.Equal(t, SentenceATerm, SentenceBreakProperty('.'))
	assert.Equal(t, SentenceSTerm, SentenceBreakProperty('!'))
	assert.Equal(t, SentenceUpper, SentenceBreakProperty('A'))
	assert.Equal(t, SentenceLower, SentenceBreakProperty('a'))
	assert.Equal(t, SentenceSp, SentenceBreakProperty(' '))
	assert.Equal(t, SentenceClose, SentenceBreakProperty('"'))
}

func TestExtendedPictographic(t *testing.T) {
	assert.True(t, IsExtendedPictographic(0x1F469), "woman emoji")
	assert.True(t, IsExtendedPictographic(0x2615), "hot beverage")
	assert.False(t, IsExtendedPictographic(0x1F1FA), "regional indicators are not pictographic")
	assert.False(t, IsExtendedPictographic('a'))
}

func TestScriptAndScriptExtensions(t *testing.T) {
	assert.Equal(t, ScriptLatin, ScriptOf('a'))
	assert.Equal(t, ScriptGreek, ScriptOf(0x03B1))
	assert.Equal(t, ScriptHangul, ScriptOf(0xAC00))
	assert.Equal(t, ScriptHan, ScriptOf(0x4E00))
	assert.Equal(t, ScriptInherited, ScriptOf(0x0301))
	assert.Equal(t, ScriptCommon, ScriptOf(' '))

	assert.True(t, IsScript(ScriptLatin, 'a'))
	assert.False(t, IsScript(ScriptGreek, 'a'))
	assert.True(t, IsScript(ScriptGreek, 0x0345), "ypogegrammeni extends to Greek")
	assert.True(t, IsScript(ScriptLatin, 0x00B7), "interpunct extends to Latin")
	assert.True(t, IsScript(ScriptGreek, 0x00B7), "and to Greek")
	assert.False(t, IsScript(ScriptLatin, 0x0301), "plain Inherited marks extend to nothing curated")
}

func TestBlockOf(t *testing.T) {
	assert.Equal(t, BlockBasicLatin, BlockOf('a'))
	assert.Equal(t, BlockLatin1Supplement, BlockOf(0xE9))
	assert.Equal(t, BlockCombiningDiacriticalMarks, BlockOf(0x0301))
	assert.Equal(t, BlockHangulSyllables, BlockOf(0xAC00))
	assert.Equal(t, BlockEmoticons, BlockOf(0x1F600))
	assert.Equal(t, BlockNoBlock, BlockOf(0x10FFFE))
}
