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

// GraphemeBreak is the Grapheme_Cluster_Break property used by the
// grapheme-boundary engine (UAX #29).
type GraphemeBreak uint8

const (
	GraphemeOther GraphemeBreak = iota
	GraphemeCR
	GraphemeLF
	GraphemeControl
	GraphemeExtend
	GraphemeZWJ
	GraphemeRegionalIndicator
	GraphemePrepend
	GraphemeSpacingMark
	GraphemeL
	GraphemeV
	GraphemeT
	GraphemeLV
	GraphemeLVT
)

var graphemeBreakTable = NewTable(GraphemeOther, graphemeBreakRanges)

// GraphemeBreakProperty looks up the Grapheme_Cluster_Break value of a
// scalar, folding in the algorithmic LV/LVT classification of precomposed
// Hangul syllables (computed arithmetically, not stored in the table).
func GraphemeBreakProperty(c rune) GraphemeBreak {
	if gb, ok := hangulGraphemeBreak(c); ok {
		return gb
	}
	return graphemeBreakTable.Lookup(c)
}

// WordBreak is the Word_Break property used by the word-boundary engine.
type WordBreak uint8

const (
	WordOther WordBreak = iota
	WordCR
	WordLF
	WordNewline
	WordExtend
	WordZWJ
	WordRegionalIndicator
	WordFormat
	WordKatakana
	WordHebrewLetter
	WordALetter
	WordSingleQuote
	WordDoubleQuote
	WordMidNumLet
	WordMidLetter
	WordMidNum
	WordNumeric
	WordExtendNumLet
	WordWSegSpace
)

var wordBreakTable = NewTable(WordOther, wordBreakRanges)

func WordBreakProperty(c rune) WordBreak {
	return wordBreakTable.Lookup(c)
}

// SentenceBreak is the Sentence_Break property used by the sentence-boundary
// engine.
type SentenceBreak uint8

const (
	SentenceOther SentenceBreak = iota
	SentenceCR
	SentenceLF
	SentenceExtend
	SentenceFormat
	SentenceSep
	SentenceSp
	SentenceLower
	SentenceUpper
	SentenceOLetter
	SentenceNumeric
	SentenceATerm
	SentenceSTerm
	SentenceClose
	SentenceSContinue
)

var sentenceBreakTable = NewTable(SentenceOther, sentenceBreakRanges)

func SentenceBreakProperty(c rune) SentenceBreak {
	return sentenceBreakTable.Lookup(c)
}

// Emoji is the Extended_Pictographic classification consulted by GB11 and
// WB3c. Other covers every scalar that is not extended-pictographic.
type Emoji uint8

const (
	EmojiOther Emoji = iota
	EmojiExtendedPictographic
)

var emojiTable = NewTable(EmojiOther, emojiRanges)

func EmojiProperty(c rune) Emoji {
	return emojiTable.Lookup(c)
}

func IsExtendedPictographic(c rune) bool {
	return EmojiProperty(c) == EmojiExtendedPictographic
}
