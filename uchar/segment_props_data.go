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

// graphemeBreakRanges is a curated subset of GraphemeBreakProperty.txt.
// The Hangul L/V/T jamo ranges are listed here; LV/LVT values for
// precomposed syllables are not: they come from hangulGraphemeBreak's
// arithmetic classification instead.
var graphemeBreakRanges = []Range[GraphemeBreak]{
	{0x00, 0x0A, GraphemeControl},
	{0x0A, 0x0B, GraphemeLF},
	{0x0B, 0x0D, GraphemeControl},
	{0x0D, 0x0E, GraphemeCR},
	{0x0E, 0x20, GraphemeControl},
	{0x7F, 0xA0, GraphemeControl},
	{0xAD, 0xAE, GraphemeControl},
	{0x0300, 0x0370, GraphemeExtend},
	{0x1100, 0x1160, GraphemeL},
	{0x1160, 0x11A8, GraphemeV},
	{0x11A8, 0x1200, GraphemeT},
	{0x200C, 0x200D, GraphemeExtend},
	{0x200D, 0x200E, GraphemeZWJ},
	{0xFE00, 0xFE10, GraphemeExtend},
	{0x1F1E6, 0x1F200, GraphemeRegionalIndicator},
}

// wordBreakRanges is a curated subset of WordBreakProperty.txt.
var wordBreakRanges = []Range[WordBreak]{
	{0x0A, 0x0B, WordLF},
	{0x0B, 0x0C, WordNewline},
	{0x0C, 0x0D, WordNewline},
	{0x0D, 0x0E, WordCR},
	{0x20, 0x21, WordWSegSpace},
	{0x22, 0x23, WordDoubleQuote},
	{0x27, 0x28, WordSingleQuote},
	{0x2C, 0x2D, WordMidNum},
	{0x2E, 0x2F, WordMidNumLet},
	{0x30, 0x3A, WordNumeric},
	{0x3A, 0x3B, WordMidLetter},
	{0x41, 0x5B, WordALetter},
	{0x5F, 0x60, WordExtendNumLet},
	{0x61, 0x7B, WordALetter},
	{0x85, 0x86, WordNewline},
	{0xC0, 0xD7, WordALetter},
	{0xD8, 0xF7, WordALetter},
	{0xF8, 0x100, WordALetter},
	{0x0300, 0x0370, WordExtend},
	{0x0391, 0x03A2, WordALetter},
	{0x03A3, 0x03AC, WordALetter},
	{0x03B1, 0x03C2, WordALetter},
	{0x03C2, 0x03CC, WordALetter},
	{0x012E, 0x0132, WordALetter}, // Į, į, İ, ı (Lithuanian/Turkish dotted letters)
	{0x1E9E, 0x1E9F, WordALetter}, // ẞ
	{0x200C, 0x200D, WordExtend},
	{0x200D, 0x200E, WordZWJ},
	{0x2028, 0x202A, WordNewline},
	{0xFE00, 0xFE10, WordExtend},
	{0x1F1E6, 0x1F200, WordRegionalIndicator},
}

// sentenceBreakRanges is a curated subset of SentenceBreakProperty.txt.
var sentenceBreakRanges = []Range[SentenceBreak]{
	{0x0A, 0x0B, SentenceLF},
	{0x0D, 0x0E, SentenceCR},
	{0x20, 0x21, SentenceSp},
	{0x21, 0x22, SentenceSTerm},
	{0x22, 0x23, SentenceClose},
	{0x28, 0x29, SentenceClose},
	{0x29, 0x2A, SentenceClose},
	{0x2C, 0x2D, SentenceSContinue},
	{0x2E, 0x2F, SentenceATerm},
	{0x30, 0x3A, SentenceNumeric},
	{0x3F, 0x40, SentenceSTerm},
	{0x41, 0x5B, SentenceUpper},
	{0x61, 0x7B, SentenceLower},
	{0xAD, 0xAE, SentenceFormat},
	{0xBB, 0xBC, SentenceClose},
	{0xC0, 0xD8, SentenceUpper},
	{0xD8, 0xDF, SentenceUpper},
	{0xDF, 0xF7, SentenceLower},
	{0xF7, 0xF8, 0},
	{0xF8, 0x100, SentenceLower},
	{0x0300, 0x0370, SentenceExtend},
	{0x0391, 0x03A2, SentenceUpper},
	{0x03A3, 0x03AC, SentenceUpper},
	{0x03B1, 0x03C2, SentenceLower},
	{0x03C2, 0x03CC, SentenceLower},
	{0x1100, 0x1200, SentenceOLetter},
	{0x200C, 0x200E, SentenceFormat},
	{0x2028, 0x202A, SentenceSep},
	{0x4E00, 0x4E03, SentenceOLetter},
	{0xAC00, 0xD7A4, SentenceOLetter},
}

// emojiRanges is a curated subset of emoji-data.txt's Extended_Pictographic
// property. Regional-indicator symbols are deliberately absent: they carry
// Grapheme/Word break Regional_Indicator instead, not Extended_Pictographic.
var emojiRanges = []Range[Emoji]{
	{0x2600, 0x27C0, EmojiExtendedPictographic},
	{0x1F300, 0x1F600, EmojiExtendedPictographic},
	{0x1F600, 0x1F650, EmojiExtendedPictographic},
	{0x1F680, 0x1F700, EmojiExtendedPictographic},
	{0x1F900, 0x1FA00, EmojiExtendedPictographic},
}
