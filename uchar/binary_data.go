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

// binaryRanges is a curated subset of PropList.txt. NewTable assigns each
// range's value outright rather than OR-ing it into whatever a previous
// range already wrote, so every entry below spells out the full combined
// flag set for its exact span instead of layering single-flag ranges that
// would otherwise clobber each other.
//
// Properties with no curated data below (Other_Math, Other_Alphabetic,
// Other_Uppercase, Other_Grapheme_Extend, IDS_Binary_Operator,
// IDS_Trinary_Operator, Radical, Unified_Ideograph,
// Other_Default_Ignorable_Code_Point, Logical_Order_Exception,
// Other_ID_Start, Deprecated, Pattern_Syntax,
// Prepended_Concatenation_Mark) read false for
// every scalar. That is a curation gap a generated build would fill, not
// a semantic default.
var binaryRanges = []Range[Binary]{
	{0x09, 0x0E, WhiteSpace | PatternWhiteSpace},
	{0x20, 0x21, WhiteSpace | PatternWhiteSpace},
	{0x21, 0x22, TerminalPunctuation | SentenceTerminal},
	{0x22, 0x23, QuotationMark},
	{0x27, 0x28, QuotationMark},
	{0x2C, 0x2D, TerminalPunctuation},
	{0x2D, 0x2E, Dash | Hyphen},
	{0x2E, 0x2F, TerminalPunctuation | SentenceTerminal},
	{0x30, 0x3A, HexDigit | ASCIIHexDigit},
	{0x3A, 0x3C, TerminalPunctuation},
	{0x3F, 0x40, TerminalPunctuation | SentenceTerminal},
	{0x41, 0x47, HexDigit | ASCIIHexDigit},
	{0x5E, 0x5F, Diacritic},
	{0x60, 0x61, Diacritic},
	{0x61, 0x67, HexDigit | ASCIIHexDigit},
	{0x69, 0x6B, SoftDotted},
	{0x85, 0x86, WhiteSpace | PatternWhiteSpace},
	{0xA0, 0xA1, WhiteSpace},
	{0xAA, 0xAB, OtherLowercase},
	{0xAB, 0xAC, QuotationMark},
	{0xAD, 0xAE, Hyphen},
	{0xB4, 0xB5, Diacritic},
	{0xB7, 0xB8, Extender | OtherIDContinue},
	{0xBA, 0xBB, OtherLowercase},
	{0xBB, 0xBC, QuotationMark},

	{0x012F, 0x0130, SoftDotted},
	{0x0268, 0x0269, SoftDotted},
	{0x0300, 0x0370, Diacritic},
	{0x0456, 0x0457, SoftDotted},
	{0x0458, 0x0459, SoftDotted},

	{0x1680, 0x1681, WhiteSpace},
	{0x2000, 0x200B, WhiteSpace},
	{0x200C, 0x200E, JoinControl},
	{0x200E, 0x2010, BidiControl},
	{0x2010, 0x2012, Dash | Hyphen},
	{0x2012, 0x2016, Dash},
	{0x2018, 0x2020, QuotationMark},
	{0x2028, 0x202A, WhiteSpace | PatternWhiteSpace},
	{0x202A, 0x202F, BidiControl},
	{0x202F, 0x2030, WhiteSpace},
	{0x205F, 0x2060, WhiteSpace},
	{0x2066, 0x206A, BidiControl},
	{0x3000, 0x3001, WhiteSpace},

	{0x4E00, 0x4E03, Ideographic},

	{0xFE00, 0xFE10, VariationSelector},
}
