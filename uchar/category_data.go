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

// categoryRanges is a curated subset of DerivedGeneralCategory.txt: enough
// of Basic Latin, Latin-1 Supplement, Greek, the Hangul blocks, a handful
// of CJK ideographs, combining marks, and emoji/pictograph blocks to make
// every operation in the module exercise real data rather than a default.
// A generated build would replace this file wholesale; constructing it is
// the build-time table generator's job, not a concern of the engines that
// consume Table[Category].
var categoryRanges = []Range[Category]{
	{0x00, 0x20, Cc},
	{0x20, 0x21, Zs},
	{0x21, 0x22, Po}, {0x22, 0x23, Po}, {0x23, 0x24, Po},
	{0x24, 0x25, Sc},
	{0x25, 0x26, Po}, {0x26, 0x27, Po}, {0x27, 0x28, Po},
	{0x28, 0x29, Ps}, {0x29, 0x2A, Pe},
	{0x2A, 0x2B, Po},
	{0x2B, 0x2C, Sm},
	{0x2C, 0x2D, Po},
	{0x2D, 0x2E, Pd},
	{0x2E, 0x2F, Po}, {0x2F, 0x30, Po},
	{0x30, 0x3A, Nd},
	{0x3A, 0x3B, Po}, {0x3B, 0x3C, Po},
	{0x3C, 0x3D, Sm}, {0x3D, 0x3E, Sm}, {0x3E, 0x3F, Sm},
	{0x3F, 0x40, Po}, {0x40, 0x41, Po},
	{0x41, 0x5B, Lu},
	{0x5B, 0x5C, Ps}, {0x5C, 0x5D, Po}, {0x5D, 0x5E, Pe},
	{0x5E, 0x5F, Sk}, {0x5F, 0x60, Pc}, {0x60, 0x61, Sk},
	{0x61, 0x7B, Ll},
	{0x7B, 0x7C, Ps}, {0x7C, 0x7D, Sm}, {0x7D, 0x7E, Pe}, {0x7E, 0x7F, Sm},
	{0x7F, 0x80, Cc},

	{0x80, 0xA0, Cc},
	{0xA0, 0xA1, Zs},
	{0xA1, 0xA2, Po},
	{0xA2, 0xA6, Sc},
	{0xA6, 0xA7, So}, {0xA7, 0xA8, Po}, {0xA8, 0xA9, Sk},
	{0xA9, 0xAA, So}, {0xAA, 0xAB, Lo}, {0xAB, 0xAC, Pi}, {0xAC, 0xAD, Sm},
	{0xAD, 0xAE, Cf}, {0xAE, 0xAF, So}, {0xAF, 0xB0, Sk},
	{0xB0, 0xB1, So}, {0xB1, 0xB2, Sm}, {0xB2, 0xB4, No}, {0xB4, 0xB5, Sk},
	{0xB5, 0xB6, Ll}, {0xB6, 0xB8, Po}, {0xB8, 0xB9, Sk}, {0xB9, 0xBA, No},
	{0xBA, 0xBB, Lo}, {0xBB, 0xBC, Pf}, {0xBC, 0xBF, No}, {0xBF, 0xC0, Po},
	{0xC0, 0xD7, Lu}, {0xD7, 0xD8, Sm}, {0xD8, 0xDF, Lu},
	{0xDF, 0xF7, Ll}, {0xF7, 0xF8, Sm}, {0xF8, 0x100, Ll},

	{0x0300, 0x0370, Mn},

	{0x0370, 0x0374, Lu}, // a rough stand-in for the mixed 370..373 run
	{0x0391, 0x03A2, Lu},
	{0x03A3, 0x03AC, Lu},
	{0x03B1, 0x03C2, Ll},
	{0x03C2, 0x03CC, Ll},

	{0x0130, 0x0131, Lu}, // LATIN CAPITAL LETTER I WITH DOT ABOVE (Turkish)
	{0x0131, 0x0132, Ll}, // LATIN SMALL LETTER DOTLESS I (Turkish)
	{0x012E, 0x012F, Lu}, // LATIN CAPITAL LETTER I WITH OGONEK (Lithuanian)
	{0x012F, 0x0130, Ll}, // LATIN SMALL LETTER I WITH OGONEK (Lithuanian)
	{0x1E9E, 0x1E9F, Lu}, // LATIN CAPITAL LETTER SHARP S

	{0x1100, 0x1200, Lo}, // Hangul Jamo (L/V/T consonants and vowels)

	{0x200C, 0x200E, Cf}, // ZWNJ, ZWJ

	{0x4E00, 0x4E03, Lo}, // a handful of CJK ideographs

	{0xAC00, 0xD7A4, Lo}, // precomposed Hangul syllables

	{0xFB00, 0xFB07, Ll}, // Latin ligatures (ﬀ, ﬁ, ﬂ, ﬃ, ﬄ, ﬅ, ﬆ)

	{0xFE00, 0xFE10, Mn}, // variation selectors

	{0x1F1E6, 0x1F200, So}, // regional indicator symbols
	{0x1F300, 0x1F600, So}, // misc symbols and pictographs
	{0x1F600, 0x1F650, So}, // emoticons
	{0x1F680, 0x1F700, So}, // transport and map symbols
	{0x1F900, 0x1FA00, So}, // supplemental symbols and pictographs
	{0x2600, 0x27C0, So},   // misc symbols / dingbats (curated as So)
}
