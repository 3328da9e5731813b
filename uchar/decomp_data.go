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

// canonicalDecomp is a Latin-1 Supplement precomposed letter and its
// canonical (NFD) expansion into base letter plus combining mark. It is
// also the source data for buildCompositions: every entry here that is not
// in compositionExclusions composes back.
type canonicalDecomp struct {
	from rune
	base rune
	mark rune
}

var latin1CanonicalDecomps = []canonicalDecomp{
	{0xC0, 0x41, 0x0300}, {0xC1, 0x41, 0x0301}, {0xC2, 0x41, 0x0302},
	{0xC3, 0x41, 0x0303}, {0xC4, 0x41, 0x0308}, {0xC5, 0x41, 0x030A},
	{0xC7, 0x43, 0x0327},
	{0xC8, 0x45, 0x0300}, {0xC9, 0x45, 0x0301}, {0xCA, 0x45, 0x0302}, {0xCB, 0x45, 0x0308},
	{0xCC, 0x49, 0x0300}, {0xCD, 0x49, 0x0301}, {0xCE, 0x49, 0x0302}, {0xCF, 0x49, 0x0308},
	{0xD1, 0x4E, 0x0303},
	{0xD2, 0x4F, 0x0300}, {0xD3, 0x4F, 0x0301}, {0xD4, 0x4F, 0x0302},
	{0xD5, 0x4F, 0x0303}, {0xD6, 0x4F, 0x0308},
	{0xD9, 0x55, 0x0300}, {0xDA, 0x55, 0x0301}, {0xDB, 0x55, 0x0302}, {0xDC, 0x55, 0x0308},
	{0xDD, 0x59, 0x0301},

	{0xE0, 0x61, 0x0300}, {0xE1, 0x61, 0x0301}, {0xE2, 0x61, 0x0302},
	{0xE3, 0x61, 0x0303}, {0xE4, 0x61, 0x0308}, {0xE5, 0x61, 0x030A},
	{0xE7, 0x63, 0x0327},
	{0xE8, 0x65, 0x0300}, {0xE9, 0x65, 0x0301}, {0xEA, 0x65, 0x0302}, {0xEB, 0x65, 0x0308},
	{0xEC, 0x69, 0x0300}, {0xED, 0x69, 0x0301}, {0xEE, 0x69, 0x0302}, {0xEF, 0x69, 0x0308},
	{0xF1, 0x6E, 0x0303},
	{0xF2, 0x6F, 0x0300}, {0xF3, 0x6F, 0x0301}, {0xF4, 0x6F, 0x0302},
	{0xF5, 0x6F, 0x0303}, {0xF6, 0x6F, 0x0308},
	{0xF9, 0x75, 0x0300}, {0xFA, 0x75, 0x0301}, {0xFB, 0x75, 0x0302}, {0xFC, 0x75, 0x0308},
	{0xFD, 0x79, 0x0301},
	{0xFF, 0x79, 0x0308},
}

// compatDecomp is a compatibility-only decomposition: honored by NFKC/NFKD,
// left alone by NFC/NFD.
type compatDecomp struct {
	from    rune
	mapping []rune
}

var compatDecomps = []compatDecomp{
	{0xB2, []rune{0x32}},   // superscript two
	{0xB3, []rune{0x33}},   // superscript three
	{0xB9, []rune{0x31}},   // superscript one
	{0x017F, []rune{0x73}}, // ſ (long s) -> s

	{0xFB00, []rune{0x66, 0x66}},         // ﬀ -> ff
	{0xFB01, []rune{0x66, 0x69}},         // ﬁ -> fi
	{0xFB02, []rune{0x66, 0x6C}},         // ﬂ -> fl
	{0xFB03, []rune{0x66, 0x66, 0x69}},   // ﬃ -> ffi
	{0xFB04, []rune{0x66, 0x66, 0x6C}},   // ﬄ -> ffl
	{0xFB05, []rune{0x017F, 0x74}},       // ﬅ -> ſt
	{0xFB06, []rune{0x73, 0x74}},         // ﬆ -> st
}

func buildDecompositions() map[rune]Decomposition {
	m := make(map[rune]Decomposition, len(latin1CanonicalDecomps)+len(compatDecomps))
	for _, d := range latin1CanonicalDecomps {
		m[d.from] = Decomposition{Mapping: []rune{d.base, d.mark}}
	}
	for _, d := range compatDecomps {
		m[d.from] = Decomposition{Mapping: d.mapping, Compat: true}
	}
	return m
}
