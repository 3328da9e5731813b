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

// fullFoldMap holds CaseFolding.txt's curated full-fold (status F)
// exceptions: scalars whose full fold is a multi-scalar sequence, which a
// plain rune-to-rune map cannot represent and so never belongs in
// simpleFoldMap.
var fullFoldMap = map[rune][]rune{
	0x0130: {0x0069, 0x0307}, // LATIN CAPITAL LETTER I WITH DOT ABOVE
	0x00DF: {0x0073, 0x0073}, // LATIN SMALL LETTER SHARP S
	0x1E9E: {0x0073, 0x0073}, // LATIN CAPITAL LETTER SHARP S
	0xFB00: {0x0066, 0x0066}, // LATIN SMALL LIGATURE FF
}

// turkicFoldMap holds CaseFolding.txt's status-T records: the two scalars
// whose fold changes when the Turkic option is set, substituted in place
// of their ordinary C/F mapping.
var turkicFoldMap = map[rune]rune{
	0x0049: 0x0131, // LATIN CAPITAL LETTER I -> dotless i
	0x0130: 0x0069, // LATIN CAPITAL LETTER I WITH DOT ABOVE -> bare i
}

// ToCaseFold applies full case folding to every scalar of seq, per
// scalar c choosing (in priority order) the Turkic mapping when turkic is
// set and one exists, else the full (F) mapping, else the simple (S or C)
// mapping, else c itself.
func ToCaseFold(seq []rune, turkic bool) []rune {
	out := make([]rune, 0, len(seq))
	for _, c := range seq {
		out = append(out, foldOne(c, turkic)...)
	}
	return out
}

func foldOne(c rune, turkic bool) []rune {
	if turkic {
		if t, ok := turkicFoldMap[c]; ok {
			return []rune{t}
		}
	}
	if f, ok := fullFoldMap[c]; ok {
		return f
	}
	return []rune{SimpleCaseFold(c)}
}
