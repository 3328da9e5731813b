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

// simpleUpperMap and simpleLowerMap are curated, hand-built subsets of
// UnicodeData.txt's Simple_Uppercase_Mapping / Simple_Lowercase_Mapping
// fields, covering ASCII, Latin-1 Supplement and the Greek block.
var simpleUpperMap = map[rune]rune{}
var simpleLowerMap = map[rune]rune{}
var simpleTitleMap = map[rune]rune{}
var simpleFoldMap = map[rune]rune{}

func init() {
	for c := rune('a'); c <= 'z'; c++ {
		simpleUpperMap[c] = c - 32
	}
	for c := rune('A'); c <= 'Z'; c++ {
		simpleLowerMap[c] = c + 32
	}

	for c := rune(0xE0); c <= 0xFE; c++ {
		if c == 0xF7 {
			continue // division sign, not a letter
		}
		simpleUpperMap[c] = c - 32
	}
	for c := rune(0xC0); c <= 0xDE; c++ {
		if c == 0xD7 {
			continue // multiplication sign
		}
		simpleLowerMap[c] = c + 32
	}
	simpleUpperMap[0xDF] = 0x1E9E // ß -> ẞ (simple; full uppercasing expands to "SS")
	simpleLowerMap[0x1E9E] = 0xDF
	simpleUpperMap[0xB5] = 0x039C // µ (micro sign) -> Μ (Greek capital mu)
	simpleUpperMap[0xFF] = 0x0178 // ÿ -> Ÿ

	for c := rune(0x0391); c <= 0x03A9; c++ {
		if c == 0x03A2 {
			continue // unassigned
		}
		lower := c + 32
		simpleLowerMap[c] = lower
		simpleUpperMap[lower] = c
	}
	simpleUpperMap[0x03C2] = 0x03A3 // final sigma ς also uppercases to Σ

	simpleFoldMap[0x1E9E] = 0xDF // capital sharp s folds (status S) to ß
	simpleFoldMap[0x017F] = 0x73 // long s ſ folds (status C) to s

	simpleFoldMap[0xB5] = 0x03BC   // micro sign µ folds (status C) to Greek μ
	simpleFoldMap[0x03C2] = 0x03C3 // final sigma ς folds (status C) to σ

	// No curated scalar has a titlecase mapping distinct from its uppercase
	// mapping (that distinction only matters for digraphs like U+01C4 DŽ,
	// none of which are in the curated set), so simpleTitleMap stays empty
	// and SimpleTitlecase falls through to SimpleUppercase.
}
