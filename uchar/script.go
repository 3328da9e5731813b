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

// Script is a Unicode script value. The curated table covers the scripts
// exercised by the module's data: Latin, Greek, Hangul, Han, Common and
// Inherited. Unlisted scalars read Common; Unknown is the zero value,
// returned only for input outside the scalar range.
type Script uint8

const (
	ScriptUnknown Script = iota
	ScriptCommon
	ScriptInherited
	ScriptLatin
	ScriptGreek
	ScriptHangul
	ScriptHan
)

var scriptTable = NewTable(ScriptCommon, scriptRanges)

// ScriptOf returns the Script value of c.
func ScriptOf(c rune) Script {
	return scriptTable.Lookup(c)
}

// scriptExtensions holds the (rare) scalars whose Script_Extensions set is
// wider than their single Script value - almost always scalars with
// Script Common or Inherited that are nonetheless used by specific
// scripts (e.g. combining marks shared across scripts).
var scriptExtensions = map[rune][]Script{
	0x0342: {ScriptGreek}, // COMBINING GREEK PERISPOMENI
	0x0345: {ScriptGreek}, // COMBINING GREEK YPOGEGRAMMENI
	0x00B7: {ScriptLatin, ScriptGreek}, // MIDDLE DOT (interpunct)
}

// IsScript reports whether s equals ScriptOf(c), or ScriptOf(c) is Common
// or Inherited and s is in the scalar's Script_Extensions set.
func IsScript(s Script, c rune) bool {
	switch ScriptOf(c) {
	case ScriptCommon, ScriptInherited:
		if ScriptOf(c) == s {
			return true
		}
		for _, ext := range scriptExtensions[c] {
			if ext == s {
				return true
			}
		}
		return false
	default:
		return ScriptOf(c) == s
	}
}
