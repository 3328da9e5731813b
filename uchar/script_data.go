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

// scriptRanges is a curated subset of Scripts.txt. Combining marks land in
// ScriptInherited, matching the corresponding real property; everything
// else not listed defaults to ScriptCommon.
var scriptRanges = []Range[Script]{
	{0x41, 0x5B, ScriptLatin},
	{0x61, 0x7B, ScriptLatin},
	{0xAA, 0xAB, ScriptLatin},
	{0xBA, 0xBB, ScriptLatin},
	{0xC0, 0xD7, ScriptLatin},
	{0xD8, 0xF7, ScriptLatin},
	{0xF8, 0x100, ScriptLatin},
	{0xFB00, 0xFB07, ScriptLatin},

	{0x0300, 0x0370, ScriptInherited},
	{0xFE00, 0xFE10, ScriptInherited},

	{0x0370, 0x0374, ScriptGreek},
	{0x0391, 0x03A2, ScriptGreek},
	{0x03A3, 0x03AC, ScriptGreek},
	{0x03B1, 0x03C2, ScriptGreek},
	{0x03C2, 0x03CC, ScriptGreek},

	{0x1100, 0x1200, ScriptHangul},
	{0xAC00, 0xD7A4, ScriptHangul},

	{0x4E00, 0x4E03, ScriptHan},
}
