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

var cccTable = NewTable(uint8(0), cccRanges)

// CombiningClass returns the Canonical_Combining_Class (0-254) of c.
// Starters (ccc == 0) are scalars the normalization and case-context
// predicates treat as run boundaries.
func CombiningClass(c rune) uint8 {
	return cccTable.Lookup(c)
}

// IsStarter reports whether c has ccc == 0.
func IsStarter(c rune) bool {
	return CombiningClass(c) == 0
}
