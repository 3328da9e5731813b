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

import "github.com/unitext-go/unitext/vt/log"

// ValidScalar reports whether c is a well-formed Unicode scalar value: in
// [0, MaxScalar] and not a surrogate. Every Table in this package is total
// over that range and undefined outside it, so nothing on the lookup hot
// path calls this. It exists for callers at a module boundary, or tests,
// that want to fail loudly on malformed input before it reaches an engine.
func ValidScalar(c rune) bool {
	return c >= 0 && c <= MaxScalar && !(c >= 0xD800 && c <= 0xDFFF)
}

// unreachableProperty logs and panics when something the Table builder
// guarantees turns out false at run time: a value outside the closed enum
// a caller's switch expects, or a block count past what the two-stage
// index can address. This can only happen if the table itself was built
// incorrectly, a programming error rather than a condition any caller can
// trigger with valid input, so the module logs loudly and stops.
func unreachableProperty(property string, value any) {
	log.Errorf("unitext: uchar: %s invariant violated, got %v", property, value)
	panic("unitext: unreachable property value")
}
