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

package combining

import "testing"

func TestCombiningSequenceCoversBaseAndTrailingMarks(t *testing.T) {
	seq := []rune{'e', 0x0301, 0x0316} // e + acute + below mark
	n := CombiningCharacterSequenceLength(seq, 0)
	if n != 3 {
		t.Fatalf("CombiningCharacterSequenceLength = %d, want 3", n)
	}
}

func TestCombiningSequenceCountTreatsPlainLettersSeparately(t *testing.T) {
	seq := []rune{'a', 'b', 'c'}
	if n := CombiningCharacterSequenceCount(seq); n != 3 {
		t.Fatalf("CombiningCharacterSequenceCount(abc) = %d, want 3", n)
	}
}

func TestCombiningSequenceHandlesDefectiveLeadingMark(t *testing.T) {
	seq := []rune{0x0301, 'x'} // mark with no preceding base, then a base
	n := CombiningCharacterSequenceLength(seq, 0)
	if n != 1 {
		t.Fatalf("defective sequence length = %d, want 1", n)
	}
}

func TestCombiningSequenceIncludesJoinerAfterBase(t *testing.T) {
	seq := []rune{'a', 0x200D} // base + ZWJ
	if n := CombiningCharacterSequenceLength(seq, 0); n != 2 {
		t.Fatalf("CombiningCharacterSequenceLength(a+ZWJ) = %d, want 2", n)
	}
	seq = []rune{'a', 0x200C, 0x0301, 'b'} // base + ZWNJ + mark, then a new base
	if n := CombiningCharacterSequenceLength(seq, 0); n != 3 {
		t.Fatalf("CombiningCharacterSequenceLength(a+ZWNJ+acute) = %d, want 3", n)
	}
	if n := CombiningCharacterSequenceCount(seq); n != 2 {
		t.Fatalf("CombiningCharacterSequenceCount = %d, want 2", n)
	}
}

func TestCombiningSequenceDefectiveRunMayStartWithJoiner(t *testing.T) {
	seq := []rune{0x200D, 0x0301, 'x'} // ZWJ + mark with no base
	if n := CombiningCharacterSequenceLength(seq, 0); n != 2 {
		t.Fatalf("defective joiner-led run length = %d, want 2", n)
	}
}

func TestCombiningSequenceRejectsNonGraphicBase(t *testing.T) {
	// A control character is not a base character, so the following mark
	// does not attach to it.
	seq := []rune{0x07, 0x0301}
	if n := CombiningCharacterSequenceLength(seq, 0); n != 0 {
		t.Fatalf("CombiningCharacterSequenceLength(BEL+acute) = %d, want 0", n)
	}
	if n := CombiningCharacterSequenceCount(seq); n != 2 {
		t.Fatalf("CombiningCharacterSequenceCount(BEL+acute) = %d, want 2 (control alone, then the defective mark)", n)
	}
}

func TestExtendedSequenceTreatsHangulJamoRunAsOneBase(t *testing.T) {
	// L, V, T jamo plus a trailing combining mark: one extended base.
	seq := []rune{0x1100, 0x1161, 0x11A8, 0x0301}
	n := ExtendedCombiningCharacterSequenceLength(seq, 0)
	if n != len(seq) {
		t.Fatalf("ExtendedCombiningCharacterSequenceLength = %d, want %d", n, len(seq))
	}
	if got := CombiningCharacterSequenceCount(seq); got != 3 {
		t.Fatalf("plain CombiningCharacterSequenceCount = %d, want 3 (jamo are each bases; the mark attaches to the last)", got)
	}
	if got := ExtendedCombiningCharacterSequenceCount(seq); got != 1 {
		t.Fatalf("ExtendedCombiningCharacterSequenceCount = %d, want 1", got)
	}
}

func TestExtendedSequenceTreatsPrecomposedSyllableAsOneBase(t *testing.T) {
	seq := []rune{0xAC01, 0x0301} // 각 + acute
	n := ExtendedCombiningCharacterSequenceLength(seq, 0)
	if n != 2 {
		t.Fatalf("ExtendedCombiningCharacterSequenceLength(각+acute) = %d, want 2", n)
	}
}

func TestLoneLeadingJamoRunIsAStandardSyllableBlock(t *testing.T) {
	// L+ with no vowel: still a valid (if unusual) standard syllable
	// block (L+ | V+ | T+ | ...).
	seq := []rune{0x1100, 0x1100, 0x0301}
	n := ExtendedCombiningCharacterSequenceLength(seq, 0)
	if n != 3 {
		t.Fatalf("ExtendedCombiningCharacterSequenceLength(LL+acute) = %d, want 3", n)
	}
}
