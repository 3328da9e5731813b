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

package norm

import "testing"

func TestNFCComposesBaseAndMark(t *testing.T) {
	decomposed := []rune{'e', 0x0301} // e + combining acute accent
	got := NFC.Scalars(decomposed)
	want := []rune{'é'} // é
	if string(got) != string(want) {
		t.Fatalf("NFC(e + acute) = %q, want %q", string(got), string(want))
	}
}

func TestNFDDecomposesPrecomposed(t *testing.T) {
	got := NFD.Scalars([]rune{'é'})
	want := []rune{'e', 0x0301}
	if string(got) != string(want) {
		t.Fatalf("NFD(é) = %q, want %q", string(got), string(want))
	}
}

func TestNFCIsIdempotent(t *testing.T) {
	s := []rune("Café naïve")
	once := NFC.Scalars(s)
	twice := NFC.Scalars(once)
	if string(once) != string(twice) {
		t.Fatalf("NFC not idempotent: %q != %q", string(once), string(twice))
	}
}

func TestNFKCAppliesCompatibilityLigatureDecomposition(t *testing.T) {
	got := NFKC.Apply("ﬀi") // "ﬀi"
	want := "ffi"
	if got != want {
		t.Fatalf("NFKC(ﬀi) = %q, want %q", got, want)
	}
}

func TestNFCLeavesCompatibilityLigatureAlone(t *testing.T) {
	got := NFC.Apply("ﬀ")
	if got != "ﬀ" {
		t.Fatalf("NFC(ﬀ) = %q, want unchanged", got)
	}
}

func TestHangulRoundTrip(t *testing.T) {
	// 가 (U+AC00) decomposes to ᄀ (U+1100) + ᅡ (U+1161) and recomposes.
	syllable := []rune{0xAC00}
	jamo := NFD.Scalars(syllable)
	if len(jamo) != 2 || jamo[0] != 0x1100 || jamo[1] != 0x1161 {
		t.Fatalf("NFD(가) = %x, want [1100 1161]", jamo)
	}
	recomposed := NFC.Scalars(jamo)
	if len(recomposed) != 1 || recomposed[0] != 0xAC00 {
		t.Fatalf("NFC(가) = %x, want [AC00]", recomposed)
	}
}

func TestHangulRoundTripWithTrailingJamo(t *testing.T) {
	// 각 (U+AC01) = 가 + ᆨ (U+11A8).
	jamo := NFD.Scalars([]rune{0xAC01})
	if len(jamo) != 3 {
		t.Fatalf("NFD(각) = %x, want 3 jamo", jamo)
	}
	recomposed := NFC.Scalars(jamo)
	if len(recomposed) != 1 || recomposed[0] != 0xAC01 {
		t.Fatalf("NFC round-trip of 각 = %x, want [AC01]", recomposed)
	}
}

func TestCanonicalOrderingOfMultipleCombiningMarks(t *testing.T) {
	// A below-mark (ccc 220) and an above-mark (ccc 230) given in the
	// wrong relative order must be corrected by NFD's canonical reordering.
	outOfOrder := []rune{'a', 0x0301, 0x0316} // above (230) before below (220)
	got := NFD.Scalars(outOfOrder)
	want := []rune{'a', 0x0316, 0x0301}
	if string(got) != string(want) {
		t.Fatalf("reorder = %x, want %x", got, want)
	}
}

func TestCompositionDecompositionDuality(t *testing.T) {
	inputs := [][]rune{
		[]rune("Café naïve"),
		{0x0041, 0x0308},       // A + diaeresis
		{0xAC01},               // precomposed syllable
		{0x1100, 0x1161, 0x11A8}, // its jamo
	}
	for _, in := range inputs {
		if string(ToNFC(ToNFD(in))) != string(ToNFC(in)) {
			t.Errorf("NFC(NFD(%x)) != NFC(%x)", in, in)
		}
		if string(ToNFD(ToNFC(in))) != string(ToNFD(in)) {
			t.Errorf("NFD(NFC(%x)) != NFD(%x)", in, in)
		}
	}
}

func TestCanonicallyEquivalentInputsShareAnNFD(t *testing.T) {
	composed := []rune{0x00C4, 0x0323}        // Ä + dot below
	decomposed := []rune{0x0041, 0x0323, 0x0308} // A + dot below + diaeresis
	if string(ToNFD(composed)) != string(ToNFD(decomposed)) {
		t.Fatalf("NFD(%x) = %x, NFD(%x) = %x; want equal",
			composed, ToNFD(composed), decomposed, ToNFD(decomposed))
	}
	if string(ToNFC(composed)) != string(ToNFC(decomposed)) {
		t.Fatalf("NFC of canonically equivalent inputs differs")
	}
}

func TestIsNormalized(t *testing.T) {
	decomposed := []rune{'e', 0x0301}
	if NFC.IsNormalized(decomposed) {
		t.Fatalf("decomposed sequence reported as NFC-normalized")
	}
	if !NFD.IsNormalized(decomposed) {
		t.Fatalf("already-decomposed sequence reported as not NFD-normalized")
	}
}
