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

package segment

import "testing"

func TestGraphemeKeepsBaseAndCombiningMarkTogether(t *testing.T) {
	seq := []rune{'e', 0x0301, 'a'} // e + acute, then a
	got := Graphemes(seq)
	if len(got) != 2 || len(got[0]) != 2 || len(got[1]) != 1 {
		t.Fatalf("Graphemes(e+acute,a) = %v, want [[e acute] [a]]", got)
	}
}

func TestGraphemeKeepsZWJEmojiSequenceTogether(t *testing.T) {
	// woman (U+1F469) ZWJ (U+200D) laptop (U+1F4BB): a single cluster.
	seq := []rune{0x1F469, 0x200D, 0x1F4BB}
	if GraphemeCount(seq) != 1 {
		t.Fatalf("GraphemeCount(woman-zwj-laptop) = %d, want 1", GraphemeCount(seq))
	}
}

func TestGraphemeKeepsFlagSequenceTogether(t *testing.T) {
	// US flag: two regional indicators, one cluster.
	us := []rune{0x1F1FA, 0x1F1F8}
	if GraphemeCount(us) != 1 {
		t.Fatalf("GraphemeCount(US flag) = %d, want 1", GraphemeCount(us))
	}
	// Four regional indicators (two flags back-to-back) must split into two
	// clusters, not merge into one or split into four.
	twoFlags := []rune{0x1F1FA, 0x1F1F8, 0x1F1EB, 0x1F1F7}
	if GraphemeCount(twoFlags) != 2 {
		t.Fatalf("GraphemeCount(US+FR flags) = %d, want 2", GraphemeCount(twoFlags))
	}
}

func TestGraphemeKeepsHangulJamoSequenceTogether(t *testing.T) {
	// L, V, T jamo sequence forms one cluster (Hangul syllable block rules).
	jamo := []rune{0x1100, 0x1161, 0x11A8}
	if GraphemeCount(jamo) != 1 {
		t.Fatalf("GraphemeCount(L V T) = %d, want 1", GraphemeCount(jamo))
	}
}

func TestWordSplitsOnSimpleWhitespace(t *testing.T) {
	seq := []rune("go is fun")
	words := Words(seq)
	if len(words) != 5 { // "go", " ", "is", " ", "fun"
		t.Fatalf("Words(%q) = %d runs, want 5", string(seq), len(words))
	}
}

func TestWordKeepsNumberWithInternalPeriod(t *testing.T) {
	seq := []rune("3.14 done")
	words := Words(seq)
	if string(words[0]) != "3.14" {
		t.Fatalf("first word = %q, want %q", string(words[0]), "3.14")
	}
}

func TestWordKeepsApostropheContraction(t *testing.T) {
	seq := []rune("don't")
	if WordCount(seq) != 1 {
		t.Fatalf("WordCount(don't) = %d, want 1", WordCount(seq))
	}
}

func TestSentenceBreaksAfterTerminalPunctuationAndSpace(t *testing.T) {
	seq := []rune("Go is fun. Say it again!")
	sentences := Sentences(seq)
	if len(sentences) != 2 {
		t.Fatalf("Sentences(...) = %d, want 2: %v", len(sentences), sentencesAsStrings(sentences))
	}
}

func TestSentenceDoesNotBreakWithinPlainProse(t *testing.T) {
	seq := []rune("hello world")
	if SentenceCount(seq) != 1 {
		t.Fatalf("SentenceCount(hello world) = %d, want 1", SentenceCount(seq))
	}
}

func TestSentenceSuppressesBreakBeforeLowercaseContinuation(t *testing.T) {
	// "e.g. the" reads as one sentence: the lowercase continuation after
	// the abbreviation's period suppresses the boundary (SB8).
	seq := []rune("It works e.g. this way.")
	if n := SentenceCount(seq); n != 1 {
		t.Fatalf("SentenceCount(e.g. ...) = %d, want 1: %v", n, sentencesAsStrings(Sentences(seq)))
	}
}

func TestSentenceBreaksAfterQuotedTerminator(t *testing.T) {
	// The period inside the quotes ends the sentence; the close quote and
	// space stay attached to it.
	seq := []rune("He said \"Hi.\" She left.")
	sentences := Sentences(seq)
	if len(sentences) != 2 {
		t.Fatalf("Sentences(...) = %d, want 2: %v", len(sentences), sentencesAsStrings(sentences))
	}
	if got := string(sentences[0]); got != "He said \"Hi.\" " {
		t.Fatalf("first sentence = %q", got)
	}
}

func TestFirstSegmentLengths(t *testing.T) {
	seq := []rune{'e', 0x0301, 'A'}
	if n := FirstGraphemeLength(seq); n != 2 {
		t.Fatalf("FirstGraphemeLength = %d, want 2", n)
	}
	if n := FirstWordLength([]rune("don't stop")); n != 5 {
		t.Fatalf("FirstWordLength(don't stop) = %d, want 5", n)
	}
	if n := FirstSentenceLength([]rune("One. Two.")); n != 5 {
		t.Fatalf("FirstSentenceLength(One. Two.) = %d, want 5", n)
	}
	if FirstGraphemeLength(nil) != 0 || FirstWordLength(nil) != 0 || FirstSentenceLength(nil) != 0 {
		t.Fatalf("first-segment length of an empty sequence should be 0")
	}
}

func TestWordKeepsZWJEmojiSequenceTogether(t *testing.T) {
	seq := []rune{0x1F469, 0x200D, 0x1F4BB}
	if n := WordCount(seq); n != 1 {
		t.Fatalf("WordCount(woman-zwj-laptop) = %d, want 1", n)
	}
}

func TestBoundaryEndpointsAreAlwaysBoundaries(t *testing.T) {
	seq := []rune("ab")
	for _, isBoundary := range []func([]rune, int) bool{IsGraphemeBoundary, IsWordBoundary, IsSentenceBoundary} {
		if !isBoundary(seq, 0) || !isBoundary(seq, len(seq)) {
			t.Fatalf("boundary at 0 and len must always hold")
		}
	}
	if !IsGraphemeBoundary(nil, 0) {
		t.Fatalf("empty sequence still has its position-0 boundary")
	}
}

func sentencesAsStrings(ss [][]rune) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}
