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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	xnorm "golang.org/x/text/unicode/norm"
)

// referenceInputs is drawn from the repertoire the curated property tables
// cover, so every scalar involved carries real data both in this module
// and in the generated tables behind golang.org/x/text.
var referenceInputs = []string{
	"",
	"plain ascii only",
	"Café",             // precomposed e-acute
	"Café",            // decomposed e + combining acute
	"á̖",         // below mark then above mark
	"á̖",         // same marks, reversed input order
	"Äpfel år",    // A-diaeresis, a-ring
	"가",                // the syllable GA
	"각",                // the syllable GAG
	"각",    // conjoining jamo for GAG
	"ﬁnal",             // the fi ligature
	"ß̇",          // sharp s with a combining dot above
	"Σςσ",    // sigma forms
}

// TestNormalizationAgreesWithReferenceImplementation runs all four forms
// over the shared repertoire and diffs the result against
// golang.org/x/text's generated-table implementation.
func TestNormalizationAgreesWithReferenceImplementation(t *testing.T) {
	forms := []struct {
		mine Form
		ref  xnorm.Form
	}{
		{NFC, xnorm.NFC},
		{NFD, xnorm.NFD},
		{NFKC, xnorm.NFKC},
		{NFKD, xnorm.NFKD},
	}
	for _, f := range forms {
		for _, in := range referenceInputs {
			got := f.mine.Apply(in)
			want := f.ref.String(in)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%v(%+q) disagrees with reference (-reference +got):\n%s", f.mine, in, diff)
			}
		}
	}
}

// TestIsNormalizedAgreesWithReferenceImplementation checks the
// is-already-normalized entry point against the same repertoire.
func TestIsNormalizedAgreesWithReferenceImplementation(t *testing.T) {
	forms := []struct {
		mine Form
		ref  xnorm.Form
	}{
		{NFC, xnorm.NFC},
		{NFD, xnorm.NFD},
		{NFKC, xnorm.NFKC},
		{NFKD, xnorm.NFKD},
	}
	for _, f := range forms {
		for _, in := range referenceInputs {
			got := f.mine.IsNormalized([]rune(in))
			want := f.ref.IsNormalString(in)
			if got != want {
				t.Errorf("%v.IsNormalized(%+q) = %v, reference says %v", f.mine, in, got, want)
			}
		}
	}
}
