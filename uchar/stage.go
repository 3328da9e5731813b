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

// Package uchar is the property substrate: a family of frozen, total,
// O(1) lookup tables over the scalar range [0, MaxScalar], one per Unicode
// property, built once at package init from small curated data tables and
// shared read-only by every engine in the module.
package uchar

// MaxScalar is the largest valid Unicode scalar value.
const MaxScalar = 0x10FFFF

// blockShift/blockSize govern the two-stage table layout: the scalar range
// is cut into fixed-size blocks, and runs of blocks with identical contents
// are folded together by the builder. Lookup is then two array reads: a
// block index fetch followed by a value fetch, independent of how sparse or
// dense the underlying data is.
const (
	blockShift = 7
	blockSize  = 1 << blockShift
	blockMask  = blockSize - 1
	numBlocks  = (MaxScalar + blockSize) / blockSize
)

// Table is a frozen two-stage sparse lookup table mapping every scalar in
// [0, MaxScalar] to a value of type V. It is the generic implementation of
// the "frozen table, one per Unicode property" substrate described by the
// property substrate contract: total, O(1), immutable after construction.
type Table[V comparable] struct {
	stage1 []uint16 // scalar block -> index into stage2, in block units
	stage2 [][blockSize]V
}

// Range is one half-open [Lo, Hi) run of scalars sharing Value, as used to
// build a Table from curated or generated property data.
type Range[V comparable] struct {
	Lo, Hi rune
	Value  V
}

// NewTable builds a frozen Table from a sparse list of ranges plus the
// default value for scalars not covered by any range. Ranges need not be
// sorted or non-overlapping; later ranges take precedence over earlier ones
// at overlapping scalars, which lets curated data be layered (e.g. a broad
// default range refined by narrower exceptions).
func NewTable[V comparable](def V, ranges []Range[V]) *Table[V] {
	var full [numBlocks][blockSize]V
	for i := range full {
		for j := range full[i] {
			full[i][j] = def
		}
	}
	for _, r := range ranges {
		lo, hi := r.Lo, r.Hi
		if lo < 0 {
			lo = 0
		}
		if hi > MaxScalar+1 {
			hi = MaxScalar + 1
		}
		for c := lo; c < hi; c++ {
			full[c>>blockShift][c&blockMask] = r.Value
		}
	}

	t := &Table[V]{
		stage1: make([]uint16, numBlocks),
	}
	// Deduplicate identical blocks so that dense runs of "no data here"
	// (the overwhelming majority of the scalar range) collapse to a single
	// shared block, matching the repo's curated-rather-than-generated data.
	seen := make(map[[blockSize]V]uint16)
	for b := 0; b < numBlocks; b++ {
		block := full[b]
		idx, ok := seen[block]
		if !ok {
			if len(t.stage2) > 0xFFFF {
				unreachableProperty("stage2 block count", len(t.stage2))
			}
			idx = uint16(len(t.stage2))
			t.stage2 = append(t.stage2, block)
			seen[block] = idx
		}
		t.stage1[b] = idx
	}
	return t
}

// Lookup returns the value associated with scalar c. It is total: every
// c in [0, MaxScalar] returns a value, and callers outside that range get
// the zero value of V (scalars outside the defined domain are undefined input
// per the library's error model; this still degrades gracefully instead of
// panicking).
func (t *Table[V]) Lookup(c rune) V {
	if c < 0 || c > MaxScalar {
		var zero V
		return zero
	}
	return t.stage2[t.stage1[c>>blockShift]][c&blockMask]
}
