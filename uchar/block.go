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

// Block is a Unicode block value. The curated table covers the blocks
// touched by the rest of the curated data.
type Block uint8

const (
	BlockNoBlock Block = iota
	BlockBasicLatin
	BlockLatin1Supplement
	BlockCombiningDiacriticalMarks
	BlockGreekAndCoptic
	BlockHangulJamo
	BlockCJKUnifiedIdeographs
	BlockHangulSyllables
	BlockAlphabeticPresentationForms
	BlockMiscellaneousSymbolsAndPictographs
	BlockEmoticons
	BlockTransportAndMapSymbols
	BlockEnclosedAlphanumericSupplement
)

var blockTable = NewTable(BlockNoBlock, blockRanges)

// BlockOf returns the Block value of c.
func BlockOf(c rune) Block {
	return blockTable.Lookup(c)
}
