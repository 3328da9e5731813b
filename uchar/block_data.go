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

// blockRanges is a curated subset of Blocks.txt, matching the other
// curated tables' coverage.
var blockRanges = []Range[Block]{
	{0x0000, 0x0080, BlockBasicLatin},
	{0x0080, 0x0100, BlockLatin1Supplement},
	{0x0300, 0x0370, BlockCombiningDiacriticalMarks},
	{0x0370, 0x0400, BlockGreekAndCoptic},
	{0x1100, 0x1200, BlockHangulJamo},
	{0x4E00, 0x4E03, BlockCJKUnifiedIdeographs},
	{0xAC00, 0xD7A4, BlockHangulSyllables},
	{0xFB00, 0xFB07, BlockAlphabeticPresentationForms},
	{0x1F300, 0x1F600, BlockMiscellaneousSymbolsAndPictographs},
	{0x1F600, 0x1F650, BlockEmoticons},
	{0x1F680, 0x1F700, BlockTransportAndMapSymbols},
	{0x1F100, 0x1F200, BlockEnclosedAlphanumericSupplement},
}
