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

// cccRanges is a curated subset of DerivedCombiningClass.txt covering the
// Combining Diacritical Marks block. Every scalar outside it defaults to
// ccc 0 (a starter), which is correct for the overwhelming majority of
// Unicode and exactly what an uncurated scalar should read as.
var cccRanges = []Range[uint8]{
	{0x0300, 0x0315, 230}, // above marks: grave .. reversed comma above
	{0x0315, 0x0316, 232}, // comma above right
	{0x0316, 0x031A, 220}, // below marks: grave below .. right tack below
	{0x031A, 0x031B, 232}, // left angle above
	{0x031B, 0x031C, 216}, // horn
	{0x031C, 0x0321, 220}, // below marks: left half ring below .. minus sign below
	{0x0321, 0x0323, 202}, // retroflex / palatalized hook below
	{0x0323, 0x0327, 220}, // dot below .. comma below
	{0x0327, 0x0329, 202}, // cedilla, ogonek
	{0x0329, 0x0334, 220}, // vertical line below .. double low line
	{0x0334, 0x0339, 1},   // overlay marks: tilde overlay .. long solidus overlay
	{0x0339, 0x033D, 220}, // right half ring below .. seagull below
	{0x033D, 0x0345, 230}, // above marks: x above .. greek dialytika tonos
	{0x0345, 0x0346, 240}, // combining greek ypogegrammeni (iota subscript)
	{0x0346, 0x0347, 230}, // bridge above
	{0x0347, 0x034A, 220}, // equals sign below .. left angle below
	{0x034A, 0x034D, 230}, // not tilde above .. almost equal to above
	{0x034D, 0x034F, 220}, // left right arrow below, upwards arrow below
	{0x034F, 0x0350, 0},   // combining grapheme joiner: not a true combining mark
	{0x0350, 0x0353, 230}, // right arrowhead above .. fermata
	{0x0353, 0x0357, 220}, // x below .. right arrowhead and up arrowhead below
	{0x0357, 0x0358, 230}, // right half ring above
	{0x0358, 0x0359, 232}, // dot above right
	{0x0359, 0x035B, 220}, // asterisk below, double ring below
	{0x035B, 0x035C, 230}, // zigzag above
	{0x035C, 0x035D, 233}, // double breve below
	{0x035D, 0x035F, 234}, // double breve, double macron
	{0x035F, 0x0360, 233}, // double macron below
	{0x0360, 0x0362, 234}, // double tilde, double inverted breve
	{0x0362, 0x0363, 233}, // double rightwards arrow below
	{0x0363, 0x0370, 230}, // latin small letter superscript diacritics
}
