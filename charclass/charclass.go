/*
Package charclass classifies single code-points with respect to their
direction. It uses a fixed set of script ranges instead of the full UAX#9
Bidi_Class property, as it is good enough for deciding the direction of words.

Code-points are classified in the following order:

   Whitespace   anything matching unicode.IsSpace, NBSP and ZWNBSP
   Neutral      ASCII digits, Arabic-Indic digits and the punctuation
                characters @.,:/-#;!?=&*()[]{}<>"'|\%+^$
   RTL          Hebrew, Arabic and related scripts
   LTR          Latin, Greek, Cyrillic, CJK and most other scripts of the BMP

Code-points outside the Basic Multilingual Plane are classified by their
UAX#9 Bidi_Class (see golang.org/x/text/unicode/bidi). Everything else
falls back to Neutral.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package charclass

import (
	"unicode"

	"github.com/npillmayer/dirfix"
	"golang.org/x/text/unicode/bidi"
)

// Class is the direction class of a code-point.
type Class int8

// Direction classes
const (
	Neutral    Class = iota // digits, punctuation and unclassified code-points
	LTR                     // strong left-to-right
	RTL                     // strong right-to-left
	Whitespace              // word separator
)

func (c Class) String() string {
	switch c {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Whitespace:
		return "WS"
	}
	return "N"
}

// Direction maps a class to a direction. Neutral and Whitespace are mapped
// to dirfix.Neutral.
func (c Class) Direction() dirfix.Direction {
	switch c {
	case LTR:
		return dirfix.LTR
	case RTL:
		return dirfix.RTL
	}
	return dirfix.Neutral
}

// Of returns the class of a single code-point.
func Of(r rune) Class {
	switch {
	case IsSpace(r):
		return Whitespace
	case IsNeutralMark(r):
		return Neutral
	case r > 0xffff:
		return supplementary(r)
	case unicode.Is(rtlTable, r):
		return RTL
	case unicode.Is(ltrTable, r):
		return LTR
	}
	return Neutral
}

// DirectionOf returns the strong direction of a code-point, or dirfix.Neutral.
func DirectionOf(r rune) dirfix.Direction {
	return Of(r).Direction()
}

// IsSpace is true for word separators.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || r == 0x00a0 || r == 0xfeff
}

// IsDigit is true for ASCII digits and Arabic-Indic digits (including the
// extended Eastern variant used for Persian and Urdu).
func IsDigit(r rune) bool {
	return unicode.Is(digitTable, r)
}

// IsNeutralMark is true for digits and the fixed set of neutral punctuation.
// Words containing such characters are flagged, as they are prone to be
// re-ordered by bidi-aware renderers.
func IsNeutralMark(r rune) bool {
	return IsDigit(r) || unicode.Is(punctTable, r)
}

// supplementary classifies code-points outside the BMP by their Bidi_Class.
func supplementary(r rune) Class {
	props, sz := bidi.LookupRune(r)
	if sz == 0 {
		return Neutral
	}
	switch props.Class() {
	case bidi.L:
		return LTR
	case bidi.R, bidi.AL:
		return RTL
	}
	return Neutral
}

// --- Range tables ----------------------------------------------------------

var rtlTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0591, 0x07ff, 1}, // Hebrew, Arabic, Syriac, Thaana, NKo
		{0xfb1d, 0xfdfd, 1}, // Hebrew and Arabic presentation forms A
		{0xfe70, 0xfefc, 1}, // Arabic presentation forms B
	},
}

var ltrTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0041, 0x005a, 1}, // A-Z
		{0x0061, 0x007a, 1}, // a-z
		{0x00c0, 0x00d6, 1},
		{0x00d8, 0x00f6, 1},
		{0x00f8, 0x02b8, 1},
		{0x0300, 0x0590, 1}, // combining marks, Greek, Cyrillic, Armenian
		{0x0800, 0x1fff, 1}, // Indic, South East Asian, Georgian, extended Latin and Greek
		{0x2c00, 0xfb1c, 1}, // Glagolitic … CJK, Hangul, compatibility ideographs
	},
	LatinOffset: 4,
}

var digitTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0030, 0x0039, 1},
		{0x0660, 0x0669, 1},
		{0x06f0, 0x06f9, 1},
	},
	LatinOffset: 1,
}

// @.,:/-#;!?=&*()[]{}<>"'|\%+^$
var punctTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0021, 0x002f, 1}, // ! " # $ % & ' ( ) * + , - . /
		{0x003a, 0x0040, 1}, // : ; < = > ? @
		{0x005b, 0x005e, 1}, // [ \ ] ^
		{0x007b, 0x007d, 1}, // { | }
	},
	LatinOffset: 4,
}
