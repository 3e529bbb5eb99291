// Package format renders plain text into terminal-formatted text by
// emitting ANSI Select Graphic Rendition (SGR) escape sequences for
// color, background, style, and superscript or subscript markers.
//
// Formatting never fails: an unresolvable color, an unknown style name
// or an unknown index direction all degrade to plain text. Every result
// ends with a full reset so no attribute leaks past the returned string.
package format

import (
	"strconv"
	"strings"
)

const (
	CSI = "\x1b[" // CSI is the two byte Control Sequence Introducer

	// Reset is the full attribute reset appended to every formatted result.
	Reset = CSI + "0m"

	FullReset = 0

	Bold          = 1
	Dim           = 2
	Italic        = 3
	Underline     = 4
	Blink         = 5
	Inverse       = 7
	Hidden        = 8
	Strikethrough = 9

	NotBoldDim   = 22
	NotItalic    = 23
	NotUnderline = 24
	NotBlink     = 25
	NotInverse   = 27
	NotHidden    = 28
	NotStrike    = 29

	FG1st = 30 // FG1st is the black foreground, the first of the 8 base colors
	FGEnd = 37 // FGEnd is the white foreground, the last of the 8 base colors

	SetFG = 38 // SetFG selects an extended foreground, 5;n or 2;r;g;b
	SetBG = 48 // SetBG selects an extended background, 5;n or 2;r;g;b

	BGShift     = 10 // BGShift converts a foreground code to its background pair
	BrightShift = 60 // BrightShift converts a base color to its bright variant

	Superscript = 73
	Subscript   = 74
	NotIndex    = 75
)

// escape joins the SGR parameters into a single emittable escape sequence.
// All output of this package is assembled through escape and Reset, which
// keeps every sequence well formed.
func escape(params ...string) string {
	return CSI + strings.Join(params, ";") + "m"
}

// style holds the on and off SGR codes of a single text style.
type style struct {
	on  int
	off int
}

// styles maps style names to their on/off SGR pairs.
// "cursive" is a pure alias of italic and shares its codes.
var styles = map[string]style{
	"bold":          {Bold, NotBoldDim},
	"dim":           {Dim, NotBoldDim},
	"italic":        {Italic, NotItalic},
	"cursive":       {Italic, NotItalic},
	"underline":     {Underline, NotUnderline},
	"blink":         {Blink, NotBlink},
	"inverse":       {Inverse, NotInverse},
	"hidden":        {Hidden, NotHidden},
	"strikethrough": {Strikethrough, NotStrike},
}

// indexAliases maps direction synonyms to the superscript or subscript code.
var indexAliases = map[string]int{
	"up":          Superscript,
	"sup":         Superscript,
	"super":       Superscript,
	"superscript": Superscript,
	"top":         Superscript,
	"down":        Subscript,
	"sub":         Subscript,
	"subscript":   Subscript,
	"bottom":      Subscript,
	"index":       Subscript,
}

// styleCodes returns the on and off parameter strings for a style name,
// or ok=false when the name is unknown. Matching is exact.
func styleCodes(name string) (on, off string, ok bool) {
	s, ok := styles[name]
	if !ok {
		return "", "", false
	}
	return strconv.Itoa(s.on), strconv.Itoa(s.off), true
}

// indexCode resolves a direction token to the superscript or subscript
// SGR code. Alias strings are matched case-insensitively; any numeric
// token selects by sign, positive for superscript and negative for
// subscript. Zero and unrecognized tokens resolve to ok=false.
func indexCode(direction string) (int, bool) {
	key := strings.ToLower(strings.TrimSpace(direction))
	if code, ok := indexAliases[key]; ok {
		return code, true
	}
	n, err := strconv.Atoi(key)
	if err != nil || n == 0 {
		return 0, false
	}
	if n > 0 {
		return Superscript, true
	}
	return Subscript, true
}

// ApplyIndex wraps text in a superscript or subscript marker. Any aux
// SGR parameters, typically an active color, are combined into both the
// on and the off sequence so the marker inherits the surrounding
// appearance instead of dropping back to the terminal default.
//
// An unknown direction returns the text unchanged.
func ApplyIndex(text, direction string, aux ...string) string {
	code, ok := indexCode(direction)
	if !ok {
		return text
	}
	on := append([]string{strconv.Itoa(code)}, aux...)
	off := append([]string{strconv.Itoa(NotIndex)}, aux...)
	return escape(on...) + text + escape(off...)
}
