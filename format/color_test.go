package format_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/nalgeon/be"

	"github.com/loki87by/ansilog/format"
)

func TestNamed(t *testing.T) {
	t.Parallel()
	none := format.Flags{}
	be.Equal(t, format.Resolve("red", none), "31")
	be.Equal(t, format.Resolve("RED", none), "31")
	be.Equal(t, format.Resolve("black", none), "30")
	be.Equal(t, format.Resolve("white", none), "37")
	be.Equal(t, format.Resolve("reset", none), "0")
	// no palette match
	be.Equal(t, format.Resolve("salmon", none), "")
	be.Equal(t, format.Resolve("", none), "")
}

func TestNamedContainment(t *testing.T) {
	t.Parallel()
	none := format.Flags{}
	// decorated tokens resolve through the containment fallback
	be.Equal(t, format.Resolve("reddish", none), "31")
	be.Equal(t, format.Resolve("my_cyan_ish", none), "36")
	// a dash routes the token to the RGB path instead, where it
	// yields no digit runs and therefore no color
	be.Equal(t, format.Resolve("bright-red", none), "")
}

func TestNamedFlags(t *testing.T) {
	t.Parallel()
	be.Equal(t, format.Resolve("red", format.Flags{Background: true}), "41")
	be.Equal(t, format.Resolve("red", format.Flags{Bright: true}), "91")
	be.Equal(t, format.Resolve("red", format.Flags{Background: true, Bright: true}), "101")
	// reset takes no shift
	be.Equal(t, format.Resolve("reset", format.Flags{Background: true}), "0")
}

func TestHex(t *testing.T) {
	t.Parallel()
	none := format.Flags{}
	be.Equal(t, format.Resolve("#ff0000", none), "38;2;255;0;0")
	// the 3 digit form doubles each nibble
	be.Equal(t, format.Resolve("#f00", none), format.Resolve("#ff0000", none))
	// the alpha channel of the 8 digit form is discarded
	be.Equal(t, format.Resolve("#ff000080", none), format.Resolve("#ff0000", none))
	be.Equal(t, format.Resolve("#102030", format.Flags{Background: true}), "48;2;16;32;48")
	// bright has no effect on extended forms
	be.Equal(t, format.Resolve("#f00", format.Flags{Bright: true}), "38;2;255;0;0")
	// unsupported lengths and bad digits resolve to nothing
	be.Equal(t, format.Resolve("#f0", none), "")
	be.Equal(t, format.Resolve("#ff00zz", none), "")
}

func TestRGBDelimiters(t *testing.T) {
	t.Parallel()
	none := format.Flags{}
	want := format.Resolve("255,0,0", none)
	be.Equal(t, want, "38;2;255;0;0")
	be.Equal(t, format.Resolve("255-0-0", none), want)
	be.Equal(t, format.Resolve("255.0.0", none), want)
	be.Equal(t, format.Resolve("255/0-0", none), want)
	be.Equal(t, format.Resolve("255\\0\\0", none), want)
}

func TestRGBForms(t *testing.T) {
	t.Parallel()
	none := format.Flags{}
	// one component selects from the 256-color palette
	be.Equal(t, format.Resolve("196", none), "38;5;196")
	// two components default the third channel to zero
	be.Equal(t, format.Resolve("10,20", none), "38;2;10;20;0")
	be.Equal(t, format.Resolve("1,2,3", none), "38;2;1;2;3")
	be.Equal(t, format.Resolve("1,2,3", format.Flags{Background: true}), "48;2;1;2;3")
	// runs past the third are ignored
	be.Equal(t, format.Resolve("1,2,3,4", none), "38;2;1;2;3")
}

func TestRGBWrap(t *testing.T) {
	t.Parallel()
	none := format.Flags{}
	// components wrap modulo 256 rather than clamping
	be.Equal(t, format.Resolve("256,0,0", none), "38;2;0;0;0")
	be.Equal(t, format.Resolve("300,511,512", none), "38;2;44;255;0")
}

func TestClassify(t *testing.T) {
	t.Parallel()
	if _, ok := format.Classify("#fff").(format.Hex); !ok {
		t.Errorf("Classify(%q) = %T, want Hex", "#fff", format.Classify("#fff"))
	}
	if _, ok := format.Classify("1,2,3").(format.RGB); !ok {
		t.Errorf("Classify(%q) = %T, want RGB", "1,2,3", format.Classify("1,2,3"))
	}
	if _, ok := format.Classify("42").(format.RGB); !ok {
		t.Errorf("Classify(%q) = %T, want RGB", "42", format.Classify("42"))
	}
	if _, ok := format.Classify("red").(format.Named); !ok {
		t.Errorf("Classify(%q) = %T, want Named", "red", format.Classify("red"))
	}
}

func TestResolveSpec(t *testing.T) {
	t.Parallel()
	be.Equal(t, format.ResolveSpec(format.Named("blue"), format.Flags{}), "34")
	be.Equal(t, format.ResolveSpec(format.RGB{1, 2, 3}, format.Flags{}), "38;2;1;2;3")
	be.Equal(t, format.ResolveSpec(format.Hex("#fff"), format.Flags{}), "38;2;255;255;255")
	be.Equal(t, format.ResolveSpec(nil, format.Flags{}), "")
}

// The named palette emits the same sequences as fatih/color, so output
// of this package composes with code styled by that library.
func TestFatihColorCompat(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	be.Equal(t, format.Inline("|c.red.X|"), color.New(color.FgRed).Sprint("X"))
	be.Equal(t, format.Inline("|c.yellow.X|"), color.New(color.FgYellow).Sprint("X"))
	be.Equal(t, format.Inline("|c.bg_green.X|"), color.New(color.BgGreen).Sprint("X"))
	be.Equal(t, format.Inline("|c.cyan+.X|"), color.New(color.FgHiCyan).Sprint("X"))
}
