package format

import (
	"strconv"
	"strings"
)

// Flags adjust how a color specification is resolved.
// Background targets the background instead of the foreground.
// Bright selects the high intensity variant of a base palette color;
// it has no effect on hex, RGB or indexed forms.
type Flags struct {
	Background bool
	Bright     bool
}

// Spec is a classified color specification. The concrete types are
// Named, Hex and RGB; Classify turns a raw token into one of them.
type Spec interface {
	resolve(f Flags) string
}

// Named is a palette color name such as "red", matched case-insensitively.
type Named string

// Hex is a hexadecimal color, with or without the leading "#".
// 3, 6 and 8 digit forms are accepted; the alpha channel of the 8 digit
// form is parsed and discarded.
type Hex string

// RGB is an ordered list of numeric components. One component selects
// from the 256-color palette, three components select a 24-bit color.
type RGB []int

// palette lists the 8 base color names in SGR code order, plus reset.
// The order matters: the substring fallback of Classify scans it front
// to back and the first containing name wins.
var palette = []struct {
	name string
	code int
}{
	{"black", 30},
	{"red", 31},
	{"green", 32},
	{"yellow", 33},
	{"blue", 34},
	{"magenta", 35},
	{"cyan", 36},
	{"white", 37},
	{"reset", FullReset},
}

// rgbDelimiters are the characters that mark a token as an RGB-like
// specification rather than a color name.
const rgbDelimiters = ".,-/\\"

// Classify determines how a raw color token will be interpreted.
// Precedence: a leading "#" selects the hex form; any RGB delimiter
// character, or a token made purely of digits, selects the RGB-like
// form; everything else is treated as a palette name.
func Classify(raw string) Spec {
	if strings.HasPrefix(raw, "#") {
		return Hex(raw)
	}
	if strings.ContainsAny(raw, rgbDelimiters) || isDigits(raw) {
		return RGB(digitRuns(raw))
	}
	return Named(raw)
}

// Resolve classifies raw and resolves it into an SGR parameter string,
// for example "31" or "38;2;255;0;0". The empty string means no color:
// callers apply no sequence and the text passes through unstyled.
func Resolve(raw string, f Flags) string {
	if raw == "" {
		return ""
	}
	return Classify(raw).resolve(f)
}

// ResolveSpec resolves an already classified specification.
func ResolveSpec(s Spec, f Flags) string {
	if s == nil {
		return ""
	}
	return s.resolve(f)
}

func (n Named) resolve(f Flags) string {
	key := strings.ToLower(string(n))
	code, ok := paletteCode(key)
	if !ok {
		return ""
	}
	if code == FullReset {
		return strconv.Itoa(code)
	}
	if f.Background {
		code += BGShift
	}
	if f.Bright {
		code += BrightShift
	}
	return strconv.Itoa(code)
}

// paletteCode matches a lowercased name against the palette, exact
// match first. Failing that, the first palette name contained in the
// input wins, so decorated tokens like "bright-red" still resolve.
// Callers should prefer exact names; the containment fallback is an
// accepted ambiguity, not a bug.
func paletteCode(key string) (int, bool) {
	for _, p := range palette {
		if p.name == key {
			return p.code, true
		}
	}
	for _, p := range palette {
		if strings.Contains(key, p.name) {
			return p.code, true
		}
	}
	return 0, false
}

func (h Hex) resolve(f Flags) string {
	digits := strings.TrimPrefix(string(h), "#")
	switch len(digits) {
	case 3:
		var expanded strings.Builder
		for _, r := range digits {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		digits = expanded.String()
	case 6:
	case 8:
		// alpha channel is parsed but discarded
		digits = digits[:6]
	default:
		return ""
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return ""
	}
	rgb := RGB{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}
	return rgb.resolve(f)
}

func (c RGB) resolve(f Flags) string {
	if len(c) == 0 {
		return ""
	}
	selector := SetFG
	if f.Background {
		selector = SetBG
	}
	comp := make([]int, len(c))
	for i, v := range c {
		comp[i] = ((v % 256) + 256) % 256
	}
	if len(comp) > 3 {
		comp = comp[:3]
	}
	params := []string{strconv.Itoa(selector)}
	switch len(comp) {
	case 1:
		// single component selects from the 256-color palette
		params = append(params, "5", strconv.Itoa(comp[0]))
	case 2:
		// degenerate two component form, third channel defaults to zero
		params = append(params, "2", strconv.Itoa(comp[0]), strconv.Itoa(comp[1]), "0")
	default:
		params = append(params, "2",
			strconv.Itoa(comp[0]), strconv.Itoa(comp[1]), strconv.Itoa(comp[2]))
	}
	return strings.Join(params, ";")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// digitRuns extracts every maximal run of decimal digits from s in
// left to right order, keeping at most the first three. Each run is
// reduced modulo 256, wrapping rather than clamping, so "256" becomes
// 0. A run too long to parse contributes 0.
func digitRuns(s string) []int {
	runs := []int{}
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		if len(runs) < 3 {
			n, err := strconv.Atoi(s[start:end])
			if err != nil {
				n = 0
			}
			runs = append(runs, n%256)
		}
		start = -1
	}
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(s))
	return runs
}
