package format

import "strings"

// Appearance is a combined style, foreground and background request.
// Empty fields apply nothing. Bright selects the high intensity
// variant of a named foreground color.
type Appearance struct {
	Color      string
	Background string
	Style      string
	Bright     bool
}

// Current styles every literal occurrence of Target within the text.
type Current struct {
	Target     string
	Color      string
	Background string
	Style      string
}

// Note renders individual characters of Target as superscript or
// subscript markers. Chars lists 0-based offsets within the target;
// offsets outside the target are ignored.
type Note struct {
	Target    string
	Chars     []int
	Direction string
}

// Separators overrides the inline language delimiters for a single
// call. Empty fields keep the defaults.
type Separators struct {
	Command string
	Param   string
}

// Options drives Format. All applies to the whole string, Currents to
// targeted substrings in order, Notes to single characters in order.
type Options struct {
	All        *Appearance
	Currents   []Current
	Notes      []Note
	Separators *Separators
}

// Format applies opts to text and returns the rendered result, ending
// in a full reset.
//
// When text contains the active command separator the whole call is
// handed to the inline parser and the structured options are ignored.
// Otherwise the global appearance is applied first, then each Currents
// entry replaces all literal occurrences of its target, then each
// Notes entry marks its listed characters. The global sequence is
// re-emitted after every targeted span so the surrounding text keeps
// the global appearance instead of reverting to the terminal default.
//
// Targets are located in the literal text only: occurrences starting
// inside an emitted escape sequence never match, so a digit target
// cannot tear apart a color code that happens to contain the same
// digit. A target whose characters are no longer contiguous, because
// an earlier replacement split them with escape sequences, is
// silently skipped.
func Format(text string, opts *Options) string {
	if opts == nil {
		opts = &Options{}
	}
	commandSep, paramSep := opts.separators()
	if strings.Contains(text, commandSep) {
		return InlineSep(text, commandSep, paramSep)
	}

	global := appearanceCodes(opts.All)
	globalSeq := ""
	if len(global) > 0 {
		globalSeq = escape(global...)
	}

	type applied struct {
		target string
		codes  []string
	}
	var done []applied

	for _, cur := range opts.Currents {
		if cur.Target == "" {
			continue
		}
		own := appearanceCodes(&Appearance{
			Color:      cur.Color,
			Background: cur.Background,
			Style:      cur.Style,
		})
		if len(own) == 0 {
			continue
		}
		on := escape(append(append([]string{}, global...), own...)...)
		end := spanEnd(cur, globalSeq)
		text = replaceLiteral(text, cur.Target, on+cur.Target+end)
		done = append(done, applied{cur.Target, own})
	}

	for _, note := range opts.Notes {
		if note.Target == "" || len(note.Chars) == 0 {
			continue
		}
		var aux []string
		for _, d := range done {
			if strings.Contains(d.target, note.Target) || strings.Contains(note.Target, d.target) {
				aux = d.codes
				break
			}
		}
		marked := markChars(note, aux)
		if marked != note.Target {
			text = replaceLiteral(text, note.Target, marked)
		}
	}

	return globalSeq + text + Reset
}

func (o *Options) separators() (command, param string) {
	command, param = DefaultCommandSep, DefaultParamSep
	if o.Separators == nil {
		return command, param
	}
	if o.Separators.Command != "" {
		command = o.Separators.Command
	}
	if o.Separators.Param != "" {
		param = o.Separators.Param
	}
	return command, param
}

// appearanceCodes resolves an appearance into a flat SGR parameter
// list: style on-code first, then foreground, then background.
func appearanceCodes(a *Appearance) []string {
	if a == nil {
		return nil
	}
	var codes []string
	if on, _, ok := styleCodes(a.Style); ok {
		codes = append(codes, on)
	}
	if c := Resolve(a.Color, Flags{Bright: a.Bright}); c != "" {
		codes = append(codes, c)
	}
	if c := Resolve(a.Background, Flags{Background: true}); c != "" {
		codes = append(codes, c)
	}
	return codes
}

// spanEnd closes a targeted span. A span that set a color or a
// background ends with a full reset, because SGR has no reliable
// standalone "unset foreground" code, and a style-only span ends with
// the style's own off code. Either way the global sequence follows so
// the rest of the string keeps the global appearance.
func spanEnd(cur Current, globalSeq string) string {
	if cur.Color != "" || cur.Background != "" {
		return Reset + globalSeq
	}
	if _, off, ok := styleCodes(cur.Style); ok {
		return escape(off) + globalSeq
	}
	return Reset + globalSeq
}

// replaceLiteral replaces every occurrence of target in the literal
// text of s with repl. Bytes belonging to a CSI escape sequence are
// copied through untouched and never start a match, keeping emitted
// sequences well formed when the target also appears among their
// parameters.
func replaceLiteral(s, target, repl string) string {
	if target == "" {
		return s
	}
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == escByte && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			if j < len(s) {
				j++
			}
			out.WriteString(s[i:j])
			i = j
			continue
		}
		if strings.HasPrefix(s[i:], target) {
			out.WriteString(repl)
			i += len(target)
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}

// markChars wraps each listed character of the note's target in an
// index marker, inheriting aux codes from a matching targeted span.
func markChars(note Note, aux []string) string {
	runes := []rune(note.Target)
	listed := make(map[int]bool, len(note.Chars))
	for _, i := range note.Chars {
		if i >= 0 && i < len(runes) {
			listed[i] = true
		}
	}
	if len(listed) == 0 {
		return note.Target
	}
	var out strings.Builder
	for i, r := range runes {
		if listed[i] {
			out.WriteString(ApplyIndex(string(r), note.Direction, aux...))
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
