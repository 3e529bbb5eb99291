package format

import "strings"

const (
	// DefaultCommandSep splits an inline string into commands.
	DefaultCommandSep = "|"
	// DefaultParamSep splits a command into kind, argument and payload.
	DefaultParamSep = "."
)

const (
	bgPrefix     = "bg_"
	brightSuffix = "+"
)

// Inline interprets text as the pipe-delimited formatting language and
// returns the rendered result, ending in a full reset.
//
// The input is split on the command separator and each segment is read
// as kind.argument.payload, where kind is selected by the first
// character of the first field:
//
//	c	color; the argument takes an optional "bg_" prefix and "+" suffix
//	s	style; the argument must exactly match a style name
//	i	index; the argument is a direction alias or a signed number
//
// Segments that do not start with a known kind, including free text
// between commands, are dropped from the output. A color set by a "c"
// command stays active for the rest of the call, so later style and
// index commands inherit it; only an explicit "c.reset" or the final
// reset ends it. Input without any command separator is returned
// verbatim, reset appended.
func Inline(text string) string {
	return InlineSep(text, DefaultCommandSep, DefaultParamSep)
}

// InlineSep is Inline with caller supplied separators. An empty
// separator falls back to the default.
func InlineSep(text, commandSep, paramSep string) string {
	if commandSep == "" {
		commandSep = DefaultCommandSep
	}
	if paramSep == "" {
		paramSep = DefaultParamSep
	}
	if !strings.Contains(text, commandSep) {
		return text + Reset
	}
	var out strings.Builder
	lastColor := ""
	for _, segment := range strings.Split(text, commandSep) {
		cmd := parseCommand(segment, paramSep)
		switch cmd.kind {
		case cmdColor:
			if code := resolveInlineColor(cmd.arg); code != "" {
				lastColor = code
				out.WriteString(escape(code))
			}
			out.WriteString(cmd.payload)
		case cmdStyle:
			out.WriteString(styledPayload(cmd.arg, cmd.payload, lastColor))
		case cmdIndex:
			out.WriteString(ApplyIndex(cmd.payload, cmd.arg, auxOf(lastColor)...))
		case cmdNone:
			// free text between commands is dropped
		}
	}
	out.WriteString(Reset)
	return out.String()
}

// commandKind identifies an inline command.
type commandKind int

const (
	cmdNone commandKind = iota
	cmdColor
	cmdStyle
	cmdIndex
)

// command is one tokenized segment of an inline string.
type command struct {
	kind    commandKind
	arg     string
	payload string
}

// parseCommand tokenizes a segment. The first character of the first
// field selects the kind, case-insensitively; the second field is the
// argument; any further fields rejoin without the separator to form
// the payload. Segments without a recognized kind, empty segments
// included, tokenize to cmdNone.
func parseCommand(segment, paramSep string) command {
	if segment == "" {
		return command{kind: cmdNone}
	}
	fields := strings.Split(segment, paramSep)
	cmd := command{kind: cmdNone}
	switch head := strings.ToLower(fields[0]); {
	case strings.HasPrefix(head, "c"):
		cmd.kind = cmdColor
	case strings.HasPrefix(head, "s"):
		cmd.kind = cmdStyle
	case strings.HasPrefix(head, "i"):
		cmd.kind = cmdIndex
	default:
		return cmd
	}
	if len(fields) > 1 {
		cmd.arg = fields[1]
	}
	cmd.payload = strings.Join(fields[2:], "")
	return cmd
}

// resolveInlineColor strips the inline modifiers from a color argument
// and resolves what remains. "bg_" moves the color to the background
// and a trailing "+" selects the bright variant.
func resolveInlineColor(arg string) string {
	var f Flags
	if strings.HasPrefix(arg, bgPrefix) {
		f.Background = true
		arg = strings.TrimPrefix(arg, bgPrefix)
	}
	if strings.HasSuffix(arg, brightSuffix) {
		f.Bright = true
		arg = strings.TrimSuffix(arg, brightSuffix)
	}
	return Resolve(arg, f)
}

// styledPayload wraps payload in the named style. The active color is
// folded into both the on and the off sequence so it survives the
// style toggle. An unknown style name contributes no codes.
func styledPayload(name, payload, activeColor string) string {
	on, off, ok := styleCodes(name)
	if !ok {
		return payload
	}
	onParams := append([]string{on}, auxOf(activeColor)...)
	offParams := append([]string{off}, auxOf(activeColor)...)
	return escape(onParams...) + payload + escape(offParams...)
}

// auxOf returns the active color as an auxiliary parameter list,
// empty when no color is active.
func auxOf(activeColor string) []string {
	if activeColor == "" {
		return nil
	}
	return []string{activeColor}
}
