package format

import "strings"

const escByte = 0x1b

// Strip removes CSI escape sequences from s and returns the plain
// payload. Only CSI sequences (ESC [ ... final byte) are recognized;
// a lone ESC followed by anything else is dropped along with the byte
// after it, matching common terminal behavior for two byte escapes.
func Strip(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	scan(s, func(b byte) { out.WriteByte(b) }, nil)
	return out.String()
}

// Sequences returns every CSI sequence of s in order of appearance,
// including the introducer and final byte. Useful for checking that
// formatted output opens and closes its attributes.
func Sequences(s string) []string {
	var seqs []string
	scan(s, nil, func(seq string) { seqs = append(seqs, seq) })
	return seqs
}

// scan walks s byte by byte, reporting literal bytes to text and
// complete CSI sequences to seq. Either callback may be nil.
func scan(s string, text func(byte), seq func(string)) {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b != escByte {
			if text != nil {
				text(b)
			}
			continue
		}
		if i+1 >= len(s) {
			return
		}
		if s[i+1] != '[' {
			i++
			continue
		}
		// CSI: parameter and intermediate bytes run to the final
		// byte in the 0x40..0x7e range
		j := i + 2
		for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
			j++
		}
		if j >= len(s) {
			return
		}
		if seq != nil {
			seq(s[i : j+1])
		}
		i = j
	}
}
