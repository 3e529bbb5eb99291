package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

// execute resets the command state, runs it with args and returns the
// captured standard output.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	colorFlag, bgFlag, styleFlag, indexFlag, levelFlag = "", "", "", "", ""
	brightFlag, noColor = false, false
	charsetFlag = "utf8"

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	be.Err(t, err, nil)
	return buf.String()
}

func TestColorFlag(t *testing.T) {
	out := execute(t, "hello", "--color", "red")
	be.Equal(t, out, "\x1b[31mhello\x1b[0m\n")
}

func TestBrightFlag(t *testing.T) {
	out := execute(t, "hello", "--color", "red", "--bright")
	be.Equal(t, out, "\x1b[91mhello\x1b[0m\n")
}

func TestStyleAndBackground(t *testing.T) {
	out := execute(t, "hello", "--style", "bold", "--bg", "blue")
	be.Equal(t, out, "\x1b[1;44mhello\x1b[0m\n")
}

func TestInlineMarkup(t *testing.T) {
	out := execute(t, "|c.red.hi|")
	be.Equal(t, out, "\x1b[31mhi\x1b[0m\n")
}

func TestLevelFlag(t *testing.T) {
	out := execute(t, "boom", "--level", "error")
	be.Equal(t, out, "\x1b[31mboom\x1b[0m\n")
}

func TestIndexFlag(t *testing.T) {
	out := execute(t, "2", "--index", "down")
	be.Equal(t, out, "\x1b[74m2\x1b[75m\x1b[0m\n")
}

func TestIndexFlagKeepsColor(t *testing.T) {
	out := execute(t, "2", "--index", "down", "--color", "red")
	be.Equal(t, out, "\x1b[31m\x1b[74;31m2\x1b[75;31m\x1b[0m\n")
}

func TestIndexFlagKeepsStyle(t *testing.T) {
	out := execute(t, "2", "--index", "up", "--style", "bold")
	be.Equal(t, out, "\x1b[1m\x1b[73m2\x1b[75m\x1b[0m\n")
}

func TestNoColorFlag(t *testing.T) {
	out := execute(t, "hello", "--color", "red", "--no-color")
	be.Equal(t, out, "hello\n")
}

func TestCharset(t *testing.T) {
	// 0xae is « in Code Page 437 and ® in Latin-1
	out := execute(t, "\xae", "--charset", "cp437", "--no-color")
	be.Equal(t, out, "«\n")
	out = execute(t, "\xae", "--charset", "latin1", "--no-color")
	be.Equal(t, out, "®\n")
}

func TestUnknownCharset(t *testing.T) {
	colorFlag, levelFlag, indexFlag = "", "", ""
	noColor = false
	charsetFlag = "ebcdic"
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"hi", "--charset", "ebcdic"})
	err := rootCmd.Execute()
	be.Err(t, err, ErrCharset)
}

func TestVersion(t *testing.T) {
	out := execute(t, "version")
	be.True(t, strings.HasPrefix(out, "ansilog "))
}
