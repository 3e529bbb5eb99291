// Package ansilog is a small console logger with colorized output.
// Each log level writes through the format package, which renders
// color, style and index markup into ANSI escape sequences, so a plain
// call like Info gets the level's default color while richer calls can
// pass inline markup or structured formatting options.
//
// Color is applied only when standard output is a terminal and the
// NO_COLOR environment variable is unset; see [New] options to
// override. A [Suppressor] can be attached to drop duplicate messages
// repeated within a time window.
package ansilog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/loki87by/ansilog/format"
)

// Level selects the default color of a log call.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelPrint
)

// String returns the level name, which also keys the suppression cache.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "print"
	}
}

// levelColors holds the default palette name per level. Print carries
// no color of its own.
var levelColors = map[Level]string{
	LevelDebug: "cyan",
	LevelInfo:  "green",
	LevelWarn:  "yellow",
	LevelError: "red",
}

// Logger writes formatted lines to a sink. The zero value is not
// usable; construct with New.
type Logger struct {
	out   io.Writer
	sup   *Suppressor
	color bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput redirects the logger to w. A nil w keeps the default sink.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		if w != nil {
			l.out = w
		}
	}
}

// WithSuppressor attaches a duplicate suppression cache.
func WithSuppressor(s *Suppressor) Option {
	return func(l *Logger) { l.sup = s }
}

// WithNoColor strips all escape sequences from the output.
func WithNoColor() Option {
	return func(l *Logger) { l.color = false }
}

// WithForceColor keeps escape sequences even when the sink is not a
// terminal, for example when piping to a pager that renders them.
func WithForceColor() Option {
	return func(l *Logger) { l.color = true }
}

// New builds a Logger writing to standard output. Color is enabled
// when stdout is a terminal and NO_COLOR is unset.
func New(opts ...Option) *Logger {
	l := &Logger{
		out:   colorable.NewColorableStdout(),
		color: colorWanted(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func colorWanted() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Log renders text with opts and writes it as a single line. A nil
// opts applies the level's default color. When a suppressor is
// attached, a message identical to the previous one on the same level
// within the suppression window is dropped unless force is set; the
// first visible repeat carries a dimmed repetition counter.
func (l *Logger) Log(level Level, text string, opts *format.Options, force bool) {
	indicator := ""
	if l.sup != nil {
		suppressed, repeats := l.sup.Check(level.String(), text, force)
		if suppressed {
			return
		}
		if repeats > 0 {
			indicator = " " + l.render(fmt.Sprintf("[×%d]", repeats), &format.Options{
				All: &format.Appearance{Color: levelColors[level], Style: "dim"},
			})
		}
	}
	if opts == nil {
		opts = &format.Options{}
	}
	if opts.All == nil && !strings.Contains(text, activeCommandSep(opts)) {
		withLevel := *opts
		withLevel.All = &format.Appearance{Color: levelColors[level]}
		opts = &withLevel
	}
	fmt.Fprintln(l.out, l.render(text, opts)+indicator)
}

// render runs the formatting engine and strips the escape sequences
// again when color is off, so plain sinks get plain text.
func (l *Logger) render(text string, opts *format.Options) string {
	s := format.Format(text, opts)
	if !l.color {
		return format.Strip(s)
	}
	return s
}

// activeCommandSep mirrors the delegation rule of format.Format: text
// holding the command separator is inline markup and must not get a
// default color forced onto it.
func activeCommandSep(opts *format.Options) string {
	if opts != nil && opts.Separators != nil && opts.Separators.Command != "" {
		return opts.Separators.Command
	}
	return format.DefaultCommandSep
}

// Debug logs text in the debug color.
func (l *Logger) Debug(text string) { l.Log(LevelDebug, text, nil, false) }

// Info logs text in the info color.
func (l *Logger) Info(text string) { l.Log(LevelInfo, text, nil, false) }

// Warn logs text in the warning color.
func (l *Logger) Warn(text string) { l.Log(LevelWarn, text, nil, false) }

// Error logs text in the error color.
func (l *Logger) Error(text string) { l.Log(LevelError, text, nil, false) }

// Print logs text in the named color, or uncolored when color is empty.
func (l *Logger) Print(text, color string) {
	var opts *format.Options
	if color != "" {
		opts = &format.Options{All: &format.Appearance{Color: color}}
	}
	l.Log(LevelPrint, text, opts, false)
}

var std = New()

// Default returns the package level logger used by Debug, Info, Warn,
// Error and Print.
func Default() *Logger { return std }

// SetDefault replaces the package level logger. Passing nil is a no-op.
func SetDefault(l *Logger) {
	if l != nil {
		std = l
	}
}

// Debug logs text in the debug color using the default logger.
func Debug(text string) { std.Debug(text) }

// Info logs text in the info color using the default logger.
func Info(text string) { std.Info(text) }

// Warn logs text in the warning color using the default logger.
func Warn(text string) { std.Warn(text) }

// Error logs text in the error color using the default logger.
func Error(text string) { std.Error(text) }

// Print logs text in the named color using the default logger.
func Print(text, color string) { std.Print(text, color) }
