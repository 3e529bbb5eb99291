package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"

	"github.com/loki87by/ansilog"
	"github.com/loki87by/ansilog/format"
)

var ErrCharset = errors.New("unknown charset, expected utf8, cp437 or latin1")

var (
	verbosity   int
	colorFlag   string
	bgFlag      string
	brightFlag  bool
	styleFlag   string
	indexFlag   string
	levelFlag   string
	charsetFlag string
	noColor     bool

	rootCmd = &cobra.Command{
		Use:   "ansilog [text...]",
		Short: "Colorize text for the terminal",
		Long: `ansilog renders text with ANSI colors, styles and super/subscript
markers. Text is taken from the arguments, or from standard input when
no arguments are given. Inline markup like "|c.red.hello|" is rendered
through the pipe-delimited formatting language; otherwise the --color,
--bg, --style and --index flags apply to the whole text.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupDiagnostics(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once by main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase diagnostic verbosity (-v info, -vv debug, -vvv trace)")
	rootCmd.Flags().StringVarP(&colorFlag, "color", "c", "", "Foreground color: name, #hex or r,g,b")
	rootCmd.Flags().StringVar(&bgFlag, "bg", "", "Background color: name, #hex or r,g,b")
	rootCmd.Flags().BoolVar(&brightFlag, "bright", false, "Use the bright variant of a named color")
	rootCmd.Flags().StringVarP(&styleFlag, "style", "s", "", "Text style: bold, dim, italic, underline, ...")
	rootCmd.Flags().StringVarP(&indexFlag, "index", "i", "", "Render the whole text as superscript (up) or subscript (down)")
	rootCmd.Flags().StringVarP(&levelFlag, "level", "l", "", "Log with a level color: debug, info, warn or error")
	rootCmd.Flags().StringVar(&charsetFlag, "charset", "utf8", "Input charset: utf8, cp437 or latin1")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Strip escape sequences from the output")

	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	log.Debug().Int("bytes", len(text)).Str("charset", charsetFlag).Msg("input read")

	var opts []ansilog.Option
	opts = append(opts, ansilog.WithOutput(cmd.OutOrStdout()))
	if noColor {
		opts = append(opts, ansilog.WithNoColor())
	} else {
		opts = append(opts, ansilog.WithForceColor())
	}
	logger := ansilog.New(opts...)

	if level, ok := levels[levelFlag]; ok {
		logger.Log(level, text, nil, false)
		return nil
	}

	fopts := &format.Options{}
	if colorFlag != "" || bgFlag != "" || styleFlag != "" {
		fopts.All = &format.Appearance{
			Color:      colorFlag,
			Background: bgFlag,
			Style:      styleFlag,
			Bright:     brightFlag,
		}
	}
	if indexFlag != "" {
		// flag colors ride into the marker as aux parameters
		var aux []string
		if c := format.Resolve(colorFlag, format.Flags{Bright: brightFlag}); c != "" {
			aux = append(aux, c)
		}
		if c := format.Resolve(bgFlag, format.Flags{Background: true}); c != "" {
			aux = append(aux, c)
		}
		text = format.ApplyIndex(text, indexFlag, aux...)
	}
	out := format.Format(text, fopts)
	if noColor {
		out = format.Strip(out)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out+"\n")
	return err
}

var levels = map[string]ansilog.Level{
	"debug": ansilog.LevelDebug,
	"info":  ansilog.LevelInfo,
	"warn":  ansilog.LevelWarn,
	"error": ansilog.LevelError,
}

// inputText returns the joined arguments, or all of standard input
// when no arguments were given, decoded from the selected charset.
func inputText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return decode(strings.Join(args, " "))
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return decode(strings.TrimRight(string(raw), "\n"))
}

// decode maps legacy single byte charsets to UTF-8. Artwork and logs
// from DOS era tooling commonly arrive as Code Page 437.
func decode(s string) (string, error) {
	var cm *charmap.Charmap
	switch strings.ToLower(charsetFlag) {
	case "", "utf8", "utf-8":
		return s, nil
	case "cp437":
		cm = charmap.CodePage437
	case "latin1", "iso-8859-1":
		cm = charmap.ISO8859_1
	default:
		return "", ErrCharset
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		b.WriteRune(cm.DecodeByte(s[i]))
	}
	return b.String(), nil
}

func setupDiagnostics(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
}
