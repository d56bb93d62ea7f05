package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bjaus/tpf"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, isTerminal(os.Stderr)))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// options holds the parsed command-line flags.
type options struct {
	configPath string
	extended   bool
	color      string
	quiet      bool
	list       bool
	listFormat string
	verbose    bool
}

func run(argv []string, stdout, stderr io.Writer, tty bool) int {
	var opts options
	flagSet := pflag.NewFlagSet("tpf", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.configPath, "config", "", "YAML file describing the specifiers to register")
	flagSet.BoolVar(&opts.extended, "extended", false, "register %o, %b, %r and %W")
	flagSet.StringVar(&opts.color, "color", "", "highlight diagnostics: auto, always or never")
	flagSet.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print diagnostics")
	flagSet.BoolVar(&opts.list, "list", false, "list registered specifiers and exit")
	flagSet.StringVar(&opts.listFormat, "list-format", string(listPlain), "format for --list: plain, json or yaml")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log configuration details")
	flagSet.SetInterspersed(false)
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		flagSet.Usage()
		return 2
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(opts, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	ctx, err := cfg.Context()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	logger.Debug("context ready", "specifiers", string(ctx.Specifiers()))

	if opts.list {
		f, err := parseListFormat(opts.listFormat)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		if err := writeListing(stdout, ctx, f, stderr); err != nil {
			logger.Debug("listing failed", "error", err)
			return 1
		}
		return 0
	}

	args := flagSet.Args()
	if len(args) == 0 {
		printUsage(stderr, flagSet)
		return 2
	}

	printer := &tpf.Printer{Context: ctx}
	if !opts.quiet {
		printer.Reporter = &tpf.Reporter{W: stderr, Color: useColor(cfg.Diagnostics.Color, tty)}
	}
	cursor := tpf.StringArgs(args[1:])
	n, err := printer.Vfprintf(stdout, unescape(args[0]), cursor)
	if err != nil {
		logger.Debug("format failed", "error", err)
		return 1
	}
	if left := cursor.Remaining(); left > 0 {
		logger.Warn("arguments not consumed", "count", left)
	}
	logger.Debug("format done", "bytes", n)
	return 0
}

func loadConfig(opts options, logger *slog.Logger) (tpf.Config, error) {
	cfg := tpf.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := tpf.LoadConfigFile(opts.configPath)
		if err != nil {
			return tpf.Config{}, fmt.Errorf("loading %s: %w", opts.configPath, err)
		}
		logger.Debug("config loaded", "path", opts.configPath, "bindings", len(loaded.Specifiers))
		cfg = loaded
	}
	if opts.extended {
		cfg.Extended = true
	}
	if opts.color != "" {
		mode, err := tpf.ParseColorMode(opts.color)
		if err != nil {
			return tpf.Config{}, err
		}
		cfg.Diagnostics.Color = mode
	}
	return cfg, nil
}

func useColor(mode tpf.ColorMode, tty bool) bool {
	switch mode {
	case tpf.ColorAlways:
		return true
	case tpf.ColorNever:
		return false
	default:
		return tty
	}
}

// unescape interprets backslash escapes in a format given on the command
// line. Malformed escapes are kept as written.
func unescape(s string) string {
	var b strings.Builder
	for s != "" {
		if s[0] != '\\' {
			i := strings.IndexByte(s, '\\')
			if i < 0 {
				i = len(s)
			}
			b.WriteString(s[:i])
			s = s[i:]
			continue
		}
		r, multibyte, tail, err := strconv.UnquoteChar(s, 0)
		if err != nil {
			b.WriteByte(s[0])
			s = s[1:]
			continue
		}
		if multibyte {
			b.WriteRune(r)
		} else {
			b.WriteByte(byte(r))
		}
		s = tail
	}
	return b.String()
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `Format arguments with the tpf engine.

Usage:
  tpf [flags] FORMAT [ARG...]

Examples:
  tpf '%%-10s|%%5d|%%#x\n' name 42 255
  tpf --extended '%%#o %%#b\n' 8 5

Flags:
`)
	flagSet.PrintDefaults()
}
