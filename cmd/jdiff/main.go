package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/qri-io/jdiff"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jdiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log progress to stderr")
	format := fs.String("format", "pretty", "delta format when no output prefix is given: pretty or json")
	color := fs.Bool("color", false, "colorize pretty output")
	stats := fs.Bool("stats", false, "print comparison stats when no output prefix is given")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options] %s\n", fs.Name(), jdiff.Usage),
			writef(stderr, "       %s [options] <input1> <input2>\n\n", fs.Name()),
			writeln(stderr, "Compares two JSON documents. With an output prefix the equal, diff_ab"),
			writeln(stderr, "and diff_ba projections are written to <output-prefix>_*.json, without"),
			writeln(stderr, "one the delta is printed to stdout."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) && usageErr == nil {
			return 0
		}
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	remaining := fs.Args()
	if len(remaining) == 2 {
		return printDelta(remaining[0], remaining[1], *format, *color, *stats, stdout, stderr, logger)
	}

	cfg, err := jdiff.NewConfig(remaining)
	if err != nil {
		if writeErr := writef(stderr, "error parsing arguments: %v\n", err); writeErr != nil {
			return 1
		}
		fs.Usage()
		return 1
	}
	cfg.Logger = logger

	if err := jdiff.Run(cfg); err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// printDelta is the diagnostic form, writing the delta itself instead of
// the projections
func printDelta(path1, path2, format string, color, showStats bool, stdout, stderr io.Writer, logger *slog.Logger) int {
	if format != "pretty" && format != "json" {
		_ = writef(stderr, "error: unknown format %q\n", format)
		return 1
	}

	a, err := jdiff.ReadFile(path1)
	if err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 1
	}
	b, err := jdiff.ReadFile(path2)
	if err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 1
	}

	st := &jdiff.Stats{}
	d := jdiff.Compare(a, b, jdiff.OptionSetStats(st))
	logger.Debug("compared documents", "leftNodes", st.Left, "rightNodes", st.Right, "differences", st.Differences())

	switch format {
	case "json":
		data, err := json.Marshal(d)
		if err != nil {
			_ = writef(stderr, "error encoding delta: %v\n", err)
			return 1
		}
		if err := writeln(stdout, string(data)); err != nil {
			return 1
		}
	default:
		if err := jdiff.FormatPretty(stdout, d, color); err != nil {
			_ = writef(stderr, "error formatting delta: %v\n", err)
			return 1
		}
	}

	if showStats {
		s := jdiff.FormatPrettyStats(st)
		if color {
			s = jdiff.FormatPrettyStatsColor(st)
		}
		if err := writef(stdout, "%s", s); err != nil {
			return 1
		}
	}
	return 0
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
