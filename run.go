package jdiff

import (
	"io"
	"log/slog"
)

// Usage describes the canonical invocation
const Usage = "<input1> <input2> <output-prefix>"

// Config is the configuration of a single comparison run
type Config struct {
	FirstInput   string // first input filename
	SecondInput  string // second input filename
	OutputPrefix string // outputs are written to <OutputPrefix>_*.json

	// Logger receives progress records, nil discards them
	Logger *slog.Logger
}

// NewConfig builds a Config from positional arguments, which must be exactly
// the two inputs and the output prefix
func NewConfig(args []string) (*Config, error) {
	if len(args) != 3 {
		return nil, newArgumentsError(len(args))
	}
	return &Config{
		FirstInput:   args[0],
		SecondInput:  args[1],
		OutputPrefix: args[2],
	}, nil
}

// Run compares the two configured input files and writes the equal, diff ab &
// diff ba projections. The first error aborts the run
func Run(cfg *Config) error {
	log := cfg.Logger
	if log == nil {
		log = discardLogger()
	}

	a, err := ReadFile(cfg.FirstInput)
	if err != nil {
		return err
	}
	log.Debug("parsed input", "path", cfg.FirstInput)

	b, err := ReadFile(cfg.SecondInput)
	if err != nil {
		return err
	}
	log.Debug("parsed input", "path", cfg.SecondInput)

	st := &Stats{}
	d := Compare(a, b, OptionSetStats(st))
	log.Debug("compared documents",
		"leftNodes", st.Left,
		"rightNodes", st.Right,
		"equal", st.Equal,
		"differences", st.Differences(),
	)

	return writeProjections(cfg.OutputPrefix, d, log)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
