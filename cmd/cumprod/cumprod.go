package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mfridman/cumprod"
	"github.com/mfridman/cumprod/internal/cli"
	"github.com/mfridman/cumprod/internal/logging"
	"github.com/mfridman/cumprod/internal/version"
)

const name = "cumprod"

// stdio is the file name that selects standard input or output.
const stdio = "-"

func newCommand(logs *logging.Factory, level string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: "cumprod [flags] [FILE]",
		ShortHelp: "Compute the cumulative product of numbers read one per line from FILE, or " +
			"standard input if FILE is absent or -.",
		Flags: cli.FlagsFunc(func(f *flag.FlagSet) {
			f.String("output", stdio, "write results to `FILE`")
			f.Bool("last-only", false, "only print the final cumulative product")
			f.Bool("version", false, "print the version and exit")
		}),
		FlagsMetadata: []cli.FlagMetadata{
			{Name: "output", Short: "o"},
			{Name: "last-only", Short: "l"},
			{Name: "version", Short: "v"},
		},
		Exec: func(ctx context.Context, s *cli.State) error {
			if cli.GetFlag[bool](s, "version") {
				fmt.Fprintf(s.Stdout, "%s %s\n", name, version.String())
				return nil
			}
			log, err := logs.Logger(name, level)
			if err != nil {
				return err
			}
			return run(s, log)
		},
	}
}

func run(s *cli.State, log *logrus.Entry) error {
	if len(s.Args) > 1 {
		return cli.UsageError(fmt.Sprintf("expected at most one input file, got %d", len(s.Args)))
	}
	input := stdio
	if len(s.Args) == 1 {
		input = s.Args[0]
	}
	output := cli.GetFlag[string](s, "output")

	log.WithField("input", input).Debug("reading input")
	values, err := readInput(s.Stdin, input)
	if err != nil {
		return err
	}
	result := cumprod.Product(values)
	log.WithField("values", len(result)).Info("computed cumulative product")

	if cli.GetFlag[bool](s, "last-only") {
		last, ok := cumprod.Last(result)
		if !ok {
			log.Debug("empty input, nothing to print")
			result = nil
		} else {
			result = []float64{last}
		}
	}
	return writeOutput(s.Stdout, output, result)
}

// readInput reads every value from the named file, or from stdin for "-". The file is closed on
// return.
func readInput(stdin io.Reader, path string) ([]float64, error) {
	r := stdin
	if path != stdio {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	values, err := cumprod.Read(r)
	if err != nil {
		if path == stdio {
			path = "<stdin>"
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// writeOutput writes values to the named file, or to stdout for "-". The file is only created once
// there is something valid to write, and is always closed before returning.
func writeOutput(stdout io.Writer, path string, values []float64) (retErr error) {
	if path == stdio || path == "" {
		return cumprod.Write(stdout, values)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to close output: %w", err))
		}
	}()
	return cumprod.Write(f, values)
}
