package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mfridman/cumprod/internal/cli"
	"github.com/mfridman/cumprod/internal/config"
	"github.com/mfridman/cumprod/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
	root := newCommand(logging.NewFactory(os.Stderr), cfg.LogLevel)
	if err := cli.ParseAndRun(context.Background(), root, os.Args[1:], nil); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}
