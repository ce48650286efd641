package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ParseAndRun parses the arguments and runs the command. A convenience function that combines
// [Parse] and [Run] into a single call. See [Parse] and [Run] for more details.
func ParseAndRun(
	ctx context.Context,
	cmd *Command,
	args []string,
	options *RunOptions,
) error {
	if err := Parse(cmd, args); err != nil {
		return err
	}
	return Run(ctx, cmd, options)
}

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run executes the command. It returns an error if the command has not been parsed or if the
// command has no execution function.
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
//
// If Exec returns an [*Error] with code [ErrShowHelp] or [ErrUsage], the usage text is written to
// the command's stderr before the error is returned.
func Run(ctx context.Context, cmd *Command, options *RunOptions) error {
	if cmd == nil || cmd.state == nil {
		return errors.New("command has not been parsed")
	}
	options = checkAndSetRunOptions(options)
	updateState(cmd.state, options)

	if cmd.Exec == nil {
		return &NoExecError{Command: cmd}
	}
	if err := cmd.Exec(ctx, cmd.state); err != nil {
		if cliErr := (*Error)(nil); errors.As(err, &cliErr) {
			switch cliErr.code {
			case ErrShowHelp, ErrUsage:
				fmt.Fprintln(cmd.state.Stderr, DefaultUsage(cmd))
			}
		}
		return err
	}
	return nil
}

func updateState(s *State, opt *RunOptions) {
	s.Stdin = opt.Stdin
	s.Stdout = opt.Stdout
	s.Stderr = opt.Stderr
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	var o RunOptions
	if opt != nil {
		o = *opt
	}
	opt = &o
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
