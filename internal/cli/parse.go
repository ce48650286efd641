package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mfridman/xflag"

	"github.com/mfridman/cumprod/internal/suggest"
)

// Parse parses args, typically os.Args[1:], against the command's flags. It returns an error if
// parsing fails. Once parsing is complete, the command is ready to be executed with [Run].
//
// Flags and positional arguments may be interleaved. Everything after a "--" delimiter is treated
// as a positional argument. If args contain -h, -help or their double-dash forms, the usage text
// is written to the flag set's output and [flag.ErrHelp] is returned.
func Parse(cmd *Command, args []string) error {
	if cmd == nil {
		return fmt.Errorf("failed to parse: command is nil")
	}
	if err := validateCommand(cmd); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	if cmd.Flags == nil {
		cmd.Flags = flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	}
	if err := registerAliases(cmd); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	cmd.state = &State{
		flags: cmd.Flags,
		name:  cmd.Name,
	}

	// First split args at the -- delimiter if present
	argsToParse := args
	var remainingArgs []string
	for i, arg := range args {
		if arg == "--" {
			argsToParse = args[:i]
			remainingArgs = args[i+1:]
			break
		}
	}

	// Capture help requests before any flag parsing errors
	for _, arg := range argsToParse {
		if arg == "-h" || arg == "--h" || arg == "-help" || arg == "--help" {
			return cmd.showHelp()
		}
	}

	// The flag package prints its own usage on error, we report errors ourselves.
	output := cmd.Flags.Output()
	cmd.Flags.SetOutput(io.Discard)
	defer cmd.Flags.SetOutput(output)

	if err := xflag.ParseToEnd(cmd.Flags, argsToParse); err != nil {
		return fmt.Errorf("command %q: %w", cmd.Name, cmd.suggestFlag(err))
	}

	if err := checkRequired(cmd); err != nil {
		return err
	}

	finalArgs := append([]string(nil), cmd.Flags.Args()...)
	finalArgs = append(finalArgs, remainingArgs...)
	cmd.state.Args = finalArgs
	return nil
}

func validateCommand(cmd *Command) error {
	if cmd.Name == "" {
		return errors.New("command has no name")
	}
	// Ensure name has no spaces
	if strings.Contains(cmd.Name, " ") {
		return fmt.Errorf("command name %q contains spaces", cmd.Name)
	}
	if cmd.Flags == nil && len(cmd.FlagsMetadata) > 0 {
		return fmt.Errorf("command %q has flag metadata but no flags", cmd.Name)
	}
	for _, m := range cmd.FlagsMetadata {
		if cmd.Flags.Lookup(m.Name) == nil {
			return fmt.Errorf("command %q: flag metadata refers to unknown flag %q", cmd.Name, m.Name)
		}
		if len(m.Short) > 1 {
			return fmt.Errorf("command %q: short alias %q for flag %q must be a single character", cmd.Name, m.Short, m.Name)
		}
	}
	return nil
}

// registerAliases adds each short alias to the flag set, bound to the long flag's value. It is
// safe to call more than once on the same command.
func registerAliases(cmd *Command) error {
	for _, m := range cmd.FlagsMetadata {
		if m.Short == "" || cmd.aliases[m.Short] == m.Name {
			continue
		}
		if cmd.Flags.Lookup(m.Short) != nil {
			return fmt.Errorf("command %q: short alias %q for flag %q conflicts with an existing flag",
				cmd.Name, m.Short, m.Name)
		}
		long := cmd.Flags.Lookup(m.Name)
		cmd.Flags.Var(long.Value, m.Short, long.Usage)
		if cmd.aliases == nil {
			cmd.aliases = make(map[string]string)
		}
		cmd.aliases[m.Short] = m.Name
	}
	return nil
}

func checkRequired(cmd *Command) error {
	set := make(map[string]bool)
	cmd.Flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	var missingFlags []string
	for _, m := range cmd.FlagsMetadata {
		if !m.Required {
			continue
		}
		if set[m.Name] || (m.Short != "" && set[m.Short]) {
			continue
		}
		missingFlags = append(missingFlags, m.Name)
	}
	if len(missingFlags) > 0 {
		return fmt.Errorf("command %q: required flag(s) %q not set", cmd.Name, strings.Join(missingFlags, ", "))
	}
	return nil
}

const undefinedFlagPrefix = "flag provided but not defined: -"

// suggestFlag extends an undefined-flag error with similarly named flags, if there are any.
func (c *Command) suggestFlag(err error) error {
	msg := err.Error()
	idx := strings.Index(msg, undefinedFlagPrefix)
	if idx < 0 {
		return err
	}
	unknown := strings.TrimPrefix(msg[idx+len(undefinedFlagPrefix):], "-")

	var known []string
	c.Flags.VisitAll(func(f *flag.Flag) {
		if !c.isAlias(f.Name) {
			known = append(known, f.Name)
		}
	})
	suggestions := suggest.FindSimilar(unknown, known, 3)
	if len(suggestions) == 0 {
		return err
	}
	for i, s := range suggestions {
		suggestions[i] = "--" + s
	}
	return fmt.Errorf("%w. Did you mean one of these?\n\t%s", err, strings.Join(suggestions, "\n\t"))
}
