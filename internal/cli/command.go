package cli

import (
	"context"
	"flag"
	"fmt"
)

// NoExecError is returned when a command has no execution function.
type NoExecError struct {
	Command *Command
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.Command.Name)
}

// Command represents a CLI program.
type Command struct {
	// Name is always a single word representing the command's name. It is used in help text and
	// error messages.
	Name string

	// Usage provides the command's full usage pattern.
	//
	// Example: "cumprod [flags] [FILE]"
	Usage string

	// ShortHelp is a brief description of the command's purpose. It is displayed at the top of the
	// help text.
	ShortHelp string

	// UsageFunc is an optional function that can be used to generate a custom usage string for the
	// command.
	UsageFunc func(*Command) string

	// Flags holds the command's flag definitions.
	Flags *flag.FlagSet
	// FlagsMetadata is an optional list of flag information to extend the FlagSet with additional
	// metadata, such as short aliases and required flags.
	FlagsMetadata []FlagMetadata

	// Exec defines the command's execution logic. It receives the current [State] and returns an
	// error if execution fails. This function is called when [Run] is invoked on the command.
	Exec func(ctx context.Context, s *State) error

	state   *State
	aliases map[string]string // short -> long
}

// FlagMetadata holds additional metadata for a flag.
type FlagMetadata struct {
	// Name is the flag's name. Must match the flag name in the flag set.
	Name string

	// Short is an optional one-letter alias. It shares the flag's value, so setting either name
	// sets both.
	Short string

	// Required indicates whether the flag is required.
	Required bool
}

// FlagsFunc is a helper function that creates a new [flag.FlagSet] and applies the given function
// to it. Intended for use in command definitions to simplify flag setup. Example usage:
//
//	cmd.Flags = cli.FlagsFunc(func(f *flag.FlagSet) {
//	    f.Bool("last-only", false, "only print the final value")
//	    f.String("output", "", "output file")
//	})
func FlagsFunc(fn func(*flag.FlagSet)) *flag.FlagSet {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fn(fset)
	return fset
}

// isAlias reports whether name is registered only as a short alias of another flag.
func (c *Command) isAlias(name string) bool {
	_, ok := c.aliases[name]
	return ok
}

// shortFor returns the short alias of the named flag, if it has one.
func (c *Command) shortFor(name string) string {
	for _, m := range c.FlagsMetadata {
		if m.Name == name {
			return m.Short
		}
	}
	return ""
}
