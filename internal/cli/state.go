package cli

import (
	"flag"
	"fmt"
	"io"
)

// State represents the state of a command execution. Use [GetFlag] to retrieve flag values by
// name.
type State struct {
	// Args contains the remaining arguments after flag parsing.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	flags *flag.FlagSet
	name  string
}

// GetFlag retrieves a flag value by name, with type inference. A short alias resolves to the same
// value as its long name. Example usage:
//
//	lastOnly := GetFlag[bool](state, "last-only")
//	output := GetFlag[string](state, "output")
//
// If the flag isn't found, or is registered with a different type, it panics with a detailed
// error message.
//
// Why panic? Because if a flag is missing, it's likely a programming error or a missing flag
// definition, and it's better to fail LOUD and EARLY than to silently ignore the issue and cause
// unexpected behavior.
func GetFlag[T any](s *State, name string) T {
	if s == nil || s.flags == nil {
		panic(fmt.Errorf("internal error: flag %q requested before parsing", "-"+name))
	}
	f := s.flags.Lookup(name)
	if f == nil {
		panic(fmt.Errorf("internal error: flag %q not found in command %q flag set", "-"+name, s.name))
	}
	getter, ok := f.Value.(flag.Getter)
	if !ok {
		panic(fmt.Errorf("internal error: flag %q in command %q does not implement flag.Getter", "-"+name, s.name))
	}
	value := getter.Get()
	v, ok := value.(T)
	if !ok {
		panic(fmt.Errorf("internal error: type mismatch for flag %q in command %q: registered %T, requested %T",
			"-"+name, s.name, value, *new(T)))
	}
	return v
}
