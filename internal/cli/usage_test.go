package cli

import (
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUsage(t *testing.T) {
	t.Parallel()

	t.Run("aliases and placeholders", func(t *testing.T) {
		t.Parallel()
		cmd := newTestCommand()
		cmd.ShortHelp = "Filter a stream of values."
		require.NoError(t, Parse(cmd, nil))

		want := strings.Join([]string{
			"Filter a stream of values.",
			"",
			"Usage:",
			"  filter [flags] [FILE...]",
			"",
			"Flags:",
			"  -n, --count int      number of items (default 0)",
			"  -l, --last-only      only the last value",
			"      --name string    a name",
			"  -o, --output FILE    write to FILE",
		}, "\n")
		assert.Equal(t, want, DefaultUsage(cmd))
	})
	t.Run("generated usage line", func(t *testing.T) {
		t.Parallel()
		cmd := &Command{
			Name:  "tool",
			Flags: FlagsFunc(func(f *flag.FlagSet) { f.Bool("quiet", false, "say less") }),
		}
		usage := DefaultUsage(cmd)
		assert.Contains(t, usage, "Usage:\n  tool [flags]\n")
		assert.Contains(t, usage, "      --quiet    say less")
	})
	t.Run("long help wraps", func(t *testing.T) {
		t.Parallel()
		cmd := &Command{
			Name:      "tool",
			ShortHelp: strings.Repeat("word ", 30),
		}
		for _, line := range strings.Split(DefaultUsage(cmd), "\n") {
			assert.LessOrEqual(t, len(line), usageWidth)
		}
	})
	t.Run("custom usage func", func(t *testing.T) {
		t.Parallel()
		cmd := &Command{
			Name:      "tool",
			UsageFunc: func(c *Command) string { return "custom " + c.Name },
		}
		assert.Equal(t, "custom tool", DefaultUsage(cmd))
	})
	t.Run("nil command", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, DefaultUsage(nil))
	})
}
