package cli

import (
	"cmp"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/cumprod/internal/textutil"
)

const usageWidth = 80

// DefaultUsage returns the help text for the command: the short help, the usage line and a table
// of flags. A flag with a short alias is listed once, as "-o, --output". If the command has a
// UsageFunc, its result is returned instead.
func DefaultUsage(c *Command) string {
	if c == nil {
		return ""
	}
	if c.UsageFunc != nil {
		return c.UsageFunc(c)
	}

	var b strings.Builder

	if c.ShortHelp != "" {
		for _, line := range textutil.Wrap(c.ShortHelp, usageWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	b.WriteString("Usage:\n  ")
	if c.Usage != "" {
		b.WriteString(c.Usage)
	} else {
		b.WriteString(c.Name)
		if c.Flags != nil {
			b.WriteString(" [flags]")
		}
	}
	b.WriteString("\n\n")

	var flags []flagInfo
	if c.Flags != nil {
		c.Flags.VisitAll(func(f *flag.Flag) {
			if c.isAlias(f.Name) {
				return
			}
			flags = append(flags, newFlagInfo(f, c.shortFor(f.Name)))
		})
	}
	if len(flags) > 0 {
		slices.SortFunc(flags, func(a, b flagInfo) int {
			return cmp.Compare(a.long, b.long)
		})
		maxLen := 0
		for _, f := range flags {
			maxLen = max(maxLen, len(f.name))
		}
		b.WriteString("Flags:\n")
		writeFlagSection(&b, flags, maxLen)
	}

	return strings.TrimRight(b.String(), "\n")
}

// writeFlagSection writes one flag per entry, wrapping long descriptions under the first line.
func writeFlagSection(b *strings.Builder, flags []flagInfo, maxLen int) {
	nameWidth := maxLen + 4
	wrapWidth := usageWidth - nameWidth
	indentPadding := strings.Repeat(" ", nameWidth+2)

	for _, f := range flags {
		usageText := f.usage
		if f.defval != "" && f.defval != "false" {
			usageText += fmt.Sprintf(" (default %s)", f.defval)
		}
		lines := textutil.Wrap(usageText, wrapWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}
		padding := strings.Repeat(" ", maxLen-len(f.name)+4)
		fmt.Fprintf(b, "  %s%s%s\n", f.name, padding, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indentPadding, line)
		}
	}
}

type flagInfo struct {
	long   string
	name   string
	usage  string
	defval string
}

func newFlagInfo(f *flag.Flag, short string) flagInfo {
	placeholder, usage := flag.UnquoteUsage(f)
	var name string
	if short != "" {
		name = "-" + short + ", --" + f.Name
	} else {
		name = "    --" + f.Name
	}
	if placeholder != "" {
		name += " " + placeholder
	}
	return flagInfo{
		long:   f.Name,
		name:   name,
		usage:  usage,
		defval: f.DefValue,
	}
}

func (c *Command) showHelp() error {
	w := c.Flags.Output()
	fmt.Fprintln(w, DefaultUsage(c))
	return flag.ErrHelp
}
