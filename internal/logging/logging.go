// Package logging builds leveled, component-tagged loggers that share one output format.
//
// A [Factory] is created once at process start and passed to whatever needs a logger. Each call to
// [Factory.Logger] returns an independent logger, so changing one logger's level never affects
// another.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// ComponentKey is the field holding the logical component name of a logger.
const ComponentKey = "component"

// DefaultLevel is the threshold used when none is configured.
const DefaultLevel = "warning"

// Factory creates loggers that write to the same destination with the same formatter.
type Factory struct {
	out       io.Writer
	formatter logrus.Formatter
}

// NewFactory returns a Factory writing to w. The host name is resolved once here and stamped on
// every line. A nil w means [os.Stderr].
func NewFactory(w io.Writer) *Factory {
	if w == nil {
		w = os.Stderr
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	return &Factory{
		out:       w,
		formatter: &Formatter{Host: host},
	}
}

// Logger returns a new logger for the named component with the given threshold. See [ParseLevel]
// for accepted level names.
func (f *Factory) Logger(name, level string) (*logrus.Entry, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(f.out)
	l.SetFormatter(f.formatter)
	l.SetLevel(lvl)
	return l.WithField(ComponentKey, name), nil
}

// ParseLevel converts a level name to a logrus level. Accepted names, case-insensitive, are debug,
// info, warning (or warn), error and critical. An empty name is [DefaultLevel].
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return logrus.WarnLevel, nil
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "warning", "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	case "critical":
		return logrus.FatalLevel, nil
	default:
		return 0, fmt.Errorf("unknown log level %q: must be one of debug, info, warning, error, critical", level)
	}
}

// Critical logs at the highest non-panicking severity. Unlike [logrus.Entry.Fatal] it does not
// exit the process.
func Critical(l *logrus.Entry, args ...any) {
	l.Log(logrus.FatalLevel, args...)
}

// Formatter writes one line per entry:
//
//	2006-01-02T15:04:05.000Z07:00 host LEVEL [component] message key=value ...
type Formatter struct {
	Host string
	// TimestampFormat defaults to millisecond precision RFC 3339.
	TimestampFormat string
}

const defaultTimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Format implements [logrus.Formatter].
func (f *Formatter) Format(e *logrus.Entry) ([]byte, error) {
	b := e.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}
	layout := f.TimestampFormat
	if layout == "" {
		layout = defaultTimestampFormat
	}
	component, _ := e.Data[ComponentKey].(string)

	b.WriteString(e.Time.Format(layout))
	b.WriteByte(' ')
	b.WriteString(f.Host)
	b.WriteByte(' ')
	b.WriteString(levelName(e.Level))
	fmt.Fprintf(b, " [%s] %s", component, e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		if k != ComponentKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelName(l logrus.Level) string {
	switch l {
	case logrus.WarnLevel:
		return "WARNING"
	case logrus.FatalLevel, logrus.PanicLevel:
		return "CRITICAL"
	default:
		return strings.ToUpper(l.String())
	}
}

var _ logrus.Formatter = (*Formatter)(nil)
