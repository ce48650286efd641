package cumprod

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError is returned by [Read] when a line of input is not a number.
type ParseError struct {
	// Line is the 1-based line number.
	Line int
	// Text is the line as read, without the trailing newline.
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: empty line is not a number", e.Line)
	}
	return fmt.Sprintf("line %d: invalid number %q", e.Line, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Read consumes r to the end and parses one number per line. Surrounding white space on a line is
// ignored. Blank lines and non-numeric text stop the read with a [*ParseError]. Values too large in
// magnitude for a float64 are read as ±Inf.
func Read(r io.Reader) ([]float64, error) {
	var values []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		v, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return values, nil
}

// Format renders v in the shortest general form that reads back to the same value, for example
// 120, 0.5 or 1.234567e+06. Exponent form is used when the decimal exponent is below -4 or at
// least 6.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Write writes each value on its own line using [Format].
func Write(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		bw.WriteString(Format(v))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
