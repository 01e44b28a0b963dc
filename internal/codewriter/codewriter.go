// Package codewriter accumulates indented, brace-delimited source text.
package codewriter

import (
	"io"
	"strings"
)

const DefaultIndentUnit = "    "

// Writer writes lines prefixed with the current indentation to an
// underlying io.Writer. The first write error is kept; every later call
// returns it without touching the sink.
type Writer struct {
	out   io.Writer
	unit  string
	depth int
	err   error
}

// New returns a Writer at depth 0. An empty unit selects DefaultIndentUnit.
func New(out io.Writer, unit string) *Writer {
	if unit == "" {
		unit = DefaultIndentUnit
	}
	return &Writer{out: out, unit: unit}
}

// Write appends text as is.
func (w *Writer) Write(text string) error {
	if w.err != nil {
		return w.err
	}
	if _, err := io.WriteString(w.out, text); err != nil {
		w.err = err
	}
	return w.err
}

// WriteLine writes the indentation, text and a newline. Empty lines carry no
// indentation.
func (w *Writer) WriteLine(text string) error {
	if text == "" {
		return w.Write("\n")
	}
	return w.Write(strings.Repeat(w.unit, w.depth) + text + "\n")
}

// Block writes the non-empty headers and an opening brace, runs body one
// level deeper, then restores the depth and writes the closing brace. The
// close happens however body exits, including by panic.
func (w *Writer) Block(headers []string, body func() error) (err error) {
	for _, h := range headers {
		if h == "" {
			continue
		}
		if err := w.WriteLine(h); err != nil {
			return err
		}
	}
	if err := w.WriteLine("{"); err != nil {
		return err
	}

	w.depth++
	defer func() {
		w.depth--
		if closeErr := w.WriteLine("}"); err == nil {
			err = closeErr
		}
	}()

	return body()
}

// Depth reports the current nesting level.
func (w *Writer) Depth() int {
	return w.depth
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}
