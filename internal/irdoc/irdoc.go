// Package irdoc reads serialized IR test suites.
//
// A document is a mapping with a "tests" list. Each test has a "name" and a
// "statements" list. Every node is a mapping whose "kind" key holds the
// variant name and whose other keys hold its fields:
//
//	{"kind": "Assertion", "lhs": {"kind": "FunctionCall", "receiver": "f"}, "rhs": 5}
//
// Bare integers decode to ir.Int, other bare numbers to ir.NumLiteral and
// bare strings to ir.Str.
package irdoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/autowrap/translate/ir"
)

// ErrInvalidDocument matches every decoding error caused by document content.
var ErrInvalidDocument = errors.New("invalid IR document")

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported IR format %q (want json or yaml)", s)
	}
}

// FormatFromPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Unmarshal decodes a test suite from data.
func Unmarshal(data []byte, format Format) (ir.TestSuite, error) {
	var (
		tree any
		err  error
	)
	switch format {
	case FormatJSON:
		tree, err = decodeJSON(data)
	case FormatYAML:
		tree, err = decodeYAML(data)
	default:
		return ir.TestSuite{}, fmt.Errorf("unsupported IR format %q", format)
	}
	if err != nil {
		return ir.TestSuite{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	suite, err := convertSuite(tree)
	if err != nil {
		return ir.TestSuite{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return suite, nil
}

// Decode reads all of r and decodes it.
func Decode(r io.Reader, format Format) (ir.TestSuite, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ir.TestSuite{}, fmt.Errorf("failed to read IR document: %w", err)
	}
	return Unmarshal(data, format)
}

// DecodeFile decodes the file at path, using FormatFromPath when format is
// empty.
func DecodeFile(path string, format Format) (ir.TestSuite, error) {
	if format == "" {
		format = FormatFromPath(path)
	}
	// #nosec G304 - the path is the user's input file
	data, err := os.ReadFile(path)
	if err != nil {
		return ir.TestSuite{}, fmt.Errorf("failed to read IR document: %w", err)
	}
	return Unmarshal(data, format)
}
