// Package csharp renders IR test suites as MSTest-style C# source.
//
// The generated file holds one namespace, one test class and one method per
// test. Method bodies are comments describing each statement; they document
// the original test rather than executing it.
package csharp

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/autowrap/translate/internal/codewriter"
	"github.com/autowrap/translate/ir"
)

const (
	DefaultNamespace          = "Autowrap.CSharp.Tests"
	DefaultClassName          = "TestMain"
	DefaultFrameworkNamespace = "Microsoft.VisualStudio.TestTools.UnitTesting"
)

// DefaultExcludedModules are source modules whose C# counterpart is always
// available, so no using directive is emitted for them.
var DefaultExcludedModules = []string{"datetime"}

type GenerateOptions struct {
	Namespace          string
	ClassName          string
	FrameworkNamespace string
	// ExcludedModules replaces DefaultExcludedModules when non-nil.
	ExcludedModules []string
	// IndentUnit defaults to four spaces.
	IndentUnit string
}

func (opts GenerateOptions) withDefaults() GenerateOptions {
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	if opts.ClassName == "" {
		opts.ClassName = DefaultClassName
	}
	if opts.FrameworkNamespace == "" {
		opts.FrameworkNamespace = DefaultFrameworkNamespace
	}
	if opts.ExcludedModules == nil {
		opts.ExcludedModules = DefaultExcludedModules
	}
	if opts.IndentUnit == "" {
		opts.IndentUnit = codewriter.DefaultIndentUnit
	}
	return opts
}

// Render streams the C# translation of suite to w. On error, whatever was
// already written to w is incomplete and must be discarded.
//
// Example:
//
//	suite := ir.TestSuite{Tests: []ir.Test{{Name: "test_one", Statements: stmts}}}
//	if err := csharp.Render(os.Stdout, suite, csharp.GenerateOptions{}); err != nil {
//		log.Fatal(err)
//	}
func Render(w io.Writer, suite ir.TestSuite, opts GenerateOptions) error {
	opts = opts.withDefaults()
	cw := codewriter.New(w, opts.IndentUnit)
	err := newCSharpGenerator(cw, opts).generate(suite)
	if writeErr := cw.Err(); writeErr != nil {
		return fmt.Errorf("failed to write generated output: %w", writeErr)
	}
	return err
}

// Generate returns the complete C# translation of suite, or nothing at all.
func Generate(suite ir.TestSuite, opts GenerateOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, suite, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile generates the translation of suite and writes it to path. The
// file is only created once generation has succeeded.
func WriteFile(path string, suite ir.TestSuite, opts GenerateOptions) error {
	content, err := Generate(suite, opts)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("failed to write generated file: %w", err)
	}
	return nil
}
