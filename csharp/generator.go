package csharp

import (
	"fmt"
	"unicode"

	"github.com/autowrap/translate/internal/codewriter"
	"github.com/autowrap/translate/ir"
)

const generatedWarning = "// this file is autogenerated, do not modify by hand"

type csharpGenerator struct {
	w        *codewriter.Writer
	opts     GenerateOptions
	renderer *renderer
	modules  map[string]bool
}

func newCSharpGenerator(w *codewriter.Writer, opts GenerateOptions) *csharpGenerator {
	return &csharpGenerator{w: w, opts: opts}
}

func (g *csharpGenerator) generate(suite ir.TestSuite) error {
	// Imports are resolved before the first line is written so a bad module
	// name fails the run without any output.
	modules, err := importedModules(suite)
	if err != nil {
		return err
	}
	g.modules = modules
	g.renderer = newRenderer(usingModules(modules, g.opts.ExcludedModules))

	if err := g.w.WriteLine(generatedWarning); err != nil {
		return err
	}

	return g.w.Block([]string{"namespace " + g.opts.Namespace}, func() error {
		if err := g.writeImports(); err != nil {
			return err
		}

		// Framework attributes are fully qualified so they cannot collide
		// with symbols used by the tests.
		header := []string{
			"[" + g.opts.FrameworkNamespace + ".TestClass]",
			"public class " + g.opts.ClassName,
		}
		return g.w.Block(header, func() error {
			for i, test := range suite.Tests {
				if err := g.writeTest(i, test); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (g *csharpGenerator) writeImports() error {
	for _, ns := range resolveImports(g.modules, g.opts.ExcludedModules, g.opts.FrameworkNamespace) {
		if err := g.w.WriteLine("using " + ns + ";"); err != nil {
			return err
		}
	}
	return g.w.WriteLine("")
}

func (g *csharpGenerator) writeTest(index int, test ir.Test) error {
	if test.Name == "" {
		return fmt.Errorf("test %d: %w", index, &MalformedNodeError{Kind: "Test", Field: "name", Reason: "missing"})
	}
	if !isIdentifier(test.Name) {
		return fmt.Errorf("test %d: %w", index, &MalformedNodeError{
			Kind:   "Test",
			Field:  "name",
			Reason: fmt.Sprintf("%q is not a C# identifier", test.Name),
		})
	}

	header := []string{
		"[" + g.opts.FrameworkNamespace + ".TestMethod]",
		"public void " + test.Name + "()",
	}
	return g.w.Block(header, func() error {
		for i, stmt := range test.Statements {
			line, err := g.renderer.statement(stmt)
			if err != nil {
				return fmt.Errorf("test %s: statement %d: %w", test.Name, i, err)
			}
			if line == "" {
				continue
			}
			if err := g.w.WriteLine(line); err != nil {
				return err
			}
		}
		return nil
	})
}

// isIdentifier reports whether s is a letter or underscore followed by
// letters, digits and underscores.
func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return s != ""
}
