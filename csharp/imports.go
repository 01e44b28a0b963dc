package csharp

import (
	"fmt"
	"slices"

	"github.com/autowrap/translate/internal/strcase"
	"github.com/autowrap/translate/ir"
)

// importedModules collects the module of every top-level Import across the
// suite.
func importedModules(suite ir.TestSuite) (map[string]bool, error) {
	modules := make(map[string]bool)
	for _, test := range suite.Tests {
		for i, stmt := range test.Statements {
			imp, ok := stmt.(ir.Import)
			if !ok {
				continue
			}
			if imp.Module == "" {
				return nil, fmt.Errorf("test %s: statement %d: %w", test.Name, i,
					&MalformedNodeError{Kind: ir.KindImport, Field: "module", Reason: "missing"})
			}
			if err := singleLine(ir.KindImport, "module", imp.Module); err != nil {
				return nil, fmt.Errorf("test %s: statement %d: %w", test.Name, i, err)
			}
			modules[imp.Module] = true
		}
	}
	return modules, nil
}

// usingModules drops the excluded modules from modules.
func usingModules(modules map[string]bool, excluded []string) map[string]bool {
	out := make(map[string]bool, len(modules))
	for m := range modules {
		if !slices.Contains(excluded, m) {
			out[m] = true
		}
	}
	return out
}

// resolveImports returns the namespaces for the using directives: imported
// modules sorted by source name, minus excluded ones, capitalized, followed by
// the test framework namespace.
func resolveImports(modules map[string]bool, excluded []string, framework string) []string {
	names := make([]string, 0, len(modules))
	for m := range modules {
		if slices.Contains(excluded, m) {
			continue
		}
		names = append(names, m)
	}
	slices.Sort(names)

	seen := map[string]bool{framework: true}
	out := make([]string, 0, len(names)+1)
	for _, m := range names {
		ns := strcase.Capitalize(m)
		if seen[ns] {
			continue
		}
		seen[ns] = true
		out = append(out, ns)
	}
	return append(out, framework)
}
