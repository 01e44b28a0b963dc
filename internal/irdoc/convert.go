package irdoc

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/autowrap/translate/ir"
)

// number is a numeric scalar in its source spelling.
type number string

func convertSuite(tree any) (ir.TestSuite, error) {
	root, ok := tree.(map[string]any)
	if !ok {
		return ir.TestSuite{}, fmt.Errorf("path=<doc>: want a mapping, got %s", describe(tree))
	}

	rawTests, err := list(root, "tests", "tests", true)
	if err != nil {
		return ir.TestSuite{}, err
	}

	suite := ir.TestSuite{Tests: make([]ir.Test, 0, len(rawTests))}
	for i, raw := range rawTests {
		test, err := convertTest(fmt.Sprintf("tests[%d]", i), raw)
		if err != nil {
			return ir.TestSuite{}, err
		}
		suite.Tests = append(suite.Tests, test)
	}
	return suite, nil
}

func convertTest(path string, raw any) (ir.Test, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return ir.Test{}, fmt.Errorf("path=%s: want a mapping, got %s", path, describe(raw))
	}

	name, err := str(m, path+".name", "name")
	if err != nil {
		return ir.Test{}, err
	}
	stmts, err := nodes(m, path+".statements", "statements")
	if err != nil {
		return ir.Test{}, err
	}
	return ir.Test{Name: name, Statements: stmts}, nil
}

func convertNode(path string, raw any) (ir.Node, error) {
	switch v := raw.(type) {
	case string:
		return ir.Str(v), nil
	case number:
		if i, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return ir.Int(i), nil
		}
		return ir.NumLiteral{Value: string(v)}, nil
	case map[string]any:
		return convertTagged(path, v)
	default:
		return nil, fmt.Errorf("path=%s: want a node, got %s", path, describe(raw))
	}
}

func convertTagged(path string, m map[string]any) (ir.Node, error) {
	kind, err := str(m, path+".kind", "kind")
	if err != nil {
		return nil, err
	}
	if !ir.Kind(kind).Valid() {
		return nil, fmt.Errorf("path=%s: unknown node kind %q (known: %s)", path+".kind", kind, knownKinds())
	}
	field := func(name string) string { return path + "." + name }

	switch ir.Kind(kind) {
	case ir.KindImport:
		module, err := str(m, field("module"), "module")
		if err == nil && module == "" {
			err = fmt.Errorf("path=%s: empty module name", field("module"))
		}
		return ir.Import{Module: module}, err

	case ir.KindAssignment:
		lhs, rhs, err := pair(m, path, "lhs", "rhs")
		return ir.Assignment{LHS: lhs, RHS: rhs}, err

	case ir.KindAssertion:
		lhs, rhs, err := pair(m, path, "lhs", "rhs")
		return ir.Assertion{LHS: lhs, RHS: rhs}, err

	case ir.KindFunctionCall:
		receiver, err := child(m, field("receiver"), "receiver", true)
		if err != nil {
			return nil, err
		}
		args, err := nodes(m, field("args"), "args")
		return ir.FunctionCall{Receiver: receiver, Args: args}, err

	case ir.KindAttribute:
		instance, attribute, err := pair(m, path, "instance", "attribute")
		return ir.Attribute{Instance: instance, Attribute: attribute}, err

	case ir.KindSequence:
		elems, err := nodes(m, field("elements"), "elements")
		return ir.Sequence{Elements: elems}, err

	case ir.KindIfPyd:
		body, err := nodes(m, field("body"), "body")
		return ir.IfPyd{Body: body}, err

	case ir.KindIfPynih:
		body, err := nodes(m, field("body"), "body")
		return ir.IfPynih{Body: body}, err

	case ir.KindShouldThrow:
		exception, err := child(m, field("exception"), "exception", false)
		if err != nil {
			return nil, err
		}
		body, err := nodes(m, field("body"), "body")
		return ir.ShouldThrow{Exception: exception, Body: body}, err

	case ir.KindNumLiteral:
		switch v := m["value"].(type) {
		case number:
			return ir.NumLiteral{Value: string(v)}, nil
		case string:
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return nil, fmt.Errorf("path=%s: %q is not a number", field("value"), v)
			}
			return ir.NumLiteral{Value: v}, nil
		default:
			return nil, fmt.Errorf("path=%s: want a number, got %s", field("value"), describe(m["value"]))
		}

	case ir.KindStringLiteral:
		value, err := str(m, field("value"), "value")
		return ir.StringLiteral{Value: value}, err

	case ir.KindBytesLiteral:
		value, err := str(m, field("value"), "value")
		return ir.BytesLiteral{Value: []byte(value)}, err

	case ir.KindInt:
		v, ok := m["value"].(number)
		if !ok {
			return nil, fmt.Errorf("path=%s: want an integer, got %s", field("value"), describe(m["value"]))
		}
		i, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("path=%s: %w", field("value"), err)
		}
		return ir.Int(i), nil

	case ir.KindStr:
		value, err := str(m, field("value"), "value")
		return ir.Str(value), err

	default:
		return nil, fmt.Errorf("path=%s: no decoder for node kind %q", path+".kind", kind)
	}
}

func pair(m map[string]any, path, first, second string) (ir.Node, ir.Node, error) {
	a, err := child(m, path+"."+first, first, true)
	if err != nil {
		return nil, nil, err
	}
	b, err := child(m, path+"."+second, second, true)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func child(m map[string]any, path, key string, required bool) (ir.Node, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		if required {
			return nil, fmt.Errorf("path=%s: missing", path)
		}
		return nil, nil
	}
	return convertNode(path, raw)
}

func nodes(m map[string]any, path, key string) ([]ir.Node, error) {
	raw, err := list(m, path, key, false)
	if err != nil {
		return nil, err
	}
	out := make([]ir.Node, 0, len(raw))
	for i, item := range raw {
		n, err := convertNode(fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func list(m map[string]any, path, key string, required bool) ([]any, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		if required {
			return nil, fmt.Errorf("path=%s: missing", path)
		}
		return nil, nil
	}
	s, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("path=%s: want a list, got %s", path, describe(raw))
	}
	return s, nil
}

func str(m map[string]any, path, key string) (string, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return "", fmt.Errorf("path=%s: missing", path)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("path=%s: want a string, got %s", path, describe(raw))
	}
	return s, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "a mapping"
	case []any:
		return "a list"
	case string:
		return "a string"
	case number:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func knownKinds() string {
	names := make([]string, 0, len(ir.Kinds()))
	for _, k := range ir.Kinds() {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return fmt.Sprint(names)
}
