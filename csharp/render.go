package csharp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/autowrap/translate/internal/strcase"
	"github.com/autowrap/translate/ir"
)

type renderFunc func(r *renderer, n ir.Node) (string, error)

// renderers holds one entry per ir.Kind. It is filled in init because the
// handlers recurse through renderer.render, which reads this map.
var renderers map[ir.Kind]renderFunc

func init() {
	renderers = map[ir.Kind]renderFunc{
		ir.KindImport:        renderImport,
		ir.KindAssignment:    renderAssignment,
		ir.KindAssertion:     renderAssertion,
		ir.KindFunctionCall:  renderFunctionCall,
		ir.KindAttribute:     renderAttribute,
		ir.KindSequence:      renderSequence,
		ir.KindIfPyd:         renderPlaceholder,
		ir.KindIfPynih:       renderPlaceholder,
		ir.KindShouldThrow:   renderPlaceholder,
		ir.KindNumLiteral:    renderNumLiteral,
		ir.KindStringLiteral: renderStringLiteral,
		ir.KindBytesLiteral:  renderBytesLiteral,
		ir.KindInt:           renderInt,
		ir.KindStr:           renderStr,
	}
}

// renderer turns IR expressions into single-line C# text.
type renderer struct {
	// modules are the raw names of the modules that get a using directive.
	modules map[string]bool
}

func newRenderer(modules map[string]bool) *renderer {
	return &renderer{modules: modules}
}

func (r *renderer) render(n ir.Node) (string, error) {
	fn, ok := renderers[n.Kind()]
	if !ok {
		return "", &UnknownVariantError{Kind: n.Kind()}
	}
	return fn(r, n)
}

// child renders a required sub-node of parent.
func (r *renderer) child(parent ir.Kind, field string, n ir.Node) (string, error) {
	if n == nil {
		return "", &MalformedNodeError{Kind: parent, Field: field, Reason: "missing"}
	}
	return r.render(n)
}

func (r *renderer) children(parent ir.Kind, field string, nodes []ir.Node) ([]string, error) {
	out := make([]string, 0, len(nodes))
	for i, n := range nodes {
		s, err := r.child(parent, fmt.Sprintf("%s[%d]", field, i), n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// statement renders a top-level statement of a test body. An empty result
// means the statement contributes no line.
func (r *renderer) statement(n ir.Node) (string, error) {
	if n == nil {
		return "", &MalformedNodeError{Kind: "statement", Reason: "missing"}
	}
	text, err := r.render(n)
	if err != nil || text == "" {
		return "", err
	}
	return "// " + text + ";", nil
}

func as[T ir.Node](n ir.Node) (T, error) {
	v, ok := n.(T)
	if !ok {
		return v, &MalformedNodeError{
			Kind:   n.Kind(),
			Reason: fmt.Sprintf("unexpected Go type %T", n),
		}
	}
	return v, nil
}

// Imports are hoisted to using directives.
func renderImport(_ *renderer, n ir.Node) (string, error) {
	_, err := as[ir.Import](n)
	return "", err
}

func renderAssignment(r *renderer, n ir.Node) (string, error) {
	a, err := as[ir.Assignment](n)
	if err != nil {
		return "", err
	}
	lhs, err := r.child(ir.KindAssignment, "lhs", a.LHS)
	if err != nil {
		return "", err
	}
	rhs, err := r.child(ir.KindAssignment, "rhs", a.RHS)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("var %s = %s", lhs, rhs), nil
}

// MSTest takes the expected value first; the IR holds the actual value in lhs.
func renderAssertion(r *renderer, n ir.Node) (string, error) {
	a, err := as[ir.Assertion](n)
	if err != nil {
		return "", err
	}
	actual, err := r.child(ir.KindAssertion, "lhs", a.LHS)
	if err != nil {
		return "", err
	}
	expected, err := r.child(ir.KindAssertion, "rhs", a.RHS)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Assert.AreEqual(%s, %s)", expected, actual), nil
}

func renderFunctionCall(r *renderer, n ir.Node) (string, error) {
	c, err := as[ir.FunctionCall](n)
	if err != nil {
		return "", err
	}
	receiver, err := r.child(ir.KindFunctionCall, "receiver", c.Receiver)
	if err != nil {
		return "", err
	}
	args, err := r.children(ir.KindFunctionCall, "args", c.Args)
	if err != nil {
		return "", err
	}
	return receiver + "(" + strings.Join(args, ", ") + ")", nil
}

func renderAttribute(r *renderer, n ir.Node) (string, error) {
	a, err := as[ir.Attribute](n)
	if err != nil {
		return "", err
	}
	instance, err := r.child(ir.KindAttribute, "instance", a.Instance)
	if err != nil {
		return "", err
	}
	if name, ok := a.Instance.(ir.Str); ok && r.modules[string(name)] {
		instance = strcase.Capitalize(instance)
	}
	member, err := r.child(ir.KindAttribute, "attribute", a.Attribute)
	if err != nil {
		return "", err
	}
	return instance + "." + strcase.Capitalize(member), nil
}

func renderSequence(r *renderer, n ir.Node) (string, error) {
	s, err := as[ir.Sequence](n)
	if err != nil {
		return "", err
	}
	elems, err := r.children(ir.KindSequence, "elements", s.Elements)
	if err != nil {
		return "", err
	}
	return "{" + strings.Join(elems, ", ") + "}", nil
}

// IfPyd, IfPynih and ShouldThrow have no C# counterpart yet and are kept
// visible as markers.
func renderPlaceholder(_ *renderer, n ir.Node) (string, error) {
	return fmt.Sprintf("// TODO: %s %s", n.Kind(), n), nil
}

func renderNumLiteral(_ *renderer, n ir.Node) (string, error) {
	v, err := as[ir.NumLiteral](n)
	if err != nil {
		return "", err
	}
	if v.Value == "" {
		return "", &MalformedNodeError{Kind: ir.KindNumLiteral, Field: "value", Reason: "missing"}
	}
	if err := singleLine(ir.KindNumLiteral, "value", v.Value); err != nil {
		return "", err
	}
	return v.Value, nil
}

func renderStringLiteral(_ *renderer, n ir.Node) (string, error) {
	v, err := as[ir.StringLiteral](n)
	if err != nil {
		return "", err
	}
	return strconv.Quote(v.Value), nil
}

func renderBytesLiteral(_ *renderer, n ir.Node) (string, error) {
	v, err := as[ir.BytesLiteral](n)
	if err != nil {
		return "", err
	}
	return "b" + strconv.Quote(string(v.Value)), nil
}

func renderInt(_ *renderer, n ir.Node) (string, error) {
	v, err := as[ir.Int](n)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(int64(v), 10), nil
}

func renderStr(_ *renderer, n ir.Node) (string, error) {
	v, err := as[ir.Str](n)
	if err != nil {
		return "", err
	}
	if err := singleLine(ir.KindStr, "value", string(v)); err != nil {
		return "", err
	}
	return string(v), nil
}

// singleLine rejects raw text that would split a generated line and break
// the block structure around it.
func singleLine(kind ir.Kind, field, s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return &MalformedNodeError{Kind: kind, Field: field, Reason: fmt.Sprintf("line break in %q", s)}
	}
	return nil
}
