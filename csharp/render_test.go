package csharp

import (
	"errors"
	"strings"
	"testing"

	"github.com/autowrap/translate/ir"
)

// minimalNodes holds the smallest valid instance of every variant.
var minimalNodes = map[ir.Kind]ir.Node{
	ir.KindImport:        ir.Import{Module: "math"},
	ir.KindAssignment:    ir.Assignment{LHS: ir.Str("x"), RHS: ir.Int(1)},
	ir.KindAssertion:     ir.Assertion{LHS: ir.Str("x"), RHS: ir.Int(1)},
	ir.KindFunctionCall:  ir.FunctionCall{Receiver: ir.Str("f")},
	ir.KindAttribute:     ir.Attribute{Instance: ir.Str("o"), Attribute: ir.Str("m")},
	ir.KindSequence:      ir.Sequence{},
	ir.KindIfPyd:         ir.IfPyd{},
	ir.KindIfPynih:       ir.IfPynih{},
	ir.KindShouldThrow:   ir.ShouldThrow{Exception: ir.Str("Exception")},
	ir.KindNumLiteral:    ir.NumLiteral{Value: "0"},
	ir.KindStringLiteral: ir.StringLiteral{},
	ir.KindBytesLiteral:  ir.BytesLiteral{},
	ir.KindInt:           ir.Int(0),
	ir.KindStr:           ir.Str("s"),
}

// lambda embeds a real node to satisfy ir.Node but reports a variant the
// renderer does not know.
type lambda struct{ ir.Str }

func (lambda) Kind() ir.Kind { return "Lambda" }

// fakeAssertion claims to be an Assertion without being one.
type fakeAssertion struct{ ir.Str }

func (fakeAssertion) Kind() ir.Kind { return ir.KindAssertion }

func TestRenderersCoverEveryKind(t *testing.T) {
	t.Parallel()

	for _, k := range ir.Kinds() {
		if _, ok := renderers[k]; !ok {
			t.Errorf("no renderer registered for %s", k)
		}
	}
	if len(renderers) != len(ir.Kinds()) {
		t.Errorf("renderers has %d entries, want %d", len(renderers), len(ir.Kinds()))
	}
}

func TestRenderMinimalNodes(t *testing.T) {
	t.Parallel()

	r := newRenderer(nil)
	for _, k := range ir.Kinds() {
		n, ok := minimalNodes[k]
		if !ok {
			t.Errorf("no minimal node for %s", k)
			continue
		}
		if n.Kind() != k {
			t.Errorf("minimal node for %s reports %s", k, n.Kind())
		}
		if _, err := r.render(n); err != nil {
			t.Errorf("render(%s) error = %v", k, err)
		}
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modules map[string]bool
		node    ir.Node
		want    string
	}{
		{
			name: "assertion puts expected first",
			node: ir.Assertion{
				LHS: ir.FunctionCall{Receiver: ir.Str("actual_call")},
				RHS: ir.Int(5),
			},
			want: "Assert.AreEqual(5, actual_call())",
		},
		{
			name: "assignment",
			node: ir.Assignment{LHS: ir.Str("x"), RHS: ir.NumLiteral{Value: "1.5"}},
			want: "var x = 1.5",
		},
		{
			name: "call with args",
			node: ir.FunctionCall{
				Receiver: ir.Str("f"),
				Args:     []ir.Node{ir.Int(1), ir.StringLiteral{Value: "a"}, ir.Str("y")},
			},
			want: `f(1, "a", y)`,
		},
		{
			name: "attribute capitalizes member",
			node: ir.Attribute{Instance: ir.Str("obj"), Attribute: ir.Str("getValue")},
			want: "obj.Getvalue",
		},
		{
			name:    "attribute on imported module",
			modules: map[string]bool{"math": true},
			node: ir.FunctionCall{
				Receiver: ir.Attribute{Instance: ir.Str("math"), Attribute: ir.Str("add")},
				Args:     []ir.Node{ir.Int(2), ir.Int(3)},
			},
			want: "Math.Add(2, 3)",
		},
		{
			name: "nested attribute",
			node: ir.Attribute{
				Instance:  ir.Attribute{Instance: ir.Str("a"), Attribute: ir.Str("b")},
				Attribute: ir.Str("c"),
			},
			want: "a.B.C",
		},
		{
			name: "sequence",
			node: ir.Sequence{Elements: []ir.Node{ir.Int(1), ir.Int(2)}},
			want: "{1, 2}",
		},
		{
			name: "empty sequence",
			node: ir.Sequence{},
			want: "{}",
		},
		{
			name: "string literal is escaped",
			node: ir.StringLiteral{Value: "say \"hi\"\n"},
			want: `"say \"hi\"\n"`,
		},
		{
			name: "bytes literal",
			node: ir.BytesLiteral{Value: []byte("ab\x00")},
			want: `b"ab\x00"`,
		},
		{
			name: "negative int",
			node: ir.Int(-7),
			want: "-7",
		},
		{
			name: "import renders nothing",
			node: ir.Import{Module: "math"},
			want: "",
		},
		{
			name: "if pyd placeholder",
			node: ir.IfPyd{Body: []ir.Node{ir.Int(1)}},
			want: "// TODO: IfPyd IfPyd(body=[1])",
		},
		{
			name: "if pynih placeholder",
			node: ir.IfPynih{},
			want: "// TODO: IfPynih IfPynih(body=[])",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newRenderer(tt.modules).render(tt.node)
			if err != nil {
				t.Fatalf("render() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderShouldThrowIsVisible(t *testing.T) {
	t.Parallel()

	nodes := []ir.Node{
		ir.ShouldThrow{},
		ir.ShouldThrow{Exception: ir.Str("ValueError"), Body: []ir.Node{ir.FunctionCall{Receiver: ir.Str("f")}}},
	}
	r := newRenderer(nil)
	for _, n := range nodes {
		got, err := r.statement(n)
		if err != nil {
			t.Fatalf("statement(%s) error = %v", n, err)
		}
		if !strings.Contains(got, "ShouldThrow") {
			t.Fatalf("statement(%s) = %q, want a ShouldThrow marker", n, got)
		}
	}
}

func TestStatement(t *testing.T) {
	t.Parallel()

	r := newRenderer(nil)

	got, err := r.statement(ir.Assignment{LHS: ir.Str("x"), RHS: ir.Int(1)})
	if err != nil {
		t.Fatalf("statement() error = %v", err)
	}
	if want := "// var x = 1;"; got != want {
		t.Fatalf("statement() = %q, want %q", got, want)
	}

	got, err = r.statement(ir.Import{Module: "os"})
	if err != nil {
		t.Fatalf("statement() error = %v", err)
	}
	if got != "" {
		t.Fatalf("statement(Import) = %q, want empty", got)
	}
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		node     ir.Node
		sentinel error
		contains string
	}{
		{
			name:     "unknown variant",
			node:     lambda{},
			sentinel: ErrUnknownVariant,
			contains: "Lambda",
		},
		{
			name:     "unknown variant nested in call",
			node:     ir.FunctionCall{Receiver: ir.Str("f"), Args: []ir.Node{lambda{}}},
			sentinel: ErrUnknownVariant,
			contains: "Lambda",
		},
		{
			name:     "missing assertion rhs",
			node:     ir.Assertion{LHS: ir.Int(1)},
			sentinel: ErrMalformedNode,
			contains: "rhs",
		},
		{
			name:     "missing call arg",
			node:     ir.FunctionCall{Receiver: ir.Str("f"), Args: []ir.Node{ir.Int(1), nil}},
			sentinel: ErrMalformedNode,
			contains: "args[1]",
		},
		{
			name:     "missing attribute instance",
			node:     ir.Attribute{Attribute: ir.Str("x")},
			sentinel: ErrMalformedNode,
			contains: "instance",
		},
		{
			name:     "empty number",
			node:     ir.NumLiteral{},
			sentinel: ErrMalformedNode,
			contains: "value",
		},
		{
			name:     "line break in raw name",
			node:     ir.Assignment{LHS: ir.Str("x\n}"), RHS: ir.Int(1)},
			sentinel: ErrMalformedNode,
			contains: "malformed str node: value: line break",
		},
		{
			name:     "carriage return in number",
			node:     ir.NumLiteral{Value: "1\r2"},
			sentinel: ErrMalformedNode,
			contains: "line break",
		},
		{
			name:     "tag does not match type",
			node:     fakeAssertion{},
			sentinel: ErrMalformedNode,
			contains: "unexpected Go type",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newRenderer(nil).render(tt.node)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("render() error = %v, want %v", err, tt.sentinel)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Fatalf("render() error = %q, want it to contain %q", err, tt.contains)
			}
		})
	}
}

func TestUnknownVariantErrorAs(t *testing.T) {
	t.Parallel()

	_, err := newRenderer(nil).render(lambda{})
	var uv *UnknownVariantError
	if !errors.As(err, &uv) {
		t.Fatalf("render() error = %T, want *UnknownVariantError", err)
	}
	if uv.Kind != "Lambda" {
		t.Fatalf("Kind = %q, want %q", uv.Kind, "Lambda")
	}
}
