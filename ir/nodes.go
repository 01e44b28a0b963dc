// Package ir defines the language-neutral representation of unit tests that
// the backends in this module render into target-language source.
//
// The node set is closed: every value implementing Node is one of the types
// declared in this file, and each reports its variant through Kind.
package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the variant tag of a Node.
type Kind string

const (
	KindImport        Kind = "Import"
	KindAssignment    Kind = "Assignment"
	KindAssertion     Kind = "Assertion"
	KindFunctionCall  Kind = "FunctionCall"
	KindAttribute     Kind = "Attribute"
	KindSequence      Kind = "Sequence"
	KindIfPyd         Kind = "IfPyd"
	KindIfPynih       Kind = "IfPynih"
	KindShouldThrow   Kind = "ShouldThrow"
	KindNumLiteral    Kind = "NumLiteral"
	KindStringLiteral Kind = "StringLiteral"
	KindBytesLiteral  Kind = "BytesLiteral"
	KindInt           Kind = "int"
	KindStr           Kind = "str"
)

var kinds = []Kind{
	KindImport,
	KindAssignment,
	KindAssertion,
	KindFunctionCall,
	KindAttribute,
	KindSequence,
	KindIfPyd,
	KindIfPynih,
	KindShouldThrow,
	KindNumLiteral,
	KindStringLiteral,
	KindBytesLiteral,
	KindInt,
	KindStr,
}

// Kinds returns every variant of the closed node set.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Valid reports whether k names a variant of the closed node set.
func (k Kind) Valid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Node is a statement or expression of a test body.
type Node interface {
	fmt.Stringer
	Kind() Kind
	node()
}

// TestSuite is an ordered list of tests. The order is the output order.
type TestSuite struct {
	Tests []Test
}

// Test is a single named test with its statements in source order.
type Test struct {
	Name       string
	Statements []Node
}

// Import declares a module the test depends on.
type Import struct {
	Module string
}

// Assignment binds RHS to the name in LHS.
type Assignment struct {
	LHS Node
	RHS Node
}

// Assertion checks that LHS (actual) equals RHS (expected).
type Assertion struct {
	LHS Node
	RHS Node
}

// FunctionCall calls Receiver with Args.
type FunctionCall struct {
	Receiver Node
	Args     []Node
}

// Attribute is member access: Instance.Attribute.
type Attribute struct {
	Instance  Node
	Attribute Node
}

// Sequence is a collection literal.
type Sequence struct {
	Elements []Node
}

// IfPyd guards Body on the extension being built with pyd.
type IfPyd struct {
	Body []Node
}

// IfPynih guards Body on the extension being built with pynih.
type IfPynih struct {
	Body []Node
}

// ShouldThrow expects Body to raise Exception.
type ShouldThrow struct {
	Exception Node
	Body      []Node
}

// NumLiteral keeps the number as written in the source.
type NumLiteral struct {
	Value string
}

type StringLiteral struct {
	Value string
}

type BytesLiteral struct {
	Value []byte
}

// Int is a raw host integer passed through unchanged.
type Int int64

// Str is a raw host string, usually an identifier, passed through unchanged.
type Str string

func (Import) Kind() Kind        { return KindImport }
func (Assignment) Kind() Kind    { return KindAssignment }
func (Assertion) Kind() Kind     { return KindAssertion }
func (FunctionCall) Kind() Kind  { return KindFunctionCall }
func (Attribute) Kind() Kind     { return KindAttribute }
func (Sequence) Kind() Kind      { return KindSequence }
func (IfPyd) Kind() Kind         { return KindIfPyd }
func (IfPynih) Kind() Kind       { return KindIfPynih }
func (ShouldThrow) Kind() Kind   { return KindShouldThrow }
func (NumLiteral) Kind() Kind    { return KindNumLiteral }
func (StringLiteral) Kind() Kind { return KindStringLiteral }
func (BytesLiteral) Kind() Kind  { return KindBytesLiteral }
func (Int) Kind() Kind           { return KindInt }
func (Str) Kind() Kind           { return KindStr }

func (Import) node()        {}
func (Assignment) node()    {}
func (Assertion) node()     {}
func (FunctionCall) node()  {}
func (Attribute) node()     {}
func (Sequence) node()      {}
func (IfPyd) node()         {}
func (IfPynih) node()       {}
func (ShouldThrow) node()   {}
func (NumLiteral) node()    {}
func (StringLiteral) node() {}
func (BytesLiteral) node()  {}
func (Int) node()           {}
func (Str) node()           {}

func (n Import) String() string {
	return fmt.Sprintf("Import(module=%s)", strconv.Quote(n.Module))
}

func (n Assignment) String() string {
	return fmt.Sprintf("Assignment(lhs=%s, rhs=%s)", repr(n.LHS), repr(n.RHS))
}

func (n Assertion) String() string {
	return fmt.Sprintf("Assertion(lhs=%s, rhs=%s)", repr(n.LHS), repr(n.RHS))
}

func (n FunctionCall) String() string {
	return fmt.Sprintf("FunctionCall(receiver=%s, args=%s)", repr(n.Receiver), reprList(n.Args))
}

func (n Attribute) String() string {
	return fmt.Sprintf("Attribute(instance=%s, attribute=%s)", repr(n.Instance), repr(n.Attribute))
}

func (n Sequence) String() string {
	return fmt.Sprintf("Sequence(elements=%s)", reprList(n.Elements))
}

func (n IfPyd) String() string {
	return fmt.Sprintf("IfPyd(body=%s)", reprList(n.Body))
}

func (n IfPynih) String() string {
	return fmt.Sprintf("IfPynih(body=%s)", reprList(n.Body))
}

func (n ShouldThrow) String() string {
	return fmt.Sprintf("ShouldThrow(exception=%s, body=%s)", repr(n.Exception), reprList(n.Body))
}

func (n NumLiteral) String() string {
	return fmt.Sprintf("NumLiteral(value=%s)", n.Value)
}

func (n StringLiteral) String() string {
	return fmt.Sprintf("StringLiteral(value=%s)", strconv.Quote(n.Value))
}

func (n BytesLiteral) String() string {
	return fmt.Sprintf("BytesLiteral(value=b%s)", strconv.Quote(string(n.Value)))
}

func (n Int) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (n Str) String() string {
	return strconv.Quote(string(n))
}

func repr(n Node) string {
	if n == nil {
		return "None"
	}
	return n.String()
}

func reprList(nodes []Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, repr(n))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
