package csharp

import (
	"errors"
	"fmt"

	"github.com/autowrap/translate/ir"
)

var (
	// ErrUnknownVariant matches every *UnknownVariantError.
	ErrUnknownVariant = errors.New("unknown IR variant")
	// ErrMalformedNode matches every *MalformedNodeError.
	ErrMalformedNode = errors.New("malformed IR node")
)

// UnknownVariantError reports a node whose variant has no C# handler.
type UnknownVariantError struct {
	Kind ir.Kind
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("no C# handler for IR type %s", e.Kind)
}

func (*UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// MalformedNodeError reports a node whose shape does not match its variant,
// such as a missing child.
type MalformedNodeError struct {
	Kind   ir.Kind
	Field  string
	Reason string
}

func (e *MalformedNodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed %s node: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("malformed %s node: %s: %s", e.Kind, e.Field, e.Reason)
}

func (*MalformedNodeError) Is(target error) bool {
	return target == ErrMalformedNode
}
