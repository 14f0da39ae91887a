package wire

import (
	"fmt"
	"strings"
)

// ViolationKind classifies a schema violation.
type ViolationKind string

const (
	// UnknownField reports a key that does not correspond to any
	// declared field of the target record, after alias resolution.
	UnknownField ViolationKind = "unknown_field"

	// MissingRequiredField reports a declared required field that is
	// absent from the input object.
	MissingRequiredField ViolationKind = "missing_required_field"

	// TypeMismatch reports a value whose JSON type or literal does not
	// match the field's declaration.
	TypeMismatch ViolationKind = "type_mismatch"

	// InvalidDiscriminator reports a union discriminator value outside
	// the declared variant set.
	InvalidDiscriminator ViolationKind = "invalid_discriminator"
)

// SchemaError is the single error kind raised by record construction.
// Construction is pure and deterministic, so the same invalid input
// always fails with the same violation.
//
// Kind: the violation classification
// Path: wire-form path of the offending field, e.g. "messages[1].role";
// empty when the violation concerns the root value itself
// Detail: human-readable description of the violation
type SchemaError struct {
	Kind   ViolationKind
	Path   string
	Detail string
}

func (e *SchemaError) Error() string {
	path := e.Path
	if path == "" {
		path = "<root>"
	}
	return fmt.Sprintf("schema violation (%s) at %s: %s", e.Kind, path, e.Detail)
}

// ErrUnknownField builds an UnknownField violation for the given path.
func ErrUnknownField(path string) *SchemaError {
	return &SchemaError{Kind: UnknownField, Path: path, Detail: "field is not declared by the target record"}
}

// ErrMissingField builds a MissingRequiredField violation for the given path.
func ErrMissingField(path string) *SchemaError {
	return &SchemaError{Kind: MissingRequiredField, Path: path, Detail: "required field is absent"}
}

// ErrTypeMismatch builds a TypeMismatch violation naming the expected shape.
func ErrTypeMismatch(path, want string) *SchemaError {
	return &SchemaError{Kind: TypeMismatch, Path: path, Detail: "value is not a valid " + want}
}

// ErrInvalidDiscriminator builds an InvalidDiscriminator violation
// naming the received value and the allowed literal set.
func ErrInvalidDiscriminator(path, got string, allowed []string) *SchemaError {
	return &SchemaError{
		Kind:   InvalidDiscriminator,
		Path:   path,
		Detail: fmt.Sprintf("got %s, want one of %s", got, strings.Join(allowed, ", ")),
	}
}
