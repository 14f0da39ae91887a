package wire

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

// Field declares one decodable field of a record schema by its internal
// snake_case name. Wire input may key the value by either the internal
// name or its CamelCase alias, interchangeably.
//
// Name: internal snake_case field name
// Required: whether the field must be present in the input
// Set: stores the raw value; receives the wire-form path of the field
// for error reporting
type Field struct {
	Name     string
	Required bool
	Set      func(path string, raw json.RawMessage) error
}

// DecodeObject strictly decodes a JSON object against the declared
// field list. Every key of the input must resolve, via the naming
// bridge, to exactly one declared field; unresolved keys fail with
// UnknownField and absent required fields fail with
// MissingRequiredField.
//
// Keys are visited in sorted order so violations are deterministic.
// When both the internal name and the wire alias of one field are
// present, the occurrence visited second is reported as UnknownField:
// the field slot is already taken, so the duplicate key is undeclared
// surplus, mirroring strict-schema handling of extras.
func DecodeObject(data []byte, path string, fields []Field) error {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil || IsNull(data) {
		return ErrTypeMismatch(path, "object")
	}

	byKey := make(map[string]*Field, len(fields)*2)
	for i := range fields {
		field := &fields[i]
		byKey[field.Name] = field
		byKey[CamelCase(field.Name)] = field
	}

	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	seen := make(map[string]bool, len(fields))
	for _, key := range keys {
		field, ok := byKey[key]
		if !ok || seen[field.Name] {
			return ErrUnknownField(FieldPath(path, key))
		}
		seen[field.Name] = true
		if field.Set == nil {
			continue
		}
		if err := field.Set(FieldPath(path, CamelCase(field.Name)), object[key]); err != nil {
			return err
		}
	}

	for i := range fields {
		field := &fields[i]
		if field.Required && !seen[field.Name] {
			return ErrMissingField(FieldPath(path, CamelCase(field.Name)))
		}
	}
	return nil
}

// Elements splits a JSON array value into its raw elements, preserving
// order, so containers can validate each element under an indexed path.
func Elements(raw json.RawMessage, path string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || IsNull(raw) {
		return nil, ErrTypeMismatch(path, "array")
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, nil
}

// IsNull reports whether a raw JSON value is the null literal.
func IsNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// String decodes a required string value into dst. Null is rejected.
func String(dst *string) func(path string, raw json.RawMessage) error {
	return func(path string, raw json.RawMessage) error {
		if IsNull(raw) {
			return ErrTypeMismatch(path, "string")
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return ErrTypeMismatch(path, "string")
		}
		*dst = value
		return nil
	}
}

// OptionalString decodes an optional string value into dst. Null is
// accepted and treated as absent, matching the omission policy used on
// output: canonical serialized form never carries null for optionals.
func OptionalString(dst **string) func(path string, raw json.RawMessage) error {
	return func(path string, raw json.RawMessage) error {
		if IsNull(raw) {
			*dst = nil
			return nil
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return ErrTypeMismatch(path, "string")
		}
		*dst = &value
		return nil
	}
}

// Const validates a field fixed to one literal string, e.g. a type tag.
func Const(want string) func(path string, raw json.RawMessage) error {
	return func(path string, raw json.RawMessage) error {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil || IsNull(raw) || value != want {
			return ErrTypeMismatch(path, "literal "+strconv.Quote(want))
		}
		return nil
	}
}

// Raw captures an opaque structured value verbatim. The value is
// validated only for being well-formed JSON (guaranteed by the
// surrounding object decode) and is re-emitted byte for byte.
func Raw(dst *json.RawMessage) func(path string, raw json.RawMessage) error {
	return func(path string, raw json.RawMessage) error {
		*dst = append(json.RawMessage(nil), raw...)
		return nil
	}
}
