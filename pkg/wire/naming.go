// Package wire implements the schema discipline shared by every record
// of the agent interaction protocol: translation between internal
// snake_case field names and their lowerCamelCase wire aliases, and
// strict decoding of JSON objects against declared field sets.
//
// Decoding either fully succeeds or fails with a *SchemaError; there is
// no best-effort mode and unknown fields are always rejected.
package wire

import (
	"strconv"
	"strings"
)

// CamelCase translates an internal snake_case field name to its
// wire-form alias: the name is split on underscores, the first word is
// kept unchanged, every following word gets its first letter
// capitalized, and the words are joined without separators.
//
// The rule is mechanical and total; it is applied identically to every
// declared field with no per-field overrides.
//
// Example:
//
//	wire.CamelCase("tool_call_id") // "toolCallId"
//	wire.CamelCase("role")         // "role"
func CamelCase(internal string) string {
	parts := strings.Split(internal, "_")
	if len(parts) == 1 {
		return internal
	}
	var b strings.Builder
	b.Grow(len(internal))
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// FieldPath joins a parent error path with a wire-form field name.
func FieldPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// IndexPath joins a parent error path with a list element index.
func IndexPath(parent string, index int) string {
	return parent + "[" + strconv.Itoa(index) + "]"
}
