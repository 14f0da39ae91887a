package core

import (
	"encoding/json"

	"github.com/MimeLyc/agui-go/pkg/wire"
)

// Role identifies which Message variant a wire object carries. It is
// the discriminator field of the message union and is itself
// single-word, so it has no alias.
type Role string

const (
	RoleDeveloper Role = "developer"
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
	RoleTool      Role = "tool"
)

// Roles lists every declared discriminator value, in declaration order.
var Roles = []Role{RoleDeveloper, RoleSystem, RoleAssistant, RoleUser, RoleTool}

// Message is the closed union of conversation message variants,
// discriminated by the wire field "role". Each variant owns a disjoint
// field set and reports its fixed role literal through the Role method,
// so no instance can claim one variant's discriminator while holding
// another's fields.
//
// Messages are immutable by convention: construct a new value instead
// of mutating one in place.
type Message interface {
	// Role returns the fixed discriminator literal of the variant.
	Role() Role

	// MessageID returns the caller-supplied message identifier. It is
	// expected to be unique within a run's message sequence; that
	// uniqueness is a collaborator's responsibility, not enforced here.
	MessageID() string

	message()
}

// DeveloperMessage is a message authored by the application developer,
// role "developer".
//
// ID: message identifier
// Content: required message text
// Name: optional author name
type DeveloperMessage struct {
	ID      string
	Content string
	Name    *string
}

func (m *DeveloperMessage) Role() Role        { return RoleDeveloper }
func (m *DeveloperMessage) MessageID() string { return m.ID }
func (m *DeveloperMessage) message()          {}

func (m *DeveloperMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID      string  `json:"id"`
		Role    Role    `json:"role"`
		Content string  `json:"content"`
		Name    *string `json:"name,omitempty"`
	}{m.ID, RoleDeveloper, m.Content, m.Name})
}

func (m *DeveloperMessage) UnmarshalJSON(data []byte) error {
	return m.unmarshalAt(data, "")
}

func (m *DeveloperMessage) unmarshalAt(data []byte, path string) error {
	return wire.DecodeObject(data, path, []wire.Field{
		{Name: "id", Required: true, Set: wire.String(&m.ID)},
		{Name: "role", Required: true, Set: wire.Const(string(RoleDeveloper))},
		{Name: "content", Required: true, Set: wire.String(&m.Content)},
		{Name: "name", Set: wire.OptionalString(&m.Name)},
	})
}

// SystemMessage carries system-level instructions, role "system".
type SystemMessage struct {
	ID      string
	Content string
	Name    *string
}

func (m *SystemMessage) Role() Role        { return RoleSystem }
func (m *SystemMessage) MessageID() string { return m.ID }
func (m *SystemMessage) message()          {}

func (m *SystemMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID      string  `json:"id"`
		Role    Role    `json:"role"`
		Content string  `json:"content"`
		Name    *string `json:"name,omitempty"`
	}{m.ID, RoleSystem, m.Content, m.Name})
}

func (m *SystemMessage) UnmarshalJSON(data []byte) error {
	return m.unmarshalAt(data, "")
}

func (m *SystemMessage) unmarshalAt(data []byte, path string) error {
	return wire.DecodeObject(data, path, []wire.Field{
		{Name: "id", Required: true, Set: wire.String(&m.ID)},
		{Name: "role", Required: true, Set: wire.Const(string(RoleSystem))},
		{Name: "content", Required: true, Set: wire.String(&m.Content)},
		{Name: "name", Set: wire.OptionalString(&m.Name)},
	})
}

// AssistantMessage is a message produced by the agent, role
// "assistant". It is the only variant where content may be absent:
// an assistant turn may consist solely of tool calls.
//
// ID: message identifier
// Content: optional message text
// Name: optional author name
// ToolCalls: optional tool invocations requested by this turn
type AssistantMessage struct {
	ID        string
	Content   *string
	Name      *string
	ToolCalls []ToolCall
}

func (m *AssistantMessage) Role() Role        { return RoleAssistant }
func (m *AssistantMessage) MessageID() string { return m.ID }
func (m *AssistantMessage) message()          {}

func (m *AssistantMessage) MarshalJSON() ([]byte, error) {
	// ToolCalls marshals through a pointer so a decoded empty list
	// round-trips as [] while an absent one stays omitted.
	var calls *[]ToolCall
	if m.ToolCalls != nil {
		calls = &m.ToolCalls
	}
	return json.Marshal(struct {
		ID        string      `json:"id"`
		Role      Role        `json:"role"`
		Content   *string     `json:"content,omitempty"`
		Name      *string     `json:"name,omitempty"`
		ToolCalls *[]ToolCall `json:"toolCalls,omitempty"`
	}{m.ID, RoleAssistant, m.Content, m.Name, calls})
}

func (m *AssistantMessage) UnmarshalJSON(data []byte) error {
	return m.unmarshalAt(data, "")
}

func (m *AssistantMessage) unmarshalAt(data []byte, path string) error {
	return wire.DecodeObject(data, path, []wire.Field{
		{Name: "id", Required: true, Set: wire.String(&m.ID)},
		{Name: "role", Required: true, Set: wire.Const(string(RoleAssistant))},
		{Name: "content", Set: wire.OptionalString(&m.Content)},
		{Name: "name", Set: wire.OptionalString(&m.Name)},
		{Name: "tool_calls", Set: func(path string, raw json.RawMessage) error {
			if wire.IsNull(raw) {
				m.ToolCalls = nil
				return nil
			}
			items, err := wire.Elements(raw, path)
			if err != nil {
				return err
			}
			calls := make([]ToolCall, len(items))
			for i, item := range items {
				if err := calls[i].unmarshalAt(item, wire.IndexPath(path, i)); err != nil {
					return err
				}
			}
			m.ToolCalls = calls
			return nil
		}},
	})
}

// UserMessage is a message authored by the end user, role "user".
type UserMessage struct {
	ID      string
	Content string
	Name    *string
}

func (m *UserMessage) Role() Role        { return RoleUser }
func (m *UserMessage) MessageID() string { return m.ID }
func (m *UserMessage) message()          {}

func (m *UserMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID      string  `json:"id"`
		Role    Role    `json:"role"`
		Content string  `json:"content"`
		Name    *string `json:"name,omitempty"`
	}{m.ID, RoleUser, m.Content, m.Name})
}

func (m *UserMessage) UnmarshalJSON(data []byte) error {
	return m.unmarshalAt(data, "")
}

func (m *UserMessage) unmarshalAt(data []byte, path string) error {
	return wire.DecodeObject(data, path, []wire.Field{
		{Name: "id", Required: true, Set: wire.String(&m.ID)},
		{Name: "role", Required: true, Set: wire.Const(string(RoleUser))},
		{Name: "content", Required: true, Set: wire.String(&m.Content)},
		{Name: "name", Set: wire.OptionalString(&m.Name)},
	})
}

// ToolMessage reports the result of a tool call back to the agent,
// role "tool". Unlike the other variants it has no name field.
//
// ID: message identifier
// Content: required tool output
// ToolCallID: identifier of the tool call this message answers
// Error: optional tool execution error
type ToolMessage struct {
	ID         string
	Content    string
	ToolCallID string
	Error      *string
}

func (m *ToolMessage) Role() Role        { return RoleTool }
func (m *ToolMessage) MessageID() string { return m.ID }
func (m *ToolMessage) message()          {}

func (m *ToolMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string  `json:"id"`
		Role       Role    `json:"role"`
		Content    string  `json:"content"`
		ToolCallID string  `json:"toolCallId"`
		Error      *string `json:"error,omitempty"`
	}{m.ID, RoleTool, m.Content, m.ToolCallID, m.Error})
}

func (m *ToolMessage) UnmarshalJSON(data []byte) error {
	return m.unmarshalAt(data, "")
}

func (m *ToolMessage) unmarshalAt(data []byte, path string) error {
	return wire.DecodeObject(data, path, []wire.Field{
		{Name: "id", Required: true, Set: wire.String(&m.ID)},
		{Name: "role", Required: true, Set: wire.Const(string(RoleTool))},
		{Name: "content", Required: true, Set: wire.String(&m.Content)},
		{Name: "tool_call_id", Required: true, Set: wire.String(&m.ToolCallID)},
		{Name: "error", Set: wire.OptionalString(&m.Error)},
	})
}

// UnmarshalMessage decodes one wire message object, selecting the
// variant named by its "role" discriminator and validating the rest of
// the object against that variant's field set only. Fields legal in a
// sibling variant are unknown keys here and are rejected.
func UnmarshalMessage(data []byte) (Message, error) {
	return unmarshalMessageAt(data, "")
}

func unmarshalMessageAt(data []byte, path string) (Message, error) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil || wire.IsNull(data) {
		return nil, wire.ErrTypeMismatch(path, "object")
	}

	rolePath := wire.FieldPath(path, "role")
	raw, ok := object["role"]
	if !ok {
		return nil, wire.ErrMissingField(rolePath)
	}
	var role string
	if err := json.Unmarshal(raw, &role); err != nil || wire.IsNull(raw) {
		return nil, wire.ErrInvalidDiscriminator(rolePath, string(raw), roleNames())
	}

	var message Message
	var err error
	switch Role(role) {
	case RoleDeveloper:
		variant := &DeveloperMessage{}
		message, err = variant, variant.unmarshalAt(data, path)
	case RoleSystem:
		variant := &SystemMessage{}
		message, err = variant, variant.unmarshalAt(data, path)
	case RoleAssistant:
		variant := &AssistantMessage{}
		message, err = variant, variant.unmarshalAt(data, path)
	case RoleUser:
		variant := &UserMessage{}
		message, err = variant, variant.unmarshalAt(data, path)
	case RoleTool:
		variant := &ToolMessage{}
		message, err = variant, variant.unmarshalAt(data, path)
	default:
		return nil, wire.ErrInvalidDiscriminator(rolePath, string(raw), roleNames())
	}
	if err != nil {
		return nil, err
	}
	return message, nil
}

func roleNames() []string {
	names := make([]string, len(Roles))
	for i, role := range Roles {
		names[i] = string(role)
	}
	return names
}
