// Package core defines the wire-level data model of the agent
// interaction protocol: the message union, tool calls, tool and context
// definitions, and the RunAgentInput envelope used to start or resume
// one agent run.
//
// Every record validates itself fully at construction time under the
// strict schema discipline of pkg/wire: unknown fields are rejected,
// field names are accepted in both internal snake_case form and their
// lowerCamelCase wire aliases, and serialization always emits the wire
// form. Validation failures surface as *wire.SchemaError.
//
// The package performs no I/O and holds no process state; records are
// safe to construct, read, and serialize concurrently.
package core

import (
	"encoding/json"

	"github.com/MimeLyc/agui-go/pkg/wire"
)

// FunctionCall carries the name and raw encoded arguments of a function
// invocation requested by the agent. Arguments stay an encoded string
// and are never parsed at this layer.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

func (f *FunctionCall) UnmarshalJSON(data []byte) error {
	return f.unmarshalAt(data, "")
}

func (f *FunctionCall) unmarshalAt(data []byte, path string) error {
	return wire.DecodeObject(data, path, []wire.Field{
		{Name: "name", Required: true, Set: wire.String(&f.Name)},
		{Name: "arguments", Required: true, Set: wire.String(&f.Arguments)},
	})
}

// ToolCall is a single tool invocation, modelled after OpenAI tool
// calls. Its wire type tag is fixed to the literal "function": the tag
// may be omitted on input, must equal "function" when present, and is
// always emitted on output.
//
// ID: call identifier, unique within a message's tool call list
// Function: the invoked function, owned by this call
type ToolCall struct {
	ID       string
	Function FunctionCall
}

func (t *ToolCall) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       string       `json:"id"`
		Type     string       `json:"type"`
		Function FunctionCall `json:"function"`
	}{t.ID, "function", t.Function})
}

func (t *ToolCall) UnmarshalJSON(data []byte) error {
	return t.unmarshalAt(data, "")
}

func (t *ToolCall) unmarshalAt(data []byte, path string) error {
	return wire.DecodeObject(data, path, []wire.Field{
		{Name: "id", Required: true, Set: wire.String(&t.ID)},
		{Name: "type", Set: wire.Const("function")},
		{Name: "function", Required: true, Set: func(path string, raw json.RawMessage) error {
			return t.Function.unmarshalAt(raw, path)
		}},
	})
}

// Context is one piece of supplementary grounding information handed to
// the agent alongside a run.
type Context struct {
	Description string `json:"description"`
	Value       string `json:"value"`
}

func (c *Context) UnmarshalJSON(data []byte) error {
	return c.unmarshalAt(data, "")
}

func (c *Context) unmarshalAt(data []byte, path string) error {
	return wire.DecodeObject(data, path, []wire.Field{
		{Name: "description", Required: true, Set: wire.String(&c.Description)},
		{Name: "value", Required: true, Set: wire.String(&c.Value)},
	})
}

// Tool describes one entry of the tool catalogue available to a run.
//
// Name: tool name, expected unique within a tool list (not enforced)
// Description: what the tool does
// Parameters: JSON-Schema-shaped constraint on future call arguments,
// carried opaquely and never validated against at this layer
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

func (t *Tool) UnmarshalJSON(data []byte) error {
	return t.unmarshalAt(data, "")
}

func (t *Tool) unmarshalAt(data []byte, path string) error {
	return wire.DecodeObject(data, path, []wire.Field{
		{Name: "name", Required: true, Set: wire.String(&t.Name)},
		{Name: "description", Required: true, Set: wire.String(&t.Description)},
		{Name: "parameters", Required: true, Set: wire.Raw(&t.Parameters)},
	})
}

// RunAgentInput is the envelope exchanged with a collaborator to start
// or resume one agent run. This package defines only its shape, not how
// it is transmitted.
//
// ThreadID: groups runs across time
// RunID: unique per invocation
// State: opaque run state, carried through unchanged
// Messages: conversation history; order is chronological and significant
// Tools: available tool catalogue
// Context: supplementary grounding info; order preserved
// ForwardedProps: opaque passthrough
type RunAgentInput struct {
	ThreadID       string          `json:"threadId"`
	RunID          string          `json:"runId"`
	State          json.RawMessage `json:"state"`
	Messages       []Message       `json:"messages"`
	Tools          []Tool          `json:"tools"`
	Context        []Context       `json:"context"`
	ForwardedProps json.RawMessage `json:"forwardedProps"`
}

// ParseRunAgentInput validates one wire envelope in full. A single
// invalid element anywhere in a nested sequence fails the whole
// construction; the violation path includes the element index.
func ParseRunAgentInput(data []byte) (*RunAgentInput, error) {
	input := &RunAgentInput{}
	if err := input.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return input, nil
}

func (r *RunAgentInput) UnmarshalJSON(data []byte) error {
	return wire.DecodeObject(data, "", []wire.Field{
		{Name: "thread_id", Required: true, Set: wire.String(&r.ThreadID)},
		{Name: "run_id", Required: true, Set: wire.String(&r.RunID)},
		{Name: "state", Required: true, Set: wire.Raw(&r.State)},
		{Name: "messages", Required: true, Set: func(path string, raw json.RawMessage) error {
			items, err := wire.Elements(raw, path)
			if err != nil {
				return err
			}
			messages := make([]Message, len(items))
			for i, item := range items {
				message, err := unmarshalMessageAt(item, wire.IndexPath(path, i))
				if err != nil {
					return err
				}
				messages[i] = message
			}
			r.Messages = messages
			return nil
		}},
		{Name: "tools", Required: true, Set: func(path string, raw json.RawMessage) error {
			items, err := wire.Elements(raw, path)
			if err != nil {
				return err
			}
			tools := make([]Tool, len(items))
			for i, item := range items {
				if err := tools[i].unmarshalAt(item, wire.IndexPath(path, i)); err != nil {
					return err
				}
			}
			r.Tools = tools
			return nil
		}},
		{Name: "context", Required: true, Set: func(path string, raw json.RawMessage) error {
			items, err := wire.Elements(raw, path)
			if err != nil {
				return err
			}
			contexts := make([]Context, len(items))
			for i, item := range items {
				if err := contexts[i].unmarshalAt(item, wire.IndexPath(path, i)); err != nil {
					return err
				}
			}
			r.Context = contexts
			return nil
		}},
		{Name: "forwarded_props", Required: true, Set: wire.Raw(&r.ForwardedProps)},
	})
}

// MarshalJSON emits the envelope in canonical wire form. Nil list
// fields serialize as empty lists so a programmatically built envelope
// stays structurally valid input.
func (r *RunAgentInput) MarshalJSON() ([]byte, error) {
	messages := r.Messages
	if messages == nil {
		messages = []Message{}
	}
	tools := r.Tools
	if tools == nil {
		tools = []Tool{}
	}
	contexts := r.Context
	if contexts == nil {
		contexts = []Context{}
	}
	return json.Marshal(struct {
		ThreadID       string          `json:"threadId"`
		RunID          string          `json:"runId"`
		State          json.RawMessage `json:"state"`
		Messages       []Message       `json:"messages"`
		Tools          []Tool          `json:"tools"`
		Context        []Context       `json:"context"`
		ForwardedProps json.RawMessage `json:"forwardedProps"`
	}{r.ThreadID, r.RunID, r.State, messages, tools, contexts, r.ForwardedProps})
}
