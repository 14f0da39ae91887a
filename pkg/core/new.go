package core

import "github.com/google/uuid"

// Constructor helpers for programmatic message building. Each assigns a
// generated UUID identifier; callers that manage their own identifiers
// can build the variant structs directly.

// NewDeveloperMessage builds a developer message with a generated id.
func NewDeveloperMessage(content string) *DeveloperMessage {
	return &DeveloperMessage{ID: uuid.NewString(), Content: content}
}

// NewSystemMessage builds a system message with a generated id.
func NewSystemMessage(content string) *SystemMessage {
	return &SystemMessage{ID: uuid.NewString(), Content: content}
}

// NewUserMessage builds a user message with a generated id.
func NewUserMessage(content string) *UserMessage {
	return &UserMessage{ID: uuid.NewString(), Content: content}
}

// NewAssistantMessage builds an assistant message carrying text content.
func NewAssistantMessage(content string) *AssistantMessage {
	return &AssistantMessage{ID: uuid.NewString(), Content: &content}
}

// NewAssistantMessageWithTools builds an assistant message that only
// requests tool calls, with content absent.
func NewAssistantMessageWithTools(calls []ToolCall) *AssistantMessage {
	return &AssistantMessage{ID: uuid.NewString(), ToolCalls: calls}
}

// NewToolMessage builds a tool result message answering the given call.
func NewToolMessage(content, toolCallID string) *ToolMessage {
	return &ToolMessage{ID: uuid.NewString(), Content: content, ToolCallID: toolCallID}
}
