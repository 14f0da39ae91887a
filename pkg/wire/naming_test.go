package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		name     string
		internal string
		want     string
	}{
		{name: "single word", internal: "role", want: "role"},
		{name: "two words", internal: "thread_id", want: "threadId"},
		{name: "two words run", internal: "run_id", want: "runId"},
		{name: "three words", internal: "tool_call_id", want: "toolCallId"},
		{name: "plural", internal: "tool_calls", want: "toolCalls"},
		{name: "forwarded props", internal: "forwarded_props", want: "forwardedProps"},
		{name: "first word untouched", internal: "state", want: "state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelCase(tt.internal))
		})
	}
}

func TestPathHelpers(t *testing.T) {
	assert.Equal(t, "threadId", FieldPath("", "threadId"))
	assert.Equal(t, "messages[1].role", FieldPath(IndexPath("messages", 1), "role"))
	assert.Equal(t, "toolCalls[0].function.name",
		FieldPath(FieldPath(IndexPath("toolCalls", 0), "function"), "name"))
}
