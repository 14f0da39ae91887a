package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MimeLyc/agui-go/pkg/wire"
)

func TestFunctionCall(t *testing.T) {
	var call FunctionCall
	require.NoError(t, json.Unmarshal([]byte(`{"name":"lookup","arguments":"{\"q\":1}"}`), &call))
	assert.Equal(t, "lookup", call.Name)
	assert.Equal(t, `{"q":1}`, call.Arguments)

	serialized, err := json.Marshal(call)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"lookup","arguments":"{\"q\":1}"}`, string(serialized))

	err = json.Unmarshal([]byte(`{"name":"lookup"}`), &call)
	requireViolation(t, err, wire.MissingRequiredField, "arguments")

	err = json.Unmarshal([]byte(`{"name":"lookup","arguments":"{}","extra":true}`), &call)
	requireViolation(t, err, wire.UnknownField, "extra")
}

func TestToolCallTypeTag(t *testing.T) {
	// The tag may be omitted on input.
	var call ToolCall
	require.NoError(t, json.Unmarshal([]byte(`{"id":"tc1","function":{"name":"f","arguments":"{}"}}`), &call))
	assert.Equal(t, "tc1", call.ID)

	// It is always emitted on output.
	serialized, err := json.Marshal(&call)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"tc1","type":"function","function":{"name":"f","arguments":"{}"}}`, string(serialized))

	// Any other literal is rejected.
	err = json.Unmarshal([]byte(`{"id":"tc1","type":"tool","function":{"name":"f","arguments":"{}"}}`), &call)
	requireViolation(t, err, wire.TypeMismatch, "type")
}

func TestToolCallRoundTrip(t *testing.T) {
	input := `{"id":"tc1","type":"function","function":{"name":"f","arguments":"{\"a\":2}"}}`

	var call ToolCall
	require.NoError(t, json.Unmarshal([]byte(input), &call))

	serialized, err := json.Marshal(&call)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(serialized))
}

func TestContext(t *testing.T) {
	var contextEntry Context
	require.NoError(t, json.Unmarshal([]byte(`{"description":"user location","value":"Berlin"}`), &contextEntry))
	assert.Equal(t, "user location", contextEntry.Description)
	assert.Equal(t, "Berlin", contextEntry.Value)

	err := json.Unmarshal([]byte(`{"description":"d"}`), &contextEntry)
	requireViolation(t, err, wire.MissingRequiredField, "value")

	err = json.Unmarshal([]byte(`{"description":"d","value":"v","weight":1}`), &contextEntry)
	requireViolation(t, err, wire.UnknownField, "weight")
}

func TestToolParametersOpaque(t *testing.T) {
	parameters := `{"type":"object","properties":{"q":{"type":"string"}},"required":["q"]}`
	input := `{"name":"search","description":"web search","parameters":` + parameters + `}`

	var tool Tool
	require.NoError(t, json.Unmarshal([]byte(input), &tool))

	// The schema value is carried through without interpretation.
	assert.JSONEq(t, parameters, string(tool.Parameters))

	serialized, err := json.Marshal(tool)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(serialized))

	// Any well-formed value is acceptable, including non-objects.
	require.NoError(t, json.Unmarshal([]byte(`{"name":"n","description":"d","parameters":true}`), &tool))
	assert.Equal(t, `true`, string(tool.Parameters))

	// But the key itself is required.
	err = json.Unmarshal([]byte(`{"name":"n","description":"d"}`), &tool)
	requireViolation(t, err, wire.MissingRequiredField, "parameters")
}
