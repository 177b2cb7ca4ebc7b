package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage_WithPayload(t *testing.T) {
	msg, err := NewMessage(TypeSlideChanged, SlideChangedPayload{Index: 2, Total: 9})

	require.NoError(t, err)
	assert.Equal(t, TypeSlideChanged, msg.Type)
	assert.False(t, msg.Timestamp.IsZero())

	var payload SlideChangedPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, 2, payload.Index)
	assert.Equal(t, 9, payload.Total)
}

func TestNewMessage_NilPayloadOmitted(t *testing.T) {
	msg, err := NewMessage(TypePong, nil)

	require.NoError(t, err)
	assert.Nil(t, msg.Payload)

	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "payload")
}

func TestSession_SendMessage(t *testing.T) {
	s := NewSession("test-session", 2024, nil, nil)

	require.NoError(t, s.sendMessage(TypePong, nil))

	s.Close()

	assert.ErrorIs(t, s.sendMessage(TypePong, nil), ErrConnectionClosed)
}

func TestMessage_CommandRoundTrip(t *testing.T) {
	raw := []byte(`{"type":"goto","payload":{"index":4}}`)

	var msg Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, TypeGoTo, msg.Type)

	var payload GoToPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, 4, payload.Index)
}
