package events

import (
	"encoding/json"
	"testing"

	"github.com/petstore/order-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	OrderNumber string `json:"order_number"`
}

func TestNewEvent(t *testing.T) {
	aggregateID := models.GenerateUUID()

	event := NewEvent(aggregateID, OrderReceivedEvent, testPayload{OrderNumber: "ORD-AB12CD34"})

	assert.False(t, event.ID.IsZero())
	assert.Equal(t, aggregateID, event.AggregateID)
	assert.Equal(t, OrderReceivedEvent, event.EventType)
	assert.Equal(t, "1.0", event.Version)
	assert.False(t, event.Timestamp.IsZero())
}

func TestEvent_UnmarshalPayload_InMemory(t *testing.T) {
	event := NewEvent(models.GenerateUUID(), OrderReceivedEvent, testPayload{OrderNumber: "ORD-AB12CD34"})

	var got testPayload
	require.NoError(t, event.UnmarshalPayload(&got))
	assert.Equal(t, "ORD-AB12CD34", got.OrderNumber)
}

func TestEvent_UnmarshalPayload_RawJSON(t *testing.T) {
	event := NewEvent(models.GenerateUUID(), OrderReceivedEvent, json.RawMessage(`{"order_number":"ORD-AB12CD34"}`))

	var got testPayload
	require.NoError(t, event.UnmarshalPayload(&got))
	assert.Equal(t, "ORD-AB12CD34", got.OrderNumber)
}

func TestEvent_RoundTripOverTheWire(t *testing.T) {
	event := NewEvent(models.GenerateUUID(), OrderCompletedEvent, testPayload{OrderNumber: "ORD-AB12CD34"}).
		WithMetadata("source", "order-service")

	wire, err := event.ToJSON()
	require.NoError(t, err)

	decoded, err := FromJSON(wire)
	require.NoError(t, err)
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, event.EventType, decoded.EventType)

	source, ok := decoded.Metadata.Get("source")
	require.True(t, ok)
	assert.Equal(t, "order-service", source)

	// Off the wire the payload is generic JSON; re-marshalling recovers it.
	var got testPayload
	require.NoError(t, decoded.UnmarshalPayload(&got))
	assert.Equal(t, "ORD-AB12CD34", got.OrderNumber)
}

func TestEvent_MarshalPayload(t *testing.T) {
	event := NewEvent(models.GenerateUUID(), OrderReceivedEvent, testPayload{OrderNumber: "ORD-AB12CD34"})

	payload, err := event.MarshalPayload()
	require.NoError(t, err)
	assert.JSONEq(t, `{"order_number":"ORD-AB12CD34"}`, string(payload))

	raw := NewEvent(models.GenerateUUID(), OrderReceivedEvent, json.RawMessage(`{"order_number":"X"}`))
	payload, err = raw.MarshalPayload()
	require.NoError(t, err)
	assert.Equal(t, `{"order_number":"X"}`, string(payload))
}
