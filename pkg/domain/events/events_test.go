package events_test

import (
	"encoding/json"
	"testing"

	"github.com/amirasaad/accountowner/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypes(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()
	assert.Equal(t, events.OwnerCreated, events.NewOwnerEvent(events.ActionCreated, ownerID, "Alice").Type())
	assert.Equal(t, events.OwnerDeleted, events.NewOwnerEvent(events.ActionDeleted, ownerID, "Alice").Type())
	assert.Equal(t, events.AccountUpdated, events.NewAccountEvent(events.ActionUpdated, uuid.New(), ownerID, "Savings").Type())
}

func TestFactories_CoverAllTypes(t *testing.T) {
	t.Parallel()
	factories := events.Factories()
	for _, eventType := range events.All() {
		factory, ok := factories[eventType]
		require.True(t, ok, "missing factory for %s", eventType)
		assert.NotNil(t, factory())
	}
}

func TestFactories_DecodeRoundTrip(t *testing.T) {
	t.Parallel()
	original := events.NewAccountEvent(events.ActionCreated, uuid.New(), uuid.New(), "Foreign")
	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded := events.Factories()[original.Type()]()
	require.NoError(t, json.Unmarshal(data, decoded))
	got, ok := decoded.(*events.AccountEvent)
	require.True(t, ok)
	assert.Equal(t, original.AccountID, got.AccountID)
	assert.Equal(t, original.Type(), got.Type())
}
