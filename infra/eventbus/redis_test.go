package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/accountowner/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedisBus starts a Redis container and returns a bus connected to it.
func setupRedisBus(tb *testing.T) *RedisEventBus {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(tb)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.0.5",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(tb, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(tb, err)

	bus, err := NewWithRedis("redis://"+host+":"+port.Port(), "test-events", "test-group", events.Factories(), nil)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = bus.Close() })
	return bus
}

func TestRedisEventBus_EmitAndConsume(t *testing.T) {
	bus := setupRedisBus(t)

	received := make(chan events.Event, 1)
	bus.Register(events.OwnerCreated, func(_ context.Context, e events.Event) error {
		received <- e
		return nil
	})

	ownerID := uuid.New()
	require.NoError(t, bus.Emit(context.Background(), events.NewOwnerEvent(events.ActionCreated, ownerID, "Alice")))

	select {
	case e := <-received:
		got, ok := e.(*events.OwnerEvent)
		require.True(t, ok)
		assert.Equal(t, ownerID, got.OwnerID)
		assert.Equal(t, "Alice", got.Name)
	case <-time.After(10 * time.Second):
		t.Fatal("event was not consumed")
	}
}
