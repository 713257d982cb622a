package eventbus

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/accountowner/pkg/config"
	"github.com/amirasaad/accountowner/pkg/domain/events"
	"github.com/amirasaad/accountowner/pkg/eventbus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the bus selected by cfg.Driver. The returned closer releases
// the transport's connections.
func New(cfg *config.EventBus, logger *slog.Logger) (eventbus.Bus, io.Closer, error) {
	driver := "memory"
	if cfg != nil && cfg.Driver != "" {
		driver = cfg.Driver
	}

	switch driver {
	case "memory":
		return NewWithMemory(logger), nopCloser{}, nil
	case "redis":
		bus, err := NewWithRedis(cfg.RedisURL, cfg.Stream, cfg.Group, events.Factories(), logger)
		if err != nil {
			return nil, nil, err
		}
		return bus, bus, nil
	case "kafka":
		bus, err := NewWithKafka(cfg.KafkaBrokers, events.Factories(), logger, &KafkaEventBusConfig{
			Topic:   cfg.KafkaTopic,
			GroupID: cfg.Group,
		})
		if err != nil {
			return nil, nil, err
		}
		return bus, bus, nil
	default:
		return nil, nil, fmt.Errorf("unsupported EVENT_BUS_DRIVER %q", driver)
	}
}
