package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/accountowner/pkg/domain/events"
	"github.com/amirasaad/accountowner/pkg/eventbus"
	"github.com/segmentio/kafka-go"
)

// KafkaEventBusConfig holds configuration for the Kafka event bus.
type KafkaEventBusConfig struct {
	Topic   string
	GroupID string
}

// DefaultKafkaEventBusConfig returns default configuration for KafkaEventBus.
func DefaultKafkaEventBusConfig() *KafkaEventBusConfig {
	return &KafkaEventBusConfig{
		Topic:   "accountowner.events",
		GroupID: "accountowner",
	}
}

// KafkaEventBus publishes every event to one topic, keyed by event type.
// Consumers read the topic through a consumer group and dispatch by type;
// messages whose handlers fail are forwarded to "<topic>.dlq".
type KafkaEventBus struct {
	brokers       []string
	writer        *kafka.Writer
	dialer        *kafka.Dialer
	config        *KafkaEventBusConfig
	typeFactories map[string]func() events.Event
	logger        *slog.Logger

	mu       sync.RWMutex
	handlers map[string][]eventbus.HandlerFunc
	reader   *kafka.Reader

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWithKafka creates a Kafka-backed event bus.
// brokers: comma separated list, e.g. "localhost:9092,localhost:9093".
func NewWithKafka(
	brokers string,
	types map[string]func() events.Event,
	logger *slog.Logger,
	config *KafkaEventBusConfig,
) (*KafkaEventBus, error) {
	parsedBrokers := parseBrokers(brokers)
	if len(parsedBrokers) == 0 {
		return nil, fmt.Errorf("kafka event bus: brokers are required")
	}
	if config == nil {
		config = DefaultKafkaEventBusConfig()
	}
	defaults := DefaultKafkaEventBusConfig()
	if strings.TrimSpace(config.Topic) == "" {
		config.Topic = defaults.Topic
	}
	if strings.TrimSpace(config.GroupID) == "" {
		config.GroupID = defaults.GroupID
	}
	if logger == nil {
		logger = slog.Default()
	}

	dialer := &kafka.Dialer{Timeout: 5 * time.Second}
	ctx, cancel := context.WithCancel(context.Background())
	bus := &KafkaEventBus{
		brokers: parsedBrokers,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(parsedBrokers...),
			AllowAutoTopicCreation: true,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.Hash{},
		},
		dialer:        dialer,
		config:        config,
		typeFactories: types,
		logger:        logger.With("bus", "kafka"),
		handlers:      make(map[string][]eventbus.HandlerFunc),
		ctx:           ctx,
		cancel:        cancel,
	}

	if err := bus.ping(ctx); err != nil {
		_ = bus.Close()
		return nil, err
	}
	bus.logger.Info("Kafka event bus initialized",
		"brokers", parsedBrokers,
		"topic", config.Topic,
		"group_id", config.GroupID,
	)
	return bus, nil
}

// Emit publishes the event to the events topic.
func (b *KafkaEventBus) Emit(ctx context.Context, event events.Event) error {
	envBytes, err := encodeEnvelope(event)
	if err != nil {
		return fmt.Errorf("kafka event bus: %w", err)
	}
	msg := kafka.Message{
		Topic: b.config.Topic,
		Key:   []byte(event.Type()),
		Value: envBytes,
		Time:  time.Now(),
	}
	if err := b.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka event bus: publish failed: %w", err)
	}
	return nil
}

// Register adds handler for eventType. The first registration starts the
// group reader.
func (b *KafkaEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	if b.reader != nil {
		return
	}

	b.reader = kafka.NewReader(kafka.ReaderConfig{
		Brokers:     b.brokers,
		GroupID:     b.config.GroupID,
		Topic:       b.config.Topic,
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     time.Second,
		Dialer:      b.dialer,
	})
	b.wg.Add(1)
	go func(reader *kafka.Reader) {
		defer b.wg.Done()
		b.consumeLoop(reader)
	}(b.reader)
}

// Close stops the reader and flushes the writer.
func (b *KafkaEventBus) Close() error {
	b.cancel()
	b.mu.Lock()
	if b.reader != nil {
		_ = b.reader.Close()
	}
	b.mu.Unlock()
	b.wg.Wait()
	return b.writer.Close()
}

func (b *KafkaEventBus) ping(ctx context.Context) error {
	conn, err := b.dialer.DialContext(ctx, "tcp", b.brokers[0])
	if err != nil {
		return fmt.Errorf("kafka event bus: connection failed: %w", err)
	}
	_ = conn.Close()
	return nil
}

func (b *KafkaEventBus) consumeLoop(reader *kafka.Reader) {
	for {
		msg, err := reader.FetchMessage(b.ctx)
		if err != nil {
			if b.ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			b.logger.Error("kafka consume error", "error", err, "topic", b.config.Topic)
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if err := b.processMessage(msg); err != nil {
			b.logger.Error("kafka message processing failed; will retry", "error", err, "offset", msg.Offset)
			time.Sleep(500 * time.Millisecond)
			continue
		}
		if err := reader.CommitMessages(b.ctx, msg); err != nil {
			b.logger.Error("kafka commit error", "error", err, "partition", msg.Partition, "offset", msg.Offset)
		}
	}
}

// processMessage returns an error only when the message could not be parked
// on the dead-letter topic, in which case it is not committed.
func (b *KafkaEventBus) processMessage(msg kafka.Message) error {
	evt, err := decodeEnvelope(msg.Value, b.typeFactories)
	if err != nil {
		b.logger.Error("failed to decode event", "error", err, "offset", msg.Offset)
		return b.publishToDLQ(msg)
	}

	b.mu.RLock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[evt.Type()]...)
	b.mu.RUnlock()

	failed := false
	for _, handler := range handlers {
		if err := handler(b.ctx, evt); err != nil {
			failed = true
			b.logger.Error("handler error", "error", err, "event_type", evt.Type(), "offset", msg.Offset)
		}
	}
	if failed {
		return b.publishToDLQ(msg)
	}
	return nil
}

func (b *KafkaEventBus) publishToDLQ(msg kafka.Message) error {
	dlq := kafka.Message{
		Topic: b.config.Topic + ".dlq",
		Key:   msg.Key,
		Value: msg.Value,
		Time:  time.Now(),
	}
	if err := b.writer.WriteMessages(b.ctx, dlq); err != nil {
		return fmt.Errorf("kafka event bus: dlq publish failed: %w", err)
	}
	b.logger.Warn("message sent to DLQ", "topic", dlq.Topic, "key", string(msg.Key))
	return nil
}

func parseBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)
