package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"webstore_reports/internal/application/ingest"
	"webstore_reports/internal/config"
)

// OrderConsumer reads order snapshot events and hands them to the ingest
// service. It runs until the context is cancelled or reading fails.
type OrderConsumer struct {
	reader  *kafkago.Reader
	handler *ingest.Service
}

func NewOrderConsumer(cfg config.KafkaConfig, handler *ingest.Service) *OrderConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.OrderTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &OrderConsumer{
		reader:  reader,
		handler: handler,
	}
}

func (c *OrderConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var event ingest.OrderEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return fmt.Errorf("decode message: %w", err)
		}

		if err := c.handler.HandleOrderEvent(ctx, event); err != nil {
			return fmt.Errorf("handle order event: %w", err)
		}
	}
}

func (c *OrderConsumer) Close() {
	_ = c.reader.Close()
}
