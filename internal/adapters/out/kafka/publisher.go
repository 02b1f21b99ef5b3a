// Package kafka relays outbox messages to a Kafka topic. Messages are keyed
// by order id so that the events of one order land on one partition in
// order.
package kafka

import (
	"context"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/outbox"

	"github.com/Shopify/sarama"
)

const (
	headerEvent     = "event"
	headerMessageID = "message_id"
)

// Config holds the producer settings read from the sink section.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
	Timeout  time.Duration
}

// NewSyncProducer builds a producer that waits for all in-sync replicas.
func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return producer, nil
}

func newSaramaConfig(cfg Config) *sarama.Config {
	sc := sarama.NewConfig()
	if cfg.ClientID != "" {
		sc.ClientID = cfg.ClientID
	}
	sc.Producer.Return.Successes = true
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	sc.Producer.Retry.Max = 5
	if cfg.Timeout > 0 {
		sc.Producer.Timeout = cfg.Timeout
	}
	return sc
}

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewPublisher(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

// Publish blocks until the broker acknowledged the message.
func (p *Publisher) Publish(ctx context.Context, m *outbox.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(m.AggregateID().String()),
		Value: sarama.ByteEncoder(m.Payload()),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEvent), Value: []byte(m.Name())},
			{Key: []byte(headerMessageID), Value: []byte(m.ID().String())},
		},
		Timestamp: m.OccurredAt(),
	})
	if err != nil {
		return fmt.Errorf("send to kafka topic %s: %w", p.topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
