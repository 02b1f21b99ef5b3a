// Package redis fans outbox messages out over Redis PUBLISH, one channel per
// deployment. Subscribers that are offline miss messages; the outbox keeps
// the audit trail.
package redis

import (
	"context"
	"fmt"

	"orderflow/internal/core/domain/model/outbox"

	goredis "github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// publishClient is the part of *goredis.Client the publisher needs.
type publishClient interface {
	Publish(ctx context.Context, channel string, message any) *goredis.IntCmd
}

type Publisher struct {
	client  publishClient
	channel string
}

// NewClient connects and pings so that a wrong address fails at startup.
func NewClient(ctx context.Context, cfg Config) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

func NewPublisher(client publishClient, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

func (p *Publisher) Publish(ctx context.Context, m *outbox.Message) error {
	if err := p.client.Publish(ctx, p.channel, m.Payload()).Err(); err != nil {
		return fmt.Errorf("publish to redis channel %s: %w", p.channel, err)
	}
	return nil
}
