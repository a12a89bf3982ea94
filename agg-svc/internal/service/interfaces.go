package service

import (
	"context"

	"restrofi/agg-svc/internal/storage"
	"restrofi/events"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordOrderPlaced(ctx context.Context, event events.OrderEvent) error
	RecordStatusChange(ctx context.Context, event events.OrderEvent) error
	RecordServiceRequest(ctx context.Context, event events.OrderEvent) error
}

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	Process(ctx context.Context, event events.OrderEvent) error
}

var (
	_ StoreInterface = (*storage.Store)(nil)
	_ MessageReader  = (*kafka.Reader)(nil)
)
