package service

import (
	"context"
	"encoding/json"
	"time"

	"restrofi/events"
	"restrofi/logger"

	"github.com/segmentio/kafka-go"
)

// Consumer folds storefront events into the daily stats. Offsets are only
// committed once the store accepted the event, so a crash replays it.
type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    *logger.Logger
	// RetryDelay is the pause after a failed read or store write.
	RetryDelay time.Duration
}

var _ ConsumerInterface = (*Consumer)(nil)

func NewConsumer(reader MessageReader, store StoreInterface, log *logger.Logger) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		Log:        log,
		RetryDelay: time.Second,
	}
}

func (c *Consumer) Start(ctx context.Context) error {
	c.Log.Info(ctx, "aggregation consumer starting")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.Log.Warn(ctx, "read message failed", err)
			if !c.pause(ctx) {
				return nil
			}
			continue
		}

		var event events.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Log.Warn(c.Log.WithField(ctx, "offset", message.Offset), "dropping undecodable message", err)
			c.commit(ctx, message)
			continue
		}

		if err := c.Process(ctx, event); err != nil {
			c.Log.Error(c.Log.WithFields(ctx, map[string]any{
				"event_type": event.Type,
				"order_id":   event.OrderID,
			}), "process event failed", err)
			if !c.pause(ctx) {
				return nil
			}
			// Not committed: the group rebalance or restart will redeliver it.
			continue
		}
		c.commit(ctx, message)
	}
}

func (c *Consumer) Process(ctx context.Context, event events.OrderEvent) error {
	switch event.Type {
	case events.TypeOrderPlaced:
		return c.Store.RecordOrderPlaced(ctx, event)
	case events.TypeOrderStatusChanged:
		return c.Store.RecordStatusChange(ctx, event)
	case events.TypeServiceRequested:
		return c.Store.RecordServiceRequest(ctx, event)
	}
	c.Log.Debug(c.Log.WithField(ctx, "event_type", event.Type), "ignoring event")
	return nil
}

func (c *Consumer) commit(ctx context.Context, message kafka.Message) {
	if err := c.Reader.CommitMessages(ctx, message); err != nil && ctx.Err() == nil {
		c.Log.Warn(ctx, "commit offset failed", err)
	}
}

func (c *Consumer) pause(ctx context.Context) bool {
	if c.RetryDelay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(c.RetryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
