package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"plantstore/internal/domain"
)

// EventType mirrors the row-change kinds order watchers care about.
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
)

const channelOrders = "orders.changes"

// OrderEvent is one order row change, fanned out to every subscriber.
// Consumers merge-patch it onto their local list by order ID.
type OrderEvent struct {
	ID         string       `json:"id"`
	Type       EventType    `json:"type"`
	Order      domain.Order `json:"order"`
	OccurredAt time.Time    `json:"occurredAt"`
}

// Hub publishes order changes over redis pub/sub and hands out per-consumer
// event channels. Delivery is best-effort: a consumer that connects late
// starts from the next event, like any live change feed.
type Hub struct {
	rdb    *redis.Client
	logger *log.Logger
}

func NewHub(rdb *redis.Client, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Hub{rdb: rdb, logger: logger}
}

// PublishOrderChange broadcasts one order change.
func (h *Hub) PublishOrderChange(ctx context.Context, typ EventType, o domain.Order) error {
	ev := OrderEvent{
		ID:         uuid.NewString(),
		Type:       typ,
		Order:      o,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := h.rdb.Publish(ctx, channelOrders, payload).Err(); err != nil {
		h.logger.Printf("realtime: publish order=%s type=%s error=%v", o.ID, typ, err)
		return err
	}
	return nil
}

// SubscribeOrders returns a channel of order events plus a cancel func.
// The channel closes when the context ends or cancel is called.
func (h *Hub) SubscribeOrders(ctx context.Context) (<-chan OrderEvent, func()) {
	sub := h.rdb.Subscribe(ctx, channelOrders)
	out := make(chan OrderEvent, 16)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var ev OrderEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				h.logger.Printf("realtime: decode event error=%v", err)
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() { _ = sub.Close() }
	return out, cancel
}
