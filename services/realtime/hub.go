// File: services/realtime/hub.go
package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"lipo/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Hub bridges booking events onto per-booking Redis channels. One channel
// carries lifecycle updates, a second carries chat messages, mirroring the
// subscription surface booking UIs attach to.
type Hub struct {
	Client *redis.Client
	Logger *zap.Logger
}

// NewHub constructs a Hub over the realtime Redis client.
func NewHub(client *redis.Client, logger *zap.Logger) *Hub {
	return &Hub{Client: client, Logger: logger}
}

// BookingChannel is the lifecycle channel for one booking.
func BookingChannel(bookingID string) string {
	return fmt.Sprintf("booking-%s", bookingID)
}

// MessagesChannel is the chat channel for one booking.
func MessagesChannel(bookingID string) string {
	return fmt.Sprintf("booking-messages-%s", bookingID)
}

// PublishBookingUpdate pushes a lifecycle event to the booking's channel.
func (h *Hub) PublishBookingUpdate(ctx context.Context, event models.BookingEvent) error {
	return h.publish(ctx, BookingChannel(event.BookingID), event)
}

// PublishBookingMessage pushes a chat event to the booking's message channel.
func (h *Hub) PublishBookingMessage(ctx context.Context, event models.BookingEvent) error {
	return h.publish(ctx, MessagesChannel(event.BookingID), event)
}

func (h *Hub) publish(ctx context.Context, channel string, event models.BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}
	if err := h.Client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}

// subscriptionBuffer bounds how far a slow consumer may lag before the
// oldest events are dropped.
const subscriptionBuffer = 64

// Subscription is a live listener on one booking channel. Callers drain
// Events and must Close when done.
type Subscription struct {
	pubsub *redis.PubSub
	events chan models.BookingEvent
	cancel context.CancelFunc
}

// Events delivers decoded booking events. The channel closes after Close or
// when the underlying subscription ends.
func (s *Subscription) Events() <-chan models.BookingEvent {
	return s.events
}

// Close tears down the listener.
func (s *Subscription) Close() error {
	s.cancel()
	return s.pubsub.Close()
}

// SubscribeToBookingUpdates opens a subscription on the booking's lifecycle
// channel.
func (h *Hub) SubscribeToBookingUpdates(ctx context.Context, bookingID string) (*Subscription, error) {
	return h.subscribe(ctx, BookingChannel(bookingID))
}

// SubscribeToBookingMessages opens a subscription on the booking's chat
// channel.
func (h *Hub) SubscribeToBookingMessages(ctx context.Context, bookingID string) (*Subscription, error) {
	return h.subscribe(ctx, MessagesChannel(bookingID))
}

func (h *Hub) subscribe(ctx context.Context, channel string) (*Subscription, error) {
	pubsub := h.Client.Subscribe(ctx, channel)
	// Surface subscription failures to the caller instead of the drain loop.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to %s: %w", channel, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan models.BookingEvent, subscriptionBuffer),
		cancel: cancel,
	}
	go sub.drain(ctx, channel, h.Logger)
	return sub, nil
}

// drain decodes raw messages into the bounded event channel. When the
// consumer lags, the oldest buffered event is dropped to keep the feed live.
func (s *Subscription) drain(ctx context.Context, channel string, logger *zap.Logger) {
	defer close(s.events)
	raw := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-raw:
			if !ok {
				return
			}
			var event models.BookingEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				logger.Warn("dropping undecodable realtime event",
					zap.String("channel", channel), zap.Error(err))
				continue
			}
			select {
			case s.events <- event:
			default:
				select {
				case <-s.events:
				default:
				}
				s.events <- event
				logger.Warn("slow realtime consumer, dropped oldest event",
					zap.String("channel", channel))
			}
		}
	}
}
