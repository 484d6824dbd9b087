package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// catchupLimit caps the number of stored events replayed to a subscriber
// that attaches mid-run.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when the
// first subscriber attaches to a channel.
const listenTimeout = 10 * time.Second

// subscriberBuffer is the per-subscriber send queue. A subscriber that
// cannot keep up is dropped rather than blocking the broadcast path.
const subscriberBuffer = 64

// CatchupEvent is one stored event replayed during catch-up.
type CatchupEvent struct {
	ID      int64
	Payload map[string]any
}

// CatchupQuerier reads stored events for catch-up. Implemented by
// services.EventService.
type CatchupQuerier interface {
	EventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error)
}

// Subscriber is one attached SSE stream. Messages arrive on C; the
// channel is closed when the subscriber is dropped.
type Subscriber struct {
	ID      string
	Channel string
	C       chan []byte

	closeOnce sync.Once
}

func (s *Subscriber) close() {
	s.closeOnce.Do(func() { close(s.C) })
}

// SubscriberManager fans NOTIFY payloads out to SSE subscribers. One
// instance per process; the NotifyListener dispatches into it.
type SubscriberManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[string]*Subscriber // channel → id → subscriber

	catchup CatchupQuerier

	listenerMu sync.RWMutex
	listener   *NotifyListener
}

// NewSubscriberManager creates a SubscriberManager.
func NewSubscriberManager(catchup CatchupQuerier) *SubscriberManager {
	return &SubscriberManager{
		subscribers: make(map[string]map[string]*Subscriber),
		catchup:     catchup,
	}
}

// SetListener wires the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup.
func (m *SubscriberManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// Subscribe attaches a new subscriber to a channel. The first subscriber
// of a channel establishes the PG LISTEN synchronously, so catch-up runs
// with LISTEN already active and no event is lost in the gap. Stored
// events after sinceID are replayed onto the subscriber's queue; a live
// broadcast arriving during replay may interleave ahead of older stored
// events, and clients order by db_event_id.
func (m *SubscriberManager) Subscribe(ctx context.Context, channel string, sinceID int64) (*Subscriber, error) {
	sub := &Subscriber{
		ID:      uuid.New().String(),
		Channel: channel,
		C:       make(chan []byte, subscriberBuffer),
	}

	m.mu.Lock()
	needsListen := false
	if _, ok := m.subscribers[channel]; !ok {
		m.subscribers[channel] = make(map[string]*Subscriber)
		needsListen = true
	}
	m.subscribers[channel][sub.ID] = sub
	m.mu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				m.Unsubscribe(sub)
				return nil, fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	m.replayStored(ctx, sub, sinceID)
	return sub, nil
}

// Unsubscribe detaches a subscriber; the last one on a channel stops the
// PG LISTEN. Safe to call more than once.
func (m *SubscriberManager) Unsubscribe(sub *Subscriber) {
	m.mu.Lock()
	channelEmpty := false
	if subs, ok := m.subscribers[sub.Channel]; ok {
		if _, attached := subs[sub.ID]; attached {
			delete(subs, sub.ID)
			if len(subs) == 0 {
				delete(m.subscribers, sub.Channel)
				channelEmpty = true
			}
		}
	}
	m.mu.Unlock()

	sub.close()

	if !channelEmpty {
		return
	}
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}
	// Re-check before UNLISTEN so a rapid detach/attach cycle cannot
	// drop an active LISTEN.
	go func() {
		m.mu.RLock()
		_, resubscribed := m.subscribers[sub.Channel]
		m.mu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), sub.Channel); err != nil {
			slog.Error("UNLISTEN failed", "channel", sub.Channel, "error", err)
		}
	}()
}

// Broadcast delivers a payload to every subscriber of the channel. A
// full subscriber queue drops that subscriber; a slow SSE client must
// never stall the analysis run.
func (m *SubscriberManager) Broadcast(channel string, payload []byte) {
	m.mu.RLock()
	subs := make([]*Subscriber, 0, len(m.subscribers[channel]))
	for _, sub := range m.subscribers[channel] {
		subs = append(subs, sub)
	}
	m.mu.RUnlock()

	for _, sub := range subs {
		select {
		case sub.C <- payload:
		default:
			slog.Warn("Dropping slow event subscriber",
				"subscriber", sub.ID,
				"channel", channel)
			m.Unsubscribe(sub)
		}
	}
}

// SubscriberCount returns the number of subscribers on a channel.
func (m *SubscriberManager) SubscriberCount(channel string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers[channel])
}

// replayStored queues stored events after sinceID onto a fresh
// subscriber. The subscriber is already visible to Broadcast, so a live
// event can land between replayed ones; every message carries
// db_event_id for the client to sort on, and duplicates are harmless.
// Overflow beyond catchupLimit is signalled so the client falls back to
// the REST endpoints instead of paginating.
func (m *SubscriberManager) replayStored(ctx context.Context, sub *Subscriber, sinceID int64) {
	if m.catchup == nil {
		return
	}
	stored, err := m.catchup.EventsSince(ctx, sub.Channel, sinceID, catchupLimit+1)
	if err != nil {
		slog.Error("Catch-up query failed", "channel", sub.Channel, "error", err)
		return
	}

	hasMore := len(stored) > catchupLimit
	if hasMore {
		stored = stored[:catchupLimit]
	}

	for _, evt := range stored {
		// Stored payloads carry no db_event_id; it is only injected into
		// the NOTIFY copy at publish time.
		evt.Payload["db_event_id"] = evt.ID
		raw, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		select {
		case sub.C <- raw:
		default:
			return
		}
	}

	if hasMore {
		overflow, _ := json.Marshal(map[string]any{
			"type":     "catchup.overflow",
			"channel":  sub.Channel,
			"has_more": true,
		})
		select {
		case sub.C <- overflow:
		default:
		}
	}
}
