package messaging

import (
	"context"
	"sync"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/notification"
)

// SubscriberBuffer is the number of events held for a slow subscriber before drops start
const SubscriberBuffer = 16

type subscriber struct {
	ch   chan entity.TransactionEvent
	once sync.Once
}

// Hub delivers events in-process to the subscribers of the owning user only
type Hub struct {
	logger coreport.Logger

	mutex sync.RWMutex
	subs  map[uint64]map[*subscriber]struct{}
}

var (
	_ notification.EventPublisher  = (*Hub)(nil)
	_ notification.EventSubscriber = (*Hub)(nil)
)

// NewHub creates an empty hub
func NewHub(logger coreport.Logger) *Hub {
	return &Hub{
		logger: logger,
		subs:   make(map[uint64]map[*subscriber]struct{}),
	}
}

// Subscribe registers a stream for userID. The returned function ends the
// subscription and closes the channel; calling it more than once is safe.
func (h *Hub) Subscribe(userID uint64) (<-chan entity.TransactionEvent, func()) {
	s := &subscriber{ch: make(chan entity.TransactionEvent, SubscriberBuffer)}

	h.mutex.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[*subscriber]struct{})
	}
	h.subs[userID][s] = struct{}{}
	h.mutex.Unlock()

	cancel := func() {
		s.once.Do(func() {
			h.mutex.Lock()
			delete(h.subs[userID], s)
			if len(h.subs[userID]) == 0 {
				delete(h.subs, userID)
			}
			close(s.ch)
			h.mutex.Unlock()
		})
	}
	return s.ch, cancel
}

// Publish hands ev to every subscriber of ev.UserID without blocking.
// Subscribers with a full buffer miss the event.
func (h *Hub) Publish(_ context.Context, ev entity.TransactionEvent) error {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for s := range h.subs[ev.UserID] {
		select {
		case s.ch <- ev:
		default:
			h.logger.Warn("Dropping event for slow subscriber", map[string]any{
				"user_id": ev.UserID,
				"event":   string(ev.Kind),
			})
		}
	}
	return nil
}

// Subscribers returns the number of open streams of userID
func (h *Hub) Subscribers(userID uint64) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.subs[userID])
}

// Close ends every open subscription, which lets long-lived streams return
// during server shutdown
func (h *Hub) Close() {
	h.mutex.Lock()
	var all []*subscriber
	for _, set := range h.subs {
		for s := range set {
			all = append(all, s)
		}
	}
	h.subs = make(map[uint64]map[*subscriber]struct{})
	h.mutex.Unlock()

	for _, s := range all {
		s.once.Do(func() { close(s.ch) })
	}
}
