package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/notification"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/messaging"
)

// HeartbeatInterval is the period of the keep-alive comment on idle streams
const HeartbeatInterval = 25 * time.Second

// EventsHandler streams transaction events as server-sent events
type EventsHandler struct {
	hub       notification.EventSubscriber
	logger    coreport.Logger
	heartbeat time.Duration
}

// NewEventsHandler creates a new events handler instance
func NewEventsHandler(hub notification.EventSubscriber, logger coreport.Logger) *EventsHandler {
	return &EventsHandler{hub: hub, logger: logger, heartbeat: HeartbeatInterval}
}

// Stream handles GET /api/events
func (h *EventsHandler) Stream(c *gin.Context) {
	id := userID(c)
	events, cancel := h.hub.Subscribe(id)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	h.logger.Debug("Event stream opened", map[string]any{"user_id": id})

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(ev.Kind), messaging.NewEventMessage(ev))
			return true
		case <-ticker.C:
			_, err := io.WriteString(w, ": ping\n\n")
			return err == nil
		}
	})

	h.logger.Debug("Event stream closed", map[string]any{"user_id": id})
}
