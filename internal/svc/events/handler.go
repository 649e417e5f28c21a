// If you are AI: This file implements the WebSocket handler for the editor event feed.
// Handles GET /ws/events and manages the hub subscription of each client.

package events

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"gsteditor/internal/core/bus"
)

// DefaultBuffer is the per-client ring size when none is configured.
const DefaultBuffer = 256

// Handler streams hub events to WebSocket clients.
type Handler struct {
	hub      *bus.Hub
	buffer   uint32
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates an event feed handler. Each client gets a ring of buffer events.
func NewHandler(hub *bus.Hub, buffer int, log zerolog.Logger) *Handler {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Handler{
		hub:    hub,
		buffer: uint32(buffer),
		log:    log,
		// The nil CheckOrigin refuses browser pages from other origins.
		upgrader: websocket.Upgrader{},
	}
}

// ServeHTTP upgrades the connection and streams events until the client leaves.
// Endpoint: GET /ws/events[?types=pad-linked,command]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	filter, err := parseTypes(r.URL.Query().Get("types"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade failed, response already sent
		return
	}

	sub := h.hub.Subscribe(h.buffer)
	defer func() {
		h.hub.Unsubscribe(sub.ID())
		conn.Close()
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	f := newFeed(conn, sub, filter)
	go f.readPump(cancel)

	h.log.Debug().Uint64("subscriber", sub.ID()).Msg("event client attached")
	if err := f.run(ctx); err != nil {
		h.log.Debug().Err(err).Uint64("subscriber", sub.ID()).Msg("event client detached")
	}
}

// RegisterRoutes registers the event feed route on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/ws/events", h)
}

// parseTypes parses a comma separated event type filter. Empty means all.
func parseTypes(raw string) (map[bus.EventType]bool, error) {
	if raw == "" {
		return nil, nil
	}
	filter := make(map[bus.EventType]bool)
	for _, name := range strings.Split(raw, ",") {
		var t bus.EventType
		if err := t.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
			return nil, err
		}
		filter[t] = true
	}
	return filter, nil
}
