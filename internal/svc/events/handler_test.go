package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"gsteditor/internal/core/bus"
)

func dial(t *testing.T, hub *bus.Hub, query string) *websocket.Conn {
	t.Helper()
	mux := http.NewServeMux()
	NewHandler(hub, 16, zerolog.Nop()).RegisterRoutes(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/events" + query
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("Expected status 101, got %d", resp.StatusCode)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Expected the client to subscribe")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) bus.Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev bus.Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	return ev
}

func TestEventFeed(t *testing.T) {
	hub := bus.NewHub()
	conn := dial(t, hub, "")

	hub.Publish(&bus.Event{Type: bus.EventPadLinked, Pad: "a:src", Peer: "b:sink"})
	hub.Publish(&bus.Event{Type: bus.EventCommand, Command: "CONNECT a:src TO b:sink"})

	first := readEvent(t, conn)
	if first.Type != bus.EventPadLinked || first.Peer != "b:sink" || first.Seq != 1 {
		t.Errorf("Expected pad-linked seq 1, got %+v", first)
	}
	second := readEvent(t, conn)
	if second.Type != bus.EventCommand || second.Seq != 2 {
		t.Errorf("Expected command seq 2, got %+v", second)
	}
}

func TestEventFeedFilter(t *testing.T) {
	hub := bus.NewHub()
	conn := dial(t, hub, "?types=command-failed")

	hub.Publish(&bus.Event{Type: bus.EventCommand})
	hub.Publish(&bus.Event{Type: bus.EventCommandFailed, Detail: "boom"})

	ev := readEvent(t, conn)
	if ev.Type != bus.EventCommandFailed || ev.Detail != "boom" {
		t.Errorf("Expected only command-failed, got %+v", ev)
	}
}

func TestEventFeedUnsubscribesOnClose(t *testing.T) {
	hub := bus.NewHub()
	conn := dial(t, hub, "")
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("Expected subscriber removed after close")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestEventFeedBadRequests(t *testing.T) {
	handler := NewHandler(bus.NewHub(), 0, zerolog.Nop())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/ws/events", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/ws/events?types=nope", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestEventFeedRejectsCrossOrigin(t *testing.T) {
	hub := bus.NewHub()
	mux := http.NewServeMux()
	NewHandler(hub, 16, zerolog.Nop()).RegisterRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/events"
	header := http.Header{"Origin": []string{"http://example.com"}}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err == nil {
		conn.Close()
		t.Fatal("Expected cross-origin dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected status 403, got %v", resp)
	}
	if hub.SubscriberCount() != 0 {
		t.Errorf("Expected no subscribers, got %d", hub.SubscriberCount())
	}

	header.Set("Origin", server.URL)
	conn, _, err = websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("Expected same-origin dial to succeed, got %v", err)
	}
	conn.Close()
}
