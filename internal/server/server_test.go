package server

import (
	"context"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"gsteditor/internal/config"
	"gsteditor/internal/core/bus"
	"gsteditor/internal/editor"
)

func TestServeAndShutdown(t *testing.T) {
	hub := bus.NewHub()
	loop := editor.NewLoop(editor.New(editor.Options{Hub: hub}))
	srv := New(config.Default(), loop, hub, zerolog.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	base := "http://" + ln.Addr().String()
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get(base + "/healthz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("Expected healthy server, last error %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := http.Post(base+"/api/commands", "application/json", strings.NewReader(`{"line":"ADD ELEMENT queue q"}`))
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if hub.Published() == 0 {
		t.Error("Expected events published for the command")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Expected Serve to return after cancel")
	}
	if loop.Running() {
		t.Error("Expected editor loop stopped")
	}
}

func TestAddr(t *testing.T) {
	cfg := config.Default()
	cfg.Server.HTTPPort = 9999
	srv := New(cfg, editor.NewLoop(editor.New(editor.Options{})), bus.NewHub(), zerolog.Nop())
	if srv.Addr() != "127.0.0.1:9999" {
		t.Errorf("Expected 127.0.0.1:9999, got %s", srv.Addr())
	}
}
