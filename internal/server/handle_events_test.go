package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/geoplay/geostats/internal/i18n"
)

func TestEventsStreamDeliversStatusChanges(t *testing.T) {
	sessions := NewRegistry()
	broker := NewBroker()
	ps := sessions.Create(i18n.Portuguese)

	r := chi.NewRouter()
	r.Route("/api/game", func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))
		r.Get("/events", handleEvents(broker))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		srv.URL+"/api/game/events?token="+ps.Token, nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q", ct)
	}

	// The handler subscribes after the headers flush; keep publishing
	// until a frame makes it through.
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				broker.Publish(ps.Token, Event{Type: "status", Status: "playing", Lives: 3})
			}
		}
	}()

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev); err != nil {
			t.Fatalf("decoding frame: %v", err)
		}
		if ev.Type != "status" || ev.Status != "playing" || ev.Lives != 3 {
			t.Errorf("unexpected event: %+v", ev)
		}
		return
	}
	t.Fatalf("no event frame before deadline: %v", scanner.Err())
}

func TestEventsRequiresSession(t *testing.T) {
	sessions := NewRegistry()
	broker := NewBroker()

	r := chi.NewRouter()
	r.Route("/api/game", func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))
		r.Get("/events", handleEvents(broker))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/game/events", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
