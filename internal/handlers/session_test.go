package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/jwebster45206/orion-rescue/internal/stats"
	"github.com/jwebster45206/orion-rescue/internal/storage"
	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/game"
	"github.com/jwebster45206/orion-rescue/pkg/savecode"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

func newTestHandler(t *testing.T) (*SessionHandler, *storage.MockStorage) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
	mock := storage.NewMockStorage()

	codec, err := savecode.New(
		[]string{"red", "blue", "green"},
		[]string{"happy", "sleepy", "brave"},
		[]string{"potato", "rocket", "teapot"},
		rand.New(rand.NewSource(3)),
	)
	if err != nil {
		t.Fatalf("Failed to build codec: %v", err)
	}

	engine := game.NewEngine(mock, stats.NewAggregator(mock, logger), codec, rand.New(rand.NewSource(3)), logger)
	return NewSessionHandler(mock, engine, logger), mock
}

func createTestSession(t *testing.T, handler *SessionHandler) state.ShipState {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Response body: %s", rr.Code, rr.Body.String())
	}

	var st state.ShipState
	if err := json.NewDecoder(rr.Body).Decode(&st); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return st
}

func TestSessionHandler_Create(t *testing.T) {
	handler, mock := newTestHandler(t)

	st := createTestSession(t, handler)

	if st.ID == uuid.Nil {
		t.Error("Expected non-nil session ID")
	}
	if st.Location != state.LocationBridge {
		t.Errorf("Expected start on bridge, got %q", st.Location)
	}

	// The opening distress call is seeded into the event log before the
	// first poll.
	entries, err := mock.DrainEvents(context.Background(), st.ID)
	if err != nil {
		t.Fatalf("DrainEvents failed: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("Expected seeded opening events")
	}
	if entries[0].Channel != eventlog.ChannelSpecial {
		t.Errorf("Expected opening on special channel, got %q", entries[0].Channel)
	}

	saved, err := mock.LoadSession(context.Background(), st.ID)
	if err != nil || saved == nil {
		t.Fatalf("Expected session persisted: %v", err)
	}
}

func TestSessionHandler_CreateMethodNotAllowed(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rr.Code)
	}
}

func TestSessionHandler_Read(t *testing.T) {
	handler, _ := newTestHandler(t)
	st := createTestSession(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+st.ID.String(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Response body: %s", rr.Code, rr.Body.String())
	}

	var got state.ShipState
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got.ID != st.ID {
		t.Errorf("Expected session %s, got %s", st.ID, got.ID)
	}
}

func TestSessionHandler_ReadNotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+uuid.NewString(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestSessionHandler_InvalidID(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/not-a-uuid", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}

	var response ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if response.Error == "" {
		t.Error("Expected error message in response")
	}
}

func TestSessionHandler_UnknownSubResource(t *testing.T) {
	handler, _ := newTestHandler(t)
	st := createTestSession(t, handler)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+st.ID.String()+"/teleport", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestSessionHandler_GiveUp(t *testing.T) {
	handler, mock := newTestHandler(t)
	st := createTestSession(t, handler)

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+st.ID.String(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Response body: %s", rr.Code, rr.Body.String())
	}

	// The farewell script rides in the response body; the session and its
	// event log are gone.
	var events EventsResponse
	if err := json.NewDecoder(rr.Body).Decode(&events); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(events.Events) == 0 {
		t.Fatal("Expected farewell events in response body")
	}
	last := events.Events[len(events.Events)-1]
	if last.Channel != eventlog.ChannelGoodbye {
		t.Errorf("Expected goodbye entry last, got channel %q", last.Channel)
	}

	loaded, err := mock.LoadSession(context.Background(), st.ID)
	if err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}
	if loaded != nil {
		t.Error("Expected session deleted after giving up")
	}
}

func TestSessionHandler_GiveUpNotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+uuid.NewString(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}
