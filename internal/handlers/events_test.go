package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
)

func getEvents(t *testing.T, handler *SessionHandler, id uuid.UUID, query string) (*httptest.ResponseRecorder, EventsResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+id.String()+"/events"+query, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var events EventsResponse
	if rr.Code == http.StatusOK {
		if err := json.NewDecoder(rr.Body).Decode(&events); err != nil {
			t.Fatalf("Failed to decode events response: %v", err)
		}
	}
	return rr, events
}

func TestEventsHandler_FirstPollDeliversOpening(t *testing.T) {
	handler, _ := newTestHandler(t)
	st := createTestSession(t, handler)

	rr, events := getEvents(t, handler, st.ID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Response body: %s", rr.Code, rr.Body.String())
	}
	if len(events.Events) == 0 {
		t.Fatal("Expected the opening distress call on first poll")
	}
	if events.Events[0].Channel != eventlog.ChannelSpecial {
		t.Errorf("Expected special channel, got %q", events.Events[0].Channel)
	}
}

func TestEventsHandler_DrainIsDestructive(t *testing.T) {
	handler, _ := newTestHandler(t)
	st := createTestSession(t, handler)

	_, first := getEvents(t, handler, st.ID, "")
	if len(first.Events) == 0 {
		t.Fatal("Expected events on first poll")
	}

	_, second := getEvents(t, handler, st.ID, "")
	if len(second.Events) != 0 {
		t.Errorf("Expected empty second poll, got %d entries", len(second.Events))
	}
}

func TestEventsHandler_OpeningExemptFromCursor(t *testing.T) {
	handler, _ := newTestHandler(t)
	st := createTestSession(t, handler)

	// A cursor in the future would filter everything, but the backdated
	// opening script must still come through.
	since := time.Now().Add(time.Hour).Format(time.RFC3339Nano)
	rr, events := getEvents(t, handler, st.ID, "?since="+since)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if len(events.Events) == 0 {
		t.Error("Expected opening events despite future cursor")
	}
	for _, e := range events.Events {
		if !e.Timestamp.Before(st.CreatedAt) {
			t.Errorf("Expected only pre-creation entries through the cursor, got %v", e.Timestamp)
		}
	}
}

func TestEventsHandler_SinceFiltersDeliveredEntries(t *testing.T) {
	handler, mock := newTestHandler(t)
	st := createTestSession(t, handler)

	// Clear the opening, then append two turns' worth of entries.
	if _, err := mock.DrainEvents(context.Background(), st.ID); err != nil {
		t.Fatalf("DrainEvents failed: %v", err)
	}

	buf := eventlog.NewBuffer(time.Now())
	buf.Response("old line", 0)
	cutoff := buf.Entries()[0].Timestamp
	buf.Response("new line", 0)
	if err := mock.AppendEvents(context.Background(), st.ID, buf.Entries()); err != nil {
		t.Fatalf("AppendEvents failed: %v", err)
	}

	_, events := getEvents(t, handler, st.ID, "?since="+cutoff.Format(time.RFC3339Nano))
	if len(events.Events) != 1 {
		t.Fatalf("Expected 1 entry after cursor, got %d", len(events.Events))
	}
	if events.Events[0].Text != "new line" {
		t.Errorf("Expected the newer entry, got %q", events.Events[0].Text)
	}
}

func TestEventsHandler_BadCursor(t *testing.T) {
	handler, _ := newTestHandler(t)
	st := createTestSession(t, handler)

	rr, _ := getEvents(t, handler, st.ID, "?since=yesterday")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestEventsHandler_SessionNotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	rr, _ := getEvents(t, handler, uuid.New(), "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestEventsHandler_EmptyLogIsNotAnError(t *testing.T) {
	handler, mock := newTestHandler(t)
	st := createTestSession(t, handler)

	if _, err := mock.DrainEvents(context.Background(), st.ID); err != nil {
		t.Fatalf("DrainEvents failed: %v", err)
	}

	rr, events := getEvents(t, handler, st.ID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if events.Events == nil {
		t.Error("Expected empty array, not null")
	}
}
