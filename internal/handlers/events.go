package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
)

// handleEvents drains the session's pending event log entries. The drain is
// destructive, so each entry is delivered at most once; a crashed client
// loses undelivered lines rather than replaying old ones.
//
// The optional since cursor (RFC 3339) filters out entries the client has
// already rendered. Entries timestamped before the session's creation are
// exempt from the cursor: the backdated opening script must come through on
// the first poll no matter what cursor a reconnecting client presents.
func (h *SessionHandler) handleEvents(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid since timestamp; use RFC 3339 format")
			return
		}
		since = t
	}

	st, err := h.storage.LoadSession(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "session_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if st == nil {
		h.writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	entries, err := h.storage.DrainEvents(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to drain events", "session_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to read events")
		return
	}

	filtered := make([]eventlog.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Timestamp.Before(st.CreatedAt) || since.IsZero() || e.Timestamp.After(since) {
			filtered = append(filtered, e)
		}
	}

	if err := json.NewEncoder(w).Encode(EventsResponse{Events: filtered}); err != nil {
		h.logger.Error("Failed to encode events response", "error", err)
	}
}
