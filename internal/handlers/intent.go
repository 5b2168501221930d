package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
)

type IntentRequest struct {
	Intent string `json:"intent"`
}

// handleIntent dispatches one classified command against the session. The
// turn is atomic: load, dispatch, persist state and events, all under the
// session lock.
func (h *SessionHandler) handleIntent(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req IntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Intent == "" {
		h.writeError(w, http.StatusBadRequest, "Intent code is required")
		return
	}

	unlock := h.locks.Lock(id)
	defer unlock()

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
	if st.Launched {
		h.writeError(w, http.StatusGone, "Mission already complete")
		return
	}

	buf := eventlog.NewBuffer(time.Now())
	h.engine.HandleTurn(r.Context(), st, req.Intent, buf)
	st.UpdatedAt = time.Now()

	if err := h.storage.SaveSession(r.Context(), st); err != nil {
		h.logger.Error("Failed to save session", "session_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}
	if err := h.storage.AppendEvents(r.Context(), id, buf.Entries()); err != nil {
		h.logger.Error("Failed to append events", "session_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to record events")
		return
	}

	h.logger.Debug("Intent dispatched",
		"session_id", id,
		"intent", req.Intent,
		"location", st.Location,
		"action_count", st.ActionCount)

	if err := json.NewEncoder(w).Encode(st); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}
