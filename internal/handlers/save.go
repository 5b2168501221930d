package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/savecode"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

type SaveResponse struct {
	Phrase string `json:"phrase"`
}

type RestoreRequest struct {
	Phrase string `json:"phrase"`
}

// handleSave stores the session under a fresh three-word passphrase. The
// player hears the phrase through the event log; the API response carries it
// too for clients that want to display it.
func (h *SessionHandler) handleSave(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
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

	buf := eventlog.NewBuffer(time.Now())
	words, saveErr := h.engine.Save(r.Context(), st, buf)

	st.UpdatedAt = time.Now()
	if err := h.storage.SaveSession(r.Context(), st); err != nil {
		h.logger.Error("Failed to save session", "session_id", id, "error", err)
	}
	if err := h.storage.AppendEvents(r.Context(), id, buf.Entries()); err != nil {
		h.logger.Error("Failed to append events", "session_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to record events")
		return
	}

	if saveErr != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to store save record")
		return
	}

	h.logger.Info("Session saved", "session_id", id)
	if err := json.NewEncoder(w).Encode(SaveResponse{Phrase: strings.Join(words[:], " ")}); err != nil {
		h.logger.Error("Failed to encode save response", "error", err)
	}
}

// handleRestore replays a stored save row into the session. Narrative
// feedback for every outcome, success or failure, has already been written
// to the event log by the engine; the status code mirrors it for the API
// client.
func (h *SessionHandler) handleRestore(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req RestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
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

	buf := eventlog.NewBuffer(time.Now())
	restoreErr := h.engine.Restore(r.Context(), st, req.Phrase, buf)

	st.UpdatedAt = time.Now()
	if err := h.storage.SaveSession(r.Context(), st); err != nil {
		h.logger.Error("Failed to save session", "session_id", id, "error", err)
	}
	if err := h.storage.AppendEvents(r.Context(), id, buf.Entries()); err != nil {
		h.logger.Error("Failed to append events", "session_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to record events")
		return
	}

	switch {
	case restoreErr == nil, errors.Is(restoreErr, state.ErrCorruptInventoryEncoding):
		// A bad inventory column still restores every scalar field, so the
		// session carries on from the saved point.
		if err := json.NewEncoder(w).Encode(st); err != nil {
			h.logger.Error("Failed to encode session response", "error", err)
		}
	case errors.Is(restoreErr, savecode.ErrMalformedPhrase):
		h.writeError(w, http.StatusBadRequest, restoreErr.Error())
	case errors.Is(restoreErr, savecode.ErrNoMatchingSave):
		h.writeError(w, http.StatusNotFound, restoreErr.Error())
	case errors.Is(restoreErr, state.ErrCorruptSaveRow):
		h.writeError(w, http.StatusUnprocessableEntity, "Saved game data is corrupt")
	default:
		h.writeError(w, http.StatusInternalServerError, "Failed to read save records")
	}
}
