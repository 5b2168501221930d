package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/orion-rescue/internal/storage"
	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/game"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type EventsResponse struct {
	Events []eventlog.Entry `json:"events"`
}

// SessionHandler owns the session resource and its sub-resources.
//
// Routes:
// POST   /v1/sessions               - Create a new rescue session
// GET    /v1/sessions/{id}          - Read session state
// DELETE /v1/sessions/{id}          - Give up the rescue
// POST   /v1/sessions/{id}/intent   - Dispatch one command
// GET    /v1/sessions/{id}/events   - Drain pending event log entries
// POST   /v1/sessions/{id}/save     - Save under a fresh passphrase
// POST   /v1/sessions/{id}/restore  - Restore from a spoken passphrase
type SessionHandler struct {
	storage storage.Storage
	engine  *game.Engine
	logger  *slog.Logger
	locks   *sessionLocks
}

func NewSessionHandler(storage storage.Storage, engine *game.Engine, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		storage: storage,
		engine:  engine,
		logger:  logger,
		locks:   newSessionLocks(),
	}
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/sessions"), "/")

	if path == "" {
		if r.Method != http.MethodPost {
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
			return
		}
		h.handleCreate(w, r)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		h.logger.Warn("Invalid session ID", "id", parts[0], "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			h.handleRead(w, r, id)
		case http.MethodDelete:
			h.handleGiveUp(w, r, id)
		default:
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET, DELETE")
		}
		return
	}

	switch {
	case parts[1] == "intent" && r.Method == http.MethodPost:
		h.handleIntent(w, r, id)
	case parts[1] == "events" && r.Method == http.MethodGet:
		h.handleEvents(w, r, id)
	case parts[1] == "save" && r.Method == http.MethodPost:
		h.handleSave(w, r, id)
	case parts[1] == "restore" && r.Method == http.MethodPost:
		h.handleRestore(w, r, id)
	default:
		h.writeError(w, http.StatusNotFound, "Unknown session sub-resource")
	}
}

func (h *SessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	st := state.NewShipState()

	// The opening distress call is seeded into the event log backdated
	// before the session's creation time, so the first poll always
	// delivers it whatever cursor the client sends.
	if err := h.storage.AppendEvents(r.Context(), st.ID, eventlog.Opening(st.CreatedAt)); err != nil {
		h.logger.Error("Failed to seed opening events", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	if err := h.storage.SaveSession(r.Context(), st); err != nil {
		h.logger.Error("Failed to save new session", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.logger.Info("Session created", "session_id", st.ID)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(st); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}

func (h *SessionHandler) handleRead(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
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

	if err := json.NewEncoder(w).Encode(st); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}

// handleGiveUp abandons the rescue. The farewell script is returned in the
// response body rather than the event log, because the session (and with it
// the log cursor) is gone once this returns.
func (h *SessionHandler) handleGiveUp(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
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
	h.engine.GiveUp(r.Context(), st, buf)

	if err := h.storage.DeleteSession(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete session", "session_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}

	h.logger.Info("Session abandoned", "session_id", id, "action_count", st.ActionCount)
	if err := json.NewEncoder(w).Encode(EventsResponse{Events: buf.Entries()}); err != nil {
		h.logger.Error("Failed to encode farewell response", "error", err)
	}
}

func (h *SessionHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}
