package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/orion-rescue/pkg/game"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

func postIntent(t *testing.T, handler *SessionHandler, id uuid.UUID, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+id.String()+"/intent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestIntentHandler_Dispatch(t *testing.T) {
	handler, mock := newTestHandler(t)
	st := createTestSession(t, handler)

	// Drop the seeded opening entries so only turn output remains.
	_, err := mock.DrainEvents(context.Background(), st.ID)
	assert.NoError(t, err)

	rr := postIntent(t, handler, st.ID, `{"intent":"`+game.IntentLook+`"}`)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got state.ShipState
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, 1, got.ActionCount)
	assert.True(t, got.SeenBridge)

	// Turn output landed in the event log.
	entries, err := mock.DrainEvents(context.Background(), st.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, entries)

	// State changes persisted.
	saved, err := mock.LoadSession(context.Background(), st.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, saved.ActionCount)
}

func TestIntentHandler_Validation(t *testing.T) {
	handler, _ := newTestHandler(t)
	st := createTestSession(t, handler)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "invalid JSON",
			body:           `{invalid json}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing intent",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty intent",
			body:           `{"intent":""}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postIntent(t, handler, st.ID, tt.body)
			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())

			var response ErrorResponse
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
			assert.NotEmpty(t, response.Error)
		})
	}
}

func TestIntentHandler_SessionNotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	rr := postIntent(t, handler, uuid.New(), `{"intent":"0000"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestIntentHandler_LaunchedSessionGone(t *testing.T) {
	handler, mock := newTestHandler(t)
	st := createTestSession(t, handler)

	launched, err := mock.LoadSession(context.Background(), st.ID)
	assert.NoError(t, err)
	launched.Launched = true
	assert.NoError(t, mock.SaveSession(context.Background(), launched))

	rr := postIntent(t, handler, st.ID, `{"intent":"0000"}`)
	assert.Equal(t, http.StatusGone, rr.Code)
}

func TestIntentHandler_UnrecognizedCodeStillTurns(t *testing.T) {
	handler, _ := newTestHandler(t)
	st := createTestSession(t, handler)

	rr := postIntent(t, handler, st.ID, `{"intent":"wibble"}`)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got state.ShipState
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, 1, got.ActionCount)
	assert.Equal(t, 1, got.ErrorCount)
	assert.True(t, got.SeenError)
}
