package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// EventsResponse matches the API events payload.
type EventsResponse struct {
	Events []eventlog.Entry `json:"events"`
}

// SaveResponse matches the API save payload.
type SaveResponse struct {
	Phrase string `json:"phrase"`
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func createSession(client *http.Client, baseURL string) (*state.ShipState, error) {
	resp, err := client.Post(baseURL+"/v1/sessions", "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("failed to create session: %s", apiError(resp.StatusCode, body))
	}

	var st state.ShipState
	if err := json.Unmarshal(body, &st); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}
	return &st, nil
}

func getSession(client *http.Client, baseURL string, id uuid.UUID) (*state.ShipState, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/sessions/%s", baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get session: %s", apiError(resp.StatusCode, body))
	}

	var st state.ShipState
	if err := json.Unmarshal(body, &st); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}
	return &st, nil
}

func sendIntent(client *http.Client, baseURL string, id uuid.UUID, intent string) (*state.ShipState, error) {
	reqBody := map[string]string{"intent": intent}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		fmt.Sprintf("%s/v1/sessions/%s/intent", baseURL, id),
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("intent request failed: %s", apiError(resp.StatusCode, body))
	}

	var st state.ShipState
	if err := json.Unmarshal(body, &st); err != nil {
		return nil, fmt.Errorf("failed to parse intent response: %w", err)
	}
	return &st, nil
}

func drainEvents(client *http.Client, baseURL string, id uuid.UUID) ([]eventlog.Entry, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/sessions/%s/events", baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get events: %s", apiError(resp.StatusCode, body))
	}

	var events EventsResponse
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to parse events response: %w", err)
	}
	return events.Events, nil
}

func saveSession(client *http.Client, baseURL string, id uuid.UUID) (string, error) {
	resp, err := client.Post(
		fmt.Sprintf("%s/v1/sessions/%s/save", baseURL, id),
		"application/json",
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("save request failed: %s", apiError(resp.StatusCode, body))
	}

	var saveResp SaveResponse
	if err := json.Unmarshal(body, &saveResp); err != nil {
		return "", fmt.Errorf("failed to parse save response: %w", err)
	}
	return saveResp.Phrase, nil
}

func restoreSession(client *http.Client, baseURL string, id uuid.UUID, phrase string) (*state.ShipState, error) {
	reqBody := map[string]string{"phrase": phrase}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		fmt.Sprintf("%s/v1/sessions/%s/restore", baseURL, id),
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// The engine narrates restore failures through the event log, so any
	// status still leaves presentable events behind. Only report transport
	// level problems as errors here.
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("restore request failed: %s", apiError(resp.StatusCode, body))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var st state.ShipState
	if err := json.Unmarshal(body, &st); err != nil {
		return nil, fmt.Errorf("failed to parse restore response: %w", err)
	}
	return &st, nil
}

func endSession(client *http.Client, baseURL string, id uuid.UUID) ([]eventlog.Entry, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/sessions/%s", baseURL, id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to end session: %s", apiError(resp.StatusCode, body))
	}

	var events EventsResponse
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to parse events response: %w", err)
	}
	return events.Events, nil
}

func apiError(status int, body []byte) string {
	var errorResp ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
		return fmt.Sprintf("API returned status %d: %s", status, string(body))
	}
	return errorResp.Error
}
