package storage

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/savecode"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*state.ShipState
	events    map[uuid.UUID][]eventlog.Entry
	saves     [][]string
	phrases   map[string]bool
	stats     map[string][]int
	pingError error
	failAll   error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		sessions: make(map[uuid.UUID]*state.ShipState),
		events:   make(map[uuid.UUID][]eventlog.Entry),
		phrases:  make(map[string]bool),
		stats:    make(map[string][]int),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetError makes every storage operation fail with err. Pass nil to recover.
func (m *MockStorage) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAll = err
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) SaveSession(ctx context.Context, st *state.ShipState) error {
	if st == nil {
		return errors.New("session state cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return m.failAll
	}
	cp := *st
	cp.Inventory = append([]string(nil), st.Inventory...)
	m.sessions[st.ID] = &cp
	return nil
}

func (m *MockStorage) LoadSession(ctx context.Context, id uuid.UUID) (*state.ShipState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failAll != nil {
		return nil, m.failAll
	}
	st, exists := m.sessions[id]
	if !exists {
		return nil, nil // Return nil for not found
	}
	cp := *st
	cp.Inventory = append([]string(nil), st.Inventory...)
	return &cp, nil
}

func (m *MockStorage) DeleteSession(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return m.failAll
	}
	delete(m.sessions, id)
	delete(m.events, id)
	return nil
}

func (m *MockStorage) AppendEvents(ctx context.Context, id uuid.UUID, entries []eventlog.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return m.failAll
	}
	m.events[id] = append(m.events[id], entries...)
	return nil
}

func (m *MockStorage) DrainEvents(ctx context.Context, id uuid.UUID) ([]eventlog.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return nil, m.failAll
	}
	entries := m.events[id]
	delete(m.events, id)
	return entries, nil
}

func (m *MockStorage) AppendSaveRecord(ctx context.Context, words [savecode.PhraseWords]string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return m.failAll
	}
	member := strings.Join(words[:], " ")
	if m.phrases[member] {
		return savecode.ErrPhraseTaken
	}
	m.phrases[member] = true
	m.saves = append(m.saves, append(append([]string{}, words[:]...), row...))
	return nil
}

func (m *MockStorage) FindSaveRecord(ctx context.Context, words [savecode.PhraseWords]string) ([]string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failAll != nil {
		return nil, false, m.failAll
	}
	for _, rec := range m.saves {
		if rec[0] == words[0] && rec[1] == words[1] && rec[2] == words[2] {
			return rec[savecode.PhraseWords:], true, nil
		}
	}
	return nil, false, nil
}

// AddSaveRecord seeds a raw save record (for testing corrupt rows).
func (m *MockStorage) AddSaveRecord(words [savecode.PhraseWords]string, row []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phrases[strings.Join(words[:], " ")] = true
	m.saves = append(m.saves, append(append([]string{}, words[:]...), row...))
}

func (m *MockStorage) AppendStat(ctx context.Context, collection string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return m.failAll
	}
	m.stats[collection] = append(m.stats[collection], value)
	return nil
}

func (m *MockStorage) ReadStats(ctx context.Context, collection string) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failAll != nil {
		return nil, m.failAll
	}
	return append([]int(nil), m.stats[collection]...), nil
}

// SaveCount returns the number of stored save records (for testing).
func (m *MockStorage) SaveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.saves)
}
