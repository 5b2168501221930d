package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/savecode"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// Stat log collections. Append-only lists of per-mission final counters.
const (
	StatActionCounts = "actioncounts"
	StatErrorCounts  = "errorcounts"
)

// Storage is the durable-store boundary: session snapshots, per-session event
// logs, the shared save-record collection and the statistics logs. Any
// failure surfaces as a wrapped error; callers translate it into an
// in-fiction line rather than crashing the turn.
type Storage interface {
	Ping(ctx context.Context) error
	Close() error

	// Session snapshots.
	SaveSession(ctx context.Context, st *state.ShipState) error
	LoadSession(ctx context.Context, id uuid.UUID) (*state.ShipState, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// Per-session event log. DrainEvents removes and returns the whole log in
	// append order, so an entry is delivered at most once.
	AppendEvents(ctx context.Context, id uuid.UUID, entries []eventlog.Entry) error
	DrainEvents(ctx context.Context, id uuid.UUID) ([]eventlog.Entry, error)

	// Shared save-record collection. AppendSaveRecord claims the passphrase
	// atomically and returns savecode.ErrPhraseTaken if it is already in use.
	AppendSaveRecord(ctx context.Context, words [savecode.PhraseWords]string, row []string) error
	FindSaveRecord(ctx context.Context, words [savecode.PhraseWords]string) ([]string, bool, error)

	// Statistics logs.
	AppendStat(ctx context.Context, collection string, value int) error
	ReadStats(ctx context.Context, collection string) ([]int, error)
}
