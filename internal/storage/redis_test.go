package storage

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/savecode"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

func setupTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store := NewRedisStorage(mr.Addr(), logger)

	return store, mr
}

func TestRedisStorage_SessionLifecycle(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	st := state.NewShipState()
	st.Location = state.LocationReadyRoom
	st.AddItem(state.ItemBookUnread)

	if err := store.SaveSession(ctx, st); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	loaded, err := store.LoadSession(ctx, st.ID)
	if err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected session, got nil")
	}
	if loaded.Location != state.LocationReadyRoom {
		t.Errorf("Expected location %q, got %q", state.LocationReadyRoom, loaded.Location)
	}
	if !loaded.HasItem(state.ItemBookUnread) {
		t.Error("Inventory did not survive the round trip")
	}

	if err := store.DeleteSession(ctx, st.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	loaded, err = store.LoadSession(ctx, st.ID)
	if err != nil {
		t.Fatalf("LoadSession after delete failed: %v", err)
	}
	if loaded != nil {
		t.Error("Expected nil for deleted session")
	}
}

func TestRedisStorage_LoadMissingSession(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	loaded, err := store.LoadSession(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("LoadSession should not error on missing session: %v", err)
	}
	if loaded != nil {
		t.Error("Expected nil for unknown session")
	}
}

func TestRedisStorage_DrainEventsAtMostOnce(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	id := uuid.New()

	buf := eventlog.NewBuffer(time.Now())
	buf.Response("first", 0)
	buf.Special("second", 0.05)
	buf.Oscar("third", 2)

	if err := store.AppendEvents(ctx, id, buf.Entries()); err != nil {
		t.Fatalf("AppendEvents failed: %v", err)
	}

	drained, err := store.DrainEvents(ctx, id)
	if err != nil {
		t.Fatalf("DrainEvents failed: %v", err)
	}
	if len(drained) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(drained))
	}
	if drained[0].Text != "first" || drained[0].Channel != eventlog.ChannelResponse {
		t.Errorf("First entry mismatch: %+v", drained[0])
	}
	if drained[2].Channel != eventlog.ChannelOscar {
		t.Errorf("Expected oscar channel, got %q", drained[2].Channel)
	}

	// The drain is destructive: a second poll sees nothing.
	drained, err = store.DrainEvents(ctx, id)
	if err != nil {
		t.Fatalf("Second DrainEvents failed: %v", err)
	}
	if len(drained) != 0 {
		t.Errorf("Expected empty drain, got %d entries", len(drained))
	}
}

func TestRedisStorage_AppendEventsPreservesOrder(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	id := uuid.New()

	first := eventlog.NewBuffer(time.Now())
	first.Response("turn one", 0)
	if err := store.AppendEvents(ctx, id, first.Entries()); err != nil {
		t.Fatalf("AppendEvents failed: %v", err)
	}

	second := eventlog.NewBuffer(time.Now())
	second.Response("turn two", 0)
	if err := store.AppendEvents(ctx, id, second.Entries()); err != nil {
		t.Fatalf("AppendEvents failed: %v", err)
	}

	drained, err := store.DrainEvents(ctx, id)
	if err != nil {
		t.Fatalf("DrainEvents failed: %v", err)
	}
	if len(drained) != 2 || drained[0].Text != "turn one" || drained[1].Text != "turn two" {
		t.Errorf("Events out of order: %+v", drained)
	}
}

func TestRedisStorage_SaveRecordClaimsPhrase(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	words := [savecode.PhraseWords]string{"red", "happy", "potato"}
	row := state.NewShipState().EncodeRow()

	if err := store.AppendSaveRecord(ctx, words, row); err != nil {
		t.Fatalf("AppendSaveRecord failed: %v", err)
	}

	// Same phrase again: the SADD guard must refuse it.
	err := store.AppendSaveRecord(ctx, words, row)
	if !errors.Is(err, savecode.ErrPhraseTaken) {
		t.Errorf("Expected ErrPhraseTaken, got %v", err)
	}

	got, found, err := store.FindSaveRecord(ctx, words)
	if err != nil {
		t.Fatalf("FindSaveRecord failed: %v", err)
	}
	if !found {
		t.Fatal("Expected save record to be found")
	}
	if len(got) != len(row) {
		t.Fatalf("Expected %d row columns, got %d", len(row), len(got))
	}
	for i := range row {
		if got[i] != row[i] {
			t.Errorf("Row column %d mismatch: expected %q, got %q", i, row[i], got[i])
		}
	}
}

func TestRedisStorage_SaveRecordWithCommasInRow(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	words := [savecode.PhraseWords]string{"blue", "sleepy", "rocket"}

	st := state.NewShipState()
	st.AddItem(state.ItemDave)
	row := st.EncodeRow()

	// The inventory column contains commas; the CSV layer must keep it one
	// column.
	if err := store.AppendSaveRecord(ctx, words, row); err != nil {
		t.Fatalf("AppendSaveRecord failed: %v", err)
	}

	got, found, err := store.FindSaveRecord(ctx, words)
	if err != nil || !found {
		t.Fatalf("FindSaveRecord failed: found=%v err=%v", found, err)
	}
	if len(got) != state.RowColumns {
		t.Fatalf("Expected %d columns back, got %d", state.RowColumns, len(got))
	}

	restored := state.NewShipState()
	if err := restored.ApplyRow(got); err != nil {
		t.Fatalf("ApplyRow on stored record failed: %v", err)
	}
	if !restored.HasItem(state.ItemDave) {
		t.Errorf("Inventory lost through storage: %v", restored.Inventory)
	}
}

func TestRedisStorage_FindSaveRecordNotFound(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	_, found, err := store.FindSaveRecord(context.Background(), [savecode.PhraseWords]string{"no", "such", "phrase"})
	if err != nil {
		t.Fatalf("FindSaveRecord failed: %v", err)
	}
	if found {
		t.Error("Expected no match for unknown phrase")
	}
}

func TestRedisStorage_Stats(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()

	for _, v := range []int{30, 40, 50} {
		if err := store.AppendStat(ctx, StatActionCounts, v); err != nil {
			t.Fatalf("AppendStat failed: %v", err)
		}
	}

	values, err := store.ReadStats(ctx, StatActionCounts)
	if err != nil {
		t.Fatalf("ReadStats failed: %v", err)
	}
	if len(values) != 3 || values[0] != 30 || values[2] != 50 {
		t.Errorf("Stats mismatch: %v", values)
	}

	// Unknown collection reads as empty, not an error.
	values, err = store.ReadStats(ctx, StatErrorCounts)
	if err != nil {
		t.Fatalf("ReadStats on empty collection failed: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("Expected empty stats, got %v", values)
	}
}

func TestRedisStorage_ReadStatsSkipsGarbage(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()

	if err := store.AppendStat(ctx, StatErrorCounts, 5); err != nil {
		t.Fatalf("AppendStat failed: %v", err)
	}
	mr.Lpush(StatErrorCounts, "not-a-number")

	values, err := store.ReadStats(ctx, StatErrorCounts)
	if err != nil {
		t.Fatalf("ReadStats failed: %v", err)
	}
	if len(values) != 1 || values[0] != 5 {
		t.Errorf("Expected garbage entries skipped, got %v", values)
	}
}
