package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/savecode"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// Sessions and their event logs expire together; save records and stats are
// permanent.
const sessionTTL = 30 * time.Minute

const (
	saveRecordsKey = "gamesaves"
	savePhrasesKey = "savephrases"
)

// RedisStorage implements the Storage interface on Redis: session snapshots
// as JSON values, event logs as lists, save records as a list guarded by a
// phrase set, stats as numeric lists.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	return &RedisStorage{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// Session operations

func sessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}

func eventsKey(id uuid.UUID) string {
	return "events:" + id.String()
}

func (r *RedisStorage) SaveSession(ctx context.Context, st *state.ShipState) error {
	st.UpdatedAt = time.Now()

	data, err := json.Marshal(st)
	if err != nil {
		r.logger.Error("Failed to marshal session", "uuid", st.ID, "error", err)
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	cmd := r.client.Set(ctx, sessionKey(st.ID), string(data), sessionTTL)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to save session", "uuid", st.ID, "error", err)
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *RedisStorage) LoadSession(ctx context.Context, id uuid.UUID) (*state.ShipState, error) {
	cmd := r.client.Get(ctx, sessionKey(id))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			r.logger.Warn("Session not found", "uuid", id)
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load session", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	data := cmd.Val()
	if data == "" {
		r.logger.Warn("Session not found", "uuid", id)
		return nil, nil
	}

	var st state.ShipState
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		r.logger.Error("Failed to unmarshal session", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &st, nil
}

func (r *RedisStorage) DeleteSession(ctx context.Context, id uuid.UUID) error {
	cmd := r.client.Del(ctx, sessionKey(id), eventsKey(id))
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to delete session", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Event log operations

func (r *RedisStorage) AppendEvents(ctx context.Context, id uuid.UUID, entries []eventlog.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal event entry: %w", err)
		}
		values = append(values, data)
	}

	key := eventsKey(id)
	if err := r.client.RPush(ctx, key, values...).Err(); err != nil {
		r.logger.Error("Failed to append events", "uuid", id, "error", err)
		return fmt.Errorf("failed to append events: %w", err)
	}
	if err := r.client.Expire(ctx, key, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to refresh event log expiry: %w", err)
	}
	return nil
}

// DrainEvents removes and returns the session's whole event log. Removal on
// read is what gives the poll endpoint its at-most-once guarantee.
func (r *RedisStorage) DrainEvents(ctx context.Context, id uuid.UUID) ([]eventlog.Entry, error) {
	key := eventsKey(id)

	raw, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil && err != redis.Nil {
		r.logger.Error("Failed to drain events", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to drain events: %w", err)
	}
	if len(raw) > 0 {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return nil, fmt.Errorf("failed to clear event log after drain: %w", err)
		}
	}

	entries := make([]eventlog.Entry, 0, len(raw))
	for _, item := range raw {
		var e eventlog.Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Save record operations

func phraseMember(words [savecode.PhraseWords]string) string {
	return strings.Join(words[:], " ")
}

// AppendSaveRecord claims the passphrase with SADD before writing the row.
// The set add is atomic, so two concurrent savers drawing the same triple
// cannot both write it; the loser gets savecode.ErrPhraseTaken and redraws.
func (r *RedisStorage) AppendSaveRecord(ctx context.Context, words [savecode.PhraseWords]string, row []string) error {
	added, err := r.client.SAdd(ctx, savePhrasesKey, phraseMember(words)).Result()
	if err != nil {
		r.logger.Error("Failed to claim save phrase", "error", err)
		return fmt.Errorf("failed to claim save phrase: %w", err)
	}
	if added == 0 {
		return savecode.ErrPhraseTaken
	}

	fields := append(words[:], row...)
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return fmt.Errorf("failed to encode save record: %w", err)
	}
	w.Flush()

	line := strings.TrimRight(buf.String(), "\n")
	if err := r.client.RPush(ctx, saveRecordsKey, line).Err(); err != nil {
		r.logger.Error("Failed to append save record", "error", err)
		return fmt.Errorf("failed to append save record: %w", err)
	}
	return nil
}

func (r *RedisStorage) FindSaveRecord(ctx context.Context, words [savecode.PhraseWords]string) ([]string, bool, error) {
	lines, err := r.client.LRange(ctx, saveRecordsKey, 0, -1).Result()
	if err != nil && err != redis.Nil {
		r.logger.Error("Failed to read save records", "error", err)
		return nil, false, fmt.Errorf("failed to read save records: %w", err)
	}

	for _, line := range lines {
		fields, err := csv.NewReader(strings.NewReader(line)).Read()
		if err != nil {
			r.logger.Warn("Skipping unreadable save record", "error", err)
			continue
		}
		if len(fields) < savecode.PhraseWords {
			continue
		}
		if fields[0] == words[0] && fields[1] == words[1] && fields[2] == words[2] {
			return fields[savecode.PhraseWords:], true, nil
		}
	}
	return nil, false, nil
}

// Statistics operations

func (r *RedisStorage) AppendStat(ctx context.Context, collection string, value int) error {
	if err := r.client.RPush(ctx, collection, strconv.Itoa(value)).Err(); err != nil {
		r.logger.Error("Failed to append stat", "collection", collection, "error", err)
		return fmt.Errorf("failed to append stat: %w", err)
	}
	return nil
}

func (r *RedisStorage) ReadStats(ctx context.Context, collection string) ([]int, error) {
	raw, err := r.client.LRange(ctx, collection, 0, -1).Result()
	if err != nil && err != redis.Nil {
		r.logger.Error("Failed to read stats", "collection", collection, "error", err)
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	values := make([]int, 0, len(raw))
	for _, item := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil {
			r.logger.Warn("Skipping non-numeric stat entry", "collection", collection, "value", item)
			continue
		}
		values = append(values, n)
	}
	return values, nil
}
