// Package savecode draws the three-word passphrases that key save records.
// Words come from three fixed pools so a phrase is short, speakable and
// recognizable by a fallible voice pipeline.
package savecode

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	// ErrMalformedPhrase is returned when a restore phrase does not tokenize
	// into exactly three words.
	ErrMalformedPhrase = errors.New("code phrase must contain exactly 3 words")

	// ErrNoMatchingSave is returned when no stored record matches a phrase.
	ErrNoMatchingSave = errors.New("no game matches this phrase")

	// ErrPhraseTaken is returned by a save store when a candidate triple is
	// already in use; the caller redraws.
	ErrPhraseTaken = errors.New("passphrase already in use")

	// ErrPoolsExhausted means the pools have run out of unique combinations.
	// This is a configuration failure, not a per-turn condition.
	ErrPoolsExhausted = errors.New("word pools exhausted of unique passphrases")
)

// PhraseWords is the number of words in a passphrase.
const PhraseWords = 3

// drawAttempts bounds the redraw loop. Collisions get rarer with every
// successful save until the pools genuinely run out; a run this long means
// they have.
const drawAttempts = 10000

// Codec draws candidate passphrases from its three word pools.
type Codec struct {
	pools [PhraseWords][]string
	rng   *rand.Rand
}

// New builds a Codec from three non-empty word pools. The rand source is
// injected so tests can be deterministic.
func New(s1, s2, s3 []string, rng *rand.Rand) (*Codec, error) {
	pools := [PhraseWords][]string{s1, s2, s3}
	for i, pool := range pools {
		if len(pool) == 0 {
			return nil, fmt.Errorf("word pool %d is empty", i+1)
		}
	}
	return &Codec{pools: pools, rng: rng}, nil
}

// LoadPools reads the three pool files (s1.txt, s2.txt, s3.txt, one word per
// line) from dir and builds a Codec.
func LoadPools(dir string, rng *rand.Rand) (*Codec, error) {
	var pools [PhraseWords][]string
	for i := 0; i < PhraseWords; i++ {
		path := filepath.Join(dir, fmt.Sprintf("s%d.txt", i+1))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read word pool: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			word := strings.TrimSpace(line)
			if word != "" {
				pools[i] = append(pools[i], word)
			}
		}
	}
	return New(pools[0], pools[1], pools[2], rng)
}

// lockedSource serializes access to a rand source. math/rand sources are not
// safe for concurrent use, and one Codec serves every session.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewLockedRand returns a seeded rand safe for concurrent use. Servers share
// one rand between the codec and the dispatch engine, and turns for different
// sessions run in parallel.
func NewLockedRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed)})
}

// Draw returns one candidate triple, each word drawn independently and
// uniformly from its pool.
func (c *Codec) Draw() [PhraseWords]string {
	var words [PhraseWords]string
	for i, pool := range c.pools {
		words[i] = pool[c.rng.Intn(len(pool))]
	}
	return words
}

// Combinations returns the total number of distinct triples the pools can
// produce.
func (c *Codec) Combinations() int {
	return len(c.pools[0]) * len(c.pools[1]) * len(c.pools[2])
}

// Store is the storage surface Save needs: an append that fails with
// ErrPhraseTaken when the triple is already claimed.
type Store interface {
	AppendSaveRecord(ctx context.Context, words [PhraseWords]string, row []string) error
}

// Save draws passphrases until the store accepts one, then returns the words
// that now key the row. Two concurrent saves can draw the same triple; the
// store's uniqueness check decides the winner and the loser redraws.
func (c *Codec) Save(ctx context.Context, store Store, row []string) ([PhraseWords]string, error) {
	for attempt := 0; attempt < drawAttempts; attempt++ {
		words := c.Draw()
		err := store.AppendSaveRecord(ctx, words, row)
		if err == nil {
			return words, nil
		}
		if !errors.Is(err, ErrPhraseTaken) {
			return [PhraseWords]string{}, err
		}
	}
	return [PhraseWords]string{}, ErrPoolsExhausted
}

// Display renders a triple the way it is read to the player.
func Display(words [PhraseWords]string) string {
	return strings.ToUpper(words[0]) + "   " + strings.ToUpper(words[1]) + "   " + strings.ToUpper(words[2])
}
