package savecode

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func testCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := New(
		[]string{"red", "blue", "green"},
		[]string{"happy", "sleepy"},
		[]string{"potato", "rocket"},
		rand.New(rand.NewSource(1)),
	)
	if err != nil {
		t.Fatalf("Failed to build codec: %v", err)
	}
	return c
}

func TestNewRejectsEmptyPool(t *testing.T) {
	_, err := New([]string{"red"}, nil, []string{"potato"}, rand.New(rand.NewSource(1)))
	if err == nil {
		t.Error("Expected error for empty pool")
	}
}

func TestDrawFromPools(t *testing.T) {
	c := testCodec(t)

	pools := [PhraseWords]map[string]bool{
		{"red": true, "blue": true, "green": true},
		{"happy": true, "sleepy": true},
		{"potato": true, "rocket": true},
	}

	for i := 0; i < 100; i++ {
		words := c.Draw()
		for j := 0; j < PhraseWords; j++ {
			if !pools[j][words[j]] {
				t.Fatalf("Word %q drawn outside pool %d", words[j], j+1)
			}
		}
	}
}

func TestCombinations(t *testing.T) {
	c := testCodec(t)
	if got := c.Combinations(); got != 12 {
		t.Errorf("Expected 12 combinations, got %d", got)
	}
}

// fakeStore claims phrases in memory and optionally fails every write.
type fakeStore struct {
	claimed map[[PhraseWords]string]bool
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{claimed: make(map[[PhraseWords]string]bool)}
}

func (f *fakeStore) AppendSaveRecord(ctx context.Context, words [PhraseWords]string, row []string) error {
	if f.err != nil {
		return f.err
	}
	if f.claimed[words] {
		return ErrPhraseTaken
	}
	f.claimed[words] = true
	return nil
}

func TestSaveRedrawsOnCollision(t *testing.T) {
	c := testCodec(t)
	store := newFakeStore()
	ctx := context.Background()

	// Fill most of the phrase space; Save must keep redrawing until it finds
	// one of the free triples.
	seen := make(map[[PhraseWords]string]bool)
	for i := 0; i < 10; i++ {
		words, err := c.Save(ctx, store, []string{"row"})
		if err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
		if seen[words] {
			t.Fatalf("Save %d returned duplicate phrase %v", i, words)
		}
		seen[words] = true
	}
}

func TestSaveThousandNoCollision(t *testing.T) {
	c, err := LoadPools(filepath.Join("..", "..", "data", "wordpools"), NewLockedRand(11))
	if err != nil {
		t.Fatalf("LoadPools failed: %v", err)
	}

	store := newFakeStore()
	ctx := context.Background()

	seen := make(map[[PhraseWords]string]bool)
	for i := 0; i < 1000; i++ {
		words, err := c.Save(ctx, store, []string{"row"})
		if err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
		if seen[words] {
			t.Fatalf("Save %d returned duplicate phrase %v", i, words)
		}
		seen[words] = true
	}
}

func TestLockedRandConcurrentDraws(t *testing.T) {
	c, err := New(
		[]string{"red", "blue", "green"},
		[]string{"happy", "sleepy"},
		[]string{"potato", "rocket"},
		NewLockedRand(1),
	)
	if err != nil {
		t.Fatalf("Failed to build codec: %v", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				words := c.Draw()
				for j := 0; j < PhraseWords; j++ {
					if words[j] == "" {
						t.Error("Draw returned empty word")
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestSaveExhaustsPools(t *testing.T) {
	c := testCodec(t)
	store := newFakeStore()
	ctx := context.Background()

	for i := 0; i < c.Combinations(); i++ {
		if _, err := c.Save(ctx, store, []string{"row"}); err != nil {
			t.Fatalf("Save %d failed before exhaustion: %v", i, err)
		}
	}

	_, err := c.Save(ctx, store, []string{"row"})
	if !errors.Is(err, ErrPoolsExhausted) {
		t.Errorf("Expected ErrPoolsExhausted, got %v", err)
	}
}

func TestSavePropagatesStoreErrors(t *testing.T) {
	c := testCodec(t)
	store := newFakeStore()
	store.err = errors.New("connection refused")

	_, err := c.Save(context.Background(), store, []string{"row"})
	if err == nil || errors.Is(err, ErrPhraseTaken) {
		t.Errorf("Expected store error to propagate, got %v", err)
	}
}

func TestDisplay(t *testing.T) {
	got := Display([PhraseWords]string{"red", "happy", "potato"})
	want := "RED   HAPPY   POTATO"
	if got != want {
		t.Errorf("Display mismatch: got %q, want %q", got, want)
	}
}

func TestLoadPools(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"s1.txt": "red\nblue\n\ngreen\n",
		"s2.txt": "happy\nsleepy\n",
		"s3.txt": "potato\nrocket\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write pool file: %v", err)
		}
	}

	c, err := LoadPools(dir, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("LoadPools failed: %v", err)
	}
	if got := c.Combinations(); got != 12 {
		t.Errorf("Expected 12 combinations from files, got %d", got)
	}
}

func TestLoadPoolsMissingFile(t *testing.T) {
	_, err := LoadPools(t.TempDir(), rand.New(rand.NewSource(1)))
	if err == nil {
		t.Error("Expected error for missing pool files")
	}
}
