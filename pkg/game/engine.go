// Package game is the narrative dispatch engine: an ordered list of guarded
// rules that turns (session state, intent code) into event log lines and
// state mutations. Rule order is load-bearing — predicates overlap and the
// first match wins.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/phrase"
	"github.com/jwebster45206/orion-rescue/pkg/savecode"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// SaveStore is the slice of the storage boundary the engine needs for the
// save system.
type SaveStore interface {
	AppendSaveRecord(ctx context.Context, words [savecode.PhraseWords]string, row []string) error
	FindSaveRecord(ctx context.Context, words [savecode.PhraseWords]string) ([]string, bool, error)
}

// Stats records finished missions and reports running averages for the
// end-of-game summary.
type Stats interface {
	RecordResult(ctx context.Context, actionCount, errorCount int) error
	Averages(ctx context.Context) (actionAvg, errorAvg float64, ok bool, err error)
}

// Engine dispatches one turn at a time. It holds no per-session state; the
// caller owns the ShipState and must serialize turns per session. Turns for
// different sessions run in parallel, so a shared Engine needs a rand that is
// safe for concurrent use (savecode.NewLockedRand).
type Engine struct {
	saves  SaveStore
	stats  Stats
	codec  *savecode.Codec
	rng    *rand.Rand
	logger *slog.Logger
}

// NewEngine creates a dispatch engine. The rand source drives filler-line
// selection and passphrase draws; inject a seeded one for deterministic
// tests.
func NewEngine(saves SaveStore, stats Stats, codec *savecode.Codec, rng *rand.Rand, logger *slog.Logger) *Engine {
	return &Engine{
		saves:  saves,
		stats:  stats,
		codec:  codec,
		rng:    rng,
		logger: logger,
	}
}

// HandleTurn evaluates the rule list against the current state and intent
// code. Every turn counts as an action, recognized or not.
func (e *Engine) HandleTurn(ctx context.Context, st *state.ShipState, code string, buf *eventlog.Buffer) {
	st.ActionCount++
	for i := range rules {
		if rules[i].when(st, code) {
			rules[i].do(e, ctx, st, buf)
			return
		}
	}
}

// promptNext emits the next-scene prompt for the current location. Location
// is always one of the four rooms; the fallback line should never be seen.
func (e *Engine) promptNext(st *state.ShipState, buf *eventlog.Buffer) {
	var prompt string
	switch st.Location {
	case state.LocationBridge:
		prompt = "I'm on the bridge - what now?"
	case state.LocationReadyRoom:
		prompt = "I'm in the ready room - what next?"
	case state.LocationEngineering:
		prompt = "I'm in the engineering bay - what now?"
	case state.LocationEscapePod:
		prompt = "I'm in the escape pod - what are your instructions?"
	default:
		prompt = "I'm lost."
	}
	buf.Response(prompt, 0)
}

// saveGame draws a unique passphrase, stores the full state row under it and
// tells the player the three words. Storage trouble is explained in-fiction;
// pool exhaustion is a configuration failure and gets logged as such.
func (e *Engine) saveGame(ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) ([savecode.PhraseWords]string, error) {
	words, err := e.codec.Save(ctx, e.saves, st.EncodeRow())
	if err != nil {
		if err == savecode.ErrPoolsExhausted {
			e.logger.Error("Save word pools exhausted; enlarge the pool files", "combinations", e.codec.Combinations())
		} else {
			e.logger.Error("Failed to store save record", "error", err)
		}
		buf.Special(">> ERROR << COULD NOT WRITE TO THE SAVE BANKS\n", 0.05)
		buf.Special("Use the SAVE command to try again, or just continue the rescue from here.\n", 0)
		return words, err
	}

	buf.Response(fmt.Sprintf("Game saved.\n\nWhen you want to recover it, use the LOAD command, after which you'll be asked to say this three word phrase:\n\n%s\n", savecode.Display(words)), 0)
	return words, nil
}

// Save runs the save flow outside a dispatch turn (the Turn API's Save
// operation). The passphrase is returned for the API response; the player
// hears it through the event log either way.
func (e *Engine) Save(ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) ([savecode.PhraseWords]string, error) {
	words, err := e.saveGame(ctx, st, buf)
	if err != nil {
		e.promptNext(st, buf)
		return words, err
	}
	buf.Response("You should probably write that down somewhere.\n", 0)
	e.promptNext(st, buf)
	return words, nil
}

// Restore replays a stored save row into the session. Every failure mode is
// explained on the special channel and followed by a fresh prompt, so the
// session is never left stuck. The returned error is the taxonomy sentinel
// for the API layer; the player-facing handling has already happened.
func (e *Engine) Restore(ctx context.Context, st *state.ShipState, rawPhrase string, buf *eventlog.Buffer) error {
	tokens := phrase.Tokenize(rawPhrase)
	if len(tokens) != savecode.PhraseWords {
		buf.Default("reset", 0.05)
		buf.Special(">> ERROR << CODE PHRASE MUST CONTAIN EXACTLY 3 WORDS\n", 0)
		buf.Special("Use the LOAD command to try again, or just continue the rescue from here.\n", 0)
		e.promptNext(st, buf)
		return savecode.ErrMalformedPhrase
	}

	var words [savecode.PhraseWords]string
	copy(words[:], tokens)

	row, found, err := e.saves.FindSaveRecord(ctx, words)
	if err != nil {
		e.logger.Error("Failed to read save records", "error", err)
		buf.Default("reset", 0.05)
		buf.Special(fmt.Sprintf(">> ERROR << COULD NOT READ GAMESAVES: %v\n", err), 0)
		buf.Special("Use the LOAD command to try again, or just continue the rescue from here.\n", 0)
		e.promptNext(st, buf)
		return err
	}
	if !found {
		buf.Default("reset", 0.05)
		buf.Special(">> ERROR << NO GAME MATCHES THIS PHRASE\n", 0)
		buf.Special("Use the LOAD command to try again, or just continue the rescue from here.\n", 0)
		e.promptNext(st, buf)
		return savecode.ErrNoMatchingSave
	}

	if err := st.ApplyRow(row); err != nil {
		switch {
		case errors.Is(err, state.ErrCorruptInventoryEncoding):
			// Scalar fields are already applied; only the inventory column
			// failed. The restore still counts.
			buf.Special(fmt.Sprintf("Error: %v", err), 0)
			buf.Default("reset", 0.05)
			buf.Response("Did you just feel that? I mean, like, deja vu or what?\n", 1)
			e.promptNext(st, buf)
			return err
		default:
			buf.Default("reset", 0.05)
			buf.Special(">> ERROR << SAVED GAME DATA IS CORRUPT\n", 0)
			buf.Special("Use the LOAD command to try again, or just continue the rescue from here.\n", 0)
			e.promptNext(st, buf)
			return err
		}
	}

	buf.Default("reset", 0.05)
	buf.Response("Did you just feel that? I mean, like, deja vu or what?\n", 1)
	e.promptNext(st, buf)
	return nil
}

// GiveUp emits the incomplete-mission summary. Abandoned runs are not added
// to the mission statistics; the averages describe successful rescues.
func (e *Engine) GiveUp(ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
	e.endGame(ctx, st, buf)
}

// completeLaunch applies the shared tail of every successful launch branch:
// DAVE is aboard by definition, the book follows the Cleanerbot in, and the
// mission is scored. wishDelay is the pause before the no-book lament, which
// varies between branches.
func (e *Engine) completeLaunch(ctx context.Context, st *state.ShipState, buf *eventlog.Buffer, wishDelay float64) {
	st.DaveLocation = state.LocationEscapePod
	st.Launched = true
	if st.HasBook {
		st.BookLocation = state.LocationEscapePod
	}
	if st.BookLocation != state.LocationEscapePod && !st.HasBook {
		buf.Response("Wish I had something to read.\n", wishDelay)
	}
	e.endGame(ctx, st, buf)
}

func (e *Engine) endGame(ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
	if !st.Launched {
		buf.Response("Your rescue was incomplete, so you were a bit rubbish.\n", 3)
		e.summarize(ctx, st, buf, "", 0)
		return
	}

	oscarAboard := st.OscarLocation == state.LocationEscapePod
	bookAboard := st.BookLocation == state.LocationEscapePod || st.HasBook

	if err := e.stats.RecordResult(ctx, st.ActionCount, st.ErrorCount); err != nil {
		e.logger.Error("Failed to record mission statistics", "error", err)
	}

	switch {
	case oscarAboard && !bookAboard:
		buf.Response("Your rescue was a success, and you even saved the ship's computer.\n", 3)
		buf.Response("It was a shame the Cleanerbot didn't have anything to read but they kept each other company.\n", 5)
		e.summarize(ctx, st, buf, "\n", 0)
	case oscarAboard && bookAboard:
		buf.Response("Your rescue was a success, and you even saved the ship's computer.\n", 3)
		buf.Response("Cleanerbot even had something to read, which was nice of you.\n", 3)
		e.summarize(ctx, st, buf, "", 3)
	case !oscarAboard && !bookAboard:
		buf.Response("Your rescue was a success.\n", 3)
		buf.Response("DAVE and the Cleanerbot made it out safely, even though they didn't have anything to read and you left OSCAR behind.\n", 3)
		buf.Response("Poor OSCAR.\n", 3)
		e.summarize(ctx, st, buf, "", 3)
	default:
		buf.Response("Your rescue was a success.\n", 3)
		buf.Response("DAVE and the Cleanerbot made it out safely. Perhaps if you hadn't abandoned OSCAR they'd have had someone else to talk to. By the time they docked, the Cleanerbot was inisiting on people calling him \"Mr Darcy\".\n", 3)
		e.summarize(ctx, st, buf, "", 3)
	}
}

// summarize appends the instruction counts, the running averages and the
// goodbye. extra is the odd trailing blank line one of the variants carries;
// avgDelay is the equally uneven pause before the averages line.
func (e *Engine) summarize(ctx context.Context, st *state.ShipState, buf *eventlog.Buffer, extra string, avgDelay float64) {
	buf.Response(fmt.Sprintf("To get this far, you sent %d instructions, of which %d were understood.\n%s", st.ActionCount, st.ActionCount-st.ErrorCount, extra), 3)

	actionAvg, errorAvg, ok, err := e.stats.Averages(ctx)
	switch {
	case err != nil:
		e.logger.Error("Failed to read mission statistics", "error", err)
	case !ok:
		buf.Response("No valid numbers found in the file.\n", 0)
	default:
		buf.Response(fmt.Sprintf("The average number of actions in a succesful mission is currently %d, with an average of %d messages understood.\n",
			int(math.Round(actionAvg)), int(math.Round(actionAvg-errorAvg))), avgDelay)
	}

	buf.Goodbye("Thanks for playing. Tell a friend.", 3)
}
