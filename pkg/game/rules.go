package game

import (
	"context"

	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// rule is one guarded branch of the dispatch table. Predicates overlap on
// purpose; the table is evaluated top to bottom and the first match wins, so
// a rule's position encodes part of its meaning.
type rule struct {
	when func(st *state.ShipState, code string) bool
	do   func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer)
}

// rules is the full table in evaluation order. The fallback group ends with
// the unconditional unrecognized-command rule, so dispatch always matches.
var rules = flatten(
	lookRules,
	movementRules,
	readyRoomRules,
	shipRules,
	stationRules,
	launchRules,
	oscarRules,
	fallbackRules,
)

func flatten(groups ...[]rule) []rule {
	var all []rule
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
