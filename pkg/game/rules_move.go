package game

import (
	"context"

	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// movementRules covers the navigation commands. The go-to-ready-room rule
// for an unseen bridge deliberately leaves BeenReadyRoom unset; the bot is
// guessing its way there.
var movementRules = []rule{
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentHatchRight && st.Location == state.LocationBridge && st.SeenBridge
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Ok, heading right.\n", 3)
			st.Location = state.LocationReadyRoom
			st.BeenReadyRoom = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentHatchRight && st.Location == state.LocationBridge && !st.SeenBridge
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("It's as if you've been here before. There is indeed a hatch on my right.\n\nOk, heading there now.\n", 3)
			st.Location = state.LocationReadyRoom
			st.BeenReadyRoom = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGoReadyRoom && st.Location != state.LocationReadyRoom && st.SeenBridge
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Ok, heading to the ready room.\n", 5)
			st.Location = state.LocationReadyRoom
			st.BeenReadyRoom = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGoReadyRoom && st.Location != state.LocationReadyRoom && !st.SeenBridge
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Ok, heading to the ready room.\n", 5)
			st.Location = state.LocationReadyRoom
			e.promptNext(st, buf)
		},
	},
	{
		// Shadowed by the two rules above; kept for parity with the branch
		// structure it was adapted from.
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGoReadyRoom && st.Location == state.LocationBridge && !st.SeenBridge
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("It's as if you've been here before. There is indeed a ready room connected to the bridge.\n\nOk, heading there now.\n", 5)
			st.Location = state.LocationReadyRoom
			st.BeenReadyRoom = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGoBridge && st.Location == state.LocationBridge
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Well that didn't take long. I'm standing right here...\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGoBridge && st.Location != state.LocationBridge && st.BeenBridge
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Gimme a sec...\n", 5)
			buf.Response("Ok, I'm back.\n", 0)
			st.Location = state.LocationBridge
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentCompass
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Compass directions?\n\nWe are on a shuttle in space, unlikely to encounter wizards, orcs or similar creatures.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLeave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("You're leaving? In the middle of a rescue????\n\nWell, if you really must leave you can always SAVE your progress first, and come back later. Just say the SAVE command.\n", 3)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentWhereAreWe
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("You are (on comms with a handsome Cleanerbot) on a big smokey tin can somewhere in deep space.\n", 1)
			buf.Response("I've never left the bridge but I'm told the shuttle is only 300m or so long.\n", 2)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGoEngineering && st.Location != state.LocationEngineering &&
				(st.SeenEngineering || st.AwareEngineering)
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Sure. I'll head over there.\n", 4)
			buf.Response("Ok, I'm here.\n", 1)
			st.Location = state.LocationEngineering
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGoEngineering && (!st.SeenEngineering || !st.AwareEngineering)
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't know where that is. My duties are restricted to the bridge.\n", 2)
			buf.Response("But I'm sure we have something like that, otherwise we'd never be able to go anywhere.\n", 1)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGoEngineering && st.Location == state.LocationEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I'm already in engineering.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGoEscapePod && st.Location != state.LocationEngineering &&
				st.Location != state.LocationEscapePod && st.SeenEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Sure. I'll head over there.\n", 4)
			buf.Response("Ok, I'm in here.\n", 0)
			st.Location = state.LocationEscapePod
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGoEscapePod && !st.SeenEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't know where that is. My duties are restricted to the bridge.\n", 1)
			buf.Response("But I'm sure we have something like that somewhere.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGoEscapePod && st.Location == state.LocationEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Ok, I'm in here.\n", 0)
			st.Location = state.LocationEscapePod
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGoEscapePod && st.Location == state.LocationEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I'm already here.\n", 0)
			e.promptNext(st, buf)
		},
	},
}
