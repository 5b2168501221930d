package game

import (
	"context"

	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// shipRules covers questions about the bot, the shuttle and the crew, plus
// the klaxons, the connecting hatch and dropping the book.
var shipRules = []rule{
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentWhoAreYou
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I am CLEANERBOT27. My mission is to keep the bridge shiny and today you're going to show me how to be a hero.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineShip
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("The Orion is a Maxisave class shuttle, designed for the price conscious operator who appreciates a no-frills attitude to features and shuns the luxury of subscription maintenance services and routine overhaul.\n", 10)
			buf.Response("And it's on fire.\n", 3)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentCrew
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("The crew numbers somewhere between 3 and 47.\n", 2)
			buf.Response("They all look the same to me, so it's hard to tell.\n", 2)
			buf.Response("Most of them are bipedal, although a smaller quadroped called \"Laika\" at least confines its mess to the corner of the bridge.\n", 4)
			buf.Response("My emergency sensors indicate that only one lifeform remains onboard.\n", 1)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentDropBook && st.Location == state.LocationBridge && st.HasBook
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Certainly. Even though I don't like how it makes the place look untidy.\n", 0)
			dropBook(st, state.LocationBridge)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentDropBook && st.Location == state.LocationReadyRoom && st.HasBook
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Ok, I've put it back on the table.", 0)
			dropBook(st, state.LocationReadyRoom)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentDropBook && st.Location == state.LocationEngineering && st.HasBook
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Done. It's on the floor near the workstation.\n", 0)
			dropBook(st, state.LocationEngineering)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentDropBook && st.Location == state.LocationEscapePod && st.HasBook
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Not much space in here, so I put it on one of the seats.", 0)
			dropBook(st, state.LocationEscapePod)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentDropBook && !st.HasBook
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I'm not carrying a book.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentWait
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response(waitlist[e.rng.Intn(len(waitlist))], 4)
			buf.Response("Let me know when you want to get on with the rescue.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentClean
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Well cleaning is my life but the search and rescue is quite stimulating. Let's do that instead.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentWhoIsLifeform && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			if !st.SeenDave {
				buf.Response("I am a Cleanerbot, so my information is limited and I don't know their location. Perhaps you should ask OSCAR.\n", 0)
			} else {
				buf.Response("Well it's pretty clearly Dave, innit?\n\nSo let's get him into the escape pod...\n", 0)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentWhoIsLifeform && !st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I am a Cleanerbot, so my information is limited. They'll be around here somewhere...\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOfferFood
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Thank you, but I do not get hungry. Did I mention that I'm a Cleanerbot?\n", 3)
			buf.Response("And I'm on a mission.\n", 3)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentGameTalk
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("This isn't a game, young hobbit. We're on a search and rescue mission...\n", 2)
			buf.Response("Something about this interface makes people act weird, I don't know why.", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentSilenceKlaxons && st.KlaxonOn
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			if st.Location != state.LocationBridge {
				buf.Response("That would be nice, but the overide is in the bridge.\n", 0)
			} else {
				buf.Response("Much better. Thanks.\n", 0)
				st.KlaxonOn = false
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentSilenceKlaxons && !st.KlaxonOn
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("We already did that.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOpenHatch &&
				(st.Location == state.LocationReadyRoom || st.Location == state.LocationEngineering)
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Ok, it's open.\n", 0)
			if st.Location == state.LocationReadyRoom {
				buf.Response("I can see into the what looks like an engineering bay.\n", 0)
				st.AwareEngineering = true
			} else {
				buf.Response("I can see into the ready room.\n", 0)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentCloseHatch
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Done. Hatch closed.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentSmotherFire && st.Location == state.LocationReadyRoom && st.PanelOpen
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("No. That sounds a bit silly, and I'm not sure how it will help the rescue.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentSmotherFire && st.Location == state.LocationReadyRoom &&
				(!st.PanelOpen || !st.SeenFire)
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't see how.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentSmotherFire && st.Location != state.LocationReadyRoom && st.SeenFire
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I suppose we could try that in the ready room, but no.\n\n It sounds a bit silly, and I'm not sure how it will help the rescue. So, no.\n", 0)
			e.promptNext(st, buf)
		},
	},
}

var waitlist = []string{
	"Wait? Ok. I mean the floor could do with a bit of a going over.\n",
	"Well, this area could use a bit of a tidy up...\n",
}

// dropBook removes whichever edition is being carried and leaves it in room.
func dropBook(st *state.ShipState, room string) {
	if st.HasItem(state.ItemBookRead) {
		st.RemoveItem(state.ItemBookRead)
	} else {
		st.RemoveItem(state.ItemBookUnread)
	}
	st.HasBook = false
	st.BookLocation = room
}
