package game

import (
	"context"

	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// lookRules handles the look-around command. Each room has a first-visit
// description and a repeat description, with extra lines when the book or
// DAVE happen to be lying around loose.
var lookRules = []rule{
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLook && st.Location == state.LocationBridge && !st.SeenBridge
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			if st.KlaxonOn {
				buf.Response("Ok, looking...it's a big bridge-y sort of room with polished consoles and a lot of noisy klaxons.\n", 2)
				buf.Response("There's an open hatch to my right and a smell of lemon polish in the air, tempered by undertones of burning plastic and impending death.\n", 0)
			} else {
				buf.Response("Ok, looking...it's a big bridge-y sort of room with polished consoles and even without the klaxons, a definite \"imminent doom\" vibe.\n\n", 2)
				buf.Response("There's an open hatch to my right and a smell of lemon polish in the air, tempered by undertones of burning plastic and impending death.\n", 2)
			}
			if st.BookLocation == state.LocationBridge && !st.HasBook {
				buf.Response("Someone thought it would be a good idea to clutter up the floor with a book.\n", 2)
			}
			if st.DaveLocation == state.LocationBridge && !st.HasDave {
				buf.Response("A potato-based-lifeform sits on a plate on the floor, faintly menacing as its eyes follow me around the room...\n", 0)
			}
			st.SeenBridge = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLook && st.Location == state.LocationBridge && st.SeenBridge
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			if st.KlaxonOn {
				buf.Response("I just told you this. Consoles, klaxons, impending death, hatch to another room over there...\n", 2)
			} else {
				buf.Response("I just told you this. Consoles, impending death, hatch to another room over there...\n", 2)
			}
			if st.BookLocation == state.LocationBridge && !st.HasBook {
				buf.Response("And that book's making the whole place look scruffy.\n", 0)
			}
			if st.DaveLocation == state.LocationBridge && !st.HasDave {
				buf.Response("A potato-based-lifeform sits on a plate on the floor, faintly menacing as its eyes follow me around the room...\n", 0)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLook && st.Location == state.LocationReadyRoom && !st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Ok, looking...this is where the crew usually sleeps and hangs out on the longer runs. Nobody's here.\n", 2)
			buf.Response("There are bunks by the wall, some chairs, and a table with a book on it. You know, crew stuff. I'm not normally allowed in here, and going by the state of the furniture, it shows.\n", 2)
			buf.Response("There's the open hatchway leading to the bridge, and a closed hatch opposite. There also seems to be a closed access panel in the floor.\n", 0)
			st.SeenReadyRoom = true
			st.SeenPanel = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLook && st.Location == state.LocationReadyRoom && st.SeenReadyRoom &&
				!st.PanelOpen && (st.BookLocation == state.LocationReadyRoom || !st.HasBook)
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Like I said: bunks, table, chairs, a book, an access panel and two hatches: one to the bridge and a closed one opposite.\n", 1)
			if st.DaveLocation == state.LocationReadyRoom && !st.HasDave {
				buf.Response("A potato-based-lifeform sits on the table, patiently awaiting rescue.\n", 0)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLook && st.Location == state.LocationReadyRoom && st.SeenReadyRoom &&
				st.PanelOpen && st.BookLocation == state.LocationReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Like I said: bunks, table, chairs, a book, an access panel and two hatches: an open one to the bridge and a closed one opposite.\n", 2)
			buf.Response("And the fire coming out of the access panel. But you probably remember that.\n", 3)
			if st.DaveLocation == state.LocationReadyRoom && !st.HasDave {
				buf.Response("The light of the fire dances in DAVE's eyes as he stares down his historic foe.\n", 3)
				buf.Response("One must admire its defiance in the face of such danger, not seeking to cower in the book's shadow, but nonetheless the sooner we affect a rescue, the better.\n", 3)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLook && st.Location == state.LocationReadyRoom && st.SeenReadyRoom &&
				!st.PanelOpen && (st.BookLocation != state.LocationReadyRoom || st.HasBook)
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Like I said: bunks, table, chairs, bunks an access panel and two hatches: one to the bridge and a closed one opposite.\n", 2)
			if st.DaveLocation == state.LocationReadyRoom && !st.HasDave {
				buf.Response("I turn away for a moment, but would swear that DAVE's tendrils were gesturing toward me, pleading for freedom and safety.\n", 2)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLook && st.Location == state.LocationReadyRoom && st.SeenReadyRoom &&
				st.PanelOpen && (st.BookLocation != state.LocationReadyRoom || st.HasBook)
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Like I said: bunks, table, chairs, bunks, an access panel and two hatches: an open one to the bridge and a closed one opposite.\n", 2)
			buf.Response("And the fire coming out of the access panel. But you probably remember that.\n", 6)
			if st.DaveLocation == state.LocationReadyRoom && !st.HasDave {
				buf.Response("DAVE sits out of the flames range, high up on the table -but the smoke can't be good for him.\n", 2)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLook && st.Location == state.LocationEngineering && !st.SeenEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Never been in here before...\n", 1)
			buf.Response("Standing with the hatch behind me I'm in a kind of long corridor. There's the usual wall of beep-bop-boop indicator lights on my left, some of which are flashing red.\n", 3)
			buf.Response("Down the wall on my right are similar indicators and a workstation showing two displays. One is blank and the other has the words 'Come here, I have instructions for you.'.\n", 5)
			if st.BookLocation == state.LocationEngineering && !st.HasBook {
				buf.Response("That book you dropped is a trip-hazard.\n", 2)
			}
			buf.Response("At the end of the corridor is an empty escape pod.\n", 2)
			st.SeenEngineering = true
			st.BeenEngineering = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLook && st.Location == state.LocationEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I think we can ignore the wall of indicator lights -mostly because I don't know what they're for...\n", 1)
			buf.Response("I can't tell you much about the escape pod without going in. Which sounds quite nice.\n", 3)
			buf.Response("The message on the workstation looks intriguing. Perhaps we should have a look.\n", 3)
			if st.BookLocation == state.LocationEngineering && !st.HasBook {
				buf.Response("That book you dropped is a trip-hazard.\n", 3)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLook && st.Location == state.LocationEscapePod && !st.SeenEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			if st.OscarLocation == state.LocationEscapePod {
				buf.Response("Not much in here.\n\nFour standard acceleration couches with harnesses.\n", 1)
				buf.Response("No windows. Two buttons:\n", 3)
				buf.Response("[TRANSFER SHIP'S COMPUTER]\n\n which we already did, and\n\n[LAUNCH]\n\n which seems a really good idea.\n", 3)
			} else {
				buf.Response("Not much in here.\n\nFour standard acceleration couches with harnesses.\n", 2)
				buf.Response("No windows. Two buttons:\n", 3)
				buf.Response("[TRANSFER SHIP'S COMPUTER]\n\n and\n\n[LAUNCH]\n\n which both seem self-explanatory.\n", 3)
			}
			if st.DaveLocation == state.LocationEscapePod && !st.HasDave {
				buf.Response("DAVE's strapped in and ready to go.\n", 1)
			}
			if st.BookLocation == state.LocationEscapePod && !st.HasBook {
				if !st.ReadBook {
					buf.Response("The rescue manual, or whatever it is, is secured so it doesn't fly around when we go.\n", 2)
				} else {
					buf.Response("That book is here too.\n", 1)
				}
			}
			st.SeenEscapePod = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLook && st.Location == state.LocationEscapePod && st.SeenEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			if st.OscarLocation == state.LocationEscapePod {
				buf.Response("It's not a big space to search. Just you're standard GTFO escape pod.\n\nFour standard acceleration couches with harnesses.\n", 2)
				buf.Response("No windows. Two buttons:\n", 3)
				buf.Response("[TRANSFER SHIP'S COMPUTER] which we already did, and\n\n[LAUNCH] which seems a really good idea.", 3)
			} else {
				buf.Response("It's not a big space to search. Just you're standard GTFO escape pod.\n\nFour standard acceleration couches with harnesses.\n", 2)
				buf.Response("No windows. Two buttons:\n", 3)
				buf.Response("[TRANSFER SHIP'S COMPUTER] and\n\n[LAUNCH] which both seem self-explanatory.\n", 3)
			}
			if st.DaveLocation == state.LocationEscapePod && !st.HasDave {
				buf.Response("DAVE's strapped in and ready to go.\n", 1)
			}
			if st.BookLocation == state.LocationEscapePod && !st.HasBook {
				if !st.ReadBook {
					buf.Response("The rescue manual, or whatever it is, is secured so it doesn't fly around when we go.\n", 1)
				} else {
					buf.Response("That book is here too.\n", 1)
				}
			}
			e.promptNext(st, buf)
		},
	},
}
