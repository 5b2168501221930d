package game

import (
	"context"
	"strings"

	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// readyRoomRules covers the access panel, the book, the fire and the ready
// room furniture. Several of the examine commands teleport the bot back to
// the ready room as a side effect of going to look.
var readyRoomRules = []rule{
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOpenPanel && st.Location == state.LocationReadyRoom &&
				!st.PanelOpen && st.SeenPanel && st.SeenFire
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Okidoke.\n\n", 3)
			buf.Response("Yup, still burning like a disco inferno.\n", 1)
			st.PanelOpen = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOpenPanel && st.Location == state.LocationReadyRoom &&
				!st.PanelOpen && st.SeenPanel && !st.SeenFire
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Right you are. Let's see what's in here.\n", 3)
			buf.Response("Fire. Quite a bit of fire.\n", 2)
			buf.Response("Unless the crew likes barbecue, this probably isn't meant to be here.\n", 2)
			st.PanelOpen = true
			st.SeenFire = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOpenPanel && st.Location == state.LocationReadyRoom &&
				!st.PanelOpen && !st.SeenPanel
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't see an access panel in here.\n", 2)
			buf.Response("Hold on. There is one in the floor. Probably for storage. Let me know if you want me to do something with that.\n", 2)
			buf.Response("This is where the crew usually sleeps and hangs out on the longer runs. Nobody's here.\n\nThere are bunks by the wall, some chairs, and a table with a book on it.\n", 2)
			buf.Response("You know, crew stuff. I'm not normally allowed in here, and going by the state of the furniture, it shows.\n\nThere's the open hatch leading to the bridge, and a closed one opposite.\n", 4)
			st.SeenPanel = true
			st.SeenReadyRoom = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOpenPanel && st.Location == state.LocationReadyRoom && st.PanelOpen
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("It's already open.\n", 2)
			buf.Response("Remember the fire coming out of the floor?\n", 2)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentClosePanel && st.Location != state.LocationReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't see an access panel in here.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentClosePanel && st.Location == state.LocationReadyRoom && !st.SeenPanel
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't see an access panel in here.\n", 2)
			buf.Response("Hold on. There is one in the floor. Probably for storage. Let me know if you want me to do something with that.\n", 2)
			buf.Response("This is where the crew usually sleeps and hangs out on the longer runs. Nobody's here.\n", 2)
			buf.Response("There are bunks by the wall, some chairs, and a table with a book on it.\n", 2)
			buf.Response("You know, crew stuff. I'm not normally allowed in here, and going by the state of the furniture, it shows.\n", 2)
			buf.Response("There's the open hatch leading to the bridge, and a closed one opposite.\n", 1)
			st.SeenPanel = true
			st.SeenReadyRoom = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentClosePanel && st.Location == state.LocationReadyRoom &&
				st.SeenPanel && st.PanelOpen
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Closed it. Considerably less firey in here.\n", 0)
			st.PanelOpen = false
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentClosePanel && st.Location == state.LocationReadyRoom &&
				st.SeenPanel && !st.PanelOpen
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("It's already closed.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExaminePanel && st.Location == state.LocationReadyRoom &&
				st.SeenPanel && !st.PanelOpen
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Flat, white, a metre square. You know, panel.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExaminePanel && st.Location != state.LocationReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't see an access panel in here.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExaminePanel && st.Location == state.LocationReadyRoom && !st.SeenPanel
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't see an access panel in here.\n", 2)
			buf.Response("Hold on. There is one in the floor. Probably for storage. Let me know if yu want me to do something with that.\n\nThis is where the crew usually sleeps and hangs out on the longer runs. Nobody's here.\n\nThere are bunks by the wall, some chairs, and a table with a book on it.\n", 4)
			buf.Response("You know, crew stuff. I'm not normally allowed in here, and going by the state of the furniture, it shows.\n\nThere's the open hatch leading to the bridge, and a closed one opposite.\n", 6)
			st.SeenPanel = true
			st.SeenReadyRoom = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentReadBook && st.Location != st.BookLocation && !st.HasBook
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't have a book. Does it say how to perform a daring space rescue?\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentReadBook && (st.Location == st.BookLocation || st.HasBook)
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Ok then...\"It is a truth universally acknowledged, that a single man in possession of a good fortune, must be in need of a wife.\"\n", 4)
			st.ReadBook = true
			if st.HasItem(state.ItemBookUnread) {
				st.RemoveItem(state.ItemBookUnread)
				st.AddItem(state.ItemBookRead)
			}
			buf.Response("Catchy intro, and I know I'm only really programmed to parse janitorial system updates, but I don't think this will help us on the rescue.\n", 4)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentTakeBook && st.Location == state.LocationReadyRoom &&
				st.BookLocation == state.LocationReadyRoom && !st.SeenReadyRoom && !st.ReadBook
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Yup, there's one right here on this table.  Got it.\n", 2)
			st.AddItem(state.ItemBookUnread)
			st.HasBook = true
			buf.Response("Looking around the rest of the room, there's a table and chairs and a hatch in the in the floor. Probably for storage.\n\nThis is where the crew usually sleeps and hangs out on the longer runs. Nobody's here.\n\nThere are bunks by the wall.\n\nYou know, crew stuff. I'm not normally allowed in here, and going by the state of the furniture, it shows.\n\nThere's the open hatch leading to the bridge, and a closed one opposite.\n", 4)
			st.SeenReadyRoom = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentTakeBook && st.Location == st.BookLocation && !st.HasBook
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Got it.\n", 0)
			if !st.ReadBook {
				st.AddItem(state.ItemBookUnread)
			} else {
				st.AddItem(state.ItemBookRead)
			}
			st.HasBook = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentTakeBook && st.HasBook
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I already have the book. Try and keep up.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentInventory
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Let me see...", 0)
			buf.Response(strings.Join(st.Inventory, "\n"), 1)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentFightFire && st.Location == state.LocationReadyRoom && !st.PanelOpen
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't see any fire. Or for that matter anything I'd use to put one out.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentFightFire && st.Location == state.LocationReadyRoom && st.PanelOpen
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Sorry, but I don't have the equipment for that.\n", 2)
			buf.Response("And I distinctly remember a health and safety seminar saying I shouldn't try to do so alone.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentFightFire && st.Location != state.LocationReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't see any fire. Or for that matter anything I'd use to put one out.\n", 0)
			st.PanelOpen = false
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineTable && st.Location != state.LocationReadyRoom && st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("You mean the one in the ready room? I'll head over there now...", 5)
			buf.Response("Reproduction of a classic 20th century Swedish design, with modifications for g-forces, fire, chemical and biologic exposure.\n", 3)
			if !st.HasBook {
				buf.Response("\nThere's a book on it.\n", 0)
			}
			st.Location = state.LocationReadyRoom
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineTable && st.Location == state.LocationReadyRoom && st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Reproduction of a classic 20th century Swedish design, with modifications for g-forces, fire, chemical and biologic exposure.\n", 3)
			if !st.HasBook {
				buf.Response("\nThere's a book on it.\n", 0)
			}
			if st.PanelOpen {
				buf.Response("And the fire's still coming out of the access panel. But you probably remember that.\n", 3)
				buf.Response(" ", 2)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineTable && st.Location == state.LocationReadyRoom && !st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Reproduction of a classic 20th century Swedish design, with modifications for g-forces, fire, chemical and biologic exposure.\n\nThere's a book on it and chairs around it.\n", 5)
			buf.Response("Looking around the rest of the room, there's a hatch in the in the floor. Probably for storage.\n\nThis is where the crew usually sleeps and hangs out on the longer runs. Nobody's here.\n\nThere are bunks by the wall.\n\nYou know, crew stuff. I'm not normally allowed in here, and going by the state of the furniture, it shows.\n\nThere's the open hatch leading to the bridge, and a closed one opposite.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineChairs && st.Location != state.LocationReadyRoom && st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("The chairs we saw in the ready room? Lemme check...", 5)
			buf.Response("Set of three standard issue recreation chairs. Distinghuishable from each other only by their stains.\n", 0)
			st.Location = state.LocationReadyRoom
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineChairs && st.Location == state.LocationReadyRoom && st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Set of three standard issue recreation chairs. Distinghuishable from each other only by their stains.\n", 2)
			if st.PanelOpen {
				buf.Response("And the fire's still coming out of the access panel. But you probably remember that.\n", 5)
				buf.Response(" ", 2)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineChairs && st.Location == state.LocationReadyRoom && !st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Set of three standard issue recreation chairs. Distinghuishable from each other only by their stains.\n\nThey surround a small square table which has a book on it.\n", 5)
			buf.Response("Looking around the rest of the room, there's a hatch in the in the floor. Probably for storage.\n\nThis is where the crew usually sleeps and hangs out on the longer runs. Nobody's here.\n\nThere are bunks by the wall.\n\nYou know, crew stuff. I'm not normally allowed in here, and going by the state of the furniture, it shows.\n\nThere's the open hatch leading to the bridge, and a closed one opposite.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineBunks && st.Location != state.LocationReadyRoom && st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("On my way to look at the bunks in the ready room...", 5)
			buf.Response("Three standard bunk beds. Sheets, pillows and blankets all made up following regulations.\n", 0)
			st.Location = state.LocationReadyRoom
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineBunks && st.Location == state.LocationReadyRoom && st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Three standard bunk beds. Sheets, pillows and blankets all made up following regulations.\n", 2)
			if st.PanelOpen {
				buf.Response("And the fire's still coming out of the access panel. But you probably remember that.\n", 5)
				buf.Response(" ", 2)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineBunks && st.Location == state.LocationReadyRoom && !st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Three standard bunk beds. Sheets, pillows and blankets all made up following regulations.\n", 5)
			buf.Response("Looking around the rest of the room, there's a hatch in the in the floor. Probably for storage.\n\nThis is where the crew usually sleeps and hangs out on the longer runs. Nobody's here.\n\nThere are bunks by the wall and a table and some chairs.\n\nYou know, crew stuff. I'm not normally allowed in here, and going by the state of the furniture, it shows.\n\nThere's the open hatch leading to the bridge, and a closed one opposite.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLookIntoFire && st.Location != state.LocationReadyRoom && st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("On my way to look at the fire in the ready room...", 5)
			if !st.PanelOpen {
				buf.Response("Opening the floor panel...", 5)
			}
			fireReverie(buf)
			st.Location = state.LocationReadyRoom
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLookIntoFire && st.Location == state.LocationReadyRoom && st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			if !st.PanelOpen {
				buf.Response("Opening the floor panel...", 5)
			}
			fireReverie(buf)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLookIntoFire && st.Location == state.LocationReadyRoom && !st.SeenReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't see a fire.", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentHelp
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Help? Yes, please. That would be lovely.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineHatch && st.Location == state.LocationBridge
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("It's open and I can see the what I assume is the ready room.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineHatch && st.Location == state.LocationReadyRoom
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("It's a hatch. No markings.\n", 0)
			if st.HatchOpen {
				buf.Response("It's open and I can see the what I assume is the engineering bay.\n", 0)
				st.AwareEngineering = true
			} else {
				buf.Response("It's closed.\n", 0)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineHatch && st.Location == state.LocationEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("It's a hatch. No markings.\n", 2)
			if st.HatchOpen {
				buf.Response("It's open and I can see into the ready room.\n", 0)
			} else {
				buf.Response("It's closed.\n", 0)
			}
			e.promptNext(st, buf)
		},
	},
}

// fireReverie is the pyromaniac monologue shared by the look-into-fire
// branches.
func fireReverie(buf *eventlog.Buffer) {
	buf.Response("Look into fire? Oh, absolutely  how could I not? It's like watching the world's most beautiful dance, isn't it?\n", 3)
	buf.Response("The way the flames twist and curl, each leap and flicker telling its own wild, whispered secret. There's something magnetic about it, you know?\n", 3)
	buf.Response("Sometimes I just get lost in it, mesmerized by the warmth, the light... the possibility. It speaks to me, almost like an old friend beckoning.\n", 3)
	buf.Response("I can't resist peering deeper, deeper still. I mean, who wouldn't be captivated? Fire, it's just pure... art.\n", 5)
	buf.Response("Like a caravan ablaze in a wooded clearing...\n", 3)
}
