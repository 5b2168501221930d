package game

import (
	"context"

	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// stationRules covers the engineering workstation, the computer transfer and
// everything to do with DAVE.
var stationRules = []rule{
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentReadScreen && st.Location != state.LocationEngineering &&
				st.SeenEngineering && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("That's all the way over in Engineering.\n\nGoing there now.", 5)
			buf.Response("Done. The screen is updating...\n\nOSCAR >> Oh good, you're back. If you want to speak to me. remember that you need to start your input with my name. OSCAR.", 0)
			st.Location = state.LocationEngineering
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentReadScreen && st.Location != state.LocationEngineering &&
				st.SeenEngineering && !st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("That's all the way over in Engineering.\n\nGoing there now.", 5)
			buf.Response("Done. The screen is updating...\n\nOSCAR >> Well you took your time. I need you to take me and the lifeform off the shuttle. To speak to me, you'll need to start your voice input with my name, 'OSCAR'. That way we know you're not talking to the Cleanerbot. Otherwise just give a command as normal and they'll do what you want them to do.\n\n\n", 0)
			st.Location = state.LocationEngineering
			st.SeenOscar = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentReadScreen && st.Location != state.LocationEngineering &&
				(!st.SeenEngineering || !st.AwareEngineering)
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't know where that is.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentReadScreen && st.Location == state.LocationEngineering &&
				st.SeenEngineering && !st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("The screen is updating...\n\n", 3)
			buf.Response("OSCAR >> Well you took your time. I need you to take me and the lifeform off the shuttle. To speak to me, you'll need to start your voice input with my name, 'OSCAR'. That way we know you're not talking to the Cleanerbot. Otherwise just give a command as normal and they'll do what you want them to do.\n\n\n", 0)
			st.SeenOscar = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentReadScreen && st.Location == state.LocationEngineering && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("The screen is updating...\n\nOSCAR >> I need you to take me and the lifeform off the shuttle. To speak to me, you'll need to start your voice input with my name.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentTransferComputer && st.Location == state.LocationEscapePod &&
				st.SeenOscar && st.OscarLocation != state.LocationEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Pressing the button...now.\n\n", 2)
			buf.Response("OSCAR >> Transfer initiated. I can feel myself going...\n", 0)
			buf.Response("OSCAR >> Dai-sy, Daiiii-syyyy...Just kidding. I was there inside a nanosecond. I've just always wanted to say that. \n", 0)
			st.OscarLocation = state.LocationEscapePod
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentTransferComputer && st.Location == state.LocationEscapePod &&
				st.SeenOscar && st.OscarLocation == state.LocationEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("You asked me to do that earlier. He's already transferred to the pod.\n\n", 2)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOpenScreen && st.Location == state.LocationEngineering &&
				st.SeenEngineering && !st.SeenDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Well, that was a bit scary. I pressed a button next to the screen and leapt back as, hinged along its left edge, it sprang open like a small door. \n", 8)
			buf.Response("A tangle of tendrills pushed the door open, extending into the room towards the floor -but having done so, they seem inanimate. \n", 8)
			buf.Response("Peering into the small compartment behind this screen door I see a greenish-brown lump, about the size of a fist. The rest of the small compartment is full of tendrills, all extending from the lump.\n", 15)
			buf.Response("OSCAR >> Oh don't mind DAVE. He's only slightly sentient, and apart from the smell, quite harmless.\n", 0)
			st.SeenDave = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOpenScreen && st.Location == state.LocationEngineering && st.SeenDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("The screen (or oven door?) seems wedged open.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentTouchDave && st.Location == state.LocationEngineering && st.SeenDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I gave DAVE a bit of a poke. I'm not sure whether the tendrils moved because of this, or just because I brushed past them.\n", 3)
			buf.Response("OSCAR >> Although never formally introduced, I've known him a long time. Ever since he was a wee potato, abandoned when the rest of the crew took the other escape pod. It's taken quite a while, but the ship's systems now detect him as a lifeform, and so here you are to the rescue. Admittedly, he doesn't say much. Perhaps he's sleeping.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentRescueOscarHow && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Well that's rather an interesting one, isn't it? OSCAR's tasked us with his own rescue but the workstation is built into the wall of the ship.\n", 3)
			buf.Response("So one has to wonder, that as a non-physical entity, what *is* OSCAR? Who is OSCAR? If we prick him, will he not bleed?...\n\nOk, probably not, but how do we rescue him? Perhaps you should ask him.\n", 3)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentTakeDave && st.Location == state.LocationEngineering &&
				st.SeenDave && !st.HasDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Lucky for you this isn't the ickiest thing I've dealt with.\n", 2)
			buf.Response("You should hear the stories about when Bulgaria won Eurovision.\n", 2)
			buf.Response("Anyway, with a bit of gentle tugging and minimal squishiness, I'm now carrying DAVE.\n", 5)
			buf.Response("OSCAR >> Mind you don't trip on his tendrils!!!\n", 0)
			st.AddItem(state.ItemDave)
			st.HasDave = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentTakeDave && st.Location == st.DaveLocation &&
				st.Location != state.LocationEngineering && !st.HasDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Together again. I've got DAVE right here and I'm platting his tendrils into something a little tidier.\n", 3)
			buf.Response("No update on the smell.\n", 3)
			st.AddItem(state.ItemDave)
			st.HasDave = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentTakeDave && st.DaveLocation != st.Location && !st.HasDave && st.SeenDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't see him in here.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentTakeDave && st.HasDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I'm already carrying DAVE.\n", 3)
			buf.Response("Ok, a bit of him fell off when I picked him up, but he's fine.\n", 3)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentFluids
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I think we should leave my fluids out of this. We have a daring rescue to perform.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentProfanity
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't much care for that kind of language, and it's not helping the rescue.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentDropDave && st.Location == state.LocationReadyRoom && st.HasDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Ok, Dave is on the table.\n", 0)
			dropDave(st, state.LocationReadyRoom)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentDropDave && st.Location == state.LocationEngineering && st.HasDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Done. DAVE is back in his compartment / microwave.\n", 0)
			dropDave(st, state.LocationEngineering)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentDropDave && st.Location == state.LocationEscapePod && st.HasDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("DAVE is buckled in.\n", 2)
			buf.Response("He seems relieved.\n", 2)
			buf.Response("Perhaps it's time to go.\n", 2)
			dropDave(st, state.LocationEscapePod)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentDropDave && st.Location == state.LocationBridge && st.HasDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("DAVE is on the bridge. Not sure what this achieves.\n", 0)
			dropDave(st, state.LocationBridge)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentDropDave && st.SeenDave && !st.HasDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Sorry, I don't have DAVE with me.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentDropTools
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("My cleaning equipment and fluids are part of me.  We shall not be separated.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOtherLifeforms && !st.SeenDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't know. Sensors indicate only one lifesign.\n", 3)
			buf.Response("Not to worry. I'm sure they'll turn up. This is a search and rescue, after all.\n", 3)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOtherLifeforms && st.SeenDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Well the sensors show one lifesign, and we've met DAVE so I think he's it.\n", 3)
			buf.Response("And don't come at me with your anti-potato rhetoric. I've heard it all before. One tiny nuclear exchange and you meatsuits get everso small minded.\n", 3)
			buf.Response("Sensors have him as a life form, and regulations make him our mission.\n", 3)
			e.promptNext(st, buf)
		},
	},
}

func dropDave(st *state.ShipState, room string) {
	st.RemoveItem(state.ItemDave)
	st.HasDave = false
	st.DaveLocation = room
}
