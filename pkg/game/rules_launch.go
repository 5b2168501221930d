package game

import (
	"context"

	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// launchRules covers hatch navigation by name, saving, the launch sequence
// and its without-OSCAR variant, and the loading handshake.
var launchRules = []rule{
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentThroughHatch && st.Location == state.LocationBridge
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("On my way...\n", 3)
			st.Location = state.LocationReadyRoom
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentThroughHatch && st.Location == state.LocationReadyRoom && st.BeenEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Two hatches in here. For clarity, please say 'Go through bridge hatch' or 'Go through engineering hatch'.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentThroughHatch && st.Location == state.LocationReadyRoom && !st.BeenEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Two hatches in here. For clarity, please say 'Go through Bridge hatch' or 'Go through other hatch'.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentThroughHatch
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("One moment...\n", 3)
			buf.Response("Here.", 3)
			st.Location = state.LocationReadyRoom
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentBridgeHatch && st.Location == state.LocationBridge
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("On my way...\n", 3)
			st.Location = state.LocationReadyRoom
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentBridgeHatch
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Ok, heading back to the bridge.", 3)
			st.Location = state.LocationBridge
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentEngineeringHatch &&
				(st.Location == state.LocationEngineering || st.Location == state.LocationEscapePod)
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("On my way...\n", 3)
			st.Location = state.LocationReadyRoom
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentEngineeringHatch
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Ok, heading back to engineering.", 3)
			st.Location = state.LocationEngineering
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOtherHatch && st.Location == state.LocationReadyRoom && !st.BeenEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't know what's through there. Wish me luck...\n", 3)
			if !st.HatchOpen {
				buf.Response("Opening the hatch...\n", 1)
			}
			st.Location = state.LocationEngineering
			st.SeenEngineering = true
			st.HatchOpen = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOtherHatch && st.Location == state.LocationReadyRoom && st.BeenEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Heading to engineering...\n", 3)
			if !st.HatchOpen {
				buf.Response("Opening the hatch...", 1)
			}
			st.Location = state.LocationEngineering
			st.HatchOpen = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentSave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			e.Save(ctx, st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLaunch && st.Location != state.LocationEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Hang on. I don't think I can do that from here.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLaunch && st.Location == state.LocationEscapePod &&
				st.DaveLocation != state.LocationEscapePod && !st.SeenDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("What about the life form? That's the whole point of the mission.\n", 3)
			buf.Response("I can't initiate launch until they're here in the escape pod.\n", 3)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLaunch && st.Location == state.LocationEscapePod &&
				st.DaveLocation != state.LocationEscapePod && !st.HasDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Nice of you to save me, but I think you've forgotten DAVE.\n", 3)
			buf.Response("I can't initiate launch until they're here in the escape pod.\n", 3)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLaunch && st.Location == state.LocationEscapePod &&
				st.DaveLocation != state.LocationEscapePod &&
				st.OscarLocation == state.LocationEscapePod && st.HasDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I'm strapped in. DAVE squirmed a bit when I put him down to strap him in. Initiating launch...\n", 3)
			buf.Response("Now.\n", 3)
			buf.Response("And we're clear.\n", 3)
			e.completeLaunch(ctx, st, buf, 0)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLaunch && st.Location == state.LocationEscapePod &&
				(st.DaveLocation == state.LocationEscapePod || st.HasDave) &&
				st.OscarLocation == state.LocationEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I'm strapped in. DAVE is ready. Initiating launch...\n", 3)
			buf.Response("Now.\n", 3)
			buf.Response("And we're clear.\n", 3)
			e.completeLaunch(ctx, st, buf, 0)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLaunch && st.Location == state.LocationEscapePod &&
				(st.DaveLocation == state.LocationEscapePod || st.HasDave) &&
				st.OscarLocation != state.LocationEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> WOAH there. Just hold on a minute. What about your new buddy, OSCAR?\n", 0)
			buf.Response("OSCAR >> I STRONGLY advise you press the TRANSFER SHIP'S COMPUTER button first.\n\n", 0)
			buf.Response("Well this is awkward. And he might have a point.\n", 2)
			buf.Response("So let's be clear. If you really want to launch without OSCAR, and aren't bothered by why this might be a bad idea, you must explicitly order me to \"LAUNCH ESCAPE POD WITHOUT OSCAR\"\n", 3)
			buf.Response("Up to you. I just work here.\n\n", 1)
			buf.Response("OSCAR >> I'm warning you. You don't know what will happen if you don't press the TRANSFER SHIP'S COMPUTER button first.\n\n", 0)
			st.SeenOscar = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExitPod && st.Location == state.LocationEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I must say, I prefer being in here, but ok.\n", 3)
			st.Location = state.LocationEngineering
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExitPod && st.Location != state.LocationEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I'm not in the escape pod.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentMission
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Like I said: smoke, emergency, not programmed for search and rescue.\n", 3)
			buf.Response("Consider me your eyes, ears and machine-tooled appendages.\n", 3)
			buf.Response("We have a life form onboard and we're going to save it.\n", 3)
			if st.SeenDave {
				buf.Response("DAVE is counting on us and the Royal Agricultural Society will be overjoyed. So let's get a move on!\n", 3)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLaunchWithoutOscar && st.OscarLocation == state.LocationEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR's already been transferred to the pod. I don't know how to transfer him back, and can't think of a reason to do so, so it looks like he's coming with us.\n\nSo do you just want to say LAUNCH?", 3)
			if st.DaveLocation != state.LocationEscapePod && !st.HasDave {
				buf.Response("I think you've forgotten someone.\n", 3)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLaunchWithoutOscar && st.OscarLocation != state.LocationEscapePod &&
				(st.DaveLocation == state.LocationEscapePod || st.HasDave) &&
				st.Location == state.LocationEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't know what you have against OSCAR, but he's not essential to the rescue, so...\n", 3)
			buf.Response("I'm strapped in. DAVE is ready. Initiating launch...\n", 3)
			buf.Response("Now.\n", 3)
			buf.Response("And we're clear.\n", 3)
			e.completeLaunch(ctx, st, buf, 1)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLaunchWithoutOscar && st.OscarLocation != state.LocationEscapePod &&
				(st.DaveLocation == state.LocationEscapePod || st.HasDave) &&
				st.Location != state.LocationEscapePod
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't know what you have against OSCAR, but he's not essential to the rescue, so I'll head over there now.\n", 5)
			buf.Response("I'm strapped in. DAVE is ready. Initiating launch...\n", 3)
			buf.Response("Now.\n", 3)
			buf.Response("And we're clear.\n", 3)
			e.completeLaunch(ctx, st, buf, 0)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLaunchWithoutOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			if st.DaveLocation != state.LocationEscapePod && !st.HasDave {
				buf.Response("I think you've forgotten someone.\n", 3)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentTakeDaveToPod && st.HasDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Ok. I'm standing here with DAVE.\n", 3)
			st.Location = state.LocationEscapePod
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentTakeDaveToPod && !st.HasDave
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I do not have this DAVE of which you speak.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentUnmarkedHatch && st.Location == state.LocationReadyRoom && !st.BeenEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("I don't know what's through there. Wish me luck...\n", 3)
			if !st.HatchOpen {
				buf.Response("Opening the hatch...\n", 1)
			}
			st.Location = state.LocationEngineering
			st.SeenEngineering = true
			st.HatchOpen = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentUnmarkedHatch && st.Location == state.LocationReadyRoom && st.BeenEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Heading to engineering...\n", 3)
			if !st.HatchOpen {
				buf.Response("Opening the hatch...", 1)
			}
			st.Location = state.LocationEngineering
			st.HatchOpen = true
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineLights && st.Location == state.LocationEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Pretty. No idea what they mean, but pretty.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentExamineLights && st.Location != state.LocationEngineering && st.SeenEngineering
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("You mean the ones in the Engineering Bay?  I'll go and take a look.\n", 4)
			buf.Response("Pretty. No idea what they mean, but pretty.\n", 1)
			st.Location = state.LocationEngineering
			e.promptNext(st, buf)
		},
	},
	{
		// The load handshake ends the turn without a scene prompt; the next
		// utterance is consumed as a passphrase, not a command.
		when: func(st *state.ShipState, code string) bool {
			return code == IntentLoad
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Load("fubar", 0)
			buf.Response("Ok then. I need your three word code phrase.\n", 0)
		},
	},
}
