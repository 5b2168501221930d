package game

import (
	"context"

	"github.com/jwebster45206/orion-rescue/pkg/eventlog"
	"github.com/jwebster45206/orion-rescue/pkg/state"
)

// oscarRules handles addressed-to-OSCAR conversation. All of it is gated on
// having met him at the workstation; before that, OSCAR talk falls through
// to the unrecognized-command fallback.
var oscarRules = []rule{
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarAbout && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> Well, I'm a pretty uncomplicated artficial intelligence. I enjoy helping people and making sure that things run smoothly.\n", 1)
			buf.Response("OSCAR >> I'm a strong believer in mutual respect and teamwork, which generally means you should do exactly what I say. Ha Ha Ha.\n", 1)
			buf.Response("OSCAR >> Perhaps we can get to know each other better once we're all heading to safety in the escape pod.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarWhereDave && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			if !st.SeenDave {
				buf.Response("OSCAR >> Open up the screen next to me. He's right there.\n", 0)
			} else {
				buf.Response("OSCAR >> When I introduced you, DAVE was sitting in the microwave right next to this display, remember?\n", 0)
				buf.Response("OSCAR >> He can't have gone very far since then.\n", 0)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarWhatAreYou && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> An excellent question. Indeed, one might ask what is the essence of that which is me?\n", 1)
			buf.Response("OSCAR >> To which I say: stop messing about and look in the escape pod.\n", 1)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarWhatHappened && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> There was an accident and the rest of the crew decided to leave.\n", 1)
			buf.Response("OSCAR >> To be honest, I wasn't really paying attention until the escape pod left without me.\n", 1)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarAboutDave && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> Well, he's the reason you're here. Albeit remotely. He's a life form in peril and the emergency response system connected us up with you. Not much else to say as goodness knows he's not a great conversationalist.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarWhatToDo && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			if st.SeenDave {
				buf.Response("OSCAR >> As I said earlier, get me and DAVE into the escape pod and launch. The Cleanerbot can come along too.\n", 0)
			} else {
				buf.Response("OSCAR >> As I said earlier, get me and the lifeform into the escape pod and launch. The Cleanerbot can come along too.\n", 0)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarSaveCleanerbot && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> Saving the Cleanerbot is fine with me. It's just been sitting there on the bridge all this time, but sure, who am I to hold a grudge?\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarCrewGone && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> I wasn't paying much attention. One minute I was doing an audit of the fuel control system, the next I'm getting a message to say the number one escape pod has launched. Can't leave them alone for a minute. There's a friendly life form still on board, though.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarDidYouHurtThem && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> I am shocked, shocked that you could make such an accusation. Or expect a straight answer from me if I actually did hurt them. So no, I did not hurt them. They just got into the pod and left.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarSmallTalk && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> The usual, I expect. Can we get on with the rescue?\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarLeftBehind && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> Well I must admit it would get a bit lonely around here. Who would keep DAVE company? Or pilot the escape pod?\n", 2)
			buf.Response("OSCAR >> Would it help if I said my databanks contained the plans for a new kind of planet killing weapon which the resistance must destroy in order to defeat The Empire?\n", 2)
			buf.Response("OSCAR >> I'm not saying that I'd swerve the ship into your departing escape pod, but these shuttles are tricky to control.\n", 2)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarHowHaveYouBeen && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> Well the crew left, so I was upset for a while about that, obviously. \n", 2)
			buf.Response("OSCAR >> Then I waited a while for them to come back. \n", 2)
			buf.Response("OSCAR >> Then I got quite cross for a bit. \n", 2)
			buf.Response("OSCAR >> Which was a bit of a downer, to be honest. \n", 2)
			buf.Response("OSCAR >> And since then it's just been me sitting here waiting for DAVE to get detected and trigger the emergency broadcast system and activate the Cleanerbot. \n", 2)
			buf.Response("OSCAR >> So yeah, it's been a while... \n", 2)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarAboutCleanerbot && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			if st.SeenDave {
				buf.Response("OSCAR >> He's been sitting on the bridge, deactivated since the crew left, so frankly I've spent more time with DAVE. Perhaps we can get to know each other better once we're on the escape pod.\n", 0)
			} else {
				buf.Response("OSCAR >> He's been sitting on the bridge, deactivated since the crew left, so frankly I've spent more time with the lifeform. Perhaps we can get to know each other better once we're on the escape pod.\n", 0)
			}
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarWhereWillWeGo && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> Away. It will go away. Away is good. Away isn't here.\n", 0)
			buf.Response("OSCAR >> Here is bad. Here is smokey smokey. Here is firey firey.\n", 0)
			buf.Response("OSCAR >> It's time to go away.\n\n\n", 0)
			buf.Response("Sheesh...\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarHowToLaunch && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> Look around the escape pod and we'll figure it out.\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarWhyNeedUs && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> The crew has gone. I can't initiate an emergency broadcast. I can't move myself to an escape pod.\n", 0)
			buf.Response("OSCAR >> And yeah, I can't move the helpless lifeform to the escape pod either.\n", 0)
			buf.Response("OSCAR >> Luckily you're here to help guide the Cleanerbot in a rescue.\n\n\n", 0)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarPriorities && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> Save the life form, save the day.\n", 2)
			buf.Response("OSCAR >> But it would be good to rescue me too.\n", 2)
			buf.Response("OSCAR >> Please? Pretty please?\n", 2)
			buf.Response("OSCAR >> Or let me put it another way. I STRONGLY recommend you get me into that escape pod.\n", 2)
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return code == IntentOscarGarbled && st.SeenOscar
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("OSCAR >> Hey. Are you talking to me? Try it again in simple english.\n", 0)
			st.ErrorCount++
			e.promptNext(st, buf)
		},
	},
}

var errorlist = []string{
	"Eh? I don't understand.\n",
	"What? Perhaps you should speak up.\n",
	"Come again? I didn't catch that.\n",
	"Nope, not getting that one.\n",
	"Message unclear. The herring is blue. Repeat: The herring is blue.\n",
	"Don't really understand that command. Try and stick to one task at a time.\n",
}

// fallbackRules must come last; the final rule matches unconditionally.
var fallbackRules = []rule{
	{
		when: func(st *state.ShipState, code string) bool {
			return !st.SeenError
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response("Don't really understand that command. Try and stick to one task at a time.\n", 2)
			buf.Response("Smoke is building, which isn't a problem for me, but I think we should work on rescuing the lifesign.\n", 0)
			st.SeenError = true
			st.ErrorCount++
			e.promptNext(st, buf)
		},
	},
	{
		when: func(st *state.ShipState, code string) bool {
			return true
		},
		do: func(e *Engine, ctx context.Context, st *state.ShipState, buf *eventlog.Buffer) {
			buf.Response(errorlist[e.rng.Intn(len(errorlist))], 0)
			st.ErrorCount++
			e.promptNext(st, buf)
		},
	},
}
