package eventlog

import "time"

// The scripted distress call every fresh session opens with. Entries are
// backdated relative to session start so the client plays them immediately on
// its first poll.
var openingScript = []struct {
	text   string
	delay  float64
	offset time.Duration
}{
	{">> INCOMING DISTRESS SIGNAL", 0.3, -30 * time.Second},
	{">> HELLO? CAN YOU HEAR ME? This is CLEANERBOT27 of the shuttle craft ORION.", 0.3, -27 * time.Second},
	{">> There are klaxons and flashing lights which suggest that there is a severe problem. The smoke is a bit of a give away too.", 0.5, -22 * time.Second},
	{">> We have one lifesign onboard but I cannot get a response on the local intercom.", 0.3, -19 * time.Second},
	{">> I am not programmed for search and rescue. Please tell me what to do.\n", 0.3, -16 * time.Second},
	{">> Tap the [SEND COMMAND] button to record and send a brief (max. 5 second) voice command.\n\n", 0.1, -15 * time.Second},
}

// Opening returns the scripted distress-signal entries for a session created
// at start.
func Opening(start time.Time) []Entry {
	entries := make([]Entry, 0, len(openingScript))
	for _, line := range openingScript {
		entries = append(entries, Entry{
			Text:      line.text,
			Delay:     line.delay,
			Channel:   ChannelSpecial,
			Timestamp: start.Add(line.offset),
		})
	}
	return entries
}
