package eventlog

import (
	"time"
)

// Channel tags an entry with the voice it belongs to, so the client can style
// and route it (the special system alert voice, OSCAR's voice, and so on).
type Channel string

const (
	ChannelResponse Channel = "response"
	ChannelSpecial  Channel = "special"
	ChannelOscar    Channel = "oscar"
	ChannelGoodbye  Channel = "goodbye"
	ChannelLoad     Channel = "load"
	ChannelDefault  Channel = "default"
)

// Entry is one outbound narrative line. Delay is a pacing hint in seconds for
// the client's text-to-speech playback. Timestamps increase strictly across a
// session's whole log, so "entries after time T" is well-defined.
type Entry struct {
	Text      string    `json:"text"`
	Delay     float64   `json:"delay"`
	Channel   Channel   `json:"channel"`
	Timestamp time.Time `json:"timestamp"`
}

// Buffer accumulates the entries of one turn before they are persisted to the
// session's log. It is not safe for concurrent use; a turn is single-threaded.
type Buffer struct {
	entries []Entry
	lastTS  time.Time
}

// NewBuffer returns an empty turn buffer. Timestamps are assigned after
// last, so a buffer seeded with the previous drain position keeps the whole
// log strictly increasing.
func NewBuffer(last time.Time) *Buffer {
	return &Buffer{lastTS: last}
}

// Append adds an entry on the given channel with the current timestamp,
// bumped by a nanosecond when the clock has not advanced. It never fails.
func (b *Buffer) Append(text string, delay float64, ch Channel) {
	ts := time.Now()
	if !ts.After(b.lastTS) {
		ts = b.lastTS.Add(time.Nanosecond)
	}
	b.lastTS = ts
	b.entries = append(b.entries, Entry{
		Text:      text,
		Delay:     delay,
		Channel:   ch,
		Timestamp: ts,
	})
}

// Response appends on the narrator channel.
func (b *Buffer) Response(text string, delay float64) { b.Append(text, delay, ChannelResponse) }

// Special appends on the system alert channel.
func (b *Buffer) Special(text string, delay float64) { b.Append(text, delay, ChannelSpecial) }

// Oscar appends on OSCAR's channel.
func (b *Buffer) Oscar(text string, delay float64) { b.Append(text, delay, ChannelOscar) }

// Goodbye appends on the end-of-game channel.
func (b *Buffer) Goodbye(text string, delay float64) { b.Append(text, delay, ChannelGoodbye) }

// Load appends on the load-mode channel.
func (b *Buffer) Load(text string, delay float64) { b.Append(text, delay, ChannelLoad) }

// Default appends on the client control channel.
func (b *Buffer) Default(text string, delay float64) { b.Append(text, delay, ChannelDefault) }

// Entries returns the accumulated entries in append order.
func (b *Buffer) Entries() []Entry {
	return b.entries
}

// Len returns the number of accumulated entries.
func (b *Buffer) Len() int {
	return len(b.entries)
}
