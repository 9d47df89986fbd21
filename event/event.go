package event

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Kind classifies a message by its wire status byte. A note-on with
// velocity 0 is still NoteOn here, even though players treat it as a
// release.
type Kind int

const (
	Other Kind = iota
	NoteOn
	NoteOff
)

func KindOf(msg smf.Message) Kind {
	switch {
	case msg.Is(midi.NoteOnMsg):
		return NoteOn
	case msg.Is(midi.NoteOffMsg):
		return NoteOff
	default:
		return Other
	}
}

// Note extracts channel, key and velocity from a note-on or note-off
// message. ok is false for everything else.
func Note(msg smf.Message) (channel, key, velocity uint8, ok bool) {
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		ok = true
	case msg.GetNoteOff(&channel, &key, &velocity):
		ok = true
	}
	return
}

// WithVelocity rebuilds a note message with its velocity replaced,
// keeping the status byte, channel and key. Non-note messages come
// back untouched.
func WithVelocity(msg smf.Message, velocity uint8) smf.Message {
	var channel, key, vel uint8
	switch {
	case msg.GetNoteOn(&channel, &key, &vel):
		return smf.Message(midi.NoteOn(channel, key, velocity))
	case msg.GetNoteOff(&channel, &key, &vel):
		return smf.Message(midi.NoteOffVelocity(channel, key, velocity))
	}
	return msg
}

// WithKey rebuilds a note message with its key replaced, keeping the
// status byte, channel and velocity. Non-note messages come back
// untouched.
func WithKey(msg smf.Message, key uint8) smf.Message {
	var channel, k, velocity uint8
	switch {
	case msg.GetNoteOn(&channel, &k, &velocity):
		return smf.Message(midi.NoteOn(channel, key, velocity))
	case msg.GetNoteOff(&channel, &k, &velocity):
		return smf.Message(midi.NoteOffVelocity(channel, key, velocity))
	}
	return msg
}
