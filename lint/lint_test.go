package lint

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/midilint/event"
)

// newSMF builds an in-memory stream with the given pulses per beat.
func newSMF(ppb uint16, tracks ...smf.Track) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ppb)
	for _, tr := range tracks {
		s.Add(tr)
	}
	return s
}

// noteTrack alternates note-on and note-off events on middle c with
// the given deltas, then closes the track.
func noteTrack(deltas ...uint32) smf.Track {
	var tr smf.Track
	for i, delta := range deltas {
		if i%2 == 0 {
			tr.Add(delta, midi.NoteOn(0, 60, 100))
		} else {
			tr.Add(delta, midi.NoteOff(0, 60))
		}
	}
	tr.Close(0)
	return tr
}

func noteDeltas(tr smf.Track) []uint32 {
	var res []uint32
	for _, ev := range tr {
		if event.KindOf(ev.Message) != event.Other {
			res = append(res, ev.Delta)
		}
	}
	return res
}

func noteKeys(tr smf.Track) []uint8 {
	var res []uint8
	for _, ev := range tr {
		if _, key, _, ok := event.Note(ev.Message); ok {
			res = append(res, key)
		}
	}
	return res
}

func noteVelocities(tr smf.Track) []uint8 {
	var res []uint8
	for _, ev := range tr {
		if _, _, vel, ok := event.Note(ev.Message); ok {
			res = append(res, vel)
		}
	}
	return res
}
