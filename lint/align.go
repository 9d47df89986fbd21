package lint

import (
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/midilint/event"
	"github.com/jsphweid/midilint/util"
)

// Align quantizes the delta time of every note event to the grid of
// pulsesPerBeat/precision ticks. Because deltas are relative, rounding
// one in isolation would push every later event off by the rounding
// error; the signed error is instead carried into the next note's
// delta, so drift never compounds past half a grid unit and the track
// keeps its length. Non-note events are not part of the grid: their
// deltas stay as authored and they do not touch the carry.
//
// All validation happens before any mutation, so a failed call leaves
// the stream untouched.
func Align(s *smf.SMF, precision int) error {
	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return &InvalidGridError{Precision: precision, Reason: "time format is not metric"}
	}
	ppb := int(mt.Resolution())
	if !util.IsPowerOfTwo(ppb) {
		return &InvalidGridError{PulsesPerBeat: ppb, Precision: precision, Reason: "pulses per beat is not a power of 2"}
	}
	if !util.IsPowerOfTwo(precision) {
		return &InvalidGridError{PulsesPerBeat: ppb, Precision: precision, Reason: "precision is not a power of 2"}
	}
	if precision > ppb {
		return &InvalidGridError{PulsesPerBeat: ppb, Precision: precision, Reason: "precision exceeds pulses per beat"}
	}

	tick := int64(ppb / precision)
	for i := range s.Tracks {
		// carried rounding error, strictly per track
		var shift int64
		for j := range s.Tracks[i] {
			ev := &s.Tracks[i][j]
			if event.KindOf(ev.Message) == event.Other {
				continue
			}
			original := int64(ev.Delta) + shift
			quantized := tick * divRoundHalfEven(original, tick)
			ev.Delta = uint32(quantized)
			shift = original - quantized
		}
	}
	return nil
}

// divRoundHalfEven returns round(num/div) with exact halves going to
// the even quotient. div must be positive.
func divRoundHalfEven(num, div int64) int64 {
	quo, rem := num/div, num%div
	if rem < 0 {
		quo--
		rem += div
	}
	switch {
	case 2*rem < div:
		return quo
	case 2*rem > div:
		return quo + 1
	case quo%2 == 0:
		return quo
	default:
		return quo + 1
	}
}
