package lint

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/midilint/event"
	"github.com/jsphweid/midilint/theory"
	"github.com/jsphweid/midilint/util"
)

// Strategy decides where an out-of-key pitch lands. The set is closed:
// Up, Down and Nearest are the only implementations.
type Strategy interface {
	Name() string
	Correct(pitch uint8, allowed theory.PitchSet) uint8
}

var (
	Up      Strategy = shiftUp{}
	Down    Strategy = shiftDown{}
	Nearest Strategy = shiftNearest{}
)

func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "nearest":
		return Nearest, nil
	}
	return nil, fmt.Errorf("unknown strategy: %v (want up, down or nearest)", name)
}

// CorrectPitch snaps the pitch of every note event into allowed using
// the strategy. Timing, velocity and channel are untouched. Fails
// before any mutation if allowed is empty.
func CorrectPitch(s *smf.SMF, allowed theory.PitchSet, strategy Strategy) error {
	if len(allowed) == 0 {
		return &EmptyKeyError{}
	}
	for i := range s.Tracks {
		for j := range s.Tracks[i] {
			ev := &s.Tracks[i][j]
			_, key, _, ok := event.Note(ev.Message)
			if !ok {
				continue
			}
			ev.Message = event.WithKey(ev.Message, strategy.Correct(key, allowed))
		}
	}
	return nil
}

// shiftUp raises the pitch until it is in the key, reversing to lower
// it only when 127 is reached without a match.
type shiftUp struct{}

func (shiftUp) Name() string { return "up" }

func (shiftUp) Correct(pitch uint8, allowed theory.PitchSet) uint8 {
	for pitch < 127 && !allowed.Contains(pitch) {
		pitch++
	}
	for pitch > 0 && !allowed.Contains(pitch) {
		pitch--
	}
	return pitch
}

// shiftDown is the mirror image: floor toward 0 first.
type shiftDown struct{}

func (shiftDown) Name() string { return "down" }

func (shiftDown) Correct(pitch uint8, allowed theory.PitchSet) uint8 {
	for pitch > 0 && !allowed.Contains(pitch) {
		pitch--
	}
	for pitch < 127 && !allowed.Contains(pitch) {
		pitch++
	}
	return pitch
}

// shiftNearest picks the in-key pitch with the smallest absolute
// distance. Candidates are visited ascending with a strict
// less-than, so the lower pitch wins ties.
type shiftNearest struct{}

func (shiftNearest) Name() string { return "nearest" }

func (shiftNearest) Correct(pitch uint8, allowed theory.PitchSet) uint8 {
	best := pitch
	bestDist := uint8(255)
	for _, candidate := range allowed.Sorted() {
		if d := util.AbsDiff(candidate, pitch); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}
