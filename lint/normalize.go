package lint

import (
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/midilint/event"
)

// Normalize sets the velocity of every note-on and note-off in every
// track to velocity. Velocity must be 0-127; that is the caller's
// contract and is not checked here. Applying it twice is the same as
// applying it once.
func Normalize(s *smf.SMF, velocity uint8) {
	for i := range s.Tracks {
		for j := range s.Tracks[i] {
			ev := &s.Tracks[i][j]
			ev.Message = event.WithVelocity(ev.Message, velocity)
		}
	}
}
