package lint

import (
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/midilint/theory"
)

// Pipeline is a selection of the three transforms. Steps left nil are
// skipped; the rest run in the order normalize, align, correct-pitch.
type Pipeline struct {
	Velocity  *uint8
	Precision *int
	Allowed   theory.PitchSet
	Strategy  Strategy
}

func (p Pipeline) Empty() bool {
	return p.Velocity == nil && p.Precision == nil && p.Allowed == nil
}

// Apply runs the configured transforms on s in place. The strategy
// defaults to Nearest when a key is set without one.
func (p Pipeline) Apply(s *smf.SMF) error {
	if p.Velocity != nil {
		Normalize(s, *p.Velocity)
	}
	if p.Precision != nil {
		if err := Align(s, *p.Precision); err != nil {
			return err
		}
	}
	if p.Allowed != nil {
		strategy := p.Strategy
		if strategy == nil {
			strategy = Nearest
		}
		if err := CorrectPitch(s, p.Allowed, strategy); err != nil {
			return err
		}
	}
	return nil
}
