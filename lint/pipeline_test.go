package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/midilint/theory"
)

func TestPipelineAppliesAllThreeTransforms(t *testing.T) {
	velocity := uint8(64)
	precision := 2
	key, _ := theory.ParseKey("c_major")
	pipeline := Pipeline{
		Velocity:  &velocity,
		Precision: &precision,
		Allowed:   key.Pitches(),
		Strategy:  Up,
	}

	s := newSMF(8, noteTrack(3, 3))
	err := pipeline.Apply(s)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]uint32{4, 0}, noteDeltas(s.Tracks[0]))
	assert.Equal([]uint8{64, 64}, noteVelocities(s.Tracks[0]))
	assert.Equal([]uint8{60, 60}, noteKeys(s.Tracks[0]))
}

func TestPipelineDefaultsToNearestStrategy(t *testing.T) {
	pipeline := Pipeline{Allowed: theory.NewPitchSet(59, 62)}

	s := newSMF(8, noteTrack(0, 2))

	assert := assert.New(t)
	assert.NoError(pipeline.Apply(s))
	// 60 is distance 1 from 59 and 2 from 62
	assert.Equal([]uint8{59, 59}, noteKeys(s.Tracks[0]))
}

func TestPipelinePropagatesAlignErrors(t *testing.T) {
	precision := 3
	pipeline := Pipeline{Precision: &precision}

	s := newSMF(8, noteTrack(3, 3))
	err := pipeline.Apply(s)

	var gridErr *InvalidGridError
	assert.ErrorAs(t, err, &gridErr)
}

func TestPipelineEmpty(t *testing.T) {
	assert := assert.New(t)
	assert.True(Pipeline{}.Empty())

	velocity := uint8(64)
	assert.False(Pipeline{Velocity: &velocity}.Empty())
}
