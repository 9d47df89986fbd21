package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestNormalizeSetsEveryNoteVelocity(t *testing.T) {
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(4, midi.NoteOffVelocity(0, 60, 30))
	tr.Add(0, midi.NoteOn(1, 64, 1))
	tr.Add(4, midi.NoteOff(1, 64))
	tr.Close(0)
	s := newSMF(960, tr)

	Normalize(s, 64)

	assert := assert.New(t)
	assert.Equal([]uint8{64, 64, 64, 64}, noteVelocities(s.Tracks[0]))
	// status bytes and keys survive the rewrite
	var channel, key, velocity uint8
	assert.True(s.Tracks[0][1].Message.GetNoteOff(&channel, &key, &velocity))
	assert.Equal(uint8(0), channel)
	assert.Equal(uint8(60), key)
	assert.Equal([]uint8{60, 60, 64, 64}, noteKeys(s.Tracks[0]))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	s := newSMF(960, noteTrack(0, 3, 1, 7))
	Normalize(s, 80)
	velocities := noteVelocities(s.Tracks[0])
	deltas := noteDeltas(s.Tracks[0])
	keys := noteKeys(s.Tracks[0])

	Normalize(s, 80)

	assert := assert.New(t)
	assert.Equal(velocities, noteVelocities(s.Tracks[0]))
	assert.Equal(deltas, noteDeltas(s.Tracks[0]))
	assert.Equal(keys, noteKeys(s.Tracks[0]))
}

func TestNormalizeLeavesOtherEventsAlone(t *testing.T) {
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(2, smf.MetaText("hello"))
	tr.Close(0)
	s := newSMF(960, tr)
	before := make(smf.Track, len(s.Tracks[0]))
	copy(before, s.Tracks[0])

	Normalize(s, 64)

	assert.Equal(t, before, s.Tracks[0])
}

func TestNormalizeDoesNotTouchTiming(t *testing.T) {
	s := newSMF(960, noteTrack(0, 3, 1, 7))
	Normalize(s, 64)
	assert.Equal(t, []uint32{0, 3, 1, 7}, noteDeltas(s.Tracks[0]))
}
