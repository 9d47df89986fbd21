package theory

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKey(t *testing.T) {
	assert := assert.New(t)

	key, err := ParseKey("c_major")
	assert.NoError(err)
	assert.Equal(NoteClass(0), key.Tonic)
	assert.Equal(Major, key.Mode)

	key, err = ParseKey("fs_dorian")
	assert.NoError(err)
	assert.Equal(NoteClass(6), key.Tonic)

	// flats parse to their sharp spelling
	key, err = ParseKey("bb_major")
	assert.NoError(err)
	assert.Equal(NoteClass(10), key.Tonic)
	assert.Equal("as_major", key.String())
}

func TestParseKeyRejectsGarbage(t *testing.T) {
	assert := assert.New(t)
	for _, name := range []string{"", "c", "c_klingon", "h_major", "c_major_7"} {
		_, err := ParseKey(name)
		assert.Error(err, "name: %v", name)
	}
}

func TestKeyNotes(t *testing.T) {
	assert := assert.New(t)

	key, _ := ParseKey("c_major")
	assert.Equal([]NoteClass{0, 2, 4, 5, 7, 9, 11}, key.Notes())

	key, _ = ParseKey("a_minor")
	assert.Equal([]NoteClass{9, 11, 0, 2, 4, 5, 7}, key.Notes())
}

func TestRelativeKeysShareTheirPitches(t *testing.T) {
	major, _ := ParseKey("c_major")
	minor, _ := ParseKey("a_minor")
	assert.Equal(t, major.Pitches(), minor.Pitches())
}

func TestNoteClassPitchesCoverEveryOctave(t *testing.T) {
	assert := assert.New(t)

	c := NoteClass(0).Pitches()
	assert.Len(c, 11)
	assert.Equal(uint8(0), c[0])
	assert.Equal(uint8(120), c[len(c)-1])

	b := NoteClass(11).Pitches()
	assert.Len(b, 10)
	assert.Equal(uint8(119), b[len(b)-1])
}

func TestKeyPitchesAreAllInRange(t *testing.T) {
	assert := assert.New(t)
	key, _ := ParseKey("e_phrygian")
	pitches := key.Pitches()
	assert.NotEmpty(pitches)
	for _, p := range pitches.Sorted() {
		assert.LessOrEqual(p, uint8(127))
		assert.Contains([]NoteClass{4, 5, 7, 9, 11, 0, 2}, NoteClass(p%12))
	}
}

func TestKeyNames(t *testing.T) {
	assert := assert.New(t)
	names := KeyNames()
	// 12 tonics x 9 mode names
	assert.Len(names, 108)
	assert.True(sort.StringsAreSorted(names))
	assert.Contains(names, "c_major")
	assert.Contains(names, "gs_locrian")
}

func TestPitchSetSortedIsDeterministic(t *testing.T) {
	assert := assert.New(t)
	set := NewPitchSet(7, 0, 4)
	assert.Equal([]uint8{0, 4, 7}, set.Sorted())
	assert.Equal(set.Sorted(), set.Sorted())
	assert.True(set.Contains(4))
	assert.False(set.Contains(5))
}
