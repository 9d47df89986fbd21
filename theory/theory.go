package theory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/midilint/util"
)

// NoteClass is a pitch class 0-11, spelled with sharps (c, cs, d...).
type NoteClass uint8

var noteNames = [12]string{"c", "cs", "d", "ds", "e", "f", "fs", "g", "gs", "a", "as", "b"}

var flatNames = map[string]string{
	"db": "cs",
	"eb": "ds",
	"gb": "fs",
	"ab": "gs",
	"bb": "as",
}

func ParseNoteClass(name string) (NoteClass, error) {
	n := strings.ToLower(name)
	if sharp, ok := flatNames[n]; ok {
		n = sharp
	}
	for i, v := range noteNames {
		if v == n {
			return NoteClass(i), nil
		}
	}
	return 0, fmt.Errorf("unknown note class: %v", name)
}

func (n NoteClass) String() string {
	return noteNames[n%12]
}

// Pitches lists every absolute midi pitch of this class, lowest octave
// first.
func (n NoteClass) Pitches() []uint8 {
	var res []uint8
	for p := int(n % 12); p < 128; p += 12 {
		res = append(res, uint8(p))
	}
	return res
}

// Mode is a scale shape. major and minor are aliases of ionian and
// aeolian.
type Mode string

const (
	Major      Mode = "major"
	Minor      Mode = "minor"
	Ionian     Mode = "ionian"
	Dorian     Mode = "dorian"
	Phrygian   Mode = "phrygian"
	Lydian     Mode = "lydian"
	Mixolydian Mode = "mixolydian"
	Aeolian    Mode = "aeolian"
	Locrian    Mode = "locrian"
)

// semitone steps between successive scale degrees
var modeSteps = map[Mode][7]uint8{
	Major:      {2, 2, 1, 2, 2, 2, 1},
	Ionian:     {2, 2, 1, 2, 2, 2, 1},
	Dorian:     {2, 1, 2, 2, 2, 1, 2},
	Phrygian:   {1, 2, 2, 2, 1, 2, 2},
	Lydian:     {2, 2, 2, 1, 2, 2, 1},
	Mixolydian: {2, 2, 1, 2, 2, 1, 2},
	Minor:      {2, 1, 2, 2, 1, 2, 2},
	Aeolian:    {2, 1, 2, 2, 1, 2, 2},
	Locrian:    {1, 2, 2, 1, 2, 2, 2},
}

type Key struct {
	Tonic NoteClass
	Mode  Mode
}

// ParseKey parses names like "c_major" or "fs_dorian".
func ParseKey(name string) (Key, error) {
	parts := strings.SplitN(strings.ToLower(name), "_", 2)
	if len(parts) != 2 {
		return Key{}, fmt.Errorf("invalid key name: %v (want tonic_mode, e.g. c_major)", name)
	}
	tonic, err := ParseNoteClass(parts[0])
	if err != nil {
		return Key{}, err
	}
	mode := Mode(parts[1])
	if _, ok := modeSteps[mode]; !ok {
		return Key{}, fmt.Errorf("unknown mode: %v", parts[1])
	}
	return Key{Tonic: tonic, Mode: mode}, nil
}

func (k Key) String() string {
	return fmt.Sprintf("%v_%v", k.Tonic, k.Mode)
}

// Notes lists the member note classes in scale order, tonic first.
func (k Key) Notes() []NoteClass {
	steps := modeSteps[k.Mode]
	res := make([]NoteClass, 0, 7)
	cur := uint8(k.Tonic) % 12
	for i := 0; i < 7; i++ {
		res = append(res, NoteClass(cur))
		cur = (cur + steps[i]) % 12
	}
	return res
}

// Pitches flattens the key into the set of every member pitch across
// all octaves.
func (k Key) Pitches() PitchSet {
	set := make(PitchSet)
	for _, n := range k.Notes() {
		for _, p := range n.Pitches() {
			set[p] = struct{}{}
		}
	}
	return set
}

// KeyNames enumerates every parsable key name, sorted.
func KeyNames() []string {
	res := make([]string, 0, 12*len(modeSteps))
	for i := 0; i < 12; i++ {
		for mode := range modeSteps {
			res = append(res, Key{Tonic: NoteClass(i), Mode: mode}.String())
		}
	}
	sort.Strings(res)
	return res
}

// PitchSet is an unordered set of absolute pitches 0-127 with a
// deterministic sorted view for iteration.
type PitchSet map[uint8]struct{}

func NewPitchSet(pitches ...uint8) PitchSet {
	set := make(PitchSet, len(pitches))
	for _, p := range pitches {
		set[p] = struct{}{}
	}
	return set
}

func (s PitchSet) Contains(pitch uint8) bool {
	_, ok := s[pitch]
	return ok
}

// Sorted returns the members ascending. Tie-breaks elsewhere depend on
// this order being stable.
func (s PitchSet) Sorted() []uint8 {
	pitches := util.GetKeys(s)
	sort.Slice(pitches, func(i, j int) bool {
		return pitches[i] < pitches[j]
	})
	return pitches
}
