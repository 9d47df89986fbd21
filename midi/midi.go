package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadMidi parses raw midi bytes, converting gomidi's parse panics
// into errors.
func ReadMidi(data []byte) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

func ReadMidiFile(path string) (*smf.SMF, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &smf.SMF{}, errors.New(errText)
	}
	return ReadMidi(dat)
}

// WriteMidiFile serializes s next to the destination under a uuid temp
// name and renames it into place, so a failed write never truncates an
// existing file.
func WriteMidiFile(path string, s *smf.SMF) error {
	tmp := filepath.Join(filepath.Dir(path), uuid.New().String()+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		errText := fmt.Sprintf("Error creating midi file... %s", err.Error())
		return errors.New(errText)
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		os.Remove(tmp)
		errText := fmt.Sprintf("Error writing midi file... %s", err.Error())
		return errors.New(errText)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
