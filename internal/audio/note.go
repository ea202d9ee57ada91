package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/typefall/internal/model"
)

var semitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// MIDI converts a note name such as "E5", "D#5" or "Bb3" to its MIDI number.
func MIDI(id model.NoteID) (int, error) {
	s := strings.TrimSpace(string(id))
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid note %q", id)
	}
	base, ok := semitones[byte(strings.ToUpper(s[:1])[0])]
	if !ok {
		return 0, fmt.Errorf("invalid note %q", id)
	}
	rest := s[1:]
	switch rest[0] {
	case '#':
		base++
		rest = rest[1:]
	case 'b':
		base--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note %q: %w", id, err)
	}
	midi := (octave+1)*12 + base
	if midi < 0 || midi > 127 {
		return 0, fmt.Errorf("note %q out of range", id)
	}
	return midi, nil
}

// Frequency returns the equal temperament frequency in Hz, A4 = 440 Hz.
func Frequency(id model.NoteID) (float64, error) {
	midi, err := MIDI(id)
	if err != nil {
		return 0, err
	}
	return MIDIFreq(midi), nil
}

// MIDIFreq returns the frequency for a MIDI note number.
func MIDIFreq(midi int) float64 {
	return 440.0 * math.Pow(2, (float64(midi)-69.0)/12.0)
}
