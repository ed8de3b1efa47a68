package music

import (
	"fmt"
	"math"
)

// chromatic is the fixed 12-tone pitch-class sequence used for all
// semitone arithmetic (chord triads, frequency conversion).
var chromatic = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Note is a pitch class plus an octave, e.g. {"F#", 4}.
type Note struct {
	Pitch  string
	Octave int
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Pitch, n.Octave)
}

// Semitone returns the chromatic index of the note's pitch class,
// or -1 when the pitch class is not in the chromatic table.
func (n Note) Semitone() int {
	return chromaticIndex(n.Pitch)
}

// Frequency converts the note to Hz using A440 equal temperament
// (MIDI convention: C4 = 60, A4 = 69).
func (n Note) Frequency() float64 {
	semi := n.Semitone()
	if semi < 0 {
		return 0
	}
	midi := (n.Octave+1)*12 + semi
	return 440.0 * math.Pow(2, float64(midi-69)/12.0)
}

func chromaticIndex(pitch string) int {
	for i, p := range chromatic {
		if p == pitch {
			return i
		}
	}
	return -1
}

// pitchAt returns the pitch-class label at a chromatic index, wrapping
// past B.
func pitchAt(semi int) string {
	return chromatic[semi%12]
}
