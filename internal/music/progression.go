package music

import "strings"

// Progression is a repeating sequence of chord symbols used for the soft
// ambient backing. A symbol is a root letter, an optional '#', and an
// optional 'm' minor marker ("Am", "F#", "G").
type Progression struct {
	Name   string
	Chords []string
}

// Progression registry. The advancer cycles within one of these; settings
// updates occasionally hop between them.
var progressions = []Progression{
	{Name: "classic", Chords: []string{"C", "G", "Am", "F"}},
	{Name: "pop", Chords: []string{"C", "Am", "F", "G"}},
	{Name: "jazz", Chords: []string{"Dm", "G", "C", "Am"}},
	{Name: "blues", Chords: []string{"C", "F", "C", "G"}},
	{Name: "folk", Chords: []string{"Am", "F", "C", "G"}},
}

// ProgressionCount returns the number of registered progressions.
func ProgressionCount() int { return len(progressions) }

// ProgressionAt returns the progression at a registry index, wrapping
// out-of-range indices.
func ProgressionAt(i int) Progression {
	if i < 0 {
		i = 0
	}
	return progressions[i%len(progressions)]
}

// ChordOctave is the fixed low octave backing chords sound at.
const ChordOctave = 2

// AdvanceChord moves the progression cursor one step and returns the chord
// symbol now under it.
func (c *Context) AdvanceChord() string {
	p := ProgressionAt(c.Progression)
	c.ChordPos = (c.ChordPos + 1) % len(p.Chords)
	return p.Chords[c.ChordPos]
}

// ChordNotes resolves a chord symbol to its triad: root, third (4
// semitones major, 3 minor), and perfect fifth, every note at the fixed
// backing octave even when an interval wraps past B. An unresolvable root
// degrades to a single-note "chord" of just the root label.
func ChordNotes(symbol string) []Note {
	root := symbol
	minor := false
	if strings.HasSuffix(root, "m") && len(root) > 1 {
		minor = true
		root = root[:len(root)-1]
	}

	semi := chromaticIndex(root)
	if semi < 0 {
		return []Note{{Pitch: root, Octave: ChordOctave}}
	}

	third := 4
	if minor {
		third = 3
	}

	notes := make([]Note, 0, 3)
	for _, off := range []int{0, third, 7} {
		notes = append(notes, Note{Pitch: pitchAt(semi + off), Octave: ChordOctave})
	}
	return notes
}
