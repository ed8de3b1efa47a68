package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChordNotes(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		want   []Note
	}{
		{
			name:   "major triad",
			symbol: "C",
			want: []Note{
				{Pitch: "C", Octave: 2},
				{Pitch: "E", Octave: 2},
				{Pitch: "G", Octave: 2},
			},
		},
		{
			name:   "fifth past B stays at the backing octave",
			symbol: "G",
			want: []Note{
				{Pitch: "G", Octave: 2},
				{Pitch: "B", Octave: 2},
				{Pitch: "D", Octave: 2},
			},
		},
		{
			name:   "minor triad",
			symbol: "Dm",
			want: []Note{
				{Pitch: "D", Octave: 2},
				{Pitch: "F", Octave: 2},
				{Pitch: "A", Octave: 2},
			},
		},
		{
			name:   "wrapping interval stays at the backing octave",
			symbol: "Am",
			want: []Note{
				{Pitch: "A", Octave: 2},
				{Pitch: "C", Octave: 2},
				{Pitch: "E", Octave: 2},
			},
		},
		{
			name:   "sharp root",
			symbol: "F#",
			want: []Note{
				{Pitch: "F#", Octave: 2},
				{Pitch: "A#", Octave: 2},
				{Pitch: "C#", Octave: 2},
			},
		},
		{
			name:   "unknown root falls back to a single note",
			symbol: "H",
			want:   []Note{{Pitch: "H", Octave: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChordNotes(tt.symbol))
		})
	}
}

// Every chord in every registered progression must resolve to exactly
// three notes, all pinned to the backing octave — including roots like
// F, G, and A whose third or fifth wraps past B.
func TestProgressionChordsResolveToTriads(t *testing.T) {
	for i := 0; i < ProgressionCount(); i++ {
		p := ProgressionAt(i)
		for _, sym := range p.Chords {
			notes := ChordNotes(sym)
			assert.Len(t, notes, 3, "%s: %s", p.Name, sym)
			for _, n := range notes {
				assert.Equal(t, ChordOctave, n.Octave, "%s: %s note %s", p.Name, sym, n)
			}
		}
	}
}

func TestAdvanceChordCycles(t *testing.T) {
	ctx := NewContext()
	p := ProgressionAt(ctx.Progression)
	seen := make([]string, 0, len(p.Chords)*2)
	for i := 0; i < len(p.Chords)*2; i++ {
		seen = append(seen, ctx.AdvanceChord())
	}
	// Cursor starts at 0, so the first advance lands on chord 1.
	assert.Equal(t, p.Chords[1], seen[0])
	assert.Equal(t, p.Chords[0], seen[len(p.Chords)-1])
	assert.Equal(t, seen[:len(p.Chords)], seen[len(p.Chords):])
}
