package music

// Diatonic offsets for harmony voices: a third and a fifth above the
// triggering note, counted in scale positions.
var harmonyOffsets = [2]int{2, 4}

// HarmonyNotes builds the harmony voices for a just-played note: the
// notes at scale offsets +2 and +4 from its position in the scale,
// bumping the octave whenever an offset wraps past the scale length.
// Returns nil when the note's pitch class is not in the scale.
func HarmonyNotes(played Note, scale Scale) []Note {
	pos := scale.indexOf(played.Pitch)
	if pos < 0 {
		return nil
	}
	n := scale.Len()
	out := make([]Note, 0, len(harmonyOffsets))
	for _, off := range harmonyOffsets {
		idx := pos + off
		out = append(out, Note{
			Pitch:  scale.Pitches[idx%n],
			Octave: played.Octave + idx/n,
		})
	}
	return out
}
