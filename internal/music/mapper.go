package music

import "unicode"

// KeyClass buckets input characters for octave-range selection.
type KeyClass int

const (
	KeyLetter KeyClass = iota
	KeyDigit
	KeySymbol
)

func (c KeyClass) String() string {
	switch c {
	case KeyLetter:
		return "letter"
	case KeyDigit:
		return "digit"
	default:
		return "symbol"
	}
}

// OctaveRange bounds the octaves a key class may produce.
type OctaveRange struct {
	Min, Max int
}

// Fixed octave table, one entry per key class.
var octaveRanges = map[KeyClass]OctaveRange{
	KeyLetter: {Min: 3, Max: 5},
	KeyDigit:  {Min: 4, Max: 6},
	KeySymbol: {Min: 3, Max: 4},
}

// OctaveRangeFor returns the octave bounds for a key class.
func OctaveRangeFor(class KeyClass) OctaveRange {
	return octaveRanges[class]
}

// ClassifyKey buckets a character as letter, digit, or symbol.
func ClassifyKey(ch rune) KeyClass {
	switch {
	case unicode.IsLetter(ch):
		return KeyLetter
	case unicode.IsDigit(ch):
		return KeyDigit
	default:
		return KeySymbol
	}
}

// KeyToNote deterministically maps a character to a note in the given
// scale. shift moves the resulting octave up or down from the class
// baseline; the class maximum is never exceeded.
//
// Letters index the scale by alphabet position (A=0, case-insensitive)
// and climb one octave per full wrap around the scale. Digits do the
// same with their numeric value. Any other character indexes by its
// code point, with the octave taken from (code mod 20)/10.
func KeyToNote(ch rune, scale Scale, shift int) Note {
	class := ClassifyKey(ch)
	rng := octaveRanges[class]
	n := scale.Len()

	var idx, octave int
	switch class {
	case KeyLetter:
		pos := int(unicode.ToUpper(ch) - 'A')
		idx = pos % n
		octave = rng.Min + pos/n
	case KeyDigit:
		d := int(ch - '0')
		idx = d % n
		octave = rng.Min + d/n
	default:
		code := int(ch)
		idx = code % n
		octave = rng.Min + (code%20)/10
	}

	octave = clamp(octave+shift, rng.Min, rng.Max)
	return Note{Pitch: scale.Pitches[idx], Octave: octave}
}
