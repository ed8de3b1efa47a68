package music

// Scale is a named ordered sequence of pitch-class labels. Scales are
// immutable; callers select one by name from the fixed registry.
type Scale struct {
	Name    string
	Pitches []string
}

func (s Scale) Len() int { return len(s.Pitches) }

// indexOf returns the position of a pitch class within the scale, or -1.
func (s Scale) indexOf(pitch string) int {
	for i, p := range s.Pitches {
		if p == pitch {
			return i
		}
	}
	return -1
}

// Scale registry. Order matters only for display; lookup is by name.
var scales = map[string]Scale{
	"major":      {Name: "major", Pitches: []string{"C", "D", "E", "F", "G", "A", "B"}},
	"minor":      {Name: "minor", Pitches: []string{"C", "D", "D#", "F", "G", "G#", "A#"}},
	"pentatonic": {Name: "pentatonic", Pitches: []string{"C", "D", "E", "G", "A"}},
	"blues":      {Name: "blues", Pitches: []string{"C", "D#", "F", "F#", "G", "A#"}},
	"chromatic":  {Name: "chromatic", Pitches: []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}},
}

// ScaleNames lists every registered scale name.
func ScaleNames() []string {
	return []string{"major", "minor", "pentatonic", "blues", "chromatic"}
}

// ScaleByName returns the named scale. ok is false for unknown names.
func ScaleByName(name string) (Scale, bool) {
	s, ok := scales[name]
	return s, ok
}

// ValidScale reports whether name is in the registry.
func ValidScale(name string) bool {
	_, ok := scales[name]
	return ok
}

// DefaultScale is the scale a fresh context starts with.
const DefaultScale = "major"
