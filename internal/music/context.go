package music

import "time"

const (
	// HistorySize bounds the note history kept in the context.
	HistorySize = 8
	// RecentWindow is the lookback for the recent-note queue.
	RecentWindow = 2 * time.Second
)

type timedNote struct {
	Note Note
	At   time.Time
}

// Context carries the ambient musical state threaded through the mapper,
// harmony generator, and progression advancer. It is owned by whoever
// handles key events; nothing in this package keeps global state.
type Context struct {
	ScaleName   string
	OctaveShift int
	Progression int // index into the progression registry
	ChordPos    int // cursor within the active progression

	history []Note
	recent  []timedNote
}

// NewContext returns a context on the default scale with an empty history.
func NewContext() *Context {
	return &Context{
		ScaleName: DefaultScale,
		history:   make([]Note, 0, HistorySize),
	}
}

// Scale resolves the context's current scale. Falls back to the default
// scale if the name has somehow gone stale.
func (c *Context) Scale() Scale {
	if s, ok := ScaleByName(c.ScaleName); ok {
		return s
	}
	s, _ := ScaleByName(DefaultScale)
	return s
}

// SetScale switches the active scale. Unknown names are rejected.
func (c *Context) SetScale(name string) bool {
	if !ValidScale(name) {
		return false
	}
	c.ScaleName = name
	return true
}

// RecordNote appends a played note to the history and the recent queue,
// pruning queue entries older than RecentWindow relative to now.
func (c *Context) RecordNote(n Note, now time.Time) {
	c.history = append(c.history, n)
	if len(c.history) > HistorySize {
		c.history = c.history[len(c.history)-HistorySize:]
	}

	c.recent = append(c.recent, timedNote{Note: n, At: now})
	cutoff := now.Add(-RecentWindow)
	i := 0
	for i < len(c.recent) && c.recent[i].At.Before(cutoff) {
		i++
	}
	c.recent = c.recent[i:]
}

// RecentCount returns how many notes are in the 2-second window.
func (c *Context) RecentCount() int { return len(c.recent) }

// LastNote returns the most recently recorded note.
func (c *Context) LastNote() (Note, bool) {
	if len(c.history) == 0 {
		return Note{}, false
	}
	return c.history[len(c.history)-1], true
}

// History returns a copy of the bounded note history, oldest first.
func (c *Context) History() []Note {
	out := make([]Note, len(c.history))
	copy(out, c.history)
	return out
}
