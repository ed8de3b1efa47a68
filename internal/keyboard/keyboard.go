package keyboard

import (
	"log"
	"time"

	"github.com/Cytens-Night/Musical-Keyboard/internal/music"
)

// Synth is the audio collaborator: play this pitch for this long at this
// loudness. Satisfied by synth.Engine.
type Synth interface {
	Init() error
	Ready() bool
	PlayNote(freq float64, dur time.Duration, velocity float64)
	PlayChord(freqs []float64, dur time.Duration, velocity float64)
	SetVolume(v float64)
	SetEffects(reverb, delay float64)
}

// Chance is the randomness source behind the probabilistic branches.
// Injectable so tests can force either side deterministically.
type Chance interface {
	Float64() float64
	Intn(n int) int
}

// Trigger chances. Tuned by feel; kept as named constants rather than
// pretending there is deeper intent behind the values.
const (
	// HarmonyThreshold: harmony fires when a draw exceeds this and at
	// least two notes sit in the 2s recent queue.
	HarmonyThreshold = 0.6
	// ChordAdvanceChance: per note-play odds of stepping the backing
	// progression and sounding its chord.
	ChordAdvanceChance = 0.2
	// ProgressionHopChance: per settings-update odds of hopping to a
	// random progression and resetting its cursor.
	ProgressionHopChance = 0.3
)

const (
	noteDuration   = 350 * time.Millisecond
	chordDuration  = 1200 * time.Millisecond
	harmonyStagger = 50 * time.Millisecond

	noteVelocity    = 1.0
	harmonyVelocity = 0.45
	chordVelocity   = 0.2
)

// Octave shift bounds for the manual octave controls. The per-class
// octave table still clamps the final octave.
const (
	minOctaveShift = -2
	maxOctaveShift = 2
)

// Keyboard is the single event-handling path: it owns the musical context
// and turns characters into play requests, harmony timers, background
// chords, and events for the visual layer.
type Keyboard struct {
	Ctx *music.Context

	synth Synth
	rng   Chance
	bus   *EventBus

	// Injectable timer and clock for deterministic tests.
	after func(time.Duration, func())
	now   func() time.Time
}

func New(s Synth, rng Chance) *Keyboard {
	return &Keyboard{
		Ctx:   music.NewContext(),
		synth: s,
		rng:   rng,
		bus:   NewEventBus(),
		after: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		now:   time.Now,
	}
}

func (k *Keyboard) Bus() *EventBus { return k.bus }

// HandleKey maps one typed character to a note and plays it, then rolls
// for harmony voices and a backing chord step. If the engine is not ready
// yet it attempts lazy init and drops this note; the next press plays.
func (k *Keyboard) HandleKey(ch rune) {
	scale := k.Ctx.Scale()
	note := music.KeyToNote(ch, scale, k.Ctx.OctaveShift)

	if !k.synth.Ready() {
		if err := k.synth.Init(); err != nil {
			log.Printf("audio init failed, dropping note %s: %v", note, err)
		}
		return
	}

	k.synth.PlayNote(note.Frequency(), noteDuration, noteVelocity)
	k.Ctx.RecordNote(note, k.now())
	k.bus.Emit(Event{
		Type:     EventNotePlayed,
		Char:     ch,
		Class:    music.ClassifyKey(ch),
		Note:     note,
		Velocity: noteVelocity,
	})

	k.maybeHarmony(note, scale)
	k.maybeAdvanceChord()
}

// maybeHarmony layers a diatonic third and fifth over the note just
// played, staggered 50ms apart at lower volume. The timers are
// fire-and-forget; overlap with later presses is cosmetic.
func (k *Keyboard) maybeHarmony(played music.Note, scale music.Scale) {
	if k.rng.Float64() <= HarmonyThreshold {
		return
	}
	if k.Ctx.RecentCount() < 2 {
		return
	}
	for i, h := range music.HarmonyNotes(played, scale) {
		k.after(time.Duration(i+1)*harmonyStagger, func() {
			k.synth.PlayNote(h.Frequency(), noteDuration, harmonyVelocity)
			// Emit alongside the delayed playback so the visual layer
			// lights up when the voice actually sounds.
			k.bus.Emit(Event{Type: EventHarmonyNote, Note: h, Velocity: harmonyVelocity})
		})
	}
}

// maybeAdvanceChord occasionally steps the backing progression and sounds
// the chord under the cursor, very softly.
func (k *Keyboard) maybeAdvanceChord() {
	if k.rng.Float64() >= ChordAdvanceChance {
		return
	}
	sym := k.Ctx.AdvanceChord()
	notes := music.ChordNotes(sym)
	freqs := make([]float64, 0, len(notes))
	for _, n := range notes {
		if f := n.Frequency(); f > 0 {
			freqs = append(freqs, f)
		}
	}
	k.synth.PlayChord(freqs, chordDuration, chordVelocity)
	k.bus.Emit(Event{Type: EventChordPlayed, Note: notes[0], Velocity: chordVelocity})
}

// OctaveUp raises the octave baseline one step, within shift bounds.
func (k *Keyboard) OctaveUp() {
	if k.Ctx.OctaveShift < maxOctaveShift {
		k.Ctx.OctaveShift++
	}
}

// OctaveDown lowers the octave baseline one step, within shift bounds.
func (k *Keyboard) OctaveDown() {
	if k.Ctx.OctaveShift > minOctaveShift {
		k.Ctx.OctaveShift--
	}
}
