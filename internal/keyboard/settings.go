package keyboard

import (
	"log"

	"github.com/Cytens-Night/Musical-Keyboard/internal/music"
)

// Settings is the external configuration surface: master volume, scale
// name, and effect send mixes, all applied to the live engine and context.
type Settings struct {
	Volume float64 // 0-1
	Scale  string  // must be in the scale registry
	Reverb float64 // 0-1
	Delay  float64 // 0-1
}

// ApplySettings pushes a settings update to the engine and context. An
// unknown scale name is logged and skipped; the remaining fields still
// apply. With ProgressionHopChance the active progression is re-rolled
// and its cursor reset — an intentional quirk of the original toy: any
// settings change may reshuffle the backing track.
func (k *Keyboard) ApplySettings(s Settings) {
	k.synth.SetVolume(s.Volume)
	k.synth.SetEffects(s.Reverb, s.Delay)

	if s.Scale != "" {
		if k.Ctx.SetScale(s.Scale) {
			k.bus.Emit(Event{Type: EventScaleChanged})
		} else {
			log.Printf("unknown scale %q, keeping %q", s.Scale, k.Ctx.ScaleName)
		}
	}

	if k.rng.Float64() < ProgressionHopChance {
		k.Ctx.Progression = k.rng.Intn(music.ProgressionCount())
		k.Ctx.ChordPos = 0
	}
}
