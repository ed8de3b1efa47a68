package visual

import (
	"math"

	"github.com/Cytens-Night/Musical-Keyboard/internal/music"
)

// KeyEvent is what the input path hands the visual layer per played note:
// the character, its class, the resolved pitch class, and loudness.
type KeyEvent struct {
	Char     rune
	Class    music.KeyClass
	Pitch    string
	Velocity float64
}

// SpawnKey emits the particle burst for one key event. Position is a
// deterministic hash of the character, so the same key always lights up
// the same spot; colour follows the pitch class; the animation style
// follows the key class.
func (s *System) SpawnKey(ev KeyEvent, rng *music.Rand) {
	h := music.Hash2D(0x5EED, int(ev.Char), 0)
	x := float64(h%CanvasWidth)*0.8 + CanvasWidth*0.1
	y := float64((h>>16)%CanvasHeight)*0.8 + CanvasHeight*0.1
	col := ColorForPitch(ev.Pitch)

	switch ev.Class {
	case music.KeyDigit:
		s.spawnRipple(x, y, col, ev.Velocity)
	case music.KeySymbol:
		s.spawnSparks(x, y, col, ev.Velocity, rng)
	default:
		s.spawnBurst(x, y, col, ev.Velocity, rng)
	}
}

// SpawnChord marks a background chord with a dim wide ripple low on the canvas.
func (s *System) SpawnChord(pitch string) {
	s.Add(Particle{
		X: CanvasWidth / 2, Y: CanvasHeight * 0.85,
		Size:    40,
		Life:    1.6,
		MaxLife: 1.6,
		Col:     ColorForPitch(pitch).Mul(110),
		Kind:    ParticleRipple,
	})
}

func (s *System) spawnBurst(x, y float64, col RGB, vel float64, rng *music.Rand) {
	n := 10 + rng.Intn(6)
	for i := 0; i < n; i++ {
		ang := rng.RangeF(0, 2*math.Pi)
		speed := rng.RangeF(20, 90) * (0.5 + vel)
		s.Add(Particle{
			X: x, Y: y,
			VX:      math.Cos(ang) * speed,
			VY:      math.Sin(ang) * speed,
			Size:    rng.RangeF(2, 5),
			Life:    rng.RangeF(0.4, 0.9),
			MaxLife: 0.9,
			Col:     LerpRGB(col, RGB{255, 255, 255}, rng.RangeF(0, 0.3)),
			Kind:    ParticleBurst,
		})
	}
}

func (s *System) spawnRipple(x, y float64, col RGB, vel float64) {
	for ring := 0; ring < 2; ring++ {
		s.Add(Particle{
			X: x, Y: y,
			Size:    6 + float64(ring)*10,
			Life:    0.8 + 0.4*vel,
			MaxLife: 1.2,
			Col:     col,
			Kind:    ParticleRipple,
		})
	}
}

func (s *System) spawnSparks(x, y float64, col RGB, vel float64, rng *music.Rand) {
	n := 6 + rng.Intn(4)
	for i := 0; i < n; i++ {
		s.Add(Particle{
			X: x + rng.RangeF(-8, 8), Y: y,
			VX:      rng.RangeF(-15, 15),
			VY:      rng.RangeF(-60, -20) * (0.5 + vel),
			Size:    rng.RangeF(1.5, 3),
			Life:    rng.RangeF(0.5, 1.1),
			MaxLife: 1.1,
			Col:     col,
			Kind:    ParticleSpark,
		})
	}
}
