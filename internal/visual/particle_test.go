package visual

import (
	"testing"

	"github.com/Cytens-Night/Musical-Keyboard/internal/music"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemCircularOverwrite(t *testing.T) {
	s := NewSystem(4)
	for i := 0; i < 6; i++ {
		s.Add(Particle{X: float64(i), Life: 1, MaxLife: 1})
	}
	require.Len(t, s.P, 4)
	// The two oldest entries were overwritten in place.
	assert.Equal(t, 4.0, s.P[0].X)
	assert.Equal(t, 5.0, s.P[1].X)
	assert.Equal(t, 2.0, s.P[2].X)
}

func TestSystemUpdateCompactsDead(t *testing.T) {
	s := NewSystem(8)
	s.Add(Particle{Life: 0.05, MaxLife: 1})
	s.Add(Particle{Life: 2, MaxLife: 2, VX: 10})
	s.Update(0.1)
	require.Len(t, s.P, 1)
	assert.InDelta(t, 1.0, s.P[0].X, 1e-9)
}

func TestSpawnKeyDeterministicPosition(t *testing.T) {
	ev := KeyEvent{Char: 'g', Class: music.KeyLetter, Pitch: "E", Velocity: 0.8}

	a := NewSystem(64)
	a.SpawnKey(ev, music.NewRand(1))
	b := NewSystem(64)
	b.SpawnKey(ev, music.NewRand(1))

	require.NotEmpty(t, a.P)
	require.Equal(t, len(a.P), len(b.P))
	assert.Equal(t, a.P[0].X, b.P[0].X)
	assert.Equal(t, a.P[0].Y, b.P[0].Y)
}

func TestSpawnStylesFollowKeyClass(t *testing.T) {
	rng := music.NewRand(2)

	s := NewSystem(64)
	s.SpawnKey(KeyEvent{Char: '4', Class: music.KeyDigit, Pitch: "G"}, rng)
	for _, p := range s.P {
		assert.Equal(t, ParticleRipple, p.Kind)
	}

	s.Clear()
	s.SpawnKey(KeyEvent{Char: '!', Class: music.KeySymbol, Pitch: "C"}, rng)
	for _, p := range s.P {
		assert.Equal(t, ParticleSpark, p.Kind)
	}
}

func TestRenderData(t *testing.T) {
	s := NewSystem(8)
	s.Add(Particle{Life: 1, MaxLife: 2, Size: 3, Col: RGB{255, 0, 0}})
	buf := s.RenderData(nil)
	require.Len(t, buf, 7)
	assert.InDelta(t, 0.5, float64(buf[6]), 1e-6) // alpha = life/maxLife
}

func TestColorForPitch(t *testing.T) {
	assert.NotEqual(t, ColorForPitch("C"), ColorForPitch("G"))
	assert.Equal(t, RGB{160, 160, 160}, ColorForPitch("H"))
}
