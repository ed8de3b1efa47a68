package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplySettingsPushesToEngine(t *testing.T) {
	s := &fakeSynth{ready: true}
	k := newTestKeyboard(s, &scriptedChance{draws: []float64{0.9}}) // no hop

	k.ApplySettings(Settings{Volume: 0.6, Scale: "blues", Reverb: 0.3, Delay: 0.2})

	assert.Equal(t, 0.6, s.volume)
	assert.Equal(t, 0.3, s.reverb)
	assert.Equal(t, 0.2, s.delay)
	assert.Equal(t, "blues", k.Ctx.ScaleName)
	assert.Equal(t, 0, k.Ctx.Progression)
}

func TestApplySettingsRejectsUnknownScale(t *testing.T) {
	s := &fakeSynth{ready: true}
	k := newTestKeyboard(s, &scriptedChance{draws: []float64{0.9}})

	k.ApplySettings(Settings{Volume: 0.4, Scale: "klingon"})

	// Scale untouched, the rest of the update still lands.
	assert.Equal(t, "major", k.Ctx.ScaleName)
	assert.Equal(t, 0.4, s.volume)
}

func TestApplySettingsMayHopProgression(t *testing.T) {
	s := &fakeSynth{ready: true}
	k := newTestKeyboard(s, &scriptedChance{draws: []float64{0.1}, ints: []int{3}})
	k.Ctx.ChordPos = 2

	k.ApplySettings(Settings{Volume: 0.5, Scale: "major"})

	assert.Equal(t, 3, k.Ctx.Progression)
	assert.Equal(t, 0, k.Ctx.ChordPos, "cursor resets on hop")
}

func TestApplySettingsEmptyScaleKeepsCurrent(t *testing.T) {
	s := &fakeSynth{ready: true}
	k := newTestKeyboard(s, &scriptedChance{draws: []float64{0.9}})
	k.Ctx.SetScale("pentatonic")

	k.ApplySettings(Settings{Volume: 0.5})
	assert.Equal(t, "pentatonic", k.Ctx.ScaleName)
}
