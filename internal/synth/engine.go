package synth

import (
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Engine renders notes and chords as procedurally synthesized samples and
// plays them through oto. It starts uninitialized; callers attempt Init
// lazily and drop the triggering request when the device is not ready yet.
type Engine struct {
	ctx   *oto.Context
	ready chan struct{}

	volume    float64
	reverbMix float64
	delayMix  float64
}

func NewEngine() *Engine {
	return &Engine{volume: 0.7}
}

// Init opens the audio device. Safe to call more than once.
func (e *Engine) Init() error {
	if e.ctx != nil {
		return nil
	}
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	e.ctx = ctx
	e.ready = ready
	return nil
}

// Ready reports whether the device is open and has finished warming up.
func (e *Engine) Ready() bool {
	if e.ctx == nil {
		return false
	}
	select {
	case <-e.ready:
		return true
	default:
		return false
	}
}

// SetVolume sets the master volume in [0,1].
func (e *Engine) SetVolume(v float64) {
	e.volume = clampF(v, 0, 1)
}

// SetEffects sets the reverb and delay send mixes, both in [0,1].
func (e *Engine) SetEffects(reverb, delay float64) {
	e.reverbMix = clampF(reverb, 0, 1)
	e.delayMix = clampF(delay, 0, 1)
}

// PlayNote synthesizes a plucked FM voice at freq and plays it. velocity
// scales loudness in [0,1]. Requests while the engine is not ready are
// dropped silently.
func (e *Engine) PlayNote(freq float64, dur time.Duration, velocity float64) {
	if !e.Ready() || freq <= 0 {
		return
	}
	samples := genPluck(freq, dur, velocity, e.reverbMix, e.delayMix)
	e.play(samples)
}

// PlayChord synthesizes a soft pad from the given frequencies and plays
// them as one batch request.
func (e *Engine) PlayChord(freqs []float64, dur time.Duration, velocity float64) {
	if !e.Ready() || len(freqs) == 0 {
		return
	}
	samples := genPad(freqs, dur, velocity, e.reverbMix, e.delayMix)
	e.play(samples)
}

func (e *Engine) play(samples []byte) {
	if len(samples) == 0 {
		return
	}
	gain := e.volume
	go func() {
		reader := &soundReader{data: samples}
		player := e.ctx.NewPlayer(reader)
		player.SetVolume(gain)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
