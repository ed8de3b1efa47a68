package synth

import (
	"math"
	"time"
)

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// genPluck: bell-ish FM pluck for a single key press.
func genPluck(freq float64, dur time.Duration, velocity, reverbMix, delayMix float64) []byte {
	velocity = clampF(velocity, 0, 1)
	n := int(dur.Seconds() * SampleRate)
	if n <= 0 {
		return nil
	}
	dry := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.008, 0.45, 0.18, 0.3)
		s := fm(t, freq, 2.0, 2.4*env) * env * 0.45 * velocity
		// Thin second harmonic for clarity.
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07 * velocity
		dry[i] = s
	}
	return mixSends(dry, reverbMix, delayMix)
}

// genPad: soft detuned FM pad used for background chords — three voices
// summed, slow attack, long release.
func genPad(freqs []float64, dur time.Duration, velocity, reverbMix, delayMix float64) []byte {
	velocity = clampF(velocity, 0, 1)
	n := int(dur.Seconds() * SampleRate)
	if n <= 0 {
		return nil
	}
	detunes := [3]float64{-0.002, 0.0, 0.003}
	dry := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.12, 0.2, 0.65, 0.4)
		s := 0.0
		for _, freq := range freqs {
			for _, d := range detunes {
				s += fm(t, freq*(1+d), 1.45, 0.7*env) * 0.06
			}
		}
		dry[i] = s * env * velocity
	}
	return mixSends(dry, reverbMix, delayMix)
}

// Echo tap spacing for the delay send.
const delayTapSec = 0.17

// Early-reflection offsets for the reverb send (seconds). Prime-ish
// spacings so the taps don't comb too obviously.
var reverbTaps = [4]float64{0.029, 0.043, 0.071, 0.107}

// mixSends renders dry plus feed-forward effect taps into a stereo buffer.
// A tail is appended when either send is active so echoes can ring out.
func mixSends(dry []float64, reverbMix, delayMix float64) []byte {
	reverbMix = clampF(reverbMix, 0, 1)
	delayMix = clampF(delayMix, 0, 1)

	tail := 0
	if delayMix > 0 {
		tail = int(3 * delayTapSec * SampleRate)
	} else if reverbMix > 0 {
		tail = int(0.25 * SampleRate)
	}
	total := len(dry) + tail
	mix := make([]float64, total)
	copy(mix, dry)

	if delayMix > 0 {
		step := int(delayTapSec * SampleRate)
		gain := 0.5 * delayMix
		for tap := 1; tap <= 3; tap++ {
			off := tap * step
			for i, s := range dry {
				if i+off >= total {
					break
				}
				mix[i+off] += s * gain
			}
			gain *= 0.5
		}
	}
	if reverbMix > 0 {
		for ti, tapSec := range reverbTaps {
			off := int(tapSec * SampleRate)
			gain := reverbMix * 0.22 / float64(ti+1)
			for i, s := range dry {
				if i+off >= total {
					break
				}
				mix[i+off] += s * gain
			}
		}
	}

	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
