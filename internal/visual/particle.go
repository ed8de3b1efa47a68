package visual

// Canvas dimensions key events are positioned within. These match the
// window the cmd layer opens; a renderer may rescale freely.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// MaxParticles bounds the pool; the oldest entries are overwritten when full.
const MaxParticles = 4096

// ParticleKind selects the animation style a renderer applies.
type ParticleKind uint8

const (
	ParticleBurst  ParticleKind = iota // letters: radial spark burst
	ParticleRipple                     // digits: expanding ring
	ParticleSpark                      // symbols: upward glitter
)

type Particle struct {
	X, Y   float64
	VX, VY float64

	Size float64

	Life    float64
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

// System is a bounded particle pool with circular overwrite when full.
type System struct {
	Max    int
	P      []Particle
	ovrIdx int
}

func NewSystem(maxParticles int) *System {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &System{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
	}
}

func (s *System) Clear() {
	s.P = s.P[:0]
	s.ovrIdx = 0
}

func (s *System) Add(p Particle) {
	if len(s.P) < s.Max {
		s.P = append(s.P, p)
		return
	}
	// Circular overwrite.
	if s.ovrIdx >= s.Max {
		s.ovrIdx = 0
	}
	s.P[s.ovrIdx] = p
	s.ovrIdx++
}

// Update advances particle motion and fades lifetimes; dead particles are
// compacted out in place.
func (s *System) Update(dt float64) {
	out := s.P[:0]
	for _, p := range s.P {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		switch p.Kind {
		case ParticleRipple:
			// Rings grow instead of travelling.
			p.Size += 60 * dt
		case ParticleSpark:
			p.VY -= 30 * dt // drift upward
		default:
			p.VY += 18 * dt // light gravity
		}
		out = append(out, p)
	}
	s.P = out
	if s.ovrIdx > len(s.P) {
		s.ovrIdx = 0
	}
}

// RenderData flattens live particles for a renderer.
// Format: [x, y, size, r, g, b, a] * N, alpha from remaining life.
func (s *System) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for _, p := range s.P {
		t := p.Life / p.MaxLife
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Size),
			float32(p.Col.R)/255, float32(p.Col.G)/255, float32(p.Col.B)/255,
			float32(t),
		)
	}
	return buf
}
