package visual

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// LerpRGB blends two colours by t in [0,1].
func LerpRGB(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

// pitchColors maps the 12 chromatic pitch classes onto a colour wheel,
// C at red, walking the hue circle by semitone.
var pitchColors = map[string]RGB{
	"C":  {235, 74, 74},
	"C#": {235, 143, 74},
	"D":  {235, 211, 74},
	"D#": {180, 235, 74},
	"E":  {99, 235, 74},
	"F":  {74, 235, 131},
	"F#": {74, 235, 211},
	"G":  {74, 175, 235},
	"G#": {74, 98, 235},
	"A":  {143, 74, 235},
	"A#": {223, 74, 235},
	"B":  {235, 74, 163},
}

// ColorForPitch returns the display colour for a pitch class. Unknown
// labels get a neutral grey.
func ColorForPitch(pitch string) RGB {
	if c, ok := pitchColors[pitch]; ok {
		return c
	}
	return RGB{160, 160, 160}
}
