// SPDX-License-Identifier: EPL-2.0

package generator

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/ik5/audseq/audio"
)

// Sine is a*sin(2πft).
type Sine struct{ oscillator }

func NewSine(f audio.Format, start time.Duration, amplitude, frequency float64) *Sine {
	return &Sine{newOscillator(f, start, amplitude, frequency)}
}

func (g *Sine) Next() float32 {
	t := g.tick()
	return float32(g.amplitude * math.Sin(2*math.Pi*g.frequency*t))
}

// Square is +a while sin(2πft) is positive and -a otherwise.
type Square struct{ oscillator }

func NewSquare(f audio.Format, start time.Duration, amplitude, frequency float64) *Square {
	return &Square{newOscillator(f, start, amplitude, frequency)}
}

func (g *Square) Next() float32 {
	t := g.tick()
	if math.Sin(2*math.Pi*g.frequency*t) > 0 {
		return float32(g.amplitude)
	}

	return float32(-g.amplitude)
}

// Sawtooth rises linearly from -a to a once per period, centered on zero
// at t = 0.
type Sawtooth struct{ oscillator }

func NewSawtooth(f audio.Format, start time.Duration, amplitude, frequency float64) *Sawtooth {
	return &Sawtooth{newOscillator(f, start, amplitude, frequency)}
}

func (g *Sawtooth) Next() float32 {
	ft := g.frequency * g.tick()
	return float32(2 * g.amplitude * (ft - math.Floor(ft+0.5)))
}

// Triangle ramps between -a and a twice per period.
type Triangle struct{ oscillator }

func NewTriangle(f audio.Format, start time.Duration, amplitude, frequency float64) *Triangle {
	return &Triangle{newOscillator(f, start, amplitude, frequency)}
}

func (g *Triangle) Next() float32 {
	t := g.tick()
	if g.frequency == 0 {
		return 0
	}

	k := math.Floor(2*g.frequency*t + 0.5)
	v := 4 * g.frequency * (t - k/(2*g.frequency))
	if int64(k)%2 != 0 {
		v = -v
	}

	return float32(g.amplitude * v)
}

// Noise is white noise uniform in [-a, a). The same seed always yields the
// same values.
type Noise struct {
	amplitude float64
	seed      uint64
	rng       *rand.Rand
}

func NewNoise(amplitude float64, seed uint64) *Noise {
	n := &Noise{amplitude: clampAmplitude(amplitude), seed: seed}
	n.Reset()

	return n
}

func (g *Noise) Next() float32 {
	return float32(g.amplitude * (2*g.rng.Float64() - 1))
}

func (g *Noise) Reset() {
	g.rng = rand.New(rand.NewPCG(g.seed, g.seed^0x9e3779b97f4a7c15))
}

// Amplitude returns the effective peak value.
func (g *Noise) Amplitude() float64 { return g.amplitude }
