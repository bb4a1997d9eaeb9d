// SPDX-License-Identifier: EPL-2.0

package generator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audseq/audio"
)

// Wave names a waveform in a Score.
type Wave string

const (
	WaveSine     Wave = "sine"
	WaveSquare   Wave = "square"
	WaveSawtooth Wave = "sawtooth"
	WaveTriangle Wave = "triangle"
	WaveNoise    Wave = "noise"
	// WaveSilence renders zeros; it is the natural way to put a rest
	// between two tones.
	WaveSilence Wave = "silence"
)

// IsValid reports whether w is a known waveform.
func (w Wave) IsValid() bool {
	switch w {
	case WaveSine, WaveSquare, WaveSawtooth, WaveTriangle, WaveNoise, WaveSilence:
		return true
	}

	return false
}

// Part is one tone of a Score, played after the previous one.
type Part struct {
	Wave      Wave          `yaml:"wave"`
	Amplitude float64       `yaml:"amplitude"`
	Frequency float64       `yaml:"frequency"`
	Duration  time.Duration `yaml:"duration"`
	// Seed only applies to noise.
	Seed uint64 `yaml:"seed"`
}

// Score is a declarative sequence of tones.
//
//	channels: 2
//	sample_rate: 44100
//	parts:
//	  - wave: sine
//	    amplitude: 0.5
//	    frequency: 440
//	    duration: 500ms
//	  - wave: silence
//	    duration: 250ms
type Score struct {
	Channels   int    `yaml:"channels"`
	SampleRate int    `yaml:"sample_rate"`
	Parts      []Part `yaml:"parts"`
}

// LoadScoreFile reads the YAML score at path.
func LoadScoreFile(path string) (*Score, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("score: open %q: %w", path, err)
	}
	defer f.Close()

	score, err := LoadScore(f)
	if err != nil {
		return nil, fmt.Errorf("score: parse %q: %w", path, err)
	}

	return score, nil
}

// LoadScore decodes a YAML score from r and validates it. Unknown fields
// are rejected.
func LoadScore(r io.Reader) (*Score, error) {
	score := &Score{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(score); err != nil {
		return nil, fmt.Errorf("score: decode yaml: %w", err)
	}

	if err := score.Validate(); err != nil {
		return nil, err
	}

	return score, nil
}

// Validate checks the whole score and returns every problem found, joined.
func (s *Score) Validate() error {
	var errs []error

	if _, err := audio.NewFormat(s.Channels, s.SampleRate); err != nil {
		errs = append(errs, fmt.Errorf("channels/sample_rate: %w", err))
	}

	if len(s.Parts) == 0 {
		errs = append(errs, errors.New("parts: at least one part is required"))
	}

	for i, p := range s.Parts {
		prefix := fmt.Sprintf("parts[%d]", i)

		if !p.Wave.IsValid() {
			errs = append(errs, fmt.Errorf("%s.wave %q: %w; valid values: sine, square, sawtooth, triangle, noise, silence", prefix, p.Wave, ErrUnknownWave))
		}
		if p.Duration <= 0 {
			errs = append(errs, fmt.Errorf("%s.duration %v must be positive", prefix, p.Duration))
		}
		if p.Amplitude < 0 || p.Amplitude > 1 {
			errs = append(errs, fmt.Errorf("%s.amplitude %.3f is out of range [0, 1]", prefix, p.Amplitude))
		}

		periodic := p.Wave != WaveNoise && p.Wave != WaveSilence
		if periodic && p.Frequency <= 0 {
			errs = append(errs, fmt.Errorf("%s.frequency %.3f must be positive for %s", prefix, p.Frequency, p.Wave))
		}
		if periodic && s.SampleRate > 0 && p.Frequency > float64(s.SampleRate)/2 {
			errs = append(errs, fmt.Errorf("%s.frequency %.1f is above the Nyquist limit %d", prefix, p.Frequency, s.SampleRate/2))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScore, err)
	}

	return nil
}

// Format returns the format every rendered part shares.
func (s *Score) Format() (audio.Format, error) {
	return audio.NewFormat(s.Channels, s.SampleRate)
}

// Duration is the total length of the score.
func (s *Score) Duration() time.Duration {
	var d time.Duration
	for _, p := range s.Parts {
		d += p.Duration
	}

	return d
}

// Render synthesizes the score. Each part grows the sequence by its
// duration and fills only the added frames, starting its generator at the
// time it enters.
func (s *Score) Render() (*audio.Sequence, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	f, err := s.Format()
	if err != nil {
		return nil, err
	}

	seq, err := audio.NewSequence(f)
	if err != nil {
		return nil, err
	}

	if err := seq.ReserveDuration(s.Duration()); err != nil {
		return nil, err
	}

	var elapsed time.Duration
	for i, p := range s.Parts {
		elapsed += p.Duration

		from, err := seq.SetDuration(elapsed)
		if err != nil {
			return nil, fmt.Errorf("parts[%d]: %w", i, err)
		}

		g := p.generator(f, seq.Format().Duration(from.Index()))
		if g == nil {
			continue
		}

		if err := Fill(g, from, seq.End()); err != nil {
			return nil, fmt.Errorf("parts[%d]: %w", i, err)
		}
	}

	return seq, nil
}

// generator returns the generator for p starting at start, nil for
// silence.
func (p Part) generator(f audio.Format, start time.Duration) Generator {
	switch p.Wave {
	case WaveSine:
		return NewSine(f, start, p.Amplitude, p.Frequency)
	case WaveSquare:
		return NewSquare(f, start, p.Amplitude, p.Frequency)
	case WaveSawtooth:
		return NewSawtooth(f, start, p.Amplitude, p.Frequency)
	case WaveTriangle:
		return NewTriangle(f, start, p.Amplitude, p.Frequency)
	case WaveNoise:
		return NewNoise(p.Amplitude, p.Seed)
	}

	return nil
}
