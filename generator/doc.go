// SPDX-License-Identifier: EPL-2.0

// Package generator synthesizes test tones into audio.Sequence values.
//
// Sine, Square, Sawtooth and Triangle are periodic; Noise is seeded white
// noise. Each yields one value per frame and writes it to every channel.
// Amplitudes are clamped to [0, 1].
//
//	f := audio.MustFormat(2, 44100)
//	seq, _ := audio.NewSequenceWithDuration(f, time.Second)
//	_ = generator.Fill(generator.NewSine(f, 0, 0.5, 440), seq.Begin(), seq.End())
//
// A Score describes a sequence of tones in YAML and renders it:
//
//	score, err := generator.LoadScoreFile("beep.yaml")
//	seq, err := score.Render()
package generator
