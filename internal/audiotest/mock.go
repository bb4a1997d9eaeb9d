// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates audio data for testing.
// It implements audio.Source.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	partial      int // channel of the next value within the current frame
	waveform     func(sample int, channel int) float32

	bufSize   int
	chunk     int   // max values per read, 0 for len(dst)
	readErr   error // returned once failAfter frames were generated
	failAfter int
	closeErr  error
	closed    bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
		bufSize:      4096,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource creates a mock source whose sample values encode their
// position: frame/1000 + channel/10000.
func NewRampSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return float32(sample)/1000 + float32(channel)/10000
	})
}

// WithBufSize sets the value reported by BufSize.
func (m *MockSource) WithBufSize(n int) *MockSource {
	m.bufSize = n
	return m
}

// WithChunk limits every read to at most n values, which need not be a
// multiple of the channel count.
func (m *MockSource) WithChunk(n int) *MockSource {
	m.chunk = n
	return m
}

// WithReadError makes ReadSamples fail with err once frames frames were
// generated.
func (m *MockSource) WithReadError(frames int, err error) *MockSource {
	m.failAfter, m.readErr = frames, err
	return m
}

// WithCloseError makes Close return err.
func (m *MockSource) WithCloseError(err error) *MockSource {
	m.closeErr = err
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return m.bufSize }

func (m *MockSource) Close() error {
	m.closed = true
	return m.closeErr
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
	m.partial = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.readErr != nil && m.generated >= m.failAfter {
		return 0, m.readErr
	}

	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	if m.chunk > 0 && len(dst) > m.chunk {
		dst = dst[:m.chunk]
	}

	// Values are produced one at a time so that reads can split frames.
	n := 0
	for n < len(dst) && m.generated < m.totalSamples {
		if m.readErr != nil && m.generated >= m.failAfter {
			break
		}
		dst[n] = m.waveform(m.generated, m.partial)
		n++
		m.partial++
		if m.partial == m.channels {
			m.partial = 0
			m.generated++
		}
	}

	if m.generated >= m.totalSamples {
		return n, io.EOF
	}

	return n, nil
}
