// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/internal/codecio"
)

// flacReader is an interface for flac.Stream to allow testing
type flacReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     flacReader
	in         *codecio.Reader
	sampleRate int
	channels   int
	bitDepth   int
	remaining  int64 // frames left, 0 if unknown

	// pending holds decoded samples of the current FLAC frame not yet read.
	pending []float32
	buf     []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return s.stream.Close() }

// FrameCount returns the frames left when the stream info records the
// total, 0 otherwise.
func (s *source) FrameCount() int { return int(max(0, s.remaining)) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if len(s.pending) == 0 {
		if err := s.next(); err != nil {
			return 0, err
		}
	}

	n := copy(dst, s.pending)
	s.pending = s.pending[n:]

	return n, nil
}

// next decodes one FLAC frame into pending.
func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	if err != nil {
		if s.in == nil {
			return fmt.Errorf("%w: %w", audio.ErrCodecFormat, err)
		}
		return s.in.Wrap(err, audio.ErrCodecFormat)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: %d subframes for %d channels", ErrChannelLayout, len(f.Subframes), s.channels)
	}

	frames := len(f.Subframes[0].Samples)
	for _, sub := range f.Subframes[1:] {
		frames = min(frames, len(sub.Samples))
	}

	need := frames * s.channels
	if cap(s.buf) < need {
		s.buf = make([]float32, need)
	}
	s.buf = s.buf[:need]

	for c, sub := range f.Subframes {
		for i := range frames {
			s.buf[i*s.channels+c] = audio.IntToSample(int(sub.Samples[i]), s.bitDepth)
		}
	}

	s.pending = s.buf
	if s.remaining > 0 {
		s.remaining = max(0, s.remaining-int64(frames))
	}

	return nil
}

// Decoder reads FLAC streams with github.com/mewkiz/flac. Samples of any
// bit depth from 4 to 32 are normalized to [-1, 1].
type Decoder struct{}

// Decode reads the whole stream into a Sequence.
func (d Decoder) Decode(r io.Reader) (*audio.Sequence, error) {
	src, err := d.Open(r)
	if err != nil {
		return nil, err
	}

	return audio.ReadAll(src)
}

// Open reads the FLAC signature and stream info of r and returns a Source
// over its frames. Metadata blocks other than stream info are skipped.
func (Decoder) Open(r io.Reader) (audio.Source, error) {
	in := codecio.NewReader(r)

	stream, err := goflac.New(in)
	if err != nil {
		return nil, in.Wrap(err, ErrInvalidStream)
	}

	info := stream.Info
	if info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, info.BitsPerSample)
	}

	return &source{
		stream:     stream,
		in:         in,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
		remaining:  int64(info.NSamples),
	}, nil
}
