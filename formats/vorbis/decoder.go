// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/internal/codecio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read fills p with interleaved samples and returns the number of
	// values written, not frames.
	Read(p []float32) (int, error)
}

type source struct {
	dec        oggReader
	in         *codecio.Reader
	sampleRate int
	channels   int
	bufSize    int
	length     int64 // frames in the stream, 0 if unknown
	read       int64 // values handed out so far
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

// FrameCount returns the frames left when the stream length is known, 0
// otherwise.
func (s *source) FrameCount() int {
	if s.length <= 0 {
		return 0
	}

	return int(max(0, s.length-s.read/int64(s.channels)))
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	s.read += int64(n)

	if err != nil && !errors.Is(err, io.EOF) {
		if s.in == nil {
			return n, fmt.Errorf("%w: %w", audio.ErrCodecFormat, err)
		}
		return n, s.in.Wrap(err, audio.ErrCodecFormat)
	}

	return n, err
}

// Decoder reads Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
type Decoder struct{}

// Decode reads the whole stream into a Sequence.
func (d Decoder) Decode(r io.Reader) (*audio.Sequence, error) {
	src, err := d.Open(r)
	if err != nil {
		return nil, err
	}

	return audio.ReadAll(src)
}

// Open reads the Vorbis headers of r and returns a Source over the decoded
// stream.
func (Decoder) Open(r io.Reader) (audio.Source, error) {
	in := codecio.NewReader(r)

	dec, err := oggvorbis.NewReader(in)
	if err != nil {
		return nil, in.Wrap(err, ErrInvalidStream)
	}

	return &source{
		dec:        dec,
		in:         in,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		bufSize:    4096,
		length:     dec.Length(),
	}, nil
}
