// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/internal/codecio"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels       = 2
	bytesPerSample = 2
	bytesPerFrame  = channels * bytesPerSample
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	in         *codecio.Reader
	sampleRate int
	channels   int
	buf        []byte
	length     int64 // decoded size in bytes, -1 if unknown
	consumed   int64
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample } // return sample capacity, not bytes

// FrameCount returns the frames left when the input is seekable, 0 otherwise.
func (s *source) FrameCount() int {
	if s.length < 0 {
		return 0
	}

	return int(max(0, s.length-s.consumed) / bytesPerFrame)
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	bytesNeeded := len(dst) * bytesPerSample
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	s.consumed += int64(n)

	samples := n / bytesPerSample
	for i := range samples {
		dst[i] = audio.ValueToSample(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return samples, s.wrap(err)
	}

	return samples, err
}

func (s *source) wrap(err error) error {
	if s.in == nil {
		return fmt.Errorf("%w: %w", audio.ErrCodecFormat, err)
	}

	return s.in.Wrap(err, audio.ErrCodecFormat)
}

// Decoder reads MPEG-1/2 Layer III streams with github.com/hajimehoshi/go-mp3.
// The output is always stereo.
type Decoder struct{}

// Decode reads the whole stream into a Sequence.
func (d Decoder) Decode(r io.Reader) (*audio.Sequence, error) {
	src, err := d.Open(r)
	if err != nil {
		return nil, err
	}

	return audio.ReadAll(src)
}

// Open parses the first frame header of r and returns a Source over the
// decoded stream.
func (Decoder) Open(r io.Reader) (audio.Source, error) {
	// go-mp3 seeks to measure the stream when it can.
	var in *codecio.Reader
	var dec *gomp3.Decoder
	var err error
	if rs, ok := r.(io.ReadSeeker); ok {
		crs := codecio.NewReadSeeker(rs)
		in = crs.Reader
		dec, err = gomp3.NewDecoder(crs)
	} else {
		in = codecio.NewReader(r)
		dec, err = gomp3.NewDecoder(in)
	}
	if err != nil {
		return nil, in.Wrap(err, ErrInvalidStream)
	}

	return &source{
		dec:        dec,
		in:         in,
		sampleRate: dec.SampleRate(),
		channels:   channels,
		buf:        make([]byte, 8192),
		length:     dec.Length(),
	}, nil
}
