// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/internal/codecio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec        aiffReader
	in         *codecio.Reader
	sampleRate int
	channels   int
	bitDepth   int
	frames     int // frames left
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) FrameCount() int { return s.frames }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, s.wrap(err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = audio.IntToSample(v, s.bitDepth)
	}
	s.frames = max(0, s.frames-n/s.channels)

	if err == io.EOF || (n < len(dst) && err == nil) {
		return n, io.EOF
	}
	if err != nil {
		return n, s.wrap(err)
	}

	return n, nil
}

func (s *source) wrap(err error) error {
	if s.in == nil {
		return fmt.Errorf("%w: %w", audio.ErrCodecFormat, err)
	}

	return s.in.Wrap(err, audio.ErrCodecFormat)
}

// Decoder reads uncompressed AIFF files with github.com/go-audio/aiff.
type Decoder struct{}

// Decode reads the whole file into a Sequence.
func (d Decoder) Decode(r io.Reader) (*audio.Sequence, error) {
	src, err := d.Open(r)
	if err != nil {
		return nil, err
	}

	return audio.ReadAll(src)
}

// Open parses the AIFF header and returns a Source over the sound data.
// go-audio needs to seek, so a plain io.Reader is read into memory first.
func (Decoder) Open(r io.Reader) (audio.Source, error) {
	var (
		in *codecio.Reader
		rs io.ReadSeeker
	)

	if seeker, ok := r.(io.ReadSeeker); ok {
		crs := codecio.NewReadSeeker(seeker)
		in, rs = crs.Reader, crs
	} else {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: reading aiff data: %w", audio.ErrCodecIO, err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		if in != nil && in.Err() != nil {
			return nil, in.Wrap(in.Err(), ErrNotAiffFile)
		}
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	if _, err := audio.NewFormat(format.NumChannels, format.SampleRate); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	return &source{
		dec:        dec,
		in:         in,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
		frames:     int(dec.NumSampleFrames),
	}, nil
}
