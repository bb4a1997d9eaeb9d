// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/youpy/go-riff"
	"github.com/zaf/g711"

	"github.com/ik5/audseq/audio"
)

// WAVE format tags.
const (
	FormatPCM       = 1
	FormatIEEEFloat = 3
	FormatALaw      = 6
	FormatMULaw     = 7
)

// formatChunk is the 16-byte body of the "fmt " chunk.
type formatChunk struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// sampleDecoder converts one encoded sample at the head of b.
type sampleDecoder func(b []byte) float32

type wavSource struct {
	data       []byte
	pos        int
	sampleRate int
	channels   int
	width      int // bytes per sample
	blockAlign int
	decode     sampleDecoder
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return 4096 }
func (s *wavSource) Close() error    { return nil }

// FrameCount returns the number of whole frames not read yet.
func (s *wavSource) FrameCount() int {
	return (len(s.data) - s.pos) / s.blockAlign
}

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	n := min(len(dst), (len(s.data)-s.pos)/s.width)
	if n == 0 {
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = s.decode(s.data[s.pos:])
		s.pos += s.width
	}

	return n, nil
}

// Decoder reads RIFF/WAVE streams holding 8-bit unsigned, 16, 24 or 32-bit
// signed PCM, 32-bit IEEE float, A-law or mu-law samples. Chunks other than
// "fmt " and "data" are skipped.
type Decoder struct{}

// Decode reads the whole stream into a Sequence.
func (d Decoder) Decode(r io.Reader) (*audio.Sequence, error) {
	src, err := d.Open(r)
	if err != nil {
		return nil, err
	}

	return audio.ReadAll(src)
}

// Open parses the header of r and returns a Source over its samples.
func (Decoder) Open(r io.Reader) (audio.Source, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrCodecIO, err)
	}

	if len(raw) < 12 || !bytes.Equal(raw[:4], []byte("RIFF")) || !bytes.Equal(raw[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	chunks, err := readChunks(raw)
	if err != nil {
		return nil, err
	}

	fmtChunk := findChunk(chunks, "fmt ")
	if fmtChunk == nil {
		return nil, ErrMissingFormatChunk
	}

	var hdr formatChunk
	if err := binary.Read(bytes.NewReader(fmtChunk.data), binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedChunks, err)
	}

	decode, width, err := sampleDecoderFor(hdr.AudioFormat, hdr.BitsPerSample)
	if err != nil {
		return nil, err
	}

	if _, err := audio.NewFormat(int(hdr.NumChannels), int(hdr.SampleRate)); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrCodecFormat, err)
	}

	if int(hdr.BlockAlign) != int(hdr.NumChannels)*width {
		return nil, fmt.Errorf("%w: %d for %d channels of %d bytes",
			ErrInvalidBlockAlign, hdr.BlockAlign, hdr.NumChannels, width)
	}

	dataChunk := findChunk(chunks, "data")
	if dataChunk == nil {
		return nil, ErrMissingDataChunk
	}
	data := dataChunk.data

	return &wavSource{
		data:       data,
		sampleRate: int(hdr.SampleRate),
		channels:   int(hdr.NumChannels),
		width:      width,
		blockAlign: int(hdr.BlockAlign),
		decode:     decode,
	}, nil
}

func sampleDecoderFor(tag, bits uint16) (sampleDecoder, int, error) {
	switch {
	case tag == FormatPCM && bits == 8:
		return func(b []byte) float32 { return audio.ValueToSample(b[0]) }, 1, nil
	case tag == FormatPCM && bits == 16:
		return func(b []byte) float32 {
			return audio.ValueToSample(int16(binary.LittleEndian.Uint16(b)))
		}, 2, nil
	case tag == FormatPCM && bits == 24:
		return func(b []byte) float32 {
			v := int32(b[0]) | int32(b[1])<<8 | int32(int8(b[2]))<<16
			return audio.IntToSample(int(v), 24)
		}, 3, nil
	case tag == FormatPCM && bits == 32:
		return func(b []byte) float32 {
			return audio.ValueToSample(int32(binary.LittleEndian.Uint32(b)))
		}, 4, nil
	case tag == FormatIEEEFloat && bits == 32:
		return func(b []byte) float32 {
			return math.Float32frombits(binary.LittleEndian.Uint32(b))
		}, 4, nil
	case tag == FormatALaw && bits == 8:
		return func(b []byte) float32 { return audio.ValueToSample(g711.DecodeAlawFrame(b[0])) }, 1, nil
	case tag == FormatMULaw && bits == 8:
		return func(b []byte) float32 { return audio.ValueToSample(g711.DecodeUlawFrame(b[0])) }, 1, nil
	}

	return nil, 0, fmt.Errorf("%w: format %d with %d bits", ErrUnsupportedEncoding, tag, bits)
}

// chunk is a RIFF chunk body without its pad byte.
type chunk struct {
	id   string
	data []byte
}

// readChunks lists the chunks of the RIFF file in raw. Chunk bodies are
// cut to their declared size and to the bytes present.
//
// go-riff pads odd sizes into the body and stops listing eight bytes
// before the end of the RIFF size, so the last headers are walked here.
// raw[4:8] is rewritten to bound go-riff to the chunks held whole by raw.
func readChunks(raw []byte) ([]chunk, error) {
	riffEnd := min(int64(binary.LittleEndian.Uint32(raw[4:8]))+8, int64(len(raw)))
	binary.LittleEndian.PutUint32(raw[4:8], uint32(wholeChunksEnd(raw, riffEnd)-8))

	list, err := riff.NewReader(bytes.NewReader(raw)).Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedChunks, err)
	}

	var chunks []chunk
	next := int64(12)
	for _, c := range list.Chunks {
		sr, ok := c.RIFFReader.(*io.SectionReader)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected chunk reader %T", ErrMalformedChunks, c.RIFFReader)
		}

		_, off, _ := sr.Outer()
		size := int64(binary.LittleEndian.Uint32(raw[off-4 : off]))
		chunks = append(chunks, chunk{id: string(c.ChunkID), data: body(raw, off, size)})
		next = off + size + size%2
	}

	for next+8 <= riffEnd {
		off := next + 8
		size := int64(binary.LittleEndian.Uint32(raw[next+4 : off]))
		chunks = append(chunks, chunk{id: string(raw[next : next+4]), data: body(raw, off, size)})
		next = off + size + size%2
	}

	return chunks, nil
}

// wholeChunksEnd returns the offset of the first chunk header before
// riffEnd whose body runs past the end of raw, or the end of the last chunk.
func wholeChunksEnd(raw []byte, riffEnd int64) int64 {
	next := int64(12)
	for next+8 <= riffEnd {
		size := int64(binary.LittleEndian.Uint32(raw[next+4 : next+8]))
		end := next + 8 + size + size%2
		if end > int64(len(raw)) {
			break
		}
		next = end
	}

	return next
}

func body(raw []byte, off, size int64) []byte {
	end := min(off+size, int64(len(raw)))
	if off >= end {
		return nil
	}

	return raw[off:end]
}

func findChunk(chunks []chunk, id string) *chunk {
	for i := range chunks {
		if chunks[i].id == id {
			return &chunks[i]
		}
	}

	return nil
}
