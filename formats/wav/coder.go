// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/internal/codecio"
)

const (
	// HeaderSize is the size of the header written by Coder.
	HeaderSize = 44

	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
	// chunkFrames is the number of frames converted per write.
	chunkFrames = 4096
)

// Coder writes 16-bit signed PCM WAV files with the canonical 44-byte
// header. Samples are saturated to the int16 range.
type Coder struct{}

func (Coder) Encode(w io.Writer, seq *audio.Sequence) error {
	f := seq.Format()
	frames := seq.FrameCount()
	ch := f.ChannelCount()

	blockAlign := uint64(ch) * bytesPerSample
	if blockAlign > math.MaxUint16 || blockAlign*uint64(f.SampleRate()) > math.MaxUint32 {
		return fmt.Errorf("%w: %d channels at %d Hz", ErrUnsupportedLayout, ch, f.SampleRate())
	}

	dataSize := uint64(frames) * uint64(ch) * bytesPerSample
	if dataSize > math.MaxUint32-(HeaderSize-8) {
		return fmt.Errorf("%w: %d bytes", ErrDataTooLarge, dataSize)
	}

	cw := codecio.NewWriter(w)
	if _, err := cw.Write(header(f, uint32(dataSize))); err != nil {
		return cw.Err()
	}

	if frames == 0 {
		return nil
	}

	samples := make([]float32, min(frames, chunkFrames)*ch)
	buf := make([]byte, len(samples)*bytesPerSample)

	for offset := 0; offset < frames; {
		n := seq.Copy(samples, chunkFrames, offset)
		chunk := buf[:n*ch*bytesPerSample]
		for i, s := range samples[:n*ch] {
			binary.LittleEndian.PutUint16(chunk[i*2:], uint16(audio.SampleToValue[int16](s)))
		}

		if _, err := cw.Write(chunk); err != nil {
			return cw.Err()
		}
		offset += n
	}

	return nil
}

func header(f audio.Format, dataSize uint32) []byte {
	ch := uint16(f.ChannelCount())
	rate := uint32(f.SampleRate())
	blockAlign := ch * bytesPerSample
	byteRate := rate * uint32(blockAlign)

	h := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], HeaderSize-8+dataSize)
	copy(h[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], FormatPCM)
	binary.LittleEndian.PutUint16(h[22:24], ch)
	binary.LittleEndian.PutUint32(h[24:28], rate)
	binary.LittleEndian.PutUint32(h[28:32], byteRate)
	binary.LittleEndian.PutUint16(h[32:34], blockAlign)
	binary.LittleEndian.PutUint16(h[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}
