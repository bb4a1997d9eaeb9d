// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// Chunk is a raw RIFF chunk.
type Chunk struct {
	ID   string
	Data []byte
}

// WAVHeader describes the fmt chunk of a WAV file built by BuildWAV.
type WAVHeader struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
}

// FormatChunk returns the fmt chunk for h, with byte rate and block align
// derived from the other fields.
func (h WAVHeader) FormatChunk() Chunk {
	blockAlign := h.Channels * (h.BitsPerSample / 8)

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, h.AudioFormat)
	binary.Write(buf, binary.LittleEndian, h.Channels)
	binary.Write(buf, binary.LittleEndian, h.SampleRate)
	binary.Write(buf, binary.LittleEndian, h.SampleRate*uint32(blockAlign))
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, h.BitsPerSample)

	return Chunk{ID: "fmt ", Data: buf.Bytes()}
}

// BuildRIFF assembles a RIFF/WAVE file from chunks, padding odd-sized
// chunks as RIFF requires.
func BuildRIFF(chunks ...Chunk) []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")
	for _, c := range chunks {
		body.WriteString(c.ID)
		binary.Write(body, binary.LittleEndian, uint32(len(c.Data)))
		body.Write(c.Data)
		if len(c.Data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(body.Len()))
	buf.Write(body.Bytes())

	return buf.Bytes()
}

// BuildWAV returns a WAV file with a fmt chunk for h followed by a data
// chunk holding data.
func BuildWAV(h WAVHeader, data []byte) []byte {
	return BuildRIFF(h.FormatChunk(), Chunk{ID: "data", Data: data})
}

// PCM16 encodes samples as little-endian int16.
func PCM16(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

// Float32 encodes samples as little-endian IEEE floats.
func Float32(samples ...float32) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
