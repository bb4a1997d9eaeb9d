// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math/bits"
	"testing"
	"testing/iotest"

	goaudio "github.com/go-audio/audio"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ik5/audseq/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	err        error
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}

	return n, nil
}

func newMockSource(channels, depth int, samples ...int) (*source, *mockAiffReader) {
	mock := &mockAiffReader{sampleRate: 44100, channels: channels, samples: samples}

	return &source{
		dec:        mock,
		sampleRate: 44100,
		channels:   channels,
		bitDepth:   depth,
		frames:     len(samples) / channels,
	}, mock
}

// extended encodes an integral rate as an IEEE 754 80-bit extended float.
func extended(rate uint32) []byte {
	out := make([]byte, 10)
	if rate == 0 {
		return out
	}

	exp := bits.Len32(rate) - 1
	binary.BigEndian.PutUint16(out, uint16(16383+exp))
	binary.BigEndian.PutUint64(out[2:], uint64(rate)<<(63-exp))

	return out
}

// buildAIFF assembles a FORM/AIFF file with COMM and SSND chunks holding
// big-endian 16-bit samples.
func buildAIFF(channels int, rate uint32, depth int, samples ...int16) []byte {
	comm := binary.BigEndian.AppendUint16(nil, uint16(channels))
	comm = binary.BigEndian.AppendUint32(comm, uint32(len(samples)/channels))
	comm = binary.BigEndian.AppendUint16(comm, uint16(depth))
	comm = append(comm, extended(rate)...)

	ssnd := make([]byte, 8, 8+2*len(samples))
	for _, s := range samples {
		ssnd = binary.BigEndian.AppendUint16(ssnd, uint16(s))
	}

	body := []byte("AIFF")
	for _, chunk := range []struct {
		id   string
		data []byte
	}{{"COMM", comm}, {"SSND", ssnd}} {
		body = append(body, chunk.id...)
		body = binary.BigEndian.AppendUint32(body, uint32(len(chunk.data)))
		body = append(body, chunk.data...)
	}

	out := []byte("FORM")
	out = binary.BigEndian.AppendUint32(out, uint32(len(body)))

	return append(out, body...)
}

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	data := buildAIFF(2, 44100, 16, 0, -32768, 16384, -16384, 8192, 32767)

	seq, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got := seq.Format(); got.ChannelCount() != 2 || got.SampleRate() != 44100 {
		t.Errorf("Format() = %v, want 2ch@44100Hz", got)
	}

	got, err := seq.Data(0)
	if err != nil {
		t.Fatalf("Data(0): %v", err)
	}

	want := []float32{0, -1, 0.5, -0.5, 0.25, 32767.0 / 32768}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoder_NonSeekingReader(t *testing.T) {
	t.Parallel()

	data := buildAIFF(1, 8000, 16, 100, 200, 300)

	seq, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if seq.FrameCount() != 3 {
		t.Errorf("FrameCount() = %d, want 3", seq.FrameCount())
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	errDisk := errors.New("disk gone")

	tests := []struct {
		name string
		r    io.Reader
		want error
	}{
		{"garbage", bytes.NewReader([]byte("This is not AIFF data")), ErrNotAiffFile},
		{"empty", bytes.NewReader(nil), ErrNotAiffFile},
		{"12-bit samples", bytes.NewReader(buildAIFF(1, 8000, 12, 1, 2)), ErrUnsupportedBitDepth},
		{"read failure", iotest.ErrReader(errDisk), audio.ErrCodecIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(tt.r)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestErrors_WrapCodecFormat(t *testing.T) {
	t.Parallel()

	for _, err := range []error{ErrNotAiffFile, ErrUnsupportedBitDepth, ErrUnsupportedAiffLayout} {
		if !errors.Is(err, audio.ErrCodecFormat) {
			t.Errorf("%v does not wrap ErrCodecFormat", err)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(1, 16, 0, 16384, -16384, 32767, -32768)

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v, want nil or EOF", err)
	}
	if n != 5 {
		t.Fatalf("ReadSamples() n = %d, want 5", n)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768, -1}
	if diff := cmp.Diff(want, dst, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}

	if src.FrameCount() != 0 {
		t.Errorf("FrameCount() = %d after reading everything", src.FrameCount())
	}
}

func TestSource_ReadSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []int
		bufLen  int
		want    []int
		wantErr []error
	}{
		{"exact", []int{100, 200}, 2, []int{2, 0}, []error{io.EOF, io.EOF}},
		{"partial tail", []int{1, 2, 3, 4, 5}, 2, []int{2, 2, 1}, []error{nil, nil, io.EOF}},
		{"empty buffer", []int{1}, 0, []int{0}, []error{nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, _ := newMockSource(1, 16, tt.samples...)
			dst := make([]float32, tt.bufLen)

			for i := range tt.want {
				n, err := src.ReadSamples(dst)
				if n != tt.want[i] || !errors.Is(err, tt.wantErr[i]) || (tt.wantErr[i] == nil && err != nil) {
					t.Errorf("read %d = %d, %v; want %d, %v", i, n, err, tt.want[i], tt.wantErr[i])
				}
			}
		})
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src, mock := newMockSource(1, 16, 100, 200)
	mock.err = io.ErrUnexpectedEOF

	_, err := src.ReadSamples(make([]float32, 10))
	if !errors.Is(err, audio.ErrCodecFormat) {
		t.Fatalf("ReadSamples() error = %v, want ErrCodecFormat", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("underlying error lost: %v", err)
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(2, 16, make([]int, 100)...)

	if got := src.BufSize(); got != 4096 {
		t.Errorf("BufSize() = %d, want 4096 before the first read", got)
	}

	src.ReadSamples(make([]float32, 100))

	if got := src.BufSize(); got < 100 {
		t.Errorf("BufSize() = %d, want >= 100", got)
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		input    int
		want     float32
	}{
		{8, 127, 127.0 / 128},
		{8, -128, -1},
		{16, 32767, 32767.0 / 32768},
		{24, 8388607, 8388607.0 / 8388608},
		{32, -1 << 31, -1},
	}

	for _, tt := range tests {
		src, _ := newMockSource(1, tt.bitDepth, tt.input)

		dst := make([]float32, 1)
		if n, _ := src.ReadSamples(dst); n != 1 {
			t.Fatalf("%d-bit: ReadSamples() n = %d, want 1", tt.bitDepth, n)
		}

		if diff := cmp.Diff(tt.want, dst[0], cmpopts.EquateApprox(0, 1e-6)); diff != "" {
			t.Errorf("%d-bit: sample mismatch (-want +got):\n%s", tt.bitDepth, diff)
		}
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 4096)
	for i := range samples {
		samples[i] = i * 8
	}

	src, mock := newMockSource(2, 16, samples...)
	dst := make([]float32, 1024)

	b.ReportAllocs()
	for b.Loop() {
		mock.offset = 0

		for {
			n, err := src.ReadSamples(dst)
			if err == io.EOF || n == 0 {
				break
			}
		}
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	data := buildAIFF(2, 44100, 16, make([]int16, 2*44100)...)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
