// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/internal/audiotest"
)

func TestReadAll(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 2, 300).WithBufSize(64)

	seq, err := audio.ReadAll(src)
	require.NoError(t, err)

	assert.Equal(t, audio.MustFormat(2, 8000), seq.Format())
	assert.Equal(t, 300, seq.FrameCount())
	assert.True(t, src.Closed())

	frame, err := seq.ConstAt(123)
	require.NoError(t, err)
	right, _ := frame.At(1)
	assert.InDelta(t, 0.123+0.0001, right, 1e-6)
}

func TestReadAll_SplitFrames(t *testing.T) {
	t.Parallel()

	// 3 channels read 4 values at a time split almost every frame.
	src := audiotest.NewRampSource(16000, 3, 50).WithChunk(4).WithBufSize(7)

	seq, err := audio.ReadAll(src)
	require.NoError(t, err)
	require.Equal(t, 50, seq.FrameCount())

	for i, frame := range seq.All() {
		for ch := range 3 {
			v, err := frame.At(ch)
			require.NoError(t, err)
			require.InDelta(t, float32(i)/1000+float32(ch)/10000, v, 1e-6, "frame %d channel %d", i, ch)
		}
	}
}

func TestReadAll_ReadError(t *testing.T) {
	t.Parallel()

	errDevice := errors.New("device unplugged")
	src := audiotest.NewSilentSource(8000, 1, 100).WithReadError(10, errDevice)

	_, err := audio.ReadAll(src)
	require.ErrorIs(t, err, audio.ErrCodecIO)
	assert.ErrorIs(t, err, errDevice)
	assert.True(t, src.Closed())
}

func TestReadAll_ClassifiedErrorKept(t *testing.T) {
	t.Parallel()

	corrupt := errors.Join(audio.ErrCodecFormat, errors.New("bad sync word"))
	src := audiotest.NewSilentSource(8000, 1, 100).WithReadError(0, corrupt)

	_, err := audio.ReadAll(src)
	require.ErrorIs(t, err, audio.ErrCodecFormat)
	assert.NotErrorIs(t, err, audio.ErrCodecIO)
}

func TestReadAll_CloseError(t *testing.T) {
	t.Parallel()

	errClose := errors.New("close failed")
	src := audiotest.NewSilentSource(8000, 1, 10).WithCloseError(errClose)

	seq, err := audio.ReadAll(src)
	assert.Nil(t, seq)
	assert.ErrorIs(t, err, audio.ErrCodecIO)
	assert.ErrorIs(t, err, errClose)
}

func TestReadAll_InvalidFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
		want     error
	}{
		{"unsupported rate", 11025, 2, audio.ErrInvalidSampleRate},
		{"no channels", 8000, 0, audio.ErrInvalidChannelCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSilentSource(tt.rate, tt.channels, 10)
			_, err := audio.ReadAll(src)
			assert.ErrorIs(t, err, audio.ErrCodecFormat)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, src.Closed())
		})
	}
}

func TestReadAll_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	src := &valuesSource{channels: 2, values: []float32{1, 2, 3, 4, 5}}

	seq, err := audio.ReadAll(src)
	require.NoError(t, err)

	data, _ := seq.Data(0)
	assert.Equal(t, []float32{1, 2, 3, 4}, data)
}

func TestReadAll_ReservesKnownLength(t *testing.T) {
	t.Parallel()

	src := &valuesSource{channels: 1, values: make([]float32, 1000), sized: true}

	seq, err := audio.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, 1000, seq.FrameCount())
	assert.Equal(t, 1000, seq.Capacity())
}

func TestReadAll_NoProgress(t *testing.T) {
	t.Parallel()

	src := &valuesSource{channels: 1, stall: true}

	_, err := audio.ReadAll(src)
	require.ErrorIs(t, err, audio.ErrCodecIO)
	assert.ErrorIs(t, err, io.ErrNoProgress)
}

// valuesSource replays a fixed slice of values. FrameCount is only
// reported when sized is set; stall makes every read return nothing.
type valuesSource struct {
	channels int
	values   []float32
	sized    bool
	stall    bool
}

func (s *valuesSource) SampleRate() int { return 8000 }
func (s *valuesSource) Channels() int   { return s.channels }
func (s *valuesSource) BufSize() int    { return 3 }
func (s *valuesSource) Close() error    { return nil }

func (s *valuesSource) FrameCount() int {
	if !s.sized {
		return 0
	}

	return len(s.values) / s.channels
}

func (s *valuesSource) ReadSamples(dst []float32) (int, error) {
	if s.stall {
		return 0, nil
	}

	if len(s.values) == 0 {
		return 0, io.EOF
	}

	n := copy(dst, s.values)
	s.values = s.values[n:]

	return n, nil
}
