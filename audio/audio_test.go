// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(io.Reader) (*Sequence, error) {
	return NewSequenceWithFrames(MustFormat(2, 44100), 100)
}

type mockCoder struct {
	name string
}

func (c *mockCoder) Encode(io.Writer, *Sequence) error { return nil }

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	coder := &mockCoder{name: "wav"}

	registry.RegisterDecoder("wav", decoder)
	registry.RegisterCoder("wav", coder)

	gotDecoder, err := registry.Decoder("wav")
	require.NoError(t, err)
	assert.Same(t, decoder, gotDecoder)

	gotCoder, err := registry.Coder("wav")
	require.NoError(t, err)
	assert.Same(t, coder, gotCoder)
}

func TestRegistry_NotFound(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.RegisterDecoder("flac", &mockDecoder{name: "flac"})

	_, err := registry.Decoder("nonexistent")
	assert.ErrorIs(t, err, ErrDecoderNotFound)
	assert.Contains(t, err.Error(), `"nonexistent"`)

	_, err = registry.Coder("flac")
	assert.ErrorIs(t, err, ErrCoderNotFound)
}

func TestRegistry_Normalization(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	mp3 := &mockDecoder{name: "mp3"}
	registry.RegisterDecoder(".MP3", mp3)

	for _, ext := range []string{"mp3", ".mp3", "MP3", ".Mp3"} {
		got, err := registry.Decoder(ext)
		require.NoError(t, err, ext)
		assert.Same(t, mp3, got, ext)
	}

	assert.Equal(t, []string{"mp3"}, registry.DecoderExtensions())
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockCoder{name: "first"}
	second := &mockCoder{name: "second"}

	registry.RegisterCoder("ogg", first)
	registry.RegisterCoder("OGG", second)

	got, err := registry.Coder("ogg")
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestRegistry_Extensions(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, ext := range []string{"wav", "ogg", "mp3"} {
		registry.RegisterCoder(ext, &mockCoder{name: ext})
	}
	registry.RegisterDecoder("aiff", &mockDecoder{name: "aiff"})

	assert.Equal(t, []string{"mp3", "ogg", "wav"}, registry.CoderExtensions())
	assert.Equal(t, []string{"aiff"}, registry.DecoderExtensions())
	assert.Empty(t, NewRegistry().CoderExtensions())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	var wg sync.WaitGroup

	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.RegisterDecoder("wav", &mockDecoder{name: "wav"})
		}()
		go func() {
			defer wg.Done()
			_, _ = registry.Decoder("wav")
			_ = registry.DecoderExtensions()
		}()
	}

	wg.Wait()

	_, err := registry.Decoder("wav")
	assert.NoError(t, err)
}

func TestNormalizeExt(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		".WAV":    "wav",
		"wav":     "wav",
		".tar.gz": "tar.gz",
		"":        "",
		"..ogg":   ".ogg",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeExt(in), in)
	}
}

func TestQuality(t *testing.T) {
	t.Parallel()

	var zero Quality
	assert.Equal(t, QualityGood, zero)

	for _, q := range []Quality{QualityBest, QualityGood, QualityAcceptable, QualityFastest} {
		assert.NoError(t, q.Validate(), q.String())
	}

	assert.Equal(t, "best", QualityBest.String())
	assert.Equal(t, "Quality(9)", Quality(9).String())
	assert.ErrorIs(t, Quality(9).Validate(), ErrInvalidQuality)
	assert.ErrorIs(t, Quality(-1).Validate(), ErrInvalidQuality)
}
