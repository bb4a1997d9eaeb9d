// SPDX-License-Identifier: EPL-2.0

package audseq

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/formats/aiff"
	"github.com/ik5/audseq/formats/flac"
	"github.com/ik5/audseq/formats/mp3"
	"github.com/ik5/audseq/formats/vorbis"
	"github.com/ik5/audseq/formats/wav"
)

var (
	defaultRegistry     *audio.Registry
	defaultRegistryOnce sync.Once
)

// NewRegistry returns a registry with every built-in format bound to its
// usual file extensions. Lossy coders use audio.QualityGood.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.RegisterDecoder("wav", wav.Decoder{})
	r.RegisterDecoder("mp3", mp3.Decoder{})
	r.RegisterDecoder("ogg", vorbis.Decoder{})
	r.RegisterDecoder("flac", flac.Decoder{})
	r.RegisterDecoder("aiff", aiff.Decoder{})
	r.RegisterDecoder("aif", aiff.Decoder{})

	r.RegisterCoder("wav", wav.Coder{})
	r.RegisterCoder("mp3", mp3.Coder{Quality: audio.QualityGood})
	r.RegisterCoder("ogg", vorbis.Coder{Quality: audio.QualityGood})

	return r
}

// DefaultRegistry returns the shared registry used by the package level
// functions. Registering on it affects every later call.
func DefaultRegistry() *audio.Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// Coder returns the coder for ext (".wav", "MP3", ...).
func Coder(ext string) (audio.Coder, error) {
	return DefaultRegistry().Coder(ext)
}

// Decoder returns the decoder for ext.
func Decoder(ext string) (audio.Decoder, error) {
	return DefaultRegistry().Decoder(ext)
}

// Decode reads an ext-encoded stream from r.
func Decode(r io.Reader, ext string) (*audio.Sequence, error) {
	d, err := Decoder(ext)
	if err != nil {
		return nil, err
	}

	return d.Decode(r)
}

// Encode writes seq to w in the ext format.
func Encode(w io.Writer, ext string, seq *audio.Sequence) error {
	c, err := Coder(ext)
	if err != nil {
		return err
	}

	return c.Encode(w, seq)
}

// DecodeFile decodes the file at path, choosing the decoder by its
// extension.
func DecodeFile(path string) (*audio.Sequence, error) {
	d, err := Decoder(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrCodecIO, err)
	}
	defer f.Close()

	return d.Decode(f)
}

// EncodeFile writes seq to path, choosing the coder by its extension. The
// file is created or truncated; on failure it is removed.
func EncodeFile(path string, seq *audio.Sequence) (err error) {
	c, err := Coder(filepath.Ext(path))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrCodecIO, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", audio.ErrCodecIO, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return c.Encode(f, seq)
}
