// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// Source is a stream of interleaved float32 PCM. Decoders expose one before
// collecting it into a Sequence.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Sized is implemented by sources that know their length up front.
type Sized interface {
	// FrameCount returns the number of frames left in the stream.
	FrameCount() int
}

// Decoder builds a Sequence from an encoded stream.
type Decoder interface {
	Decode(r io.Reader) (*Sequence, error)
}

// Coder serializes a Sequence into an encoded stream.
type Coder interface {
	Encode(w io.Writer, seq *Sequence) error
}

// StreamDecoder is implemented by decoders that can hand out the stream
// before it is fully read.
type StreamDecoder interface {
	Open(r io.Reader) (Source, error)
}

// Registry maps file extensions to coders and decoders. Extensions are
// matched case-insensitively, with or without the leading dot.
type Registry struct {
	coders   map[string]Coder
	decoders map[string]Decoder

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		coders:   make(map[string]Coder),
		decoders: make(map[string]Decoder),
		mtx:      &sync.RWMutex{},
	}
}

// RegisterCoder binds c to ext, replacing any previous binding.
func (r *Registry) RegisterCoder(ext string, c Coder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.coders[NormalizeExt(ext)] = c
}

// RegisterDecoder binds d to ext, replacing any previous binding.
func (r *Registry) RegisterDecoder(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[NormalizeExt(ext)] = d
}

// Coder returns the coder bound to ext, or ErrCoderNotFound.
func (r *Registry) Coder(ext string) (Coder, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	c, ok := r.coders[NormalizeExt(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCoderNotFound, ext)
	}

	return c, nil
}

// Decoder returns the decoder bound to ext, or ErrDecoderNotFound.
func (r *Registry) Decoder(ext string) (Decoder, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.decoders[NormalizeExt(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDecoderNotFound, ext)
	}

	return d, nil
}

// CoderExtensions returns the registered coder extensions, sorted.
func (r *Registry) CoderExtensions() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return sortedKeys(r.coders)
}

// DecoderExtensions returns the registered decoder extensions, sorted.
func (r *Registry) DecoderExtensions() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return sortedKeys(r.decoders)
}

// NormalizeExt lowercases ext and strips one leading dot.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
