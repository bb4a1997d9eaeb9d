// SPDX-License-Identifier: EPL-2.0

// Package audseq reads and writes audio files as in-memory sample
// sequences.
//
// The heavy lifting is in package audio (Format, Sequence, Frame and the
// codec contracts) and in one package per file format under formats/. This
// package ties them together with a registry keyed by file extension:
//
//	seq, err := audseq.DecodeFile("in.flac")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = audseq.EncodeFile("out.wav", seq)
//
// # Supported Formats
//
//	extension   decode  encode
//	.wav        yes     yes (16-bit PCM)
//	.mp3        yes     with the "lame" build tag
//	.ogg        yes     with the "vorbisenc" build tag
//	.flac       yes     no
//	.aiff .aif  yes     no
//
// Without their build tags the MP3 and Vorbis coders return an error
// wrapping audio.ErrNotImplemented. Extensions match case-insensitively,
// with or without the leading dot.
//
// # Error Handling
//
// Lookups of unknown extensions fail with audio.ErrCoderNotFound or
// audio.ErrDecoderNotFound. Codec failures wrap audio.ErrCodecFormat,
// audio.ErrCodecIO or audio.ErrCodecUnexpected:
//
//	_, err := audseq.DecodeFile("broken.wav")
//	switch {
//	case errors.Is(err, audio.ErrCodecIO):
//	    // cannot read the file
//	case errors.Is(err, audio.ErrCodecFormat):
//	    // not valid WAV data
//	}
//
// # Custom Registries
//
// NewRegistry returns a fresh registry with the built-in bindings, which
// can be extended or overridden without touching DefaultRegistry:
//
//	r := audseq.NewRegistry()
//	r.RegisterCoder("mp3", mp3.Coder{Quality: audio.QualityBest})
//
// Tones for tests and demos can be synthesized with package generator.
package audseq
