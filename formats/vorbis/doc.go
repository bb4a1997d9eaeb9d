// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding and encoding.
//
// Vorbis is a free, open-source lossy audio compression format. Decoding
// uses github.com/jfreymuth/oggvorbis and needs no cgo. Encoding uses
// libvorbisenc and libogg through cgo and is only built with the vorbisenc
// tag:
//
//	go build -tags vorbisenc ./...
//
// Without the tag Coder.Encode returns ErrEncoderUnavailable, which wraps
// audio.ErrNotImplemented.
//
// # Decoding Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	seq, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Channel count and sample rate come from the stream. Open returns an
// audio.Source for chunked reading instead.
//
// # Encoding Vorbis Files
//
//	err := vorbis.Coder{Quality: audio.QualityGood}.Encode(file, seq)
//
// The encoder runs in variable bitrate mode; Quality maps to the base
// quality passed to vorbis_encode_init_vbr (see VBRQuality).
//
// # Channel Layout
//
// For stereo files, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// # Error Handling
//
// Streams that are not Ogg Vorbis wrap ErrInvalidStream and
// audio.ErrCodecFormat. Reader and writer failures wrap audio.ErrCodecIO,
// libvorbis failures audio.ErrCodecUnexpected.
package vorbis
