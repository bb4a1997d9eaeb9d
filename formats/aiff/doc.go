// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the file. AIFF is
// Apple's uncompressed PCM container; it stores big-endian samples and an
// 80-bit float sample rate, both of which are handled by the decoder.
//
// # Supported Formats
//
//   - Uncompressed AIFF with 8, 16, 24 or 32-bit samples
//   - Any channel count and sample rate accepted by audio.NewFormat
//
// AIFF-C with compression is not supported, nor is writing.
//
// # Decoding
//
//	f, _ := os.Open("audio.aif")
//	seq, err := aiff.Decoder{}.Decode(f)
//
// go-audio needs an io.ReadSeeker. Readers that cannot seek are buffered in
// memory before parsing.
//
// # Error Handling
//
// All format errors wrap audio.ErrCodecFormat:
//   - ErrNotAiffFile: missing FORM/AIFF header
//   - ErrUnsupportedBitDepth: sample size other than 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: no usable COMM chunk
//
// Failures of the underlying reader wrap audio.ErrCodecIO.
package aiff
