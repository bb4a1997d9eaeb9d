// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding with
// github.com/mewkiz/flac.
//
//	file, _ := os.Open("audio.flac")
//	seq, err := flac.Decoder{}.Decode(file)
//
// Integer samples are normalized by their bit depth, so a 24-bit stream
// and a 16-bit stream of the same signal decode to the same floats up to
// quantization. Encoding is not provided.
package flac
