// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding and encoding.
//
// Decoding uses github.com/hajimehoshi/go-mp3 and needs no cgo. Encoding
// uses LAME through cgo and is only built with the lame tag:
//
//	go build -tags lame ./...
//
// Without the tag Coder.Encode returns ErrEncoderUnavailable, which wraps
// audio.ErrNotImplemented.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	seq, err := mp3.Decoder{}.Decode(file)
//
// The decoded sequence is always stereo; mono streams are duplicated on
// both channels by go-mp3. When the input is seekable its length is
// measured up front and the sequence is allocated once.
//
// # Encoding MP3 Files
//
//	err := mp3.Coder{Quality: audio.QualityBest}.Encode(file, seq)
//
// Mono and stereo sequences at 8, 16, 22.05, 44.1 or 48 kHz can be
// encoded; stereo uses joint-stereo mode. Quality maps to the LAME
// algorithm quality (see LameQuality).
//
// # Error Handling
//
// A stream go-mp3 cannot parse wraps audio.ErrCodecFormat, a failing
// reader or writer wraps audio.ErrCodecIO, and LAME failures wrap
// audio.ErrCodecUnexpected. Sequences MP3 cannot carry are rejected with
// errors wrapping audio.ErrFormatMismatch.
package mp3
