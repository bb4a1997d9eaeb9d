// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// # Supported Formats
//
// Decoding accepts RIFF/WAVE files with:
//   - PCM 8-bit (unsigned, 128 is silence)
//   - PCM 16, 24 and 32-bit signed
//   - IEEE float 32-bit
//   - G.711 A-law and mu-law
//
// Any channel count and one of the sample rates a Format allows. RIFF
// chunks are walked with github.com/youpy/go-riff, so LIST, fact and other
// chunks around "fmt " and "data" are skipped. G.711 samples are expanded
// with github.com/zaf/g711.
//
// Encoding always writes 16-bit signed PCM.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	seq, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Open returns an audio.Source instead, for reading in chunks:
//
//	source, err := wav.Decoder{}.Open(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Writing WAV Files
//
//	file, _ := os.Create("output.wav")
//	err := wav.Coder{}.Encode(file, seq)
//
// Samples outside [-1, 1] are saturated.
//
// # File Format
//
// Files written by Coder consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: frame count × channels × 2 bytes of little-endian PCM
//
// # Error Handling
//
// Malformed input wraps audio.ErrCodecFormat together with one of the
// package errors (ErrNotWavFile, ErrMissingFormatChunk, ...). Read and
// write failures wrap audio.ErrCodecIO.
//
//	_, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
