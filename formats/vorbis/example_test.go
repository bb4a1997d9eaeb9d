// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/formats/vorbis"
	"github.com/ik5/audseq/formats/wav"
)

// ExampleDecoder_Decode shows how to decode an Ogg Vorbis file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	seq, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded Vorbis: %v, %d frames\n", seq.Format(), seq.FrameCount())
}

// ExampleDecoder_Decode_convertToWav demonstrates converting Ogg Vorbis to WAV format.
func ExampleDecoder_Decode_convertToWav() {
	oggFile, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer oggFile.Close()

	seq, err := vorbis.Decoder{}.Decode(oggFile)
	if err != nil {
		log.Fatal(err)
	}

	wavFile, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer wavFile.Close()

	if err := (wav.Coder{}).Encode(wavFile, seq); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Ogg Vorbis converted to WAV")
}

// ExampleDecoder_Open demonstrates streaming Ogg Vorbis decoding.
func ExampleDecoder_Open() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Open(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	buf := make([]float32, 4096)

	var totalSamples int
	for {
		n, err := src.ReadSamples(buf)
		totalSamples += n

		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Streamed %d samples from Ogg Vorbis\n", totalSamples)
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid Ogg Vorbis files.
func ExampleDecoder_Decode_errorHandling() {
	invalidData := bytes.NewReader([]byte("not an ogg file"))

	_, err := vorbis.Decoder{}.Decode(invalidData)
	if errors.Is(err, vorbis.ErrInvalidStream) {
		fmt.Println("Not an Ogg Vorbis stream")
		return
	}

	fmt.Println("Ogg Vorbis decoded successfully")
	// Output: Not an Ogg Vorbis stream
}

// ExampleCoder_Encode encodes one second of stereo silence at the best
// quality.
func ExampleCoder_Encode() {
	seq, _ := audio.NewSequenceWithFrames(audio.MustFormat(2, 48000), 48000)

	out := new(bytes.Buffer)
	err := vorbis.Coder{Quality: audio.QualityBest}.Encode(out, seq)
	if errors.Is(err, audio.ErrNotImplemented) {
		fmt.Println("built without the vorbisenc tag")
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Encoded %d bytes\n", out.Len())
}
