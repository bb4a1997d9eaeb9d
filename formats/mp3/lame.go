// SPDX-License-Identifier: EPL-2.0

//go:build cgo && lame

package mp3

/*
#cgo LDFLAGS: -lmp3lame
#include <lame/lame.h>
*/
import "C"

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/internal/codecio"
)

func encode(w io.Writer, seq *audio.Sequence, quality int) error {
	gfp := C.lame_init()
	if gfp == nil {
		return fmt.Errorf("%w: lame_init failed", audio.ErrCodecUnexpected)
	}
	defer C.lame_close(gfp)

	f := seq.Format()
	ch := f.ChannelCount()

	mode := C.MPEG_mode(C.MONO)
	if ch == 2 {
		mode = C.MPEG_mode(C.JOINT_STEREO)
	}

	C.lame_set_num_channels(gfp, C.int(ch))
	C.lame_set_in_samplerate(gfp, C.int(f.SampleRate()))
	C.lame_set_mode(gfp, mode)
	C.lame_set_quality(gfp, C.int(quality))
	C.lame_set_write_id3tag_automatic(gfp, 0)

	if rc := C.lame_init_params(gfp); rc < 0 {
		return lameError("lame_init_params", rc)
	}

	left := make([]float32, encodeChunkFrames)
	right := make([]float32, encodeChunkFrames)
	planes := [][]float32{left, right}[:ch]
	// Worst case given by lame.h: 1.25 * samples + 7200.
	out := make([]byte, encodeChunkFrames*5/4+7200)

	cw := codecio.NewWriter(w)
	frames := seq.FrameCount()

	for offset := 0; offset < frames; {
		n := seq.CopyChannels(planes, encodeChunkFrames, offset)

		r := right
		if ch == 1 {
			r = left
		}

		rc := C.lame_encode_buffer_ieee_float(gfp,
			(*C.float)(unsafe.Pointer(&left[0])),
			(*C.float)(unsafe.Pointer(&r[0])),
			C.int(n),
			(*C.uchar)(unsafe.Pointer(&out[0])),
			C.int(len(out)))
		if rc < 0 {
			return lameError("lame_encode_buffer_ieee_float", rc)
		}

		if _, err := cw.Write(out[:rc]); err != nil {
			return cw.Err()
		}
		offset += n
	}

	rc := C.lame_encode_flush(gfp, (*C.uchar)(unsafe.Pointer(&out[0])), C.int(len(out)))
	if rc < 0 {
		return lameError("lame_encode_flush", rc)
	}

	if _, err := cw.Write(out[:rc]); err != nil {
		return cw.Err()
	}

	return nil
}

func lameError(op string, rc C.int) error {
	return fmt.Errorf("%w: %s returned %d", audio.ErrCodecUnexpected, op, int(rc))
}
