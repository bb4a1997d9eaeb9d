// SPDX-License-Identifier: EPL-2.0

//go:build cgo && vorbisenc

package vorbis

/*
#cgo pkg-config: vorbisenc vorbis ogg
#include <stdlib.h>
#include <string.h>
#include <vorbis/vorbisenc.h>

enum {
	STAGE_INFO = 1,
	STAGE_COMMENT,
	STAGE_DSP,
	STAGE_BLOCK,
	STAGE_STREAM,
};

typedef struct {
	int stage;
	vorbis_info vi;
	vorbis_comment vc;
	vorbis_dsp_state vd;
	vorbis_block vb;
	ogg_stream_state os;
	ogg_page og;
	ogg_packet op;

	// Pages produced since the last drain by Go.
	unsigned char *out;
	long out_len;
	long out_cap;
} venc;

static int venc_append(venc *e, const unsigned char *p, long n) {
	if (e->out_len + n > e->out_cap) {
		long cap = e->out_cap ? e->out_cap : 16384;
		while (cap < e->out_len + n) cap *= 2;
		unsigned char *out = realloc(e->out, cap);
		if (!out) return OV_EFAULT;
		e->out = out;
		e->out_cap = cap;
	}
	memcpy(e->out + e->out_len, p, n);
	e->out_len += n;
	return 0;
}

static int venc_pages(venc *e, int flush) {
	while (flush ? ogg_stream_flush(&e->os, &e->og) : ogg_stream_pageout(&e->os, &e->og)) {
		if (venc_append(e, e->og.header, e->og.header_len) != 0) return OV_EFAULT;
		if (venc_append(e, e->og.body, e->og.body_len) != 0) return OV_EFAULT;
	}
	return 0;
}

static int venc_init(venc *e, long channels, long rate, float quality, int serial) {
	int rc;
	vorbis_info_init(&e->vi);
	e->stage = STAGE_INFO;
	if ((rc = vorbis_encode_init_vbr(&e->vi, channels, rate, quality)) != 0) return rc;

	vorbis_comment_init(&e->vc);
	e->stage = STAGE_COMMENT;
	vorbis_comment_add_tag(&e->vc, "ENCODER", "audseq");

	if ((rc = vorbis_analysis_init(&e->vd, &e->vi)) != 0) return rc;
	e->stage = STAGE_DSP;
	if ((rc = vorbis_block_init(&e->vd, &e->vb)) != 0) return rc;
	e->stage = STAGE_BLOCK;
	if ((rc = ogg_stream_init(&e->os, serial)) != 0) return OV_EFAULT;
	e->stage = STAGE_STREAM;

	ogg_packet header, comment, code;
	if ((rc = vorbis_analysis_headerout(&e->vd, &e->vc, &header, &comment, &code)) != 0) return rc;
	ogg_stream_packetin(&e->os, &header);
	ogg_stream_packetin(&e->os, &comment);
	ogg_stream_packetin(&e->os, &code);

	// Audio data starts on a fresh page.
	return venc_pages(e, 1);
}

static int venc_drain(venc *e) {
	int rc;
	while ((rc = vorbis_analysis_blockout(&e->vd, &e->vb)) == 1) {
		if ((rc = vorbis_analysis(&e->vb, NULL)) != 0) return rc;
		if ((rc = vorbis_bitrate_addblock(&e->vb)) != 0) return rc;
		while ((rc = vorbis_bitrate_flushpacket(&e->vd, &e->op)) == 1) {
			ogg_stream_packetin(&e->os, &e->op);
			if (venc_pages(e, 0) != 0) return OV_EFAULT;
		}
		if (rc < 0) return rc;
	}
	return rc;
}

// venc_write deinterleaves frames of pcm into the analysis buffer. Zero
// frames marks the end of the stream.
static int venc_write(venc *e, const float *pcm, int frames, int channels) {
	if (frames > 0) {
		float **buf = vorbis_analysis_buffer(&e->vd, frames);
		for (int i = 0; i < frames; i++) {
			for (int c = 0; c < channels; c++) {
				buf[c][i] = pcm[i * channels + c];
			}
		}
	}
	int rc = vorbis_analysis_wrote(&e->vd, frames);
	if (rc != 0) return rc;
	if ((rc = venc_drain(e)) != 0) return rc;
	return frames == 0 ? venc_pages(e, 1) : 0;
}

static void venc_free(venc *e) {
	switch (e->stage) {
	case STAGE_STREAM:
		ogg_stream_clear(&e->os);
	case STAGE_BLOCK:
		vorbis_block_clear(&e->vb);
	case STAGE_DSP:
		vorbis_dsp_clear(&e->vd);
	case STAGE_COMMENT:
		vorbis_comment_clear(&e->vc);
	case STAGE_INFO:
		vorbis_info_clear(&e->vi);
	}
	free(e->out);
	free(e);
}
*/
import "C"

import (
	"fmt"
	"io"
	"math/rand/v2"
	"unsafe"

	"github.com/ik5/audseq/audio"
	"github.com/ik5/audseq/internal/codecio"
)

func encode(w io.Writer, seq *audio.Sequence, quality float32) error {
	e := (*C.venc)(C.calloc(1, C.sizeof_venc))
	if e == nil {
		return fmt.Errorf("%w: out of memory", audio.ErrCodecUnexpected)
	}
	defer C.venc_free(e)

	f := seq.Format()
	ch := f.ChannelCount()

	if rc := C.venc_init(e, C.long(ch), C.long(f.SampleRate()), C.float(quality), C.int(rand.Int32())); rc != 0 {
		return vorbisError("vorbis encoder setup", rc)
	}

	cw := codecio.NewWriter(w)
	if err := drain(cw, e); err != nil {
		return err
	}

	frames := seq.FrameCount()
	pcm := make([]float32, encodeChunkFrames*ch)

	for offset := 0; offset < frames; {
		n := seq.Copy(pcm, encodeChunkFrames, offset)
		if rc := C.venc_write(e, (*C.float)(unsafe.Pointer(&pcm[0])), C.int(n), C.int(ch)); rc != 0 {
			return vorbisError("vorbis analysis", rc)
		}

		if err := drain(cw, e); err != nil {
			return err
		}
		offset += n
	}

	if rc := C.venc_write(e, nil, 0, C.int(ch)); rc != 0 {
		return vorbisError("vorbis end of stream", rc)
	}

	return drain(cw, e)
}

// drain writes the pages buffered by the encoder.
func drain(cw *codecio.Writer, e *C.venc) error {
	if e.out_len == 0 {
		return nil
	}

	page := unsafe.Slice((*byte)(unsafe.Pointer(e.out)), int(e.out_len))
	_, err := cw.Write(page)
	e.out_len = 0
	if err != nil {
		return cw.Err()
	}

	return nil
}

func vorbisError(op string, rc C.int) error {
	return fmt.Errorf("%w: %s failed with code %d", audio.ErrCodecUnexpected, op, int(rc))
}
