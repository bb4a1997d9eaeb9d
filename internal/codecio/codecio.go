// SPDX-License-Identifier: EPL-2.0

// Package codecio wraps the streams handed to codec libraries so that their
// failures can be told apart: a library reporting an error after the
// underlying stream failed is an I/O error, anything else is the library's.
package codecio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audseq/audio"
)

// Reader records the first non-EOF error of the wrapped reader.
type Reader struct {
	r   io.Reader
	err error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && r.err == nil {
		r.err = err
	}

	return n, err
}

// Err returns the first I/O failure seen, if any.
func (r *Reader) Err() error { return r.err }

// Wrap classifies err, returned by a library reading through r. It is an
// ErrCodecIO if the stream failed and kind otherwise.
func (r *Reader) Wrap(err, kind error) error {
	return wrap(err, r.err, kind)
}

// ReadSeeker is a Reader that forwards Seek to the wrapped stream.
type ReadSeeker struct {
	*Reader
	s io.Seeker
}

func NewReadSeeker(rs io.ReadSeeker) *ReadSeeker {
	return &ReadSeeker{Reader: NewReader(rs), s: rs}
}

func (r *ReadSeeker) Seek(offset int64, whence int) (int64, error) {
	n, err := r.s.Seek(offset, whence)
	if err != nil && r.err == nil {
		r.err = err
	}

	return n, err
}

// Writer records the first error of the wrapped writer and counts the bytes
// written.
type Writer struct {
	w   io.Writer
	n   int64
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}

	n, err := w.w.Write(p)
	w.n += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.err = err
	}

	return n, err
}

// Written returns the number of bytes written so far.
func (w *Writer) Written() int64 { return w.n }

// Err returns the first write failure, if any.
func (w *Writer) Err() error {
	if w.err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", audio.ErrCodecIO, w.err)
}

// Wrap classifies err like Reader.Wrap.
func (w *Writer) Wrap(err, kind error) error {
	return wrap(err, w.err, kind)
}

func wrap(err, ioErr, kind error) error {
	if err == nil {
		return nil
	}

	if ioErr != nil {
		return fmt.Errorf("%w: %w", audio.ErrCodecIO, ioErr)
	}

	return fmt.Errorf("%w: %w", kind, err)
}
