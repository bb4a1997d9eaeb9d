// SPDX-License-Identifier: EPL-2.0

// Package audio provides the interleaved sample container and the codec
// contracts built around it.
//
// This package contains the core building blocks:
//   - Format describing channel count and sample rate
//   - Sequence, the owning growable store of interleaved samples
//   - Frame and ConstFrame views of one time slice
//   - FrameIterator for strided random access over frames
//   - Coder, Decoder and Source interfaces with an extension Registry
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0], channel 0 first:
//
//	frame 0         frame 1
//	[L0 R0]         [L1 R1]  ...
//
// ValueToSample and SampleToValue convert between float samples and
// fixed-width PCM. Signed types are scaled by the magnitude of their
// minimum. Unsigned types are offset binary, so 128 is silence for uint8.
// Conversion to integers saturates at the bounds of the type.
//
// # Sequences and Frames
//
//	f, _ := audio.NewFormat(2, 44100)
//	seq, _ := audio.NewSequenceWithDuration(f, time.Second)
//	frame, _ := seq.At(0)
//	_ = frame.Set(1, 0.5)
//
// Frames and iterators borrow the storage of their Sequence. Operations
// that reallocate it (Reserve, SetFrameCount or an Append growing past
// Capacity) make them stale, and using a stale borrow returns
// ErrStaleReference instead of touching freed memory.
//
// # Iteration
//
// A FrameIterator advances ChannelCount samples per step and measures
// distances in frames:
//
//	for it := seq.Begin(); it.Before(seq.End()); it = it.Next() {
//	    frame, _ := it.Frame()
//	    _ = frame.Fill(0)
//	}
//
// SetFrameCount returns an iterator on the first added frame, so filling
// only the new region is a loop from that iterator to End.
//
// # Error Handling
//
// Every error wraps one of the sentinels in errors.go and can be tested with
// errors.Is. Operations check their preconditions before mutating, so a
// failed Append or Assign leaves the storage unchanged. Copy clamps out of
// range requests instead of failing.
package audio
