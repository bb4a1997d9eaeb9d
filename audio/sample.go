// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Value is a fixed-width PCM sample type a Sequence can convert to and from.
type Value interface {
	int8 | int16 | int32 | uint8 | uint16 | uint32 | float32
}

// ValueToSample normalizes a PCM value to a float sample in [-1, 1].
//
// Signed values are divided by the magnitude of the type's minimum, so the
// type's minimum maps to exactly -1. Unsigned values are offset binary: the
// midpoint of the range is silence (128 for uint8, as in 8-bit WAV).
// float32 passes through unchanged.
func ValueToSample[T Value](v T) float32 {
	switch x := any(v).(type) {
	case int8:
		return normalize(float64(x), 1<<7)
	case int16:
		return normalize(float64(x), 1<<15)
	case int32:
		return normalize(float64(x), 1<<31)
	case uint8:
		return normalize(float64(x)-(1<<7), 1<<7)
	case uint16:
		return normalize(float64(x)-(1<<15), 1<<15)
	case uint32:
		return normalize(float64(x)-(1<<31), 1<<31)
	case float32:
		return x
	}

	return 0
}

// SampleToValue scales a float sample to the PCM type T, saturating at the
// bounds of T and truncating toward zero. NaN maps to silence.
func SampleToValue[T Value](s float32) T {
	var zero T

	switch any(zero).(type) {
	case int8:
		return T(int8(quantize(s, 1<<7)))
	case int16:
		return T(int16(quantize(s, 1<<15)))
	case int32:
		return T(int32(quantize(s, 1<<31)))
	case uint8:
		return T(uint8(quantize(s, 1<<7) + (1 << 7)))
	case uint16:
		return T(uint16(quantize(s, 1<<15) + (1 << 15)))
	case uint32:
		return T(uint32(quantize(s, 1<<31) + (1 << 31)))
	case float32:
		return T(s)
	}

	return zero
}

// IntToSample normalizes an integer sample of the given bit depth, for
// decoders whose libraries hand out PCM as plain ints (24-bit FLAC or AIFF).
// Bit depths outside [1, 32] are treated as 16.
func IntToSample(v int, bitDepth int) float32 {
	if bitDepth < 1 || bitDepth > 32 {
		bitDepth = 16
	}

	return normalize(float64(v), float64(int64(1)<<(bitDepth-1)))
}

func normalize(v, bound float64) float32 {
	return float32(clamp(v/bound, -1, 1))
}

// quantize maps s onto [-bound, bound-1] as an int64.
func quantize(s float32, bound float64) int64 {
	x := float64(s)
	if math.IsNaN(x) {
		return 0
	}

	return int64(clamp(x*bound, -bound, bound-1))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
