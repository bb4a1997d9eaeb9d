// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameIterator_Distance(t *testing.T) {
	t.Parallel()

	seq, err := NewSequenceWithFrames(MustFormat(2, 44100), 10)
	require.NoError(t, err)

	begin, end := seq.Begin(), seq.End()
	assert.Equal(t, 10, begin.Distance(end), "distance is in frames, not samples")
	assert.Equal(t, -10, end.Distance(begin))
	assert.Equal(t, 0, begin.Index())
	assert.Equal(t, 10, end.Index())

	it := begin.Advance(3)
	assert.Equal(t, 3, it.Index())
	assert.Equal(t, 7, it.Distance(end))
	assert.True(t, it.Next().Prev().Equal(it))
	assert.True(t, begin.Before(it))
	assert.False(t, it.Before(begin))
	assert.True(t, end.Advance(-10).Equal(begin))
}

func TestFrameIterator_OtherSequence(t *testing.T) {
	t.Parallel()

	a, err := NewSequenceWithFrames(MustFormat(1, 8000), 2)
	require.NoError(t, err)
	b, err := NewSequenceWithFrames(MustFormat(1, 8000), 8)
	require.NoError(t, err)

	assert.False(t, a.Begin().SameSequence(b.End()))
	assert.True(t, a.Begin().SameSequence(a.End()))
	assert.False(t, a.Begin().Before(b.End()), "frames of another sequence are not ordered")
	assert.Equal(t, 0, a.Begin().Distance(b.End()))
	assert.False(t, a.Begin().Equal(b.Begin()))
}

func TestFrameIterator_Walk(t *testing.T) {
	t.Parallel()

	seq := newTestSequence(t, 3, 1, 1, 1, 2, 2, 2, 3, 3, 3)

	var firsts []float32
	for it := seq.Begin(); it.Before(seq.End()); it = it.Next() {
		frame, err := it.Frame()
		require.NoError(t, err)
		v, _ := frame.At(0)
		firsts = append(firsts, v)
	}

	assert.Equal(t, []float32{1, 2, 3}, firsts)
}

func TestFrameIterator_Bounds(t *testing.T) {
	t.Parallel()

	seq := newTestSequence(t, 1, 1, 2)

	_, err := seq.End().Frame()
	assert.ErrorIs(t, err, ErrFrameIndexOutOfRange)

	_, err = seq.Begin().Prev().Frame()
	assert.ErrorIs(t, err, ErrFrameIndexOutOfRange)
}

func TestFrameIterator_Stale(t *testing.T) {
	t.Parallel()

	seq := newTestSequence(t, 2, 0, 0)
	it := seq.Begin()
	require.True(t, it.Valid())

	require.NoError(t, seq.AppendInterleaved(make([]float32, 2048)))

	assert.False(t, it.Valid())
	_, err := it.Frame()
	assert.ErrorIs(t, err, ErrStaleReference)
	assert.False(t, FrameIterator{}.Valid())
}

func TestFrameIterator_SurvivesAppendWithinCapacity(t *testing.T) {
	t.Parallel()

	seq, err := NewSequence(MustFormat(1, 8000))
	require.NoError(t, err)
	require.NoError(t, seq.Reserve(16))

	it := seq.Begin()
	require.NoError(t, seq.AppendInterleaved([]float32{0.5}))

	frame, err := it.Frame()
	require.NoError(t, err)
	v, _ := frame.At(0)
	assert.Equal(t, float32(0.5), v)
}
