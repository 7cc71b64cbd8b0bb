package state

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushAll(t *testing.T, h *History, texts ...string) {
	t.Helper()
	for _, text := range texts {
		_, err := h.Push(MustParse(text))
		require.NoError(t, err)
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(10)
	steps := []string{"", "M 0 0 L 1 1", "M 0 0 L 1 1 L 2 2", "M 0 0 L 1 1 L 2 2 Z"}
	pushAll(t, h, steps...)

	current, total := h.Stats()
	assert.Equal(t, 4, current)
	assert.Equal(t, 4, total)
	assert.False(t, h.CanRedo())

	for i := len(steps) - 2; i >= 0; i-- {
		seq, ok := h.Undo()
		require.True(t, ok)
		assert.Equal(t, steps[i], seq.String())
	}
	_, ok := h.Undo()
	assert.False(t, ok, "undo at the start of history is a no-op")

	for i := 1; i < len(steps); i++ {
		seq, ok := h.Redo()
		require.True(t, ok)
		assert.Equal(t, steps[i], seq.String())
	}
	_, ok = h.Redo()
	assert.False(t, ok, "redo at the end of history is a no-op")
}

func TestHistoryPushDiscardsRedoBranch(t *testing.T) {
	h := NewHistory(10)
	pushAll(t, h, "", "M 0 0 L 1 1", "M 0 0 L 1 1 L 2 2")

	h.Undo()
	h.Undo()
	pushAll(t, h, "M 5 5 L 6 6")

	assert.False(t, h.CanRedo())
	_, total := h.Stats()
	assert.Equal(t, 2, total)

	seq, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "", seq.String())
}

func TestHistorySkipsDuplicates(t *testing.T) {
	h := NewHistory(10)
	seq := MustParse("M 0 0 L 1 1")

	pushed, err := h.Push(seq)
	require.NoError(t, err)
	assert.True(t, pushed)

	pushed, err = h.Push(seq)
	require.NoError(t, err)
	assert.False(t, pushed)

	_, total := h.Stats()
	assert.Equal(t, 1, total)
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		pushAll(t, h, fmt.Sprintf("M %d 0", i))
	}
	_, total := h.Stats()
	assert.Equal(t, 3, total)

	h.Undo()
	seq, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "M 2 0", seq.String())
	assert.False(t, h.CanUndo())
}

func TestHistoryKeepsIDsAndCurves(t *testing.T) {
	h := NewHistory(0)
	seq := MustParse("M 0 0 Q 1 2 3 4 C 1 1 2 2 3 3 Z")
	straight := NewPoint(KindQuadratic, V(7, 7))
	seq = append(seq[:3], straight, seq[3])
	pushAll(t, h, "")
	_, err := h.Push(seq)
	require.NoError(t, err)

	got, ok := h.Current()
	require.True(t, ok)
	require.Len(t, got, len(seq))
	for i := range seq {
		assert.Equal(t, seq[i].ID(), got[i].ID())
		assert.Equal(t, seq[i].Kind(), got[i].Kind())
		assert.Equal(t, IsCurved(seq[i]), IsCurved(got[i]))
	}
	assert.Equal(t, seq.String(), got.String())
}

func TestHistoryRejectsNonFinite(t *testing.T) {
	h := NewHistory(0)
	_, err := h.Push(Sequence{NewMoveTo(V(math.Inf(1), 0))})
	assert.Error(t, err)
	_, total := h.Stats()
	assert.Zero(t, total)
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(0)
	pushAll(t, h, "", "M 0 0")
	h.Clear()
	assert.False(t, h.CanUndo())
	_, ok := h.Current()
	assert.False(t, ok)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("not json")
	assert.Error(t, err)
	_, err = Decode(`[{"k":"Q","id":"` + NewID().String() + `","p":[1,2]}]`)
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = Decode(`[{"k":"M","id":"nope","p":[1,2]}]`)
	assert.Error(t, err)
}
