package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteDefaultRemovesOnePoint(t *testing.T) {
	seq := MustParse("M 0 0 L 10 0 L 10 10 Z")
	out := Delete(seq, 1)
	assert.Equal(t, "M 0 0 L 10 10 Z", out.String())
	assert.Equal(t, "M 0 0 L 10 0 L 10 10 Z", seq.String(), "input must not change")
}

func TestDeleteSnapsClosingPointToMoveTo(t *testing.T) {
	seq := MustParse("M 5 5 L 10 0 Q 12 12 20 20 L 5 5 Z")
	out := Delete(seq, 3)

	require.Len(t, out, 4)
	assert.Equal(t, "M 5 5 L 10 0 Q 5 5 5 5 Z", out.String())
	last := out[2].(*Double)
	assert.Equal(t, V(5, 5), last.At)
	assert.Equal(t, V(5, 5), last.Ctrl)
}

func TestDeleteLastPointOffAnchorKeepsPrevious(t *testing.T) {
	seq := MustParse("M 5 5 L 10 0 Q 12 12 20 20 L 30 30 Z")
	assert.Equal(t, "M 5 5 L 10 0 Q 12 12 20 20 Z", Delete(seq, 3).String())
}

func TestDeleteClosingPointWhenPreviousOnAnchor(t *testing.T) {
	seq := MustParse("M 0 0 L 10 0 Q 20 20 0 0 L 0 0 Z")
	assert.Equal(t, "M 0 0 L 10 0 Q 20 20 0 0 Z", Delete(seq, 3).String())
}

func TestDeleteSinglePointSubpath(t *testing.T) {
	seq := MustParse("M 0 0 L 10 0 L 0 0 Z M 50 50 L 60 60 Z M 80 80 L 80 80 Z")
	out := Delete(seq, 8)
	assert.Equal(t, seq.Subpaths()-1, out.Subpaths())
	assert.Equal(t, "M 0 0 L 10 0 L 0 0 Z M 50 50 L 60 60 Z", out.String())
}

func TestDeleteStubs(t *testing.T) {
	t.Run("point after MoveTo", func(t *testing.T) {
		seq := MustParse("M 1 1 L 2 2 L 3 3 Z M 9 9 L 8 8 L 9 9 Z")
		out := Delete(seq, 5)
		assert.Equal(t, "M 1 1 L 2 2 L 3 3 Z", out.String())
	})
	t.Run("point before Close", func(t *testing.T) {
		seq := MustParse("M 9 9 L 8 8 L 9 9 Z M 1 1 L 2 2 Z")
		out := Delete(seq, 2)
		assert.Equal(t, "M 1 1 L 2 2 Z", out.String())
	})
}

func TestDeleteKeepsTriangleWithDistinctPoints(t *testing.T) {
	seq := MustParse("M 0 0 L 10 0 L 10 10 Z")
	assert.Equal(t, "M 0 0 L 10 0 Z", Delete(seq, 2).String())
}

func TestDeleteOpenSubpath(t *testing.T) {
	seq := MustParse("M 0 0 L 1 1 L 2 2")
	assert.Equal(t, "M 0 0 L 1 1", Delete(seq, 2).String())
	assert.Equal(t, "M 0 0 L 2 2", Delete(seq, 1).String())
}

func TestDeleteIgnoresAnchors(t *testing.T) {
	seq := MustParse("M 0 0 L 1 1 Z")
	assert.Equal(t, seq, Delete(seq, 0))
	assert.Equal(t, seq, Delete(seq, 2))
	assert.Equal(t, seq, Delete(seq, 7))
}

func TestDeletePanicsWithoutMoveTo(t *testing.T) {
	seq := Sequence{NewPoint(KindLineTo, V(1, 1)), NewPoint(KindLineTo, V(2, 2)), NewClose()}
	assert.Panics(t, func() { Delete(seq, 1) })
}

func TestDuplicate(t *testing.T) {
	seq := MustParse("M 0 0 Q 5 5 10 0 L 20 0 L 30 0")
	out, idx := Duplicate(seq, 1)
	require.Equal(t, 2, idx)
	require.Len(t, out, 5)

	orig, dup := out[1].(*Double), out[2].(*Double)
	assert.True(t, orig.Curved)
	assert.False(t, dup.Curved)
	assert.Equal(t, dup.At, dup.Ctrl)
	assert.Equal(t, orig.At, dup.At)
	assert.NotEqual(t, orig.ID(), dup.ID())
	assert.Equal(t, "M 0 0 Q 5 5 10 0 L 10 0 L 20 0 L 30 0", out.String())
}

func TestDuplicateThenDeleteRestores(t *testing.T) {
	for _, tc := range []struct {
		text  string
		index int
	}{
		{"M 0 0 L 10 0 L 20 0", 1},
		{"M 0 0 L 10 0 L 20 0", 2},
		{"M 0 0 Q 5 5 10 0 L 20 20 L 0 0 Z", 1},
		{"M 0 0 C 1 1 2 2 3 3 L 5 5 L 6 6 Z", 1},
		{"M 0 0 L 10 0 Z", 1},
		{"M 0 0 L 10 0 L 10 10 Z", 2},
		{"M 0 0 L 10 0 Q 20 20 0 0 Z", 2},
		{"M 0 0 L 10 0 C 1 5 9 5 12 12 Z", 2},
		{"M 0 0 L 10 0 L 0 0 Z M 50 50 L 60 50 Q 70 70 55 60 Z", 6},
	} {
		seq := MustParse(tc.text)
		before, err := Encode(seq)
		require.NoError(t, err)

		dup, idx := Duplicate(seq, tc.index)
		require.Equal(t, tc.index+1, idx)
		after, err := Encode(Delete(dup, idx))
		require.NoError(t, err)
		assert.Equal(t, before, after, "%s at %d", tc.text, tc.index)
	}
}

func TestCycleKind(t *testing.T) {
	var p Point = NewPoint(KindLineTo, V(4, 4))
	id := p.ID()

	want := []Kind{KindQuadratic, KindSmoothQuadratic, KindCubic, KindLineTo}
	for _, k := range want {
		p = CycleKind(p, 1)
		assert.Equal(t, k, p.Kind())
		assert.Equal(t, id, p.ID())
		for _, h := range Handles(p) {
			assert.Equal(t, V(4, 4), *h)
		}
		assert.False(t, IsCurved(p))
	}

	p = CycleKind(p, -1)
	assert.Equal(t, KindCubic, p.Kind())
}

func TestCycleKindKeepsHandles(t *testing.T) {
	q := MustParse("M 0 0 Q 1 2 3 4")[1]
	s := CycleKind(q, 1).(*Double)
	assert.Equal(t, KindSmoothQuadratic, s.Type)
	assert.Equal(t, V(1, 2), s.Ctrl)
	assert.True(t, s.Curved)

	c := CycleKind(s, 1).(*Triple)
	assert.Equal(t, V(3, 4), c.Ctrl)
	assert.Equal(t, V(1, 2), c.Ctrl2)

	back := CycleKind(c, -1).(*Double)
	assert.Equal(t, V(1, 2), back.Ctrl)

	line := CycleKind(c, 1)
	assert.Empty(t, Handles(line))
	assert.False(t, IsCurved(line))
}

func TestCycleKindSkipsAnchors(t *testing.T) {
	m := NewMoveTo(V(1, 1))
	assert.Same(t, m, CycleKind(m, 1))
	assert.Equal(t, KindQuadratic, CycleDefault(KindSmoothEndpoint, 1))
	assert.Equal(t, KindCubic, CycleDefault(KindLineTo, -1))
}

func TestCancelDraw(t *testing.T) {
	seq := MustParse("M 5 5 L 10 0 L 20 20 Q 30 30 40 40")
	out := CancelDraw(seq, 3, KindQuadratic)
	assert.Equal(t, "M 5 5 L 10 0 L 20 20 L 5 5 Z", out.String())
	assert.Equal(t, seq[3].ID(), out[3].ID())
	assert.False(t, IsCurved(out[3]))
}

func TestCancelDrawErasesStub(t *testing.T) {
	seq := MustParse("M 0 0 L 1 1 L 0 0 Z M 5 5 L 9 9")
	out := CancelDraw(seq, 5, KindLineTo)
	assert.Equal(t, "M 0 0 L 1 1 L 0 0 Z", out.String())
}

func TestCancelDrawNotLast(t *testing.T) {
	seq := MustParse("M 0 0 L 1 1 L 2 2")
	assert.Equal(t, seq, CancelDraw(seq, 1, KindLineTo))
}
