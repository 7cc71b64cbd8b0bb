package state

import "fmt"

// Sequence is an ordered path. Insertion order is rendering order.
type Sequence []Point

// Clone deep-copies the sequence. IDs are preserved.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	for i, p := range s {
		if p != nil {
			out[i] = p.Clone()
		}
	}
	return out
}

// At returns the point at i, or nil when i is out of range.
func (s Sequence) At(i int) Point {
	if i < 0 || i >= len(s) {
		return nil
	}
	return s[i]
}

// IndexOf returns the index of the point with the given ID, or -1.
func (s Sequence) IndexOf(id ID) int {
	if id.IsZero() {
		return -1
	}
	for i, p := range s {
		if p != nil && p.ID() == id {
			return i
		}
	}
	return -1
}

// Find returns the point with the given ID and its index.
func (s Sequence) Find(id ID) (Point, int) {
	i := s.IndexOf(id)
	if i < 0 {
		return nil, -1
	}
	return s[i], i
}

// CountDrawable returns the number of coordinate points that are not
// MoveTo.
func (s Sequence) CountDrawable() int {
	n := 0
	for _, p := range s {
		if Drawable(p) {
			n++
		}
	}
	return n
}

// Subpaths returns the number of MoveTo points.
func (s Sequence) Subpaths() int {
	n := 0
	for _, p := range s {
		if isMove(p) {
			n++
		}
	}
	return n
}

// AnchorMove returns the index of the MoveTo that opens the subpath
// containing i. It panics if there is none: every drawable point belongs to
// a subpath.
func (s Sequence) AnchorMove(i int) int {
	if i < 0 || i >= len(s) {
		panic(fmt.Sprintf("state: anchor lookup at %d outside sequence of %d", i, len(s)))
	}
	for j := i - 1; j >= 0; j-- {
		switch s[j].(type) {
		case *MoveTo:
			return j
		case *Close:
			panic(fmt.Sprintf("state: point %d has no MoveTo before the Close at %d", i, j))
		}
	}
	panic(fmt.Sprintf("state: point %d has no MoveTo", i))
}

// remove returns a copy of s without the n elements starting at i.
func (s Sequence) remove(i, n int) Sequence {
	out := make(Sequence, 0, len(s)-n)
	out = append(out, s[:i]...)
	return append(out, s[i+n:]...)
}

// insert returns a copy of s with p placed at i.
func (s Sequence) insert(i int, p Point) Sequence {
	out := make(Sequence, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, p)
	return append(out, s[i:]...)
}
