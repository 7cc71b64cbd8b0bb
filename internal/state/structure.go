package state

// Delete removes the drawable point at i and cleans up the subpath around
// it so that no degenerate subpath is left behind. The first matching rule
// wins:
//
//  1. the next point is Close, the previous one is drawable and not right
//     after the MoveTo, and i is the closing point (on the MoveTo) while
//     the previous one is not: the previous point is snapped onto the
//     MoveTo so the subpath still closes where it did, then only i is
//     removed;
//  2. the point sits alone between MoveTo and Close: all three go;
//  3. MoveTo, i, one more point, Close, where one of the two points lies
//     on the MoveTo: all four go;
//  4. MoveTo, one point, i, Close, again with a point on the MoveTo: all
//     four go;
//  5. otherwise only i is removed.
//
// Rules 3 and 4 only fire for a stub: a triangle whose vertices are all
// distinct keeps its other point and closes as a line.
//
// Delete returns a new sequence. Indices that are not drawable points are
// ignored.
func Delete(seq Sequence, i int) Sequence {
	if !Drawable(seq.At(i)) {
		return seq
	}
	seq = seq.Clone()
	before, after := seq.At(i-1), seq.At(i+1)
	before2, after2 := seq.At(i-2), seq.At(i+2)

	if isClose(after) && Drawable(before) && !isMove(before2) {
		m := seq[seq.AnchorMove(i)]
		if onAnchor(m, seq[i], nil) && !onAnchor(m, before, nil) {
			at := m.(*MoveTo).At
			for _, c := range Coords(before) {
				*c = at
			}
			return seq.remove(i, 1)
		}
	}

	switch {
	case isMove(before) && isClose(after):
		return seq.remove(i-1, 3)
	case isMove(before) && isClose(after2) && onAnchor(before, seq[i], after):
		return seq.remove(i-1, 4)
	case isMove(before2) && isClose(after) && onAnchor(before2, before, seq[i]):
		return seq.remove(i-2, 4)
	}
	return seq.remove(i, 1)
}

// onAnchor reports whether either point has its endpoint on the MoveTo m.
// b may be nil.
func onAnchor(m, a, b Point) bool {
	at := m.(*MoveTo).At
	for _, p := range []Point{a, b} {
		if end := Endpoint(p); end != nil && *end == at {
			return true
		}
	}
	return false
}

// Duplicate inserts a copy of the drawable point at i right after it and
// returns the new sequence and the copy's index. The copy gets a fresh ID
// and starts straight, with its handles on its endpoint.
func Duplicate(seq Sequence, i int) (Sequence, int) {
	p := seq.At(i)
	if !Drawable(p) {
		return seq, i
	}
	c := p.Clone()
	setID(c, NewID())
	Collapse(c)
	return seq.insert(i+1, c), i + 1
}

// cycleOrder is the order in which CycleKind steps through point shapes.
var cycleOrder = []Kind{KindLineTo, KindQuadratic, KindSmoothQuadratic, KindCubic}

func cyclePosition(k Kind) int {
	for i, c := range cycleOrder {
		if c == k {
			return i
		}
	}
	// SmoothEndpoint has no handles and joins the cycle as LineTo.
	return 0
}

// CycleDefault steps k through LineTo, Quadratic, SmoothQuadratic, Cubic.
// A negative dir steps backwards.
func CycleDefault(k Kind, dir int) Kind {
	n := len(cycleOrder)
	return cycleOrder[((cyclePosition(k)+dir)%n+n)%n]
}

// CycleKind returns p converted to the next shape in the cycle. Handles
// that exist in both shapes are kept; new handles start on the endpoint.
// MoveTo and Close points are returned unchanged.
func CycleKind(p Point, dir int) Point {
	if !Drawable(p) {
		return p
	}
	at := *Endpoint(p)
	old := Handles(p)
	next := newPointWithID(p.ID(), CycleDefault(p.Kind(), dir), at)
	hs := Handles(next)
	if len(old) == 0 || len(hs) == 0 {
		return next
	}
	switch {
	case len(old) == len(hs):
		for i := range hs {
			*hs[i] = *old[i]
		}
	case len(old) == 2 && next.Kind() == KindSmoothQuadratic:
		// the single S handle steers the end of the segment, like C's second
		*hs[0] = *old[1]
	case len(old) == 2:
		*hs[0] = *old[0]
	case p.Kind() == KindSmoothQuadratic:
		*hs[1] = *old[0]
	default:
		*hs[0] = *old[0]
	}
	SetCurved(next, IsCurved(p))
	return next
}

// CancelDraw finishes an in-progress drawing. If active is the last point,
// it is rewritten as a straight point of kind k on its subpath's MoveTo and
// a Close is appended. If that leaves a subpath of a MoveTo and a single
// point, the three trailing elements are removed instead.
func CancelDraw(seq Sequence, active int, k Kind) Sequence {
	if active != len(seq)-1 || !Drawable(seq.At(active)) {
		return seq
	}
	seq = seq.Clone()
	anchor := seq[seq.AnchorMove(active)].(*MoveTo).At
	seq[active] = newPointWithID(seq[active].ID(), k, anchor)
	seq = append(seq, NewClose())
	if n := len(seq); isMove(seq.At(n - 3)) {
		return seq[:n-3]
	}
	return seq
}

func setID(p Point, id ID) {
	switch p := p.(type) {
	case *MoveTo:
		p.id = id
	case *Close:
		p.id = id
	case *Single:
		p.id = id
	case *Double:
		p.id = id
	case *Triple:
		p.id = id
	}
}
