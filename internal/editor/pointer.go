package editor

import (
	"PathBoard/internal/state"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

func (b Button) String() string {
	if b == ButtonSecondary {
		return "secondary"
	}
	return "primary"
}

// PointerEvent is a pointer press, release or move in path coordinates.
// Button is ignored for moves.
type PointerEvent struct {
	At     state.Vec
	Button Button
}

// WheelEvent is a scroll at At. Negative DeltaY zooms in.
type WheelEvent struct {
	At     state.Vec
	DeltaY float64
}

func (e *Editor) buttonState(b Button) *button {
	if b == ButtonSecondary {
		return &e.right
	}
	return &e.left
}

// PointerDown handles a button press.
func (e *Editor) PointerDown(ev PointerEvent) {
	e.flush()
	at := e.snap(ev.At)
	btn := e.buttonState(ev.Button)
	btn.down, btn.from = true, at
	e.track(at)

	if ev.Button == ButtonSecondary {
		switch {
		case e.drawing:
			e.cancelDraw()
		case !e.active.IsZero():
			e.commit("move")
		}
		e.clearSelection()
		e.lastPan = at
		return
	}

	if e.active.IsZero() && e.nearby.Contains(e.selectedIndex()) {
		e.active = e.selected
		e.drawing = false
		e.log.Debug("moving point", "index", e.selectedIndex())
	}
}

// PointerUp handles a button release.
func (e *Editor) PointerUp(ev PointerEvent) {
	at := e.snap(ev.At)
	e.buttonState(ev.Button).down = false
	e.track(at)

	if ev.Button == ButtonSecondary {
		if e.panning {
			e.panning = false
			e.commit("pan")
		}
		return
	}

	switch {
	case e.handleDrag:
		e.handleDrag = false
		e.commit("handle")
	case e.active.IsZero() && !e.nearby.Empty():
		i := e.picker.Pick(e.nearby.Within)
		e.selected = e.seq[i].ID()
		e.log.Debug("selected point", "index", i, "nearby", len(e.nearby.Within))
	case e.drawing || (e.active.IsZero() && e.selected.IsZero()):
		e.placePoint()
	case !e.active.IsZero():
		e.active = state.NoID
		e.commit("move")
	default:
		e.selected = state.NoID
	}
}

// PointerMove handles pointer motion with or without buttons held.
func (e *Editor) PointerMove(ev PointerEvent) {
	at := e.snap(ev.At)
	e.track(at)
	switch {
	case e.right.down && e.active.IsZero():
		e.pan()
	case e.left.down && e.active.IsZero() && !e.selected.IsZero():
		e.dragHandle()
	}
}

// Wheel zooms around the pointer. Events closer together than one frame
// are dropped, and the snapshot is written by Tick once the wheel is quiet.
func (e *Editor) Wheel(ev WheelEvent) {
	if ev.DeltaY == 0 || !e.active.IsZero() || e.drawing {
		return
	}
	now := e.now()
	if !e.lastZoom.IsZero() && now.Sub(e.lastZoom) < e.cfg.FrameInterval() {
		return
	}
	factor := e.cfg.ZoomStep
	if ev.DeltaY > 0 {
		factor = 1 / factor
	}
	e.pointer = e.snap(ev.At)
	state.Zoom(e.seq, e.pointer, factor)
	e.zoomPending = true
	e.lastZoom = now
}

func (e *Editor) snap(at state.Vec) state.Vec {
	if e.gridSnap {
		return state.SnapToGrid(at, e.cfg.GridSize)
	}
	return at
}

// track moves the active point to the pointer, or refreshes the points near
// the pointer when nothing is active.
func (e *Editor) track(at state.Vec) {
	e.pointer = at
	if e.active.IsZero() {
		e.nearby = state.Query(e.seq, at, e.cfg.SelectDistance)
		return
	}
	e.dragActive()
}

func (e *Editor) dragActive() {
	p, i := e.seq.Find(e.active)
	if p == nil {
		e.log.Warn("active point vanished", "id", e.active)
		e.active, e.drawing = state.NoID, false
		return
	}
	end := state.Endpoint(p)
	was := *end
	delta := e.pointer.Sub(was)
	threshold := e.cfg.SelectDistance * e.cfg.SelectDistance

	switch {
	case e.drawing && e.left.down && e.pointer.DistSq(e.left.from) > threshold:
		// click-drag while placing bends the segment towards the press point
		for _, h := range state.Handles(p) {
			*h = e.left.from
		}
		state.SetCurved(p, true)
	case state.IsCurved(p):
		if !e.drawing {
			for _, h := range state.Handles(p) {
				*h = h.Add(delta)
			}
		}
	default:
		for _, h := range state.Handles(p) {
			*h = e.pointer
		}
	}
	*end = e.pointer

	// a closing point that sits on its subpath's start carries the start along
	if _, ok := e.seq.At(i + 1).(*state.Close); ok {
		if m := e.seq[e.seq.AnchorMove(i)].(*state.MoveTo); m.At == was {
			m.At = e.pointer
		}
	}
}

// dragHandle moves the nearer handle of the selected point to the pointer.
func (e *Editor) dragHandle() {
	if e.drawing {
		return
	}
	p, _ := e.seq.Find(e.selected)
	hs := state.Handles(p)
	if len(hs) == 0 {
		return
	}
	end := *state.Endpoint(p)
	h := hs[0]
	if len(hs) == 2 && hs[1].DistSq(e.pointer) < hs[0].DistSq(e.pointer) {
		h = hs[1]
	}
	toEnd := end.DistSq(e.pointer)
	if toEnd < h.DistSq(e.pointer) {
		return
	}
	e.handleDrag = true

	snap := e.cfg.HandleSnapDistance * e.cfg.HandleSnapDistance
	if toEnd < snap && end.DistSq(*h) < snap {
		*h = end
		straight := true
		for _, o := range hs {
			straight = straight && *o == end
		}
		if straight {
			state.SetCurved(p, false)
		}
		return
	}
	*h = e.pointer
	state.SetCurved(p, true)
}

func (e *Editor) pan() {
	if e.drawing {
		return
	}
	if !e.panning {
		limit := e.cfg.SelectDistance * e.cfg.SelectDistance
		if e.pointer.DistSq(e.right.from) <= limit {
			return
		}
		e.panning = true
		e.lastPan = e.right.from
	}
	state.Translate(e.seq, e.pointer.Sub(e.lastPan))
	e.lastPan = e.pointer
}

// placePoint appends a new point of the default kind at the pointer,
// opening a subpath first when no drawing is in progress.
//
// The snapshot is taken before the new point is added: the point becomes
// part of history once the next click or the cancel settles it.
func (e *Editor) placePoint() {
	e.commit("draw")
	if !e.drawing {
		e.seq = append(e.seq, state.NewMoveTo(e.pointer))
	}
	p := state.NewPoint(e.kind, e.pointer)
	e.seq = append(e.seq, p)
	e.active, e.selected = p.ID(), p.ID()
	e.drawing = true
	e.nearby = state.Nearby{Closest: -1}
	e.log.Debug("placed point", "index", len(e.seq)-1, "kind", e.kind)
}

// cancelDraw turns the point being drawn into the closing point of its
// subpath, or erases the subpath if nothing but that point was drawn.
func (e *Editor) cancelDraw() {
	i := e.activeIndex()
	before := len(e.seq)
	e.seq = state.CancelDraw(e.seq, i, e.kind)
	e.active, e.drawing = state.NoID, false
	if len(e.seq) < before {
		e.log.Debug("erased stub subpath", "index", i)
	} else {
		e.log.Debug("closed subpath", "index", i)
	}
	e.commit("cancel")
}
