package state

import "math"

// Rect is an axis-aligned box in path space.
type Rect struct {
	Min, Max Vec
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
func (r Rect) Center() Vec     { return r.Min.Add(r.Max).Scale(0.5) }

// Contains reports whether v lies inside r, edges included.
func (r Rect) Contains(v Vec) bool {
	return v.X >= r.Min.X && v.X <= r.Max.X &&
		v.Y >= r.Min.Y && v.Y <= r.Max.Y
}

// Union returns the smallest box holding both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: V(math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)),
		Max: V(math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)),
	}
}

// Bounds returns the bounding box of every endpoint and handle in seq. It
// reports false when seq has no coordinates.
func Bounds(seq Sequence) (Rect, bool) {
	var (
		r     Rect
		found bool
	)
	for _, p := range seq {
		for _, c := range Coords(p) {
			if !found {
				r = Rect{Min: *c, Max: *c}
				found = true
				continue
			}
			r = r.Union(Rect{Min: *c, Max: *c})
		}
	}
	return r, found
}

// Transform applies f to every endpoint and handle of seq in place.
func Transform(seq Sequence, f func(Vec) Vec) {
	for _, p := range seq {
		for _, c := range Coords(p) {
			*c = f(*c)
		}
	}
}

// Translate moves the whole path by delta.
func Translate(seq Sequence, delta Vec) {
	Transform(seq, func(v Vec) Vec { return v.Add(delta) })
}

// Zoom scales the whole path by factor about center: every coordinate's
// offset from center is multiplied by factor.
func Zoom(seq Sequence, center Vec, factor float64) {
	Transform(seq, func(v Vec) Vec {
		return center.Add(v.Sub(center).Scale(factor))
	})
}

// Fit scales and centres the path so that its bounding box fills fraction
// of the viewport along the binding axis. It does nothing and returns false
// when the path has fewer than two drawable points, when its box has no
// width or no height, or when the viewport is empty.
func Fit(seq Sequence, viewport Vec, fraction float64) bool {
	if seq.CountDrawable() <= 1 || viewport.X <= 0 || viewport.Y <= 0 || fraction <= 0 {
		return false
	}
	box, ok := Bounds(seq)
	if !ok || box.Width() == 0 || box.Height() == 0 {
		return false
	}
	scale := math.Min(fraction*viewport.X/box.Width(), fraction*viewport.Y/box.Height())
	from, to := box.Center(), viewport.Scale(0.5)
	Transform(seq, func(v Vec) Vec {
		return to.Add(v.Sub(from).Scale(scale))
	})
	return true
}

// SnapToGrid rounds v to the nearest multiple of size. A non-positive size
// leaves v unchanged.
func SnapToGrid(v Vec, size float64) Vec {
	if size <= 0 {
		return v
	}
	return V(math.Round(v.X/size)*size, math.Round(v.Y/size)*size)
}
