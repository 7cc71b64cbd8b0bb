package state

import "slices"

// Nearby is the result of a proximity query.
type Nearby struct {
	// Within lists, in sequence order, every selectable point closer than
	// the radius.
	Within []int
	// Closest is the nearest of Within, or -1.
	Closest int
}

// Contains reports whether index i is within the radius.
func (n Nearby) Contains(i int) bool {
	return i >= 0 && slices.Contains(n.Within, i)
}

// Empty reports whether nothing was in range.
func (n Nearby) Empty() bool { return len(n.Within) == 0 }

// Query scans the drawable points of seq for those strictly within radius
// of at. MoveTo and Close points are never returned. Ties for closest keep
// the lowest index. Paths are small enough that a linear scan is fine.
func Query(seq Sequence, at Vec, radius float64) Nearby {
	res := Nearby{Closest: -1}
	if radius <= 0 {
		return res
	}
	cutoff := radius * radius
	best := cutoff
	for i, p := range seq {
		if !Drawable(p) {
			continue
		}
		d := Endpoint(p).DistSq(at)
		if d >= cutoff {
			continue
		}
		res.Within = append(res.Within, i)
		if d < best {
			best = d
			res.Closest = i
		}
	}
	return res
}
