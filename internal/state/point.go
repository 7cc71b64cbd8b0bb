package state

import (
	"fmt"
	"math"
	"strings"
)

// Vec is a 2D coordinate in path space.
type Vec struct{ X, Y float64 }

func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) DistSq(o Vec) float64 { d := v.Sub(o); return d.X*d.X + d.Y*d.Y }
func (v Vec) finite() bool { return isFinite(v.X) && isFinite(v.Y) }
func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
func (v Vec) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Kind is the shape of a path point.
type Kind int

const (
	KindMoveTo Kind = iota
	KindClose
	KindLineTo
	KindSmoothEndpoint
	KindQuadratic
	KindSmoothQuadratic
	KindCubic
)

var kindCommands = [...]string{
	KindMoveTo:          "M",
	KindClose:           "Z",
	KindLineTo:          "L",
	KindSmoothEndpoint:  "T",
	KindQuadratic:       "Q",
	KindSmoothQuadratic: "S",
	KindCubic:           "C",
}

var kindNames = [...]string{
	KindMoveTo:          "MoveTo",
	KindClose:           "Close",
	KindLineTo:          "LineTo",
	KindSmoothEndpoint:  "SmoothEndpoint",
	KindQuadratic:       "Quadratic",
	KindSmoothQuadratic: "SmoothQuadratic",
	KindCubic:           "Cubic",
}

func (k Kind) valid() bool { return k >= KindMoveTo && k <= KindCubic }

// Command returns the path command letter for k.
func (k Kind) Command() string {
	if !k.valid() {
		return "?"
	}
	return kindCommands[k]
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Handles returns how many control handles a point of this kind carries.
func (k Kind) Handles() int {
	switch k {
	case KindQuadratic, KindSmoothQuadratic:
		return 1
	case KindCubic:
		return 2
	}
	return 0
}

// ParseKind accepts either a command letter ("Q") or a kind name ("Quadratic").
func ParseKind(s string) (Kind, error) {
	for k := range kindCommands {
		if strings.EqualFold(s, kindNames[k]) || s == kindCommands[k] || s == strings.ToLower(kindCommands[k]) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown point kind %q: %w", s, ErrSyntax)
}

// Point is one element of a path. The concrete types are *MoveTo, *Close,
// *Single, *Double and *Triple.
type Point interface {
	ID() ID
	Kind() Kind
	Clone() Point
	isPoint()
}

type base struct{ id ID }

func (b base) ID() ID { return b.id }
func (base) isPoint() {}

// MoveTo starts a subpath.
type MoveTo struct {
	base
	At Vec
}

// Close ends a subpath.
type Close struct{ base }

// Single is an on-curve point without handles (LineTo or SmoothEndpoint).
type Single struct {
	base
	Type Kind
	At   Vec
}

// Double is an endpoint with one control handle (Quadratic or
// SmoothQuadratic). When Curved is false the segment is drawn straight.
type Double struct {
	base
	Type   Kind
	At     Vec
	Ctrl   Vec
	Curved bool
}

// Triple is a cubic endpoint with two control handles.
type Triple struct {
	base
	At     Vec
	Ctrl   Vec
	Ctrl2  Vec
	Curved bool
}

func NewMoveTo(at Vec) *MoveTo { return &MoveTo{base: base{NewID()}, At: at} }
func NewClose() *Close { return &Close{base: base{NewID()}} }

// NewPoint creates a drawable point of kind k at at. Handles start on the
// endpoint and the point is not curved. MoveTo and Close kinds are
// delegated to their constructors.
func NewPoint(k Kind, at Vec) Point {
	return newPointWithID(NewID(), k, at)
}

func newPointWithID(id ID, k Kind, at Vec) Point {
	b := base{id}
	switch k {
	case KindMoveTo:
		return &MoveTo{base: b, At: at}
	case KindClose:
		return &Close{base: b}
	case KindQuadratic, KindSmoothQuadratic:
		return &Double{base: b, Type: k, At: at, Ctrl: at}
	case KindCubic:
		return &Triple{base: b, At: at, Ctrl: at, Ctrl2: at}
	case KindSmoothEndpoint:
		return &Single{base: b, Type: k, At: at}
	}
	return &Single{base: b, Type: KindLineTo, At: at}
}

func (*MoveTo) Kind() Kind { return KindMoveTo }
func (*Close) Kind() Kind { return KindClose }
func (p *Single) Kind() Kind { return p.Type }
func (p *Double) Kind() Kind { return p.Type }
func (*Triple) Kind() Kind { return KindCubic }

func (p *MoveTo) Clone() Point { c := *p; return &c }
func (p *Close) Clone() Point { c := *p; return &c }
func (p *Single) Clone() Point { c := *p; return &c }
func (p *Double) Clone() Point { c := *p; return &c }
func (p *Triple) Clone() Point { c := *p; return &c }

// Endpoint returns a pointer to the on-curve coordinate of p, or nil if p
// has none (Close, nil).
func Endpoint(p Point) *Vec {
	switch p := p.(type) {
	case *MoveTo:
		return &p.At
	case *Single:
		return &p.At
	case *Double:
		return &p.At
	case *Triple:
		return &p.At
	}
	return nil
}

// Handles returns pointers to the control handles of p, first handle first.
func Handles(p Point) []*Vec {
	switch p := p.(type) {
	case *Double:
		return []*Vec{&p.Ctrl}
	case *Triple:
		return []*Vec{&p.Ctrl, &p.Ctrl2}
	}
	return nil
}

// Coords returns the endpoint and all handles of p.
func Coords(p Point) []*Vec {
	end := Endpoint(p)
	if end == nil {
		return nil
	}
	return append([]*Vec{end}, Handles(p)...)
}

// IsCurved reports whether p is a handle-bearing point drawn as a curve.
func IsCurved(p Point) bool {
	switch p := p.(type) {
	case *Double:
		return p.Curved
	case *Triple:
		return p.Curved
	}
	return false
}

// SetCurved sets the curvature flag of a handle-bearing point.
func SetCurved(p Point, curved bool) {
	switch p := p.(type) {
	case *Double:
		p.Curved = curved
	case *Triple:
		p.Curved = curved
	}
}

// Collapse moves every handle of p onto its endpoint and marks it straight.
func Collapse(p Point) {
	end := Endpoint(p)
	if end == nil {
		return
	}
	for _, h := range Handles(p) {
		*h = *end
	}
	SetCurved(p, false)
}

// Drawable reports whether p is a coordinate point other than MoveTo.
func Drawable(p Point) bool {
	switch p.(type) {
	case *Single, *Double, *Triple:
		return true
	}
	return false
}

func isMove(p Point) bool { _, ok := p.(*MoveTo); return ok }
func isClose(p Point) bool { _, ok := p.(*Close); return ok }
