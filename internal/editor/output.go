package editor

import (
	"encoding/json"
	"fmt"
	"strings"

	"PathBoard/internal/state"
)

// Marker is a circle drawn over a point or handle.
type Marker struct {
	At     state.Vec
	Radius float64
}

// Segment is a guide line from a handle to the endpoint it steers.
type Segment struct {
	From, To state.Vec
}

// Markers is everything a host draws on top of the path.
type Markers struct {
	Highlight *Marker // nearest point to the pointer
	Selected  *Marker
	Handles   []Marker
	Guides    []Segment
}

// Path returns the serialized path. Malformed points are logged once per
// distinct set of warnings.
func (e *Editor) Path() string {
	text, warnings := e.seq.Serialize(e.decimals)
	if len(warnings) == 0 {
		e.lastWarn = ""
		return text
	}
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Error()
	}
	if joined := strings.Join(msgs, "; "); joined != e.lastWarn {
		e.lastWarn = joined
		for _, w := range warnings {
			e.log.Warn("skipped malformed point", "index", w.Index, "reason", w.Reason)
		}
	}
	return text
}

// Points returns a copy of the sequence.
func (e *Editor) Points() state.Sequence { return e.seq.Clone() }

// Empty reports whether nothing has been drawn.
func (e *Editor) Empty() bool { return len(e.seq) == 0 }

// Markers returns the overlay for the current frame. It is empty while
// markers are hidden.
func (e *Editor) Markers() Markers {
	var m Markers
	if !e.markers {
		return m
	}
	r := e.cfg.SelectDistance
	if e.active.IsZero() {
		if p := e.seq.At(e.nearby.Closest); state.Drawable(p) {
			m.Highlight = &Marker{At: *state.Endpoint(p), Radius: r}
		}
	}

	p, i := e.seq.Find(e.selected)
	if !state.Drawable(p) {
		return m
	}
	end := *state.Endpoint(p)
	m.Selected = &Marker{At: end, Radius: r}
	for _, h := range state.Handles(p) {
		m.Handles = append(m.Handles, Marker{At: *h, Radius: r / 2})
	}
	if !state.IsCurved(p) {
		return m
	}

	var prev state.Vec
	if before := state.Endpoint(e.seq.At(i - 1)); before != nil {
		prev = *before
	}
	switch p := p.(type) {
	case *state.Double:
		if p.Type == state.KindQuadratic {
			m.Guides = append(m.Guides, Segment{From: prev, To: p.Ctrl})
		}
		m.Guides = append(m.Guides, Segment{From: p.Ctrl, To: end})
	case *state.Triple:
		m.Guides = append(m.Guides,
			Segment{From: prev, To: p.Ctrl},
			Segment{From: p.Ctrl2, To: end},
		)
	}
	return m
}

// Status is the summary shown in the host's status line.
type Status struct {
	State      State
	Kind       state.Kind
	Decimals   int
	GridSnap   bool
	GridSize   float64
	Markers    bool
	Fill       bool
	Points     int
	HistoryAt  int
	HistoryLen int
	Message    string
}

func (s Status) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | draw %s | %d decimals | grid %s (%g) | %d points | history %d/%d",
		s.State, s.Kind.Command(), s.Decimals, onOff(s.GridSnap), s.GridSize,
		s.Points, s.HistoryAt, s.HistoryLen)
	if s.Message != "" {
		b.WriteString(" | ")
		b.WriteString(s.Message)
	}
	return b.String()
}

// Status reports the current settings and the latest advisory message.
func (e *Editor) Status() Status {
	at, total := e.hist.Stats()
	return Status{
		State:      e.State(),
		Kind:       e.kind,
		Decimals:   e.decimals,
		GridSnap:   e.gridSnap,
		GridSize:   e.cfg.GridSize,
		Markers:    e.markers,
		Fill:       e.fill,
		Points:     e.seq.CountDrawable(),
		HistoryAt:  at,
		HistoryLen: total,
		Message:    e.message,
	}
}

// Debug dumps the selection state and the path as JSON.
func (e *Editor) Debug() string {
	dump := struct {
		State     string     `json:"state"`
		Pointer   [2]float64 `json:"pointer"`
		Highlight int        `json:"highlightIndex"`
		Active    int        `json:"activePoint"`
		Selected  int        `json:"lastSelectedIndex"`
		Nearby    []int      `json:"nearby"`
		Path      string     `json:"path"`
	}{
		State:     e.State().String(),
		Pointer:   [2]float64{e.pointer.X, e.pointer.Y},
		Highlight: e.nearby.Closest,
		Active:    e.activeIndex(),
		Selected:  e.selectedIndex(),
		Nearby:    e.nearby.Within,
		Path:      e.Path(),
	}
	data, err := json.Marshal(dump)
	if err != nil {
		return fmt.Sprintf("debug dump failed: %v", err)
	}
	return string(data)
}
