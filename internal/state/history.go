package state

import (
	"encoding/json"
	"fmt"
)

// DefaultHistoryLimit is used when NewHistory is given a non-positive limit.
const DefaultHistoryLimit = 500

// History stores serialized snapshots of a sequence for undo and redo.
type History struct {
	states []string // encoded snapshots, oldest first
	cursor int      // index of the current snapshot, -1 when empty
	limit  int
}

// NewHistory creates an empty history keeping at most limit snapshots.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{cursor: -1, limit: limit}
}

// Push records seq as the newest snapshot. Snapshots after the cursor are
// discarded first. A snapshot identical to the current one is not stored
// and Push reports false.
func (h *History) Push(seq Sequence) (bool, error) {
	state, err := Encode(seq)
	if err != nil {
		return false, err
	}
	if h.cursor >= 0 && h.states[h.cursor] == state {
		return false, nil
	}
	h.states = append(h.states[:h.cursor+1], state)
	if over := len(h.states) - h.limit; over > 0 {
		h.states = append(h.states[:0], h.states[over:]...)
	}
	h.cursor = len(h.states) - 1
	return true, nil
}

// CanUndo reports whether there is a snapshot before the cursor.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether there is a snapshot after the cursor.
func (h *History) CanRedo() bool { return h.cursor >= 0 && h.cursor < len(h.states)-1 }

// Undo moves the cursor back and returns that snapshot.
func (h *History) Undo() (Sequence, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.cursor--
	return h.load()
}

// Redo moves the cursor forward and returns that snapshot.
func (h *History) Redo() (Sequence, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.cursor++
	return h.load()
}

// Current returns the snapshot at the cursor.
func (h *History) Current() (Sequence, bool) {
	if h.cursor < 0 {
		return nil, false
	}
	return h.load()
}

func (h *History) load() (Sequence, bool) {
	seq, err := Decode(h.states[h.cursor])
	if err != nil {
		// only Encode writes states, so this cannot fail
		panic(fmt.Sprintf("state: corrupt history snapshot %d: %v", h.cursor, err))
	}
	return seq, true
}

// Clear drops every snapshot.
func (h *History) Clear() {
	h.states = nil
	h.cursor = -1
}

// Stats returns the 1-based cursor position and the number of snapshots.
func (h *History) Stats() (current, total int) {
	return h.cursor + 1, len(h.states)
}

// record is the stored form of a point.
type record struct {
	Kind   string    `json:"k"`
	ID     string    `json:"id"`
	P      []float64 `json:"p,omitempty"`
	Curved bool      `json:"c,omitempty"`
}

// Encode serializes seq into a snapshot string.
func Encode(seq Sequence) (string, error) {
	recs := make([]record, 0, len(seq))
	for i, p := range seq {
		if p == nil {
			return "", fmt.Errorf("encode point %d: %w", i, ErrMalformed)
		}
		rec := record{Kind: p.Kind().Command(), ID: p.ID().String(), Curved: IsCurved(p)}
		for _, c := range Coords(p) {
			rec.P = append(rec.P, c.X, c.Y)
		}
		recs = append(recs, rec)
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(data), nil
}

// Decode reads a snapshot written by Encode.
func Decode(snapshot string) (Sequence, error) {
	var recs []record
	if err := json.Unmarshal([]byte(snapshot), &recs); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	seq := make(Sequence, 0, len(recs))
	for i, rec := range recs {
		k, err := ParseKind(rec.Kind)
		if err != nil {
			return nil, fmt.Errorf("decode point %d: %w", i, err)
		}
		id, err := ParseID(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("decode point %d id: %w", i, err)
		}
		want := 0
		if k != KindClose {
			want = 2 * (k.Handles() + 1)
		}
		if len(rec.P) != want {
			return nil, fmt.Errorf("decode point %d: %d coordinates for %s: %w", i, len(rec.P), k, ErrMalformed)
		}
		p := newPointWithID(id, k, Vec{})
		for j, c := range Coords(p) {
			*c = V(rec.P[2*j], rec.P[2*j+1])
		}
		SetCurved(p, rec.Curved)
		seq = append(seq, p)
	}
	return seq, nil
}
