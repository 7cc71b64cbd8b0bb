package editor

import (
	"fmt"
	"log/slog"
	"time"

	"PathBoard/internal/config"
	"PathBoard/internal/state"
)

// State is the interaction state derived from the editor's fields.
type State int

const (
	StateIdle                  State = iota // nothing near, nothing active
	StateHovering                           // points near the pointer, nothing active
	StateDrawing                            // placing a freshly created point
	StateMovingExisting                     // dragging a previously selected point
	StateDraggingControlHandle              // dragging a handle of the selected point
	StatePanning                            // secondary drag moving the whole path
	StateZooming                            // a zoom is waiting for its snapshot
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateHovering:
		return "Hovering"
	case StateDrawing:
		return "Drawing"
	case StateMovingExisting:
		return "MovingExisting"
	case StateDraggingControlHandle:
		return "DraggingControlHandle"
	case StatePanning:
		return "Panning"
	case StateZooming:
		return "Zooming"
	default:
		return "Unknown"
	}
}

type button struct {
	down bool
	from state.Vec // pointer position when the button went down
}

// Editor owns the path, the selection and the history. It is not safe for
// concurrent use: every method must be called from the goroutine that
// delivers input events.
type Editor struct {
	cfg    config.Config
	log    *slog.Logger
	picker Picker
	now    func() time.Time

	initial state.Sequence
	seq     state.Sequence
	hist    *state.History

	pointer     state.Vec
	left, right button

	active   state.ID // point following the pointer
	selected state.ID // point targeted by key actions
	drawing  bool     // active was created by the current gesture
	nearby   state.Nearby

	panning     bool
	lastPan     state.Vec
	handleDrag  bool
	zoomPending bool
	lastZoom    time.Time

	kind     state.Kind
	decimals int
	gridSnap bool
	markers  bool
	fill     bool
	viewport state.Vec

	message  string
	lastWarn string
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger. The editor adds a component attribute.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithPicker sets how one point is chosen among several near the pointer.
func WithPicker(p Picker) Option {
	return func(e *Editor) { e.picker = p }
}

// WithClock replaces time.Now for zoom rate limiting.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// WithSequence starts the editor on a copy of seq instead of an empty path.
// Reset returns to it as well.
func WithSequence(seq state.Sequence) Option {
	return func(e *Editor) { e.initial = seq.Clone() }
}

// New creates an editor. cfg is assumed to be valid; an unusable default
// kind falls back to Quadratic.
func New(cfg config.Config, opts ...Option) *Editor {
	e := &Editor{
		cfg:    cfg,
		log:    slog.Default(),
		picker: NewRandomPicker(time.Now().UnixNano()),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("component", "editor")
	e.Reset()
	return e
}

// Reset drops the history and returns to the initial path and settings.
func (e *Editor) Reset() {
	kind, err := e.cfg.Kind()
	if err != nil {
		e.log.Warn("bad default kind, using Quadratic", "kind", e.cfg.DefaultKind, "err", err)
		kind = state.KindQuadratic
	}
	e.seq = e.initial.Clone()
	e.hist = state.NewHistory(e.cfg.HistoryLimit)
	e.left, e.right = button{}, button{}
	e.active, e.selected = state.NoID, state.NoID
	e.drawing, e.panning, e.handleDrag, e.zoomPending = false, false, false, false
	e.nearby = state.Nearby{Closest: -1}
	e.lastZoom = time.Time{}
	e.kind = kind
	e.decimals = state.ClampDecimals(e.cfg.Decimals)
	e.gridSnap = e.cfg.GridSnap
	e.markers = e.cfg.ShowMarkers
	e.fill = e.cfg.Fill
	e.message = ""
	e.lastWarn = ""
	e.commit("reset")
}

// Load replaces the path with a copy of seq as a single undoable edit.
func (e *Editor) Load(seq state.Sequence) {
	e.flush()
	e.seq = seq.Clone()
	e.clearSelection()
	e.panning = false
	e.message = fmt.Sprintf("loaded %d points", e.seq.CountDrawable())
	e.log.Info("loaded path", "points", len(e.seq))
	e.commit("load")
}

// Notify sets the advisory message shown in the status line.
func (e *Editor) Notify(msg string) { e.message = msg }

// SetViewport records the size of the drawing surface for FitToView.
func (e *Editor) SetViewport(size state.Vec) { e.viewport = size }

// State reports what the editor is currently doing.
func (e *Editor) State() State {
	switch {
	case e.drawing:
		return StateDrawing
	case !e.active.IsZero():
		return StateMovingExisting
	case e.handleDrag:
		return StateDraggingControlHandle
	case e.panning:
		return StatePanning
	case e.zoomPending:
		return StateZooming
	case !e.nearby.Empty():
		return StateHovering
	}
	return StateIdle
}

// Fill reports whether the path is rendered filled rather than outlined.
func (e *Editor) Fill() bool { return e.fill }

// Config returns the settings the editor was created with.
func (e *Editor) Config() config.Config { return e.cfg }

// commit records the current sequence as a settled edit.
func (e *Editor) commit(reason string) {
	pushed, err := e.hist.Push(e.seq)
	if err != nil {
		e.log.Error("history push failed", "reason", reason, "err", err)
		e.message = "edit not recorded in history"
		return
	}
	if pushed {
		cur, total := e.hist.Stats()
		e.log.Debug("snapshot", "reason", reason, "points", len(e.seq), "history", cur, "of", total)
	}
}

// flush commits a coalesced zoom before another edit lands on top of it.
func (e *Editor) flush() {
	if e.zoomPending {
		e.zoomPending = false
		e.commit("zoom")
	}
}

// Tick commits a pending zoom once no wheel event has arrived for the
// cooldown. Hosts call it from their frame loop.
func (e *Editor) Tick(now time.Time) {
	if e.zoomPending && now.Sub(e.lastZoom) >= e.cfg.ZoomCooldown {
		e.flush()
	}
}

func (e *Editor) activeIndex() int   { return e.seq.IndexOf(e.active) }
func (e *Editor) selectedIndex() int { return e.seq.IndexOf(e.selected) }

func (e *Editor) clearSelection() {
	e.active, e.selected = state.NoID, state.NoID
	e.drawing, e.handleDrag = false, false
	e.nearby = state.Nearby{Closest: -1}
}
