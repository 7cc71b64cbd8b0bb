package editor

import (
	"fmt"

	"PathBoard/internal/state"
)

// Action is a discrete key command.
type Action int

const (
	ActionUndo Action = iota
	ActionRedo
	ActionDeleteSelected
	ActionDuplicateSelected
	ActionCycleTypeForward
	ActionCycleTypeBackward
	ActionToggleGridSnap
	ActionClearAll
	ActionFitToView
	ActionIncreaseDecimals
	ActionDecreaseDecimals
	ActionToggleMarkers
	ActionToggleFill
)

var actionNames = [...]string{
	ActionUndo:              "undo",
	ActionRedo:              "redo",
	ActionDeleteSelected:    "delete",
	ActionDuplicateSelected: "duplicate",
	ActionCycleTypeForward:  "cycle-type",
	ActionCycleTypeBackward: "cycle-type-back",
	ActionToggleGridSnap:    "grid-snap",
	ActionClearAll:          "clear",
	ActionFitToView:         "fit",
	ActionIncreaseDecimals:  "more-decimals",
	ActionDecreaseDecimals:  "fewer-decimals",
	ActionToggleMarkers:     "markers",
	ActionToggleFill:        "fill",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Apply runs a key command. Commands that have nothing to act on leave the
// path alone and set an advisory message instead.
func (e *Editor) Apply(a Action) {
	e.flush()
	e.message = ""
	e.log.Debug("action", "action", a, "state", e.State())

	switch a {
	case ActionUndo:
		if e.drawing {
			// drop the unsettled point being drawn
			e.stopDrawing()
			e.restore(e.hist.Current())
			break
		}
		e.stopDrawing()
		e.restore(e.hist.Undo())
	case ActionRedo:
		e.stopDrawing()
		e.restore(e.hist.Redo())
	case ActionDeleteSelected:
		e.deleteSelected()
	case ActionDuplicateSelected:
		e.duplicateSelected()
	case ActionCycleTypeForward:
		e.cycleType(1)
	case ActionCycleTypeBackward:
		e.cycleType(-1)
	case ActionToggleGridSnap:
		e.gridSnap = !e.gridSnap
		e.message = fmt.Sprintf("grid snap %s", onOff(e.gridSnap))
	case ActionClearAll:
		e.seq = nil
		e.clearSelection()
		e.panning = false
		e.log.Info("cleared path")
		e.commit("clear")
	case ActionFitToView:
		e.fitToView()
	case ActionIncreaseDecimals:
		e.decimals = state.ClampDecimals(e.decimals + 1)
	case ActionDecreaseDecimals:
		e.decimals = state.ClampDecimals(e.decimals - 1)
	case ActionToggleMarkers:
		e.markers = !e.markers
	case ActionToggleFill:
		e.fill = !e.fill
	default:
		e.log.Warn("unknown action", "action", int(a))
	}
}

// stopDrawing leaves the point being drawn where it is so a structural
// edit can act on a settled sequence.
func (e *Editor) stopDrawing() {
	e.active, e.drawing = state.NoID, false
}

func (e *Editor) restore(seq state.Sequence, ok bool) {
	if !ok {
		e.message = "nothing to restore"
		return
	}
	e.seq = seq
	if e.seq.IndexOf(e.selected) < 0 {
		e.selected = state.NoID
	}
	e.handleDrag = false
	e.nearby = state.Query(e.seq, e.pointer, e.cfg.SelectDistance)
}

func (e *Editor) deleteSelected() {
	e.stopDrawing()
	i := e.selectedIndex()
	if i < 0 {
		e.message = "no point selected"
		return
	}
	e.seq = state.Delete(e.seq, i)
	e.clearSelection()
	e.commit("delete")
}

func (e *Editor) duplicateSelected() {
	e.stopDrawing()
	i := e.selectedIndex()
	if i < 0 {
		e.message = "no point selected"
		return
	}
	var j int
	e.seq, j = state.Duplicate(e.seq, i)
	e.selected = e.seq[j].ID()
	e.commit("duplicate")
}

// cycleType reshapes the selected point. While drawing, or with nothing
// selected, it changes the kind of the next point instead.
func (e *Editor) cycleType(dir int) {
	i := e.selectedIndex()
	if e.drawing || i < 0 {
		e.kind = state.CycleDefault(e.kind, dir)
		e.message = fmt.Sprintf("drawing %s", e.kind)
		return
	}
	e.seq[i] = state.CycleKind(e.seq[i], dir)
	e.message = fmt.Sprintf("point %d is %s", i, e.seq[i].Kind())
	e.commit("cycle")
}

func (e *Editor) fitToView() {
	if e.drawing || !e.active.IsZero() {
		e.message = "finish the current edit first"
		return
	}
	if !state.Fit(e.seq, e.viewport, e.cfg.FitFraction) {
		e.message = "nothing to fit"
		return
	}
	e.commit("fit")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
