package ui

import (
	"log/slog"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PathBoard/internal/config"
	"PathBoard/internal/editor"
	"PathBoard/internal/state"
)

func newTestBoard(t *testing.T, path string) (*BoardWidget, *editor.Editor) {
	t.Helper()
	test.NewTempApp(t)
	log := slog.New(slog.DiscardHandler)
	opts := []editor.Option{editor.WithLogger(log), editor.WithPicker(editor.FirstPicker{})}
	if path != "" {
		opts = append(opts, editor.WithSequence(state.MustParse(path)))
	}
	ed := editor.New(config.Default(), opts...)
	b := NewBoardWidget(ed, log)
	w := test.NewWindow(b)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(200, 200))
	return b, ed
}

func mouse(x, y float32, btn desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}, Button: btn}
}

func TestBoardForwardsClicksAndMoves(t *testing.T) {
	b, ed := newTestBoard(t, "")
	changes := 0
	b.OnChange = func() { changes++ }

	b.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	b.MouseUp(mouse(10, 10, desktop.MouseButtonPrimary))
	b.MouseMoved(mouse(50, 10, 0))

	assert.Equal(t, "M 10 10 L 50 10", ed.Path())
	assert.Equal(t, editor.StateDrawing, ed.State())
	assert.Equal(t, 3, changes)
}

func TestBoardDragEndReleasesOnce(t *testing.T) {
	b, ed := newTestBoard(t, "")
	b.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	b.MouseUp(mouse(10, 10, desktop.MouseButtonPrimary))
	b.MouseMoved(mouse(50, 10, 0))

	b.MouseDown(mouse(50, 10, desktop.MouseButtonPrimary))
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 50)}})
	b.DragEnd()
	b.MouseUp(mouse(50, 50, desktop.MouseButtonPrimary))

	assert.Equal(t, "M 10 10 Q 50 10 50 50 L 50 50", ed.Path())
}

func TestBoardIgnoresOtherButtons(t *testing.T) {
	b, ed := newTestBoard(t, "")
	b.MouseDown(mouse(10, 10, desktop.MouseButtonTertiary))
	b.MouseUp(mouse(10, 10, desktop.MouseButtonTertiary))
	assert.True(t, ed.Empty())
}

func TestBoardScrollZooms(t *testing.T) {
	b, ed := newTestBoard(t, "M 0 0 L 100 0 Z")
	b.Scrolled(&fyne.ScrollEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(0, 0)},
		Scrolled:   fyne.Delta{DY: 1},
	})
	assert.Equal(t, editor.StateZooming, ed.State())
	assert.Equal(t, "M 0 0 L 110 0 Z", ed.Path())
}

func TestBoardMarkersFollowSelection(t *testing.T) {
	b, _ := newTestBoard(t, "M 0 0 Q 50 50 100 0")
	r := test.WidgetRenderer(b).(*boardRenderer)
	assert.False(t, r.selected.Visible())

	b.MouseMoved(mouse(100, 0, 0))
	b.MouseDown(mouse(100, 0, desktop.MouseButtonPrimary))
	b.MouseUp(mouse(100, 0, desktop.MouseButtonPrimary))

	assert.True(t, r.selected.Visible())
	assert.Len(t, r.handles, 1)
	assert.Len(t, r.guides, 2)
	assert.Equal(t, fyne.NewPos(90, -10), r.selected.Position())
}

func TestBoardDrawsPlaceholderWhenEmpty(t *testing.T) {
	b, ed := newTestBoard(t, "")
	b.Refresh()
	assert.Contains(t, b.doc, ed.Config().Placeholder)

	img := b.draw(50, 40)
	require.NotNil(t, img)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
	assert.Same(t, img, b.draw(50, 40), "unchanged frames reuse the raster")
}

func TestBoardApplyAndStyle(t *testing.T) {
	b, ed := newTestBoard(t, "M 0 0 L 10 0 L 10 10 Z")
	b.Apply(editor.ActionToggleFill)
	assert.False(t, ed.Fill())
	assert.Contains(t, b.doc, `fill="none"`)

	b.SetStrokeWidth(7)
	assert.Contains(t, b.doc, `stroke-width="7"`)
}
