package ui

import (
	"image"
	"image/color"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PathBoard/internal/editor"
	"PathBoard/internal/state"
)

var (
	highlightColor = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	selectedColor  = color.NRGBA{R: 0xe0, G: 0x4f, B: 0x2f, A: 0xff}
	handleColor    = color.NRGBA{R: 0x2f, G: 0x80, B: 0xe0, A: 0xff}
)

// BoardWidget is the drawing surface. Pointer input is forwarded to the
// editor; the path is rasterized and the editor's markers are drawn on top.
type BoardWidget struct {
	widget.BaseWidget

	ed    *editor.Editor
	log   *slog.Logger
	style style

	// OnChange runs after every input event.
	OnChange func()

	mu       sync.Mutex
	doc      string
	cache    *image.RGBA
	cacheDoc string

	primary, secondary bool
	last               fyne.Position
}

var (
	_ fyne.Widget       = (*BoardWidget)(nil)
	_ fyne.Draggable    = (*BoardWidget)(nil)
	_ fyne.Scrollable   = (*BoardWidget)(nil)
	_ desktop.Mouseable = (*BoardWidget)(nil)
	_ desktop.Hoverable = (*BoardWidget)(nil)
)

func NewBoardWidget(ed *editor.Editor, log *slog.Logger) *BoardWidget {
	if log == nil {
		log = slog.Default()
	}
	b := &BoardWidget{
		ed:  ed,
		log: log.With("component", "ui"),
		style: style{
			Fill:        defaultFill,
			Stroke:      defaultStroke,
			StrokeWidth: ed.Config().StrokeWidth,
		},
	}
	b.ExtendBaseWidget(b)
	return b
}

func toVec(p fyne.Position) state.Vec { return state.V(float64(p.X), float64(p.Y)) }

func toPos(v state.Vec) fyne.Position { return fyne.NewPos(float32(v.X), float32(v.Y)) }

func toButton(b desktop.MouseButton) (editor.Button, bool) {
	switch b {
	case desktop.MouseButtonPrimary:
		return editor.ButtonPrimary, true
	case desktop.MouseButtonSecondary:
		return editor.ButtonSecondary, true
	}
	return 0, false
}

func (b *BoardWidget) pressed(btn editor.Button) *bool {
	if btn == editor.ButtonSecondary {
		return &b.secondary
	}
	return &b.primary
}

// Apply runs a key command and redraws.
func (b *BoardWidget) Apply(a editor.Action) {
	b.ed.Apply(a)
	b.changed()
}

func (b *BoardWidget) SetFillColor(c color.Color) {
	b.style.Fill = c
	b.Refresh()
}

func (b *BoardWidget) SetStrokeWidth(w float64) {
	b.style.StrokeWidth = w
	b.Refresh()
}

func (b *BoardWidget) changed() {
	b.Refresh()
	if b.OnChange != nil {
		b.OnChange()
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	btn, ok := toButton(e.Button)
	if !ok {
		return
	}
	*b.pressed(btn) = true
	b.last = e.Position
	b.ed.PointerDown(editor.PointerEvent{At: toVec(e.Position), Button: btn})
	b.changed()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	btn, ok := toButton(e.Button)
	if !ok {
		return
	}
	b.release(btn, e.Position)
}

// release delivers a button release once, whether it arrives as MouseUp or
// as the end of a drag.
func (b *BoardWidget) release(btn editor.Button, at fyne.Position) {
	down := b.pressed(btn)
	if !*down {
		return
	}
	*down = false
	b.last = at
	b.ed.PointerUp(editor.PointerEvent{At: toVec(at), Button: btn})
	b.changed()
}

func (b *BoardWidget) move(at fyne.Position) {
	b.last = at
	b.ed.PointerMove(editor.PointerEvent{At: toVec(at)})
	b.changed()
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent)    { b.move(e.Position) }
func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) { b.move(e.Position) }
func (b *BoardWidget) MouseOut()                        {}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) { b.move(e.Position) }

func (b *BoardWidget) DragEnd() { b.release(editor.ButtonPrimary, b.last) }

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.ed.Wheel(editor.WheelEvent{At: toVec(e.Position), DeltaY: -float64(e.Scrolled.DY)})
	b.changed()
}

func (b *BoardWidget) Cursor() desktop.Cursor { return desktop.CrosshairCursor }

// sample captures the current path as an SVG document for the raster.
func (b *BoardWidget) sample() {
	size := b.Size()
	path, s := b.ed.Path(), b.style
	s.Filled = b.ed.Fill()
	if b.ed.Empty() {
		path = b.ed.Config().Placeholder
		s.Fill, s.Stroke = placeholderInk, placeholderInk
	}
	doc := svgDocument(path, size.Width, size.Height, s)
	b.mu.Lock()
	b.doc = doc
	b.mu.Unlock()
}

func (b *BoardWidget) draw(w, h int) image.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cache != nil && b.cacheDoc == b.doc && b.cache.Bounds().Dx() == w && b.cache.Bounds().Dy() == h {
		return b.cache
	}
	img, err := rasterize(b.doc, w, h)
	if err != nil {
		b.log.Warn("render failed", "err", err)
	}
	b.cache, b.cacheDoc = img, b.doc
	return img
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(backgroundColor),
		raster:     canvas.NewRaster(b.draw),
		highlight:  newMarkerCircle(highlightColor),
		selected:   newMarkerCircle(selectedColor),
	}
	r.Refresh()
	return r
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	raster     *canvas.Raster
	highlight  *canvas.Circle
	selected   *canvas.Circle
	handles    []*canvas.Circle
	guides     []*canvas.Line
}

func newMarkerCircle(c color.Color) *canvas.Circle {
	m := canvas.NewCircle(color.Transparent)
	m.StrokeColor = c
	m.StrokeWidth = 1.5
	m.Hide()
	return m
}

func placeMarker(c *canvas.Circle, m *editor.Marker) {
	if m == nil {
		c.Hide()
		return
	}
	r := float32(m.Radius)
	c.Move(fyne.NewPos(float32(m.At.X)-r, float32(m.At.Y)-r))
	c.Resize(fyne.NewSize(2*r, 2*r))
	c.Show()
	c.Refresh()
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.raster.Resize(size)
	r.board.ed.SetViewport(state.V(float64(size.Width), float64(size.Height)))
}

func (r *boardRenderer) MinSize() fyne.Size { return fyne.NewSize(300, 300) }

func (r *boardRenderer) Refresh() {
	r.board.sample()
	m := r.board.ed.Markers()

	for len(r.guides) < len(m.Guides) {
		l := canvas.NewLine(handleColor)
		l.StrokeWidth = 1
		r.guides = append(r.guides, l)
	}
	r.guides = r.guides[:len(m.Guides)]
	for i, g := range m.Guides {
		r.guides[i].Position1 = toPos(g.From)
		r.guides[i].Position2 = toPos(g.To)
		r.guides[i].Refresh()
	}

	for len(r.handles) < len(m.Handles) {
		r.handles = append(r.handles, newMarkerCircle(handleColor))
	}
	r.handles = r.handles[:len(m.Handles)]
	for i := range m.Handles {
		placeMarker(r.handles[i], &m.Handles[i])
	}

	placeMarker(r.highlight, m.Highlight)
	placeMarker(r.selected, m.Selected)
	r.raster.Refresh()
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.background, r.raster}
	for _, g := range r.guides {
		objs = append(objs, g)
	}
	for _, h := range r.handles {
		objs = append(objs, h)
	}
	return append(objs, r.highlight, r.selected)
}

func (r *boardRenderer) Destroy() {}
