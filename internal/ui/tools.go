package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PathBoard/internal/editor"
)

// fillColors are the swatches offered for the filled render mode.
var fillColors = []color.Color{
	defaultFill,
	color.NRGBA{R: 0xf2, G: 0xa6, B: 0x8f, A: 0xff},
	color.NRGBA{R: 0xa8, G: 0xd8, B: 0x9a, A: 0xff},
	color.NRGBA{R: 0xf5, G: 0xd7, B: 0x6e, A: 0xff},
	color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
}

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func actionItem(icon fyne.Resource, board *BoardWidget, a editor.Action) widget.ToolbarItem {
	return widget.NewToolbarAction(icon, func() { board.Apply(a) })
}

// NewToolbar builds the command bar above the board.
func NewToolbar(board *BoardWidget, w fyne.Window, copyPath func()) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { board.showOpen(w) }),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { board.showSave(w) }),
		widget.NewToolbarAction(theme.ContentCopyIcon(), copyPath),
		widget.NewToolbarSeparator(),
		actionItem(theme.ContentUndoIcon(), board, editor.ActionUndo),
		actionItem(theme.ContentRedoIcon(), board, editor.ActionRedo),
		widget.NewToolbarSeparator(),
		actionItem(theme.DeleteIcon(), board, editor.ActionDeleteSelected),
		actionItem(theme.ContentAddIcon(), board, editor.ActionDuplicateSelected),
		actionItem(theme.ViewRefreshIcon(), board, editor.ActionCycleTypeForward),
		widget.NewToolbarSeparator(),
		actionItem(theme.ZoomFitIcon(), board, editor.ActionFitToView),
		actionItem(theme.GridIcon(), board, editor.ActionToggleGridSnap),
		actionItem(theme.VisibilityIcon(), board, editor.ActionToggleMarkers),
		actionItem(theme.ColorPaletteIcon(), board, editor.ActionToggleFill),
		actionItem(theme.ContentClearIcon(), board, editor.ActionClearAll),
	)

	swatches := container.NewHBox()
	for _, c := range fillColors {
		swatches.Add(newColorSwatch(c, board.SetFillColor))
	}

	stroke := widget.NewSlider(0.5, 20)
	stroke.Step = 0.5
	stroke.SetValue(board.style.StrokeWidth)
	stroke.OnChanged = board.SetStrokeWidth
	strokeBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), stroke)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Fill:"),
		swatches,
		widget.NewSeparator(),
		widget.NewLabel("Stroke:"),
		strokeBox,
		layout.NewSpacer(),
	)
}
