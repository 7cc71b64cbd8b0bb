package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"PathBoard/internal/editor"
)

var runeActions = map[rune]editor.Action{
	'd': editor.ActionDuplicateSelected,
	't': editor.ActionCycleTypeForward,
	'T': editor.ActionCycleTypeBackward,
	'g': editor.ActionToggleGridSnap,
	'n': editor.ActionClearAll,
	'f': editor.ActionFitToView,
	'=': editor.ActionIncreaseDecimals,
	'+': editor.ActionIncreaseDecimals,
	'-': editor.ActionDecreaseDecimals,
	'h': editor.ActionToggleMarkers,
	'p': editor.ActionToggleFill,
}

var keyActions = map[fyne.KeyName]editor.Action{
	fyne.KeyDelete:    editor.ActionDeleteSelected,
	fyne.KeyBackspace: editor.ActionDeleteSelected,
}

// bindKeys installs the keyboard commands on c. Undo and redo use the
// platform shortcuts; copyPath runs for the copy shortcut.
func bindKeys(c fyne.Canvas, apply func(editor.Action), copyPath func()) {
	c.SetOnTypedRune(func(r rune) {
		if a, ok := runeActions[r]; ok {
			apply(a)
		}
	})
	c.SetOnTypedKey(func(e *fyne.KeyEvent) {
		if a, ok := keyActions[e.Name]; ok {
			apply(a)
		}
	})
	c.AddShortcut(&fyne.ShortcutUndo{}, func(fyne.Shortcut) { apply(editor.ActionUndo) })
	c.AddShortcut(&fyne.ShortcutRedo{}, func(fyne.Shortcut) { apply(editor.ActionRedo) })
	redoY := &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}
	c.AddShortcut(redoY, func(fyne.Shortcut) { apply(editor.ActionRedo) })
	c.AddShortcut(&fyne.ShortcutCopy{}, func(fyne.Shortcut) { copyPath() })
}
