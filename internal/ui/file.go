package ui

import (
	"fmt"
	"io"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"PathBoard/internal/state"
)

// writePath writes the path text followed by a newline.
func writePath(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return fmt.Errorf("write path: %w", err)
	}
	return nil
}

// readPath parses a file holding path commands.
func readPath(r io.Reader) (state.Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read path: %w", err)
	}
	seq, err := state.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("read path: %w", err)
	}
	return seq, nil
}

var pathFilter = storage.NewExtensionFileFilter([]string{".path", ".txt"})

func (b *BoardWidget) showSave(w fyne.Window) {
	text := b.ed.Path()
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			b.dialogFailed(w, err)
			return
		}
		defer func() {
			if err := wc.Close(); err != nil {
				b.log.Warn("closing file failed", "uri", wc.URI(), "err", err)
			}
		}()
		if err := writePath(wc, text); err != nil {
			b.dialogFailed(w, err)
			return
		}
		b.log.Info("saved path", "uri", wc.URI())
	}, w)
	d.SetFileName("path.txt")
	d.SetFilter(pathFilter)
	d.Show()
}

func (b *BoardWidget) showOpen(w fyne.Window) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			b.dialogFailed(w, err)
			return
		}
		defer rc.Close()
		seq, err := readPath(rc)
		if err != nil {
			b.dialogFailed(w, err)
			return
		}
		b.ed.Load(seq)
		b.changed()
	}, w)
	d.SetFilter(pathFilter)
	d.Show()
}

// dialogFailed reports err; a nil err means the dialog was cancelled.
func (b *BoardWidget) dialogFailed(w fyne.Window, err error) {
	if err == nil {
		return
	}
	b.log.Warn("file dialog failed", "err", err)
	dialog.ShowError(err, w)
}
