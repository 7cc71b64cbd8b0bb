package ui

import (
	"context"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"PathBoard/internal/editor"
)

// Options configures the host window.
type Options struct {
	Title string
	// Publish receives the sampled path text every frame.
	Publish func(path string)
	// Debug logs the editor's state dump whenever it changes.
	Debug  bool
	Logger *slog.Logger
}

// RunApp opens the editor window and blocks until it is closed.
func RunApp(ed *editor.Editor, opts Options) {
	if opts.Title == "" {
		opts.Title = "PathBoard"
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	a := app.New()
	w := a.NewWindow(opts.Title)
	cfg := ed.Config()
	w.Resize(fyne.NewSize(cfg.Width, cfg.Height))

	board := NewBoardWidget(ed, log)
	log = log.With("component", "ui")
	status := widget.NewLabel(ed.Status().String())
	copyPath := func() {
		w.Clipboard().SetContent(ed.Path())
		ed.Notify("copied path to clipboard")
	}
	bindKeys(w.Canvas(), board.Apply, copyPath)

	w.SetContent(container.NewBorder(NewToolbar(board, w, copyPath), status, nil, nil, board))

	var lastDump string
	frame := func(now time.Time) {
		ed.Tick(now)
		board.Refresh()
		status.SetText(ed.Status().String())
		if opts.Publish != nil {
			opts.Publish(ed.Path())
		}
		if opts.Debug {
			if dump := ed.Debug(); dump != lastDump {
				lastDump = dump
				log.Debug("editor state", "dump", dump)
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runFrames(ctx, cfg.FrameInterval(), fyne.Do, frame)

	log.Info("window open", "fps", cfg.FPS)
	w.ShowAndRun()
}

// runFrames samples the editor at a fixed rate until ctx is done. Each
// frame is handed to do so it runs on the UI goroutine.
func runFrames(ctx context.Context, interval time.Duration, do func(func()), frame func(time.Time)) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			do(func() { frame(now) })
		}
	}
}
