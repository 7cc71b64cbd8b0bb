package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"PathBoard/internal/config"
	"PathBoard/internal/editor"
	"PathBoard/internal/net"
	"PathBoard/internal/state"
	"PathBoard/internal/ui"
)

type flags struct {
	config   string
	path     string
	preview  bool
	mdns     bool
	discover bool
	debug    bool
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", "", "TOML settings file")
	flag.StringVar(&f.path, "path", "", "path commands to start editing from")
	flag.BoolVar(&f.preview, "preview", false, "serve a read-only live preview of the path")
	flag.BoolVar(&f.mdns, "mdns", false, "advertise the preview on the local network")
	flag.BoolVar(&f.discover, "discover", false, "list previews on the local network and exit")
	flag.BoolVar(&f.debug, "debug", false, "log at debug level and dump editor state")
	flag.Parse()

	level := slog.LevelInfo
	if f.debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if err := run(f, log); err != nil {
		log.Error("pathboard failed", "err", err)
		os.Exit(1)
	}
}

func run(f flags, log *slog.Logger) error {
	if f.discover {
		addrs, err := net.Discover(2 * time.Second)
		if err != nil {
			return err
		}
		for _, a := range addrs {
			fmt.Printf("http://%s/\n", a)
		}
		return nil
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}

	opts := []editor.Option{editor.WithLogger(log)}
	if f.path != "" {
		seq, err := state.Parse(f.path)
		if err != nil {
			return fmt.Errorf("-path: %w", err)
		}
		opts = append(opts, editor.WithSequence(seq))
	}
	ed := editor.New(cfg, opts...)

	uiOpts := ui.Options{Debug: f.debug, Logger: log}
	switch {
	case f.preview:
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		feed := net.NewFeed(log)
		go func() {
			if err := feed.Serve(ctx, fmt.Sprintf(":%d", cfg.PreviewPort)); err != nil {
				log.Error("preview stopped", "err", err)
			}
		}()
		uiOpts.Publish = feed.Publish
		log.Info("preview available", "url", net.PreviewURL(cfg.PreviewPort))

		if f.mdns {
			server, err := net.Advertise(cfg.PreviewPort)
			if err != nil {
				log.Warn("mDNS advertisement failed", "err", err)
			} else {
				defer server.Shutdown()
			}
		}
	case f.mdns:
		log.Warn("-mdns has no effect without -preview")
	}

	ui.RunApp(ed, uiOpts)
	return nil
}
