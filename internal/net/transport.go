package net

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Feed pushes the latest path text to every connected preview viewer.
// Viewers only receive; anything they send is discarded.
type Feed struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	latest  string
	viewers map[*viewer]struct{}
}

type viewer struct {
	conn *websocket.Conn
	send chan string
}

func NewFeed(log *slog.Logger) *Feed {
	if log == nil {
		log = slog.Default()
	}
	return &Feed{
		log: log.With("component", "preview"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  512,
			WriteBufferSize: 4096,
			// The feed is read-only, so any page may watch it.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		viewers: make(map[*viewer]struct{}),
	}
}

// Publish records text and forwards it to the viewers if it changed.
// It never blocks on a slow viewer.
func (f *Feed) Publish(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if text == f.latest {
		return
	}
	f.latest = text
	for v := range f.viewers {
		v.offer(text)
	}
}

// Latest returns the most recently published text.
func (f *Feed) Latest() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest
}

// Viewers returns the number of connected viewers.
func (f *Feed) Viewers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.viewers)
}

// offer queues text, replacing a queued text the viewer has not read yet.
func (v *viewer) offer(text string) {
	select {
	case v.send <- text:
		return
	default:
	}
	select {
	case <-v.send:
	default:
	}
	select {
	case v.send <- text:
	default:
	}
}

// Handler serves the viewer page on /, the websocket on /ws and the plain
// path text on /path.
func (f *Feed) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", f.servePage)
	mux.HandleFunc("GET /ws", f.serveSocket)
	mux.HandleFunc("GET /path", f.servePath)
	return mux
}

func (f *Feed) servePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(viewerPage)); err != nil {
		f.log.Debug("writing viewer page failed", "err", err)
	}
}

func (f *Feed) servePath(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, f.Latest())
}

func (f *Feed) serveSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	v := &viewer{conn: conn, send: make(chan string, 1)}

	f.mu.Lock()
	f.viewers[v] = struct{}{}
	v.send <- f.latest
	n := len(f.viewers)
	f.mu.Unlock()
	f.log.Info("viewer connected", "remote", conn.RemoteAddr().String(), "viewers", n)

	go f.write(v)
	f.read(v)
}

func (f *Feed) write(v *viewer) {
	for text := range v.send {
		if err := v.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			break
		}
		if err := v.conn.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
			f.log.Debug("write to viewer failed", "remote", v.conn.RemoteAddr().String(), "err", err)
			break
		}
	}
	v.conn.Close()
}

// read drains the connection until it closes, then drops the viewer.
func (f *Feed) read(v *viewer) {
	v.conn.SetReadLimit(512)
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			break
		}
	}
	f.drop(v)
}

func (f *Feed) drop(v *viewer) {
	f.mu.Lock()
	_, ok := f.viewers[v]
	delete(f.viewers, v)
	n := len(f.viewers)
	f.mu.Unlock()
	if !ok {
		return
	}
	close(v.send)
	v.conn.Close()
	f.log.Info("viewer disconnected", "remote", v.conn.RemoteAddr().String(), "viewers", n)
}

// Close disconnects every viewer.
func (f *Feed) Close() {
	f.mu.Lock()
	viewers := make([]*viewer, 0, len(f.viewers))
	for v := range f.viewers {
		viewers = append(viewers, v)
	}
	f.mu.Unlock()
	for _, v := range viewers {
		f.drop(v)
	}
}

// Serve runs the preview server on addr until ctx is cancelled.
func (f *Feed) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           f.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			f.log.Warn("preview shutdown", "err", err)
		}
		f.Close()
	}()

	f.log.Info("preview listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("preview server: %w", err)
	}
	return nil
}

const viewerPage = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>PathBoard preview</title>
<style>
body { margin: 0; font-family: sans-serif; background: #f5f6f8; }
svg { width: 100vw; height: calc(100vh - 2em); }
path { fill: #8fb8de; stroke: #1f3b57; stroke-width: 3; stroke-linejoin: round; }
code { display: block; height: 2em; line-height: 2em; padding: 0 1em; overflow: hidden; white-space: nowrap; }
</style>
</head>
<body>
<svg id="board"><path id="path" d=""/></svg>
<code id="text">connecting</code>
<script>
const path = document.getElementById("path");
const text = document.getElementById("text");
function connect() {
  const ws = new WebSocket("ws://" + location.host + "/ws");
  ws.onmessage = (e) => {
    path.setAttribute("d", e.data);
    text.textContent = e.data || "(empty)";
    const box = path.getBBox();
    if (box.width > 0 && box.height > 0) {
      document.getElementById("board").setAttribute("viewBox", [box.x - 10, box.y - 10, box.width + 20, box.height + 20].join(" "));
    }
  };
  ws.onclose = () => { text.textContent = "disconnected, retrying"; setTimeout(connect, 1000); };
}
connect();
</script>
</body>
</html>
`
