// Package live serves mounted pages over a websocket. Each connection owns
// one page instance and one event loop; only the loop touches the page or
// writes to the socket.
package live

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/portfolio/internal/content"
	"github.com/ziadkadry99/portfolio/internal/page"
	"github.com/ziadkadry99/portfolio/internal/preview"
)

const (
	defaultFrameInterval = 16 * time.Millisecond
	writeWait            = 10 * time.Second
	maxMessageSize       = 4096
)

// Renderer renders the body fragment of a page from its view.
type Renderer interface {
	Fragment(w io.Writer, page string, data any) error
}

// Options configures a Handler.
type Options struct {
	Store         *content.Store
	Settings      page.Settings
	Search        preview.Searcher
	Renderer      Renderer
	Logger        *zap.Logger
	FrameInterval time.Duration
	// CheckOrigin overrides the upgrader origin check. Nil accepts every
	// origin.
	CheckOrigin func(r *http.Request) bool
}

// Handler upgrades /ws/{page} requests and runs one session per connection.
type Handler struct {
	opts     Options
	logger   *zap.Logger
	upgrader websocket.Upgrader

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHandler returns a handler ready to mount. Call Close on shutdown to
// end every open session.
func NewHandler(opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = defaultFrameInterval
	}
	checkOrigin := opts.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Handler{
		opts:     opts,
		logger:   opts.Logger.Named("live"),
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin},
		ctx:      ctx,
		cancel:   cancel,
	}
}

// ServeHTTP mounts the page named by the {page} route parameter.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "page")
	if !page.Known(name) {
		http.NotFound(w, r)
		return
	}
	if h.ctx.Err() != nil {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.String("page", name), zap.Error(err))
		return
	}

	h.wg.Add(1)
	defer h.wg.Done()

	s := newSession(h, conn, name)
	if err := s.mount(); err != nil {
		s.logger.Error("mount page", zap.Error(err))
		s.send(Message{Type: "error", Message: err.Error()})
		conn.Close()
		return
	}
	s.run()
}

// Close ends every open session and waits for their goroutines.
func (h *Handler) Close() {
	h.cancel()
	h.wg.Wait()
}

// Message is a server to client frame.
type Message struct {
	Type    string `json:"type"`
	Page    string `json:"page,omitempty"`
	HTML    string `json:"html,omitempty"`
	Frame   any    `json:"frame,omitempty"`
	Command string `json:"command,omitempty"`
	Src     string `json:"src,omitempty"`
	Message string `json:"message,omitempty"`
}

type inbound struct {
	ev  page.Event
	err error
}
