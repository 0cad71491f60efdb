package live

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/portfolio/internal/page"
)

var errBadMessage = errors.New("invalid message format")

type session struct {
	h      *Handler
	id     string
	name   string
	conn   *websocket.Conn
	logger *zap.Logger
	page   page.Page

	ctx    context.Context
	cancel context.CancelFunc

	inbox chan inbound
	posts chan func()

	ticker *time.Ticker
	tick   <-chan time.Time
	last   time.Time
}

func newSession(h *Handler, conn *websocket.Conn, name string) *session {
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(h.ctx)
	return &session{
		h:      h,
		id:     id,
		name:   name,
		conn:   conn,
		logger: h.logger.With(zap.String("session", id), zap.String("page", name)),
		ctx:    ctx,
		cancel: cancel,
		inbox:  make(chan inbound),
		posts:  make(chan func(), 8),
	}
}

func (s *session) mount() error {
	p, err := page.New(s.name, page.Deps{
		Store:    s.h.opts.Store,
		Settings: s.h.opts.Settings,
		Search:   s.h.opts.Search,
		Player:   s,
		Post:     s.post,
		Logger:   s.logger,
	})
	if err != nil {
		s.cancel()
		return err
	}
	s.page = p
	return nil
}

// post hands fn to the loop. After the session ends it drops fn so that
// background lookups never block on a dead connection.
func (s *session) post(fn func()) {
	select {
	case s.posts <- fn:
	case <-s.ctx.Done():
	}
}

func (s *session) run() {
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		s.read()
	}()

	s.logger.Debug("session started")
	defer func() {
		s.cancel()
		s.stopTicker()
		s.page.Close()
		s.conn.Close()
		<-readerDone
		s.logger.Debug("session ended")
	}()

	s.render()
	s.sendFrame()

	for {
		s.syncTicker()
		select {
		case <-s.ctx.Done():
			s.send(Message{Type: "error", Message: "server shutting down"})
			return
		case in, ok := <-s.inbox:
			if !ok {
				return
			}
			if in.err != nil {
				s.sendError(in.err)
				continue
			}
			change, err := s.page.Handle(s.ctx, in.ev)
			if err != nil {
				s.logger.Debug("event rejected", zap.String("event", in.ev.Type), zap.Error(err))
				s.sendError(err)
			}
			s.apply(change)
		case fn := <-s.posts:
			fn()
			s.apply(page.ChangeRender)
		case now := <-s.tick:
			dt := now.Sub(s.last)
			s.last = now
			s.apply(s.page.Tick(dt))
		}
	}
}

func (s *session) read() {
	defer close(s.inbox)
	s.conn.SetReadLimit(maxMessageSize)
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket read", zap.Error(err))
			}
			return
		}
		var in inbound
		if err := json.Unmarshal(msg, &in.ev); err != nil || in.ev.Type == "" {
			in = inbound{err: errBadMessage}
		}
		select {
		case s.inbox <- in:
		case <-s.ctx.Done():
			return
		}
	}
}

// syncTicker runs the frame clock only while the page has animation or
// timers pending.
func (s *session) syncTicker() {
	animating := s.page.Animating()
	switch {
	case animating && s.ticker == nil:
		s.ticker = time.NewTicker(s.h.opts.FrameInterval)
		s.tick = s.ticker.C
		s.last = time.Now()
	case !animating && s.ticker != nil:
		s.stopTicker()
	}
}

func (s *session) stopTicker() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
	s.tick = nil
}

func (s *session) apply(c page.Change) {
	if c.Render() {
		s.render()
	}
	if c.Frame() || c.Render() {
		s.sendFrame()
	}
}

func (s *session) render() {
	var buf bytes.Buffer
	if err := s.h.opts.Renderer.Fragment(&buf, s.name, s.page.View()); err != nil {
		s.logger.Error("render fragment", zap.Error(err))
		s.sendError(errors.New("render failed"))
		return
	}
	s.send(Message{Type: "render", Page: s.name, HTML: buf.String()})
}

func (s *session) sendFrame() {
	f := s.page.Frame()
	if f == nil {
		return
	}
	s.send(Message{Type: "frame", Page: s.name, Frame: f})
}

func (s *session) sendError(err error) {
	s.send(Message{Type: "error", Message: err.Error()})
}

func (s *session) send(m Message) {
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(m); err != nil {
		s.logger.Debug("websocket write", zap.String("type", m.Type), zap.Error(err))
	}
}

// The session is the page's audio element: commands go to the browser.

func (s *session) Load(src string) { s.send(Message{Type: "audio", Command: "load", Src: src}) }
func (s *session) Play()           { s.send(Message{Type: "audio", Command: "play"}) }
func (s *session) Pause()          { s.send(Message{Type: "audio", Command: "pause"}) }
func (s *session) Rewind()         { s.send(Message{Type: "audio", Command: "rewind"}) }
