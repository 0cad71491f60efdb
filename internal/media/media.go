// Package media owns the preview playback state of one page.
//
// A Controller is not safe for concurrent use. Every method, and every
// function handed to the post hook, must run on the owning page's event
// loop. Lookups run on their own goroutine and report back through post.
package media

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/portfolio/internal/preview"
)

// Player drives the actual audio element.
type Player interface {
	Load(src string)
	Play()
	Pause()
	Rewind()
}

// State is the playback state rendered by the page.
type State struct {
	Track      string `json:"track,omitempty"`
	Loading    bool   `json:"loading"`
	PreviewURL string `json:"preview_url,omitempty"`
	ViewURL    string `json:"view_url,omitempty"`
	Playing    bool   `json:"playing"`
	Error      bool   `json:"error"`
}

// Controller plays at most one track at a time. When lookups overlap, the
// most recent Play wins and earlier results are dropped.
type Controller struct {
	search preview.Searcher
	player Player
	post   func(func())
	logger *zap.Logger

	state  State
	token  string
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New returns an idle controller. post schedules a function on the owner's
// event loop; it must not block once the owner has stopped.
func New(search preview.Searcher, player Player, post func(func()), logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{search: search, player: player, post: post, logger: logger}
}

func (c *Controller) State() State { return c.state }

// Play toggles the current track when query is already loaded, otherwise it
// starts a new lookup and plays the result when it arrives.
func (c *Controller) Play(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	if query == c.state.Track && c.state.PreviewURL != "" {
		c.Toggle()
		return
	}

	c.abort()
	if c.state.Playing {
		c.player.Pause()
	}
	c.state = State{Track: query, Loading: true}

	tok := uuid.NewString()
	c.token = tok
	lookupCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		track, err := c.search.Search(lookupCtx, query)
		c.post(func() { c.complete(tok, query, track, err) })
	}()
}

func (c *Controller) complete(tok, query string, track preview.Track, err error) {
	if tok != c.token {
		c.logger.Debug("dropping stale preview lookup", zap.String("query", query))
		return
	}
	c.token = ""
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state.Loading = false

	if err != nil {
		c.state.Error = true
		if errors.Is(err, preview.ErrNoResults) {
			c.logger.Info("no preview for track", zap.String("query", query))
		} else {
			c.logger.Warn("preview lookup failed", zap.String("query", query), zap.Error(err))
		}
		return
	}

	c.state.PreviewURL = track.PreviewURL
	c.state.ViewURL = track.ViewURL
	c.player.Load(track.PreviewURL)
	c.player.Play()
	c.state.Playing = true
}

// Toggle pauses or resumes in place. It does nothing until a preview has
// been resolved.
func (c *Controller) Toggle() {
	if c.state.PreviewURL == "" {
		return
	}
	if c.state.Playing {
		c.player.Pause()
		c.state.Playing = false
		return
	}
	c.player.Play()
	c.state.Playing = true
}

// Stop halts playback, rewinds and resets to the empty state. Any pending
// lookup is cancelled and its result ignored.
func (c *Controller) Stop() {
	c.abort()
	if c.state.PreviewURL != "" {
		c.player.Pause()
		c.player.Rewind()
	}
	c.state = State{}
}

// Ended records that the track played to its end.
func (c *Controller) Ended() {
	c.state.Playing = false
}

// Failed records that the audio element could not play the preview.
func (c *Controller) Failed() {
	c.logger.Warn("preview playback failed", zap.String("track", c.state.Track))
	c.state.Playing = false
	c.state.Loading = false
	c.state.Error = true
}

// Close stops playback and waits for any lookup goroutine to finish.
func (c *Controller) Close() {
	c.Stop()
	c.wg.Wait()
}

func (c *Controller) abort() {
	c.token = ""
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
