package page

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ziadkadry99/portfolio/internal/config"
	"github.com/ziadkadry99/portfolio/internal/content"
	"github.com/ziadkadry99/portfolio/internal/preview"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type fakeSearch struct{}

func (fakeSearch) Search(_ context.Context, term string) (preview.Track, error) {
	return preview.Track{Name: term, PreviewURL: "https://p/" + term}, nil
}

type recordingPlayer struct {
	mu    sync.Mutex
	calls []string
}

func (p *recordingPlayer) record(s string) {
	p.mu.Lock()
	p.calls = append(p.calls, s)
	p.mu.Unlock()
}

func (p *recordingPlayer) Load(src string) { p.record("load " + src) }
func (p *recordingPlayer) Play()           { p.record("play") }
func (p *recordingPlayer) Pause()          { p.record("pause") }
func (p *recordingPlayer) Rewind()         { p.record("rewind") }

func (p *recordingPlayer) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

type harness struct {
	page   Page
	clock  *fakeClock
	player *recordingPlayer
	posted chan func()
}

func mount(t *testing.T, name string) *harness {
	t.Helper()
	store, err := content.Bundled()
	if err != nil {
		t.Fatalf("Bundled() error: %v", err)
	}
	h := &harness{
		clock:  &fakeClock{t: time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)},
		player: &recordingPlayer{},
		posted: make(chan func(), 8),
	}
	p, err := New(name, Deps{
		Store:    store,
		Settings: SettingsFromConfig(config.DefaultConfig()),
		Search:   fakeSearch{},
		Player:   h.player,
		Post:     func(fn func()) { h.posted <- fn },
		Now:      h.clock.Now,
	})
	if err != nil {
		t.Fatalf("New(%q) error: %v", name, err)
	}
	t.Cleanup(p.Close)
	h.page = p
	return h
}

func (h *harness) send(t *testing.T, ev Event) Change {
	t.Helper()
	c, err := h.page.Handle(context.Background(), ev)
	if err != nil {
		t.Fatalf("Handle(%+v) error: %v", ev, err)
	}
	return c
}

func (h *harness) drain(t *testing.T) {
	t.Helper()
	select {
	case fn := <-h.posted:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for posted completion")
	}
}
