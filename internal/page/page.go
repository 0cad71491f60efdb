// Package page holds the interaction state machine behind each route. A page
// instance lives exactly as long as the browser connection that mounted it.
package page

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/portfolio/internal/config"
	"github.com/ziadkadry99/portfolio/internal/content"
	"github.com/ziadkadry99/portfolio/internal/layout"
	"github.com/ziadkadry99/portfolio/internal/media"
	"github.com/ziadkadry99/portfolio/internal/preview"
)

// Route names.
const (
	Home     = "home"
	Creator  = "creator"
	Producer = "producer"
	Explorer = "explorer"
	Review   = "review"
)

var (
	ErrUnknownPage   = errors.New("unknown page")
	ErrUnknownEvent  = errors.New("unknown event")
	ErrUnknownRecord = errors.New("unknown record")
)

// Event is one client interaction.
type Event struct {
	Type   string  `json:"type"`
	Target string  `json:"target,omitempty"`
	Value  string  `json:"value,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
}

// Change tells the transport what to send after an event or tick.
type Change uint8

const (
	// ChangeRender means the page markup must be re-rendered.
	ChangeRender Change = 1 << iota
	// ChangeFrame means only the animation frame moved.
	ChangeFrame
)

const None Change = 0

func (c Change) Render() bool { return c&ChangeRender != 0 }

func (c Change) Frame() bool { return c&ChangeFrame != 0 }

// Page is the state machine of one mounted route.
type Page interface {
	Name() string
	// Handle applies a client event. Errors are recoverable and leave the
	// page usable.
	Handle(ctx context.Context, ev Event) (Change, error)
	// Tick advances timers and animation by dt.
	Tick(dt time.Duration) Change
	// Animating reports whether Tick currently has work to do.
	Animating() bool
	// View is the template data for the page body.
	View() any
	// Frame is the animation payload, or nil for pages without one.
	Frame() any
	// Close stops audio and releases everything the page holds.
	Close()
}

// Settings are the tunables pages read from configuration.
type Settings struct {
	Passcode         string
	GateErrorDisplay time.Duration
	PatchDuration    time.Duration
	Orbit            layout.OrbitConfig
	Ladder           layout.LadderConfig
}

// SettingsFromConfig extracts the page settings from cfg.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Passcode:         cfg.Passcode,
		GateErrorDisplay: cfg.GateErrorDisplay,
		PatchDuration:    cfg.PatchDuration,
		Orbit: layout.OrbitConfig{
			CenterX: cfg.Orbit.CenterX,
			CenterY: cfg.Orbit.CenterY,
			RadiusX: cfg.Orbit.RadiusX,
			RadiusY: cfg.Orbit.RadiusY,
			Speed:   cfg.Orbit.Speed,
			Frame:   cfg.FrameInterval,
		},
		Ladder: layout.LadderConfig{
			Unit:         cfg.Ladder.Unit,
			RestX:        cfg.Ladder.RestX,
			MinX:         cfg.Ladder.MinX,
			MaxX:         cfg.Ladder.MaxX,
			StiffnessX:   cfg.Ladder.StiffnessX,
			StiffnessY:   cfg.Ladder.StiffnessY,
			Damping:      cfg.Ladder.Damping,
			RunIdleAfter: cfg.Ladder.RunIdleAfter,
		},
	}
}

// Deps is everything a page needs from its connection and the process.
type Deps struct {
	Store    *content.Store
	Settings Settings
	Search   preview.Searcher
	Player   media.Player
	// Post schedules fn on the connection's event loop.
	Post   func(fn func())
	Logger *zap.Logger
	Now    func() time.Time
}

func (d *Deps) fill() {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Post == nil {
		d.Post = func(fn func()) { fn() }
	}
	if d.Player == nil {
		d.Player = nopPlayer{}
	}
	if d.Search == nil {
		d.Search = offlineSearch{}
	}
}

type offlineSearch struct{}

func (offlineSearch) Search(context.Context, string) (preview.Track, error) {
	return preview.Track{}, preview.ErrNoResults
}

type nopPlayer struct{}

func (nopPlayer) Load(string) {}
func (nopPlayer) Play()       {}
func (nopPlayer) Pause()      {}
func (nopPlayer) Rewind()     {}

type factory func(Deps) Page

var factories = map[string]factory{
	Home:     func(d Deps) Page { return newHome(d) },
	Creator:  func(d Deps) Page { return newCreator(d) },
	Producer: func(d Deps) Page { return newProducer(d) },
	Explorer: func(d Deps) Page { return newExplorer(d) },
	Review:   func(d Deps) Page { return newReview(d) },
}

// Names lists the mountable pages.
func Names() []string {
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is a mountable page.
func Known(name string) bool {
	_, ok := factories[name]
	return ok
}

// New mounts a fresh instance of the named page.
func New(name string, deps Deps) (Page, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	if deps.Store == nil {
		return nil, errors.New("page: content store required")
	}
	deps.fill()
	deps.Logger = deps.Logger.With(zap.String("page", name))
	return f(deps), nil
}

func unknownEvent(ev Event) error {
	return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
}

func unknownRecord(kind, id string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownRecord, kind, id)
}
