package page

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ziadkadry99/portfolio/internal/content"
	"github.com/ziadkadry99/portfolio/internal/layout"
	"github.com/ziadkadry99/portfolio/internal/overlay"
	"github.com/ziadkadry99/portfolio/internal/view"
)

// Producer role filters.
const (
	FilterAll      = "All Units"
	FilterFeatured = "Featured"
	FilterTurnkey  = "全案制作"
	FilterPlanning = "策划"
	FilterPost     = "后期"
)

// Filters in display order.
var Filters = []string{FilterAll, FilterFeatured, FilterTurnkey, FilterPlanning, FilterPost}

const promptProfile = "profile"

// MatchesFilter reports whether credit c belongs under filter. Roles match
// by substring.
func MatchesFilter(filter string, c content.Credit) bool {
	hasRole := func(r string) bool {
		for _, role := range c.Roles {
			if strings.Contains(role, r) {
				return true
			}
		}
		return false
	}
	switch filter {
	case FilterFeatured:
		return c.Featured
	case FilterTurnkey:
		return hasRole("制片") ||
			strings.Contains(c.Description, "全流程") ||
			strings.Contains(c.Description, "0 到 1") ||
			strings.Contains(c.Description, "全案")
	case FilterPlanning:
		return hasRole("策划") || hasRole("立项")
	case FilterPost:
		return hasRole("剪辑") || hasRole("后期")
	default:
		return true
	}
}

func knownFilter(f string) bool {
	for _, k := range Filters {
		if k == f {
			return true
		}
	}
	return false
}

// FilterTab is one filter button.
type FilterTab struct {
	Name   string
	Active bool
}

// ProducerView is the production work log.
type ProducerView struct {
	Filters     []FilterTab
	Credits     []content.Credit
	Matched     int
	Empty       bool
	Detail      *content.Credit
	ProfileOpen bool
	Frame       ProducerFrame
}

// OrbitItem is one credit's place on the orbit.
type OrbitItem struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       int     `json:"z"`
	Ghost   bool    `json:"ghost"`
	Hovered bool    `json:"hovered"`

	Title string `json:"-"`
	Image string `json:"-"`
}

// ProducerFrame is sent on every orbit tick.
type ProducerFrame struct {
	Theta float64     `json:"theta"`
	Items []OrbitItem `json:"items"`
}

type producerPage struct {
	credits []content.Credit
	filter  string
	hovered string
	slot    overlay.Slot
	orbit   *layout.Orbit
}

func newProducer(d Deps) *producerPage {
	return &producerPage{
		credits: d.Store.Credits(),
		filter:  FilterAll,
		orbit:   layout.NewOrbit(d.Settings.Orbit),
	}
}

func (p *producerPage) Name() string { return Producer }

func (p *producerPage) index(id string) int {
	for i, c := range p.credits {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (p *producerPage) Handle(_ context.Context, ev Event) (Change, error) {
	switch ev.Type {
	case "filter":
		if !knownFilter(ev.Value) {
			return None, fmt.Errorf("%w: filter %q", ErrUnknownRecord, ev.Value)
		}
		p.filter = ev.Value
	case "hover":
		if p.index(ev.Target) < 0 {
			return None, unknownRecord("credit", ev.Target)
		}
		p.hovered = ev.Target
		p.orbit.Pause(layout.ReasonHover)
		return ChangeFrame, nil
	case "leave":
		p.hovered = ""
		p.orbit.Resume(layout.ReasonHover)
		return ChangeFrame, nil
	case "open":
		if p.index(ev.Target) < 0 {
			return None, unknownRecord("credit", ev.Target)
		}
		p.slot.Open(ev.Target)
	case "profile":
		p.slot.Prompt(promptProfile)
	case "close":
		p.slot.Close()
	case "click":
		target := overlay.Inside
		if ev.Value == "outside" {
			target = overlay.Outside
		}
		if !p.slot.Click(target) {
			return None, nil
		}
	default:
		return None, unknownEvent(ev)
	}
	p.syncPause()
	return ChangeRender | ChangeFrame, nil
}

// syncPause holds the orbit while either overlay is shown.
func (p *producerPage) syncPause() {
	p.orbit.Resume(layout.ReasonDetail)
	p.orbit.Resume(layout.ReasonProfile)
	if _, ok := p.slot.RecordID(); ok {
		p.orbit.Pause(layout.ReasonDetail)
	}
	if _, ok := p.slot.PromptName(); ok {
		p.orbit.Pause(layout.ReasonProfile)
	}
}

func (p *producerPage) Tick(dt time.Duration) Change {
	if len(p.credits) == 0 || !p.orbit.Tick(dt) {
		return None
	}
	return ChangeFrame
}

func (p *producerPage) Animating() bool {
	return len(p.credits) > 0 && !p.orbit.Paused()
}

func (p *producerPage) frame() ProducerFrame {
	filtering := p.filter != FilterAll
	f := ProducerFrame{Theta: p.orbit.Theta(), Items: make([]OrbitItem, 0, len(p.credits))}
	for _, pos := range p.orbit.Positions(len(p.credits)) {
		c := p.credits[pos.Index]
		f.Items = append(f.Items, OrbitItem{
			ID:      c.ID,
			X:       pos.X,
			Y:       pos.Y,
			Z:       pos.Z,
			Ghost:   filtering && !MatchesFilter(p.filter, c),
			Hovered: c.ID == p.hovered,
			Title:   c.Title,
			Image:   c.Image,
		})
	}
	return f
}

func (p *producerPage) View() any {
	matched := view.Match(p.credits, func(c content.Credit) bool { return MatchesFilter(p.filter, c) })
	v := ProducerView{
		Credits: p.credits,
		Matched: len(matched),
		Empty:   len(matched) == 0,
		Frame:   p.frame(),
	}
	for _, f := range Filters {
		v.Filters = append(v.Filters, FilterTab{Name: f, Active: f == p.filter})
	}
	if id, ok := p.slot.RecordID(); ok {
		c := p.credits[p.index(id)]
		v.Detail = &c
	}
	_, v.ProfileOpen = p.slot.PromptName()
	return v
}

func (p *producerPage) Frame() any { return p.frame() }

func (p *producerPage) Close() {}
