package page

import (
	"context"
	"time"

	"github.com/ziadkadry99/portfolio/internal/content"
)

// HomeView is the landing page.
type HomeView struct {
	Cards           []content.Card
	Elements        []HomeElement
	PortraitHovered bool
}

// HomeElement is a floating element with its highlight state.
type HomeElement struct {
	content.HomeElement
	Highlighted bool
}

type homePage struct {
	cards    []content.Card
	elements []content.HomeElement
	linked   map[string]string
	hovered  string
	portrait bool
}

func newHome(d Deps) *homePage {
	p := &homePage{
		cards:    d.Store.Cards(),
		elements: d.Store.Home(),
		linked:   make(map[string]string),
	}
	for _, e := range p.elements {
		if e.LinkedID != "" {
			p.linked[e.ID] = e.LinkedID
		}
	}
	return p
}

func (p *homePage) Name() string { return Home }

func (p *homePage) known(id string) bool {
	for _, e := range p.elements {
		if e.ID == id {
			return true
		}
	}
	return false
}

func (p *homePage) Handle(_ context.Context, ev Event) (Change, error) {
	switch ev.Type {
	case "hover":
		if !p.known(ev.Target) {
			return None, unknownRecord("element", ev.Target)
		}
		if p.hovered == ev.Target {
			return None, nil
		}
		p.hovered = ev.Target
	case "leave":
		if p.hovered == "" {
			return None, nil
		}
		p.hovered = ""
	case "portrait":
		on := ev.Value == "enter"
		if on == p.portrait {
			return None, nil
		}
		p.portrait = on
	default:
		return None, unknownEvent(ev)
	}
	return ChangeRender, nil
}

// highlighted reports whether id is hovered or linked from the hovered
// element.
func (p *homePage) highlighted(id string) bool {
	if p.hovered == "" {
		return false
	}
	return id == p.hovered || p.linked[p.hovered] == id
}

func (p *homePage) Tick(time.Duration) Change { return None }

func (p *homePage) Animating() bool { return false }

func (p *homePage) View() any {
	v := HomeView{Cards: p.cards, PortraitHovered: p.portrait}
	for _, e := range p.elements {
		v.Elements = append(v.Elements, HomeElement{HomeElement: e, Highlighted: p.highlighted(e.ID)})
	}
	return v
}

func (p *homePage) Frame() any { return nil }

func (p *homePage) Close() {}
