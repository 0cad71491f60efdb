package page

import (
	"context"
	"strconv"
	"time"

	"github.com/ziadkadry99/portfolio/internal/content"
	"github.com/ziadkadry99/portfolio/internal/layout"
	"github.com/ziadkadry99/portfolio/internal/overlay"
)

// LadderView is one side project with its marker height.
type LadderView struct {
	content.Ladder
	Height float64
	Active bool
}

// ExplorerView is the side-project scene.
type ExplorerView struct {
	Ladders   []LadderView
	Detail    *content.Ladder
	ActiveTab int
	Frame     ExplorerFrame
}

// ExplorerFrame is the climber position, sent while it moves.
type ExplorerFrame struct {
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	State  layout.State `json:"state"`
	Target string       `json:"target,omitempty"`
}

type explorerPage struct {
	deps    Deps
	ladders []content.Ladder
	slot    overlay.Slot
	pointer *layout.Pointer
	tab     int
	state   layout.State
}

func newExplorer(d Deps) *explorerPage {
	p := &explorerPage{
		deps:    d,
		ladders: d.Store.Ladders(),
		pointer: layout.NewPointer(d.Settings.Ladder),
	}
	p.state = p.pointer.State()
	return p
}

func (p *explorerPage) Name() string { return Explorer }

func (p *explorerPage) ladder(id string) (content.Ladder, bool) {
	for _, l := range p.ladders {
		if l.ID == id {
			return l, true
		}
	}
	return content.Ladder{}, false
}

func (p *explorerPage) Handle(_ context.Context, ev Event) (Change, error) {
	switch ev.Type {
	case "hover":
		if p.slot.IsOpen() {
			return None, nil
		}
		l, ok := p.ladder(ev.Target)
		if !ok {
			return None, unknownRecord("ladder", ev.Target)
		}
		p.pointer.Hover(l.ID, l.Position.Left, l.Score)
		return p.stateChange(), nil
	case "leave":
		if p.slot.IsOpen() {
			return None, nil
		}
		p.pointer.Leave()
		return p.stateChange(), nil
	case "move":
		if p.slot.IsOpen() || !p.pointer.MoveTo(ev.X) {
			return None, nil
		}
		return p.stateChange(), nil
	case "open":
		l, ok := p.ladder(ev.Target)
		if !ok {
			return None, unknownRecord("ladder", ev.Target)
		}
		p.slot.Open(l.ID)
		p.tab = 0
	case "tab":
		l, ok := p.detail()
		if !ok {
			return None, nil
		}
		i, err := strconv.Atoi(ev.Value)
		if err != nil || i < 0 || i >= len(l.Content.Tabs) {
			return None, unknownRecord("tab", ev.Value)
		}
		p.tab = i
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
	return ChangeRender, nil
}

// stateChange re-renders when the sprite state flipped, otherwise only the
// frame moves.
func (p *explorerPage) stateChange() Change {
	if s := p.pointer.State(); s != p.state {
		p.state = s
		return ChangeRender | ChangeFrame
	}
	return ChangeFrame
}

func (p *explorerPage) detail() (content.Ladder, bool) {
	id, ok := p.slot.RecordID()
	if !ok {
		return content.Ladder{}, false
	}
	return p.ladder(id)
}

func (p *explorerPage) Tick(dt time.Duration) Change {
	if p.pointer.Settled() {
		return None
	}
	p.pointer.Step(dt)
	return p.stateChange()
}

func (p *explorerPage) Animating() bool { return !p.pointer.Settled() }

func (p *explorerPage) frame() ExplorerFrame {
	x, y := p.pointer.Position()
	return ExplorerFrame{X: x, Y: y, State: p.pointer.State(), Target: p.pointer.Target()}
}

func (p *explorerPage) View() any {
	v := ExplorerView{ActiveTab: p.tab, Frame: p.frame()}
	for _, l := range p.ladders {
		v.Ladders = append(v.Ladders, LadderView{
			Ladder: l,
			Height: layout.ClimbHeight(l.Score, p.deps.Settings.Ladder.Unit),
			Active: l.ID == p.pointer.Target(),
		})
	}
	if l, ok := p.detail(); ok {
		v.Detail = &l
	}
	return v
}

func (p *explorerPage) Frame() any { return p.frame() }

func (p *explorerPage) Close() {}
