package page

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/portfolio/internal/content"
	"github.com/ziadkadry99/portfolio/internal/media"
	"github.com/ziadkadry99/portfolio/internal/overlay"
	"github.com/ziadkadry99/portfolio/internal/scratch"
	"github.com/ziadkadry99/portfolio/internal/view"
)

const (
	tabAll   = "all"
	tabMemos = "memos"

	// scratch card geometry in client pixels
	memoCardWidth  = 320
	memoCardHeight = 200
	memoCardCell   = 10
)

var errNoOutro = errors.New("episode has no outro track")

// Tab is one archive tab.
type Tab struct {
	Label  string
	Value  string
	Active bool
	Locked bool
}

// CreatorView is the content archive.
type CreatorView struct {
	Tabs     []Tab
	Episodes []content.Episode
	Empty    bool
	Detail   *content.Episode
	Prompt   PromptView
	Memos    *content.Memos
	Revealed bool
	Media    media.State
}

type creatorPage struct {
	deps     Deps
	episodes []content.Episode
	years    []int
	sel      view.Selection[int]
	slot     overlay.Slot
	pass     *passcode
	audio    *media.Controller
	memos    *content.Memos
	mask     *scratch.Mask
}

func newCreator(d Deps) *creatorPage {
	eps := d.Store.Episodes()
	return &creatorPage{
		deps:     d,
		episodes: eps,
		years:    view.DistinctKeys(eps, content.Episode.ArchiveYear),
		sel:      view.All[int](),
		pass:     newPasscode(d.Settings, d.Now),
		audio:    media.New(d.Search, d.Player, d.Post, d.Logger),
	}
}

func (p *creatorPage) Name() string { return Creator }

func (p *creatorPage) Handle(ctx context.Context, ev Event) (Change, error) {
	if isPasscodeEvent(ev) {
		if _, open := p.slot.PromptName(); !open {
			return None, nil
		}
		if _, granted := p.pass.handle(ev); granted {
			p.unlock()
		}
		return ChangeRender, nil
	}

	switch ev.Type {
	case "tab":
		return p.selectTab(ev.Value)
	case "open":
		ep, ok := p.deps.Store.Episode(ev.Target)
		if !ok {
			return None, unknownRecord("episode", ev.Target)
		}
		if cur, open := p.slot.RecordID(); open && cur != ep.ID {
			p.audio.Stop()
		}
		p.slot.Open(ep.ID)
	case "close":
		p.closeOverlay()
	case "click":
		target := overlay.Inside
		if ev.Value == "outside" {
			target = overlay.Outside
		}
		_, wasRecord := p.slot.RecordID()
		if !p.slot.Click(target) {
			return None, nil
		}
		if wasRecord {
			p.audio.Stop()
		}
	case "play":
		ep, ok := p.detail()
		if !ok {
			return None, unknownRecord("episode", ev.Target)
		}
		if ep.OutroMusic == nil || ep.OutroMusic.Title == "" {
			return None, errNoOutro
		}
		p.audio.Play(ctx, ep.OutroMusic.Title)
	case "toggle":
		p.audio.Toggle()
	case "audio-ended":
		p.audio.Ended()
	case "audio-error":
		p.audio.Failed()
	case "scratch-start", "scratch-move", "scratch-end":
		return p.scratch(ev), nil
	default:
		return None, unknownEvent(ev)
	}
	return ChangeRender, nil
}

func (p *creatorPage) selectTab(value string) (Change, error) {
	switch value {
	case tabAll:
		p.sel = view.All[int]()
	case tabMemos:
		if !p.pass.unlocked() {
			p.closeOverlay()
			p.pass.reset()
			p.slot.Prompt(tabMemos)
			return ChangeRender, nil
		}
		p.sel = view.Locked[int](tabMemos)
	default:
		y, err := strconv.Atoi(value)
		if err != nil {
			return None, unknownRecord("tab", value)
		}
		p.sel = view.ByKey(y)
	}
	return ChangeRender, nil
}

func (p *creatorPage) unlock() {
	p.closeOverlay()
	p.sel = view.Locked[int](tabMemos)
	m := p.deps.Store.Memos()
	p.memos = &m
	p.mask = scratch.New(memoCardWidth, memoCardHeight, memoCardCell)
	p.deps.Logger.Debug("memos unlocked")
}

// closeOverlay empties the slot and stops the outro if a detail was showing.
func (p *creatorPage) closeOverlay() {
	if _, ok := p.slot.RecordID(); ok {
		p.audio.Stop()
	}
	p.slot.Close()
}

func (p *creatorPage) detail() (content.Episode, bool) {
	id, ok := p.slot.RecordID()
	if !ok {
		return content.Episode{}, false
	}
	return p.deps.Store.Episode(id)
}

func (p *creatorPage) scratch(ev Event) Change {
	if p.mask == nil || p.mask.Revealed() {
		return None
	}
	switch ev.Type {
	case "scratch-start":
		p.mask.Begin()
		p.mask.Scratch(ev.X, ev.Y, scratch.DefaultBrush)
	case "scratch-end":
		p.mask.End()
	default:
		if p.mask.Scratch(ev.X, ev.Y, scratch.DefaultBrush) {
			p.deps.Logger.Debug("memo card revealed", zap.Float64("cleared", p.mask.Cleared()))
			return ChangeRender
		}
	}
	return None
}

func (p *creatorPage) Tick(time.Duration) Change {
	if p.pass.tick() {
		return ChangeRender
	}
	return None
}

func (p *creatorPage) Animating() bool { return p.pass.pending() }

func (p *creatorPage) tabs() []Tab {
	kind := p.sel.Kind()
	key, _ := p.sel.Key()
	tabs := []Tab{{Label: "ALL", Value: tabAll, Active: kind == view.KindAll}}
	for _, y := range p.years {
		tabs = append(tabs, Tab{
			Label:  strconv.Itoa(y),
			Value:  strconv.Itoa(y),
			Active: kind == view.KindByKey && key == y,
		})
	}
	tabs = append(tabs, Tab{
		Label:  "MEMOS",
		Value:  tabMemos,
		Active: kind == view.KindLocked,
		Locked: !p.pass.unlocked(),
	})
	return tabs
}

func (p *creatorPage) View() any {
	eps := view.Apply(p.sel, view.Source[content.Episode, int]{
		Records: p.episodes,
		DateOf:  content.Episode.Published,
		KeyOf:   content.Episode.ArchiveYear,
		RankOf:  content.Episode.Rank,
	})
	_, promptOpen := p.slot.PromptName()
	v := CreatorView{
		Tabs:     p.tabs(),
		Episodes: eps,
		Empty:    len(eps) == 0 && p.sel.Kind() != view.KindLocked,
		Prompt:   p.pass.view(promptOpen),
		Media:    p.audio.State(),
	}
	if ep, ok := p.detail(); ok {
		v.Detail = &ep
	}
	if p.sel.Kind() == view.KindLocked && p.memos != nil {
		v.Memos = p.memos
		v.Revealed = p.mask != nil && p.mask.Revealed()
	}
	return v
}

func (p *creatorPage) Frame() any { return nil }

func (p *creatorPage) Close() { p.audio.Close() }
