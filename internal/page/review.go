package page

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/portfolio/internal/content"
	"github.com/ziadkadry99/portfolio/internal/overlay"
)

// Desktop windows of the year review.
const (
	WindowExecution   = "execution"
	WindowMindset     = "mindset"
	WindowDiagnostics = "diagnostics"
	WindowStrategy    = "strategy"
)

var windows = map[string]bool{
	WindowExecution:   true,
	WindowMindset:     true,
	WindowDiagnostics: true,
	WindowStrategy:    true,
}

// PatchState is the progress of patching the selected issue.
type PatchState string

const (
	PatchIdle     PatchState = "idle"
	PatchPatching PatchState = "patching"
	PatchComplete PatchState = "complete"
)

// IssueView is a diagnosed loop with its patch status.
type IssueView struct {
	content.Issue
	Patched bool
}

// ReviewView is the year review. Everything but the prompt is empty until
// the passcode is accepted.
type ReviewView struct {
	Unlocked     bool
	Prompt       PromptView
	Window       string
	Principle    string
	Modules      []content.Module
	Module       *content.Module
	Keywords     []content.Keyword
	Keyword      *content.Keyword
	Issues       []IssueView
	Issue        *content.Issue
	CostRevealed bool
	Patch        PatchState
	AllPatched   bool
	Strategies   []content.Strategy
	Strategy     *content.Strategy
}

type reviewPage struct {
	deps   Deps
	review content.Review
	pass   *passcode
	window overlay.Slot
	modal  overlay.Slot

	module       string
	keyword      string
	issue        string
	costRevealed bool
	patch        PatchState
	patched      map[string]bool
	pending      map[string]time.Time
}

func newReview(d Deps) *reviewPage {
	p := &reviewPage{
		deps:    d,
		review:  d.Store.Review(),
		pass:    newPasscode(d.Settings, d.Now),
		patch:   PatchIdle,
		patched: make(map[string]bool),
		pending: make(map[string]time.Time),
	}
	p.resetWindow()
	return p
}

func (p *reviewPage) Name() string { return Review }

func (p *reviewPage) resetWindow() {
	p.module = ""
	if len(p.review.Modules) > 0 {
		p.module = p.review.Modules[0].ID
	}
	p.keyword = ""
	p.issue = ""
	p.costRevealed = false
	p.patch = PatchIdle
}

func (p *reviewPage) Handle(_ context.Context, ev Event) (Change, error) {
	if !p.pass.unlocked() {
		if ok, granted := p.pass.handle(ev); ok {
			if granted {
				p.deps.Logger.Debug("review unlocked")
			}
			return ChangeRender, nil
		}
		return None, nil
	}

	switch ev.Type {
	case "window":
		if !windows[ev.Target] {
			return None, unknownRecord("window", ev.Target)
		}
		p.modal.Close()
		p.window.Open(ev.Target)
		p.resetWindow()
	case "close":
		p.close()
	case "click":
		if ev.Value != "outside" {
			return None, nil
		}
		if p.modal.IsOpen() {
			p.modal.Click(overlay.Outside)
		} else if p.window.Click(overlay.Outside) {
			p.resetWindow()
		} else {
			return None, nil
		}
	case "module":
		if findByID(p.review.Modules, ev.Value, func(m content.Module) string { return m.ID }) < 0 {
			return None, unknownRecord("module", ev.Value)
		}
		p.module = ev.Value
	case "keyword":
		if findByID(p.review.Keywords, ev.Target, func(k content.Keyword) string { return k.ID }) < 0 {
			return None, unknownRecord("keyword", ev.Target)
		}
		p.keyword = ev.Target
	case "keyword-close":
		p.keyword = ""
	case "issue":
		if findByID(p.review.Issues, ev.Target, func(i content.Issue) string { return i.ID }) < 0 {
			return None, unknownRecord("issue", ev.Target)
		}
		p.issue = ev.Target
		p.costRevealed = false
		p.patch = PatchIdle
	case "issue-close":
		p.issue = ""
		p.costRevealed = false
		p.patch = PatchIdle
	case "reveal-cost":
		if p.issue == "" {
			return None, nil
		}
		p.costRevealed = true
	case "patch":
		if p.issue == "" || p.patch != PatchIdle || p.patched[p.issue] {
			return None, nil
		}
		p.patch = PatchPatching
		p.pending[p.issue] = p.deps.Now().Add(p.deps.Settings.PatchDuration)
	case "strategy":
		if findByID(p.review.Strategies, ev.Target, func(s content.Strategy) string { return s.ID }) < 0 {
			return None, unknownRecord("strategy", ev.Target)
		}
		// The strategy modal only exists inside the strategy window.
		if w, _ := p.window.RecordID(); w != WindowStrategy {
			return None, nil
		}
		p.modal.Open(ev.Target)
	default:
		return None, unknownEvent(ev)
	}
	return ChangeRender, nil
}

// close dismisses the innermost open layer.
func (p *reviewPage) close() {
	if p.modal.IsOpen() {
		p.modal.Close()
		return
	}
	p.window.Close()
	p.resetWindow()
}

func (p *reviewPage) Tick(time.Duration) Change {
	changed := p.pass.tick()
	now := p.deps.Now()
	for id, done := range p.pending {
		if now.Before(done) {
			continue
		}
		delete(p.pending, id)
		p.patched[id] = true
		if p.issue == id && p.patch == PatchPatching {
			p.patch = PatchComplete
		}
		p.deps.Logger.Debug("issue patched", zap.String("issue", id))
		changed = true
	}
	if changed {
		return ChangeRender
	}
	return None
}

func (p *reviewPage) Animating() bool {
	return p.pass.pending() || len(p.pending) > 0
}

// AllPatched reports whether every diagnosed issue has been patched.
func (p *reviewPage) AllPatched() bool {
	if len(p.review.Issues) == 0 {
		return false
	}
	for _, i := range p.review.Issues {
		if !p.patched[i.ID] {
			return false
		}
	}
	return true
}

func (p *reviewPage) View() any {
	v := ReviewView{Unlocked: p.pass.unlocked(), Prompt: p.pass.view(!p.pass.unlocked())}
	if !v.Unlocked {
		return v
	}
	r := p.review
	v.Window, _ = p.window.RecordID()
	v.Principle = r.Principle
	v.Modules = r.Modules
	v.Keywords = r.Keywords
	v.Strategies = r.Strategies
	v.CostRevealed = p.costRevealed
	v.Patch = p.patch
	v.AllPatched = p.AllPatched()

	if i := findByID(r.Modules, p.module, func(m content.Module) string { return m.ID }); i >= 0 {
		v.Module = &r.Modules[i]
	}
	if i := findByID(r.Keywords, p.keyword, func(k content.Keyword) string { return k.ID }); i >= 0 {
		v.Keyword = &r.Keywords[i]
	}
	for _, is := range r.Issues {
		v.Issues = append(v.Issues, IssueView{Issue: is, Patched: p.patched[is.ID]})
	}
	if i := findByID(r.Issues, p.issue, func(is content.Issue) string { return is.ID }); i >= 0 {
		v.Issue = &r.Issues[i]
	}
	if id, ok := p.modal.RecordID(); ok {
		if i := findByID(r.Strategies, id, func(s content.Strategy) string { return s.ID }); i >= 0 {
			v.Strategy = &r.Strategies[i]
		}
	}
	return v
}

func (p *reviewPage) Frame() any { return nil }

func (p *reviewPage) Close() {}

func findByID[T any](in []T, id string, idOf func(T) string) int {
	if id == "" {
		return -1
	}
	for i, v := range in {
		if idOf(v) == id {
			return i
		}
	}
	return -1
}
