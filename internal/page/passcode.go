package page

import (
	"time"

	"github.com/ziadkadry99/portfolio/internal/gate"
)

// PromptView is the passcode prompt as rendered.
type PromptView struct {
	Open   bool
	Input  string
	Failed bool
}

// passcode wires the shared passcode events to a gate and notices when a
// failure message times out.
type passcode struct {
	gate    *gate.Gate
	showing bool
}

func newPasscode(s Settings, now func() time.Time) *passcode {
	return &passcode{gate: gate.New(s.Passcode, s.GateErrorDisplay, now)}
}

func isPasscodeEvent(ev Event) bool {
	return ev.Type == "passcode-input" || ev.Type == "passcode-submit"
}

// handle applies passcode events. ok is false for any other event type.
func (p *passcode) handle(ev Event) (ok, granted bool) {
	switch ev.Type {
	case "passcode-input":
		p.gate.SetInput(ev.Value)
		p.showing = false
		return true, false
	case "passcode-submit":
		if ev.Value != "" {
			p.gate.SetInput(ev.Value)
		}
		res := p.gate.Submit()
		p.showing = !res.Granted
		return true, res.Granted
	}
	return false, false
}

// reset clears input and error, as when the prompt is reopened.
func (p *passcode) reset() {
	p.gate.Retype()
	p.showing = false
}

// tick reports whether a displayed failure has just expired.
func (p *passcode) tick() bool {
	if p.showing && !p.gate.Failed() {
		p.showing = false
		return true
	}
	return false
}

func (p *passcode) pending() bool { return p.showing }

func (p *passcode) unlocked() bool { return p.gate.Unlocked() }

func (p *passcode) view(open bool) PromptView {
	return PromptView{Open: open, Input: p.gate.Input(), Failed: p.gate.Failed()}
}
