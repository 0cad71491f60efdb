// Package gate implements the passcode prompt in front of a locked section.
//
// The expected code ships with the page and can be read by anyone who looks.
// A gate hides content from casual navigation; it is not access control.
package gate

import "time"

// Result is the outcome of one unlock attempt.
type Result struct {
	Granted bool
}

// Gate holds the unlock state for one page instance. Once granted it stays
// unlocked for the rest of the page's lifetime. A Gate is not safe for
// concurrent use; it lives on its page's event loop.
type Gate struct {
	code     string
	display  time.Duration
	now      func() time.Time
	unlocked bool
	failedAt time.Time
	input    string
}

// New returns a locked gate expecting code. A failed attempt keeps its error
// visible for display. A nil now uses time.Now.
func New(code string, display time.Duration, now func() time.Time) *Gate {
	if now == nil {
		now = time.Now
	}
	return &Gate{code: code, display: display, now: now}
}

// AttemptUnlock compares code with the expected value. On mismatch the input
// is cleared and the failure flag is raised.
func (g *Gate) AttemptUnlock(code string) Result {
	if g.unlocked {
		return Result{Granted: true}
	}
	if code == g.code {
		g.unlocked = true
		g.failedAt = time.Time{}
		g.input = ""
		return Result{Granted: true}
	}
	g.failedAt = g.now()
	g.input = ""
	return Result{Granted: false}
}

// Submit tries the current input.
func (g *Gate) Submit() Result {
	return g.AttemptUnlock(g.input)
}

func (g *Gate) Unlocked() bool {
	return g.unlocked
}

// Failed reports whether the last mismatch is still within its display
// window.
func (g *Gate) Failed() bool {
	if g.failedAt.IsZero() {
		return false
	}
	if g.now().Sub(g.failedAt) >= g.display {
		g.failedAt = time.Time{}
		return false
	}
	return true
}

// FailureExpiresIn is how long the failure flag stays raised, or zero.
func (g *Gate) FailureExpiresIn() time.Duration {
	if !g.Failed() {
		return 0
	}
	return g.display - g.now().Sub(g.failedAt)
}

// SetInput records typed text. Typing clears a pending failure.
func (g *Gate) SetInput(s string) {
	g.input = s
	g.failedAt = time.Time{}
}

// Retype clears the input and any pending failure, as when the prompt is
// reopened.
func (g *Gate) Retype() {
	g.input = ""
	g.failedAt = time.Time{}
}

func (g *Gate) Input() string {
	return g.input
}
