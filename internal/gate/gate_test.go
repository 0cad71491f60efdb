package gate

import (
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGate() (*Gate, *clock) {
	c := &clock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	return New("4242", 2*time.Second, c.now), c
}

func TestAttemptUnlock_WrongThenRight(t *testing.T) {
	g, _ := newTestGate()

	if res := g.AttemptUnlock("0000"); res.Granted {
		t.Fatal("AttemptUnlock(0000) granted")
	}
	if g.Unlocked() {
		t.Error("gate unlocked after mismatch")
	}
	if !g.Failed() {
		t.Error("Failed() = false after mismatch")
	}

	if res := g.AttemptUnlock("4242"); !res.Granted {
		t.Fatal("AttemptUnlock(4242) not granted")
	}
	if !g.Unlocked() {
		t.Error("gate still locked after match")
	}
	if g.Failed() {
		t.Error("Failed() stays raised after a match")
	}
}

func TestFailed_ClearsAfterDisplayWindow(t *testing.T) {
	g, c := newTestGate()
	g.AttemptUnlock("1")

	c.advance(1999 * time.Millisecond)
	if !g.Failed() {
		t.Error("Failed() cleared before the window elapsed")
	}
	if got := g.FailureExpiresIn(); got != time.Millisecond {
		t.Errorf("FailureExpiresIn() = %v, want 1ms", got)
	}
	c.advance(time.Millisecond)
	if g.Failed() {
		t.Error("Failed() still raised after the window")
	}
}

func TestSetInput_ClearsFailure(t *testing.T) {
	g, _ := newTestGate()
	g.SetInput("12")
	g.Submit()
	if g.Input() != "" {
		t.Errorf("Input() = %q after mismatch, want cleared", g.Input())
	}
	if !g.Failed() {
		t.Fatal("Failed() = false after mismatch")
	}
	g.SetInput("4")
	if g.Failed() {
		t.Error("typing should clear the failure")
	}
}

func TestRetype(t *testing.T) {
	g, _ := newTestGate()
	g.SetInput("99")
	g.AttemptUnlock("99")
	g.SetInput("42")
	g.Retype()
	if g.Input() != "" || g.Failed() {
		t.Errorf("Retype() left input %q failed=%v", g.Input(), g.Failed())
	}
}

func TestUnlocked_IsTerminal(t *testing.T) {
	g, _ := newTestGate()
	g.AttemptUnlock("4242")
	if res := g.AttemptUnlock("nope"); !res.Granted {
		t.Error("an unlocked gate should keep granting")
	}
	if g.Failed() {
		t.Error("an unlocked gate should not show failures")
	}
}

func TestNew_DefaultClock(t *testing.T) {
	g := New("x", time.Second, nil)
	g.AttemptUnlock("y")
	if !g.Failed() {
		t.Error("Failed() = false with the default clock")
	}
}
