package layout

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var testOrbit = OrbitConfig{
	CenterX: 50,
	CenterY: 50,
	RadiusX: 35,
	RadiusY: 32,
	Speed:   0.03,
	Frame:   16 * time.Millisecond,
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestPlace_QuarterTurn(t *testing.T) {
	got := Place(0, 4, 0, testOrbit)
	want := Position{Index: 0, Angle: 0, X: 85, Y: 50, Z: 500}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Place(θ=0) mismatch (-want +got):\n%s", diff)
	}

	got = Place(0, 4, 90, testOrbit)
	want = Position{Index: 0, Angle: 90, X: 50, Y: 82, Z: 820}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Place(θ=90) mismatch (-want +got):\n%s", diff)
	}
}

func TestPlace_SpreadsEvenly(t *testing.T) {
	for i, want := range []float64{0, 90, 180, 270} {
		if got := Place(i, 4, 0, testOrbit).Angle; got != want {
			t.Errorf("Place(%d).Angle = %v, want %v", i, got, want)
		}
	}
	if got := Place(3, 4, 100, testOrbit).Angle; got != 10 {
		t.Errorf("angle should wrap modulo 360, got %v", got)
	}
}

func TestOrbit_TickScalesWithFrame(t *testing.T) {
	o := NewOrbit(testOrbit)
	if !o.Tick(160 * time.Millisecond) {
		t.Fatal("Tick() did not advance")
	}
	if diff := cmp.Diff(0.3, o.Theta(), approx); diff != "" {
		t.Errorf("Theta() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrbit_PauseReasons(t *testing.T) {
	o := NewOrbit(testOrbit)
	o.Pause(ReasonHover)
	o.Pause(ReasonDetail)
	if o.Tick(time.Second) {
		t.Error("paused orbit advanced")
	}
	o.Resume(ReasonHover)
	if !o.Paused() {
		t.Error("orbit resumed while detail still held")
	}
	o.Resume(ReasonDetail)
	if !o.Tick(16 * time.Millisecond) {
		t.Error("orbit did not resume after all reasons released")
	}
}

func TestOrbit_WrapAndReset(t *testing.T) {
	o := NewOrbit(testOrbit)
	o.Advance(350)
	o.Advance(20)
	if diff := cmp.Diff(10.0, o.Theta(), approx); diff != "" {
		t.Errorf("Theta() mismatch (-want +got):\n%s", diff)
	}
	o.Pause(ReasonProfile)
	o.Reset()
	if o.Theta() != 0 || o.Paused() {
		t.Errorf("Reset() left theta=%v paused=%v", o.Theta(), o.Paused())
	}
}

func TestOrbit_PositionsPaintOrder(t *testing.T) {
	o := NewOrbit(testOrbit)
	ps := o.Positions(4)
	for i := 1; i < len(ps); i++ {
		if ps[i-1].Z > ps[i].Z {
			t.Fatalf("Positions() not in paint order: %+v", ps)
		}
	}
	// bottom of the ellipse paints last
	if ps[len(ps)-1].Index != 1 {
		t.Errorf("last painted index = %d, want 1", ps[len(ps)-1].Index)
	}
}

var testLadder = LadderConfig{
	Unit:         7,
	RestX:        10,
	MinX:         2,
	MaxX:         98,
	StiffnessX:   120,
	StiffnessY:   80,
	Damping:      20,
	RunIdleAfter: 100 * time.Millisecond,
}

func TestClimbHeight(t *testing.T) {
	if got := ClimbHeight(7, 7); got != 49 {
		t.Errorf("ClimbHeight(7, 7) = %v, want 49", got)
	}
	if got := ClimbHeight(0, 7); got != 0 {
		t.Errorf("ClimbHeight(0, 7) = %v, want 0", got)
	}
}

func settle(p *Pointer) {
	for i := 0; i < 600 && p.Step(16*time.Millisecond); i++ {
	}
}

func TestPointer_HoverEasesToLadder(t *testing.T) {
	p := NewPointer(testLadder)
	p.Hover("l3", 62, 7)
	if p.State() != StateClimb {
		t.Errorf("State() = %v, want climb", p.State())
	}

	p.Step(16 * time.Millisecond)
	x, y := p.Position()
	if x == 62 || y == 49 {
		t.Errorf("pointer jumped to target in one frame: %v,%v", x, y)
	}
	if x <= 10 || y <= 0 {
		t.Errorf("pointer did not start moving: %v,%v", x, y)
	}

	settle(p)
	x, y = p.Position()
	if x != 62 || y != 49 {
		t.Errorf("Position() = %v,%v; want 62,49", x, y)
	}
	if !p.Settled() {
		t.Error("Settled() = false after convergence")
	}
}

func TestPointer_LeaveReturnsToGround(t *testing.T) {
	p := NewPointer(testLadder)
	p.Hover("l1", 15, 6)
	settle(p)
	p.Leave()
	settle(p)
	x, y := p.Position()
	if y != 0 || x != 15 {
		t.Errorf("Position() = %v,%v; want 15,0", x, y)
	}
	if p.State() != StateIdle || p.Target() != "" {
		t.Errorf("State() = %v target %q after Leave", p.State(), p.Target())
	}
}

func TestPointer_MoveTo(t *testing.T) {
	p := NewPointer(testLadder)
	if !p.MoveTo(150) {
		t.Fatal("MoveTo() ignored while idle")
	}
	if gx, _ := p.Goal(); gx != 98 {
		t.Errorf("goal x = %v, want clamp to 98", gx)
	}
	if p.State() != StateRun {
		t.Errorf("State() = %v, want run", p.State())
	}
	p.Step(50 * time.Millisecond)
	if p.State() != StateRun {
		t.Error("went idle before RunIdleAfter")
	}
	p.Step(50 * time.Millisecond)
	if p.State() != StateIdle {
		t.Errorf("State() = %v after RunIdleAfter, want idle", p.State())
	}

	p.Hover("l2", 38, 4)
	if p.MoveTo(70) {
		t.Error("MoveTo() accepted while climbing")
	}
	if gx, _ := p.Goal(); gx != 38 {
		t.Errorf("goal x = %v, want 38 while climbing", gx)
	}
}
