package layout

import (
	"math"
	"time"
)

// LadderConfig drives the climber on the side-project scene. X values are
// scene percentages, heights are Unit per score point.
type LadderConfig struct {
	Unit         float64
	RestX        float64
	MinX         float64
	MaxX         float64
	StiffnessX   float64
	StiffnessY   float64
	Damping      float64
	RunIdleAfter time.Duration
}

// ClimbHeight is the marker offset for score above the baseline.
func ClimbHeight(score int, unit float64) float64 {
	return float64(score) * unit
}

// State is what the climber sprite is doing.
type State string

const (
	StateIdle  State = "idle"
	StateRun   State = "run"
	StateClimb State = "climb"
)

const (
	substep    = time.Second / 240
	settleDist = 0.01
	settleVel  = 0.01
)

// Pointer eases the climber towards its target with a damped spring on
// each axis.
type Pointer struct {
	cfg    LadderConfig
	x, y   float64
	vx, vy float64
	tx, ty float64
	state  State
	target string
	idleIn time.Duration
}

func NewPointer(cfg LadderConfig) *Pointer {
	return &Pointer{cfg: cfg, x: cfg.RestX, tx: cfg.RestX, state: StateIdle}
}

func (p *Pointer) clampX(x float64) float64 {
	return math.Min(math.Max(x, p.cfg.MinX), p.cfg.MaxX)
}

// Hover snaps the target to a ladder anchored at anchorX and climbs to the
// height of score.
func (p *Pointer) Hover(id string, anchorX float64, score int) {
	p.target = id
	p.tx = anchorX
	p.ty = ClimbHeight(score, p.cfg.Unit)
	p.state = StateClimb
	p.idleIn = 0
}

// Leave drops back to the ground where the pointer stands.
func (p *Pointer) Leave() {
	p.target = ""
	p.ty = 0
	p.state = StateIdle
	p.idleIn = 0
}

// MoveTo runs towards x. It is ignored while climbing.
func (p *Pointer) MoveTo(x float64) bool {
	if p.state == StateClimb {
		return false
	}
	p.tx = p.clampX(x)
	p.state = StateRun
	p.idleIn = p.cfg.RunIdleAfter
	return true
}

// Step integrates the springs over dt and reports whether the pointer is
// still moving.
func (p *Pointer) Step(dt time.Duration) bool {
	if p.state == StateRun {
		p.idleIn -= dt
		if p.idleIn <= 0 {
			p.state = StateIdle
			p.idleIn = 0
		}
	}
	for dt > 0 {
		h := substep
		if dt < h {
			h = dt
		}
		s := h.Seconds()
		p.x, p.vx = spring(p.x, p.vx, p.tx, p.cfg.StiffnessX, p.cfg.Damping, s)
		p.y, p.vy = spring(p.y, p.vy, p.ty, p.cfg.StiffnessY, p.cfg.Damping, s)
		dt -= h
	}
	if p.settledAxis(p.x, p.vx, p.tx) {
		p.x, p.vx = p.tx, 0
	}
	if p.settledAxis(p.y, p.vy, p.ty) {
		p.y, p.vy = p.ty, 0
	}
	return !p.Settled()
}

// semi-implicit Euler, unit mass
func spring(pos, vel, target, k, c, s float64) (float64, float64) {
	acc := -k*(pos-target) - c*vel
	vel += acc * s
	pos += vel * s
	return pos, vel
}

func (p *Pointer) settledAxis(pos, vel, target float64) bool {
	return math.Abs(pos-target) < settleDist && math.Abs(vel) < settleVel
}

// Settled reports whether both axes reached their targets and the sprite is
// not waiting to go idle.
func (p *Pointer) Settled() bool {
	return p.x == p.tx && p.y == p.ty && p.vx == 0 && p.vy == 0 && p.state != StateRun
}

func (p *Pointer) State() State { return p.state }

// Target is the id of the hovered ladder, if any.
func (p *Pointer) Target() string { return p.target }

func (p *Pointer) Position() (x, y float64) { return p.x, p.y }

func (p *Pointer) Goal() (x, y float64) { return p.tx, p.ty }
