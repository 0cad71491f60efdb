// Package layout holds the procedural placement used by the animated pages:
// the rotating orbit of production credits and the side-project climber.
package layout

import (
	"math"
	"sort"
	"time"
)

// OrbitConfig describes the ellipse items travel along. Coordinates are
// percentages of the scene. Speed is degrees per frame.
type OrbitConfig struct {
	CenterX float64
	CenterY float64
	RadiusX float64
	RadiusY float64
	Speed   float64
	Frame   time.Duration
}

// Position is where item Index sits on the orbit. Larger Z paints on top.
type Position struct {
	Index int     `json:"index"`
	Angle float64 `json:"angle"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     int     `json:"z"`
}

// Place computes item i of n at rotation theta (degrees).
func Place(i, n int, theta float64, cfg OrbitConfig) Position {
	var base float64
	if n > 0 {
		base = float64(i) / float64(n) * 360
	}
	angle := wrap(base + theta)
	rad := angle * math.Pi / 180
	x := cfg.CenterX + cfg.RadiusX*math.Cos(rad)
	y := cfg.CenterY + cfg.RadiusY*math.Sin(rad)
	return Position{
		Index: i,
		Angle: angle,
		X:     x,
		Y:     y,
		Z:     int(math.Floor(y * 10)),
	}
}

func wrap(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Reason names why the orbit is paused. The orbit runs only when no reason
// is held.
type Reason string

const (
	ReasonHover   Reason = "hover"
	ReasonDetail  Reason = "detail"
	ReasonProfile Reason = "profile"
)

// Orbit is the animation clock owned by one page.
type Orbit struct {
	cfg    OrbitConfig
	theta  float64
	paused map[Reason]struct{}
}

func NewOrbit(cfg OrbitConfig) *Orbit {
	return &Orbit{cfg: cfg, paused: make(map[Reason]struct{})}
}

// Tick advances the rotation by one frame's worth of Speed per Frame of dt
// and reports whether it moved.
func (o *Orbit) Tick(dt time.Duration) bool {
	if o.Paused() || dt <= 0 {
		return false
	}
	frames := 1.0
	if o.cfg.Frame > 0 {
		frames = float64(dt) / float64(o.cfg.Frame)
	}
	o.Advance(o.cfg.Speed * frames)
	return true
}

// Advance rotates by deg regardless of pauses.
func (o *Orbit) Advance(deg float64) {
	o.theta = wrap(o.theta + deg)
}

func (o *Orbit) Theta() float64 { return o.theta }

func (o *Orbit) Pause(r Reason) { o.paused[r] = struct{}{} }

func (o *Orbit) Resume(r Reason) { delete(o.paused, r) }

func (o *Orbit) Paused() bool { return len(o.paused) > 0 }

// Reset rewinds the rotation and drops every pause.
func (o *Orbit) Reset() {
	o.theta = 0
	clear(o.paused)
}

// Positions places n items at the current rotation, in paint order.
func (o *Orbit) Positions(n int) []Position {
	out := make([]Position, n)
	for i := range out {
		out[i] = Place(i, n, o.theta, o.cfg)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Z < out[b].Z })
	return out
}
