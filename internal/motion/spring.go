// Package motion models the page's scroll-driven animation: the one-shot
// section reveal, the viewport observer that triggers it, and the damped
// spring behind the header's scroll-progress bar. The browser runtime in
// internal/assets implements the same equations; the constants rendered into
// the page come from here.
package motion

import (
	"math"
	"time"
)

// SpringConfig holds the physical constants of a damped spring.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	// The spring snaps to its target once both the distance and the speed
	// drop below these thresholds.
	RestDelta float64
	RestSpeed float64
}

// HeaderSpring drives the scroll-progress bar. Damping ratio is about 1.44,
// so the bar never overshoots the scroll position.
var HeaderSpring = SpringConfig{
	Stiffness: 120,
	Damping:   20,
	Mass:      0.4,
	RestDelta: 0.0005,
	RestSpeed: 0.005,
}

// DampingRatio is ζ = c / (2·√(k·m)).
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// Spring follows a target value. Each Step integrates the spring equation
// exactly over the elapsed time, so the trajectory does not depend on the
// frame rate.
type Spring struct {
	cfg    SpringConfig
	pos    float64
	vel    float64
	target float64
}

func NewSpring(cfg SpringConfig, initial float64) *Spring {
	return &Spring{cfg: cfg, pos: initial, target: initial}
}

func (s *Spring) SetTarget(target float64) { s.target = target }
func (s *Spring) Value() float64           { return s.pos }

func (s *Spring) AtRest() bool {
	return s.pos == s.target && s.vel == 0
}

// Step advances the spring by dt and returns the new position.
func (s *Spring) Step(dt time.Duration) float64 {
	if dt <= 0 || s.AtRest() {
		return s.pos
	}
	e, v := solve(s.cfg, s.pos-s.target, s.vel, dt.Seconds())
	s.pos, s.vel = s.target+e, v
	if math.Abs(e) < s.cfg.RestDelta && math.Abs(v) < s.cfg.RestSpeed {
		s.pos, s.vel = s.target, 0
	}
	return s.pos
}

// solve returns displacement and velocity after t seconds for a spring
// released at displacement e0 with velocity v0.
func solve(c SpringConfig, e0, v0, t float64) (float64, float64) {
	w0 := math.Sqrt(c.Stiffness / c.Mass)
	zeta := c.DampingRatio()

	switch {
	case zeta > 1+1e-9:
		// Over-damped: two real roots r1 > r2.
		root := w0 * math.Sqrt(zeta*zeta-1)
		r1 := -zeta*w0 + root
		r2 := -zeta*w0 - root
		a := (v0 - r2*e0) / (r1 - r2)
		b := e0 - a
		x1, x2 := math.Exp(r1*t), math.Exp(r2*t)
		return a*x1 + b*x2, r1*a*x1 + r2*b*x2
	case zeta < 1-1e-9:
		wd := w0 * math.Sqrt(1-zeta*zeta)
		decay := math.Exp(-zeta * w0 * t)
		sin, cos := math.Sincos(wd * t)
		e := decay * (e0*cos + (v0+zeta*w0*e0)/wd*sin)
		v := decay * (v0*cos - (zeta*w0*v0+w0*w0*e0)/wd*sin)
		return e, v
	default:
		decay := math.Exp(-w0 * t)
		c2 := v0 + w0*e0
		return (e0 + c2*t) * decay, (v0 - w0*c2*t) * decay
	}
}
