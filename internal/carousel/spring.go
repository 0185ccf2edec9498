package carousel

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// springStep is the fixed integration step. harmonica precomputes its
// coefficients for one delta time, so ticks are split into whole steps.
const springStep = time.Second / 120

// SpringParams describe a damped spring in mass-spring-damper terms.
type SpringParams struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	RestDelta float64 // distance to target considered at rest, degrees
	RestSpeed float64 // speed considered at rest, degrees per second
}

func (p SpringParams) start(from, velocity, to float64, now time.Time) animation {
	mass := p.Mass
	if mass <= 0 {
		mass = 1
	}
	stiffness := p.Stiffness
	if stiffness <= 0 {
		stiffness = 1
	}
	omega := math.Sqrt(stiffness / mass)
	zeta := p.Damping / (2 * math.Sqrt(stiffness*mass))

	return &springAnimation{
		spring:  harmonica.NewSpring(springStep.Seconds(), omega, zeta),
		params:  p,
		pos:     from,
		vel:     velocity,
		to:      to,
		started: now,
		last:    now,
	}
}

type springAnimation struct {
	spring harmonica.Spring
	params SpringParams

	pos, vel, to float64

	started time.Time
	last    time.Time
	pending time.Duration
}

func (a *springAnimation) mode() Mode        { return ModeSpring }
func (a *springAnimation) target() float64   { return a.to }
func (a *springAnimation) velocity() float64 { return a.vel }

func (a *springAnimation) step(now time.Time) (float64, bool) {
	if now.Sub(a.started) >= maxAnimation {
		return a.settle()
	}
	if elapsed := now.Sub(a.last); elapsed > 0 {
		a.pending += elapsed
	}
	a.last = now

	for a.pending >= springStep {
		a.pending -= springStep
		a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.to)
		if a.atRest() {
			return a.settle()
		}
	}
	if a.atRest() {
		return a.settle()
	}
	return a.pos, false
}

func (a *springAnimation) atRest() bool {
	return math.Abs(a.to-a.pos) <= a.params.RestDelta && math.Abs(a.vel) <= a.params.RestSpeed
}

func (a *springAnimation) settle() (float64, bool) {
	a.pos, a.vel = a.to, 0
	return a.to, true
}
