package carousel

import (
	"math"
	"time"
)

// DecayParams describe an exponential coast. The travel is Power * Velocity;
// when Velocity is zero the travel is taken from the requested target.
type DecayParams struct {
	Velocity     float64 // degrees per velocity unit, already scaled by the caller
	Power        float64
	TimeConstant time.Duration
	RestDelta    float64
}

func (p DecayParams) start(from, _, to float64, now time.Time) animation {
	amplitude := p.Power * p.Velocity
	if p.Velocity == 0 {
		amplitude = to - from
	}
	tau := p.TimeConstant
	if tau <= 0 {
		tau = 500 * time.Millisecond
	}
	return &decayAnimation{
		amplitude: amplitude,
		to:        from + amplitude,
		tau:       tau,
		restDelta: p.RestDelta,
		started:   now,
	}
}

type decayAnimation struct {
	amplitude float64
	to        float64
	tau       time.Duration
	restDelta float64
	started   time.Time

	remaining float64
}

func (a *decayAnimation) mode() Mode      { return ModeDecay }
func (a *decayAnimation) target() float64 { return a.to }

func (a *decayAnimation) velocity() float64 {
	return a.remaining / a.tau.Seconds()
}

func (a *decayAnimation) step(now time.Time) (float64, bool) {
	t := now.Sub(a.started)
	if t < 0 {
		t = 0
	}
	a.remaining = a.amplitude * math.Exp(-t.Seconds()/a.tau.Seconds())
	if math.Abs(a.remaining) <= a.restDelta || t >= maxAnimation {
		a.remaining = 0
		return a.to, true
	}
	return a.to - a.remaining, false
}
