package carousel

import "time"

// maxAnimation bounds how long any animation may run before it jumps to its
// target and completes.
const maxAnimation = 4 * time.Second

// Mode identifies the animation currently driving a RotationState.
type Mode int

const (
	ModeIdle Mode = iota
	ModeSpring
	ModeDecay
)

func (m Mode) String() string {
	switch m {
	case ModeSpring:
		return "spring"
	case ModeDecay:
		return "decay"
	default:
		return "idle"
	}
}

// Params starts an animation. Implemented by SpringParams and DecayParams.
type Params interface {
	start(from, velocity, to float64, now time.Time) animation
}

type animation interface {
	mode() Mode
	target() float64
	velocity() float64
	// step advances to now and reports the new value and whether the
	// animation has come to rest.
	step(now time.Time) (float64, bool)
}

// RotationState is the carousel's single source of truth: an unbounded
// rotation in degrees plus at most one animation writing to it.
//
// Values are never wrapped into [0, 360) here; consumers normalize on read so
// animations can run smoothly across the seam.
type RotationState struct {
	degrees    float64
	anim       animation
	onComplete func(now time.Time)
}

// Get returns the current rotation.
func (r *RotationState) Get() float64 {
	return r.degrees
}

// Set writes the rotation directly. A running animation keeps running and
// will overwrite the value on its next tick; call Stop first when taking
// over manually.
func (r *RotationState) Set(v float64) {
	r.degrees = v
}

// AnimateTo starts an animation toward target, superseding any animation in
// flight. The superseded animation's completion callback is dropped. A
// spring started over a running animation inherits its velocity.
func (r *RotationState) AnimateTo(target float64, p Params, now time.Time, onComplete func(now time.Time)) {
	var velocity float64
	if r.anim != nil {
		velocity = r.anim.velocity()
	}
	r.anim = p.start(r.degrees, velocity, target, now)
	r.onComplete = onComplete
}

// Stop halts the running animation without invoking its completion callback.
func (r *RotationState) Stop() {
	r.anim = nil
	r.onComplete = nil
}

// Tick advances the running animation to now. It returns true while an
// animation is still in flight afterwards, including one started by the
// completion callback.
func (r *RotationState) Tick(now time.Time) bool {
	if r.anim == nil {
		return false
	}
	value, done := r.anim.step(now)
	r.degrees = value
	if !done {
		return true
	}

	// Detach before calling back so the callback may start a new animation
	// and can never fire twice.
	cb := r.onComplete
	r.anim, r.onComplete = nil, nil
	if cb != nil {
		cb(now)
	}
	return r.anim != nil
}

// Animating reports whether an animation is in flight.
func (r *RotationState) Animating() bool {
	return r.anim != nil
}

// Mode reports the kind of animation in flight.
func (r *RotationState) Mode() Mode {
	if r.anim == nil {
		return ModeIdle
	}
	return r.anim.mode()
}

// Target returns the resting value of the animation in flight.
func (r *RotationState) Target() (float64, bool) {
	if r.anim == nil {
		return r.degrees, false
	}
	return r.anim.target(), true
}
