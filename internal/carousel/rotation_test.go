package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

const frame = 16 * time.Millisecond

// runRotation ticks r at 60 fps until it settles and returns the final time.
func runRotation(t *testing.T, r *RotationState, from time.Time) time.Time {
	t.Helper()
	now := from
	for i := 0; i < 1000; i++ {
		now = now.Add(frame)
		if !r.Tick(now) {
			return now
		}
	}
	require.FailNow(t, "rotation did not settle")
	return now
}

func TestSpringParamsScaleWithCount(t *testing.T) {
	cfg := DefaultConfig().Spring

	p := cfg.SpringParams(10)
	assert.Equal(t, 300.0, p.Stiffness)
	assert.Equal(t, 40.0, p.Damping)
	assert.Equal(t, 1.2, p.Mass)
	assert.Equal(t, 0.5, p.RestDelta)

	assert.Equal(t, 400.0, cfg.SpringParams(-20).Stiffness)
	assert.Equal(t, 30.0, cfg.SpringParams(-20).Damping)
	assert.Equal(t, 200.0, cfg.SpringParams(40).Stiffness)
	assert.Equal(t, 50.0, cfg.SpringParams(40).Damping)
	assert.Equal(t, 325.0, cfg.SpringParams(5).Stiffness)

	sel := cfg.SelectParams(8)
	assert.Equal(t, 360.0, sel.Stiffness)
	assert.Equal(t, 1.3, sel.Mass)
	assert.Equal(t, 450.0, cfg.SelectParams(-10).Stiffness)
	assert.Equal(t, 250.0, cfg.SelectParams(40).Stiffness)
}

func TestSpringSettlesExactlyOnTarget(t *testing.T) {
	var r RotationState
	calls := 0
	r.AnimateTo(-45, DefaultConfig().Spring.SpringParams(8), t0, func(time.Time) { calls++ })
	assert.Equal(t, ModeSpring, r.Mode())
	target, ok := r.Target()
	assert.True(t, ok)
	assert.Equal(t, -45.0, target)

	end := runRotation(t, &r, t0)
	assert.Equal(t, -45.0, r.Get())
	assert.Equal(t, 1, calls)
	assert.Equal(t, ModeIdle, r.Mode())
	assert.Less(t, end.Sub(t0), 2*time.Second)

	assert.False(t, r.Tick(end.Add(frame)))
	assert.Equal(t, 1, calls)
}

func TestSpringMovesMonotonicallyTowardTarget(t *testing.T) {
	var r RotationState
	r.AnimateTo(90, DefaultConfig().Spring.SpringParams(8), t0, nil)
	prev := r.Get()
	now := t0
	for r.Animating() {
		now = now.Add(frame)
		r.Tick(now)
		assert.GreaterOrEqual(t, r.Get(), prev)
		assert.LessOrEqual(t, r.Get(), 90.0)
		prev = r.Get()
	}
	assert.Equal(t, 90.0, r.Get())
}

func TestAnimateToSupersedesWithoutCompletion(t *testing.T) {
	var r RotationState
	first, second := 0, 0
	params := DefaultConfig().Spring.SpringParams(8)

	r.AnimateTo(90, params, t0, func(time.Time) { first++ })
	r.Tick(t0.Add(frame))
	r.AnimateTo(-90, params, t0.Add(frame), func(time.Time) { second++ })
	runRotation(t, &r, t0.Add(frame))

	assert.Zero(t, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, -90.0, r.Get())
}

func TestStopDropsCompletion(t *testing.T) {
	var r RotationState
	calls := 0
	r.AnimateTo(90, DefaultConfig().Spring.SpringParams(8), t0, func(time.Time) { calls++ })
	r.Tick(t0.Add(frame))
	r.Stop()

	assert.False(t, r.Animating())
	assert.False(t, r.Tick(t0.Add(time.Second)))
	assert.Zero(t, calls)
	assert.Greater(t, r.Get(), 0.0)
	assert.Less(t, r.Get(), 90.0)
}

func TestCompletionMayStartNextAnimation(t *testing.T) {
	var r RotationState
	params := DefaultConfig().Spring.SpringParams(8)
	done := 0
	r.AnimateTo(45, params, t0, func(now time.Time) {
		r.AnimateTo(0, params, now, func(time.Time) { done++ })
	})
	runRotation(t, &r, t0)
	assert.Equal(t, 1, done)
	assert.Equal(t, 0.0, r.Get())
}

func TestDecayCoastsToPowerTimesVelocity(t *testing.T) {
	var r RotationState
	r.Set(10)
	calls := 0
	r.AnimateTo(0, DecayParams{Velocity: 20, Power: 0.7, TimeConstant: 500 * time.Millisecond, RestDelta: 0.5}, t0,
		func(time.Time) { calls++ })

	assert.Equal(t, ModeDecay, r.Mode())
	target, _ := r.Target()
	assert.InDelta(t, 24, target, 1e-9)

	r.Tick(t0.Add(500 * time.Millisecond))
	assert.InDelta(t, 24-14*0.36787944, r.Get(), 1e-6)

	runRotation(t, &r, t0.Add(500*time.Millisecond))
	assert.InDelta(t, 24, r.Get(), 1e-9)
	assert.Equal(t, 1, calls)
}

func TestDecayWithoutVelocityUsesTarget(t *testing.T) {
	var r RotationState
	r.AnimateTo(30, DecayParams{Power: 0.7, RestDelta: 0.5}, t0, nil)
	runRotation(t, &r, t0)
	assert.InDelta(t, 30, r.Get(), 1e-9)
}

func TestAnimationIsCapped(t *testing.T) {
	var r RotationState
	soft := SpringParams{Stiffness: 0.01, Damping: 0.001, Mass: 10, RestDelta: 0.5, RestSpeed: 2}
	r.AnimateTo(180, soft, t0, nil)
	assert.False(t, r.Tick(t0.Add(maxAnimation)))
	assert.Equal(t, 180.0, r.Get())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "idle", ModeIdle.String())
	assert.Equal(t, "spring", ModeSpring.String())
	assert.Equal(t, "decay", ModeDecay.String())
}
