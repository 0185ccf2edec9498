package carousel

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats/scalar"

	"holomat/internal/logging"
)

// InputState is the gesture state of the dispatcher.
type InputState int

const (
	StateIdle InputState = iota
	StateDragging
	StateReleasing // coasting or snapping after a drag
)

func (s InputState) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateReleasing:
		return "releasing"
	default:
		return "idle"
	}
}

// DragSession tracks one pointer gesture from down to up.
type DragSession struct {
	StartX   float64
	LastX    float64
	LastMove time.Time
	Velocity float64 // smoothed, in px/ms × VelocityGain
	HasMoved bool
}

// Drag returns the gesture in progress.
func (c *Carousel) Drag() (DragSession, bool) {
	if c.drag == nil {
		return DragSession{}, false
	}
	return *c.drag, true
}

// PointerDown starts a drag at x. Any running animation stops without
// completing.
func (c *Carousel) PointerDown(x float64, now time.Time) {
	if len(c.items) == 0 {
		return
	}
	c.stopAnimation()
	c.state = StateDragging
	c.drag = &DragSession{StartX: x, LastX: x, LastMove: now}
}

// PointerMove rotates the carousel by the horizontal travel since the last
// move and updates the smoothed velocity.
func (c *Carousel) PointerMove(x float64, now time.Time) {
	d := c.drag
	if c.state != StateDragging || d == nil {
		return
	}
	delta := x - d.LastX
	dt := float64(now.Sub(d.LastMove)) / float64(time.Millisecond)
	if dt <= 0 {
		dt = 1
	}
	sample := delta / dt * c.cfg.VelocityGain
	d.Velocity = sample*c.cfg.VelocitySmoothing + d.Velocity*(1-c.cfg.VelocitySmoothing)
	d.LastX = x
	d.LastMove = now

	if delta == 0 {
		return
	}
	d.HasMoved = true
	c.rotation.Set(c.rotation.Get() + delta*c.cfg.Sensitivity)
	c.followRotation()
}

// PointerUp ends the gesture. A tap activates the active item; a drag coasts
// or snaps to the nearest segment.
func (c *Carousel) PointerUp(now time.Time) {
	c.release(-1, true, now)
}

// PointerUpOn ends the gesture over the item at index. A tap on a visible
// neighbor selects it instead of activating the active item.
func (c *Carousel) PointerUpOn(index int, now time.Time) {
	c.release(index, true, now)
}

// PointerCancel ends the gesture without activating anything.
func (c *Carousel) PointerCancel(now time.Time) {
	c.release(-1, false, now)
}

func (c *Carousel) release(hit int, activate bool, now time.Time) {
	d := c.drag
	if c.state != StateDragging || d == nil {
		return
	}
	c.drag = nil
	c.state = StateReleasing
	log := logging.Logger()

	if !d.HasMoved {
		if activate && hit >= 0 && hit < len(c.items) && hit != c.active && c.Transform(hit).Interactive {
			c.state = StateIdle
			c.Select(hit, now)
			return
		}
		if activate {
			if c.lastClick.IsZero() || now.Sub(c.lastClick) >= c.cfg.ClickDebounce {
				c.lastClick = now
				c.activate(c.items[c.active])
			} else {
				log.Debug("Carousel: tap debounced", "since", now.Sub(c.lastClick))
			}
		}
		c.snap(now)
		return
	}

	if math.Abs(d.Velocity) > c.cfg.FlickThreshold {
		c.coast(d.Velocity, now)
		return
	}
	c.snap(now)
}

// coast runs the inertial decay for a flick and snaps when it settles.
func (c *Carousel) coast(velocity float64, now time.Time) {
	power := c.cfg.Decay.Power
	if power <= 0 {
		power = 1
	}
	travel := velocity * c.cfg.InertiaDistance
	logging.Logger().Debug("Carousel: flick", "velocity", velocity, "travel", travel)

	c.transitioning = false
	c.state = StateReleasing
	c.rotation.AnimateTo(c.rotation.Get()+travel, DecayParams{
		Velocity:     travel / power,
		Power:        power,
		TimeConstant: c.cfg.Decay.TimeConstant,
		RestDelta:    c.cfg.Decay.RestDelta,
	}, now, c.snap)
}

// snap springs to the nearest segment boundary, or finishes immediately when
// the rotation already sits on one.
func (c *Carousel) snap(now time.Time) {
	n := len(c.items)
	if n == 0 {
		c.state = StateIdle
		return
	}
	current := c.rotation.Get()
	target := SnapToNearest(current, n)
	if scalar.EqualWithinAbs(current, target, 1e-9) {
		c.rotation.Set(target)
		c.state = StateIdle
		c.followRotation()
		return
	}
	c.state = StateReleasing
	c.springTo(target, c.cfg.Spring.SpringParams(n), now, func(time.Time) {
		c.state = StateIdle
	})
}

// Wheel moves one index per throttle interval: deltaY > 0 steps forward,
// deltaY < 0 back. Wheel steps never activate.
func (c *Carousel) Wheel(deltaY float64, now time.Time) {
	n := len(c.items)
	if n == 0 || deltaY == 0 || math.IsNaN(deltaY) || c.state == StateDragging {
		return
	}
	if !c.lastWheel.IsZero() && now.Sub(c.lastWheel) < c.cfg.WheelThrottle {
		return
	}
	c.lastWheel = now

	step := 1
	if deltaY < 0 {
		step = -1
	}
	next := mod(c.active+step, n)
	c.state = StateIdle
	c.springTo(IndexToRotation(next, c.rotation.Get(), n), c.cfg.Spring.SpringParams(n), now, nil)
}

// Select springs to index and activates that item once the spring settles.
// The activation is dropped when the item disappears in the meantime.
func (c *Carousel) Select(index int, now time.Time) {
	n := len(c.items)
	if index < 0 || index >= n || c.state == StateDragging {
		return
	}
	id := c.items[index].ID
	c.lastClick = now
	c.state = StateIdle
	logging.Logger().Debug("Carousel: select", "index", index, "id", id)

	c.springTo(IndexToRotation(index, c.rotation.Get(), n), c.cfg.Spring.SelectParams(n), now, func(time.Time) {
		i := indexByID(c.items, id, index)
		if i < 0 {
			logging.Logger().Debug("Carousel: stale selection dropped", "id", id)
			return
		}
		c.activate(c.items[i])
	})
}

// indexByID finds id, preferring the originally selected position.
// Items without an ID are matched by position alone.
func indexByID(items []Item, id string, hint int) int {
	if hint >= 0 && hint < len(items) && items[hint].ID == id {
		return hint
	}
	if id == "" {
		return -1
	}
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
