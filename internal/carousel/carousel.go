// Package carousel implements the app carousel engine: an unbounded rotation
// driven by drag, wheel and inertia input, projected onto a discrete active
// index and placed on a virtual 3D circle.
//
// The engine is not safe for concurrent use. All input and Tick calls are
// expected from a single (UI) goroutine, with the current time passed in.
package carousel

import (
	"math"
	"slices"
	"time"

	"holomat/internal/logging"
)

// Item is one launchable entry. Insertion order defines its angular position.
type Item struct {
	ID          string
	DisplayName string
	IconRef     string
	OnActivate  func()
}

// Carousel owns the rotation state and derives the active index, the visible
// set and per-item transforms from it.
type Carousel struct {
	cfg   Config
	items []Item

	rotation      RotationState
	active        int
	visible       VisibleSet
	transitioning bool

	state     InputState
	drag      *DragSession
	lastClick time.Time
	lastWheel time.Time

	onActiveChanged func(index int)
	onActivated     func(item Item)
}

// New creates a carousel showing items with index 0 in front.
func New(items []Item, cfg Config) *Carousel {
	c := &Carousel{
		cfg:   cfg,
		items: slices.Clone(items),
	}
	c.visible = c.computeVisible()
	return c
}

// OnActiveIndexChanged registers the callback fired whenever the active index
// changes.
func (c *Carousel) OnActiveIndexChanged(fn func(index int)) {
	c.onActiveChanged = fn
}

// OnItemActivated registers the callback fired when an item is launched.
func (c *Carousel) OnItemActivated(fn func(item Item)) {
	c.onActivated = fn
}

// Config returns the tuning the carousel was built with.
func (c *Carousel) Config() Config { return c.cfg }

func (c *Carousel) Len() int { return len(c.items) }

// Items returns a copy of the current items.
func (c *Carousel) Items() []Item { return slices.Clone(c.items) }

// Item returns the item at index.
func (c *Carousel) Item(index int) (Item, bool) {
	if index < 0 || index >= len(c.items) {
		return Item{}, false
	}
	return c.items[index], true
}

// ActiveIndex returns the focused index, 0 for an empty carousel.
func (c *Carousel) ActiveIndex() int { return c.active }

// ActiveItem returns the focused item.
func (c *Carousel) ActiveItem() (Item, bool) { return c.Item(c.active) }

// Rotation returns the unbounded rotation in degrees.
func (c *Carousel) Rotation() float64 { return c.rotation.Get() }

// Visible returns a copy of the visible set, active index first.
func (c *Carousel) Visible() VisibleSet { return slices.Clone(c.visible) }

// State returns the input state.
func (c *Carousel) State() InputState { return c.state }

// Transitioning reports whether a spring selection is in flight.
func (c *Carousel) Transitioning() bool { return c.transitioning }

// Animating reports whether any animation is in flight.
func (c *Carousel) Animating() bool { return c.rotation.Animating() }

// AnimationMode reports the kind of animation in flight.
func (c *Carousel) AnimationMode() Mode { return c.rotation.Mode() }

// AnimationTarget returns where the running animation will come to rest.
func (c *Carousel) AnimationTarget() (float64, bool) { return c.rotation.Target() }

// SetWindowed switches between windowed and show-all placement.
func (c *Carousel) SetWindowed(windowed bool) {
	if c.cfg.Windowed == windowed {
		return
	}
	c.cfg.Windowed = windowed
	c.visible = c.computeVisible()
}

// SetItems replaces the item list. The previously active item stays in front
// when it is still present; otherwise the active index is clamped into the
// new range. Any animation is cancelled without completion.
func (c *Carousel) SetItems(items []Item) {
	var prevID string
	if prev, ok := c.ActiveItem(); ok {
		prevID = prev.ID
	}
	prevActive := c.active

	c.rotation.Stop()
	c.transitioning = false
	c.drag = nil
	c.state = StateIdle
	c.items = slices.Clone(items)

	n := len(c.items)
	if n == 0 {
		c.active = 0
		c.visible = nil
		c.rotation.Set(0)
		return
	}

	index := c.indexOf(prevID)
	if index < 0 {
		index = min(prevActive, n-1)
	}
	c.rotation.Set(IndexToRotation(index, c.rotation.Get(), n))
	c.active = index
	c.visible = c.computeVisible()
	logging.Logger().Debug("Carousel: items replaced", "count", n, "active", index)
	if index != prevActive && c.onActiveChanged != nil {
		c.onActiveChanged(index)
	}
}

// Tick advances the running animation to now. It returns true while the
// carousel still needs frames.
func (c *Carousel) Tick(now time.Time) bool {
	if len(c.items) == 0 {
		return false
	}
	running := c.rotation.Tick(now)
	c.followRotation()
	return running
}

// Reset stops any animation and gesture without firing completions.
func (c *Carousel) Reset() {
	c.stopAnimation()
	c.drag = nil
	c.state = StateIdle
}

// Launch activates the item at index without rotating to it, as used by the
// tray and keyboard. It shares the tap debounce and reports whether the item
// was activated.
func (c *Carousel) Launch(index int, now time.Time) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	if !c.lastClick.IsZero() && now.Sub(c.lastClick) < c.cfg.ClickDebounce {
		logging.Logger().Debug("Carousel: launch debounced", "index", index)
		return false
	}
	c.lastClick = now
	c.activate(c.items[index])
	return true
}

// Transform returns the placement of index for the current frame.
func (c *Carousel) Transform(index int) ItemTransform {
	return Place(index, c.rotation.Get(), c.active, c.visible, len(c.items), c.cfg.Windowed, c.cfg)
}

// Transforms returns the placement of every item in index order.
func (c *Carousel) Transforms() []ItemTransform {
	out := make([]ItemTransform, len(c.items))
	for i := range c.items {
		out[i] = c.Transform(i)
	}
	return out
}

// ItemAt hit-tests the interactive items at (x, y), relative to the carousel
// center. radius is the unscaled item radius. The topmost item wins.
func (c *Carousel) ItemAt(x, y, radius float64) (int, bool) {
	best, bestZ := -1, math.MinInt
	for _, t := range c.Transforms() {
		if !t.Interactive {
			continue
		}
		if math.Hypot(x-t.X, y-t.Y) > radius*t.Scale {
			continue
		}
		if t.ZIndex > bestZ {
			best, bestZ = t.Index, t.ZIndex
		}
	}
	return best, best >= 0
}

func (c *Carousel) windowSize() int {
	if c.cfg.WindowSize > 0 {
		return c.cfg.WindowSize
	}
	return WindowSize(len(c.items))
}

func (c *Carousel) computeVisible() VisibleSet {
	return VisibleIndices(c.active, len(c.items), c.windowSize(), c.cfg.Windowed)
}

func (c *Carousel) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(c.items, func(it Item) bool { return it.ID == id })
}

func (c *Carousel) setActive(index int) {
	if index == c.active {
		return
	}
	c.active = index
	c.visible = c.computeVisible()
	if c.onActiveChanged != nil {
		c.onActiveChanged(index)
	}
}

// followRotation re-derives the active index from the rotation. It is a
// no-op while a spring selection pins the index to its target.
func (c *Carousel) followRotation() {
	if c.transitioning || len(c.items) == 0 {
		return
	}
	c.setActive(RotationToIndex(c.rotation.Get(), len(c.items)))
}

// springTo starts a spring toward target. The active index jumps to the
// target's index right away and stays there until the spring settles.
func (c *Carousel) springTo(target float64, p SpringParams, now time.Time, onDone func(now time.Time)) {
	c.setActive(RotationToIndex(target, len(c.items)))
	c.transitioning = true
	c.rotation.AnimateTo(target, p, now, func(now time.Time) {
		c.transitioning = false
		c.followRotation()
		if onDone != nil {
			onDone(now)
		}
	})
}

func (c *Carousel) stopAnimation() {
	c.rotation.Stop()
	c.transitioning = false
	c.followRotation()
}

func (c *Carousel) activate(item Item) {
	logging.Logger().Debug("Carousel: activate", "id", item.ID)
	if item.OnActivate != nil {
		item.OnActivate()
	}
	if c.onActivated != nil {
		c.onActivated(item)
	}
}
