// Package carouselview provides the fyne widget that displays the app
// carousel and feeds pointer, touch, wheel and keyboard input to the engine.
package carouselview

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"holomat/internal/carousel"
	"holomat/internal/config"
	"holomat/internal/logging"
)

// CarouselView renders a carousel.Carousel, or its bottom-bar tray, and
// translates fyne events into engine calls.
//
// fyne delivers events and animation ticks on different goroutines, so every
// engine call runs under the view's lock. Callbacks registered on the view
// run after the lock is released and may call back into the view.
type CarouselView struct {
	widget.BaseWidget

	mu     sync.Mutex
	engine *carousel.Carousel
	tray   *carousel.Tray
	layout config.Layout
	accent color.RGBA
	clock  func() time.Time

	pending []func()
	anim    *fyne.Animation

	// Gesture state
	pointerDown bool
	pressedDot  int
	lastPos     fyne.Position
	trayPress   int // slot index under the pointer at tray press, -1 if none

	onActiveChanged func(index int)
	onActivated     func(item carousel.Item)
}

var (
	_ fyne.Draggable    = (*CarouselView)(nil)
	_ fyne.Scrollable   = (*CarouselView)(nil)
	_ fyne.Focusable    = (*CarouselView)(nil)
	_ desktop.Mouseable = (*CarouselView)(nil)
	_ mobile.Touchable  = (*CarouselView)(nil)
)

// New creates a carousel view over items.
func New(items []carousel.Item, cfg carousel.Config, layout config.Layout, accent color.RGBA) *CarouselView {
	v := &CarouselView{
		engine:     carousel.New(items, cfg),
		tray:       carousel.NewTray(len(items), carousel.DefaultTraySlots),
		layout:     layout,
		accent:     accent,
		clock:      time.Now,
		pressedDot: -1,
		trayPress:  -1,
	}
	v.engine.OnActiveIndexChanged(func(index int) {
		v.pending = append(v.pending, func() {
			if v.onActiveChanged != nil {
				v.onActiveChanged(index)
			}
		})
	})
	v.engine.OnItemActivated(func(item carousel.Item) {
		v.pending = append(v.pending, func() {
			if v.onActivated != nil {
				v.onActivated(item)
			}
		})
	})
	v.ExtendBaseWidget(v)
	return v
}

// OnActiveIndexChanged sets the callback for active index changes.
func (v *CarouselView) OnActiveIndexChanged(callback func(index int)) {
	v.onActiveChanged = callback
}

// OnItemActivated sets the callback for launched items.
func (v *CarouselView) OnItemActivated(callback func(item carousel.Item)) {
	v.onActivated = callback
}

// SetItems replaces the items, keeping the active app in front when possible.
func (v *CarouselView) SetItems(items []carousel.Item) {
	v.do(func(time.Time) {
		v.engine.SetItems(items)
		v.tray.SetLen(len(items))
		v.pointerDown = false
		v.pressedDot = -1
		v.trayPress = -1
	})
}

// SetLayout switches between the circular carousel and the tray.
func (v *CarouselView) SetLayout(layout config.Layout) {
	v.do(func(time.Time) {
		if v.layout == layout {
			return
		}
		v.layout = layout
		v.engine.Reset()
		v.pointerDown = false
	})
}

// SetWindowed switches between windowed and show-all placement.
func (v *CarouselView) SetWindowed(windowed bool) {
	v.do(func(time.Time) { v.engine.SetWindowed(windowed) })
}

// SetAccent changes the icon color.
func (v *CarouselView) SetAccent(accent color.RGBA) {
	v.do(func(time.Time) { v.accent = accent })
}

// Select springs to index and launches it, as a dot indicator tap does.
func (v *CarouselView) Select(index int) {
	v.do(func(now time.Time) { v.engine.Select(index, now) })
}

// ActiveIndex returns the focused index.
func (v *CarouselView) ActiveIndex() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.engine.ActiveIndex()
}

// Layout returns the current presentation.
func (v *CarouselView) Layout() config.Layout {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.layout
}

// Animating reports whether frames are still being driven.
func (v *CarouselView) Animating() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.anim != nil
}

// do runs fn against the engine under the lock, then starts or stops the
// frame driver, flushes queued callbacks and redraws.
func (v *CarouselView) do(fn func(now time.Time)) {
	v.mu.Lock()
	fn(v.clock())
	pending := v.pending
	v.pending = nil

	var start, stop *fyne.Animation
	switch busy := v.engine.Animating(); {
	case busy && v.anim == nil:
		v.anim = fyne.NewAnimation(time.Second, v.tick)
		v.anim.Curve = fyne.AnimationLinear
		v.anim.RepeatCount = fyne.AnimationRepeatForever
		start = v.anim
	case !busy && v.anim != nil:
		stop = v.anim
		v.anim = nil
	}
	v.mu.Unlock()

	if stop != nil {
		stop.Stop()
	}
	if start != nil {
		start.Start()
	}
	for _, callback := range pending {
		callback()
	}
	v.Refresh()
}

func (v *CarouselView) tick(float32) {
	v.do(func(now time.Time) { v.engine.Tick(now) })
}

// MouseDown implements desktop.Mouseable.
func (v *CarouselView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	v.press(ev.Position)
}

// MouseUp implements desktop.Mouseable.
func (v *CarouselView) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	v.release(ev.Position, false)
}

// TouchDown implements mobile.Touchable.
func (v *CarouselView) TouchDown(ev *mobile.TouchEvent) {
	v.press(ev.Position)
}

// TouchUp implements mobile.Touchable.
func (v *CarouselView) TouchUp(ev *mobile.TouchEvent) {
	v.release(ev.Position, false)
}

// TouchCancel implements mobile.Touchable.
func (v *CarouselView) TouchCancel(ev *mobile.TouchEvent) {
	v.release(ev.Position, true)
}

// Dragged implements fyne.Draggable.
func (v *CarouselView) Dragged(ev *fyne.DragEvent) {
	v.do(func(now time.Time) {
		v.lastPos = ev.Position
		if v.layout == config.LayoutTray || !v.pointerDown {
			return
		}
		v.engine.PointerMove(float64(ev.Position.X), now)
	})
}

// DragEnd implements fyne.Draggable. The release itself normally arrives as
// MouseUp or TouchUp; this covers drivers that only report the drag.
func (v *CarouselView) DragEnd() {
	v.mu.Lock()
	pos := v.lastPos
	v.mu.Unlock()
	v.release(pos, false)
}

// Scrolled implements fyne.Scrollable. fyne reports wheel-down as negative
// DY; the engine steps forward on positive deltas.
func (v *CarouselView) Scrolled(ev *fyne.ScrollEvent) {
	v.do(func(now time.Time) {
		if v.layout == config.LayoutTray {
			v.scrollTray(ev.Scrolled.DY)
			return
		}
		v.engine.Wheel(-float64(ev.Scrolled.DY), now)
	})
}

// FocusGained implements fyne.Focusable.
func (v *CarouselView) FocusGained() {}

// FocusLost implements fyne.Focusable.
func (v *CarouselView) FocusLost() {}

// TypedRune implements fyne.Focusable.
func (v *CarouselView) TypedRune(rune) {}

// TypedKey steps with the arrow keys and launches with Enter or Space.
func (v *CarouselView) TypedKey(ev *fyne.KeyEvent) {
	v.do(func(now time.Time) {
		tray := v.layout == config.LayoutTray
		switch ev.Name {
		case fyne.KeyLeft:
			if tray {
				v.tray.ScrollLeft()
			} else {
				v.engine.Wheel(-1, now)
			}
		case fyne.KeyRight:
			if tray {
				v.tray.ScrollRight()
			} else {
				v.engine.Wheel(1, now)
			}
		case fyne.KeyReturn, fyne.KeyEnter, fyne.KeySpace:
			v.engine.Launch(v.engine.ActiveIndex(), now)
		}
	})
}

func (v *CarouselView) press(pos fyne.Position) {
	v.do(func(now time.Time) {
		v.lastPos = pos
		size := v.Size()
		if v.layout == config.LayoutTray {
			v.pressTray(pos, size)
			return
		}
		if i, ok := dotAt(pos, v.engine.Len(), size); ok {
			v.pressedDot = i
			return
		}
		v.pressedDot = -1
		v.pointerDown = true
		v.engine.PointerDown(float64(pos.X), now)
	})
}

func (v *CarouselView) release(pos fyne.Position, cancel bool) {
	v.do(func(now time.Time) {
		size := v.Size()
		if v.layout == config.LayoutTray {
			v.releaseTray(pos, size, cancel, now)
			return
		}
		if v.pressedDot >= 0 {
			if i, ok := dotAt(pos, v.engine.Len(), size); ok && !cancel && i == v.pressedDot {
				v.engine.Select(i, now)
			}
			v.pressedDot = -1
			return
		}
		if !v.pointerDown {
			return
		}
		v.pointerDown = false
		if cancel {
			v.engine.PointerCancel(now)
			return
		}
		c := center(size)
		if i, ok := v.engine.ItemAt(float64(pos.X-c.X), float64(pos.Y-c.Y), iconSize/2); ok {
			v.engine.PointerUpOn(i, now)
			return
		}
		v.engine.PointerUp(now)
	})
}

func (v *CarouselView) pressTray(pos fyne.Position, size fyne.Size) {
	switch trayArrowAt(pos, size, v.tray.Scrollable()) {
	case -1:
		v.tray.ScrollLeft()
		return
	case 1:
		v.tray.ScrollRight()
		return
	}
	slots := v.tray.Slots()
	if i, ok := traySlotAt(pos, len(slots), size); ok {
		v.trayPress = i
		v.tray.BeginDrag(slots[i].Index)
	}
}

func (v *CarouselView) releaseTray(pos fyne.Position, size fyne.Size, cancel bool, now time.Time) {
	pressed := v.trayPress
	v.trayPress = -1
	index, open := v.tray.EndDrag(float64(pos.Y), float64(trayTop(size)))
	if index < 0 || cancel {
		return
	}
	tapped := false
	if i, ok := traySlotAt(pos, len(v.tray.Slots()), size); ok && i == pressed {
		tapped = true
	}
	if open || tapped {
		logging.Logger().Debug("Tray: open", "index", index, "dropped", open)
		v.engine.Launch(index, now)
	}
}

func (v *CarouselView) scrollTray(dy float32) {
	switch {
	case dy < 0:
		v.tray.ScrollRight()
	case dy > 0:
		v.tray.ScrollLeft()
	}
}

// CreateRenderer implements fyne.Widget.
func (v *CarouselView) CreateRenderer() fyne.WidgetRenderer {
	return newRenderer(v)
}
