package carousel

// Tray is the bottom-bar alternative to the circular carousel: a strip of
// slots scrolled by arrows that wrap around the item list.
type Tray struct {
	n      int
	slots  int
	offset int

	dragging int
}

// TraySlot is one rendered position of the tray.
type TraySlot struct {
	Index   int
	Edge    bool
	Opacity float64
	Scale   float64
}

const (
	// DefaultTraySlots is the number of items shown at once.
	DefaultTraySlots = 10

	trayEdgeOpacity = 0.7
	trayEdgeScale   = 0.85
)

// NewTray returns a tray over n items. slots <= 0 uses DefaultTraySlots.
func NewTray(n, slots int) *Tray {
	if slots <= 0 {
		slots = DefaultTraySlots
	}
	return &Tray{n: max(n, 0), slots: slots, dragging: -1}
}

// SetLen updates the item count, keeping the offset in range.
func (t *Tray) SetLen(n int) {
	t.n = max(n, 0)
	if t.n == 0 {
		t.offset = 0
		t.dragging = -1
		return
	}
	t.offset = mod(t.offset, t.n)
	if t.dragging >= t.n {
		t.dragging = -1
	}
}

// Offset returns the index shown in the first slot.
func (t *Tray) Offset() int { return t.offset }

// Scrollable reports whether there are more items than slots.
func (t *Tray) Scrollable() bool { return t.n > t.slots }

// ScrollLeft moves the strip back by one item, wrapping at the start.
func (t *Tray) ScrollLeft() {
	if !t.Scrollable() {
		return
	}
	t.offset = mod(t.offset-1, t.n)
}

// ScrollRight moves the strip forward by one item, wrapping at the end.
func (t *Tray) ScrollRight() {
	if !t.Scrollable() {
		return
	}
	t.offset = mod(t.offset+1, t.n)
}

// Slots returns the items currently in view. When scrolling is possible the
// first and last slots are faded to hint at more content.
func (t *Tray) Slots() []TraySlot {
	count := min(t.slots, t.n)
	out := make([]TraySlot, count)
	for i := range out {
		s := TraySlot{Index: mod(t.offset+i, t.n), Opacity: 1, Scale: 1}
		if t.Scrollable() && (i == 0 || i == count-1) {
			s.Edge = true
			s.Opacity = trayEdgeOpacity
			s.Scale = trayEdgeScale
		}
		out[i] = s
	}
	return out
}

// BeginDrag starts dragging the item at index out of the tray.
func (t *Tray) BeginDrag(index int) bool {
	if index < 0 || index >= t.n {
		return false
	}
	t.dragging = index
	return true
}

// Dragging returns the index being dragged out of the tray.
func (t *Tray) Dragging() (int, bool) {
	return t.dragging, t.dragging >= 0
}

// EndDrag finishes a drag released at releaseY. The item opens when it is
// dropped above the tray's top edge (screen y grows downward).
func (t *Tray) EndDrag(releaseY, trayTop float64) (index int, open bool) {
	index = t.dragging
	t.dragging = -1
	if index < 0 {
		return -1, false
	}
	return index, releaseY < trayTop
}
