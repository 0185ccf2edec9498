package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraySlotsScrollable(t *testing.T) {
	tray := NewTray(15, 0)
	assert.True(t, tray.Scrollable())

	slots := tray.Slots()
	assert.Len(t, slots, DefaultTraySlots)
	assert.Equal(t, 0, slots[0].Index)
	assert.True(t, slots[0].Edge)
	assert.Equal(t, trayEdgeOpacity, slots[0].Opacity)
	assert.Equal(t, trayEdgeScale, slots[0].Scale)
	assert.False(t, slots[1].Edge)
	assert.Equal(t, 1.0, slots[1].Opacity)
	assert.True(t, slots[9].Edge)
}

func TestTrayArrowsWrap(t *testing.T) {
	tray := NewTray(15, 10)
	tray.ScrollLeft()
	assert.Equal(t, 14, tray.Offset())
	assert.Equal(t, 14, tray.Slots()[0].Index)
	assert.Equal(t, 8, tray.Slots()[9].Index)

	tray.ScrollRight()
	tray.ScrollRight()
	assert.Equal(t, 1, tray.Offset())
}

func TestTrayFewItems(t *testing.T) {
	tray := NewTray(4, 10)
	assert.False(t, tray.Scrollable())
	tray.ScrollRight()
	assert.Equal(t, 0, tray.Offset())

	slots := tray.Slots()
	assert.Len(t, slots, 4)
	for i, s := range slots {
		assert.Equal(t, i, s.Index)
		assert.False(t, s.Edge)
	}
}

func TestTrayDragToOpen(t *testing.T) {
	tray := NewTray(5, 10)

	index, open := tray.EndDrag(10, 500)
	assert.Equal(t, -1, index)
	assert.False(t, open)

	assert.True(t, tray.BeginDrag(3))
	dragging, ok := tray.Dragging()
	assert.True(t, ok)
	assert.Equal(t, 3, dragging)
	index, open = tray.EndDrag(120, 500)
	assert.Equal(t, 3, index)
	assert.True(t, open)

	assert.True(t, tray.BeginDrag(2))
	index, open = tray.EndDrag(540, 500)
	assert.Equal(t, 2, index)
	assert.False(t, open)

	assert.False(t, tray.BeginDrag(5))
	_, ok = tray.Dragging()
	assert.False(t, ok)
}

func TestTraySetLen(t *testing.T) {
	tray := NewTray(20, 10)
	for range 15 {
		tray.ScrollRight()
	}
	tray.BeginDrag(18)
	tray.SetLen(12)
	assert.Equal(t, 3, tray.Offset())
	index, _ := tray.EndDrag(0, 100)
	assert.Equal(t, -1, index)

	tray.SetLen(0)
	assert.Empty(t, tray.Slots())
}
