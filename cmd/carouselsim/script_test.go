package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holomat/internal/carousel"
)

func TestParseScript(t *testing.T) {
	steps, err := parseScript("wheel 1; drag -120 600ms;; flick -300 ; tap; select 3; wait 1s")
	require.NoError(t, err)
	require.Len(t, steps, 6)
	assert.Equal(t, step{op: "drag", value: -120, duration: 600 * time.Millisecond}, steps[1])
	assert.Equal(t, "tap", steps[3].String())
	assert.Equal(t, "select 3", steps[4].String())
	assert.Equal(t, time.Second, steps[5].duration)

	_, err = parseScript("spin 4")
	assert.ErrorContains(t, err, "unknown gesture")
	_, err = parseScript("wheel")
	assert.ErrorContains(t, err, "want 1 arguments")
	_, err = parseScript("drag 10 soon")
	assert.Error(t, err)
}

func newSim(n int) (*sim, *[]string) {
	items := make([]carousel.Item, n)
	for i := range items {
		items[i] = carousel.Item{ID: fmt.Sprintf("app-%d", i)}
	}
	var launched []string
	c := carousel.New(items, carousel.DefaultConfig())
	c.OnItemActivated(func(it carousel.Item) { launched = append(launched, it.ID) })
	return &sim{c: c, now: time.Unix(0, 0), frame: 16 * time.Millisecond}, &launched
}

func TestSimWheelAndSelect(t *testing.T) {
	s, launched := newSim(8)

	s.run(step{op: "wheel", value: 1})
	s.settle(10 * time.Second)
	assert.Equal(t, 1, s.c.ActiveIndex())
	assert.False(t, s.c.Animating())

	s.run(step{op: "select", value: 5})
	s.settle(10 * time.Second)
	assert.Equal(t, 5, s.c.ActiveIndex())
	assert.Equal(t, []string{"app-5"}, *launched)
}

func TestSimTapLaunchesActive(t *testing.T) {
	s, launched := newSim(4)
	s.run(step{op: "tap"})
	s.settle(10 * time.Second)
	assert.Equal(t, []string{"app-0"}, *launched)

	s.advance(time.Second)
	s.run(step{op: "cancel"})
	s.settle(10 * time.Second)
	assert.Len(t, *launched, 1)
}
