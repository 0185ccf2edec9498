package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"holomat/internal/carousel"
)

// step is one scripted gesture.
type step struct {
	op       string
	value    float64
	duration time.Duration
}

func (s step) String() string {
	switch s.op {
	case "tap", "cancel":
		return s.op
	case "drag", "wait":
		return fmt.Sprintf("%s %g %s", s.op, s.value, s.duration)
	default:
		return fmt.Sprintf("%s %g", s.op, s.value)
	}
}

// parseScript reads gestures separated by ';', for example
// "wheel 1; drag -120 600ms; flick -300; tap; select 3; wait 1s".
func parseScript(src string) ([]step, error) {
	var steps []step
	for i, raw := range strings.Split(src, ";") {
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		s, err := parseStep(fields)
		if err != nil {
			return nil, fmt.Errorf("step %d %q: %w", i+1, strings.TrimSpace(raw), err)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func parseStep(fields []string) (step, error) {
	s := step{op: fields[0]}
	args := fields[1:]
	want := map[string]int{"wheel": 1, "drag": 2, "flick": 1, "tap": 0, "cancel": 0, "select": 1, "wait": 1}
	n, ok := want[s.op]
	if !ok {
		return s, fmt.Errorf("unknown gesture")
	}
	if len(args) != n {
		return s, fmt.Errorf("want %d arguments, got %d", n, len(args))
	}

	var err error
	switch s.op {
	case "wait":
		s.duration, err = time.ParseDuration(args[0])
	case "drag":
		if s.value, err = strconv.ParseFloat(args[0], 64); err == nil {
			s.duration, err = time.ParseDuration(args[1])
		}
	case "wheel", "flick", "select":
		s.value, err = strconv.ParseFloat(args[0], 64)
	}
	return s, err
}

// sim drives a carousel with a simulated clock.
type sim struct {
	c     *carousel.Carousel
	now   time.Time
	frame time.Duration
	x     float64
}

func (s *sim) advance(d time.Duration) {
	end := s.now.Add(d)
	for s.now.Before(end) {
		s.now = s.now.Add(s.frame)
		s.c.Tick(s.now)
	}
}

// settle runs frames until the carousel stops animating or limit passes.
func (s *sim) settle(limit time.Duration) time.Duration {
	start := s.now
	for s.c.Animating() && s.now.Sub(start) < limit {
		s.now = s.now.Add(s.frame)
		s.c.Tick(s.now)
	}
	return s.now.Sub(start)
}

// drag moves the pointer dx pixels over d in frame-sized moves.
func (s *sim) drag(dx float64, d time.Duration) {
	moves := max(int(d/s.frame), 1)
	s.c.PointerDown(s.x, s.now)
	for i := 0; i < moves; i++ {
		s.now = s.now.Add(d / time.Duration(moves))
		s.x += dx / float64(moves)
		s.c.PointerMove(s.x, s.now)
	}
	s.c.PointerUp(s.now)
}

func (s *sim) run(st step) {
	switch st.op {
	case "wheel":
		s.c.Wheel(st.value, s.now)
	case "drag":
		s.drag(st.value, st.duration)
	case "flick":
		s.drag(st.value, 3*s.frame)
	case "tap":
		s.c.PointerDown(s.x, s.now)
		s.c.PointerUp(s.now)
	case "cancel":
		s.c.PointerDown(s.x, s.now)
		s.c.PointerCancel(s.now)
	case "select":
		s.c.Select(int(st.value), s.now)
	case "wait":
		s.advance(st.duration)
	}
}
