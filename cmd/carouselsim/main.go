// Command carouselsim replays scripted gestures against the carousel engine
// with a simulated clock and prints where every item ends up.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"holomat/internal/carousel"
	"holomat/internal/registry"
)

func main() {
	count := flag.Int("n", 8, "Number of apps when no catalog is given")
	apps := flag.String("apps", "", "App catalog to load instead of generated apps")
	showAll := flag.Bool("show-all", false, "Place every app on the ring")
	script := flag.String("script", "wheel 1; drag -120 600ms; flick -300; tap; select 3", "Gestures separated by ';'")
	frame := flag.Duration("frame", 16*time.Millisecond, "Simulated frame interval")
	transforms := flag.Bool("transforms", false, "Print item transforms after each gesture")
	flag.Parse()

	steps, err := parseScript(*script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid script: %v\n", err)
		os.Exit(1)
	}
	if *frame <= 0 {
		fmt.Fprintln(os.Stderr, "Frame interval must be positive")
		os.Exit(1)
	}

	items, err := loadItems(*apps, *count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load apps: %v\n", err)
		os.Exit(1)
	}

	cfg := carousel.DefaultConfig()
	cfg.Windowed = !*showAll
	c := carousel.New(items, cfg)
	c.OnActiveIndexChanged(func(index int) {
		fmt.Printf("    active -> %d\n", index)
	})
	c.OnItemActivated(func(item carousel.Item) {
		fmt.Printf("    launch %s\n", item.ID)
	})

	s := &sim{c: c, now: time.Unix(0, 0), frame: *frame}
	fmt.Printf("%d apps, segment %.2f deg, window %d\n", c.Len(), carousel.SegmentAngle(c.Len()), len(c.Visible()))

	for _, st := range steps {
		// Keep gestures apart from the tap debounce.
		s.advance(cfg.ClickDebounce)
		fmt.Printf("> %s\n", st)
		s.run(st)
		took := s.settle(10 * time.Second)
		fmt.Printf("  rotation %.2f  active %d  settled after %s\n", c.Rotation(), c.ActiveIndex(), took)
		fmt.Printf("  window %v\n", c.Visible().Sorted())
		if *transforms {
			printTransforms(c)
		}
	}
}

func loadItems(path string, n int) ([]carousel.Item, error) {
	if path != "" {
		cat, err := registry.Load(path)
		if err != nil {
			return nil, err
		}
		return cat.Items(nil), nil
	}
	items := make([]carousel.Item, n)
	for i := range items {
		id := fmt.Sprintf("app-%d", i)
		items[i] = carousel.Item{ID: id, DisplayName: registry.DisplayName(id)}
	}
	return items, nil
}

func printTransforms(c *carousel.Carousel) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "index\tx\ty\tz\tscale\topacity\tblur\tzindex\t")
	for _, t := range c.Transforms() {
		if !t.Visible && t.Opacity == 0 {
			continue
		}
		fmt.Fprintf(tw, "%d\t%.1f\t%.1f\t%.1f\t%.2f\t%.2f\t%.1f\t%d\t\n",
			t.Index, t.X, t.Y, t.DepthZ, t.Scale, t.Opacity, t.Blur, t.ZIndex)
	}
	tw.Flush()
}
