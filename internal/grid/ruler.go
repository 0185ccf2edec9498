package grid

import (
	"fmt"
	"math"
	"strconv"
)

// TickKind classifies a ruler tick.
type TickKind int

const (
	TickInch TickKind = iota
	TickHalf
	TickQuarter
	TickEighth
	TickMajor // every 50 mm
	TickMinor // every 10 mm
)

var tickKindNames = [...]string{"inch", "half", "quarter", "eighth", "major", "minor"}

func (k TickKind) String() string {
	if k < 0 || int(k) >= len(tickKindNames) {
		return "unknown"
	}
	return tickKindNames[k]
}

// TickMark is one ruler tick. Position is measured in pixels from the ruler
// origin along the viewport's long side.
type TickMark struct {
	Position float64
	Kind     TickKind
	Length   float64
	Label    string
}

// Tick lengths in pixels.
const (
	InchTickLength    = 40
	HalfTickLength    = 25
	QuarterTickLength = 15
	EighthTickLength  = 10
	MajorTickLength   = 32
	MinorTickLength   = 16
)

// InchTicks returns the inch ruler: every whole inch up to the viewport
// extent, labeled, with unlabeled half, quarter and eighth marks between
// consecutive inches.
func InchTicks(s Scale, vp Viewport) []TickMark {
	if vp.empty() {
		return nil
	}
	inch := s.InchPixels()
	if inch <= 0 {
		return nil
	}
	count := int(math.Ceil(vp.Extent() / inch))

	marks := make([]TickMark, 0, count*8+1)
	for i := 0; i <= count; i++ {
		y := float64(i) * inch
		marks = append(marks, TickMark{Position: y, Kind: TickInch, Length: InchTickLength, Label: fmt.Sprintf("%d\"", i)})
		if i == count {
			break
		}
		marks = append(marks, TickMark{Position: y + inch/2, Kind: TickHalf, Length: HalfTickLength})
		for q := 1; q < 4; q += 2 {
			marks = append(marks, TickMark{Position: y + inch*float64(q)/4, Kind: TickQuarter, Length: QuarterTickLength})
		}
		for e := 1; e < 8; e += 2 {
			marks = append(marks, TickMark{Position: y + inch*float64(e)/8, Kind: TickEighth, Length: EighthTickLength})
		}
	}
	return marks
}

// MmTicks returns the millimetre ruler: a tick every 10 mm up to the
// viewport extent, with a longer labeled tick every 50 mm.
func MmTicks(s Scale, vp Viewport) []TickMark {
	if vp.empty() {
		return nil
	}
	step := s.MmToPixels(10)
	extent := vp.Extent()

	marks := make([]TickMark, 0, int(extent/step)+1)
	for k := 0; ; k++ {
		pos := float64(k) * step
		if pos > extent {
			break
		}
		if k%5 == 0 {
			marks = append(marks, TickMark{Position: pos, Kind: TickMajor, Length: MajorTickLength, Label: strconv.Itoa(k * 10)})
			continue
		}
		marks = append(marks, TickMark{Position: pos, Kind: TickMinor, Length: MinorTickLength})
	}
	return marks
}
