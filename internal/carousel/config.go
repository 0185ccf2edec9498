package carousel

import (
	"time"

	"holomat/pkg/geometry"
)

// Config holds the tuning constants of the carousel. The zero value is not
// useful; start from DefaultConfig and override fields.
type Config struct {
	// Windowed renders only a window of items around the active one at full
	// fidelity. When false every item is placed at full fidelity.
	Windowed bool
	// WindowSize overrides the item-count driven window size when > 0.
	WindowSize int

	// Sensitivity converts horizontal pointer travel (px) into degrees.
	Sensitivity float64
	// VelocityGain scales px/ms into the dispatcher's velocity units.
	VelocityGain float64
	// VelocitySmoothing is the weight of the newest sample in the
	// exponential velocity estimate; the previous estimate gets 1 - this.
	VelocitySmoothing float64
	// FlickThreshold is the |velocity| above which a release coasts.
	FlickThreshold float64
	// InertiaDistance is the coasting travel in degrees per velocity unit.
	InertiaDistance float64

	// ClickDebounce rejects taps closer together than this.
	ClickDebounce time.Duration
	// WheelThrottle limits wheel steps to one per interval.
	WheelThrottle time.Duration

	// BaseHorizontalRadius and BaseDepthRadius size the virtual circle
	// before the item-count factor is applied.
	BaseHorizontalRadius float64
	BaseDepthRadius      float64
	// MaxRadiusFactor caps how much larger collections widen the circle.
	MaxRadiusFactor float64
	// NeighborSpread pushes the two neighbors on each side of the active
	// item away from it, as a fraction of a segment per step of closeness.
	NeighborSpread float64
	// FocusBoost multiplies the focused item's scale.
	FocusBoost float64

	Spring SpringConfig
	Decay  DecayConfig
}

// SpringConfig describes how spring stiffness and damping scale with the
// number of items. Stiffness = clamp(StiffnessBase - (N-10)*StiffnessSlope).
type SpringConfig struct {
	StiffnessBase  float64
	StiffnessSlope float64
	StiffnessMin   float64
	StiffnessMax   float64
	DampingBase    float64
	DampingSlope   float64
	DampingMin     float64
	DampingMax     float64
	Mass           float64

	// Explicit selections (dot indicators, taps on a neighbor) use a
	// stiffer, heavier spring.
	SelectStiffnessBase float64
	SelectStiffnessMin  float64
	SelectStiffnessMax  float64
	SelectMass          float64

	RestDelta float64 // degrees
	RestSpeed float64 // degrees per second
}

// DecayConfig tunes the inertial coast after a flick.
type DecayConfig struct {
	Power        float64
	TimeConstant time.Duration
	RestDelta    float64
}

// DefaultConfig returns the carousel defaults.
func DefaultConfig() Config {
	return Config{
		Windowed:          true,
		Sensitivity:       0.25,
		VelocityGain:      10,
		VelocitySmoothing: 0.8,
		FlickThreshold:    2,
		InertiaDistance:   2.8,

		ClickDebounce: 300 * time.Millisecond,
		WheelThrottle: 150 * time.Millisecond,

		BaseHorizontalRadius: 160,
		BaseDepthRadius:      100,
		MaxRadiusFactor:      1.3,
		NeighborSpread:       0.3,
		FocusBoost:           1.15,

		Spring: SpringConfig{
			StiffnessBase:  300,
			StiffnessSlope: 5,
			StiffnessMin:   200,
			StiffnessMax:   400,
			DampingBase:    40,
			DampingSlope:   0.5,
			DampingMin:     30,
			DampingMax:     50,
			Mass:           1.2,

			SelectStiffnessBase: 350,
			SelectStiffnessMin:  250,
			SelectStiffnessMax:  450,
			SelectMass:          1.3,

			RestDelta: 0.5,
			RestSpeed: 2,
		},
		Decay: DecayConfig{
			Power:        0.7,
			TimeConstant: 500 * time.Millisecond,
			RestDelta:    0.5,
		},
	}
}

// SpringParams returns the settle spring for n items.
func (c SpringConfig) SpringParams(n int) SpringParams {
	return SpringParams{
		Stiffness: c.stiffness(c.StiffnessBase, c.StiffnessMin, c.StiffnessMax, n),
		Damping:   c.damping(n),
		Mass:      c.Mass,
		RestDelta: c.RestDelta,
		RestSpeed: c.RestSpeed,
	}
}

// SelectParams returns the spring used for explicit selections of n items.
func (c SpringConfig) SelectParams(n int) SpringParams {
	return SpringParams{
		Stiffness: c.stiffness(c.SelectStiffnessBase, c.SelectStiffnessMin, c.SelectStiffnessMax, n),
		Damping:   c.damping(n),
		Mass:      c.SelectMass,
		RestDelta: c.RestDelta,
		RestSpeed: c.RestSpeed,
	}
}

func (c SpringConfig) stiffness(base, lo, hi float64, n int) float64 {
	return geometry.Clamp(base-float64(n-10)*c.StiffnessSlope, lo, hi)
}

func (c SpringConfig) damping(n int) float64 {
	return geometry.Clamp(c.DampingBase+float64(n-10)*c.DampingSlope, c.DampingMin, c.DampingMax)
}

// radiusFactor widens the circle for larger collections.
func (c Config) radiusFactor(n int) float64 {
	return geometry.Clamp(float64(n)/10, 1, c.MaxRadiusFactor)
}
