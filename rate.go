package manim

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/gogpu/manim/internal/cache"
)

// RateFunc remaps animation progress. Rate functions used for playback
// should map 0 to 0 and 1 to 1.
type RateFunc func(t float64) float64

// Linear leaves progress unchanged.
func Linear(t float64) float64 {
	return t
}

// Smooth eases in and out with zero first and second derivatives at
// both ends.
func Smooth(t float64) float64 {
	return t * t * t * (10 - 15*t + 6*t*t)
}

// RushInto starts slowly and arrives at full speed.
func RushInto(t float64) float64 {
	return 2 * Smooth(0.5*t)
}

// RushFrom leaves at full speed and settles slowly.
func RushFrom(t float64) float64 {
	return 2*Smooth(0.5*(t+1)) - 1
}

// ThereAndBack runs smoothly to 1 at the midpoint and back to 0.
func ThereAndBack(t float64) float64 {
	if t < 0.5 {
		return Smooth(2 * t)
	}
	return Smooth(2 - 2*t)
}

// springSamples is the resolution of the sampled spring curve.
const springSamples = 120

// springCurves memoizes sampled curves by angular frequency and damping
// ratio.
var springCurves = cache.New[[2]float64, []float64](64)

// Spring returns a rate function following a damped spring pulled from 0
// towards 1 for one second. The curve is normalized so it ends exactly at
// 1 and clamped to [0, 1]; damping ratios below 1 therefore flatten any
// overshoot.
func Spring(angularFrequency, dampingRatio float64) RateFunc {
	var samples []float64
	if math.IsNaN(angularFrequency) || math.IsNaN(dampingRatio) {
		samples = sampleSpring(angularFrequency, dampingRatio)
	} else {
		samples = springCurves.GetOrCreate([2]float64{angularFrequency, dampingRatio}, func() []float64 {
			return sampleSpring(angularFrequency, dampingRatio)
		})
	}

	return func(t float64) float64 {
		if math.IsNaN(t) || t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		v := t * springSamples
		i := int(math.Floor(v))
		return clamp01(Interpolate(samples[i], samples[i+1], v-float64(i)))
	}
}

func sampleSpring(angularFrequency, dampingRatio float64) []float64 {
	s := harmonica.NewSpring(harmonica.FPS(springSamples), angularFrequency, dampingRatio)
	samples := make([]float64, springSamples+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSamples; i++ {
		pos, vel = s.Update(pos, vel, 1)
		samples[i] = pos
	}
	if end := samples[springSamples]; end != 0 {
		for i := range samples {
			samples[i] /= end
		}
	}
	return samples
}
