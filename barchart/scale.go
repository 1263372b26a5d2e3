// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barchart

import (
	"math"
	"strconv"
)

// calcStepSize returns a human-friendly y-axis increment for values
// in [0, maxVal] split into targetSteps divisions: the raw increment
// maxVal/targetSteps rounded up to 1, 2, or 5 times a power of ten.
func calcStepSize(maxVal, targetSteps float64) float64 {
	// Initial guess at the step size.
	tempStep := maxVal / targetSteps

	// Magnitude of the step size.
	mag := math.Floor(math.Log10(tempStep))
	magPow := math.Pow(10, mag)

	// Most significant digit of the step size, rounded up.
	magMsd := math.Round(tempStep/magPow + 0.5)

	// Promote the digit to the nearest of 1, 2, and 5.
	switch {
	case magMsd > 5:
		magMsd = 10
	case magMsd > 2:
		magMsd = 5
	case magMsd > 1:
		magMsd = 2
	default:
		magMsd = 1
	}

	return magMsd * magPow
}

// axisTicks returns numTicks evenly spaced tick values starting at
// zero, stepping by the nice increment for max. The top tick is
// numTicks-1 steps up and may fall short of or overshoot max.
func axisTicks(max float32, numTicks int) []float32 {
	step := float32(calcStepSize(float64(max), float64(numTicks)))
	ticks := make([]float32, numTicks)
	for i := range ticks {
		ticks[i] = float32(i) * step
	}
	return ticks
}

// formatTick renders a tick value with the fewest digits that still
// round-trip the float32 exactly.
func formatTick(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
