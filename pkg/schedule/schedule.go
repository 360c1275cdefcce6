// Package schedule provides learning-rate multiplier functions for the
// training loop's LambdaLR-style scheduler.
package schedule

// Lambda maps an optimizer step to a learning-rate multiplier in [0, 1].
type Lambda func(step int) float64

// LinearWarmupDecay ramps the multiplier linearly from 0 to 1 over
// warmupSteps, then decays it linearly to 0 at totalSteps. Steps past
// totalSteps clamp to 0. Degenerate warmup or total values are guarded so
// the function never divides by zero.
func LinearWarmupDecay(warmupSteps, totalSteps int) Lambda {
	return func(step int) float64 {
		if step < warmupSteps {
			return float64(step) / float64(max(1, warmupSteps))
		}
		return max(0, float64(totalSteps-step)/float64(max(1, totalSteps-warmupSteps)))
	}
}
