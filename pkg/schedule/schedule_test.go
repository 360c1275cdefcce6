package schedule

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLinearWarmupDecay(t *testing.T) {
	t.Parallel()

	lr := LinearWarmupDecay(100, 1000)

	cases := []struct {
		name string
		step int
		want float64
	}{
		{name: "start of warmup", step: 0, want: 0},
		{name: "mid warmup", step: 50, want: 0.5},
		{name: "end of warmup", step: 100, want: 1},
		{name: "mid decay", step: 550, want: 0.5},
		{name: "end of schedule", step: 1000, want: 0},
		{name: "past end clamps", step: 5000, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := lr(tc.step); !almostEqual(got, tc.want) {
				t.Fatalf("lr(%d): got %v want %v", tc.step, got, tc.want)
			}
		})
	}
}

func TestLinearWarmupDecayMonotoneDecay(t *testing.T) {
	t.Parallel()

	lr := LinearWarmupDecay(10, 100)
	prev := lr(10)
	for step := 11; step <= 100; step++ {
		cur := lr(step)
		if cur > prev {
			t.Fatalf("decay not monotone at step %d: %v > %v", step, cur, prev)
		}
		prev = cur
	}
}

func TestLinearWarmupDecayDegenerate(t *testing.T) {
	t.Parallel()

	t.Run("zero warmup", func(t *testing.T) {
		t.Parallel()
		lr := LinearWarmupDecay(0, 10)
		if got := lr(0); !almostEqual(got, 1) {
			t.Fatalf("lr(0): got %v want 1", got)
		}
	})

	t.Run("warmup equals total", func(t *testing.T) {
		t.Parallel()
		lr := LinearWarmupDecay(10, 10)
		if got := lr(5); !almostEqual(got, 0.5) {
			t.Fatalf("warmup lr(5): got %v want 0.5", got)
		}
		if got := lr(15); !almostEqual(got, 0) {
			t.Fatalf("post-total lr(15): got %v want 0", got)
		}
	})
}
