package util

import (
	"testing"
)

func TestPercentMatchesHalfUpRounding(t *testing.T) {
	for total := 1; total <= 1000; total++ {
		for part := 0; part <= total; part++ {
			want := 100 * part / total
			if rem := 100 * part % total; 2*rem >= total {
				want++
			}
			if got := Percent(part, total); got != want {
				t.Fatalf("Percent(%d,%d)=%d want %d", part, total, got, want)
			}
		}
	}
}

func TestPercentHalfCases(t *testing.T) {
	cases := []struct{ part, total, want int }{
		{1, 8, 13},   // 12.5
		{1, 200, 1},  // 0.5
		{3, 8, 38},   // 37.5
		{2, 3, 67},   // 66.67
		{1, 3, 33},   // 33.33
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
	}
	for _, tc := range cases {
		if got := Percent(tc.part, tc.total); got != tc.want {
			t.Fatalf("Percent(%d,%d)=%d want %d", tc.part, tc.total, got, tc.want)
		}
	}
}

func TestRoundedMean(t *testing.T) {
	if got := RoundedMean(nil); got != 0 {
		t.Fatalf("empty mean: got %d", got)
	}
	if got := RoundedMean([]int{70, 85}); got != 78 {
		t.Fatalf("mean(70,85): got %d want 78", got)
	}
	if got := RoundedMean([]int{100, 67, 50}); got != 72 {
		t.Fatalf("mean(100,67,50): got %d want 72", got)
	}
}
