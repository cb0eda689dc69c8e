package models

import "testing"

func TestSnapshotPercent(t *testing.T) {
	cases := []struct {
		ratio float64
		want  int
	}{
		{0, 0},
		{0.499, 49},
		{0.5, 50},
		{0.999, 99},
		{1, 100},
	}
	for _, tc := range cases {
		if got := (Snapshot{Ratio: tc.ratio}).Percent(); got != tc.want {
			t.Fatalf("Percent(%v) = %d, want %d", tc.ratio, got, tc.want)
		}
	}
}
