package bvh

import "testing"

func TestRoundUpLog2(t *testing.T) {
	cases := []struct {
		p    uint64
		want uint
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{7, 3},
		{8, 3},
		{9, 4},
		{1023, 10},
		{1024, 10},
		{1025, 11},
		{1 << 32, 32},
		{(1 << 32) + 1, 33},
	}
	for _, c := range cases {
		if got := RoundUpLog2(c.p); got != c.want {
			t.Errorf("RoundUpLog2(%d) = %d, want %d", c.p, got, c.want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := []struct {
		p, want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{1000, 1024},
		{1024, 1024},
	}
	for _, c := range cases {
		if got := NextPowerOfTwo(c.p); got != c.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", c.p, got, c.want)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, p := range []uint64{1, 2, 4, 8, 1024, 1 << 40} {
		if !IsPowerOfTwo(p) {
			t.Errorf("IsPowerOfTwo(%d) = false, want true", p)
		}
	}
	for _, p := range []uint64{0, 3, 5, 6, 7, 1000, (1 << 40) + 1} {
		if IsPowerOfTwo(p) {
			t.Errorf("IsPowerOfTwo(%d) = true, want false", p)
		}
	}
}
