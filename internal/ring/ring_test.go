package ring

import "testing"

func TestNextWraps(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{-1, 4, 0},
		{0, 4, 1},
		{2, 4, 3},
		{3, 4, 0},
		{-1, 1, 0},
		{0, 1, 0},
	}
	for _, c := range cases {
		if got := Next(c.i, c.n); got != c.want {
			t.Errorf("Next(%d, %d) = %d, want %d", c.i, c.n, got, c.want)
		}
	}
}

func TestPrevWraps(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{3, 4, 2},
		{1, 4, 0},
		{0, 4, 3},
		{0, 1, 0},
	}
	for _, c := range cases {
		if got := Prev(c.i, c.n); got != c.want {
			t.Errorf("Prev(%d, %d) = %d, want %d", c.i, c.n, got, c.want)
		}
	}
}

func TestNextPrevRoundTrip(t *testing.T) {
	const n = 9
	for i := range n {
		if got := Prev(Next(i, n), n); got != i {
			t.Errorf("Prev(Next(%d)) = %d", i, got)
		}
	}
}
