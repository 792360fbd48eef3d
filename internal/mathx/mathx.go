package mathx

import (
	"golang.org/x/exp/constraints"
)

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

// Wrap returns n modulo m in [0, m). m must be positive.
func Wrap[I constraints.Integer](n, m I) I {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
