package helpers

import "golang.org/x/exp/constraints"

// Max returns the largest of the given values. Used when deriving the
// order of a B-tree node from its target size (Order must never fall
// below 3, the minimum order a B-tree can split with).
func Max[T constraints.Ordered](numbers ...T) T {
	max := numbers[0]
	for _, n := range numbers {
		if n > max {
			max = n
		}
	}
	return max
}
