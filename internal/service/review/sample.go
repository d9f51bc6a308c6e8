package review

import "github.com/google/uuid"

// samplePrefix draws n distinct ids uniformly at random from pool using a
// Fisher–Yates shuffle truncated to a prefix: walk from the last index down
// to 1, swap the current element with a uniformly random element at an index
// no greater than it, then take the first n elements of the resulting uniform
// permutation. Sampling covers the whole pool, so every entry has the same
// selection probability; there is no overfetch bias toward early rows.
//
// The pool slice is shuffled in place. n must not exceed len(pool).
func samplePrefix(pool []uuid.UUID, n int, randIntN func(int) int) []uuid.UUID {
	for i := len(pool) - 1; i > 0; i-- {
		j := randIntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
