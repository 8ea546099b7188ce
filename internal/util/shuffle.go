package util

import "math/rand"

// Shuffle returns a uniformly random permutation of items using the
// Fisher-Yates algorithm. The input slice is never modified; callers keep
// their original ordering. Empty and single-element inputs come back as an
// equivalent copy.
func Shuffle[T any](r *rand.Rand, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
