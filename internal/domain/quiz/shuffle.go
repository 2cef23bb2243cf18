package quiz

// Shuffle returns a uniformly random permutation of seq as a new slice.
// It walks from the last index down to 1 and swaps each position with an
// index drawn from [0, i] (Fisher–Yates). seq itself is never modified.
func Shuffle[T any](rng Rand, seq []T) []T {
	shuffled := make([]T, len(seq))
	copy(shuffled, seq)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// takeRandom returns up to n elements of seq drawn without replacement.
func takeRandom[T any](rng Rand, seq []T, n int) []T {
	if n <= 0 || len(seq) == 0 {
		return []T{}
	}
	return Shuffle(rng, seq)[:min(n, len(seq))]
}
