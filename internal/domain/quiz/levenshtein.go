package quiz

// Levenshtein returns the minimum number of single-rune insertions,
// deletions and substitutions that turn a into b.
//
// It fills the complete (|a|+1)×(|b|+1) table where cell [i][j] holds the
// distance between the first i runes of a and the first j runes of b, with
// [i][0] = i and [0][j] = j. Time and space are both O(|a|·|b|).
func Levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)

	matrix := make([][]int, len(ar)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(br)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(br); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ar); i++ {
		for j := 1; j <= len(br); j++ {
			if ar[i-1] == br[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}
			matrix[i][j] = 1 + min(
				matrix[i-1][j-1], // substitution
				matrix[i][j-1],   // insertion
				matrix[i-1][j],   // deletion
			)
		}
	}

	return matrix[len(ar)][len(br)]
}
