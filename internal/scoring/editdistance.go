// Package scoring computes the compatibility score between a document and
// an extracted requirement set.
package scoring

// editDistance returns the Levenshtein distance between two strings,
// bailing out early with max+1 when the distance is guaranteed to exceed
// max. Operates on bytes; tokens are already lowercase ASCII-normalized.
func editDistance(a, b string, max int) int {
	if a == b {
		return 0
	}
	if diff := len(a) - len(b); diff > max || -diff > max {
		return max + 1
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		if rowMin > max {
			return max + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
