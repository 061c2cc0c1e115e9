package reconcile

import (
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// Diff computes a token-level edit script between two texts using a
// longest-common-subsequence alignment over whitespace- and
// punctuation-bounded tokens. Word-level granularity keeps single-bullet
// diffs readable where character diffs are noise and line diffs are too
// coarse. Among minimal alignments, the one with the longest leading
// keep-run wins, anchoring the diff on the sentence opening.
func Diff(original, proposed string) []types.DiffOp {
	a := tokenize(original)
	b := tokenize(proposed)

	// lcs[i][j] = LCS length of a[i:] and b[j:]
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var ops []tokenOp
	i, j := 0, 0

	// Choose the opening keep-run explicitly: among the positions reachable
	// from the front by deletes and inserts alone without losing LCS length,
	// take the one starting the longest run of consecutive minimal keeps.
	// Keeping eagerly from (0,0) instead can anchor on a token that
	// reappears later and cut the opening run short.
	if lcs[0][0] > 0 {
		bi, bj, run := 0, 0, 0
		for ci := 0; ci < len(a); ci++ {
			for cj := 0; cj < len(b); cj++ {
				if lcs[ci][cj] != lcs[0][0] {
					continue
				}
				r := 0
				for ci+r < len(a) && cj+r < len(b) &&
					a[ci+r] == b[cj+r] &&
					lcs[ci+r][cj+r] == lcs[ci+r+1][cj+r+1]+1 {
					r++
				}
				if r > run {
					bi, bj, run = ci, cj, r
				}
			}
		}
		for ; i < bi; i++ {
			ops = append(ops, tokenOp{types.DiffDelete, a[i]})
		}
		for ; j < bj; j++ {
			ops = append(ops, tokenOp{types.DiffInsert, b[j]})
		}
		for r := 0; r < run; r++ {
			ops = append(ops, tokenOp{types.DiffKeep, a[i]})
			i++
			j++
		}
	}

	// Walk the rest of the table front to back, keeping whenever a keep
	// lies on a minimal path, deletes before inserts on interior ties.
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j] && lcs[i][j] == lcs[i+1][j+1]+1:
			ops = append(ops, tokenOp{types.DiffKeep, a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, tokenOp{types.DiffDelete, a[i]})
			i++
		default:
			ops = append(ops, tokenOp{types.DiffInsert, b[j]})
			j++
		}
	}
	for ; i < len(a); i++ {
		ops = append(ops, tokenOp{types.DiffDelete, a[i]})
	}
	for ; j < len(b); j++ {
		ops = append(ops, tokenOp{types.DiffInsert, b[j]})
	}

	return coalesce(ops)
}

type tokenOp struct {
	op    string
	token string
}

// tokenize splits text on whitespace, then peels trailing sentence
// punctuation into standalone tokens so "engineers," and "engineers"
// align as a keep instead of a delete plus insert. Interior punctuation
// ("2.5", "ci/cd") is left alone.
func tokenize(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(text) {
		var trailing []string
		for len(field) > 1 && isBoundary(field[len(field)-1]) {
			trailing = append([]string{string(field[len(field)-1])}, trailing...)
			field = field[:len(field)-1]
		}
		tokens = append(tokens, field)
		tokens = append(tokens, trailing...)
	}
	return tokens
}

func isBoundary(c byte) bool {
	switch c {
	case ',', '.', ';', ':', '!', '?':
		return true
	}
	return false
}

// coalesce merges consecutive operations of the same kind into spans.
// Punctuation tokens reattach without a leading space.
func coalesce(ops []tokenOp) []types.DiffOp {
	var spans []types.DiffOp
	for _, op := range ops {
		if n := len(spans); n > 0 && spans[n-1].Op == op.op {
			spans[n-1].Span = appendToken(spans[n-1].Span, op.token)
			continue
		}
		spans = append(spans, types.DiffOp{Op: op.op, Span: op.token})
	}
	return spans
}

func appendToken(span, token string) string {
	if len(token) == 1 && isBoundary(token[0]) {
		return span + token
	}
	return span + " " + token
}
