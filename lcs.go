package jsondiff

// LCS returns the longest common subsequence of a and b: the longest run of
// elements found in both, in the same relative order, not necessarily
// contiguous. Background:
// https://en.wikipedia.org/wiki/Longest_common_subsequence_problem
//
// when several subsequences are equally long, backtracking keeps progress on
// a and drops the unmatched element of b first. Runs in O(len(a)*len(b)) time
// & space
func LCS[T comparable](a, b []T) []T {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return nil
	}

	// c[i][j] is the LCS length of a[:i] & b[:j], stored row-major
	width := n + 1
	c := make([]int, (m+1)*width)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				c[i*width+j] = c[(i-1)*width+j-1] + 1
			} else if up, left := c[(i-1)*width+j], c[i*width+j-1]; up > left {
				c[i*width+j] = up
			} else {
				c[i*width+j] = left
			}
		}
	}

	seq := make([]T, c[m*width+n])
	k := len(seq)
	i, j := m, n
	for i > 0 && j > 0 {
		if a[i-1] == b[j-1] {
			k--
			seq[k] = a[i-1]
			i--
			j--
		} else if c[(i-1)*width+j] > c[i*width+j-1] {
			i--
		} else {
			j--
		}
	}
	return seq
}
