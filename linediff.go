package jsondiff

import "strings"

// ChangeType classifies a line or a node that differs between two inputs
type ChangeType string

const (
	// Added marks content only present on the right (new) side
	Added = ChangeType("added")
	// Removed marks content only present on the left (old) side
	Removed = ChangeType("removed")
	// Changed marks content present on both sides with different values
	Changed = ChangeType("changed")
)

// Algorithm names the strategy a line diff used
type Algorithm string

const (
	// AlgLCS aligns lines with a longest common subsequence
	AlgLCS = Algorithm("lcs")
	// AlgPositional compares line i with line i, without realignment
	AlgPositional = Algorithm("positional")
)

// LineDiff classifies one line of one side of a line diff. LineNumber is
// 1-based & counts lines of that side only. Lines without a LineDiff are
// unchanged
type LineDiff struct {
	LineNumber int        `json:"lineNumber" yaml:"lineNumber"`
	Type       ChangeType `json:"type" yaml:"type"`
}

// SplitLines breaks text on "\n". The empty string is a single empty line,
// and a trailing newline produces a final empty line
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// ComputeLineDiffs compares two texts line by line, returning the changed
// lines of each side in ascending line order.
//
// Texts with up to Config.LargeFileThreshold lines on both sides are aligned
// with LCS. Larger texts are compared positionally, which is linear but
// can't re-align after an insertion or deletion shifts lines. Use
// OptionMaxLines to ignore everything after the first n lines
func ComputeLineDiffs(left, right string, opts ...Option) (leftDiffs, rightDiffs []LineDiff) {
	cfg := newConfig(opts)

	leftLines := SplitLines(left)
	rightLines := SplitLines(right)
	if cfg.MaxLines > 0 {
		if len(leftLines) > cfg.MaxLines {
			leftLines = leftLines[:cfg.MaxLines]
		}
		if len(rightLines) > cfg.MaxLines {
			rightLines = rightLines[:cfg.MaxLines]
		}
	}

	alg := AlgLCS
	if len(leftLines) > cfg.LargeFileThreshold || len(rightLines) > cfg.LargeFileThreshold {
		alg = AlgPositional
		leftDiffs, rightDiffs = positionalDiff(leftLines, rightLines)
	} else {
		leftDiffs, rightDiffs = lcsDiff(leftLines, rightLines)
	}

	if cfg.Stats != nil {
		*cfg.Stats = LineStats(leftDiffs, rightDiffs)
		cfg.Stats.Left = len(leftLines)
		cfg.Stats.Right = len(rightLines)
		cfg.Stats.Algorithm = alg
	}
	return leftDiffs, rightDiffs
}

// lcsDiff walks both sides alongside their common subsequence. Lines that
// fall outside the subsequence on both sides at once are paired as changes
// rather than reported as a removal plus an addition
func lcsDiff(left, right []string) (leftDiffs, rightDiffs []LineDiff) {
	common := LCS(left, right)
	l, r, c := 0, 0, 0

	for l < len(left) || r < len(right) {
		switch {
		case c < len(common) && l < len(left) && left[l] == common[c]:
			if r < len(right) && right[r] == common[c] {
				l++
				r++
				c++
			} else {
				rightDiffs = append(rightDiffs, LineDiff{LineNumber: r + 1, Type: Added})
				r++
			}
		case c < len(common) && r < len(right) && right[r] == common[c]:
			leftDiffs = append(leftDiffs, LineDiff{LineNumber: l + 1, Type: Removed})
			l++
		case l < len(left) && r < len(right):
			leftDiffs = append(leftDiffs, LineDiff{LineNumber: l + 1, Type: Changed})
			rightDiffs = append(rightDiffs, LineDiff{LineNumber: r + 1, Type: Changed})
			l++
			r++
		case l < len(left):
			leftDiffs = append(leftDiffs, LineDiff{LineNumber: l + 1, Type: Removed})
			l++
		default:
			rightDiffs = append(rightDiffs, LineDiff{LineNumber: r + 1, Type: Added})
			r++
		}
	}
	return leftDiffs, rightDiffs
}

// positionalDiff compares line i of each side with no re-alignment
func positionalDiff(left, right []string) (leftDiffs, rightDiffs []LineDiff) {
	max := len(left)
	if len(right) > max {
		max = len(right)
	}

	for i := 0; i < max; i++ {
		switch {
		case i >= len(left):
			rightDiffs = append(rightDiffs, LineDiff{LineNumber: i + 1, Type: Added})
		case i >= len(right):
			leftDiffs = append(leftDiffs, LineDiff{LineNumber: i + 1, Type: Removed})
		case left[i] != right[i]:
			leftDiffs = append(leftDiffs, LineDiff{LineNumber: i + 1, Type: Changed})
			rightDiffs = append(rightDiffs, LineDiff{LineNumber: i + 1, Type: Changed})
		}
	}
	return leftDiffs, rightDiffs
}

// EqualLineDiffs reports whether two line diff lists are identical
func EqualLineDiffs(a, b []LineDiff) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
