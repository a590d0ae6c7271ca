package jsondiff

// Stats holds statistical metadata about a diff
type Stats struct {
	Left  int `json:"left" yaml:"left"`   // count of lines (or nodes) in the left input
	Right int `json:"right" yaml:"right"` // count of lines (or nodes) in the right input

	Added   int `json:"added,omitempty" yaml:"added,omitempty"`     // number of lines (or nodes) added
	Removed int `json:"removed,omitempty" yaml:"removed,omitempty"` // number of lines (or nodes) removed
	Changed int `json:"changed,omitempty" yaml:"changed,omitempty"` // number of lines (or leaf nodes) changed

	Algorithm Algorithm `json:"algorithm,omitempty" yaml:"algorithm,omitempty"` // the strategy that produced the diff
}

// NodeChange returns a count of the shift between left & right inputs
func (s Stats) NodeChange() int {
	return s.Right - s.Left
}

// Differs reports whether the diff found anything at all
func (s Stats) Differs() bool {
	return s.Added+s.Removed+s.Changed > 0
}

// LineStats summarizes a line diff. Additions are counted on the right side,
// removals & changes on the left, so a changed pair counts once
func LineStats(leftDiffs, rightDiffs []LineDiff) Stats {
	st := Stats{}
	for _, d := range rightDiffs {
		if d.Type == Added {
			st.Added++
		}
	}
	for _, d := range leftDiffs {
		switch d.Type {
		case Removed:
			st.Removed++
		case Changed:
			st.Changed++
		}
	}
	return st
}
