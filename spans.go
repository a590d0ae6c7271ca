package jsondiff

import "github.com/sergi/go-diff/diffmatchpatch"

// Span is a run of characters within one line, flagged when it doesn't
// appear on the other side
type Span struct {
	Text    string `json:"text"`
	Changed bool   `json:"changed,omitempty"`
}

// IntraLineSpans splits a pair of changed lines into spans showing which
// characters differ. Concatenating the Text of leftSpans yields a, and
// likewise rightSpans yields b
func IntraLineSpans(a, b string) (leftSpans, rightSpans []Span) {
	switch {
	case a == "" && b == "":
		return nil, nil
	case a == "":
		return nil, []Span{{Text: b, Changed: true}}
	case b == "":
		return []Span{{Text: a, Changed: true}}, nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))
	return sideSpans(diffs, diffmatchpatch.DiffDelete), sideSpans(diffs, diffmatchpatch.DiffInsert)
}

// sideSpans keeps the equal runs & the runs of op, merging neighbours that
// share a Changed flag
func sideSpans(diffs []diffmatchpatch.Diff, op diffmatchpatch.Operation) []Span {
	var spans []Span
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual && d.Type != op {
			continue
		}
		changed := d.Type == op
		if n := len(spans); n > 0 && spans[n-1].Changed == changed {
			spans[n-1].Text += d.Text
			continue
		}
		spans = append(spans, Span{Text: d.Text, Changed: changed})
	}
	return spans
}
