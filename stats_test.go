package jsondiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalcStats(t *testing.T) {
	aJSON := []byte(`{"a": 100,"foo": [1,2,3],"bar": false,"baz": {"a": {"b": 4,"c": false,"d": "apples-and-oranges"},"e": null,"g": "apples-and-oranges"}}`)
	bJSON := []byte(`{"a": 99,"foo": [1,2,3],"bar": false,"baz": {"a": {"b": 5,"c": false,"d": "apples-and-oranges"},"e": "thirty-thousand-something-dogecoin","f": {"a" : false, "b": true}}}`)

	expect := &Stats{
		Left:      14,
		Right:     16,
		Added:     1,
		Removed:   1,
		Changed:   3,
		Algorithm: AlgTree,
	}
	stats := &Stats{}
	if _, err := DiffJSON(aJSON, bJSON, OptionSetStats(stats)); err != nil {
		t.Fatal(err)
	}

	if expect.NodeChange() != stats.NodeChange() {
		t.Errorf("wrong node change. want: %d. got: %d", expect.NodeChange(), stats.NodeChange())
	}
	if diff := cmp.Diff(expect, stats); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
	if !stats.Differs() {
		t.Error("expected stats to report a difference")
	}
}

func TestLineStats(t *testing.T) {
	left := []LineDiff{{1, Removed}, {3, Changed}, {4, Changed}}
	right := []LineDiff{{2, Changed}, {3, Changed}, {5, Added}, {6, Added}}

	expect := Stats{Added: 2, Removed: 1, Changed: 2}
	if diff := cmp.Diff(expect, LineStats(left, right)); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
	if (Stats{}).Differs() {
		t.Error("expected empty stats to report no difference")
	}
}
