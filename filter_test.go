package jsondiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilter(t *testing.T) {
	diffs, err := DiffJSON(
		[]byte(`{"users":[{"name":"a","age":30}],"version":1,"gone":true}`),
		[]byte(`{"users":[{"name":"b","age":31}],"version":2,"new":{"x":1}}`),
	)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		description string
		expression  string
		expect      []string
	}{
		{"everything", `true`, []string{"gone", "new", "users", "users[0]", "users[0].age", "users[0].name", "version"}},
		{"nothing", `false`, nil},
		{"by change type", `change == "added"`, []string{"new"}},
		{"drop markers", `!marker`, []string{"gone", "new", "users[0].age", "users[0].name", "version"}},
		{"by path prefix", `path startsWith "users"`, []string{"users", "users[0]", "users[0].age", "users[0].name"}},
		{"by depth", `depth == 1 && !marker`, []string{"gone", "new", "version"}},
		{"by new value", `new == 2`, []string{"version"}},
		{"by old value", `old == true`, []string{"gone"}},
		{"numeric comparison", `change == "changed" && !marker && path endsWith "age" && new > old`, []string{"users[0].age"}},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			got, err := Filter(diffs, c.expression)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.expect, got.Paths()); diff != "" && !(len(c.expect) == 0 && len(got) == 0) {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterDynamicValues(t *testing.T) {
	cases := []struct {
		description string
		left, right string
		expression  string
		expect      []string
	}{
		{"ordered comparison", `{"a":1,"b":5}`, `{"a":3,"b":1}`, `new > 2`, []string{"a"}},
		{"comparison against old", `{"a":1,"b":5}`, `{"a":3,"b":1}`, `old >= 5`, []string{"b"}},
		{"member access", `{"x":0}`, `{"x":0,"o":{"k":"w"},"p":{"k":"z"}}`, `new.k == "w"`, []string{"o"}},
		{"index access", `{"x":0}`, `{"x":0,"o":[1,2],"p":[3]}`, `len(new) == 2 && new[1] == 2`, []string{"o"}},
		{"guarded comparison", `{"a":1,"b":5}`, `{"a":4}`, `new != nil && new > 2`, []string{"a"}},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			diffs := ComputeDeepDiff(MustParseJSON(c.left), MustParseJSON(c.right))
			got, err := Filter(diffs, c.expression)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.expect, got.Paths()); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// absent values can't be compared
	diffs := ComputeDeepDiff(MustParseJSON(`{"a":1}`), MustParseJSON(`{}`))
	if _, err := Filter(diffs, `new > 2`); err == nil {
		t.Error("expected evaluation error comparing an absent value")
	}
}

func TestFilterErrors(t *testing.T) {
	diffs := ComputeDeepDiff(MustParseJSON(`{"a":1}`), MustParseJSON(`{"a":2}`))

	if _, err := Filter(diffs, `path +`); err == nil {
		t.Error("expected syntax error")
	}
	if _, err := Filter(diffs, `path`); err == nil {
		t.Error("expected error for non-boolean expression")
	}
	if _, err := Filter(diffs, `unknownVar == 1`); err == nil {
		t.Error("expected error for unknown variable")
	}
}
