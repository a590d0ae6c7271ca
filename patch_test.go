package jsondiff

import (
	"testing"
)

type PatchTestCase struct {
	description string
	src, dst    string
}

func TestPatch(t *testing.T) {
	cases := []PatchTestCase{
		{"update bool", `[true]`, `[false]`},
		{"update number", `[1]`, `[2]`},
		{"update nested number", `{"a":[1]}`, `{"a":[2]}`},
		{"update string", `["before"]`, `["after"]`},
		{"insert number to end of array", `[]`, `[1]`},
		{"insert false into object", `{}`, `{"a":false}`},
		{"delete from end of array", `["a","b","c"]`, `["a","b"]`},
		{"delete from array", `["a","b","c"]`, `["a","c"]`},
		{"delete many from array", `[1,2,3,4]`, `[1]`},
		{"delete from object", `{"a":false}`, `{}`},
		{"delete from nested object", `{"a":[{"b":false}]}`, `{"a":[{}]}`},
		{"insert, update, then delete", `{"a":true,"b":2}`, `{"a":false,"c":3}`},
		{"remove scalar from array in object", `{"a":[false,"yep"],"b":true}`, `{"a":["yep"],"b":true}`},
		{"replace with null", `{"a":{"b":1}}`, `{"a":null}`},
		{"replace root", `{"a":1}`, `[1,2]`},
		{"grow nested arrays", `[[1],[]]`, `[[1,2,3],[4,5]]`},
		{"shrink & change", `{"a":[1,2,3],"b":"x"}`, `{"a":[9],"b":"y"}`},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			diffs, err := DiffJSON([]byte(c.src), []byte(c.dst))
			if err != nil {
				t.Fatal(err)
			}
			patched, err := Patch([]byte(c.src), diffs)
			if err != nil {
				t.Fatalf("patch error: %s", err)
			}
			got, err := ParseJSON(patched)
			if err != nil {
				t.Fatalf("parsing patched result %q: %s", patched, err)
			}
			if !Equal(MustParseJSON(c.dst), got) {
				t.Errorf("result mismatch")
				t.Log("got   :", string(patched))
				t.Log("expect:", c.dst)
			}
		})
	}
}

func TestJSONPatch(t *testing.T) {
	cases := []struct {
		description string
		src, dst    string
		expect      string
	}{
		{
			"replace & add",
			`{"a":1,"b":{"c":2}}`,
			`{"a":1,"b":{"c":3},"d":4}`,
			`[{"op":"replace","path":"/b/c","value":3},{"op":"add","path":"/d","value":4}]`,
		},
		{
			"removals run from the highest index",
			`[1,2,3,4]`,
			`[1]`,
			`[{"op":"remove","path":"/3"},{"op":"remove","path":"/2"},{"op":"remove","path":"/1"}]`,
		},
		{
			"additions run from the lowest index",
			`{"a":[]}`,
			`{"a":[true,null]}`,
			`[{"op":"add","path":"/a/0","value":true},{"op":"add","path":"/a/1","value":null}]`,
		},
		{
			"keys are escaped",
			`{"a/b":{"~":1}}`,
			`{"a/b":{"~":2}}`,
			`[{"op":"replace","path":"/a~1b/~0","value":2}]`,
		},
		{
			"root replacement",
			`1`,
			`"one"`,
			`[{"op":"replace","path":"","value":"one"}]`,
		},
		{
			"no change",
			`{"a":1}`,
			`{"a":1}`,
			`[]`,
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			diffs, err := DiffJSON([]byte(c.src), []byte(c.dst))
			if err != nil {
				t.Fatal(err)
			}
			got, err := JSONPatch(diffs)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != c.expect {
				t.Errorf("patch mismatch.\nwant: %s\ngot:  %s", c.expect, got)
			}
		})
	}
}

func TestPatchErrors(t *testing.T) {
	diffs, err := DiffJSON([]byte(`{"b":{"c":2}}`), []byte(`{"b":{"c":3}}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Patch([]byte(`{}`), diffs); err == nil {
		t.Error("expected error patching a document missing the changed path")
	}

	bad := Diffs{"a": {Path: "a", Type: ChangeType("moved"), NewValue: Number(1), addrs: []Addr{StringAddr("a")}}}
	if _, err := JSONPatch(bad); err == nil {
		t.Error("expected error for unknown change type")
	}
}

func TestPatchNoDiffs(t *testing.T) {
	got, err := Patch([]byte("  {\"a\": 1}\n"), Diffs{})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"a": 1}` {
		t.Errorf("expected input to be returned unchanged, got: %s", got)
	}
}
