package jsondiff

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b   Value
		expect bool
	}{
		{nil, nil, true},
		{nil, Null{}, false},
		{Null{}, Null{}, true},
		{Bool(true), Bool(true), true},
		{Bool(true), Bool(false), false},
		{Number(1), Number(1.0), true},
		{Number(0), Bool(false), false},
		{Number(math.NaN()), Number(math.NaN()), false},
		{String("a"), String("a"), true},
		{String("1"), Number(1), false},
		{Array{}, Array(nil), true},
		{Array{Number(1)}, Array{Number(1), Number(2)}, false},
		{Array{Number(1), Number(2)}, Array{Number(2), Number(1)}, false},
		{NewObject(), NewObject(), true},
		{
			NewObject(Member{"a", Number(1)}, Member{"b", Null{}}),
			NewObject(Member{"b", Null{}}, Member{"a", Number(1)}),
			true,
		},
		{
			NewObject(Member{"a", Number(1)}),
			NewObject(Member{"a", Number(1)}, Member{"b", Null{}}),
			false,
		},
		{
			NewObject(Member{"a", Array{String("x")}}),
			NewObject(Member{"a", Array{String("y")}}),
			false,
		},
	}

	for i, c := range cases {
		if got := Equal(c.a, c.b); got != c.expect {
			t.Errorf("case %d: Equal(%v, %v) want: %t got: %t", i, c.a, c.b, c.expect, got)
		}
		if got := Equal(c.b, c.a); got != c.expect {
			t.Errorf("case %d: Equal isn't symmetric", i)
		}
	}
}

func TestObjectOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("z", Number(1))
	obj.Set("a", Number(2))
	obj.Set("z", Number(3))

	if diff := cmp.Diff([]string{"z", "a"}, obj.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
	if v, ok := obj.Get("z"); !ok || v != Number(3) {
		t.Errorf("expected z to be overwritten with 3, got: %v", v)
	}
	if obj.Has("b") {
		t.Error("unexpected key b")
	}
	if got := obj.String(); got != `{"z":3,"a":2}` {
		t.Errorf("string mismatch. want: %s got: %s", `{"z":3,"a":2}`, got)
	}

	var empty *Object
	if empty.Len() != 0 || len(empty.Keys()) != 0 {
		t.Error("expected nil object to be empty")
	}
}

func TestFromInterface(t *testing.T) {
	var in interface{}
	if err := json.Unmarshal([]byte(`{"b":[1,"two",null,true],"a":{"c":1.5}}`), &in); err != nil {
		t.Fatal(err)
	}

	got, err := FromInterface(in)
	if err != nil {
		t.Fatal(err)
	}
	expect := MustParseJSON(`{"a":{"c":1.5},"b":[1,"two",null,true]}`)
	if !Equal(expect, got) {
		t.Errorf("value mismatch. want: %v got: %v", expect, got)
	}
	// keys are sorted
	if diff := cmp.Diff([]string{"a", "b"}, got.(*Object).Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(in, ToInterface(got)); diff != "" {
		t.Errorf("ToInterface mismatch (-want +got):\n%s", diff)
	}

	ints := map[string]interface{}{"a": 1, "b": int64(2), "c": json.Number("3.5")}
	got, err = FromInterface(ints)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(MustParseJSON(`{"a":1,"b":2,"c":3.5}`), got) {
		t.Errorf("unexpected conversion of integers: %v", got)
	}

	if _, err := FromInterface(struct{}{}); err == nil {
		t.Error("expected error converting a struct")
	}
	if _, err := FromInterface([]interface{}{make(chan int)}); err == nil {
		t.Error("expected error converting a nested channel")
	}
}

func TestValueMarshalJSON(t *testing.T) {
	cases := []struct {
		in     Value
		expect string
	}{
		{Null{}, `null`},
		{Bool(false), `false`},
		{Number(1e6), `1000000`},
		{Number(-0.25), `-0.25`},
		{String("a\"b"), `"a\"b"`},
		{Array(nil), `[]`},
		{Array{Null{}, Array{}}, `[null,[]]`},
		{NewObject(Member{"b", Number(1)}, Member{"a", NewObject()}), `{"b":1,"a":{}}`},
	}

	for _, c := range cases {
		data, err := json.Marshal(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != c.expect {
			t.Errorf("want: %s got: %s", c.expect, data)
		}
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindNull:   "null",
		KindBool:   "bool",
		KindNumber: "number",
		KindString: "string",
		KindArray:  "array",
		KindObject: "object",
	}
	for k, expect := range kinds {
		if got := k.String(); got != expect {
			t.Errorf("want: %s got: %s", expect, got)
		}
	}
}

func TestCountNodes(t *testing.T) {
	if got := countNodes(MustParseJSON(`{"a":[1,2,{"b":null}],"c":"d"}`)); got != 7 {
		t.Errorf("expected 7 nodes, got %d", got)
	}
	if got := countNodes(nil); got != 0 {
		t.Errorf("expected 0 nodes for nil, got %d", got)
	}
}
