package jsondiff

import (
	"fmt"
	"os"
)

func ExampleComputeLineDiffs() {
	left := "{\n  \"a\": 1,\n  \"b\": 2\n}"
	right := "{\n  \"a\": 1,\n  \"b\": 3,\n  \"c\": 4\n}"

	leftDiffs, rightDiffs := ComputeLineDiffs(left, right)
	fmt.Println(leftDiffs)
	fmt.Println(rightDiffs)
	// Output:
	// [{3 changed}]
	// [{3 changed} {4 added}]
}

func ExampleFormatPretty() {
	// start with two slightly different json documents
	aJSON := []byte(`{
		"a": 100,
		"foo": [1,2,3],
		"bar": false,
		"baz": {
			"a": {
				"b": 4,
				"c": false,
				"d": "apples-and-oranges"
			},
			"e": null,
			"g": "apples-and-oranges"
		}
	}`)

	bJSON := []byte(`{
		"a": 99,
		"foo": [1,2,3],
		"bar": false,
		"baz": {
			"a": {
				"b": 5,
				"c": false,
				"d": "apples-and-oranges"
			},
			"e": "thirty-thousand-something-dogecoin",
			"f": false
		}
	}`)

	diffs, err := DiffJSON(aJSON, bJSON)
	if err != nil {
		panic(err)
	}

	// Format the changes for terminal output
	if err := FormatPretty(os.Stdout, diffs, false); err != nil {
		panic(err)
	}
	// Output:
	// ~ a: 100 -> 99
	// ~ baz
	// ~ baz.a
	// ~ baz.a.b: 4 -> 5
	// ~ baz.e: null -> "thirty-thousand-something-dogecoin"
	// + baz.f: false
	// - baz.g: "apples-and-oranges"
}

func ExampleFilter() {
	diffs, err := DiffJSON(
		[]byte(`{"users":[{"name":"ada","age":36}],"count":1}`),
		[]byte(`{"users":[{"name":"ada","age":37},{"name":"bob","age":20}],"count":2}`),
	)
	if err != nil {
		panic(err)
	}

	added, err := Filter(diffs, `change == "added"`)
	if err != nil {
		panic(err)
	}
	for _, d := range added.Sorted() {
		fmt.Println(d.Path, formatValue(d.NewValue))
	}
	// Output:
	// users[1] {"name":"bob","age":20}
}

func ExampleJSONPatch() {
	diffs, err := DiffJSON([]byte(`{"tags":["a","b","c"],"v":1}`), []byte(`{"tags":["a"],"v":2}`))
	if err != nil {
		panic(err)
	}

	patch, err := JSONPatch(diffs)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(patch))
	// Output:
	// [{"op":"replace","path":"/v","value":2},{"op":"remove","path":"/tags/2"},{"op":"remove","path":"/tags/1"}]
}
