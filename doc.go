// Package jsondiff compares two JSON documents two ways: as lines of text,
// and as trees of values.
//
// Line diffs (ComputeLineDiffs) classify each line of either side as added,
// removed, or changed. Lines are aligned with a longest common subsequence
// (see LCS), which costs O(m*n) time & space, so texts longer than
// LargeFileThreshold lines fall back to comparing line i with line i. That
// fallback is linear but can't re-align after an insertion or deletion.
// Consecutive unmatched lines on both sides are paired up as changes rather
// than reported as a removal followed by an addition.
//
// Structural diffs (ComputeDeepDiff, DiffJSON) walk two parsed documents in
// step, producing a Diffs map keyed by path, eg: users[0].name. Values of
// different kinds at the same path are a single change; arrays are compared
// element by element by index, objects member by member by key. Every
// non-root container above a difference gets a value-less "changed" marker
// so a renderer can show where changes live without re-walking the tree.
//
// Instead of operating on the go types produced by encoding/json, jsondiff
// parses documents into its own Value types, which remember the order of
// object members:
//
//	Null, Bool, Number, String, Array, *Object
//
// Diffs can be rendered for a terminal (FormatPretty, FormatLineDiffs),
// narrowed with an expression (Filter), or turned into an RFC 6902 JSON Patch
// (JSONPatch, Patch).
//
// Every function in this package is pure: nothing is shared between calls, so
// any number of diffs can run concurrently. Callers that diff as a user types
// should debounce their calls.
package jsondiff
