package jsondiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	jsonpatch "github.com/evanphx/json-patch"
)

// patchOp is a single RFC 6902 operation
type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value Value  `json:"value,omitempty"`
}

// JSONPatch renders diffs as an RFC 6902 JSON Patch document that turns the
// left-hand value into the right-hand one. Paths are JSON pointers relative
// to the compared values; the base path of the comparison isn't included.
// Ancestor markers produce no operations
//
// Operation order matters for arrays: replacements come first, then removals
// from the highest index down, then additions from the lowest index up
func JSONPatch(diffs Diffs) ([]byte, error) {
	var replaces, removes, adds []*NodeDiff
	for _, d := range diffs {
		switch {
		case d.IsMarker():
		case d.Type == Changed:
			replaces = append(replaces, d)
		case d.Type == Removed:
			removes = append(removes, d)
		case d.Type == Added:
			adds = append(adds, d)
		default:
			return nil, fmt.Errorf("unknown change type %q at path %s", d.Type, d.Path)
		}
	}

	ascending := func(list []*NodeDiff) func(i, j int) bool {
		return func(i, j int) bool { return compareAddrs(list[i].addrs, list[j].addrs) < 0 }
	}
	sort.Slice(replaces, ascending(replaces))
	sort.Slice(removes, func(i, j int) bool { return compareAddrs(removes[i].addrs, removes[j].addrs) > 0 })
	sort.Slice(adds, ascending(adds))

	ops := make([]patchOp, 0, len(replaces)+len(removes)+len(adds))
	for _, d := range replaces {
		ops = append(ops, patchOp{Op: "replace", Path: Pointer(d.addrs), Value: d.NewValue})
	}
	for _, d := range removes {
		ops = append(ops, patchOp{Op: "remove", Path: Pointer(d.addrs)})
	}
	for _, d := range adds {
		ops = append(ops, patchOp{Op: "add", Path: Pointer(d.addrs), Value: d.NewValue})
	}
	return json.Marshal(ops)
}

// Patch applies diffs to the JSON document doc, which should be the encoded
// left-hand value the diffs were computed from. Object keys in the result
// may be reordered
func Patch(doc []byte, diffs Diffs) ([]byte, error) {
	doc = bytes.TrimSpace(doc)
	if len(diffs) == 0 {
		return doc, nil
	}

	// a change to the whole document replaces it outright
	for _, d := range diffs {
		if len(d.addrs) == 0 && !d.IsMarker() {
			return json.Marshal(d.NewValue)
		}
	}

	if len(doc) == 0 {
		return nil, fmt.Errorf("can't patch an empty document")
	}
	ops, err := JSONPatch(diffs)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	out, err := p.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return out, nil
}
