package jsondiff

import "sort"

// AlgTree is the Algorithm reported in Stats by structural diffs
const AlgTree = Algorithm("tree")

// NodeDiff describes how the value at one path differs between two trees
type NodeDiff struct {
	// Path locates the value: dot-separated object keys & bracketed array
	// indices, eg: users[0].name. Differences at the root of an unprefixed
	// comparison use RootPath
	Path string `json:"path"`
	// the type of change
	Type ChangeType `json:"type"`
	// OldValue is the left-hand value, present for removed & changed values
	OldValue Value `json:"oldValue,omitempty"`
	// NewValue is the right-hand value, present for added & changed values
	NewValue Value `json:"newValue,omitempty"`

	addrs []Addr
}

// Addrs returns the steps from the compared root to this node. The base path
// of the comparison (if any) isn't included
func (d *NodeDiff) Addrs() []Addr { return d.addrs }

// IsMarker reports whether d only records that something beneath it changed
func (d *NodeDiff) IsMarker() bool {
	return d.Type == Changed && d.OldValue == nil && d.NewValue == nil
}

// Diffs maps paths to differences. Unchanged values have no entry
type Diffs map[string]*NodeDiff

// Paths lists every path in document order: keys alphabetically, indices
// numerically, parents before children
func (ds Diffs) Paths() []string {
	sorted := ds.Sorted()
	paths := make([]string, len(sorted))
	for i, d := range sorted {
		paths[i] = d.Path
	}
	return paths
}

// Sorted lists entries in the order of Paths
func (ds Diffs) Sorted() []*NodeDiff {
	list := make([]*NodeDiff, 0, len(ds))
	for _, d := range ds {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool {
		if c := compareAddrs(list[i].addrs, list[j].addrs); c != 0 {
			return c < 0
		}
		return list[i].Path < list[j].Path
	})
	return list
}

func compareAddrs(a, b []Addr) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch x := a[i].(type) {
		case IndexAddr:
			y, ok := b[i].(IndexAddr)
			if !ok {
				return -1
			}
			if x != y {
				if x < y {
					return -1
				}
				return 1
			}
		case StringAddr:
			y, ok := b[i].(StringAddr)
			if !ok {
				return 1
			}
			if x != y {
				if x < y {
					return -1
				}
				return 1
			}
		}
	}
	return len(a) - len(b)
}

// ComputeDeepDiff compares two JSON trees, returning an entry for every
// differing leaf and for every container above one.
//
// Values of different kinds at a path produce a single Changed entry holding
// both values whole, nothing beneath that path is compared. Array elements
// are compared by index, elements past the end of the shorter array are
// Added or Removed. Object members are compared by key.
//
// Every non-empty ancestor path of a recorded difference is given a Changed
// entry with no values unless the path already has an entry. The empty
// root path is never given one.
//
// Trees are walked with an explicit stack, so deeply nested input can't
// exhaust the goroutine stack
func ComputeDeepDiff(left, right Value, opts ...Option) Diffs {
	cfg := newConfig(opts)
	d := &differ{diffs: Diffs{}}
	d.walk(left, right, cfg.BasePath)

	if cfg.Stats != nil {
		st := Stats{
			Left:      countNodes(left),
			Right:     countNodes(right),
			Algorithm: AlgTree,
		}
		for _, nd := range d.diffs {
			switch {
			case nd.IsMarker():
			case nd.Type == Added:
				st.Added++
			case nd.Type == Removed:
				st.Removed++
			case nd.Type == Changed:
				st.Changed++
			}
		}
		*cfg.Stats = st
	}
	return d.diffs
}

// frame is a pair of values waiting to be compared
type frame struct {
	left, right Value
	path        string
	addrs       []Addr
	parent      *frame
}

// differ accumulates the results of a single ComputeDeepDiff call
type differ struct {
	diffs Diffs
}

func (d *differ) walk(left, right Value, basePath string) {
	stack := []*frame{{left: left, right: right, path: basePath}}
	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		children := d.compare(f)
		// push in reverse so children are visited in order
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// compare records differences found directly at f, returning child pairs
// that still need comparing
func (d *differ) compare(f *frame) (children []*frame) {
	if kindOf(f.left) != kindOf(f.right) {
		d.record(f.parent, f.path, f.addrs, Changed, f.left, f.right)
		return nil
	}

	switch l := f.left.(type) {
	case Array:
		r := f.right.(Array)
		max := len(l)
		if len(r) > max {
			max = len(r)
		}
		for i := 0; i < max; i++ {
			addr := IndexAddr(i)
			path := joinPath(f.path, addr)
			addrs := appendAddr(f.addrs, addr)
			switch {
			case i >= len(l):
				d.record(f, path, addrs, Added, nil, r[i])
			case i >= len(r):
				d.record(f, path, addrs, Removed, l[i], nil)
			default:
				children = append(children, &frame{left: l[i], right: r[i], path: path, addrs: addrs, parent: f})
			}
		}
	case *Object:
		r := f.right.(*Object)
		for _, key := range unionKeys(l, r) {
			addr := StringAddr(key)
			path := joinPath(f.path, addr)
			addrs := appendAddr(f.addrs, addr)
			lv, inLeft := l.Get(key)
			rv, inRight := r.Get(key)
			switch {
			case !inLeft:
				d.record(f, path, addrs, Added, nil, rv)
			case !inRight:
				d.record(f, path, addrs, Removed, lv, nil)
			default:
				children = append(children, &frame{left: lv, right: rv, path: path, addrs: addrs, parent: f})
			}
		}
	default:
		if !Equal(nullIfNil(f.left), nullIfNil(f.right)) {
			d.record(f.parent, f.path, f.addrs, Changed, f.left, f.right)
		}
	}
	return children
}

// record sets the entry at path, then marks the frames above it as changed
func (d *differ) record(owner *frame, path string, addrs []Addr, typ ChangeType, oldVal, newVal Value) {
	if path == "" {
		path = RootPath
	}
	d.diffs[path] = &NodeDiff{Path: path, Type: typ, OldValue: oldVal, NewValue: newVal, addrs: addrs}

	for f := owner; f != nil && f.path != ""; f = f.parent {
		// keys containing "." can make distinct nodes share a path, so an
		// existing entry doesn't mean the ancestors above it are marked
		if _, ok := d.diffs[f.path]; ok {
			continue
		}
		d.diffs[f.path] = &NodeDiff{Path: f.path, Type: Changed, addrs: f.addrs}
	}
}

func kindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

func nullIfNil(v Value) Value {
	if v == nil {
		return Null{}
	}
	return v
}

// unionKeys lists keys of l in order, followed by keys only in r
func unionKeys(l, r *Object) []string {
	keys := make([]string, 0, l.Len()+r.Len())
	keys = append(keys, l.Keys()...)
	for _, k := range r.Keys() {
		if !l.Has(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// appendAddr returns a new slice, addrs is shared between sibling frames
func appendAddr(addrs []Addr, a Addr) []Addr {
	out := make([]Addr, len(addrs)+1)
	copy(out, addrs)
	out[len(addrs)] = a
	return out
}
