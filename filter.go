package jsondiff

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// filterEnv holds the variables available to filter expressions. old & new
// hold any JSON value, so their types are only checked when evaluated
type filterEnv struct {
	Path   string      `expr:"path"`
	Change string      `expr:"change"`
	Depth  int         `expr:"depth"`
	Marker bool        `expr:"marker"`
	Old    interface{} `expr:"old"`
	New    interface{} `expr:"new"`
}

func newFilterEnv(d *NodeDiff) filterEnv {
	env := filterEnv{
		Path:   d.Path,
		Change: string(d.Type),
		Depth:  len(d.addrs),
		Marker: d.IsMarker(),
	}
	if d.OldValue != nil {
		env.Old = ToInterface(d.OldValue)
	}
	if d.NewValue != nil {
		env.New = ToInterface(d.NewValue)
	}
	return env
}

// Filter returns the entries of diffs for which expression evaluates to true.
// Expressions use github.com/expr-lang/expr syntax & can refer to:
//
//	path    string, the entry's path
//	change  string, one of "added", "removed", "changed"
//	depth   int, count of keys & indices below the compared root
//	marker  bool, true for ancestor markers
//	old     the left-hand value, nil when absent
//	new     the right-hand value, nil when absent
//
// Values are plain go values (float64, string, bool, []interface{},
// map[string]interface{}). Comparing or indexing an absent value is an
// evaluation error, so guard with eg: `new != nil && new > 2`
//
// eg: `change == "added" && path startsWith "users"`
func Filter(diffs Diffs, expression string) (Diffs, error) {
	program, err := expr.Compile(expression, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter: %w", err)
	}

	out := Diffs{}
	for path, d := range diffs {
		res, err := expr.Run(program, newFilterEnv(d))
		if err != nil {
			return nil, fmt.Errorf("evaluating filter at %s: %w", path, err)
		}
		if keep, _ := res.(bool); keep {
			out[path] = d
		}
	}
	return out, nil
}
