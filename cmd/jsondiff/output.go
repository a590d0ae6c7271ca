package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alokyd/jsondiff"
)

// report is the machine readable form of a result
type report struct {
	Left  string       `json:"left" yaml:"left"`
	Right string       `json:"right" yaml:"right"`
	Lines *lineReport  `json:"lines,omitempty" yaml:"lines,omitempty"`
	Tree  treeReport   `json:"tree,omitempty" yaml:"tree,omitempty"`
	Stats *statsReport `json:"stats,omitempty" yaml:"stats,omitempty"`
	Error string       `json:"error,omitempty" yaml:"error,omitempty"`
}

type lineReport struct {
	Left  []jsondiff.LineDiff `json:"left" yaml:"left"`
	Right []jsondiff.LineDiff `json:"right" yaml:"right"`
}

type statsReport struct {
	Lines *jsondiff.Stats `json:"lines,omitempty" yaml:"lines,omitempty"`
	Tree  *jsondiff.Stats `json:"tree,omitempty" yaml:"tree,omitempty"`
}

// treeReport lists tree differences in path order
type treeReport []*jsondiff.NodeDiff

// MarshalYAML keeps member order of values & the field names used in JSON
func (t treeReport) MarshalYAML() (interface{}, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, d := range t {
		m := mapping(
			"path", scalar("!!str", d.Path),
			"type", scalar("!!str", string(d.Type)),
		)
		if d.OldValue != nil {
			m.Content = append(m.Content, scalar("!!str", "oldValue"), valueNode(d.OldValue))
		}
		if d.NewValue != nil {
			m.Content = append(m.Content, scalar("!!str", "newValue"), valueNode(d.NewValue))
		}
		seq.Content = append(seq.Content, m)
	}
	return seq, nil
}

func newReport(r *result, s settings) *report {
	rep := &report{Left: r.left.name, Right: r.right.name}
	if r.lineStats != nil {
		rep.Lines = &lineReport{Left: orEmpty(r.lineLeft), Right: orEmpty(r.lineRight)}
	}
	if r.tree != nil {
		rep.Tree = r.tree.Sorted()
	}
	if r.treeErr != nil {
		rep.Error = r.treeErr.Error()
	}
	if s.Stats && (r.lineStats != nil || r.treeStats != nil) {
		rep.Stats = &statsReport{Lines: r.lineStats, Tree: r.treeStats}
	}
	return rep
}

func orEmpty(diffs []jsondiff.LineDiff) []jsondiff.LineDiff {
	if diffs == nil {
		return []jsondiff.LineDiff{}
	}
	return diffs
}

// writeResults prints results in argument order
func writeResults(w io.Writer, results []*result, s settings, colorTTY bool) error {
	switch s.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		for _, r := range results {
			if err := enc.Encode(newReport(r, s)); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, r := range results {
			if err := enc.Encode(newReport(r, s)); err != nil {
				return err
			}
		}
		return enc.Close()
	case "patch":
		for _, r := range results {
			if r.treeErr != nil {
				continue
			}
			patch, err := jsondiff.JSONPatch(r.tree)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s\n", patch); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, r := range results {
			if len(results) > 1 {
				if _, err := fmt.Fprintf(w, "jsondiff %s %s\n", r.left.name, r.right.name); err != nil {
					return err
				}
			}
			if err := writePretty(w, r, s, colorTTY); err != nil {
				return err
			}
		}
		return nil
	}
}

func writePretty(w io.Writer, r *result, s settings, colorTTY bool) error {
	stats := func(st *jsondiff.Stats) error {
		if !s.Stats || st == nil {
			return nil
		}
		str := jsondiff.FormatPrettyStats(st)
		if colorTTY {
			str = jsondiff.FormatPrettyStatsColor(st)
		}
		_, err := io.WriteString(w, str)
		return err
	}

	if r.lineStats != nil {
		if err := jsondiff.FormatLineDiffs(w, string(r.left.data), string(r.right.data), r.lineLeft, r.lineRight, colorTTY); err != nil {
			return err
		}
		if err := stats(r.lineStats); err != nil {
			return err
		}
	}
	if r.tree != nil {
		if err := jsondiff.FormatPretty(w, r.tree, colorTTY); err != nil {
			return err
		}
		if err := stats(r.treeStats); err != nil {
			return err
		}
	}
	return nil
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// mapping builds a mapping node from alternating keys & values
func mapping(pairs ...interface{}) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Content = append(m.Content, scalar("!!str", pairs[i].(string)), pairs[i+1].(*yaml.Node))
	}
	return m
}

// valueNode converts a JSON value into the equivalent yaml node
func valueNode(v jsondiff.Value) *yaml.Node {
	switch x := v.(type) {
	case jsondiff.Bool:
		return scalar("!!bool", strconv.FormatBool(bool(x)))
	case jsondiff.Number:
		f := float64(x)
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return scalar("!!int", strconv.FormatFloat(f, 'f', -1, 64))
		}
		return scalar("!!float", strconv.FormatFloat(f, 'g', -1, 64))
	case jsondiff.String:
		return scalar("!!str", string(x))
	case jsondiff.Array:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, el := range x {
			seq.Content = append(seq.Content, valueNode(el))
		}
		return seq
	case *jsondiff.Object:
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			m.Content = append(m.Content, scalar("!!str", k), valueNode(val))
		}
		return m
	}
	return scalar("!!null", "null")
}
