package jsondiff

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParsePath splits a diff path like users[0].name back into addresses. Keys
// that themselves contain ".", "[" or "]" can't be recovered
func ParsePath(path string) ([]Addr, error) {
	if path == "" || path == RootPath {
		return nil, nil
	}

	var addrs []Addr
	for i := 0; i < len(path); {
		switch path[i] {
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("unterminated index in path %q", path)
			}
			n, err := strconv.Atoi(path[i+1 : i+end])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid index %q in path %q", path[i+1:i+end], path)
			}
			addrs = append(addrs, IndexAddr(n))
			i += end + 1
		case '.':
			if len(addrs) == 0 {
				return nil, fmt.Errorf("path %q begins with a separator", path)
			}
			i++
			fallthrough
		default:
			end := strings.IndexAny(path[i:], ".[")
			if end < 0 {
				end = len(path) - i
			}
			if end == 0 {
				return nil, fmt.Errorf("empty key in path %q", path)
			}
			addrs = append(addrs, StringAddr(path[i:i+end]))
			i += end
		}
	}
	return addrs, nil
}

// UnmarshalJSON decodes a NodeDiff written by json.Marshal. Addresses are
// recovered from Path, so they include any base path the diff was made with
func (d *NodeDiff) UnmarshalJSON(data []byte) error {
	var raw struct {
		Path     string          `json:"path"`
		Type     ChangeType      `json:"type"`
		OldValue json.RawMessage `json:"oldValue"`
		NewValue json.RawMessage `json:"newValue"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Type {
	case Added, Removed, Changed:
	default:
		return fmt.Errorf("unknown change type %q at path %s", raw.Type, raw.Path)
	}

	addrs, err := ParsePath(raw.Path)
	if err != nil {
		return err
	}
	nd := NodeDiff{Path: raw.Path, Type: raw.Type, addrs: addrs}
	if len(raw.OldValue) > 0 {
		if nd.OldValue, err = ParseJSON(raw.OldValue); err != nil {
			return fmt.Errorf("decoding oldValue at %s: %w", raw.Path, err)
		}
	}
	if len(raw.NewValue) > 0 {
		if nd.NewValue, err = ParseJSON(raw.NewValue); err != nil {
			return fmt.Errorf("decoding newValue at %s: %w", raw.Path, err)
		}
	}
	*d = nd
	return nil
}
