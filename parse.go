package jsondiff

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxDepth is the deepest nesting of arrays & objects ParseJSON will accept
const MaxDepth = 10000

// ErrInputParse is the error kind for JSON text that can't be diffed because
// it isn't valid JSON. Check for it with errors.Is
var ErrInputParse = errors.New("invalid JSON input")

// ParseError describes malformed input text
type ParseError struct {
	// Side is "left" or "right" when the error came from DiffJSON
	Side string
	// Offset is the byte offset the decoder had reached
	Offset int64
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Side != "" {
		return fmt.Sprintf("parsing %s input at offset %d: %s", e.Side, e.Offset, e.Err)
	}
	return fmt.Sprintf("parsing input at offset %d: %s", e.Offset, e.Err)
}

// Unwrap returns the underlying decoder error
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrInputParse
func (e *ParseError) Is(target error) bool { return target == ErrInputParse }

// ParseJSON parses a single JSON document, keeping object keys in the order
// they appear in data. Numbers must fit a float64: literals out of range,
// eg: 1e400, are a parse error rather than infinity
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	p := &parser{dec: dec}
	v, err := p.value(0)
	if err != nil {
		return nil, p.fail(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after top-level value")
		}
		return nil, p.fail(err)
	}
	return v, nil
}

// MustParseJSON is ParseJSON for literals known to be valid. It panics on error
func MustParseJSON(data string) Value {
	v, err := ParseJSON([]byte(data))
	if err != nil {
		panic(err)
	}
	return v
}

type parser struct {
	dec *json.Decoder
}

func (p *parser) fail(err error) *ParseError {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return &ParseError{Offset: p.dec.InputOffset(), Err: err}
}

func (p *parser) value(depth int) (Value, error) {
	tok, err := p.dec.Token()
	if err != nil {
		return nil, err
	}

	switch x := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", x.String(), err)
		}
		return Number(f), nil
	case json.Delim:
		if depth >= MaxDepth {
			return nil, fmt.Errorf("exceeded max nesting depth of %d", MaxDepth)
		}
		switch x {
		case '[':
			arr := Array{}
			for p.dec.More() {
				el, err := p.value(depth + 1)
				if err != nil {
					return nil, err
				}
				arr = append(arr, el)
			}
			// consume closing bracket
			if _, err := p.dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		case '{':
			obj := NewObject()
			for p.dec.More() {
				keyTok, err := p.dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := p.value(depth + 1)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := p.dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// DiffJSON parses two JSON documents and computes their structural diff.
// Malformed input returns a *ParseError naming the offending side, and no
// diff is computed
func DiffJSON(left, right []byte, opts ...Option) (Diffs, error) {
	l, err := ParseJSON(left)
	if err != nil {
		return nil, withSide(err, "left")
	}
	r, err := ParseJSON(right)
	if err != nil {
		return nil, withSide(err, "right")
	}
	return ComputeDeepDiff(l, r, opts...), nil
}

func withSide(err error, side string) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		perr.Side = side
		return perr
	}
	return err
}
