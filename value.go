package jsondiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Kind defines all of the atoms in our universe, or the types of data we
// will encounter while generating a diff
type Kind uint8

const (
	// KindNull is the JSON null literal
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String implements the fmt.Stringer interface
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a parsed JSON document or any part of one. The set of
// implementations is closed: Null, Bool, Number, String, Array and *Object
type Value interface {
	Kind() Kind
	isValue()
}

// Null is the JSON null literal
type Null struct{}

// Bool is a JSON boolean
type Bool bool

// Number is a JSON number. Numbers are held as float64, so 1 and 1.0 are
// the same number
type Number float64

// String is a JSON string
type String string

// Array is an ordered list of values
type Array []Value

// Object is a set of key / value pairs that remembers the order keys were
// first added in
type Object struct {
	keys   []string
	fields map[string]Value
}

func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }
func (Number) Kind() Kind  { return KindNumber }
func (String) Kind() Kind  { return KindString }
func (Array) Kind() Kind   { return KindArray }
func (*Object) Kind() Kind { return KindObject }

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Number) isValue()  {}
func (String) isValue()  {}
func (Array) isValue()   {}
func (*Object) isValue() {}

// Member is a single key / value pair of an object
type Member struct {
	Key   string
	Value Value
}

// NewObject creates an object from members. A repeated key keeps its first
// position and its last value, the way JSON.parse treats duplicates
func NewObject(members ...Member) *Object {
	o := &Object{fields: make(map[string]Value, len(members))}
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o
}

// Set assigns a value to key, appending key if it's new
func (o *Object) Set(key string, v Value) {
	if o.fields == nil {
		o.fields = map[string]Value{}
	}
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
}

// Get returns the value at key & whether key is present
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Has reports whether key is present
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys lists keys in insertion order. The returned slice must not be modified
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Len is the number of members
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Equal reports whether a and b hold the same JSON value. Scalars use strict
// equality of their go representation, so Number(NaN) is never equal to itself.
// Object member order is not significant
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Null:
		return true
	case Bool:
		return x == b.(Bool)
	case Number:
		return x == b.(Number)
	case String:
		return x == b.(String)
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Object:
		y := b.(*Object)
		if x.Len() != y.Len() {
			return false
		}
		for _, k := range x.Keys() {
			yv, ok := y.Get(k)
			if !ok || !Equal(x.fields[k], yv) {
				return false
			}
		}
		return true
	}
	return false
}

// FromInterface converts go values of the shape produced by unmarshaling
// into interface{} (plus common integer types & json.Number) into a Value.
// map keys are sorted so the result doesn't depend on map iteration order
func FromInterface(v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(x), nil
	case int:
		return Number(x), nil
	case int32:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", x.String(), err)
		}
		return Number(f), nil
	case string:
		return String(x), nil
	case []interface{}:
		arr := make(Array, len(x))
		for i, el := range x {
			val, err := FromInterface(el)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = val
		}
		return arr, nil
	case map[string]interface{}:
		// gotta sort keys for consistent ordering
		names := make([]string, 0, len(x))
		for name := range x {
			names = append(names, name)
		}
		sort.Strings(names)

		obj := &Object{fields: make(map[string]Value, len(x))}
		for _, name := range names {
			val, err := FromInterface(x[name])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", name, err)
			}
			obj.Set(name, val)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unexpected type: %T", v)
	}
}

// ToInterface converts a Value back into plain go types: nil, bool, float64,
// string, []interface{} & map[string]interface{}
func ToInterface(v Value) interface{} {
	switch x := v.(type) {
	case Bool:
		return bool(x)
	case Number:
		return float64(x)
	case String:
		return string(x)
	case Array:
		out := make([]interface{}, len(x))
		for i, el := range x {
			out[i] = ToInterface(el)
		}
		return out
	case *Object:
		out := make(map[string]interface{}, x.Len())
		for _, k := range x.Keys() {
			out[k] = ToInterface(x.fields[k])
		}
		return out
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON encodes a nil array as [] rather than null
func (a Array) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Value(a))
}

// MarshalJSON writes members in insertion order
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(o.fields[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders a value as compact JSON, mostly for error messages & tests
func (o *Object) String() string {
	data, err := o.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s>", err)
	}
	return string(data)
}

// formatValue renders v as compact JSON, falling back to %v if v can't be
// encoded (eg: NaN)
func formatValue(v Value) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// countNodes returns the number of values in v, including v itself
func countNodes(v Value) int {
	count := 0
	stack := []Value{v}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		if cur == nil {
			continue
		}
		count++
		switch x := cur.(type) {
		case Array:
			stack = append(stack, x...)
		case *Object:
			for _, k := range x.keys {
				stack = append(stack, x.fields[k])
			}
		}
	}
	return count
}
