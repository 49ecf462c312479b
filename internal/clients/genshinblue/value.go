package genshinblue

import (
	"encoding/json"
	"fmt"
	"io"
)

// Kind tags the shape of a decoded JSON value
type Kind int

// Value kinds
const (
	KindInvalid Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

// Value is a decoded JSON document. Mappings remember the order their
// keys appeared upstream: recommendation rankings derive from it, and
// encoding/json maps would destroy it.
type Value struct {
	kind    Kind
	scalar  interface{} // string, json.Number, bool or nil
	seq     []Value
	keys    []string
	mapping map[string]Value
}

// ParseValue decodes one JSON document from r, preserving mapping key
// order. Numbers stay json.Number so integer-ness survives.
func ParseValue(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return decodeValue(dec)
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return Value{kind: KindScalar, scalar: tok}, nil
	}

	switch delim {
	case '{':
		v := Value{kind: KindMapping, mapping: make(map[string]Value)}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return Value{}, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return Value{}, fmt.Errorf("object key is not a string: %v", keyTok)
			}
			child, err := decodeValue(dec)
			if err != nil {
				return Value{}, err
			}
			if _, seen := v.mapping[key]; !seen {
				v.keys = append(v.keys, key)
			}
			v.mapping[key] = child
		}
		// consume the closing brace
		if _, err := dec.Token(); err != nil {
			return Value{}, err
		}
		return v, nil
	case '[':
		v := Value{kind: KindSequence}
		for dec.More() {
			child, err := decodeValue(dec)
			if err != nil {
				return Value{}, err
			}
			v.seq = append(v.seq, child)
		}
		// consume the closing bracket
		if _, err := dec.Token(); err != nil {
			return Value{}, err
		}
		return v, nil
	}
	return Value{}, fmt.Errorf("unexpected delimiter %v", delim)
}

// Kind reports the shape of the value
func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the value as a string when it is a string scalar
func (v Value) Str() (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}
	s, ok := v.scalar.(string)
	return s, ok
}

// Scalar returns the raw scalar: string, json.Number, bool or nil
func (v Value) Scalar() interface{} {
	return v.scalar
}

// Keys returns mapping keys in upstream order
func (v Value) Keys() []string {
	return v.keys
}

// Get returns the child stored under key
func (v Value) Get(key string) (Value, bool) {
	child, ok := v.mapping[key]
	return child, ok
}

// Items returns the sequence elements in order
func (v Value) Items() []Value {
	return v.seq
}

// Len returns the number of mapping keys or sequence elements
func (v Value) Len() int {
	switch v.kind {
	case KindMapping:
		return len(v.keys)
	case KindSequence:
		return len(v.seq)
	default:
		return 0
	}
}
