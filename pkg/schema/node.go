// Package schema provides the parsed schema document model, reference
// resolution and meta-schema validation for the regex translator.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind enumerates the JSON value kinds a Node can hold.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// Member is a single object member. Members keep the declaration order of
// the source document, which encoding/json maps discard; the order of
// "properties" members is semantically significant for the translator.
type Member struct {
	Key   string
	Value *Node
}

// Node is an immutable value tree representing one JSON document or
// sub-document. A Node borrowed by the translator is never mutated.
type Node struct {
	kind    Kind
	str     string
	num     json.Number
	boolean bool
	members []Member
	index   map[string]*Node
	items   []*Node
}

// Parse decodes raw JSON into a Node tree, preserving object member
// declaration order. Numbers keep their source text via json.Number.
//
// Parameters:
//
//	data []byte: The raw JSON document.
//
// Returns:
//
//	*Node: The decoded value tree.
//	error: An error if the input is not a single well-formed JSON value.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected trailing data after JSON value")
	}
	return n, nil
}

// MustParse is like Parse but panics on error. Intended for fixed literals
// in tests and internal construction.
func MustParse(data []byte) *Node {
	n, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return n
}

// TypeNode returns a synthetic schema node equivalent to {"type": name}.
// The translator uses it to expand type lists into singleton leaf nodes.
func TypeNode(name string) *Node {
	typ := &Node{kind: KindString, str: name}
	return &Node{
		kind:    KindObject,
		members: []Member{{Key: "type", Value: typ}},
		index:   map[string]*Node{"type": typ},
	}
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return &Node{kind: KindString, str: t}, nil
	case json.Number:
		return &Node{kind: KindNumber, num: t}, nil
	case bool:
		return &Node{kind: KindBool, boolean: t}, nil
	case nil:
		return &Node{kind: KindNull}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (*Node, error) {
	n := &Node{kind: KindObject, index: make(map[string]*Node)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		// duplicate keys keep their first position, last value wins
		if _, exists := n.index[key]; exists {
			for i := range n.members {
				if n.members[i].Key == key {
					n.members[i].Value = val
					break
				}
			}
		} else {
			n.members = append(n.members, Member{Key: key, Value: val})
		}
		n.index[key] = val
	}
	// consume closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return n, nil
}

func decodeArray(dec *json.Decoder) (*Node, error) {
	n := &Node{kind: KindArray}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		n.items = append(n.items, val)
	}
	// consume closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return n, nil
}

// Kind returns the JSON value kind of the node.
func (n *Node) Kind() Kind { return n.kind }

// IsObject reports whether the node is a JSON object.
func (n *Node) IsObject() bool { return n.kind == KindObject }

// IsArray reports whether the node is a JSON array.
func (n *Node) IsArray() bool { return n.kind == KindArray }

// Get returns the value of the named object member. The second result is
// false when the node is not an object or the key is absent.
//
// Parameters:
//
//	key string: The member name to look up.
//
// Returns:
//
//	*Node: The member value (nil when absent).
//	bool: True if the member exists.
func (n *Node) Get(key string) (*Node, bool) {
	if n.kind != KindObject {
		return nil, false
	}
	v, ok := n.index[key]
	return v, ok
}

// Has reports whether the named object member is present.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Members returns the object members in declaration order. The returned
// slice is owned by the node and must not be modified.
func (n *Node) Members() []Member { return n.members }

// Items returns the array elements in order. The returned slice is owned
// by the node and must not be modified.
func (n *Node) Items() []*Node { return n.items }

// Str returns the string value of a KindString node ("" otherwise).
func (n *Node) Str() string { return n.str }

// Num returns the numeric source text of a KindNumber node ("" otherwise).
func (n *Node) Num() json.Number { return n.num }

// Bool returns the value of a KindBool node (false otherwise).
func (n *Node) Bool() bool { return n.boolean }

// Encode renders the node as compact JSON, preserving object member
// declaration order and numeric source text.
//
// Returns:
//
//	string: The compact JSON text of the node.
func (n *Node) Encode() string {
	var b strings.Builder
	n.encode(&b)
	return b.String()
}

func (n *Node) encode(b *strings.Builder) {
	switch n.kind {
	case KindObject:
		b.WriteByte('{')
		for i, m := range n.members {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(encodeString(m.Key))
			b.WriteByte(':')
			m.Value.encode(b)
		}
		b.WriteByte('}')
	case KindArray:
		b.WriteByte('[')
		for i, it := range n.items {
			if i > 0 {
				b.WriteByte(',')
			}
			it.encode(b)
		}
		b.WriteByte(']')
	case KindString:
		b.WriteString(encodeString(n.str))
	case KindNumber:
		b.WriteString(n.num.String())
	case KindBool:
		if n.boolean {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNull:
		b.WriteString("null")
	}
}

func encodeString(s string) string {
	out, err := json.Marshal(s)
	if err != nil {
		// json.Marshal cannot fail for a string value
		panic(err)
	}
	return string(out)
}
