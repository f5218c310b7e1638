package schema

import (
	"strconv"
	"strings"

	jptr "github.com/qri-io/jsonpointer"

	"github.com/schemarex/schemarex/pkg/err"
)

// Resolver is the capability the translator consumes to resolve $ref
// strings to schema nodes. Implementations must be read-only for the
// duration of a translation; the translator always recurses with the same
// resolver instance so the resolution scope stays fixed at the root
// document.
type Resolver interface {
	// Lookup resolves a reference string to the schema node it denotes.
	// It fails with err.ErrRefNotFound (wrapped) when the reference cannot
	// be located in the registry built from the root document.
	Lookup(ref string) (*Node, error)
}

// Registry resolves references against a single root document. It is
// constructed once per top-level translation and never mutated afterward,
// so concurrent lookups from independent translations are safe.
type Registry struct {
	base    string
	root    *Node
	anchors map[string]*Node
}

var _ Resolver = (*Registry)(nil)

// NewRegistry builds a Registry from the validated root document and its
// base identifier.
//
// Parameters:
//
//	root *Node: The root schema document.
//	base string: The document's declared $id, or "" when none is declared.
//
// Returns:
//
//	*Registry: A registry resolving JSON Pointer fragments and $anchor
//	names within the root document.
func NewRegistry(root *Node, base string) *Registry {
	r := &Registry{
		base:    base,
		root:    root,
		anchors: make(map[string]*Node),
	}
	collectAnchors(root, r.anchors)
	return r
}

// RootRegistry builds a Registry from the root document, reading the base
// identifier from its $id member (empty string when absent).
func RootRegistry(root *Node) *Registry {
	base := ""
	if id, ok := root.Get("$id"); ok && id.Kind() == KindString {
		base = id.Str()
	}
	return NewRegistry(root, base)
}

// Lookup resolves a reference string within the root document.
//
// Supported forms:
//   - "" or "#": the root node
//   - "#/path/to/node": a JSON Pointer fragment
//   - "#name": a plain-name fragment targeting a $anchor
//   - any of the above prefixed with the registry's base identifier
//
// References whose base part differs from the registry base fail: the
// registry holds exactly one document and resolution scope never widens.
//
// Parameters:
//
//	ref string: The reference string from a $ref keyword.
//
// Returns:
//
//	*Node: The referenced schema node.
//	error: An error wrapping err.ErrRefNotFound when resolution fails.
func (r *Registry) Lookup(ref string) (*Node, error) {
	base, frag := splitRef(ref)
	if base != "" && base != r.base {
		return nil, err.ErrRefResolution(ref)
	}
	if frag == "" {
		return r.root, nil
	}
	if !strings.HasPrefix(frag, "/") {
		// plain-name fragment: $anchor lookup
		if n, ok := r.anchors[frag]; ok {
			return n, nil
		}
		return nil, err.ErrRefResolution(ref)
	}
	ptr, perr := jptr.Parse(frag)
	if perr != nil {
		return nil, err.ErrRefResolution(ref)
	}
	node := r.root
	for _, tok := range ptr {
		next, ok := descend(node, tok)
		if !ok {
			return nil, err.ErrRefResolution(ref)
		}
		node = next
	}
	return node, nil
}

// splitRef separates a reference into its base URI part and fragment.
func splitRef(ref string) (base, frag string) {
	if i := strings.IndexByte(ref, '#'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// descend steps one pointer token into an object or array node.
func descend(n *Node, tok string) (*Node, bool) {
	switch n.Kind() {
	case KindObject:
		return n.Get(tok)
	case KindArray:
		i, aerr := strconv.Atoi(tok)
		if aerr != nil || i < 0 || i >= len(n.Items()) {
			return nil, false
		}
		return n.Items()[i], true
	default:
		return nil, false
	}
}

// collectAnchors walks the document once and records every $anchor name.
func collectAnchors(n *Node, anchors map[string]*Node) {
	switch n.Kind() {
	case KindObject:
		if a, ok := n.Get("$anchor"); ok && a.Kind() == KindString {
			anchors[a.Str()] = n
		}
		for _, m := range n.Members() {
			collectAnchors(m.Value, anchors)
		}
	case KindArray:
		for _, it := range n.Items() {
			collectAnchors(it, anchors)
		}
	}
}
