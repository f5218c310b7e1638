package regex

import (
	"regexp"
	"strings"

	"github.com/schemarex/schemarex/pkg/err"
	"github.com/schemarex/schemarex/pkg/schema"
)

//----------------------------------------------------------------

// translation carries the state of one top-level Translate call: the
// injected resolver and the set of resolved node identities currently on
// the recursion path. The visiting set guards against $ref cycles;
// entries are removed on return so a node reachable through several
// non-cyclic references is retranslated each time it is visited.
type translation struct {
	resolver schema.Resolver
	visiting map[*schema.Node]bool
}

// Translate produces the regex fragment for a schema node. It recursively
// invokes itself for nested schema nodes, always with the same resolver,
// so resolution scope stays fixed at the root document.
//
// Parameters:
//
//	resolver schema.Resolver: The lookup capability for $ref targets.
//	node *schema.Node: The schema node to translate.
//
// Returns:
//
//	string: A self-contained regex fragment.
//	error: err.ErrUnsupportedSchema when the node matches no dispatch
//	branch, err.ErrRefNotFound from the resolver, or err.ErrCyclicSchema
//	on a self-referential $ref chain.
func Translate(resolver schema.Resolver, node *schema.Node) (string, error) {
	t := &translation{
		resolver: resolver,
		visiting: make(map[*schema.Node]bool),
	}
	return t.toRegex(node)
}

// toRegex dispatches on the node's classified shape. Precedence over
// simultaneous keywords is decided by schema.Classify; once a branch is
// taken, later keys on the same node are ignored.
func (t *translation) toRegex(node *schema.Node) (string, error) {
	switch schema.Classify(node) {
	case schema.ShapeObject:
		return t.objectRegex(node)
	case schema.ShapeAllOf:
		return t.allOfRegex(node)
	case schema.ShapeAnyOf:
		return t.anyOfRegex(node)
	case schema.ShapeOneOf:
		return t.oneOfRegex(node)
	case schema.ShapeEnum:
		return t.enumRegex(node)
	case schema.ShapeRef:
		return t.refRegex(node)
	case schema.ShapeTyped:
		return t.typedRegex(node)
	default:
		return "", err.ErrUnsupportedNode(node.Encode())
	}
}

//----------------------------------------------------------------

// objectRegex emits the object form: literal braces, each declared
// property in declaration order with whitespace-tolerant punctuation, a
// comma separator between consecutive properties and none after the last.
// The compiled pattern rejects objects whose keys appear in a different
// order.
func (t *translation) objectRegex(node *schema.Node) (string, error) {
	props, _ := node.Get("properties")
	members := props.Members()

	var b strings.Builder
	b.WriteString(`\{`)
	for i, m := range members {
		b.WriteString(Whitespace)
		b.WriteString(`"` + m.Key + `"`)
		b.WriteString(Whitespace)
		b.WriteString(":")
		b.WriteString(Whitespace)

		frag, ferr := t.toRegex(m.Value)
		if ferr != nil {
			return "", ferr
		}
		b.WriteString(frag)

		// no comma after the last key-value pair
		if i < len(members)-1 {
			b.WriteString(Whitespace)
			b.WriteString(",")
		}
	}
	b.WriteString(Whitespace)
	b.WriteString(`\}`)
	return b.String(), nil
}

// allOfRegex concatenates the child fragments in list order. This is an
// approximation of logical AND: the text must match subschema 1
// immediately followed by subschema 2, and so on, rather than satisfy all
// subschemas simultaneously. Acceptable for the restricted non-overlapping
// schemas this translator targets.
func (t *translation) allOfRegex(node *schema.Node) (string, error) {
	subs, serr := t.childFragments(node, "allOf")
	if serr != nil {
		return "", serr
	}
	return "(" + strings.Join(subs, "") + ")", nil
}

// anyOfRegex enumerates every ordered arrangement of every non-empty
// subset of the child fragments, concatenates each arrangement and joins
// the alternatives with |. For N subschemas the alternative count is
// sum over k=1..N of N!/(N-k)!. The combinatorial growth is retained: a
// shared-automaton encoding would trade the flat-string representation
// the downstream decoding engines consume.
func (t *translation) anyOfRegex(node *schema.Node) (string, error) {
	subs, serr := t.childFragments(node, "anyOf")
	if serr != nil {
		return "", serr
	}
	var combos []string
	for r := 1; r <= len(subs); r++ {
		for _, p := range permutations(subs, r) {
			combos = append(combos, "("+strings.Join(p, "")+")")
		}
	}
	return "(" + strings.Join(combos, "|") + ")", nil
}

// oneOfRegex joins the child fragments with | so exactly one alternative
// is taken syntactically. Two subschemas matching the same literal are not
// detected as a conflict.
func (t *translation) oneOfRegex(node *schema.Node) (string, error) {
	subs, serr := t.childFragments(node, "oneOf")
	if serr != nil {
		return "", serr
	}
	return "(" + strings.Join(subs, "|") + ")", nil
}

// enumRegex emits a literal alternation over the fixed value set. With a
// declared string type each member is a double-quoted, regex-escaped
// literal; otherwise each member is regex-escaped from its default
// textual representation.
func (t *translation) enumRegex(node *schema.Node) (string, error) {
	enum, _ := node.Get("enum")
	isString := false
	if typ, ok := node.Get("type"); ok && typ.Kind() == schema.KindString {
		isString = typ.Str() == "string"
	}

	choices := make([]string, 0, len(enum.Items()))
	for _, member := range enum.Items() {
		if isString {
			choices = append(choices, `"`+regexp.QuoteMeta(member.Str())+`"`)
		} else {
			choices = append(choices, regexp.QuoteMeta(literalText(member)))
		}
	}
	return "(" + strings.Join(choices, "|") + ")", nil
}

// refRegex resolves the reference through the injected resolver and
// translates the resolved node with the same resolver. Resolution errors
// propagate unmodified. A resolved node already on the recursion path
// means the schema references itself transitively.
func (t *translation) refRegex(node *schema.Node) (string, error) {
	ref, _ := node.Get("$ref")
	target, lerr := t.resolver.Lookup(ref.Str())
	if lerr != nil {
		return "", lerr
	}
	if t.visiting[target] {
		return "", err.ErrCyclicRef(ref.Str())
	}
	t.visiting[target] = true
	frag, terr := t.toRegex(target)
	delete(t.visiting, target)
	return frag, terr
}

//----------------------------------------------------------------

// typedRegex handles the leaf dispatch on the type keyword, which may be
// a single type name or a list of names.
func (t *translation) typedRegex(node *schema.Node) (string, error) {
	typ, _ := node.Get("type")
	switch typ.Kind() {
	case schema.KindString:
		return t.leafRegex(typ.Str(), node)
	case schema.KindArray:
		// Each listed type translates as an independent singleton leaf.
		// Objects are excluded entirely: without a properties declaration
		// there is no finite pattern for them.
		var parts []string
		for _, it := range typ.Items() {
			if it.Kind() == schema.KindString && it.Str() == "object" {
				continue
			}
			frag, ferr := t.toRegex(schema.TypeNode(it.Str()))
			if ferr != nil {
				return "", ferr
			}
			parts = append(parts, frag)
		}
		return "(" + strings.Join(parts, "|") + ")", nil
	default:
		return "", err.ErrUnsupportedNode(node.Encode())
	}
}

// leafRegex emits the fragment for a single named primitive or array type,
// honoring the string and array constraints the translator supports.
func (t *translation) leafRegex(typeName string, node *schema.Node) (string, error) {
	switch typeName {
	case "string":
		if node.Has("minLength") || node.Has("maxLength") {
			// Bounds are used verbatim even when maxLength < minLength;
			// the inconsistency is swallowed, not corrected or reported.
			minBound := boundText(node, "minLength")
			maxBound := boundText(node, "maxLength")
			return `"` + StringInner + "{" + minBound + "," + maxBound + "}" + `"`, nil
		}
		if p, ok := node.Get("pattern"); ok {
			pattern := p.Str()
			if strings.HasPrefix(pattern, "^") && strings.HasSuffix(pattern, "$") && len(pattern) >= 2 {
				return `(^"` + pattern[1:len(pattern)-1] + `"$)`, nil
			}
			return `("` + pattern + `")`, nil
		}
		return typeToRegex["string"], nil

	case "number", "integer", "boolean", "null":
		return typeToRegex[typeName], nil

	case "array":
		if items, ok := node.Get("items"); ok {
			itemFrag, ferr := t.toRegex(items)
			if ferr != nil {
				return "", ferr
			}
			// At least one item is required; empty arrays never match.
			return `\[(` + itemFrag + `)(,(` + itemFrag + `))*\]`, nil
		}
		// Without items the element is any primitive leaf. Arrays and
		// objects are excluded from the alternation.
		elemTypes := []string{"boolean", "null", "number", "integer", "string"}
		parts := make([]string, 0, len(elemTypes))
		for _, et := range elemTypes {
			frag, ferr := t.toRegex(schema.TypeNode(et))
			if ferr != nil {
				return "", ferr
			}
			parts = append(parts, frag)
		}
		alt := strings.Join(parts, "|")
		return `\[(` + alt + `)(,(` + alt + `))*\]`, nil

	default:
		return "", err.ErrUnsupportedNode(node.Encode())
	}
}

//----------------------------------------------------------------

// childFragments translates every subschema listed under the given
// combinator keyword, in list order.
func (t *translation) childFragments(node *schema.Node, keyword string) ([]string, error) {
	list, _ := node.Get(keyword)
	out := make([]string, 0, len(list.Items()))
	for _, sub := range list.Items() {
		frag, ferr := t.toRegex(sub)
		if ferr != nil {
			return nil, ferr
		}
		out = append(out, frag)
	}
	return out, nil
}

// boundText returns the source text of a numeric bound, or "" when the
// bound is absent ("no floor"/"no ceiling").
func boundText(node *schema.Node, key string) string {
	b, ok := node.Get(key)
	if !ok || b.Kind() != schema.KindNumber {
		return ""
	}
	return b.Num().String()
}

// literalText renders an enum member in its default textual form: bare
// text for strings, compact JSON for everything else.
func literalText(member *schema.Node) string {
	if member.Kind() == schema.KindString {
		return member.Str()
	}
	return member.Encode()
}

// permutations returns every ordered arrangement of r distinct elements
// of items, in lexicographic order of the source indices.
func permutations(items []string, r int) [][]string {
	var out [][]string
	used := make([]bool, len(items))
	cur := make([]string, 0, r)

	var walk func()
	walk = func() {
		if len(cur) == r {
			out = append(out, append([]string(nil), cur...))
			return
		}
		for i := range items {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, items[i])
			walk()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	walk()
	return out
}
