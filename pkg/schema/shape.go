package schema

// Shape is the tagged classification of a schema node. A node may carry
// several structural keywords at once; exactly one shape is acted on,
// chosen by a fixed precedence order. Classification happens once per node
// before translation so the precedence is an explicit, independently
// testable policy rather than implicit control flow.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeObject
	ShapeAllOf
	ShapeAnyOf
	ShapeOneOf
	ShapeEnum
	ShapeRef
	ShapeTyped
)

// shapeKeywords lists the dispatch keywords in precedence order.
// First present keyword wins; later keys on the same node are ignored.
var shapeKeywords = []struct {
	key   string
	shape Shape
}{
	{"properties", ShapeObject},
	{"allOf", ShapeAllOf},
	{"anyOf", ShapeAnyOf},
	{"oneOf", ShapeOneOf},
	{"enum", ShapeEnum},
	{"$ref", ShapeRef},
	{"type", ShapeTyped},
}

// Classify returns the shape acted on for the given schema node, applying
// the precedence order properties, allOf, anyOf, oneOf, enum, $ref, type.
// Nodes matching none of these classify as ShapeUnknown.
//
// Parameters:
//
//	n *Node: The schema node to classify.
//
// Returns:
//
//	Shape: The shape the translator should act on.
func Classify(n *Node) Shape {
	if n == nil || !n.IsObject() {
		return ShapeUnknown
	}
	for _, sk := range shapeKeywords {
		if n.Has(sk.key) {
			return sk.shape
		}
	}
	return ShapeUnknown
}

// String returns the keyword name associated with the shape, for error
// messages and tests.
func (s Shape) String() string {
	switch s {
	case ShapeObject:
		return "properties"
	case ShapeAllOf:
		return "allOf"
	case ShapeAnyOf:
		return "anyOf"
	case ShapeOneOf:
		return "oneOf"
	case ShapeEnum:
		return "enum"
	case ShapeRef:
		return "$ref"
	case ShapeTyped:
		return "type"
	default:
		return "unknown"
	}
}
