package schema

import (
	"sigs.k8s.io/yaml"
)

// FromJSON validates a raw JSON Schema document against the meta-schema
// and parses it into a Node tree ready for registry construction.
//
// Parameters:
//
//	doc []byte: The raw JSON text of the schema document.
//
// Returns:
//
//	*Node: The parsed root node.
//	error: A meta-schema validation or parse error.
func FromJSON(doc []byte) (*Node, error) {
	if verr := CheckSchema(doc); verr != nil {
		return nil, verr
	}
	return Parse(doc)
}

// FromYAML converts a YAML schema document to JSON and delegates to
// FromJSON.
//
// Note: the YAML-to-JSON conversion re-serializes mappings with sorted
// keys, so for YAML documents the property order seen by the translator is
// alphabetical rather than source order. Documents that rely on property
// declaration order should be supplied as JSON.
//
// Parameters:
//
//	doc []byte: The raw YAML text of the schema document.
//
// Returns:
//
//	*Node: The parsed root node.
//	error: A conversion, validation or parse error.
func FromYAML(doc []byte) (*Node, error) {
	j, cerr := yaml.YAMLToJSON(doc)
	if cerr != nil {
		return nil, cerr
	}
	return FromJSON(j)
}
