package regex

import (
	"github.com/schemarex/schemarex/pkg/schema"
)

// FromSchema turns a raw JSON Schema document into a regex that matches
// any JSON text that follows the schema. The document is validated against
// the meta-schema first; the reference registry is then built from the
// root document and its $id (empty string when none is declared) and the
// root node is translated.
//
// Parameters:
//
//	doc []byte: The raw JSON text of the schema document.
//
// Returns:
//
//	string: The regular expression for the schema.
//	error: A validation, resolution or translation error; on error no
//	partial pattern is returned.
func FromSchema(doc []byte) (string, error) {
	root, perr := schema.FromJSON(doc)
	if perr != nil {
		return "", perr
	}
	return Translate(schema.RootRegistry(root), root)
}

// FromSchemaYAML is like FromSchema for a YAML schema document. See
// schema.FromYAML for the property-order caveat of the conversion.
func FromSchemaYAML(doc []byte) (string, error) {
	root, perr := schema.FromYAML(doc)
	if perr != nil {
		return "", perr
	}
	return Translate(schema.RootRegistry(root), root)
}
