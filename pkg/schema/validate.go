package schema

import (
	"bytes"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/schemarex/schemarex/pkg/err"
)

// rootResourceURL is the synthetic location the root document is
// registered under for meta-schema validation.
const rootResourceURL = "file:///schemarex/root.schema.json"

// CheckSchema validates a raw JSON Schema document against the Draft
// 2020-12 meta-schema. It must be called once before any translation
// work begins; translation never starts on an invalid document.
//
// Parameters:
//
//	doc []byte: The raw JSON text of the schema document.
//
// Returns:
//
//	error: An error wrapping err.ErrSchemaValidation if the document does
//	not conform to the meta-schema; otherwise nil.
func CheckSchema(doc []byte) error {
	parsed, uerr := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if uerr != nil {
		return err.ErrSchemaValidationFailed(uerr)
	}
	c := jsonschema.NewCompiler()
	if aerr := c.AddResource(rootResourceURL, parsed); aerr != nil {
		return err.ErrSchemaValidationFailed(aerr)
	}
	if _, cerr := c.Compile(rootResourceURL); cerr != nil {
		return err.ErrSchemaValidationFailed(cerr)
	}
	return nil
}
