// Package err defines common errors for the schemarex project.
package err

import (
	"errors"
	"fmt"
)

var (
	ErrSchemaValidation  = errors.New("schema document failed meta-schema validation")
	ErrRefNotFound       = errors.New("reference not found in registry")
	ErrUnsupportedSchema = errors.New("unsupported schema construct")
	ErrCyclicSchema      = errors.New("cyclic schema reference")
)

// ErrSchemaValidationFailed returns an error for a document that does not
// conform to the JSON Schema meta-schema.
//
// Parameters:
//
//	cause error: The underlying validation error.
//
// Returns:
//
//	error: The formatted error, wrapping ErrSchemaValidation.
func ErrSchemaValidationFailed(cause error) error {
	return fmt.Errorf("%w: %v", ErrSchemaValidation, cause)
}

// ErrRefResolution returns an error for a $ref that cannot be located in
// the registry built from the root document.
//
// Parameters:
//
//	ref string: The reference string that failed to resolve.
//
// Returns:
//
//	error: The formatted error, wrapping ErrRefNotFound.
func ErrRefResolution(ref string) error {
	return fmt.Errorf("%w: %q", ErrRefNotFound, ref)
}

// ErrUnsupportedNode returns an error for a schema node that matches none
// of the translator's dispatch branches.
//
// Parameters:
//
//	node string: The compact JSON rendering of the offending node.
//
// Returns:
//
//	error: The formatted error, wrapping ErrUnsupportedSchema.
func ErrUnsupportedNode(node string) error {
	return fmt.Errorf("%w: could not translate %s to a regular expression", ErrUnsupportedSchema, node)
}

// ErrCyclicRef returns an error for a $ref chain that revisits a node
// already being translated on the current recursion path.
//
// Parameters:
//
//	ref string: The reference that closed the cycle.
//
// Returns:
//
//	error: The formatted error, wrapping ErrCyclicSchema.
func ErrCyclicRef(ref string) error {
	return fmt.Errorf("%w: %q resolves to a node already under translation", ErrCyclicSchema, ref)
}
