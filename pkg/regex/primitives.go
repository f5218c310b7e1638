// Package regex compiles JSON Schema documents into regular expressions
// whose language is exactly the set of serialized JSON texts the schema
// describes. The produced pattern is intended for pattern-guided sampling
// engines that constrain generation token by token.
package regex

// Canonical fragments for the five JSON primitive kinds. Each fragment is
// self-contained: it stays valid when concatenated with other fragments or
// grouped into a |-alternation.
const (
	// StringInner matches one inner string character: any character except
	// control characters (0x00-0x1f, 0x7f-0x9f), the double quote and the
	// backslash, or a backslash-escaped pair.
	StringInner = `(?:[^"\\\x00-\x1f\x7f-\x9f]|\\.)`
	String      = `"` + StringInner + `*"`
	Integer     = `(0|[1-9][0-9]*)`
	Number      = `(-)?(` + Integer + `)(\.[0-9]+)?([eE][+-][0-9]+)?`
	Boolean     = `(true|false)`
	Null        = `null`

	// Whitespace is the tolerance inserted before every token-separating
	// position inside object patterns.
	Whitespace = `[\n ]*`
)

// typeToRegex maps primitive type names to their canonical fragments. The
// set is closed; callers dispatch on the type name before lookup, so a
// miss is impossible. Built once, never mutated.
var typeToRegex = map[string]string{
	"string":  String,
	"integer": Integer,
	"number":  Number,
	"boolean": Boolean,
	"null":    Null,
}
