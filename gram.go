/*
Package gram is the rule-algebra core of a grammar-definition toolkit.

Consists of subpackages:
  - rule: algebraic rule trees with named output fields, combinators to
    build them, a generic fold/rewrite framework with a concrete
    whitespace-insertion pass, a cycle-safe nullability analyzer, and
    structural validity checks;
  - internal/omap: insertion-ordered map used for field bookkeeping.

Typical usage is:

1. Build rule trees for each grammar rule using the rule package
combinators (rule.Eat, rule.Call, Then, Or, Opt, repetitions), naming
the subexpressions that must surface in parse results with Field.

2. Collect the finished rules into a name-to-rule mapping (any ordered
container implementing rule.Grammar) and run the validity checks:
CheckNonEmptyOpt and CheckCallNames.

3. Hand the validated rules to a compiler or code generator, using
CanBeEmpty and FieldPathsetIsRefutable to answer the structural
questions such a consumer needs.

This package only builds, queries, and rewrites abstract rule trees.
Terminal pattern matching, the grammar surface syntax, and parser
construction are left to the surrounding toolkit.
*/
package gram

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	RuleErrors = 1 // used by rule
)

// Error is the error type used by gram subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message.
	Message string
}

// NewError creates new Error structure.
func NewError(code int, msg string) *Error {
	return &Error{code, msg}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg)
}
