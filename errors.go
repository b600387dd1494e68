package wideint

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("wideint")

// ConversionError reports an input that cannot be represented as the
// target type. It is always recoverable: the caller may reject or skip
// the offending value.
type ConversionError struct {
	// Value is the string form of the rejected input.
	Value string

	// Target is the name of the type the input was destined for.
	Target string
}

// Error implements error.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q into %s", e.Value, e.Target)
}

func conversionError(value string) error {
	return Error.Wrap(&ConversionError{
		Value:  value,
		Target: "wideint.Int",
	})
}
