package revision

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("revision")

// Revisioned is a value with a version-tagged binary form.
type Revisioned interface {
	// Revision reports the revision number of the current binary
	// form.
	Revision() uint16

	// SerializeRevisioned writes the binary form to w.
	SerializeRevisioned(w io.Writer) error

	// DeserializeRevisioned replaces the receiver with the value
	// read from r.
	DeserializeRevisioned(r io.Reader) error
}

// IOError records a failed read or write against the underlying byte
// stream.
type IOError struct {
	// Code is the platform error code, or 0 when the failure did
	// not carry one.
	Code int

	Err error
}

// NewIOError wraps err, extracting the platform error code when one is
// present in its chain.
func NewIOError(err error) *IOError {
	var errno syscall.Errno

	code := 0
	if errors.As(err, &errno) {
		code = int(errno)
	}

	return &IOError{
		Code: code,
		Err:  err,
	}
}

// Error implements error.
func (e *IOError) Error() string {
	return fmt.Sprintf("io error (code %d): %v", e.Code, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Serialize writes v's binary form to w.
func Serialize(w io.Writer, v Revisioned) (err error) {
	defer Error.WrapP(&err)

	return v.SerializeRevisioned(w)
}

// Deserialize replaces v with the value read from r.
func Deserialize(r io.Reader, v Revisioned) (err error) {
	defer Error.WrapP(&err)

	return v.DeserializeRevisioned(r)
}
