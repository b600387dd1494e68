package wideint

import (
	"io"

	"github.com/valsera/wideint/internal/int512"
	"github.com/valsera/wideint/revision"
)

// BinaryRevision is the revision number of the persisted binary form.
const BinaryRevision uint16 = 1

// Size is the fixed length of the persisted binary form in bytes.
const Size = int512.Bytes

var _ revision.Revisioned = (*Int)(nil)

// Revision implements revision.Revisioned.
func (x Int) Revision() uint16 {
	return BinaryRevision
}

// SerializeRevisioned writes the fixed 64-byte little-endian
// two's-complement form to w: eight 64-bit limbs, least significant
// first. Write failures surface as a *revision.IOError.
func (x Int) SerializeRevisioned(w io.Writer) error {
	buf := x.v.LittleEndianBytes()

	_, err := w.Write(buf[:])
	if err != nil {
		return Error.Wrap(revision.NewIOError(err))
	}

	return nil
}

// DeserializeRevisioned reads exactly 64 bytes from r and replaces x
// with the decoded value. Read failures, including short reads,
// surface as a *revision.IOError.
//
// Every 64-byte pattern is a valid two's-complement value, so decoding
// a complete buffer cannot fail. The historical format substituted
// zero for unrepresentable patterns; no such pattern exists here, and
// a corrupted buffer decodes to a wrong value rather than an error.
func (x *Int) DeserializeRevisioned(r io.Reader) error {
	var buf [int512.Bytes]byte

	_, err := io.ReadFull(r, buf[:])
	if err != nil {
		return Error.Wrap(revision.NewIOError(err))
	}

	x.v = int512.FromLittleEndianBytes(buf)

	return nil
}
