// Package revision defines the contract for version-tagged binary
// forms.
//
// A type with a persisted binary encoding implements Revisioned: it
// reports the revision number of its current encoding and knows how to
// write itself to and read itself from a raw byte stream. The revision
// number is metadata for the surrounding system; this layer writes only
// the payload bytes. Framing, length prefixes, and checksums are the
// caller's responsibility.
//
// Failures of the underlying byte sink or source are reported as
// *IOError, which keeps the platform error code when one is available
// (and 0 otherwise). IOErrors are propagated, never retried, by this
// layer.
package revision
