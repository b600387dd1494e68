// Package wideint provides a fixed-width, arbitrarily-large signed
// integer scalar for generic value representations.
//
// Int is a 512-bit two's-complement signed integer with plain value
// semantics: the zero value is zero, values are immutable, and every
// operation returns a new value. Values are safe to copy and to read
// concurrently without synchronization.
//
// # Arithmetic
//
// The plain operations (Neg, Add, Sub, Mul, Div, Rem, Abs, Pow) wrap
// on overflow, keeping the low 512 bits of the true result; they never
// return an error. Div and Rem truncate toward zero and, like Go's
// native integer division, panic on a zero divisor. The Checked
// variants report absence instead of wrapping, and additionally report
// absence for a zero divisor.
//
// # Narrowing
//
// The To* conversions narrow an Int to a native width. They are option
// shaped: the bool result reports whether the value fits, and no error
// is ever produced. The 128-bit widths use the I128 and U128 types of
// github.com/shabbyrobe/go-num. ToFloat32 and ToFloat64 convert
// numerically, returning the nearest float of an in-range value; an
// earlier revision of the format reinterpreted the low bytes without a
// range check, and this package deliberately does not reproduce that.
//
// # Wire and persisted forms
//
// The textual wire form is hexadecimal, not decimal, and distinct from
// the human-readable display: MarshalText produces "0x..." for
// non-negative values and "-0x..." for negative ones, lowercase, with
// the sign outside the prefix. String produces the decimal display.
// Generic serializers consume the wire form through the standard
// encoding.TextMarshaler and encoding.TextUnmarshaler interfaces.
//
// The persisted form is a fixed 64-byte little-endian two's-complement
// buffer (eight 64-bit limbs, least significant first), revision 1,
// written and read through the revision package. There is no framing,
// length prefix, or checksum at this layer. Note that every 64-byte
// pattern decodes to a valid value: the historical format silently
// substituted zero for unrepresentable patterns, and since no such
// pattern exists in two's complement, corrupted-but-complete buffers
// decode to a wrong value rather than an error.
package wideint
