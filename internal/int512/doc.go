// Package int512 provides a 512-bit two's-complement signed integer.
//
// Int is a value type: the zero value is numeric zero, values are
// immutable, and every operation returns a new value. Arithmetic comes
// in two families. The plain operations (Add, Sub, Mul, Quo, Rem, Neg,
// Abs, Pow) wrap on overflow, keeping the low 512 bits of the true
// result. The Checked variants report overflow (and a zero divisor)
// instead of wrapping.
//
// The representation is exposed two ways: Words yields the eight
// 64-bit little-endian limbs of the two's-complement form, and
// LittleEndianBytes yields the same limbs as a 64-byte buffer. Every
// 64-byte pattern corresponds to exactly one value, so
// FromLittleEndianBytes cannot fail.
//
// Division truncates toward zero, matching Go's native integers. Quo
// and Rem panic on a zero divisor, like native division; use
// CheckedQuo and CheckedRem to test the divisor instead.
package int512
