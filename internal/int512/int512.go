package int512

import (
	"encoding/binary"
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("int512")

// Widths of the fixed representation.
const (
	Bits  = 512
	Limbs = 8
	Bytes = 64
)

var (
	bigZero = new(big.Int)
	bigOne  = big.NewInt(1)

	// modulus is 2^512, mask is 2^512 - 1.
	modulus = new(big.Int).Lsh(bigOne, Bits)
	mask    = new(big.Int).Sub(modulus, bigOne)

	maxBig = new(big.Int).Sub(new(big.Int).Lsh(bigOne, Bits-1), bigOne)
	minBig = new(big.Int).Neg(new(big.Int).Lsh(bigOne, Bits-1))
)

// Canonical values.
var (
	Zero = Int{}
	One  = Int{v: bigOne}
	Min  = Int{v: minBig}
	Max  = Int{v: maxBig}
)

// Int is a 512-bit two's-complement signed integer. The zero value is
// zero. The inner big.Int is never mutated after construction, so
// plain copies share it safely.
type Int struct {
	v *big.Int
}

func (x Int) big() *big.Int {
	if x.v == nil {
		return bigZero
	}

	return x.v
}

// wrap reduces v to the signed 512-bit range, keeping the low 512 bits
// of the two's-complement form. It takes ownership of v.
func wrap(v *big.Int) Int {
	if v.Cmp(minBig) >= 0 && v.Cmp(maxBig) <= 0 {
		return Int{v: v}
	}

	// And interprets negative operands as infinite-precision two's
	// complement, so this is v mod 2^512.
	v.And(v, mask)
	if v.Cmp(maxBig) > 0 {
		v.Sub(v, modulus)
	}

	return Int{v: v}
}

// checked admits v only if it fits in the signed 512-bit range. It
// takes ownership of v.
func checked(v *big.Int) (Int, bool) {
	if v.Cmp(minBig) < 0 || v.Cmp(maxBig) > 0 {
		return Int{}, false
	}

	return Int{v: v}, true
}

// FromInt64 returns the value of v.
func FromInt64(v int64) Int {
	return Int{v: big.NewInt(v)}
}

// FromUint64 returns the value of v.
func FromUint64(v uint64) Int {
	return Int{v: new(big.Int).SetUint64(v)}
}

// FromBig returns the value of v if it fits in the signed 512-bit
// range. The caller keeps ownership of v.
func FromBig(v *big.Int) (Int, bool) {
	return checked(new(big.Int).Set(v))
}

// WrapBig reduces v into the signed 512-bit range. The caller keeps
// ownership of v.
func WrapBig(v *big.Int) Int {
	return wrap(new(big.Int).Set(v))
}

// Big returns a copy of x as a big.Int.
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.big())
}

// Add returns x + y, wrapping on overflow.
func (x Int) Add(y Int) Int {
	return wrap(new(big.Int).Add(x.big(), y.big()))
}

// Sub returns x - y, wrapping on overflow.
func (x Int) Sub(y Int) Int {
	return wrap(new(big.Int).Sub(x.big(), y.big()))
}

// Mul returns x * y, wrapping on overflow.
func (x Int) Mul(y Int) Int {
	return wrap(new(big.Int).Mul(x.big(), y.big()))
}

// Quo returns x / y truncated toward zero, wrapping on overflow
// (Min / -1 yields Min). Quo panics if y is zero.
func (x Int) Quo(y Int) Int {
	return wrap(new(big.Int).Quo(x.big(), y.big()))
}

// Rem returns x % y with the sign of x, satisfying
// x == (x / y) * y + (x % y). Rem panics if y is zero.
func (x Int) Rem(y Int) Int {
	return wrap(new(big.Int).Rem(x.big(), y.big()))
}

// Neg returns -x, wrapping on overflow (the negation of Min is Min).
func (x Int) Neg() Int {
	return wrap(new(big.Int).Neg(x.big()))
}

// Abs returns the absolute value of x, wrapping on overflow (the
// absolute value of Min is Min).
func (x Int) Abs() Int {
	return wrap(new(big.Int).Abs(x.big()))
}

// Pow returns x**exp, keeping the low 512 bits of the true result.
func (x Int) Pow(exp uint32) Int {
	result := One
	base := x

	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}

		exp >>= 1
		if exp > 0 {
			base = base.Mul(base)
		}
	}

	return result
}

// CheckedAdd returns x + y, or false if the result overflows.
func (x Int) CheckedAdd(y Int) (Int, bool) {
	return checked(new(big.Int).Add(x.big(), y.big()))
}

// CheckedSub returns x - y, or false if the result overflows.
func (x Int) CheckedSub(y Int) (Int, bool) {
	return checked(new(big.Int).Sub(x.big(), y.big()))
}

// CheckedMul returns x * y, or false if the result overflows.
func (x Int) CheckedMul(y Int) (Int, bool) {
	return checked(new(big.Int).Mul(x.big(), y.big()))
}

// CheckedQuo returns x / y truncated toward zero, or false if y is
// zero or the result overflows (Min / -1).
func (x Int) CheckedQuo(y Int) (Int, bool) {
	if y.IsZero() {
		return Int{}, false
	}

	return checked(new(big.Int).Quo(x.big(), y.big()))
}

// CheckedRem returns x % y, or false if y is zero. The remainder
// always fits.
func (x Int) CheckedRem(y Int) (Int, bool) {
	if y.IsZero() {
		return Int{}, false
	}

	return checked(new(big.Int).Rem(x.big(), y.big()))
}

// Cmp compares x and y numerically, returning -1, 0, or +1.
func (x Int) Cmp(y Int) int {
	return x.big().Cmp(y.big())
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Int) Sign() int {
	return x.big().Sign()
}

// IsZero returns true if x is zero.
func (x Int) IsZero() bool {
	return x.Sign() == 0
}

// Equal returns true if x and y are numerically equal.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Parse interprets s in the given base, as accepted by
// big.Int.SetString, and rejects values outside the signed 512-bit
// range.
func Parse(s string, base int) (Int, error) {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Int{}, Error.New("invalid base %d literal: %q", base, s)
	}

	out, ok := checked(v)
	if !ok {
		return Int{}, Error.New("out of range: %q", s)
	}

	return out, nil
}

// Text formats x in the given base. Negative values carry a leading
// minus sign; digits beyond 9 are lowercase.
func (x Int) Text(base int) string {
	return x.big().Text(base)
}

// String formats x in base 10.
func (x Int) String() string {
	return x.Text(10)
}

// LittleEndianBytes returns the 64-byte little-endian two's-complement
// form of x.
func (x Int) LittleEndianBytes() (buf [Bytes]byte) {
	u := new(big.Int).And(x.big(), mask)

	be := make([]byte, Bytes)
	u.FillBytes(be)

	for i, b := range be {
		buf[Bytes-1-i] = b
	}

	return buf
}

// Words returns the eight 64-bit limbs of the two's-complement form,
// least significant first.
func (x Int) Words() (limbs [Limbs]uint64) {
	buf := x.LittleEndianBytes()

	for i := range limbs {
		limbs[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}

	return limbs
}

// FromLittleEndianBytes reconstructs a value from its 64-byte
// little-endian two's-complement form. Every byte pattern is a valid
// value, so reconstruction cannot fail.
func FromLittleEndianBytes(buf [Bytes]byte) Int {
	be := make([]byte, Bytes)
	for i, b := range buf {
		be[Bytes-1-i] = b
	}

	v := new(big.Int).SetBytes(be)
	if v.Cmp(maxBig) > 0 {
		v.Sub(v, modulus)
	}

	return Int{v: v}
}
