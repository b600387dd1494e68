package wideint

import (
	"strconv"
	"strings"

	num "github.com/shabbyrobe/go-num"
	"github.com/shopspring/decimal"

	"github.com/valsera/wideint/internal/int512"
)

// Int is a 512-bit two's-complement signed integer value. The zero
// value is zero.
type Int struct {
	v int512.Int
}

// Zero returns the value 0.
func Zero() Int {
	return Int{}
}

// One returns the value 1.
func One() Int {
	return Int{v: int512.One}
}

// Min returns the smallest representable value, -(2^511).
func Min() Int {
	return Int{v: int512.Min}
}

// Max returns the largest representable value, 2^511 - 1.
func Max() Int {
	return Int{v: int512.Max}
}

// FromInt8 returns the value of v.
func FromInt8(v int8) Int { return FromInt64(int64(v)) }

// FromInt16 returns the value of v.
func FromInt16(v int16) Int { return FromInt64(int64(v)) }

// FromInt32 returns the value of v.
func FromInt32(v int32) Int { return FromInt64(int64(v)) }

// FromInt64 returns the value of v.
func FromInt64(v int64) Int {
	return Int{v: int512.FromInt64(v)}
}

// FromInt returns the value of v.
func FromInt(v int) Int { return FromInt64(int64(v)) }

// FromUint8 returns the value of v.
func FromUint8(v uint8) Int { return FromUint64(uint64(v)) }

// FromUint16 returns the value of v.
func FromUint16(v uint16) Int { return FromUint64(uint64(v)) }

// FromUint32 returns the value of v.
func FromUint32(v uint32) Int { return FromUint64(uint64(v)) }

// FromUint64 returns the value of v.
func FromUint64(v uint64) Int {
	return Int{v: int512.FromUint64(v)}
}

// FromUint returns the value of v.
func FromUint(v uint) Int { return FromUint64(uint64(v)) }

// FromI128 returns the value of v.
func FromI128(v num.I128) Int {
	out, _ := int512.FromBig(v.AsBigInt())

	return Int{v: out}
}

// FromU128 returns the value of v.
func FromU128(v num.U128) Int {
	out, _ := int512.FromBig(v.AsBigInt())

	return Int{v: out}
}

// TryFromFloat64 never succeeds: the float conversion path is
// unimplemented and always returns a ConversionError, for every input
// including 0.0.
func TryFromFloat64(v float64) (Int, error) {
	return Int{}, conversionError(strconv.FormatFloat(v, 'g', -1, 64))
}

// TryFromDecimal truncates v toward zero and returns the integral
// part, which must fit in a signed 128-bit integer. Out-of-range
// decimals yield a ConversionError.
func TryFromDecimal(v decimal.Decimal) (Int, error) {
	i, accurate := num.I128FromBigInt(v.BigInt())
	if !accurate {
		return Int{}, conversionError(v.String())
	}

	return FromI128(i), nil
}

// TryFromString parses a signed base 10 integer literal: an optional
// leading minus sign followed by decimal digits. Malformed input and
// values beyond 512 bits yield a ConversionError.
func TryFromString(v string) (Int, error) {
	if strings.HasPrefix(v, "+") {
		return Int{}, conversionError(v)
	}

	out, err := int512.Parse(v, 10)
	if err != nil {
		return Int{}, conversionError(v)
	}

	return Int{v: out}, nil
}

// TryFromBytes lossily decodes v as UTF-8, replacing invalid sequences
// with U+FFFD, then parses the result like TryFromString.
func TryFromBytes(v []byte) (Int, error) {
	return TryFromString(strings.ToValidUTF8(string(v), "�"))
}

// String formats the value in base 10, the human-readable display
// form. The wire form is hexadecimal; see MarshalText.
func (x Int) String() string {
	return x.v.String()
}
