package wideint

import (
	"encoding/binary"
	"math"
	"math/big"

	num "github.com/shabbyrobe/go-num"

	"github.com/valsera/wideint/internal/int512"
)

func bound(v *big.Int) int512.Int {
	out, ok := int512.FromBig(v)
	if !ok {
		panic("wideint: bound out of range")
	}

	return out
}

func floatBound(f float64) int512.Int {
	i, _ := big.NewFloat(f).Int(nil)

	return bound(i)
}

// Native width bounds, computed once.
var (
	minInt8  = int512.FromInt64(math.MinInt8)
	maxInt8  = int512.FromInt64(math.MaxInt8)
	minInt16 = int512.FromInt64(math.MinInt16)
	maxInt16 = int512.FromInt64(math.MaxInt16)
	minInt32 = int512.FromInt64(math.MinInt32)
	maxInt32 = int512.FromInt64(math.MaxInt32)
	minInt64 = int512.FromInt64(math.MinInt64)
	maxInt64 = int512.FromInt64(math.MaxInt64)
	minI128  = bound(num.MinI128.AsBigInt())
	maxI128  = bound(num.MaxI128.AsBigInt())

	maxUint8  = int512.FromInt64(math.MaxUint8)
	maxUint16 = int512.FromInt64(math.MaxUint16)
	maxUint32 = int512.FromInt64(math.MaxUint32)
	maxUint64 = int512.FromUint64(math.MaxUint64)
	maxU128   = bound(num.MaxU128.AsBigInt())
	maxUint   = int512.FromUint64(uint64(math.MaxUint))

	maxFloat32 = floatBound(math.MaxFloat32)
	minFloat32 = floatBound(-math.MaxFloat32)
)

func (x Int) fits(min, max int512.Int) bool {
	return x.v.Cmp(min) >= 0 && x.v.Cmp(max) <= 0
}

// fitsUnsigned checks the upper bound and, defensively, that the value
// is not negative.
func (x Int) fitsUnsigned(max int512.Int) bool {
	return x.v.Sign() >= 0 && x.v.Cmp(max) <= 0
}

// ToInt8 narrows x to an int8, reporting whether the value fits.
func (x Int) ToInt8() (int8, bool) {
	if !x.fits(minInt8, maxInt8) {
		return 0, false
	}

	buf := x.v.LittleEndianBytes()

	return int8(buf[0]), true
}

// ToInt16 narrows x to an int16, reporting whether the value fits.
func (x Int) ToInt16() (int16, bool) {
	if !x.fits(minInt16, maxInt16) {
		return 0, false
	}

	buf := x.v.LittleEndianBytes()

	return int16(binary.LittleEndian.Uint16(buf[:2])), true
}

// ToInt32 narrows x to an int32, reporting whether the value fits.
func (x Int) ToInt32() (int32, bool) {
	if !x.fits(minInt32, maxInt32) {
		return 0, false
	}

	buf := x.v.LittleEndianBytes()

	return int32(binary.LittleEndian.Uint32(buf[:4])), true
}

// ToInt64 narrows x to an int64, reporting whether the value fits.
func (x Int) ToInt64() (int64, bool) {
	if !x.fits(minInt64, maxInt64) {
		return 0, false
	}

	buf := x.v.LittleEndianBytes()

	return int64(binary.LittleEndian.Uint64(buf[:8])), true
}

// ToI128 narrows x to a signed 128-bit integer, reporting whether the
// value fits.
func (x Int) ToI128() (num.I128, bool) {
	if !x.fits(minI128, maxI128) {
		return num.I128{}, false
	}

	out, _ := num.I128FromBigInt(x.v.Big())

	return out, true
}

// ToUint8 narrows x to a uint8, reporting whether the value fits.
func (x Int) ToUint8() (uint8, bool) {
	if !x.fitsUnsigned(maxUint8) {
		return 0, false
	}

	buf := x.v.LittleEndianBytes()

	return buf[0], true
}

// ToUint16 narrows x to a uint16, reporting whether the value fits.
func (x Int) ToUint16() (uint16, bool) {
	if !x.fitsUnsigned(maxUint16) {
		return 0, false
	}

	buf := x.v.LittleEndianBytes()

	return binary.LittleEndian.Uint16(buf[:2]), true
}

// ToUint32 narrows x to a uint32, reporting whether the value fits.
func (x Int) ToUint32() (uint32, bool) {
	if !x.fitsUnsigned(maxUint32) {
		return 0, false
	}

	buf := x.v.LittleEndianBytes()

	return binary.LittleEndian.Uint32(buf[:4]), true
}

// ToUint64 narrows x to a uint64, reporting whether the value fits.
func (x Int) ToUint64() (uint64, bool) {
	if !x.fitsUnsigned(maxUint64) {
		return 0, false
	}

	buf := x.v.LittleEndianBytes()

	return binary.LittleEndian.Uint64(buf[:8]), true
}

// ToU128 narrows x to an unsigned 128-bit integer, reporting whether
// the value fits.
func (x Int) ToU128() (num.U128, bool) {
	if !x.fitsUnsigned(maxU128) {
		return num.U128{}, false
	}

	out, _ := num.U128FromBigInt(x.v.Big())

	return out, true
}

// ToUint narrows x to a uint, reporting whether the value fits the
// platform's uint width.
func (x Int) ToUint() (uint, bool) {
	if !x.fitsUnsigned(maxUint) {
		return 0, false
	}

	buf := x.v.LittleEndianBytes()

	return uint(binary.LittleEndian.Uint64(buf[:8])), true
}

// ToFloat32 converts x to the nearest float32, reporting whether the
// value is within the float32 range.
func (x Int) ToFloat32() (float32, bool) {
	if !x.fits(minFloat32, maxFloat32) {
		return 0, false
	}

	f, _ := new(big.Float).SetInt(x.v.Big()).Float32()

	return f, true
}

// ToFloat64 converts x to the nearest float64. Every 512-bit value is
// within the float64 range, so the conversion always succeeds; large
// magnitudes lose precision.
func (x Int) ToFloat64() (float64, bool) {
	f, _ := new(big.Float).SetInt(x.v.Big()).Float64()

	return f, true
}
