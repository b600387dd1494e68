package wideint_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valsera/wideint"
)

func TestNarrowingBounds(t *testing.T) {
	one := wideint.One()

	type TC struct {
		name string
		in   wideint.Int
		fits func(wideint.Int) bool
		ok   bool
	}

	toInt8 := func(v wideint.Int) bool { _, ok := v.ToInt8(); return ok }
	toInt16 := func(v wideint.Int) bool { _, ok := v.ToInt16(); return ok }
	toInt32 := func(v wideint.Int) bool { _, ok := v.ToInt32(); return ok }
	toInt64 := func(v wideint.Int) bool { _, ok := v.ToInt64(); return ok }
	toI128 := func(v wideint.Int) bool { _, ok := v.ToI128(); return ok }
	toUint8 := func(v wideint.Int) bool { _, ok := v.ToUint8(); return ok }
	toUint16 := func(v wideint.Int) bool { _, ok := v.ToUint16(); return ok }
	toUint32 := func(v wideint.Int) bool { _, ok := v.ToUint32(); return ok }
	toUint64 := func(v wideint.Int) bool { _, ok := v.ToUint64(); return ok }
	toU128 := func(v wideint.Int) bool { _, ok := v.ToU128(); return ok }
	toUint := func(v wideint.Int) bool { _, ok := v.ToUint(); return ok }

	maxUint64 := wideint.FromUint64(math.MaxUint64)
	maxU128 := maxUint64.Add(one).Mul(maxUint64.Add(one)).Sub(one)
	maxI128 := maxUint64.Add(one).Mul(wideint.FromUint64(1 << 63)).Sub(one)
	minI128 := maxI128.Neg().Sub(one)

	tcs := []TC{
		{name: "int8 max", in: wideint.FromInt64(math.MaxInt8), fits: toInt8, ok: true},
		{name: "int8 max+1", in: wideint.FromInt64(math.MaxInt8).Add(one), fits: toInt8, ok: false},
		{name: "int8 min", in: wideint.FromInt64(math.MinInt8), fits: toInt8, ok: true},
		{name: "int8 min-1", in: wideint.FromInt64(math.MinInt8).Sub(one), fits: toInt8, ok: false},

		{name: "int16 max", in: wideint.FromInt64(math.MaxInt16), fits: toInt16, ok: true},
		{name: "int16 max+1", in: wideint.FromInt64(math.MaxInt16).Add(one), fits: toInt16, ok: false},
		{name: "int16 min", in: wideint.FromInt64(math.MinInt16), fits: toInt16, ok: true},
		{name: "int16 min-1", in: wideint.FromInt64(math.MinInt16).Sub(one), fits: toInt16, ok: false},

		{name: "int32 max", in: wideint.FromInt64(math.MaxInt32), fits: toInt32, ok: true},
		{name: "int32 max+1", in: wideint.FromInt64(math.MaxInt32).Add(one), fits: toInt32, ok: false},
		{name: "int32 min", in: wideint.FromInt64(math.MinInt32), fits: toInt32, ok: true},
		{name: "int32 min-1", in: wideint.FromInt64(math.MinInt32).Sub(one), fits: toInt32, ok: false},

		{name: "int64 max", in: wideint.FromInt64(math.MaxInt64), fits: toInt64, ok: true},
		{name: "int64 max+1", in: wideint.FromInt64(math.MaxInt64).Add(one), fits: toInt64, ok: false},
		{name: "int64 min", in: wideint.FromInt64(math.MinInt64), fits: toInt64, ok: true},
		{name: "int64 min-1", in: wideint.FromInt64(math.MinInt64).Sub(one), fits: toInt64, ok: false},

		{name: "i128 max", in: maxI128, fits: toI128, ok: true},
		{name: "i128 max+1", in: maxI128.Add(one), fits: toI128, ok: false},
		{name: "i128 min", in: minI128, fits: toI128, ok: true},
		{name: "i128 min-1", in: minI128.Sub(one), fits: toI128, ok: false},

		{name: "uint8 max", in: wideint.FromInt64(math.MaxUint8), fits: toUint8, ok: true},
		{name: "uint8 max+1", in: wideint.FromInt64(math.MaxUint8).Add(one), fits: toUint8, ok: false},
		{name: "uint8 zero", in: wideint.Zero(), fits: toUint8, ok: true},
		{name: "uint8 negative", in: wideint.FromInt64(-1), fits: toUint8, ok: false},

		{name: "uint16 max", in: wideint.FromInt64(math.MaxUint16), fits: toUint16, ok: true},
		{name: "uint16 max+1", in: wideint.FromInt64(math.MaxUint16).Add(one), fits: toUint16, ok: false},
		{name: "uint16 negative", in: wideint.FromInt64(-1), fits: toUint16, ok: false},

		{name: "uint32 max", in: wideint.FromInt64(math.MaxUint32), fits: toUint32, ok: true},
		{name: "uint32 max+1", in: wideint.FromInt64(math.MaxUint32).Add(one), fits: toUint32, ok: false},
		{name: "uint32 negative", in: wideint.FromInt64(-1), fits: toUint32, ok: false},

		{name: "uint64 max", in: maxUint64, fits: toUint64, ok: true},
		{name: "uint64 max+1", in: maxUint64.Add(one), fits: toUint64, ok: false},
		{name: "uint64 negative", in: wideint.FromInt64(-1), fits: toUint64, ok: false},

		{name: "u128 max", in: maxU128, fits: toU128, ok: true},
		{name: "u128 max+1", in: maxU128.Add(one), fits: toU128, ok: false},
		{name: "u128 negative", in: wideint.FromInt64(-1), fits: toU128, ok: false},

		{name: "uint max", in: wideint.FromUint(math.MaxUint), fits: toUint, ok: true},
		{name: "uint max+1", in: wideint.FromUint(math.MaxUint).Add(one), fits: toUint, ok: false},
		{name: "uint negative", in: wideint.FromInt64(-1), fits: toUint, ok: false},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.ok, tc.fits(tc.in))
		})
	}
}

func TestNarrowingValues(t *testing.T) {
	t.Run("negative int16", func(t *testing.T) {
		got, ok := wideint.FromInt64(-1234).ToInt16()
		require.True(t, ok)
		require.Equal(t, int16(-1234), got)
	})

	t.Run("negative int32", func(t *testing.T) {
		got, ok := wideint.FromInt64(math.MinInt32).ToInt32()
		require.True(t, ok)
		require.Equal(t, int32(math.MinInt32), got)
	})

	t.Run("uint32 upper half", func(t *testing.T) {
		got, ok := wideint.FromUint32(math.MaxUint32 - 1).ToUint32()
		require.True(t, ok)
		require.Equal(t, uint32(math.MaxUint32-1), got)
	})
}

func TestToFloat(t *testing.T) {
	t.Run("float64 exact", func(t *testing.T) {
		got, ok := wideint.FromInt64(-42).ToFloat64()
		require.True(t, ok)
		require.Equal(t, -42.0, got)
	})

	t.Run("float64 huge", func(t *testing.T) {
		got, ok := wideint.Max().ToFloat64()
		require.True(t, ok)
		require.False(t, math.IsInf(got, 0))
		require.InEpsilon(t, math.Pow(2, 511), got, 1e-9)
	})

	t.Run("float32 exact", func(t *testing.T) {
		got, ok := wideint.FromInt64(1 << 20).ToFloat32()
		require.True(t, ok)
		require.Equal(t, float32(1<<20), got)
	})

	t.Run("float32 out of range", func(t *testing.T) {
		// 2^128 is just past the largest float32.
		big := wideint.FromInt64(2).Pow(128)

		_, ok := big.ToFloat32()
		require.False(t, ok)

		_, ok = big.Neg().ToFloat32()
		require.False(t, ok)
	})

	t.Run("float32 boundary", func(t *testing.T) {
		// MaxFloat32 is (2 - 2^-23) * 2^127, an exact integer.
		maxF32, err := wideint.TryFromString("340282346638528859811704183484516925440")
		require.NoError(t, err)

		got, ok := maxF32.ToFloat32()
		require.True(t, ok)
		require.Equal(t, float32(math.MaxFloat32), got)

		_, ok = maxF32.Add(wideint.One()).ToFloat32()
		require.False(t, ok)
	})
}
