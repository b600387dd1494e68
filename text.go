package wideint

import (
	"strings"

	"github.com/calebcase/oops"

	"github.com/valsera/wideint/internal/int512"
)

// MarshalText implements encoding.TextMarshaler using the hex wire
// form: the absolute value in lowercase hex, prefixed "0x", with a
// leading "-" for negative values. Zero encodes as "0x0".
func (x Int) MarshalText() (data []byte, err error) {
	hex := x.v.Text(16)
	if strings.HasPrefix(hex, "-") {
		return []byte("-0x" + hex[1:]), nil
	}

	return []byte("0x" + hex), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The sign is taken
// from an optional leading "-", the "0x" prefix is stripped, and the
// remainder is parsed base 16. A missing prefix, empty or non-hex
// digits, or a magnitude beyond 512 bits fail with a decode error.
func (x *Int) UnmarshalText(data []byte) error {
	s := string(data)

	digits := s
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	if !strings.HasPrefix(digits, "0x") {
		return oops.Trace(conversionError(s))
	}
	digits = digits[2:]

	// The sign lives outside the prefix; big.Int would otherwise
	// accept one here too.
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return oops.Trace(conversionError(s))
	}

	v, err := int512.Parse(sign+digits, 16)
	if err != nil {
		return oops.Trace(conversionError(s))
	}

	x.v = v

	return nil
}
