package wideint

// Neg returns -x, wrapping on overflow: the negation of the minimum
// value is the minimum value.
func (x Int) Neg() Int {
	return Int{v: x.v.Neg()}
}

// Add returns x + y, wrapping on overflow.
func (x Int) Add(y Int) Int {
	return Int{v: x.v.Add(y.v)}
}

// Sub returns x - y, wrapping on overflow.
func (x Int) Sub(y Int) Int {
	return Int{v: x.v.Sub(y.v)}
}

// Mul returns x * y, wrapping on overflow.
func (x Int) Mul(y Int) Int {
	return Int{v: x.v.Mul(y.v)}
}

// Div returns x / y truncated toward zero, wrapping on overflow. Div
// panics if y is zero.
func (x Int) Div(y Int) Int {
	return Int{v: x.v.Quo(y.v)}
}

// Rem returns x % y with the sign of x, satisfying
// x.Equal(x.Div(y).Mul(y).Add(x.Rem(y))). Rem panics if y is zero.
func (x Int) Rem(y Int) Int {
	return Int{v: x.v.Rem(y.v)}
}

// Abs returns the absolute value of x, wrapping on overflow: the
// absolute value of the minimum value is the minimum value.
func (x Int) Abs() Int {
	return Int{v: x.v.Abs()}
}

// Pow returns x**exp, keeping the low 512 bits of the true result.
func (x Int) Pow(exp uint32) Int {
	return Int{v: x.v.Pow(exp)}
}

// CheckedAdd returns x + y, or false if the result overflows.
func (x Int) CheckedAdd(y Int) (Int, bool) {
	out, ok := x.v.CheckedAdd(y.v)

	return Int{v: out}, ok
}

// CheckedSub returns x - y, or false if the result overflows.
func (x Int) CheckedSub(y Int) (Int, bool) {
	out, ok := x.v.CheckedSub(y.v)

	return Int{v: out}, ok
}

// CheckedMul returns x * y, or false if the result overflows.
func (x Int) CheckedMul(y Int) (Int, bool) {
	out, ok := x.v.CheckedMul(y.v)

	return Int{v: out}, ok
}

// CheckedDiv returns x / y truncated toward zero, or false if y is
// zero or the result overflows.
func (x Int) CheckedDiv(y Int) (Int, bool) {
	out, ok := x.v.CheckedQuo(y.v)

	return Int{v: out}, ok
}

// CheckedRem returns x % y, or false if y is zero.
func (x Int) CheckedRem(y Int) (Int, bool) {
	out, ok := x.v.CheckedRem(y.v)

	return Int{v: out}, ok
}

// Sum folds vs with addition starting from zero. An empty input yields
// zero.
func Sum(vs ...Int) Int {
	acc := Zero()
	for _, v := range vs {
		acc = acc.Add(v)
	}

	return acc
}

// Product folds vs with multiplication starting from one. An empty
// input yields one.
func Product(vs ...Int) Int {
	acc := One()
	for _, v := range vs {
		acc = acc.Mul(v)
	}

	return acc
}

// Cmp compares x and y numerically, returning -1, 0, or +1.
func (x Int) Cmp(y Int) int {
	return x.v.Cmp(y.v)
}

// Equal returns true if x and y are numerically equal.
func (x Int) Equal(y Int) bool {
	return x.v.Equal(y.v)
}

// IsZero returns true if x is zero.
func (x Int) IsZero() bool {
	return x.v.IsZero()
}

// IsNegative returns true if x is strictly negative.
func (x Int) IsNegative() bool {
	return x.v.Sign() < 0
}

// IsPositive returns true if x is strictly positive.
func (x Int) IsPositive() bool {
	return x.v.Sign() > 0
}

// IsZeroOrPositive returns true if x is not negative.
func (x Int) IsZeroOrPositive() bool {
	return x.v.Sign() >= 0
}

// IsZeroOrNegative returns true if x is not positive.
func (x Int) IsZeroOrNegative() bool {
	return x.v.Sign() <= 0
}
