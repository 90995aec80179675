// Package mathz provides integer division and modulo rounded toward negative
// infinity, plus a few bit tricks for small power-of-two divisors.
//
// Go's / and % truncate toward zero, which gives the wrong answer for
// calendrical arithmetic as soon as a year or a day count goes negative.
package mathz

// Integer is the set of signed integer types the calendar formulas are
// written for.
type Integer interface {
	~int | ~int32 | ~int64
}

// Divide returns the floor of m / n. The divisor must be positive.
func Divide[T Integer](m, n T) T {
	q := m / n
	if m < 0 && q*n != m {
		q--
	}
	return q
}

// Modulo returns m mod n in the range [0, n). The divisor must be positive.
func Modulo[T Integer](m, n T) T {
	r := m % n
	if r < 0 {
		r += n
	}
	return r
}

// DivMod returns both the floor quotient and the non-negative remainder of
// m / n, so that m == q*n + r. The divisor must be positive.
func DivMod[T Integer](m, n T) (q, r T) {
	q = m / n
	r = m - q*n
	if r < 0 {
		q--
		r += n
	}
	return q, r
}

// AdjustedModulo returns m mod n in the range [1, n] instead of [0, n).
func AdjustedModulo[T Integer](m, n T) T {
	r := Modulo(m, n)
	if r == 0 {
		return n
	}
	return r
}

// IsEven reports whether m is even. Works for negative values.
func IsEven[T Integer](m T) bool {
	return m&1 == 0
}

// IsOdd reports whether m is odd. Works for negative values.
func IsOdd[T Integer](m T) bool {
	return m&1 != 0
}

// Divide4 returns the floor of m / 4. The arithmetic shift already rounds
// toward negative infinity.
func Divide4[T Integer](m T) T {
	return m >> 2
}

// Modulo4 returns m mod 4 in the range [0, 4).
func Modulo4[T Integer](m T) T {
	return m & 3
}
