package fraction

import (
	"golang.org/x/exp/constraints"
)

// FromInt returns a fraction equal to v / 1.
// The sign of the result is the sign of v; unsigned values are always positive.
// Every integer of every width is representable, so FromInt never fails.
func FromInt[T constraints.Integer](v T) Fraction {
	if v < 0 {
		// -(v + 1) does not overflow for the minimum value of a signed type.
		return Fraction{neg: true, num: fint(-(v + 1)) + 1}
	}
	return Fraction{num: fint(v)}
}

// AddInt returns f + v.
func AddInt[T constraints.Integer](f Fraction, v T) (Fraction, error) {
	return f.Add(FromInt(v))
}

// SubInt returns f - v.
func SubInt[T constraints.Integer](f Fraction, v T) (Fraction, error) {
	return f.Sub(FromInt(v))
}

// MulInt returns f * v.
func MulInt[T constraints.Integer](f Fraction, v T) (Fraction, error) {
	return f.Mul(FromInt(v))
}

// QuoInt returns f / v.
// QuoInt returns an error if v is 0.
func QuoInt[T constraints.Integer](f Fraction, v T) (Fraction, error) {
	return f.Quo(FromInt(v))
}

// RemInt returns f % v, see [Fraction.Rem].
// RemInt returns an error if v is 0.
func RemInt[T constraints.Integer](f Fraction, v T) (Fraction, error) {
	return f.Rem(FromInt(v))
}

// IntAdd returns v + f.
func IntAdd[T constraints.Integer](v T, f Fraction) (Fraction, error) {
	return FromInt(v).Add(f)
}

// IntSub returns v - f.
func IntSub[T constraints.Integer](v T, f Fraction) (Fraction, error) {
	return FromInt(v).Sub(f)
}

// IntMul returns v * f.
func IntMul[T constraints.Integer](v T, f Fraction) (Fraction, error) {
	return FromInt(v).Mul(f)
}

// IntQuo returns v / f.
// IntQuo returns an error if f is 0.
func IntQuo[T constraints.Integer](v T, f Fraction) (Fraction, error) {
	return FromInt(v).Quo(f)
}

// IntRem returns v % f, see [Fraction.Rem].
// IntRem returns an error if f is 0.
func IntRem[T constraints.Integer](v T, f Fraction) (Fraction, error) {
	return FromInt(v).Rem(f)
}
