/*
Package fraction implements immutable exact rational numbers.
It is specifically designed for numeric code that needs exact arithmetic
without floating-point rounding errors, such as the evaluation of series.

# Representation

[Fraction] is a struct with three fields:

  - Sign: a boolean indicating whether the fraction is negative.
  - Numerator: an unsigned 64-bit integer representing the magnitude
    of the numerator.
  - Denominator: an unsigned 64-bit integer, which is always positive.

The numerical value of a fraction is calculated as:

  - -Numerator / Denominator, if Sign is true.
  - Numerator / Denominator, if Sign is false.

Every fraction is kept in canonical form:

  - the numerator and the denominator are coprime, so 2/4 is stored as 1/2;
  - the value 0 is always stored as 0/1 with a positive sign.

Consequently, every rational number has exactly one representation and
fractions can be compared with the == operator.
The zero value of [Fraction] is 0/1.

# Constraints

The numerator and the denominator are limited to the range of uint64:

	| Bound    | Numerator                  | Denominator                |
	| -------- | -------------------------- | -------------------------- |
	| Minimum  | 0                          | 1                          |
	| Maximum  | 18,446,744,073,709,551,615 | 18,446,744,073,709,551,615 |

Special values such as NaN, Infinity, or negative zeros are not supported.
This ensures that arithmetic operations always produce either valid fractions
or errors.

# Conversions

The package provides methods for converting fractions:

  - from/to string:
    [Parse], [Fraction.String], [Fraction.DecimalString], [Fraction.Format].
  - from integers of any width:
    [New], [NewFromParts], [FromInt].
  - to float64:
    [Fraction.Float64], which is lossy.

Conversions from float64 are not provided.

# Operations

Each arithmetic operation is carried out in two steps:

 1. The operation is initially performed using uint64 arithmetic
    with cross-multiplication.
    If no overflow occurs, the result is reduced to lowest terms and returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated using [big.Int] arithmetic.
    The result is reduced to lowest terms.
    If the reduced numerator and denominator fit into uint64, the result
    is returned, otherwise an overflow error is returned.

All results are exact.
Integers of any width can be combined with fractions using the generic
helpers [AddInt], [SubInt], [MulInt], [QuoInt], [RemInt] and their
counterparts [IntAdd], [IntSub], [IntMul], [IntQuo], [IntRem].

# Remainder

[Fraction.Rem] computes the remainder over the cross-multiplied numerators.
For a/b and c/d the result is ((a * d) mod (c * b)) / (b * d), where mod
is truncating.
The sign of the result is negative if exactly one of the operands is negative.

# Rounding

[Fraction.DecimalString] renders a fraction using long division and rounds
the last digit half away from zero.
Carries produced by rounding propagate into the preceding digits and the
integer part.

# Errors

All methods are panic-free and pure, except the Must variants.
Errors are returned in the following cases:

  - Division by Zero.
    [NewFromParts], [New] and [Parse] return [ErrDivisionByZero] if the
    denominator is zero.
    [Fraction.Quo], [Fraction.Rem], [Fraction.Inv] and [Fraction.Pow] do not
    panic when dividing by 0.
    Instead, they return [ErrDivisionByZero].

  - Overflow.
    Unlike standard integers, there is no "wrap around" for fractions.
    For out-of-range values, arithmetic operations return [ErrOverflow].

Errors are wrapped with context, use [errors.Is] to test for them.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package fraction
