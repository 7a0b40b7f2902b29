// Package series evaluates partial sums of rational series for pi.
package series

import (
	"errors"
	"fmt"

	"github.com/govalues/fraction"
)

// ErrNegativeTerms is returned when a series is requested with a negative
// number of terms.
var ErrNegativeTerms = errors.New("negative number of terms")

// maxTerms is the largest number of Nilakantha terms whose sum fits a
// [fraction.Fraction].
const maxTerms = 22

// Step is a partial sum of a series after a given number of terms.
type Step struct {
	Term int               // the number of terms added so far
	Sum  fraction.Fraction // the exact partial sum
}

// Nilakantha returns the sum of the first terms of the Nilakantha series:
//
//	pi = 3 + 4/(2*3*4) - 4/(4*5*6) + 4/(6*7*8) - ...
//
// The sum is exact.
// Since the denominators of the partial sums grow quickly, fraction.ErrOverflow
// is returned for more than 22 terms.
func Nilakantha(terms int) (fraction.Fraction, error) {
	var sum fraction.Fraction
	err := nilakantha(terms, func(s Step) {
		sum = s.Sum
	})
	if err != nil {
		return fraction.Fraction{}, err
	}
	return sum, nil
}

// NilakanthaSteps is like [Nilakantha], but returns every partial sum.
// The first step is the constant 3 with Term equal to 0.
func NilakanthaSteps(terms int) ([]Step, error) {
	if terms < 0 {
		return nil, fmt.Errorf("computing %v terms: %w", terms, ErrNegativeTerms)
	}
	steps := make([]Step, 0, min(terms, maxTerms)+1)
	err := nilakantha(terms, func(s Step) {
		steps = append(steps, s)
	})
	if err != nil {
		return nil, err
	}
	return steps, nil
}

func nilakantha(terms int, yield func(Step)) error {
	if terms < 0 {
		return fmt.Errorf("computing %v terms: %w", terms, ErrNegativeTerms)
	}

	sum := fraction.MustNew(3, 1)
	sign := 1
	yield(Step{Term: 0, Sum: sum})

	for n := 1; n <= terms; n++ {
		term, err := nilakanthaTerm(n)
		if err != nil {
			return fmt.Errorf("computing term %v: %w", n, err)
		}
		term, err = fraction.IntMul(sign, term)
		if err != nil {
			return fmt.Errorf("computing term %v: %w", n, err)
		}
		sum, err = sum.Add(term)
		if err != nil {
			return fmt.Errorf("adding term %v: %w", n, err)
		}
		sign = -sign
		yield(Step{Term: n, Sum: sum})
	}
	return nil
}

// nilakanthaTerm returns the magnitude of the n-th term, 4/(i*(i+1)*(i+2))
// with i = 2n.
func nilakanthaTerm(n int) (fraction.Fraction, error) {
	i := fraction.FromInt(2 * n)
	den := i
	for k := 1; k <= 2; k++ {
		f, err := fraction.AddInt(i, k)
		if err != nil {
			return fraction.Fraction{}, err
		}
		den, err = den.Mul(f)
		if err != nil {
			return fraction.Fraction{}, err
		}
	}
	return fraction.IntQuo(4, den)
}
