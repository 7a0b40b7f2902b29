package fraction

import "fmt"

// MustAdd is like [Fraction.Add] but panics if computing error.
func (f Fraction) MustAdd(e Fraction) Fraction {
	g, err := f.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", f, err))
	}
	return g
}

// MustSub is like [Fraction.Sub] but panics if computing error.
func (f Fraction) MustSub(e Fraction) Fraction {
	g, err := f.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", f, err))
	}
	return g
}

// MustMul is like [Fraction.Mul] but panics if computing error.
func (f Fraction) MustMul(e Fraction) Fraction {
	g, err := f.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", f, err))
	}
	return g
}

// MustQuo is like [Fraction.Quo] but panics if computing error.
func (f Fraction) MustQuo(e Fraction) Fraction {
	g, err := f.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", f, err))
	}
	return g
}

// MustRem is like [Fraction.Rem] but panics if computing error.
func (f Fraction) MustRem(e Fraction) Fraction {
	g, err := f.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", f, err))
	}
	return g
}
