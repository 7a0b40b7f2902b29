package fraction

import (
	"math/big"
	"math/bits"
	"sync"
)

// fint (Fast INTeger) is a wrapper around uint64.
type fint uint64

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	s, carry := bits.Add64(uint64(x), uint64(y), 0)
	if carry != 0 {
		return 0, false
	}
	return fint(s), true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi != 0 {
		return 0, false
	}
	return fint(lo), true
}

// dist calculates |x - y|.
func (x fint) dist(y fint) fint {
	if x > y {
		return x - y
	}
	return y - x
}

// fsa (Fused Shift and Addition) calculates x * 10 + b and checks overflow.
func (x fint) fsa(b byte) (z fint, ok bool) {
	z, ok = x.mul(10)
	if !ok {
		return 0, false
	}
	return z.add(fint(b))
}

// cmpMul compares the full 128-bit products x * y and v * w and returns:
//
//	-1 if x * y < v * w
//	 0 if x * y == v * w
//	+1 if x * y > v * w
func cmpMul(x, y, v, w fint) int {
	xhi, xlo := bits.Mul64(uint64(x), uint64(y))
	vhi, vlo := bits.Mul64(uint64(v), uint64(w))
	switch {
	case xhi < vhi:
		return -1
	case xhi > vhi:
		return 1
	case xlo < vlo:
		return -1
	case xlo > vlo:
		return 1
	}
	return 0
}

// gcd calculates the greatest common divisor of x and y using
// the binary GCD algorithm.
// If either argument is 0, gcd returns x | y.
func (x fint) gcd(y fint) fint {
	if x == 0 || y == 0 {
		return x | y
	}

	// Power of two shared by x and y
	shift := bits.TrailingZeros64(uint64(x | y))

	x >>= bits.TrailingZeros64(uint64(x))
	for y != 0 {
		y >>= bits.TrailingZeros64(uint64(y))
		if x > y {
			x, y = y, x
		}
		y -= x
	}

	return x << shift
}

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setFint(x fint) {
	(*big.Int)(z).SetUint64(uint64(x))
}

// isFint returns true if z can be represented as fint.
func (z *bint) isFint() bool {
	return (*big.Int)(z).IsUint64()
}

// fint converts *big.Int to uint64.
// If z cannot be represented as uint64, the result is undefined.
func (z *bint) fint() fint {
	f := (*big.Int)(z).Uint64()
	return fint(f)
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// dist calculates z = |x - y|.
func (z *bint) dist(x, y *bint) {
	switch x.cmp(y) {
	case 1:
		z.sub(x, y)
	default:
		z.sub(y, x)
	}
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// quo calculates z = ⌊x / y⌋.
func (z *bint) quo(x, y *bint) {
	(*big.Int)(z).Quo((*big.Int)(x), (*big.Int)(y))
}

// rem calculates z = x - y * ⌊x / y⌋.
func (z *bint) rem(x, y *bint) {
	(*big.Int)(z).Rem((*big.Int)(x), (*big.Int)(y))
}

// gcd calculates z = gcd(x, y).
// Both x and y must be non-negative.
func (z *bint) gcd(x, y *bint) {
	(*big.Int)(z).GCD(nil, nil, (*big.Int)(x), (*big.Int)(y))
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
