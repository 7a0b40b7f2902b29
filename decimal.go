package fraction

import (
	"fmt"
	"math/bits"
	"strconv"
)

// DecimalString returns a decimal representation of f with exactly prec
// digits after the decimal point.
// The digits are produced by long division, so the result is exact up to
// the last digit, which is rounded half away from zero.
// A carry produced by rounding propagates into the preceding digits and
// the integer part, so 0.9996 with 3 digits is rendered as 1.000.
// The returned string is formatted according to the following formal
// EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits ['.' digits]
//
// The sign is present whenever f is negative, even if all rendered digits
// are zeros.
// If prec is 0 or negative, the integer part is rounded and rendered
// without a decimal point, so 5/2 becomes "3" and not "3.".
// This matches [math/big.Rat.FloatString].
func (f Fraction) DecimalString(prec int) string {
	if prec < 0 {
		prec = 0
	}
	buf := make([]byte, 0, decimalCap(prec))
	if f.IsNeg() {
		buf = append(buf, '-')
	}
	return string(f.appendDecimal(buf, prec))
}

// maxDecimalHint is the largest number of fractional digits preallocated
// by [Fraction.DecimalString].
// Longer renderings grow the buffer on demand.
const maxDecimalHint = 1 << 10

// decimalCap returns the initial buffer capacity for a decimal rendering
// with prec fractional digits: a sign, up to 20 integer digits, a point
// and the digits themselves.
func decimalCap(prec int) int {
	return 22 + min(max(prec, 0), maxDecimalHint)
}

// appendDecimal appends the decimal representation of |f| with prec
// fractional digits to buf.
func (f Fraction) appendDecimal(buf []byte, prec int) []byte {

	var (
		den  uint64
		intg uint64
		rem  uint64
	)

	den = uint64(f.den())

	// Integer part
	intg = uint64(f.num) / den
	rem = uint64(f.num) % den
	pos := len(buf)
	buf = strconv.AppendUint(buf, intg, 10)
	dot := len(buf)

	// Fractional part
	if prec > 0 {
		buf = append(buf, '.')
		for i := 0; i < prec; i++ {
			var d uint64
			d, rem = digit(rem, den)
			buf = append(buf, byte(d)+'0')
		}
	}

	// Rounding: the next digit decides
	if next, _ := digit(rem, den); next >= 5 {
		i := len(buf) - 1
		for ; i > dot && buf[i] == '9'; i-- {
			buf[i] = '0'
		}
		if i > dot {
			buf[i]++
			return buf
		}
		// The carry reached the integer part.
		// The remainder is non-zero only if den > 1, so intg < MaxUint64.
		tail := len(buf) - dot
		buf = strconv.AppendUint(buf[:pos], intg+1, 10)
		if tail > 0 {
			buf = append(buf, '.')
			for i := 1; i < tail; i++ {
				buf = append(buf, '0')
			}
		}
	}
	return buf
}

// digit calculates d = ⌊rem * 10 / den⌋ and the new remainder.
// rem must be less than den, so the 128-bit dividend never overflows the quotient.
func digit(rem, den uint64) (d, r uint64) {
	hi, lo := bits.Mul64(rem, 10)
	return bits.Div64(hi, lo, den)
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -1/3
//	%q:    "-1/3"
//	%f:     -0.333333
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f verb.
// The default precision is 6.
// Also see method [Fraction.DecimalString].
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (f Fraction) Format(state fmt.State, verb rune) {

	// Digits
	var body []byte
	switch verb {
	case 'f', 'F':
		prec, ok := state.Precision()
		if !ok {
			prec = 6
		}
		body = f.appendDecimal(nil, prec)
	default:
		body = []byte(f.Abs().String())
	}

	// Arithmetic sign
	rsign := 0
	if f.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(body) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case f.IsNeg():
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, body...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(fraction.Fraction="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
