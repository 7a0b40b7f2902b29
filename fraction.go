package fraction

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math/big"
)

// Fraction type is a representation of an exact rational number.
// The zero value is the numeric value of 0, represented as 0/1.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A fraction type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the fraction is negative.
//   - Numerator: an unsigned integer representing the magnitude of the numerator.
//   - Denominator: a positive unsigned integer.
//
// Every fraction is stored in lowest terms, so the same numerical value
// always has exactly one representation.
// For example, 2/4 and 1/2 represent the same value and are stored as 1/2.
// As a consequence, two fractions can be compared with the == operator.
//
// One important aspect of the fraction is that it does not support
// signed zeros: 0 is always positive.
type Fraction struct {
	neg  bool // indicates whether the fraction is negative
	num  fint // the numerator of the fraction
	denm fint // the denominator of the fraction minus one
}

var (
	// ErrDivisionByZero is returned when a fraction is constructed with
	// a zero denominator or when a fraction is divided by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is returned when the numerator or the denominator
	// of a result cannot be represented as uint64.
	ErrOverflow = errors.New("fraction overflow")
	// ErrInvalidFraction is returned when a string does not represent
	// a valid fraction.
	ErrInvalidFraction = errors.New("invalid fraction")
)

var (
	Zero = Fraction{}                    // Zero represents the fraction 0/1.
	One  = MustNewFromParts(false, 1, 1) // One represents the fraction 1/1.
)

// newFraction reduces num / den to lowest terms and normalizes the sign of zero.
func newFraction(neg bool, num, den fint) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	if num == 0 {
		return Fraction{}, nil
	}
	if g := num.gcd(den); g != 1 {
		num /= g
		den /= g
	}
	return Fraction{neg: neg, num: num, denm: den - 1}, nil
}

// newFractionFromBint is like newFraction, but accepts arbitrary-precision
// numerator and denominator. It returns an error if the reduced numerator
// or denominator cannot be represented as uint64.
func newFractionFromBint(neg bool, num, den *bint) (Fraction, error) {
	if den.sign() == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	if num.sign() == 0 {
		return Fraction{}, nil
	}
	g := getBint()
	defer putBint(g)
	g.gcd(num, den)
	num.quo(num, g)
	den.quo(den, g)
	if !num.isFint() {
		return Fraction{}, fmt.Errorf("numerator %v: %w", num.string(), ErrOverflow)
	}
	if !den.isFint() {
		return Fraction{}, fmt.Errorf("denominator %v: %w", den.string(), ErrOverflow)
	}
	return newFraction(neg, num.fint(), den.fint())
}

// NewFromParts returns a fraction equal to num / den, negated if neg is true.
// The result is reduced to lowest terms.
//
// NewFromParts returns an error if den is 0.
func NewFromParts(neg bool, num, den uint64) (Fraction, error) {
	f, err := newFraction(neg, fint(num), fint(den))
	if err != nil {
		return Fraction{}, fmt.Errorf("converting parts: %w", err)
	}
	return f, nil
}

// MustNewFromParts is like [NewFromParts] but panics if the fraction
// cannot be constructed.
// It simplifies safe initialization of global variables holding fractions.
func MustNewFromParts(neg bool, num, den uint64) Fraction {
	f, err := NewFromParts(neg, num, den)
	if err != nil {
		panic(fmt.Sprintf("NewFromParts(%v, %v, %v) failed: %v", neg, num, den, err))
	}
	return f
}

// New returns a fraction equal to num / den.
// Either argument may be negative; the sign of the result is negative
// if exactly one of them is negative.
//
// New returns an error if den is 0.
func New(num, den int64) (Fraction, error) {
	f, err := newFraction((num < 0) != (den < 0), abs(num), abs(den))
	if err != nil {
		return Fraction{}, fmt.Errorf("converting integers: %w", err)
	}
	return f, nil
}

// abs returns |x| as fint without overflowing on math.MinInt64.
func abs(x int64) fint {
	if x < 0 {
		return fint(-(x + 1)) + 1
	}
	return fint(x)
}

// MustNew is like [New] but panics if the fraction cannot be constructed.
// It simplifies safe initialization of global variables holding fractions.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// Num returns the numerator of f without its sign.
func (f Fraction) Num() uint64 {
	return uint64(f.num)
}

// Den returns the denominator of f, which is always positive.
func (f Fraction) Den() uint64 {
	return uint64(f.den())
}

func (f Fraction) den() fint {
	return f.denm + 1
}

// Simplify returns f reduced to lowest terms.
// Since fractions are always kept in lowest terms, the result is identical to f;
// Simplify is idempotent.
func (f Fraction) Simplify() Fraction {
	g, err := newFraction(f.neg, f.num, f.den())
	if err != nil {
		panic(fmt.Sprintf("%v.Simplify() failed: %v", f, err))
	}
	return g
}

// Float64 returns the nearest binary floating-point number to f.
// The conversion is lossy.
func (f Fraction) Float64() float64 {
	var g float64
	if f.num <= 1<<53 && f.den() <= 1<<53 {
		// Both operands are exact, so the division is correctly rounded.
		g = float64(f.num) / float64(f.den())
	} else {
		num := new(big.Int).SetUint64(uint64(f.num))
		den := new(big.Int).SetUint64(uint64(f.den()))
		g, _ = new(big.Rat).SetFrac(num, den).Float64()
	}
	if f.neg {
		g = -g
	}
	return g
}

// Neg returns f with opposite sign.
func (f Fraction) Neg() Fraction {
	if f.IsZero() {
		return f
	}
	f.neg = !f.neg
	return f
}

// Abs returns absolute value of f.
func (f Fraction) Abs() Fraction {
	f.neg = false
	return f
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f == 0
//	+1 if f > 0
func (f Fraction) Sign() int {
	switch {
	case f.neg:
		return -1
	case f.num == 0:
		return 0
	}
	return 1
}

// IsPos returns true if f > 0.
func (f Fraction) IsPos() bool {
	return f.num != 0 && !f.neg
}

// IsNeg returns true if f < 0.
func (f Fraction) IsNeg() bool {
	return f.neg
}

// IsZero returns true if f == 0.
func (f Fraction) IsZero() bool {
	return f.num == 0
}

// IsInt returns true if the denominator of f is 1.
func (f Fraction) IsInt() bool {
	return f.denm == 0
}

// Add returns the sum of f and e.
//
// Add returns an error if the numerator or the denominator of the sum
// cannot be represented as uint64.
func (f Fraction) Add(e Fraction) (Fraction, error) {
	g, err := add(f, e)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v + %v]: %w", f, e, err)
	}
	return g, nil
}

// Sub returns the difference of f and e.
//
// Sub returns an error if the numerator or the denominator of the difference
// cannot be represented as uint64.
func (f Fraction) Sub(e Fraction) (Fraction, error) {
	g, err := add(f, e.Neg())
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v - %v]: %w", f, e, err)
	}
	return g, nil
}

func add(f, e Fraction) (Fraction, error) {
	g, err := addFast(f, e)
	if err != nil {
		g, err = addSlow(f, e)
	}
	return g, err
}

// addFast computes f + e using cross-multiplication.
// Operands with different signs are combined by subtracting the smaller
// magnitude from the larger one, so no signed intermediate is needed.
func addFast(f, e Fraction) (Fraction, error) {

	var (
		fnum fint
		enum fint
		den  fint
		neg  bool
		ok   bool
	)

	// Cross-multiplication
	fnum, ok = f.num.mul(e.den())
	if !ok {
		return Fraction{}, ErrOverflow
	}
	enum, ok = e.num.mul(f.den())
	if !ok {
		return Fraction{}, ErrOverflow
	}
	den, ok = f.den().mul(e.den())
	if !ok {
		return Fraction{}, ErrOverflow
	}

	// Sign
	if enum < fnum {
		neg = f.IsNeg()
	} else {
		neg = e.IsNeg()
	}

	// Numerator
	if f.IsNeg() != e.IsNeg() {
		fnum = fnum.dist(enum)
	} else {
		fnum, ok = fnum.add(enum)
		if !ok {
			return Fraction{}, ErrOverflow
		}
	}

	return newFraction(neg, fnum, den)
}

func addSlow(f, e Fraction) (Fraction, error) {

	var (
		fnum *bint
		enum *bint
		den  *bint
		tmp  *bint
		neg  bool
	)

	fnum = getBint()
	defer putBint(fnum)
	enum = getBint()
	defer putBint(enum)
	den = getBint()
	defer putBint(den)
	tmp = getBint()
	defer putBint(tmp)

	// Cross-multiplication
	fnum.setFint(f.num)
	tmp.setFint(e.den())
	fnum.mul(fnum, tmp)
	enum.setFint(e.num)
	tmp.setFint(f.den())
	enum.mul(enum, tmp)
	den.setFint(f.den())
	tmp.setFint(e.den())
	den.mul(den, tmp)

	// Sign
	if fnum.cmp(enum) > 0 {
		neg = f.IsNeg()
	} else {
		neg = e.IsNeg()
	}

	// Numerator
	if f.IsNeg() != e.IsNeg() {
		fnum.dist(fnum, enum)
	} else {
		fnum.add(fnum, enum)
	}

	return newFractionFromBint(neg, fnum, den)
}

// Mul returns the product of f and e.
//
// Mul returns an error if the numerator or the denominator of the product
// cannot be represented as uint64.
func (f Fraction) Mul(e Fraction) (Fraction, error) {
	g, err := mulFast(f, e)
	if err != nil {
		g, err = mulSlow(f, e)
		if err != nil {
			return Fraction{}, fmt.Errorf("computing [%v * %v]: %w", f, e, err)
		}
	}
	return g, nil
}

func mulFast(f, e Fraction) (Fraction, error) {

	var (
		num fint
		den fint
		neg bool
		ok  bool
	)

	// Numerator and denominator
	num, ok = f.num.mul(e.num)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	den, ok = f.den().mul(e.den())
	if !ok {
		return Fraction{}, ErrOverflow
	}

	// Sign
	neg = f.IsNeg() != e.IsNeg()

	return newFraction(neg, num, den)
}

func mulSlow(f, e Fraction) (Fraction, error) {

	var (
		num *bint
		den *bint
		tmp *bint
		neg bool
	)

	num = getBint()
	defer putBint(num)
	den = getBint()
	defer putBint(den)
	tmp = getBint()
	defer putBint(tmp)

	// Numerator and denominator
	num.setFint(f.num)
	tmp.setFint(e.num)
	num.mul(num, tmp)
	den.setFint(f.den())
	tmp.setFint(e.den())
	den.mul(den, tmp)

	// Sign
	neg = f.IsNeg() != e.IsNeg()

	return newFractionFromBint(neg, num, den)
}

// Quo returns the quotient of f and e.
// The quotient is computed as f multiplied by the reciprocal of e.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the numerator or the denominator of the quotient cannot be
//     represented as uint64.
func (f Fraction) Quo(e Fraction) (Fraction, error) {
	// Special case: zero divisor
	if e.IsZero() {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, e, ErrDivisionByZero)
	}

	// General case
	r := Fraction{neg: e.neg, num: e.den(), denm: e.num - 1}
	g, err := mul(f, r)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, e, err)
	}
	return g, nil
}

// Inv returns the reciprocal of f.
//
// Inv returns an error if f is 0.
func (f Fraction) Inv() (Fraction, error) {
	g, err := newFraction(f.neg, f.den(), f.num)
	if err != nil {
		return Fraction{}, fmt.Errorf("inverting %v: %w", f, err)
	}
	return g, nil
}

// Rem returns the remainder of f divided by e.
// With f = a/b and e = c/d, the remainder is ((a * d) mod (c * b)) / (b * d),
// and its sign is negative if exactly one of f and e is negative.
// The modulo is truncating, so the magnitude of the remainder is
// always less than the magnitude of e.
//
// Rem returns an error if:
//   - the divisor is 0;
//   - the numerator or the denominator of the remainder cannot be
//     represented as uint64.
func (f Fraction) Rem(e Fraction) (Fraction, error) {
	// Special case: zero divisor
	if e.IsZero() {
		return Fraction{}, fmt.Errorf("computing [%v %% %v]: %w", f, e, ErrDivisionByZero)
	}

	// General case
	g, err := remFast(f, e)
	if err != nil {
		g, err = remSlow(f, e)
		if err != nil {
			return Fraction{}, fmt.Errorf("computing [%v %% %v]: %w", f, e, err)
		}
	}
	return g, nil
}

func remFast(f, e Fraction) (Fraction, error) {

	var (
		fnum fint
		enum fint
		den  fint
		neg  bool
		ok   bool
	)

	// Cross-multiplication
	fnum, ok = f.num.mul(e.den())
	if !ok {
		return Fraction{}, ErrOverflow
	}
	enum, ok = e.num.mul(f.den())
	if !ok {
		return Fraction{}, ErrOverflow
	}
	den, ok = f.den().mul(e.den())
	if !ok {
		return Fraction{}, ErrOverflow
	}

	// Sign
	neg = f.IsNeg() != e.IsNeg()

	return newFraction(neg, fnum%enum, den)
}

func remSlow(f, e Fraction) (Fraction, error) {

	var (
		fnum *bint
		enum *bint
		den  *bint
		tmp  *bint
		neg  bool
	)

	fnum = getBint()
	defer putBint(fnum)
	enum = getBint()
	defer putBint(enum)
	den = getBint()
	defer putBint(den)
	tmp = getBint()
	defer putBint(tmp)

	// Cross-multiplication
	fnum.setFint(f.num)
	tmp.setFint(e.den())
	fnum.mul(fnum, tmp)
	enum.setFint(e.num)
	tmp.setFint(f.den())
	enum.mul(enum, tmp)
	den.setFint(f.den())
	tmp.setFint(e.den())
	den.mul(den, tmp)

	// Sign
	neg = f.IsNeg() != e.IsNeg()

	fnum.rem(fnum, enum)
	return newFractionFromBint(neg, fnum, den)
}

// Pow returns f raised to the power of exp.
//
// Pow returns an error if:
//   - 0 is raised to a negative power;
//   - the numerator or the denominator of the power cannot be
//     represented as uint64.
func (f Fraction) Pow(exp int) (Fraction, error) {
	g, err := pow(f, exp)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v^%v]: %w", f, exp, err)
	}
	return g, nil
}

func pow(f Fraction, exp int) (Fraction, error) {
	var (
		err error
		n   uint
	)

	// Special case: negative power
	if exp < 0 {
		if f.IsZero() {
			return Fraction{}, ErrDivisionByZero
		}
		f = Fraction{neg: f.neg, num: f.den(), denm: f.num - 1}
		// -(exp + 1) does not overflow for math.MinInt.
		n = uint(-(exp + 1)) + 1
	} else {
		n = uint(exp)
	}

	// General case
	g := One
	for n > 0 {
		if n&1 != 0 {
			g, err = mul(g, f)
			if err != nil {
				return Fraction{}, err
			}
		}
		n >>= 1
		if n > 0 {
			f, err = mul(f, f)
			if err != nil {
				return Fraction{}, err
			}
		}
	}
	return g, nil
}

func mul(f, e Fraction) (Fraction, error) {
	g, err := mulFast(f, e)
	if err != nil {
		g, err = mulSlow(f, e)
	}
	return g, err
}

// Equal returns true if f and e represent the same rational number.
// Since fractions are kept in lowest terms, this is a comparison of
// the stored sign, numerator and denominator.
func (f Fraction) Equal(e Fraction) bool {
	return f.neg == e.neg && f.num == e.num && f.denm == e.denm
}

// Cmp compares f and e numerically and returns:
//
//	-1 if f < e
//	 0 if f == e
//	+1 if f > e
func (f Fraction) Cmp(e Fraction) int {
	// Special case: different signs
	switch {
	case e.Sign() < f.Sign():
		return 1
	case f.Sign() < e.Sign():
		return -1
	}

	// General case
	switch cmpMul(f.num, e.den(), e.num, f.den()) {
	case 1:
		return f.Sign()
	case -1:
		return -e.Sign()
	default:
		return 0
	}
}

// Max returns maximum of f and e.
func (f Fraction) Max(e Fraction) Fraction {
	if f.Cmp(e) >= 0 {
		return f
	}
	return e
}

// Min returns minimum of f and e.
func (f Fraction) Min(e Fraction) Fraction {
	if f.Cmp(e) <= 0 {
		return f
	}
	return e
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a fraction value.
// The returned string is formatted according to the following formal
// EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits '/' digits
//
// The denominator is always present, so integers are rendered as n/1.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {

	var (
		buf [42]byte
		pos int
		num fint
		den fint
	)

	pos = len(buf) - 1
	num = f.num
	den = f.den()

	// Denominator
	for {
		buf[pos] = byte(den%10) + '0'
		pos--
		den /= 10
		if den == 0 {
			break
		}
	}

	// Fraction bar
	buf[pos] = '/'
	pos--

	// Numerator
	for {
		buf[pos] = byte(num%10) + '0'
		pos--
		num /= 10
		if num == 0 {
			break
		}
	}

	// Sign
	if f.IsNeg() {
		buf[pos] = '-'
		pos--
	}

	// Convert bytes to string
	return string(buf[pos+1:])
}

// Parse converts a string to a fraction.
// The input string must be in one of the following formats:
//
//	1/2
//	-10/4
//	+7
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits ['/' digits]
//
// The result is reduced to lowest terms.
//
// Parse returns an error if:
//   - the string does not represent a valid fraction;
//   - the denominator is 0;
//   - the numerator or the denominator cannot be represented as uint64.
func Parse(s string) (Fraction, error) {
	f, err := parse(s)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing fraction: %w", err)
	}
	return f, nil
}

func parse(s string) (Fraction, error) {

	var (
		pos    int
		width  int
		neg    bool
		num    fint
		den    fint
		hasnum bool
		hasden bool
		ok     bool
	)

	width = len(s)
	den = 1

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Numerator
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hasnum = true
		num, ok = num.fsa(s[pos] - '0')
		if !ok {
			return Fraction{}, ErrOverflow
		}
		pos++
	}

	// Denominator
	if pos < width && s[pos] == '/' {
		pos++
		den = 0
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hasden = true
			den, ok = den.fsa(s[pos] - '0')
			if !ok {
				return Fraction{}, ErrOverflow
			}
			pos++
		}
		if !hasden {
			return Fraction{}, fmt.Errorf("no denominator: %w", ErrInvalidFraction)
		}
	}

	if pos != width {
		return Fraction{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidFraction)
	}
	if !hasnum {
		return Fraction{}, fmt.Errorf("no numerator: %w", ErrInvalidFraction)
	}

	return newFraction(neg, num, den)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fractions.
func MustParse(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return f
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Fraction) UnmarshalText(text []byte) error {
	var err error
	*f, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Fraction.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed with [Parse], integers are converted
// with denominator 1.
// Floating-point values are not accepted because the conversion would be inexact.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (f *Fraction) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*f, err = Parse(value)
	case []byte:
		*f, err = Parse(string(value))
	case int64:
		*f = FromInt(value)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", f, NullFraction{}, f)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, f, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The fraction is stored as its string representation.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (f Fraction) Value() (driver.Value, error) {
	return f.String(), nil
}

// NullFraction represents a fraction that can be null.
// Its zero value is null.
// NullFraction is not thread-safe.
type NullFraction struct {
	Fraction Fraction
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullFraction) Scan(value any) error {
	if value == nil {
		n.Fraction = Fraction{}
		n.Valid = false
		return nil
	}
	err := n.Fraction.Scan(value)
	if err != nil {
		n.Fraction = Fraction{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullFraction) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Fraction.Value()
}
