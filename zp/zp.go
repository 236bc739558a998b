package zp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModulus is returned by New when p ≤ 1 or p is composite.
	ErrInvalidModulus = errors.New("zp: modulus must be a prime > 1")

	// ErrDivisionByZero is returned by Inv for the zero element.
	ErrDivisionByZero = errors.New("zp: division by zero")
)

// Element is a canonical residue modulo the field's prime, in [0, p).
type Element int64

// Field carries a validated prime modulus. The zero value is unusable;
// construct via New.
type Field struct {
	p int64
}

// New validates p and returns the field Z/pZ.
// Complexity: O(√p) trial division.
func New(p int64) (*Field, error) {
	if p <= 1 || !isPrime(p) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidModulus, p)
	}

	return &Field{p: p}, nil
}

// P returns the field's prime modulus.
func (f *Field) P() int64 { return f.p }

// Norm maps any integer into the canonical residue range [0, p).
func (f *Field) Norm(v int64) Element {
	r := v % f.p
	if r < 0 {
		r += f.p
	}

	return Element(r)
}

// Add returns a+b in the field.
func (f *Field) Add(a, b Element) Element {
	return f.Norm(int64(a) + int64(b))
}

// Sub returns a−b in the field.
func (f *Field) Sub(a, b Element) Element {
	return f.Norm(int64(a) - int64(b))
}

// Neg returns −a in the field.
func (f *Field) Neg(a Element) Element {
	return f.Norm(-int64(a))
}

// Mul returns a·b in the field.
func (f *Field) Mul(a, b Element) Element {
	return f.Norm(int64(a) * int64(b))
}

// Inv returns the multiplicative inverse of a, or ErrDivisionByZero when a
// is the zero element. Uses the extended Euclidean algorithm; gcd(a, p) is
// always 1 for nonzero residues of a prime modulus.
func (f *Field) Inv(a Element) (Element, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}

	// Extended Euclid: maintain r = old coefficients, t = Bézout for a.
	var (
		t, newT int64 = 0, 1
		r, newR int64 = f.p, int64(a)
	)
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}

	return f.Norm(t), nil
}

// isPrime reports primality by trial division over odd candidates.
func isPrime(p int64) bool {
	if p < 2 {
		return false
	}
	if p%2 == 0 {
		return p == 2
	}
	for d := int64(3); d*d <= p; d += 2 {
		if p%d == 0 {
			return false
		}
	}

	return true
}
