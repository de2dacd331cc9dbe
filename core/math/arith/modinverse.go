package arith

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	ErrNoInverse      = errors.New("arith: no modular inverse exists")
	ErrInvalidModulus = errors.New("arith: modulus must be positive")
	ErrNilArgument    = errors.New("arith: nil argument")
)

// ModInverse returns x ∈ [0, m) such that a⋅x ≡ 1 (mod m).
//
// It runs the iterative extended Euclidean algorithm on (m, a mod m), tracking only the Bézout
// coefficient of a. a may be negative or larger than m. ErrNoInverse is returned when gcd(a, m) ≠ 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil {
		return nil, ErrNilArgument
	}
	if m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}

	// r₀ = m, r₁ = a mod m (floor semantics, always non-negative)
	r0 := new(big.Int).Set(m)
	r1 := new(big.Int).Mod(a, m)
	// s₀, s₁ are the coefficients of a in r₀ and r₁
	s0 := big.NewInt(0)
	s1 := big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r1.Sign() != 0 {
		q.Quo(r0, r1)

		// (r₀, r₁) = (r₁, r₀ - q⋅r₁)
		tmp.Mul(q, r1)
		tmp.Sub(r0, tmp)
		r0, r1 = r1, r0
		r1.Set(tmp)

		// (s₀, s₁) = (s₁, s₀ - q⋅s₁)
		tmp.Mul(q, s1)
		tmp.Sub(s0, tmp)
		s0, s1 = s1, s0
		s1.Set(tmp)
	}

	// r₀ = gcd(a, m)
	if r0.Cmp(big.NewInt(1)) != 0 {
		return nil, errors.WithMessagef(ErrNoInverse, "gcd = %s", r0.String())
	}

	if s0.Sign() < 0 {
		s0.Add(s0, m)
	}
	return s0, nil
}

// GCD returns the greatest common divisor of two non-negative integers.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}
