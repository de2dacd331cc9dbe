package prime

import (
	"io"
	"math/big"

	"github.com/mr-shifu/rsa-lib/core/math/sample"
	"github.com/pkg/errors"
)

var ErrInvalidRounds = errors.New("prime: number of rounds must be positive")

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// ProbablyPrime runs the Miller-Rabin test on n with the given number of rounds, drawing each witness
// uniformly from [2, n-2] out of rand. It returns false when n is certainly composite and true when n
// is prime with error probability at most 4⁻ʳᵒᵘⁿᵈˢ.
//
// If rand is nil, crypto/rand.Reader is used.
func ProbablyPrime(rand io.Reader, n *big.Int, rounds int) (bool, error) {
	if rounds < 1 {
		return false, ErrInvalidRounds
	}

	switch {
	case n.Cmp(two) < 0:
		return false, nil
	case n.Cmp(two) == 0, n.Cmp(three) == 0:
		return true, nil
	case n.Bit(0) == 0:
		return false, nil
	}

	// n-1 = d⋅2ʳ with d odd
	nMinusOne := new(big.Int).Sub(n, one)
	r := nMinusOne.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinusOne, r)

	x := new(big.Int)
witness:
	for i := 0; i < rounds; i++ {
		a, err := sample.Witness(rand, n)
		if err != nil {
			return false, errors.WithMessage(err, "prime: failed to sample witness")
		}

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		for j := uint(1); j < r; j++ {
			x.Mul(x, x).Mod(x, n)
			if x.Cmp(nMinusOne) == 0 {
				continue witness
			}
		}
		return false, nil
	}
	return true, nil
}
