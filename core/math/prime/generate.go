package prime

import (
	"context"
	"io"
	"math/big"

	"github.com/mr-shifu/rsa-lib/core/math/sample"
	"github.com/pkg/errors"
)

// Rounds is the number of Miller-Rabin rounds applied to every prime candidate.
const Rounds = 16

var ErrInvalidBits = errors.New("prime: bit length must be at least 2")

// Generate returns a random prime of exactly the given bit length.
//
// Candidates are uniform bits-bit integers with the top and bottom bits forced on, kept once they pass
// ProbablyPrime with Rounds rounds. The search has no iteration bound; it only stops early when ctx
// is done, in which case ctx.Err() is returned.
func Generate(ctx context.Context, rand io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrInvalidBits
	}

	topBit := new(big.Int).Lsh(one, uint(bits-1))
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate, err := sample.Bits(rand, bits)
		if err != nil {
			return nil, errors.WithMessage(err, "prime: failed to sample candidate")
		}
		candidate.Or(candidate, topBit)
		candidate.Or(candidate, one)

		ok, err := ProbablyPrime(rand, candidate, Rounds)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}
}
