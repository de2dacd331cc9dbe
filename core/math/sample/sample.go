package sample

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"
)

var (
	ErrInvalidBits   = errors.New("sample: bit length must be positive")
	ErrRangeTooSmall = errors.New("sample: witness range is empty")
)

var two = big.NewInt(2)

func readBits(rand io.Reader, buf []byte, bits int) error {
	if _, err := io.ReadFull(rand, buf); err != nil {
		return errors.WithMessage(err, "sample: failed to read random bytes")
	}
	// clear the bits above the requested length
	if excess := 8*len(buf) - bits; excess > 0 {
		buf[0] &= 0xff >> excess
	}
	return nil
}

// ModN samples an element of [0, n) uniformly at random by rejection.
func ModN(rand io.Reader, n *saferith.Modulus) (*saferith.Nat, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}

	bits := n.BitLen()
	buf := make([]byte, (bits+7)/8)
	out := new(saferith.Nat)
	for {
		if err := readBits(rand, buf, bits); err != nil {
			return nil, err
		}
		out.SetBytes(buf)
		if _, _, lt := out.CmpMod(n); lt == 1 {
			return out, nil
		}
	}
}

// Witness returns a uniformly random Miller-Rabin base a ∈ [2, n-2].
// n must be at least 5.
func Witness(rand io.Reader, n *big.Int) (*big.Int, error) {
	// |[2, n-2]| = n-3
	size := new(big.Int).Sub(n, big.NewInt(3))
	if size.Sign() <= 0 {
		return nil, ErrRangeTooSmall
	}

	m := saferith.ModulusFromNat(new(saferith.Nat).SetBig(size, size.BitLen()))
	a, err := ModN(rand, m)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(a.Big(), two), nil
}

// Bits returns a uniformly random integer in [0, 2ᵇⁱᵗˢ).
func Bits(rand io.Reader, bits int) (*big.Int, error) {
	if bits <= 0 {
		return nil, ErrInvalidBits
	}
	if rand == nil {
		rand = cryptorand.Reader
	}

	buf := make([]byte, (bits+7)/8)
	if err := readBits(rand, buf, bits); err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(buf), nil
}
