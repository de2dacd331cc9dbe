package rsa

import (
	"context"
	"io"
	"math/big"

	"github.com/mr-shifu/rsa-lib/core/math/arith"
	"github.com/mr-shifu/rsa-lib/core/math/prime"
	"github.com/pkg/errors"
)

// PublicExponent is the fixed public exponent e = 2¹⁶+1.
const PublicExponent = 65537

var ErrInvalidExponentChoice = errors.New("rsa: public exponent is not coprime to φ(n)")

// Keypair holds a raw RSA key: modulus n = p⋅q, public exponent e and private exponent d with
// e⋅d ≡ 1 (mod φ(n)). A Keypair is immutable; the accessors return copies.
type Keypair struct {
	n, e, d *big.Int
}

// GenerateKeys creates a Keypair whose modulus is the product of two distinct random primes of bits/2
// bits each. bits should be even.
//
// The prime search is unbounded and returns early only when ctx is done. If e is not coprime to φ(n)
// the attempt is aborted with ErrInvalidExponentChoice; callers decide whether to retry.
func GenerateKeys(ctx context.Context, rand io.Reader, bits int) (*Keypair, error) {
	p, err := prime.Generate(ctx, rand, bits/2)
	if err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to generate p")
	}

	var q *big.Int
	for q == nil || q.Cmp(p) == 0 {
		q, err = prime.Generate(ctx, rand, bits/2)
		if err != nil {
			return nil, errors.WithMessage(err, "rsa: failed to generate q")
		}
	}

	return newKeypair(p, q)
}

func newKeypair(p, q *big.Int) (*Keypair, error) {
	one := big.NewInt(1)
	n := new(big.Int).Mul(p, q)
	// φ = (p-1)(q-1)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	e := big.NewInt(PublicExponent)
	if arith.GCD(e, phi).Cmp(one) != 0 {
		return nil, ErrInvalidExponentChoice
	}

	d, err := arith.ModInverse(e, phi)
	if err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to derive private exponent")
	}

	return &Keypair{n: n, e: e, d: d}, nil
}

// N returns the modulus.
func (k *Keypair) N() *big.Int { return new(big.Int).Set(k.n) }

// E returns the public exponent.
func (k *Keypair) E() *big.Int { return new(big.Int).Set(k.e) }

// D returns the private exponent.
func (k *Keypair) D() *big.Int { return new(big.Int).Set(k.d) }

// Bits returns the bit length of the modulus.
func (k *Keypair) Bits() int { return k.n.BitLen() }

// Encrypt encrypts msg as a single raw block under the public part of the key.
func (k *Keypair) Encrypt(msg string) (*big.Int, error) {
	return EncryptMessage(msg, k.e, k.n)
}

// Decrypt decrypts a ciphertext block produced by Encrypt.
func (k *Keypair) Decrypt(c *big.Int) string {
	return DecryptMessage(c, k.d, k.n)
}

// Equal reports whether both keypairs hold the same numbers.
func (k *Keypair) Equal(other *Keypair) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.n.Cmp(other.n) == 0 && k.e.Cmp(other.e) == 0 && k.d.Cmp(other.d) == 0
}
