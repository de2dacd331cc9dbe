package rsa

import (
	"context"
	"math/big"

	core_rsa "github.com/mr-shifu/rsa-lib/core/rsa"
	"github.com/mr-shifu/rsa-lib/pkg/common/keyopts"
)

type RSAKey interface {
	// ID returns the label the key is registered under.
	ID() string

	// SKI returns the key identifier, the BLAKE3-256 digest of the modulus.
	SKI() []byte

	// Bits returns the bit length of the modulus.
	Bits() int

	// Keypair returns the underlying numbers.
	Keypair() *core_rsa.Keypair

	// Encrypt encrypts message as a single raw block.
	Encrypt(message string) (*big.Int, error)

	// Decrypt decrypts a ciphertext block into text.
	Decrypt(ciphertext *big.Int) string
}

type RSAKeyManager interface {
	// GenerateKey generates a new keypair and registers it under the label in opts.
	GenerateKey(ctx context.Context, opts keyopts.Options) (RSAKey, error)

	// GenerateKeys generates count independent keypairs concurrently.
	GenerateKeys(ctx context.Context, count int) ([]RSAKey, error)

	// GetKey returns the key registered under the label in opts.
	GetKey(opts keyopts.Options) (RSAKey, error)

	// ListKeys returns every registered key.
	ListKeys() ([]RSAKey, error)

	// DeleteKey forgets the key registered under the label in opts.
	DeleteKey(opts keyopts.Options) error

	// Encrypt encrypts message with the key registered under the label in opts.
	Encrypt(message string, opts keyopts.Options) (*big.Int, error)

	// Decrypt decrypts ciphertext with the key registered under the label in opts.
	Decrypt(ciphertext *big.Int, opts keyopts.Options) (string, error)
}
