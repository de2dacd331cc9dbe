package rsa

import (
	cryptorand "crypto/rand"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	// MinBits is the smallest modulus for which two distinct primes of Bits/2 bits exist.
	MinBits = 8

	DefaultBits        = 1024
	DefaultMaxAttempts = 3
	DefaultConcurrency = 4
)

var ErrInvalidConfig = errors.New("rsa: invalid config")

type Config struct {
	// Bits is the bit length of generated moduli; it should be even.
	Bits int

	// MaxAttempts bounds how many prime pairs are drawn when the public exponent
	// is not coprime to φ(n). 1 disables regeneration.
	MaxAttempts int

	// Concurrency bounds the number of keypairs generated in parallel by GenerateKeys.
	Concurrency int

	// Rand is the randomness source. It must be safe for concurrent use when
	// GenerateKeys runs with Concurrency > 1.
	Rand io.Reader

	Logger zerolog.Logger
}

func DefaultConfig() *Config {
	return &Config{
		Bits:        DefaultBits,
		MaxAttempts: DefaultMaxAttempts,
		Concurrency: DefaultConcurrency,
		Rand:        cryptorand.Reader,
		Logger:      zerolog.Nop(),
	}
}

func (cfg *Config) Validate() error {
	if cfg.Bits < MinBits {
		return errors.WithMessagef(ErrInvalidConfig, "bits = %d", cfg.Bits)
	}
	if cfg.MaxAttempts < 1 {
		return errors.WithMessagef(ErrInvalidConfig, "max attempts = %d", cfg.MaxAttempts)
	}
	if cfg.Concurrency < 1 {
		return errors.WithMessagef(ErrInvalidConfig, "concurrency = %d", cfg.Concurrency)
	}
	if cfg.Rand == nil {
		return errors.WithMessage(ErrInvalidConfig, "nil randomness source")
	}
	return nil
}
