package rsa

import (
	"math/big"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// InvalidTextPlaceholder is returned by DecryptMessage when the decrypted block is not valid UTF-8.
const InvalidTextPlaceholder = "<invalid bytes>"

var (
	ErrMessageTooLarge = errors.New("rsa: message does not fit in a single block")
	ErrInvalidBlock    = errors.New("rsa: block must be a non-negative integer")
)

// EncryptBlock computes c = mᵉ (mod n). m must lie in [0, n); no padding is applied.
func EncryptBlock(m, e, n *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() < 0 {
		return nil, ErrInvalidBlock
	}
	if m.Cmp(n) >= 0 {
		return nil, ErrMessageTooLarge
	}
	return new(big.Int).Exp(m, e, n), nil
}

// DecryptBlock computes m = cᵈ (mod n). c must not be nil.
func DecryptBlock(c, d, n *big.Int) *big.Int {
	return new(big.Int).Exp(c, d, n)
}

// EncryptMessage encrypts msg read as a big-endian unsigned integer.
// Messages whose integer value is not below n fail with ErrMessageTooLarge.
func EncryptMessage(msg string, e, n *big.Int) (*big.Int, error) {
	m := new(big.Int).SetBytes([]byte(msg))
	c, err := EncryptBlock(m, e, n)
	if err != nil {
		return nil, errors.WithMessagef(err, "message of %d bytes, modulus of %d bits", len(msg), n.BitLen())
	}
	return c, nil
}

// DecryptBytes decrypts c and returns the minimal big-endian encoding of the plaintext block.
// Leading zero bytes of the original message are not recovered.
func DecryptBytes(c, d, n *big.Int) []byte {
	return DecryptBlock(c, d, n).Bytes()
}

// DecryptMessage decrypts c and decodes the block as UTF-8 text. It never fails: output that is not
// valid text is reported as InvalidTextPlaceholder.
func DecryptMessage(c, d, n *big.Int) string {
	b := DecryptBytes(c, d, n)
	if !utf8.Valid(b) {
		return InvalidTextPlaceholder
	}
	return string(b)
}
