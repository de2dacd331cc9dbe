package rsa

import (
	"math/big"

	core_rsa "github.com/mr-shifu/rsa-lib/core/rsa"
	cs_rsa "github.com/mr-shifu/rsa-lib/pkg/common/cryptosuite/rsa"
	"github.com/zeebo/blake3"
)

// RSAKey binds a keypair to the label it is registered under.
type RSAKey struct {
	id string
	kp *core_rsa.Keypair
}

var _ cs_rsa.RSAKey = RSAKey{}

func newKey(id string, kp *core_rsa.Keypair) RSAKey {
	return RSAKey{id: id, kp: kp}
}

func (k RSAKey) ID() string { return k.id }

// SKI returns the key identifier; SKI is the BLAKE3-256 digest of the big-endian modulus.
func (k RSAKey) SKI() []byte {
	return ski(k.kp)
}

func (k RSAKey) Bits() int { return k.kp.Bits() }

func (k RSAKey) Keypair() *core_rsa.Keypair { return k.kp }

func (k RSAKey) Encrypt(message string) (*big.Int, error) {
	return k.kp.Encrypt(message)
}

func (k RSAKey) Decrypt(ciphertext *big.Int) string {
	return k.kp.Decrypt(ciphertext)
}

func ski(kp *core_rsa.Keypair) []byte {
	sum := blake3.Sum256(kp.N().Bytes())
	return sum[:]
}
