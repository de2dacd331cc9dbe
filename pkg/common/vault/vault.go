package vault

import "github.com/mr-shifu/rsa-lib/core/rsa"

// Vault holds keypairs by key identifier for the lifetime of the process.
type Vault interface {
	Import(ski string, key *rsa.Keypair) error
	Get(ski string) (*rsa.Keypair, error)
	Delete(ski string) error
}
