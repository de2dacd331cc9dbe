package keystore

import (
	"github.com/mr-shifu/rsa-lib/core/rsa"
	"github.com/mr-shifu/rsa-lib/pkg/common/keyopts"
)

type Keystore interface {
	Import(ski string, key *rsa.Keypair, opts keyopts.Options) error
	Get(opts keyopts.Options) (*rsa.Keypair, error)
	Delete(opts keyopts.Options) error
	List() []*keyopts.KeyData
}
