package keystore

import (
	"github.com/mr-shifu/rsa-lib/core/rsa"
	"github.com/mr-shifu/rsa-lib/pkg/common/keyopts"
	"github.com/mr-shifu/rsa-lib/pkg/common/keystore"
	"github.com/mr-shifu/rsa-lib/pkg/common/vault"
	pkg_vault "github.com/mr-shifu/rsa-lib/pkg/vault"
)

// InMemoryKeystore combines a Vault holding keypairs by SKI with a KeyOpts mapping labels to SKIs.
type InMemoryKeystore struct {
	v  vault.Vault
	kr keyopts.KeyOpts
}

var _ keystore.Keystore = (*InMemoryKeystore)(nil)

func NewInMemoryKeystore(v vault.Vault, kr keyopts.KeyOpts) *InMemoryKeystore {
	return &InMemoryKeystore{
		v:  v,
		kr: kr,
	}
}

// Import stores key under ski and links it to the label in opts. A label already in use is rejected.
func (ks *InMemoryKeystore) Import(ski string, key *rsa.Keypair, opts keyopts.Options) error {
	if key == nil {
		return pkg_vault.ErrNilKey
	}

	// link the label first so a taken label leaves the vault untouched
	if err := ks.kr.Import(ski, opts); err != nil {
		return err
	}

	// store key to vault
	if err := ks.v.Import(ski, key); err != nil {
		_ = ks.kr.Delete(opts)
		return err
	}

	return nil
}

func (ks *InMemoryKeystore) Get(opts keyopts.Options) (*rsa.Keypair, error) {
	kd, err := ks.kr.Get(opts)
	if err != nil {
		return nil, err
	}

	return ks.v.Get(kd.SKI)
}

func (ks *InMemoryKeystore) Delete(opts keyopts.Options) error {
	kd, err := ks.kr.Get(opts)
	if err != nil {
		return err
	}

	if err := ks.kr.Delete(opts); err != nil {
		return err
	}

	// the same key may still be linked to another label
	for _, other := range ks.kr.GetAll() {
		if other.SKI == kd.SKI {
			return nil
		}
	}
	return ks.v.Delete(kd.SKI)
}

func (ks *InMemoryKeystore) List() []*keyopts.KeyData {
	return ks.kr.GetAll()
}
