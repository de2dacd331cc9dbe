package vault

import (
	"errors"
	"sync"

	"github.com/mr-shifu/rsa-lib/core/rsa"
)

var (
	ErrKeyNotFound = errors.New("vault: key not found")
	ErrNilKey      = errors.New("vault: nil key")
)

type InMemoryVault struct {
	lock sync.RWMutex
	keys map[string]*rsa.Keypair
}

func NewInMemoryVault() *InMemoryVault {
	return &InMemoryVault{
		keys: make(map[string]*rsa.Keypair),
	}
}

func (store *InMemoryVault) Import(ski string, key *rsa.Keypair) error {
	if key == nil {
		return ErrNilKey
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	store.keys[ski] = key
	return nil
}

func (store *InMemoryVault) Get(ski string) (*rsa.Keypair, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	key, ok := store.keys[ski]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return key, nil
}

func (store *InMemoryVault) Delete(ski string) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	delete(store.keys, ski)
	return nil
}
