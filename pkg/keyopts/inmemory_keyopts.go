package keyopts

import (
	"errors"
	"sort"
	"sync"

	"github.com/mr-shifu/rsa-lib/pkg/common/keyopts"
)

var (
	ErrInvalidParamsKeyID = errors.New("keyopts: invalid keyID")
	ErrInvalidSKI         = errors.New("keyopts: invalid SKI")
	ErrKeyNotFound        = errors.New("keyopts: key not found")
	ErrKeyExists          = errors.New("keyopts: key label already in use")
)

type KeyOpts struct {
	lock sync.RWMutex

	// keys maps a key label to its metadata{SKI}.
	keys map[string]*keyopts.KeyData
}

var _ keyopts.KeyOpts = (*KeyOpts)(nil)

func NewInMemoryKeyOpts() *KeyOpts {
	return &KeyOpts{
		keys: make(map[string]*keyopts.KeyData),
	}
}

func (kr *KeyOpts) Import(ski string, opts keyopts.Options) error {
	if ski == "" {
		return ErrInvalidSKI
	}
	kid, err := ID(opts)
	if err != nil {
		return err
	}

	kr.lock.Lock()
	defer kr.lock.Unlock()

	if _, ok := kr.keys[kid]; ok {
		return ErrKeyExists
	}
	kr.keys[kid] = &keyopts.KeyData{
		ID:  kid,
		SKI: ski,
	}

	return nil
}

func (kr *KeyOpts) Get(opts keyopts.Options) (*keyopts.KeyData, error) {
	kid, err := ID(opts)
	if err != nil {
		return nil, err
	}

	kr.lock.RLock()
	defer kr.lock.RUnlock()

	k, ok := kr.keys[kid]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return k, nil
}

// GetAll returns the metadata of every key ordered by label.
func (kr *KeyOpts) GetAll() []*keyopts.KeyData {
	kr.lock.RLock()
	defer kr.lock.RUnlock()

	result := make([]*keyopts.KeyData, 0, len(kr.keys))
	for _, key := range kr.keys {
		result = append(result, key)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (kr *KeyOpts) Delete(opts keyopts.Options) error {
	kid, err := ID(opts)
	if err != nil {
		return err
	}

	kr.lock.Lock()
	defer kr.lock.Unlock()

	if _, ok := kr.keys[kid]; !ok {
		return ErrKeyNotFound
	}
	delete(kr.keys, kid)

	return nil
}
