package rsa

import (
	"context"
	"encoding/hex"
	"io"
	"math/big"

	"github.com/google/uuid"
	core_rsa "github.com/mr-shifu/rsa-lib/core/rsa"
	cs_rsa "github.com/mr-shifu/rsa-lib/pkg/common/cryptosuite/rsa"
	"github.com/mr-shifu/rsa-lib/pkg/common/keyopts"
	"github.com/mr-shifu/rsa-lib/pkg/common/keystore"
	pkg_keyopts "github.com/mr-shifu/rsa-lib/pkg/keyopts"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type RSAKeyManagerImpl struct {
	keystore keystore.Keystore
	cfg      *Config

	keygen func(ctx context.Context, rand io.Reader, bits int) (*core_rsa.Keypair, error)
}

var _ cs_rsa.RSAKeyManager = (*RSAKeyManagerImpl)(nil)

func NewRSAKeyManager(store keystore.Keystore, cfg *Config) (*RSAKeyManagerImpl, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &RSAKeyManagerImpl{
		keystore: store,
		cfg:      cfg,
		keygen:   core_rsa.GenerateKeys,
	}, nil
}

// GenerateKey generates a new keypair and registers it under the "id" option. If opts carries no
// label, a random UUID is assigned to it. A label already in use fails with keyopts.ErrKeyExists.
//
// A prime pair whose φ(n) shares a factor with the public exponent is discarded and a new pair is
// drawn, up to MaxAttempts times.
func (mgr *RSAKeyManagerImpl) GenerateKey(ctx context.Context, opts keyopts.Options) (cs_rsa.RSAKey, error) {
	if opts == nil {
		opts = pkg_keyopts.NewOptions()
	}
	if _, ok := opts.Get(pkg_keyopts.OptionID); !ok {
		if _, err := opts.Set(pkg_keyopts.OptionID, uuid.NewString()); err != nil {
			return nil, err
		}
	}
	id, err := pkg_keyopts.ID(opts)
	if err != nil {
		return nil, err
	}
	if _, err := mgr.keystore.Get(opts); err == nil {
		return nil, errors.WithMessagef(pkg_keyopts.ErrKeyExists, "id = %s", id)
	}

	kp, err := mgr.generate(ctx)
	if err != nil {
		return nil, err
	}

	k := newKey(id, kp)
	keyID := hex.EncodeToString(k.SKI())
	if err := mgr.keystore.Import(keyID, kp, opts); err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to import key to keystore")
	}

	mgr.cfg.Logger.Debug().
		Str("id", id).
		Str("ski", keyID).
		Int("bits", kp.Bits()).
		Msg("generated key")

	return k, nil
}

func (mgr *RSAKeyManagerImpl) generate(ctx context.Context) (*core_rsa.Keypair, error) {
	var err error
	for attempt := 1; attempt <= mgr.cfg.MaxAttempts; attempt++ {
		var kp *core_rsa.Keypair
		kp, err = mgr.keygen(ctx, mgr.cfg.Rand, mgr.cfg.Bits)
		if err == nil {
			return kp, nil
		}
		if !errors.Is(err, core_rsa.ErrInvalidExponentChoice) {
			return nil, errors.WithMessage(err, "rsa: failed to generate key")
		}
		mgr.cfg.Logger.Warn().
			Int("attempt", attempt).
			Msg("public exponent not coprime to totient, drawing new primes")
	}
	return nil, errors.WithMessagef(err, "rsa: gave up after %d attempts", mgr.cfg.MaxAttempts)
}

// GenerateKeys generates count independent keypairs on up to Concurrency goroutines, each registered
// under a random UUID. The first failure cancels the remaining generations.
func (mgr *RSAKeyManagerImpl) GenerateKeys(ctx context.Context, count int) ([]cs_rsa.RSAKey, error) {
	if count < 0 {
		return nil, errors.New("rsa: negative key count")
	}

	keys := make([]cs_rsa.RSAKey, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(mgr.cfg.Concurrency)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			k, err := mgr.GenerateKey(ctx, pkg_keyopts.NewOptions())
			if err != nil {
				return err
			}
			keys[i] = k
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return keys, nil
}

// GetKey returns the key registered under the "id" option.
func (mgr *RSAKeyManagerImpl) GetKey(opts keyopts.Options) (cs_rsa.RSAKey, error) {
	kp, err := mgr.keystore.Get(opts)
	if err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to get key from keystore")
	}
	id, err := pkg_keyopts.ID(opts)
	if err != nil {
		return nil, err
	}
	return newKey(id, kp), nil
}

// ListKeys returns every registered key ordered by label.
func (mgr *RSAKeyManagerImpl) ListKeys() ([]cs_rsa.RSAKey, error) {
	list := mgr.keystore.List()
	keys := make([]cs_rsa.RSAKey, 0, len(list))
	for _, kd := range list {
		opts, err := pkg_keyopts.NewOptions().Set(pkg_keyopts.OptionID, kd.ID)
		if err != nil {
			return nil, err
		}
		k, err := mgr.GetKey(opts)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (mgr *RSAKeyManagerImpl) DeleteKey(opts keyopts.Options) error {
	if err := mgr.keystore.Delete(opts); err != nil {
		return errors.WithMessage(err, "rsa: failed to delete key from keystore")
	}
	return nil
}

func (mgr *RSAKeyManagerImpl) Encrypt(message string, opts keyopts.Options) (*big.Int, error) {
	k, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}
	return k.Encrypt(message)
}

// Decrypt decrypts ciphertext with the key registered under the "id" option. Output that is not valid
// text is returned as core_rsa.InvalidTextPlaceholder; errors only report a missing key or a nil or
// negative ciphertext.
func (mgr *RSAKeyManagerImpl) Decrypt(ciphertext *big.Int, opts keyopts.Options) (string, error) {
	if ciphertext == nil || ciphertext.Sign() < 0 {
		return "", core_rsa.ErrInvalidBlock
	}
	k, err := mgr.GetKey(opts)
	if err != nil {
		return "", err
	}
	return k.Decrypt(ciphertext), nil
}
