package keyopts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportKeys(t *testing.T) {
	kr := NewInMemoryKeyOpts()

	ids := []string{"b", "a", "c"}
	for i, id := range ids {
		opts, err := NewOptions().Set("id", id)
		require.NoError(t, err)
		err = kr.Import(fmt.Sprintf("ski-%d", i), opts)
		assert.NoError(t, err, "Import should not return an error")
	}

	ks := kr.GetAll()
	assert.Len(t, ks, len(ids), fmt.Sprintf("GetAll should return %d keys", len(ids)))
	assert.Equal(t, "a", ks[0].ID)
	assert.Equal(t, "ski-1", ks[0].SKI)

	opts, _ := NewOptions().Set("id", "c")
	kd, err := kr.Get(opts)
	require.NoError(t, err)
	assert.Equal(t, "ski-2", kd.SKI)

	assert.NoError(t, kr.Delete(opts))
	_, err = kr.Get(opts)
	assert.Equal(t, ErrKeyNotFound, err)
	assert.Equal(t, ErrKeyNotFound, kr.Delete(opts))
}

func TestImportKeys_InvalidOptions(t *testing.T) {
	kr := NewInMemoryKeyOpts()

	assert.Equal(t, ErrInvalidParamsKeyID, kr.Import("ski", NewOptions()))

	opts, _ := NewOptions().Set("id", 12)
	assert.Equal(t, ErrInvalidParamsKeyID, kr.Import("ski", opts))

	opts, _ = NewOptions().Set("id", "a")
	assert.Equal(t, ErrInvalidSKI, kr.Import("", opts))

	_, err := NewOptions().Set("id")
	assert.Error(t, err)

	_, err = NewOptions().Set(1, "a")
	assert.Error(t, err)
}

func TestImportKeys_LabelInUse(t *testing.T) {
	kr := NewInMemoryKeyOpts()

	opts, _ := NewOptions().Set("id", "a")
	require.NoError(t, kr.Import("ski-1", opts))
	assert.Equal(t, ErrKeyExists, kr.Import("ski-2", opts))

	kd, err := kr.Get(opts)
	require.NoError(t, err)
	assert.Equal(t, "ski-1", kd.SKI)

	require.NoError(t, kr.Delete(opts))
	assert.NoError(t, kr.Import("ski-2", opts))
}
