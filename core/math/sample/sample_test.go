package sample

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestWitness_Range(t *testing.T) {
	for _, n := range []int64{5, 7, 9, 101, 7919, 65537} {
		bn := big.NewInt(n)
		for i := 0; i < 200; i++ {
			a, err := Witness(rand.Reader, bn)
			require.NoError(t, err)
			assert.True(t, a.Cmp(big.NewInt(2)) >= 0, "n=%d a=%s", n, a)
			assert.True(t, a.Cmp(big.NewInt(n-2)) <= 0, "n=%d a=%s", n, a)
		}
	}
}

func TestWitness_CoversSmallRange(t *testing.T) {
	// n = 7: witnesses are {2, 3, 4, 5}
	seen := make(map[int64]bool)
	r := NewSeededReader([]byte("witness"))
	for i := 0; i < 500; i++ {
		a, err := Witness(r, big.NewInt(7))
		require.NoError(t, err)
		seen[a.Int64()] = true
	}
	assert.Len(t, seen, 4)
}

func TestWitness_RangeTooSmall(t *testing.T) {
	_, err := Witness(rand.Reader, big.NewInt(3))
	assert.Equal(t, ErrRangeTooSmall, err)
}

func TestModN(t *testing.T) {
	m := saferith.ModulusFromUint64(10)
	for i := 0; i < 100; i++ {
		x, err := ModN(nil, m)
		require.NoError(t, err)
		assert.True(t, x.Big().Cmp(big.NewInt(10)) < 0)
	}

	_, err := ModN(failingReader{}, m)
	assert.Error(t, err)
}

func TestBits(t *testing.T) {
	for _, bits := range []int{1, 7, 8, 9, 63, 64, 521} {
		for i := 0; i < 50; i++ {
			x, err := Bits(rand.Reader, bits)
			require.NoError(t, err)
			assert.LessOrEqual(t, x.BitLen(), bits)
		}
	}

	_, err := Bits(rand.Reader, 0)
	assert.Equal(t, ErrInvalidBits, err)

	_, err = Bits(failingReader{}, 16)
	assert.Error(t, err)
}

func TestSeededReader_Deterministic(t *testing.T) {
	a := make([]byte, 100)
	b := make([]byte, 100)
	c := make([]byte, 100)

	_, err := NewSeededReader([]byte("seed")).Read(a)
	require.NoError(t, err)
	_, err = NewSeededReader([]byte("seed")).Read(b)
	require.NoError(t, err)
	_, err = NewSeededReader([]byte("other")).Read(c)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.False(t, bytes.Equal(a, make([]byte, 100)))
}

func TestSeededReader_Stream(t *testing.T) {
	// reading in chunks continues the keystream
	whole := make([]byte, 64)
	_, _ = NewSeededReader([]byte("seed")).Read(whole)

	r := NewSeededReader([]byte("seed"))
	first := make([]byte, 20)
	second := make([]byte, 44)
	_, _ = r.Read(first)
	_, _ = r.Read(second)

	assert.Equal(t, whole, append(first, second...))
}

func TestSeededReader_Concurrent(t *testing.T) {
	r := NewSeededReader([]byte("shared"))

	var wg sync.WaitGroup
	chunks := make([][]byte, 8)
	for i := range chunks {
		chunks[i] = make([]byte, 1000)
		wg.Add(1)
		go func(buf []byte) {
			defer wg.Done()
			_, _ = r.Read(buf)
		}(chunks[i])
	}
	wg.Wait()

	// every chunk is a distinct slice of the one keystream
	whole := make([]byte, 8000)
	_, _ = NewSeededReader([]byte("shared")).Read(whole)
	for _, c := range chunks {
		assert.True(t, bytes.Contains(whole, c))
	}
}
