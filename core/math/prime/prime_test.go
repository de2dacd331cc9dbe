package prime

import (
	"context"
	"crypto/rand"
	"math/big"
	"testing"
	"time"

	"github.com/mr-shifu/rsa-lib/core/math/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sieve(limit int) []bool {
	composite := make([]bool, limit)
	composite[0], composite[1] = true, true
	for i := 2; i*i < limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j < limit; j += i {
			composite[j] = true
		}
	}
	isPrime := make([]bool, limit)
	for i := range composite {
		isPrime[i] = !composite[i]
	}
	return isPrime
}

func TestProbablyPrime_Small(t *testing.T) {
	const limit = 10000
	want := sieve(limit)

	r := sample.NewSeededReader([]byte("small primes"))
	for n := 0; n < limit; n++ {
		got, err := ProbablyPrime(r, big.NewInt(int64(n)), 20)
		require.NoError(t, err)
		assert.Equal(t, want[n], got, "n=%d", n)
	}
}

func TestProbablyPrime_Known(t *testing.T) {
	primes := []string{
		// 2¹²⁷-1
		"170141183460469231731687303715884105727",
		// 2⁸⁹-1
		"618970019642690137449562111",
		"65537",
	}
	for _, s := range primes {
		n, _ := new(big.Int).SetString(s, 10)
		ok, err := ProbablyPrime(rand.Reader, n, Rounds)
		require.NoError(t, err)
		assert.True(t, ok, s)
	}

	composites := []string{
		// Carmichael number
		"561",
		// strong pseudoprime to bases 2, 3, 5 and 7
		"3215031751",
		// strong pseudoprime to the first nine prime bases
		"3825123056546413051",
		// 2¹²⁸+1
		"340282366920938463463374607431768211457",
	}
	for _, s := range composites {
		n, _ := new(big.Int).SetString(s, 10)
		ok, err := ProbablyPrime(rand.Reader, n, Rounds)
		require.NoError(t, err)
		assert.False(t, ok, s)
	}
}

func TestProbablyPrime_InvalidRounds(t *testing.T) {
	_, err := ProbablyPrime(rand.Reader, big.NewInt(7), 0)
	assert.Equal(t, ErrInvalidRounds, err)
}

func TestGenerate_BitLength(t *testing.T) {
	for _, bits := range []int{8, 16, 32, 64} {
		for i := 0; i < 50; i++ {
			p, err := Generate(context.Background(), rand.Reader, bits)
			require.NoError(t, err)
			assert.Equal(t, bits, p.BitLen())
			assert.Equal(t, uint(1), p.Bit(0))
			assert.True(t, p.ProbablyPrime(20), "bits=%d p=%s", bits, p)
		}
	}
}

func TestGenerate_Large(t *testing.T) {
	p, err := Generate(context.Background(), rand.Reader, 256)
	require.NoError(t, err)
	assert.Equal(t, 256, p.BitLen())
	assert.True(t, p.ProbablyPrime(20))
}

func TestGenerate_Deterministic(t *testing.T) {
	p1, err := Generate(context.Background(), sample.NewSeededReader([]byte("p")), 128)
	require.NoError(t, err)
	p2, err := Generate(context.Background(), sample.NewSeededReader([]byte("p")), 128)
	require.NoError(t, err)
	assert.Zero(t, p1.Cmp(p2))
}

func TestGenerate_Invalid(t *testing.T) {
	_, err := Generate(context.Background(), rand.Reader, 1)
	assert.Equal(t, ErrInvalidBits, err)

	p, err := Generate(context.Background(), rand.Reader, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Int64())
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Generate(ctx, rand.Reader, 512)
	assert.ErrorIs(t, err, context.Canceled)

	ctx, cancel = context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)
	_, err = Generate(ctx, rand.Reader, 512)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
