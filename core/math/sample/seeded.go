package sample

import (
	"io"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20"
)

// SeededReader is a deterministic stream of pseudo-random bytes: the ChaCha20 keystream under a key
// derived from a seed with BLAKE3. Two readers built from the same seed yield identical output.
//
// Reads are serialized, so a reader may be shared between goroutines; how the stream is split between
// them then depends on scheduling.
//
// It exists so key generation can be replayed in tests; it is not a substitute for crypto/rand.
type SeededReader struct {
	mtx    sync.Mutex
	cipher *chacha20.Cipher
}

var _ io.Reader = (*SeededReader)(nil)

// NewSeededReader creates a SeededReader for the given seed.
func NewSeededReader(seed []byte) *SeededReader {
	key := blake3.Sum256(seed)
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// key and nonce sizes are fixed
		panic(err)
	}
	return &SeededReader{cipher: c}
}

func (r *SeededReader) Read(p []byte) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}
