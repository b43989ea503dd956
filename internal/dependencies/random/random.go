package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Random picks indexes, mostly for choosing the secret word
type Random interface {
	// Intn returns an int in [0, n)
	Intn(n int) int
}

// Crypto draws from crypto/rand so secret words cannot be predicted from
// earlier games. Reader overrides the source; nil means rand.Reader.
type Crypto struct {
	Reader io.Reader
}

// New returns a crypto/rand backed source
func New() Crypto {
	return Crypto{}
}

// Intn panics if the source fails. Falling back to a fixed index would hand
// every game the same word.
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	src := c.Reader
	if src == nil {
		src = rand.Reader
	}
	result, err := rand.Int(src, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("random: reading entropy: %v", err))
	}
	return int(result.Int64())
}

// Choose returns an element of items picked by r. Out of range picks from
// a misbehaving source clamp to the first element. ok is false for an
// empty slice.
func Choose[T any](r Random, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	idx := r.Intn(len(items))
	if idx < 0 || idx >= len(items) {
		idx = 0
	}
	return items[idx], true
}
