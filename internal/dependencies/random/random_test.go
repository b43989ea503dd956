package random_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/hangman-go/internal/dependencies/mocks"
	"github.com/mcoot/hangman-go/internal/dependencies/random"
)

func TestCryptoIntnStaysInRange(t *testing.T) {
	r := random.New()
	for range 100 {
		n := r.Intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)
	}
	assert.Equal(t, 0, r.Intn(0))
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestCryptoIntnPanicsWhenSourceFails(t *testing.T) {
	r := random.Crypto{Reader: brokenReader{}}
	assert.PanicsWithValue(t, "random: reading entropy: no entropy", func() {
		r.Intn(5)
	})
}

func TestChoose(t *testing.T) {
	r := mocks.NewMockRandom()
	r.QueueIntn(2, 9, -1)
	items := []string{"a", "b", "c"}

	got, ok := random.Choose(r, items)
	assert.True(t, ok)
	assert.Equal(t, "c", got)

	// out of range picks clamp to the first item
	got, _ = random.Choose(r, items)
	assert.Equal(t, "a", got)
	got, _ = random.Choose(r, items)
	assert.Equal(t, "a", got)

	_, ok = random.Choose(r, []string{})
	assert.False(t, ok)
}
