package randutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDeterministic(t *testing.T) {
	t.Parallel()
	a, b := New(99), New(99)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestDerive(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(42), Derive(42, 0))

	seen := map[int64]bool{42: true}
	for stream := 1; stream < 64; stream++ {
		s := Derive(42, stream)
		assert.False(t, seen[s], "stream %d collides", stream)
		seen[s] = true
		assert.Equal(t, s, Derive(42, stream))
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	now := time.Unix(1700000000, 5)
	assert.Equal(t, int64(7), Resolve(7, now))
	assert.Equal(t, now.UnixNano(), Resolve(0, now))
}
