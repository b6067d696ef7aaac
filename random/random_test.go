package random

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMix64_Reference(t *testing.T) {
	sm := splitMix64(1234567)

	assert.Equal(t,
		[]uint64{6457827717110365317, 3203168211198807973, 9817491932198370423},
		[]uint64{sm.next(), sm.next(), sm.next()},
	)
}

func TestSource_Sequence(t *testing.T) {
	r := New(1)

	want := []uint64{
		12966619160104079557,
		9600361134598540522,
		10590380919521690900,
		7218738570589545383,
	}

	for i, w := range want {
		assert.Equal(t, w, r.Uint64(), "value %d", i)
	}
}

func TestSource_Deterministic(t *testing.T) {
	a, b := New(42), New(42)

	for range 100 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}

	a.Seed(7)
	b.Seed(7)
	assert.Equal(t, a.Uint64(), b.Uint64())
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSource_ZeroSeed(t *testing.T) {
	z := New(0)

	assert.NotEqual(t, [4]uint64{}, z.s)
	assert.Equal(t, uint64(9023282447789135954), z.Uint64())
}

func TestSource_Range(t *testing.T) {
	r := New(99)
	seen := map[int]bool{}

	for range 1000 {
		v := r.Range(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)

		seen[v] = true
	}

	assert.Len(t, seen, 5, "every value in range is produced")
	assert.Equal(t, 5, r.Range(5, 5))

	v := r.Range(10, 0)
	assert.GreaterOrEqual(t, v, 0)
	assert.LessOrEqual(t, v, 10)
}

func TestSource_RandSource(t *testing.T) {
	var _ rand.Source = New(1)

	rng := rand.New(New(5))
	n := rng.IntN(10)

	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, 10)
}

func BenchmarkSource_Uint64(b *testing.B) {
	r := New(1)

	for b.Loop() {
		_ = r.Uint64()
	}
}
