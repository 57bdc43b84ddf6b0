package sampler

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint64_ReferenceVector(t *testing.T) {
	// Reference outputs of splitmix64.c for a zero state.
	s := New(0)
	assert.Equal(t, uint64(0xe220a8397b1dcdaf), s.Uint64())
	assert.Equal(t, uint64(0x6e789e6aa1b965f4), s.Uint64())
	assert.Equal(t, uint64(0x06c45d188009454f), s.Uint64())
}

func TestUint64_NegativeSeed(t *testing.T) {
	s := New(-1)
	assert.Equal(t, uint64(0xe4d971771b652c20), s.Uint64())
	assert.Equal(t, uint64(0xe99ff867dbf682c9), s.Uint64())
}

func TestFloat64_MatchesSplittableRandom(t *testing.T) {
	// new SplittableRandom(123456789).nextDouble() x5
	want := []float64{
		0.13373499206310924,
		0.4787882026807392,
		0.19162036135149296,
		0.5199893764426154,
		0.10201027915279737,
	}
	s := New(123456789)
	for i, w := range want {
		assert.Equal(t, w, s.Float64(), "draw %d", i)
	}
}

func TestFloat64_Range(t *testing.T) {
	s := New(42)
	for i := 0; i < 100000; i++ {
		v := s.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestDeterminism(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a, b := New(1), New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	assert.Less(t, same, 100)
}

func TestReseedRestartsSequence(t *testing.T) {
	s := New(99)
	first := []float64{s.Float64(), s.Float64(), s.Float64()}
	s = New(99)
	for _, want := range first {
		assert.Equal(t, want, s.Float64())
	}
}

func TestUsableAsRandSource(t *testing.T) {
	r := rand.New(New(5))
	for i := 0; i < 100; i++ {
		n := r.IntN(10)
		assert.True(t, n >= 0 && n < 10)
	}
}
