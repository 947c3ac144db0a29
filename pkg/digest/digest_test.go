package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithmSizes(t *testing.T) {
	tests := []struct {
		alg         Algorithm
		contextSize int
		outputSize  int
	}{
		{MD5, 92, 16},
		{SHA1, 96, 20},
		{SHA256, 108, 32},
	}

	for _, tt := range tests {
		t.Run(tt.alg.Name(), func(t *testing.T) {
			assert.Equal(t, tt.contextSize, tt.alg.ContextSize())
			assert.Equal(t, tt.outputSize, tt.alg.OutputSize())
		})
	}
}

func TestAlgorithmComputation(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog")

	tests := []struct {
		alg     Algorithm
		factory func() hash.Hash
	}{
		{MD5, md5.New},
		{SHA1, sha1.New},
		{SHA256, sha256.New},
	}

	for _, tt := range tests {
		t.Run(tt.alg.Name(), func(t *testing.T) {
			state := make([]byte, tt.alg.ContextSize())
			out := make([]byte, tt.alg.OutputSize())

			tt.alg.Init(state)
			tt.alg.Update(state, payload)
			tt.alg.Final(state, out)

			reference := tt.factory()
			reference.Write(payload)
			assert.Equal(t, reference.Sum(nil), out)
		})

		t.Run(tt.alg.Name()+" streaming", func(t *testing.T) {
			state := make([]byte, tt.alg.ContextSize())
			out := make([]byte, tt.alg.OutputSize())

			tt.alg.Init(state)
			for _, b := range payload {
				tt.alg.Update(state, []byte{b})
			}
			tt.alg.Final(state, out)

			reference := tt.factory()
			reference.Write(payload)
			assert.Equal(t, reference.Sum(nil), out)
		})

		t.Run(tt.alg.Name()+" empty input", func(t *testing.T) {
			state := make([]byte, tt.alg.ContextSize())
			out := make([]byte, tt.alg.OutputSize())

			tt.alg.Init(state)
			tt.alg.Final(state, out)

			assert.Equal(t, tt.factory().Sum(nil), out)
		})
	}
}

func TestAlgorithmInitResetsState(t *testing.T) {
	state := make([]byte, MD5.ContextSize())
	out := make([]byte, MD5.OutputSize())

	MD5.Init(state)
	MD5.Update(state, []byte("stale data"))

	MD5.Init(state)
	MD5.Final(state, out)

	assert.Equal(t, md5.New().Sum(nil), out)
}

func TestAlgorithmIndependentStates(t *testing.T) {
	stateA := make([]byte, SHA1.ContextSize())
	stateB := make([]byte, SHA1.ContextSize())
	outA := make([]byte, SHA1.OutputSize())
	outB := make([]byte, SHA1.OutputSize())

	SHA1.Init(stateA)
	SHA1.Init(stateB)

	SHA1.Update(stateA, []byte("first"))
	SHA1.Update(stateB, []byte("second"))

	SHA1.Final(stateA, outA)
	SHA1.Final(stateB, outB)

	sumA := sha1.Sum([]byte("first"))
	sumB := sha1.Sum([]byte("second"))

	assert.Equal(t, sumA[:], outA)
	assert.Equal(t, sumB[:], outB)
}

func TestAlgorithmFinalDoesNotResetState(t *testing.T) {
	state := make([]byte, SHA256.ContextSize())
	first := make([]byte, SHA256.OutputSize())
	second := make([]byte, SHA256.OutputSize())

	SHA256.Init(state)
	SHA256.Update(state, []byte("data"))
	SHA256.Final(state, first)
	SHA256.Final(state, second)

	assert.Equal(t, first, second)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		expected Algorithm
	}{
		{"md5", MD5},
		{"MD5", MD5},
		{"sha1", SHA1},
		{"sha256", SHA256},
		{"Sha256", SHA256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alg, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, alg)
		})
	}

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := Lookup("whirlpool")
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	})
}

type staticAlgorithm struct {
	name        string
	contextSize int
	outputSize  int
}

func (a staticAlgorithm) Name() string { return a.name }

func (a staticAlgorithm) ContextSize() int { return a.contextSize }

func (a staticAlgorithm) OutputSize() int { return a.outputSize }

func (a staticAlgorithm) Init(state []byte) {}

func (a staticAlgorithm) Update(state, data []byte) {}

func (a staticAlgorithm) Final(state, out []byte) {}

func TestRegister(t *testing.T) {
	t.Run("custom algorithm", func(t *testing.T) {
		alg := staticAlgorithm{name: "test-custom", contextSize: 8, outputSize: 4}
		require.NoError(t, Register(alg))

		resolved, err := Lookup("test-custom")
		require.NoError(t, err)
		assert.Equal(t, Algorithm(alg), resolved)
	})

	t.Run("duplicate name", func(t *testing.T) {
		err := Register(staticAlgorithm{name: "md5", contextSize: 8, outputSize: 4})
		assert.ErrorIs(t, err, ErrDuplicateAlgorithm)
	})

	t.Run("nil algorithm", func(t *testing.T) {
		assert.ErrorIs(t, Register(nil), ErrInvalidAlgorithm)
	})

	t.Run("empty name", func(t *testing.T) {
		err := Register(staticAlgorithm{contextSize: 8, outputSize: 4})
		assert.ErrorIs(t, err, ErrInvalidAlgorithm)
	})

	t.Run("invalid sizes", func(t *testing.T) {
		err := Register(staticAlgorithm{name: "test-broken", contextSize: 0, outputSize: 4})
		assert.ErrorIs(t, err, ErrInvalidAlgorithm)

		err = Register(staticAlgorithm{name: "test-broken", contextSize: 8, outputSize: -1})
		assert.ErrorIs(t, err, ErrInvalidAlgorithm)
	})
}

func TestNames(t *testing.T) {
	names := Names()

	assert.Contains(t, names, "md5")
	assert.Contains(t, names, "sha1")
	assert.Contains(t, names, "sha256")
	assert.IsIncreasing(t, names)
}

func BenchmarkAlgorithmUpdate(b *testing.B) {
	state := make([]byte, MD5.ContextSize())
	MD5.Init(state)
	data := make([]byte, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MD5.Update(state, data)
	}
}
