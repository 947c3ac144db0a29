// Package digest exposes incremental hash algorithms through an opaque,
// caller-owned working state, the way CHAP consumes them: the caller
// allocates ContextSize bytes once and the algorithm reads and writes
// only that region between calls.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding"
	"fmt"
	"hash"
)

// Algorithm describes an incremental digest computed over a fixed-size
// working state owned by the caller. An Algorithm value carries no
// per-computation state of its own and is safe for concurrent use by any
// number of working states.
type Algorithm interface {
	// Name returns the registry name of the algorithm.
	Name() string

	// ContextSize returns the fixed byte size of the working state.
	ContextSize() int

	// OutputSize returns the fixed byte size of the finalized digest.
	OutputSize() int

	// Init sets state to the algorithm's defined initial value. The
	// state slice must be at least ContextSize bytes.
	Init(state []byte)

	// Update mixes data into state.
	Update(state, data []byte)

	// Final writes exactly OutputSize bytes of finalized digest to out.
	// The working state is not reset; computing a fresh digest requires
	// another Init.
	Final(state, out []byte)
}

// Standard algorithms, available from package load. CHAP as specified in
// RFC 1994 uses MD5; SHA-1 and SHA-256 cover the digest extensions used
// by iSCSI-style CHAP negotiation.
var (
	MD5    = mustHashAlgorithm("md5", md5.New)
	SHA1   = mustHashAlgorithm("sha1", sha1.New)
	SHA256 = mustHashAlgorithm("sha256", sha256.New)
)

func init() {
	for _, alg := range []Algorithm{MD5, SHA1, SHA256} {
		if err := Register(alg); err != nil {
			panic(err)
		}
	}
}

// hashAlgorithm adapts a stdlib hash.Hash constructor to the opaque
// working-state contract. The hash's incremental state is persisted into
// the caller's region through its binary marshaling support, so the
// context size is the marshaled-state size (92 bytes for MD5, 96 for
// SHA-1, 108 for SHA-256).
type hashAlgorithm struct {
	name        string
	contextSize int
	outputSize  int
	factory     func() hash.Hash
}

func newHashAlgorithm(name string, factory func() hash.Hash) (*hashAlgorithm, error) {
	h := factory()
	marshaler, ok := h.(encoding.BinaryMarshaler)
	if !ok {
		return nil, fmt.Errorf("digest: hash %q does not expose marshalable state", name)
	}

	state, err := marshaler.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("digest: failed to snapshot %q state: %w", name, err)
	}

	return &hashAlgorithm{
		name:        name,
		contextSize: len(state),
		outputSize:  h.Size(),
		factory:     factory,
	}, nil
}

func mustHashAlgorithm(name string, factory func() hash.Hash) *hashAlgorithm {
	alg, err := newHashAlgorithm(name, factory)
	if err != nil {
		panic(err)
	}
	return alg
}

// Name returns the registry name of the algorithm.
func (a *hashAlgorithm) Name() string {
	return a.name
}

// ContextSize returns the marshaled-state size of the underlying hash.
func (a *hashAlgorithm) ContextSize() int {
	return a.contextSize
}

// OutputSize returns the digest size of the underlying hash.
func (a *hashAlgorithm) OutputSize() int {
	return a.outputSize
}

// Init writes the hash's initial state into state.
func (a *hashAlgorithm) Init(state []byte) {
	a.save(a.factory(), state)
}

// Update restores the hash from state, mixes in data, and persists the
// advanced state back.
func (a *hashAlgorithm) Update(state, data []byte) {
	h := a.load(state)
	h.Write(data)
	a.save(h, state)
}

// Final restores the hash from state and writes the finalized digest to
// out, which must be at least OutputSize bytes.
func (a *hashAlgorithm) Final(state, out []byte) {
	h := a.load(state)
	copy(out, h.Sum(nil))
}

func (a *hashAlgorithm) save(h hash.Hash, state []byte) {
	// Cannot fail: the constructor proved the hash marshals, and stdlib
	// hash marshaling is infallible with a fixed output size.
	marshaled, _ := h.(encoding.BinaryMarshaler).MarshalBinary()
	copy(state, marshaled)
}

func (a *hashAlgorithm) load(state []byte) hash.Hash {
	h := a.factory()
	// Cannot fail on state this algorithm wrote via save.
	_ = h.(encoding.BinaryUnmarshaler).UnmarshalBinary(state[:a.contextSize])
	return h
}
