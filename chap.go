// Package gochap implements the CHAP (RFC 1994) challenge/response
// computation: proving possession of a shared secret by hashing the
// exchange identifier, the secret, and a server-supplied challenge,
// without ever transmitting the secret.
package gochap

import (
	"fmt"

	"github.com/vitalvas/gochap/pkg/digest"
	"github.com/vitalvas/gochap/pkg/log"
)

const (
	// DefaultChallengeLength is the default length of a CHAP challenge in bytes.
	DefaultChallengeLength = 16

	// MaxChallengeLength is the largest challenge length representable
	// in CHAP's one-byte Value-Size field.
	MaxChallengeLength = 255

	// MaxStateSize bounds the combined working-state plus response
	// allocation a digest algorithm may request from Init.
	MaxStateSize = 1 << 20
)

// ChallengeResponse accumulates CHAP challenge material (identifier,
// secret, challenge value) into a digest working state and produces the
// fixed-length response value.
//
// The zero value is an uninitialized instance: Init binds a digest
// algorithm and allocates the state, Update feeds bytes any number of
// times, Respond finalizes, and Finish releases everything. Working
// state and response buffer share a single backing allocation, so both
// become invalid together when Finish runs.
//
// An instance must not be used from multiple goroutines; use one
// instance per in-flight exchange.
type ChallengeResponse struct {
	alg       digest.Algorithm
	buf       []byte
	state     []byte
	response  []byte
	responded bool
	logger    log.Logger
}

// Init binds alg to the instance, performs the single backing
// allocation, and initializes the digest working state.
//
// It returns ErrAlreadyInitialized if the instance is already
// initialized, and ErrStateSize if alg reports a non-positive or
// oversized working-state or output size. On error the instance is left
// untouched.
func (c *ChallengeResponse) Init(alg digest.Algorithm, opts ...Option) error {
	if c.alg != nil {
		return ErrAlreadyInitialized
	}

	contextSize := alg.ContextSize()
	outputSize := alg.OutputSize()
	if contextSize <= 0 || outputSize <= 0 || contextSize+outputSize > MaxStateSize {
		return fmt.Errorf("%w: %s reports context %d, output %d",
			ErrStateSize, alg.Name(), contextSize, outputSize)
	}

	cfg := defaultInitConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	buf := make([]byte, contextSize+outputSize)

	c.alg = alg
	c.buf = buf
	// The three-index slice keeps the working-state view from ever
	// growing into the response view.
	c.state = buf[0:contextSize:contextSize]
	c.response = buf[contextSize:]
	c.responded = false
	c.logger = cfg.logger

	c.alg.Init(c.state)
	c.logger.Debugf("chap: initialized with %s digest (state %d bytes, response %d bytes)",
		alg.Name(), contextSize, outputSize)

	return nil
}

// Update mixes data into the digest working state. It may be called any
// number of times, including zero, between Init and Respond. Calling it
// on an uninitialized instance returns ErrNotInitialized.
func (c *ChallengeResponse) Update(data []byte) error {
	if c.alg == nil {
		return ErrNotInitialized
	}

	c.alg.Update(c.state, data)
	return nil
}

// Respond finalizes the accumulated working state into the response
// value, which Response then exposes. Calling it on an uninitialized
// instance returns ErrNotInitialized.
//
// Respond may be called more than once; each call re-finalizes whatever
// state has accumulated. There is no automatic reset between calls.
func (c *ChallengeResponse) Respond() error {
	if c.alg == nil {
		return ErrNotInitialized
	}

	c.alg.Final(c.state, c.response)
	c.responded = true
	c.logger.Debugf("chap: finalized %d byte response", len(c.response))

	return nil
}

// Response returns a copy of the finalized response value, or nil if
// Respond has not been called since Init.
func (c *ChallengeResponse) Response() []byte {
	if !c.responded {
		return nil
	}

	out := make([]byte, len(c.response))
	copy(out, c.response)
	return out
}

// ResponseLen returns the response length for the bound digest, or zero
// on an uninitialized instance.
func (c *ChallengeResponse) ResponseLen() int {
	return len(c.response)
}

// Initialized reports whether Init has succeeded without a subsequent
// Finish.
func (c *ChallengeResponse) Initialized() bool {
	return c.alg != nil
}

// Algorithm returns the bound digest algorithm, or nil on an
// uninitialized instance.
func (c *ChallengeResponse) Algorithm() digest.Algorithm {
	return c.alg
}

// Finish zeroes and releases the backing state and returns the instance
// to its uninitialized zero value. It is idempotent and safe to call on
// an instance that was never initialized.
func (c *ChallengeResponse) Finish() {
	if c.buf != nil {
		// The buffer held digest state derived from the secret.
		clear(c.buf)
		c.logger.Debug("chap: finished, state released")
	}

	*c = ChallengeResponse{}
}
