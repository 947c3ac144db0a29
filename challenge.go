package gochap

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"github.com/vitalvas/gochap/pkg/digest"
)

// GenerateChallenge generates a random CHAP challenge.
// The challenge is typically 16 bytes but can be any length from 1 to
// 255 bytes; out-of-range lengths are clamped.
func GenerateChallenge(length int) ([]byte, error) {
	if length <= 0 {
		length = DefaultChallengeLength
	}

	if length > MaxChallengeLength {
		length = MaxChallengeLength
	}

	challenge := make([]byte, length)
	if _, err := rand.Read(challenge); err != nil {
		return nil, fmt.Errorf("chap: failed to generate challenge: %w", err)
	}

	return challenge, nil
}

// Respond computes the CHAP response value for one exchange:
// digest(identifier | secret | challenge) per RFC 1994 section 4.1.
func Respond(alg digest.Algorithm, identifier byte, secret, challenge []byte, opts ...Option) ([]byte, error) {
	var cr ChallengeResponse
	if err := cr.Init(alg, opts...); err != nil {
		return nil, err
	}
	defer cr.Finish()

	for _, part := range [][]byte{{identifier}, secret, challenge} {
		if err := cr.Update(part); err != nil {
			return nil, err
		}
	}

	if err := cr.Respond(); err != nil {
		return nil, err
	}

	return cr.Response(), nil
}

// Verify recomputes the expected response for the given inputs and
// compares it to response in constant time.
func Verify(alg digest.Algorithm, identifier byte, secret, challenge, response []byte) (bool, error) {
	expected, err := Respond(alg, identifier, secret, challenge)
	if err != nil {
		return false, err
	}

	if len(response) != len(expected) {
		return false, nil
	}

	return subtle.ConstantTimeCompare(expected, response) == 1, nil
}
