package gochap

import (
	"crypto/rand"
	"fmt"

	"github.com/vitalvas/gochap/pkg/digest"
	"github.com/vitalvas/gochap/pkg/log"
	"github.com/vitalvas/gochap/pkg/secrets"
)

// Authenticator is the server side of a CHAP exchange: it issues
// challenges and validates responses against a peer secret store.
type Authenticator struct {
	store           *secrets.Store
	alg             digest.Algorithm
	challengeLength int
	logger          log.Logger
}

// AuthenticatorOption configures an Authenticator.
type AuthenticatorOption func(*Authenticator)

// WithAuthenticatorLogger sets the logger for authentication events.
func WithAuthenticatorLogger(logger log.Logger) AuthenticatorOption {
	return func(a *Authenticator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithAlgorithm sets the default digest algorithm used when a peer entry
// does not name one.
func WithAlgorithm(alg digest.Algorithm) AuthenticatorOption {
	return func(a *Authenticator) {
		if alg != nil {
			a.alg = alg
		}
	}
}

// WithChallengeLength sets the challenge length issued by Challenge.
func WithChallengeLength(length int) AuthenticatorOption {
	return func(a *Authenticator) {
		a.challengeLength = length
	}
}

// NewAuthenticator creates an authenticator over the given secret store.
// The default digest is MD5 per RFC 1994 and the default challenge
// length is DefaultChallengeLength.
func NewAuthenticator(store *secrets.Store, opts ...AuthenticatorOption) *Authenticator {
	auth := &Authenticator{
		store:           store,
		alg:             digest.MD5,
		challengeLength: DefaultChallengeLength,
		logger:          log.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(auth)
	}

	return auth
}

// Challenge produces a random identifier and challenge value for a new
// exchange.
func (a *Authenticator) Challenge() (byte, []byte, error) {
	var identifier [1]byte
	if _, err := rand.Read(identifier[:]); err != nil {
		return 0, nil, fmt.Errorf("chap: failed to generate identifier: %w", err)
	}

	challenge, err := GenerateChallenge(a.challengeLength)
	if err != nil {
		return 0, nil, err
	}

	return identifier[0], challenge, nil
}

// Authenticate checks response against the stored secret for peer,
// using the peer's digest override when its store entry names one.
// An unknown peer yields ErrUnknownPeer.
func (a *Authenticator) Authenticate(peer string, identifier byte, challenge, response []byte) (bool, error) {
	entry, ok := a.store.Lookup(peer)
	if !ok {
		a.logger.Warnf("chap: authentication attempt for unknown peer %q", peer)
		return false, fmt.Errorf("%w: %s", ErrUnknownPeer, peer)
	}

	alg := a.alg
	if entry.Digest != "" {
		resolved, err := digest.Lookup(entry.Digest)
		if err != nil {
			return false, fmt.Errorf("chap: peer %q: %w", peer, err)
		}
		alg = resolved
	}

	ok, err := Verify(alg, identifier, []byte(entry.Secret), challenge, response)
	if err != nil {
		return false, err
	}

	if ok {
		a.logger.Infof("chap: peer %q authenticated with %s digest", peer, alg.Name())
	} else {
		a.logger.Warnf("chap: peer %q failed authentication", peer)
	}

	return ok, nil
}
