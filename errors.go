package gochap

import "errors"

var (
	// ErrStateSize is returned by Init when the digest reports a
	// non-positive or oversized working-state or output size, so the
	// combined state allocation cannot be satisfied.
	ErrStateSize = errors.New("chap: invalid digest state size")

	// ErrAlreadyInitialized is returned by Init when the instance is
	// already initialized and has not been finished.
	ErrAlreadyInitialized = errors.New("chap: challenge response already initialized")

	// ErrNotInitialized is returned by Update and Respond before a
	// successful Init.
	ErrNotInitialized = errors.New("chap: challenge response not initialized")

	// ErrUnknownPeer is returned by Authenticator.Authenticate for a
	// peer with no stored secret.
	ErrUnknownPeer = errors.New("chap: unknown peer")
)
