package gochap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/gochap/pkg/digest"
	"github.com/vitalvas/gochap/pkg/secrets"
)

func testStore(t *testing.T) *secrets.Store {
	t.Helper()

	store := secrets.NewStore()
	require.NoError(t, store.Add(secrets.Peer{Name: "client.example", Secret: "s3cret"}))
	require.NoError(t, store.Add(secrets.Peer{Name: "strong.example", Secret: "other", Digest: "sha256"}))

	return store
}

func TestAuthenticatorChallenge(t *testing.T) {
	auth := NewAuthenticator(testStore(t))

	_, challenge, err := auth.Challenge()
	require.NoError(t, err)
	assert.Len(t, challenge, DefaultChallengeLength)

	t.Run("custom challenge length", func(t *testing.T) {
		auth := NewAuthenticator(testStore(t), WithChallengeLength(48))

		_, challenge, err := auth.Challenge()
		require.NoError(t, err)
		assert.Len(t, challenge, 48)
	})

	t.Run("challenges are unique", func(t *testing.T) {
		_, challenge1, err := auth.Challenge()
		require.NoError(t, err)

		_, challenge2, err := auth.Challenge()
		require.NoError(t, err)

		assert.NotEqual(t, challenge1, challenge2)
	})
}

func TestAuthenticatorAuthenticate(t *testing.T) {
	auth := NewAuthenticator(testStore(t))

	t.Run("valid response", func(t *testing.T) {
		identifier, challenge, err := auth.Challenge()
		require.NoError(t, err)

		response, err := Respond(digest.MD5, identifier, []byte("s3cret"), challenge)
		require.NoError(t, err)

		ok, err := auth.Authenticate("client.example", identifier, challenge, response)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong secret", func(t *testing.T) {
		identifier, challenge, err := auth.Challenge()
		require.NoError(t, err)

		response, err := Respond(digest.MD5, identifier, []byte("guessed"), challenge)
		require.NoError(t, err)

		ok, err := auth.Authenticate("client.example", identifier, challenge, response)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("replayed response against new challenge", func(t *testing.T) {
		identifier, challenge, err := auth.Challenge()
		require.NoError(t, err)

		response, err := Respond(digest.MD5, identifier, []byte("s3cret"), challenge)
		require.NoError(t, err)

		_, freshChallenge, err := auth.Challenge()
		require.NoError(t, err)

		ok, err := auth.Authenticate("client.example", identifier, freshChallenge, response)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown peer", func(t *testing.T) {
		ok, err := auth.Authenticate("nobody.example", 0x01, []byte("challenge"), []byte("response"))
		assert.ErrorIs(t, err, ErrUnknownPeer)
		assert.False(t, ok)
	})

	t.Run("per-peer digest override", func(t *testing.T) {
		identifier, challenge, err := auth.Challenge()
		require.NoError(t, err)

		response, err := Respond(digest.SHA256, identifier, []byte("other"), challenge)
		require.NoError(t, err)

		ok, err := auth.Authenticate("strong.example", identifier, challenge, response)
		require.NoError(t, err)
		assert.True(t, ok)

		// The same peer must not pass with an MD5 response.
		md5Response, err := Respond(digest.MD5, identifier, []byte("other"), challenge)
		require.NoError(t, err)

		ok, err = auth.Authenticate("strong.example", identifier, challenge, md5Response)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("default algorithm override", func(t *testing.T) {
		auth := NewAuthenticator(testStore(t), WithAlgorithm(digest.SHA1))

		identifier, challenge, err := auth.Challenge()
		require.NoError(t, err)

		response, err := Respond(digest.SHA1, identifier, []byte("s3cret"), challenge)
		require.NoError(t, err)

		ok, err := auth.Authenticate("client.example", identifier, challenge, response)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
