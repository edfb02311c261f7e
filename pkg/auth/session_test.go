package auth_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"talento-local-backend/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alice() auth.Identity {
	return auth.Identity{UserID: "u-alice", Email: "alice@x.com", Name: "Alice Ruiz", Role: "CITIZEN"}
}

func TestSessionRoundTrip(t *testing.T) {
	issuer := auth.NewSessionIssuer("test-secret", "talento-local", time.Hour)

	session, err := issuer.Issue(alice())
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	t.Run("Plain token resolves", func(t *testing.T) {
		id, err := issuer.Resolve(session.Token)
		require.NoError(t, err)
		assert.Equal(t, "u-alice", id.UserID)
		assert.Equal(t, "CITIZEN", id.Role)
		assert.Equal(t, "alice@x.com", id.Email)
	})

	t.Run("Bearer prefix is accepted", func(t *testing.T) {
		id, err := issuer.Resolve("Bearer " + session.Token)
		require.NoError(t, err)
		assert.Equal(t, "u-alice", id.UserID)
	})
}

func TestSessionRejections(t *testing.T) {
	issuer := auth.NewSessionIssuer("test-secret", "talento-local", time.Hour)
	session, err := issuer.Issue(alice())
	require.NoError(t, err)

	t.Run("Empty token", func(t *testing.T) {
		_, err := issuer.Resolve("")
		assert.True(t, errors.Is(err, auth.ErrInvalidSession))
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := issuer.Resolve("not.a.jwt")
		assert.True(t, errors.Is(err, auth.ErrInvalidSession))
	})

	t.Run("Tampered signature", func(t *testing.T) {
		parts := strings.Split(session.Token, ".")
		require.Len(t, parts, 3)
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(sig)
		_, err := issuer.Resolve(tampered)
		assert.True(t, errors.Is(err, auth.ErrInvalidSession))
	})

	t.Run("Different secret", func(t *testing.T) {
		other := auth.NewSessionIssuer("other-secret", "talento-local", time.Hour)
		_, err := other.Resolve(session.Token)
		assert.True(t, errors.Is(err, auth.ErrInvalidSession))
	})

	t.Run("Expired token", func(t *testing.T) {
		later := auth.NewSessionIssuer("test-secret", "talento-local", time.Hour).
			WithClock(func() time.Time { return time.Now().Add(2 * time.Hour) })
		_, err := later.Resolve(session.Token)
		assert.True(t, errors.Is(err, auth.ErrInvalidSession))
	})

	t.Run("Role cannot be forged with alg none", func(t *testing.T) {
		claims := auth.Claims{
			Role: "COMPANY",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "u-alice",
				Issuer:    "talento-local",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = issuer.Resolve(forged)
		assert.True(t, errors.Is(err, auth.ErrInvalidSession))
	})

	t.Run("Missing secret refuses to issue", func(t *testing.T) {
		_, err := auth.NewSessionIssuer("", "talento-local", time.Hour).Issue(alice())
		assert.ErrorIs(t, err, auth.ErrMissingSecret)
	})
}
