package accesscontrol

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenVerifier(t *testing.T) {
	verifier, err := NewTokenVerifier([]byte("test-secret"))
	require.NoError(t, err)
	claim := shared.Claim{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Role: shared.RoleEditor}

	t.Run("should return the claim of an issued token", func(t *testing.T) {
		token, err := verifier.Issue(claim, time.Hour)
		require.NoError(t, err)

		got, err := verifier.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, claim, got)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		other, err := NewTokenVerifier([]byte("other-secret"))
		require.NoError(t, err)
		token, err := other.Issue(claim, time.Hour)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
			UserID: claim.ID.String(),
			Role:   claim.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = verifier.Verify(signed)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("should reject an unknown role", func(t *testing.T) {
		token, err := verifier.Issue(shared.Claim{ID: uuid.New(), Role: "owner"}, time.Hour)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("should reject the none algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{
			UserID: claim.ID.String(),
			Role:   claim.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Verify(signed)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("should refuse an empty secret", func(t *testing.T) {
		_, err := NewTokenVerifier(nil)
		assert.Error(t, err)
	})
}
