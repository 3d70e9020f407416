package accesscontrol

import (
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
)

const tokenIssuer = "incidentguard"

var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	UserID string      `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   shared.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenVerifier checks HS256 signed bearer tokens issued by the identity
// provider in front of this service.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret []byte) (*TokenVerifier, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret is not configured")
	}
	return &TokenVerifier{secret: secret}, nil
}

func NewTokenVerifierFromEnv() (*TokenVerifier, error) {
	return NewTokenVerifier([]byte(os.Getenv("JWT_SECRET")))
}

// Issue signs a token for the claim. It is used by the cli and in tests.
func (v *TokenVerifier) Issue(claim shared.Claim, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.New("ttl must be greater than zero")
	}
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID: claim.ID.String(),
		Name:   claim.Name,
		Email:  claim.Email,
		Role:   claim.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   claim.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	})
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", errors.Wrap(err, "could not sign token")
	}
	return signed, nil
}

// Verify returns the claim of a valid token. The role must be known and the
// id must be a uuid, otherwise the token is rejected as a whole.
func (v *TokenVerifier) Verify(raw string) (shared.Claim, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return shared.Claim{}, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return shared.Claim{}, errors.Wrap(ErrInvalidToken, err.Error())
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return shared.Claim{}, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil || id == uuid.Nil {
		return shared.Claim{}, errors.Wrap(ErrInvalidToken, "id is not a uuid")
	}
	if !claims.Role.IsValid() {
		return shared.Claim{}, errors.Wrapf(ErrInvalidToken, "unknown role %q", claims.Role)
	}

	return shared.Claim{
		ID:    id,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
