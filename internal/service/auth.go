package service

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"adlot.app/inventory/core/config"
	"adlot.app/inventory/internal/model"
)

// ErrInvalidToken is returned for credentials that cannot be resolved to an
// identity.
var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier resolves a bearer token or session cookie value into the
// caller's identity. It is the only contact point with the external identity
// provider.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*model.Identity, error)
}

type identityClaims struct {
	Email   *string `json:"email,omitempty"`
	Picture string  `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

type jwtVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier verifies HS256 tokens issued by the identity provider.
// The subject claim carries the user ID.
func NewJWTVerifier(cfg config.AuthConfig) TokenVerifier {
	return &jwtVerifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
	}
}

func (v *jwtVerifier) Verify(_ context.Context, token string) (*model.Identity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &identityClaims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*identityClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &model.Identity{
		UserID:   claims.Subject,
		Email:    claims.Email,
		ImageURL: claims.Picture,
	}, nil
}
