package security

import (
	"context"
	"errors"
	"time"

	"estatehub/internal/auth/config"
	"estatehub/internal/auth/domain/repository"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is the single verification failure. Expiry, tampering,
// malformed structure, and wrong signing method all collapse into it so the
// caller cannot leak why verification failed.
var ErrTokenInvalid = errors.New("token is invalid")

// JWTokenService implements token issue and verification with HS256.
type JWTokenService struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}

// NewJWTokenService creates a token service from the identity config.
func NewJWTokenService(cfg *config.Config) (*JWTokenService, error) {
	if cfg.JWTSecretKey == "" {
		return nil, errors.New("jwt secret key cannot be empty")
	}
	if cfg.JWTIssuer == "" {
		return nil, errors.New("jwt issuer cannot be empty")
	}
	if cfg.TokenTTL <= 0 {
		return nil, errors.New("jwt token TTL must be positive")
	}

	return &JWTokenService{
		secretKey: []byte(cfg.JWTSecretKey),
		issuer:    cfg.JWTIssuer,
		ttl:       cfg.TokenTTL,
	}, nil
}

// IssueToken produces a signed token carrying the subject's identity claims.
func (s *JWTokenService) IssueToken(ctx context.Context, subjectID, email, role string) (string, error) {
	now := time.Now()
	claims := &repository.Claims{
		SubjectID: subjectID,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   subjectID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// VerifyToken checks signature and expiry and returns the claims. Every
// failure class returns ErrTokenInvalid.
func (s *JWTokenService) VerifyToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	if tokenString == "" {
		return nil, ErrTokenInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &repository.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*repository.Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Ensure JWTokenService implements the TokenService contract.
var _ repository.TokenService = (*JWTokenService)(nil)
