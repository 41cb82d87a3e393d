package repository

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity claims embedded in every issued token.
type Claims struct {
	SubjectID string `json:"subjectId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// HasRole reports whether the claims carry the given role.
func (c *Claims) HasRole(role string) bool {
	return c.Role == role
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	IssueToken(ctx context.Context, subjectID, email, role string) (string, error)
	VerifyToken(ctx context.Context, tokenString string) (*Claims, error)
}
