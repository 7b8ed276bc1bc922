package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims encodes the JWT claims embedded in Sigment access tokens.
//
// This is a DTO matching the server's token contract. Identity travels in
// the token rather than in the deprecated X-User-Id header.
type Claims struct {
	UserID         string `json:"uid"`
	OrganizationID string `json:"org,omitempty"`
	Role           string `json:"role,omitempty"`

	jwt.RegisteredClaims
}

// Roles a member can hold within an organization.
const (
	RoleOwner  = "OWNER"
	RoleBoard  = "BOARD"
	RoleMember = "MEMBER"
)

// ParseClaims decodes the claims from a bearer token without verifying the
// signature. Verification is the server's job; clients parse only to drive
// role gating and display.
func ParseClaims(token string) (Claims, error) {
	if token == "" {
		return Claims{}, errors.New("auth: empty token")
	}
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
