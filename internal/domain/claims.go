package domain

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
