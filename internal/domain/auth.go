package domain

import "github.com/golang-jwt/jwt/v5"

// RoleAdmin é o único papel emitido pelo login administrativo
const RoleAdmin = 1

const AdminUserName = "admin"

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

type Claims struct {
	UserName   string
	UserRoleID int
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.UserRoleID == RoleAdmin
}
