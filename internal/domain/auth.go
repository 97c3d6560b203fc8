package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis aceitos nos tokens de acesso à API
const (
	RoleAdmin  = 1
	RoleViewer = 2
)

// Claims representa as claims do token JWT de acesso à API de relatórios
type Claims struct {
	Name   string `json:"name"`
	RoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}
