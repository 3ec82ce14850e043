package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são os dados carregados no token JWT do operador
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
