package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações do administrador presentes no token
type Claims struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}
