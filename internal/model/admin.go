package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type Admin struct {
	ID    string
	Name  string
	Email string
}

type Credentials struct {
	Email    string
	Password string
}

type Registration struct {
	Name     string
	Email    string
	Password string
}

// AdminClaims - содержимое токена доступа администратора.
// BackendToken пробрасывается во все запросы к бэкенду.
type AdminClaims struct {
	jwt.RegisteredClaims
	Name         string `json:"name"`
	Email        string `json:"email"`
	BackendToken string `json:"bt"`
}

type AuthData struct {
	AccessToken string
	Admin       Admin
}
