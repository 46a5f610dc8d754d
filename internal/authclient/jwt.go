package authclient

import (
	"context"
	"fmt"

	"SkyVault/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims - утверждения access token, которые выпускает провайдер.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// JWTVerifier проверяет токены провайдера локально по общему секрету (HS256),
// не обращаясь к API на каждый запрос.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// VerifyToken разбирает и проверяет подпись и срок действия токена.
func (v *JWTVerifier) VerifyToken(_ context.Context, token string) (*model.Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &model.Identity{ID: claims.Subject, Email: claims.Email}, nil
}
