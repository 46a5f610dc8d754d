package authclient

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWTVerifier_Valid(t *testing.T) {
	v := NewJWTVerifier("top-secret")
	tok := signToken(t, "top-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "a@example.com",
		Role:  "authenticated",
	})

	id, err := v.VerifyToken(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", id.ID)
	assert.Equal(t, "a@example.com", id.Email)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	v := NewJWTVerifier("top-secret")
	ctx := context.Background()

	t.Run("wrong secret", func(t *testing.T) {
		tok := signToken(t, "other", Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject: "u1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}})
		_, err := v.VerifyToken(ctx, tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		tok := signToken(t, "top-secret", Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject: "u1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}})
		_, err := v.VerifyToken(ctx, tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no expiry", func(t *testing.T) {
		tok := signToken(t, "top-secret", Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}})
		_, err := v.VerifyToken(ctx, tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no subject", func(t *testing.T) {
		tok := signToken(t, "top-secret", Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}})
		_, err := v.VerifyToken(ctx, tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.VerifyToken(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
