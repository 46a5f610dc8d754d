package service

import (
	"context"
	"strings"

	"SkyVault/internal/authclient"
)

// AuthProvider - операции внешнего провайдера учётных записей.
type AuthProvider interface {
	SignUp(ctx context.Context, email, password, redirectTo string) (*authclient.User, error)
	SignIn(ctx context.Context, email, password string) (*authclient.Session, error)
	SignOut(ctx context.Context, token string) error
	Recover(ctx context.Context, email, redirectTo string) error
	UpdatePassword(ctx context.Context, token, password string) (*authclient.User, error)
}

// AuthService проксирует регистрацию, вход и сброс пароля в провайдер.
type AuthService struct {
	provider    AuthProvider
	frontendURL string
}

func NewAuthService(p AuthProvider, frontendURL string) *AuthService {
	return &AuthService{provider: p, frontendURL: strings.TrimRight(frontendURL, "/")}
}

func (s *AuthService) redirect(path string) string {
	if s.frontendURL == "" {
		return ""
	}
	return s.frontendURL + path
}

func (s *AuthService) SignUp(ctx context.Context, email, password string) (*authclient.User, error) {
	return s.provider.SignUp(ctx, email, password, s.redirect("/login"))
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*authclient.Session, error) {
	return s.provider.SignIn(ctx, email, password)
}

// Logout отзывает сессию токена; без токена отзывать нечего.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.provider.SignOut(ctx, token)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return badRequest("Email required")
	}
	return s.provider.Recover(ctx, email, s.redirect("/reset-password"))
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) (*authclient.User, error) {
	if newPassword == "" {
		return nil, badRequest("New password required")
	}
	return s.provider.UpdatePassword(ctx, token, newPassword)
}
