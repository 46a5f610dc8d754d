package service

import (
	"SkyVault/internal/authclient"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Redirects(t *testing.T) {
	ctx := context.Background()
	p := new(mockProvider)
	svc := NewAuthService(p, "https://app.example.com/")

	p.On("SignUp", mock.Anything, "a@b.c", "pw", "https://app.example.com/login").
		Return(&authclient.User{ID: "u1", Email: "a@b.c"}, nil).Once()
	u, err := svc.SignUp(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	p.On("Recover", mock.Anything, "a@b.c", "https://app.example.com/reset-password").Return(nil).Once()
	assert.NoError(t, svc.ForgotPassword(ctx, "a@b.c"))

	p.AssertExpectations(t)
}

func TestAuthService_NoFrontend(t *testing.T) {
	p := new(mockProvider)
	svc := NewAuthService(p, "")
	p.On("SignUp", mock.Anything, "a@b.c", "pw", "").Return(&authclient.User{ID: "u1"}, nil).Once()
	_, err := svc.SignUp(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
}

func TestAuthService_LoginLogout(t *testing.T) {
	ctx := context.Background()
	p := new(mockProvider)
	svc := NewAuthService(p, "")

	p.On("SignIn", mock.Anything, "a@b.c", "pw").Return(&authclient.Session{AccessToken: "tok"}, nil).Once()
	s, err := svc.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", s.AccessToken)

	assert.NoError(t, svc.Logout(ctx, ""))
	p.AssertNotCalled(t, "SignOut", mock.Anything, mock.Anything)

	p.On("SignOut", mock.Anything, "tok").Return(nil).Once()
	assert.NoError(t, svc.Logout(ctx, "tok"))
	p.AssertExpectations(t)
}

func TestAuthService_Validation(t *testing.T) {
	ctx := context.Background()
	p := new(mockProvider)
	svc := NewAuthService(p, "")

	assert.ErrorIs(t, svc.ForgotPassword(ctx, ""), ErrBadRequest)
	_, err := svc.ResetPassword(ctx, "tok", "")
	assert.ErrorIs(t, err, ErrBadRequest)

	p.On("UpdatePassword", mock.Anything, "tok", "new").Return(&authclient.User{ID: "u1"}, nil).Once()
	u, err := svc.ResetPassword(ctx, "tok", "new")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}
