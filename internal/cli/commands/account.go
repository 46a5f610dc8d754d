package commands

import (
	"SkyVault/internal/cli/api"
	"SkyVault/internal/cli/auth"
	"SkyVault/internal/config"
	"context"
	"fmt"
	"net/http"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupCmd struct{}

func (signupCmd) Name() string        { return "signup" }
func (signupCmd) Description() string { return "Create an account (confirmation email is sent)" }
func (signupCmd) Usage() string       { return "signup <email> <password>" }

func (signupCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	var resp messageResponse
	if err := anonClient(cfg).Do(ctx, http.MethodPost, "/api/auth/signup", nil, credentials{args[0], args[1]}, &resp); err != nil {
		return err
	}
	fmt.Fprintln(Out, resp.Message)
	return nil
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store access token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	var resp struct {
		Session struct {
			AccessToken string `json:"access_token"`
		} `json:"session"`
	}
	if err := anonClient(cfg).Do(ctx, http.MethodPost, "/api/auth/login", nil, credentials{args[0], args[1]}, &resp); err != nil {
		return err
	}
	if resp.Session.AccessToken == "" {
		return fmt.Errorf("no access token in response")
	}
	if err := auth.SaveToken(resp.Session.AccessToken); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Revoke the session and forget the token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	tok, _ := auth.LoadToken()
	if err := api.NewClient(cfg.ServerURL, tok).Do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil); err != nil {
		return err
	}
	if err := auth.ClearToken(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

type forgotPasswordCmd struct{}

func (forgotPasswordCmd) Name() string        { return "forgot-password" }
func (forgotPasswordCmd) Description() string { return "Send a password reset email" }
func (forgotPasswordCmd) Usage() string       { return "forgot-password <email>" }

func (forgotPasswordCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	var resp messageResponse
	if err := anonClient(cfg).Do(ctx, http.MethodPost, "/api/auth/forgot-password", nil, map[string]string{"email": args[0]}, &resp); err != nil {
		return err
	}
	fmt.Fprintln(Out, resp.Message)
	return nil
}

type resetPasswordCmd struct{}

func (resetPasswordCmd) Name() string        { return "reset-password" }
func (resetPasswordCmd) Description() string { return "Set a new password for the current session" }
func (resetPasswordCmd) Usage() string       { return "reset-password <new-password>" }

func (resetPasswordCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := authedClient(cfg)
	if err != nil {
		return err
	}
	var resp messageResponse
	if err := c.Do(ctx, http.MethodPost, "/api/auth/reset-password", nil, map[string]string{"newPassword": args[0]}, &resp); err != nil {
		return err
	}
	fmt.Fprintln(Out, resp.Message)
	return nil
}

func init() {
	RegisterCmd(GroupAccount, signupCmd{})
	RegisterCmd(GroupAccount, loginCmd{})
	RegisterCmd(GroupAccount, logoutCmd{})
	RegisterCmd(GroupAccount, forgotPasswordCmd{})
	RegisterCmd(GroupAccount, resetPasswordCmd{})
}
