// Package authclient - клиент внешнего провайдера аутентификации (GoTrue / Supabase Auth).
// Провайдер владеет учётными записями и паролями; сервис только проксирует вызовы
// и проверяет bearer-токены.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"SkyVault/internal/model"
)

// ErrInvalidToken - провайдер отверг токен (просрочен, подпись неверна, пользователь не найден).
var ErrInvalidToken = errors.New("invalid or expired token")

// APIError - ответ провайдера с кодом не 2xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("auth provider: %s (status %d)", e.Message, e.Status)
}

// User - пользователь провайдера.
type User struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	Role             string         `json:"role,omitempty"`
	EmailConfirmedAt *time.Time     `json:"email_confirmed_at,omitempty"`
	CreatedAt        *time.Time     `json:"created_at,omitempty"`
	UserMetadata     map[string]any `json:"user_metadata,omitempty"`
}

// Session - результат входа по паролю.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

// Client ходит в REST API провайдера.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient создаёт клиент. baseURL - корень проекта (без /auth/v1), apiKey - публичный anon key.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/auth/v1",
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// VerifyToken проверяет access token у провайдера и возвращает личность пользователя.
func (c *Client) VerifyToken(ctx context.Context, token string) (*model.Identity, error) {
	var u User
	err := c.do(ctx, http.MethodGet, "/user", nil, token, nil, &u)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, apiErr.Message)
	}
	if err != nil {
		return nil, err
	}
	if u.ID == "" {
		return nil, ErrInvalidToken
	}
	return &model.Identity{ID: u.ID, Email: u.Email}, nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp регистрирует пользователя. redirectTo - куда ведёт ссылка подтверждения.
func (c *Client) SignUp(ctx context.Context, email, password, redirectTo string) (*User, error) {
	// при включённом подтверждении почты провайдер возвращает пользователя,
	// иначе - сессию с вложенным пользователем
	var resp struct {
		User
		Nested *User `json:"user"`
	}
	q := url.Values{}
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	if err := c.do(ctx, http.MethodPost, "/signup", q, "", credentials{email, password}, &resp); err != nil {
		return nil, err
	}
	if resp.Nested != nil {
		return resp.Nested, nil
	}
	return &resp.User, nil
}

// SignIn выполняет вход по email и паролю.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	q := url.Values{"grant_type": {"password"}}
	if err := c.do(ctx, http.MethodPost, "/token", q, "", credentials{email, password}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SignOut отзывает сессию, которой принадлежит token.
func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, token, nil, nil)
}

// Recover отправляет письмо со ссылкой на сброс пароля.
func (c *Client) Recover(ctx context.Context, email, redirectTo string) error {
	q := url.Values{}
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	return c.do(ctx, http.MethodPost, "/recover", q, "", map[string]string{"email": email}, nil)
}

// UpdatePassword меняет пароль владельца token.
func (c *Client) UpdatePassword(ctx context.Context, token, password string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPut, "/user", nil, token, map[string]string{"password": password}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token == "" {
		token = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth provider request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("auth provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(raw, resp.Status)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("auth provider response: %w", err)
	}
	return nil
}

// errorMessage достаёт текст ошибки из тела ответа; разные версии GoTrue
// кладут его в разные поля.
func errorMessage(raw []byte, fallback string) string {
	var e struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	if json.Unmarshal(raw, &e) == nil {
		for _, m := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
			if m != "" {
				return m
			}
		}
	}
	return fallback
}
