package handlers

import (
	"SkyVault/internal/authclient"
	"SkyVault/internal/middleware"
	"SkyVault/internal/service"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// AuthHandler проксирует операции учётных записей во внешний провайдер.
type AuthHandler struct {
	AuthService *service.AuthService
	Logger      *zap.SugaredLogger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{AuthService: authService, Logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required"`
}

// authFail: ответ провайдера с ошибкой - 400 с его текстом, прочее - 500.
func (h *AuthHandler) authFail(w http.ResponseWriter, op string, err error) {
	var apiErr *authclient.APIError
	if errors.As(err, &apiErr) {
		h.Logger.Warnw(op+": provider rejected request", "status", apiErr.Status, "error", apiErr.Message)
		writeError(w, http.StatusBadRequest, apiErr.Message)
		return
	}
	fail(w, h.Logger, op, err)
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !bind(w, r, h.Logger, &req, "valid email and password required") {
		return
	}
	u, err := h.AuthService.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		h.authFail(w, "SignUp", err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Message string           `json:"message"`
		User    *authclient.User `json:"user"`
	}{"Signup successful! Check your email for confirmation.", u})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !bind(w, r, h.Logger, &req, "valid email and password required") {
		return
	}
	s, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.authFail(w, "Login", err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Message string              `json:"message"`
		Session *authclient.Session `json:"session"`
		User    *authclient.User    `json:"user"`
	}{"Login successful", s, s.User})
}

// Logout не требует гейта: токен берётся из заголовка, если он есть.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context(), middleware.BearerToken(r)); err != nil {
		h.authFail(w, "Logout", err)
		return
	}
	writeJSON(w, http.StatusOK, message{Message: "Logout successful"})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if !bind(w, r, h.Logger, &req, "Email required") {
		return
	}
	if err := h.AuthService.ForgotPassword(r.Context(), req.Email); err != nil {
		h.authFail(w, "ForgotPassword", err)
		return
	}
	writeJSON(w, http.StatusOK, message{Message: "Password reset email sent"})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetTokenFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req resetPasswordRequest
	if !bind(w, r, h.Logger, &req, "New password required") {
		return
	}
	u, err := h.AuthService.ResetPassword(r.Context(), token, req.NewPassword)
	if err != nil {
		h.authFail(w, "ResetPassword", err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Message string           `json:"message"`
		User    *authclient.User `json:"user"`
	}{"Password reset successfully", u})
}
