package handlers

import (
	"SkyVault/internal/middleware"
	"SkyVault/internal/model"
	"SkyVault/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

type message struct {
	Message string `json:"message"`
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorBody{Error: msg})
}

// identity достаёт личность из контекста; без неё отвечает 401.
func identity(w http.ResponseWriter, r *http.Request) (model.Identity, bool) {
	who, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return who, ok
}

// bind декодирует JSON-тело в dst и проверяет теги validate.
// При ошибке валидации отвечает 400 с текстом invalidMsg.
func bind(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, dst any, invalidMsg string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Warnw("invalid request body", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		logger.Warnw("request validation failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, invalidMsg)
		return false
	}
	return true
}

// statusOf переводит ошибку сервиса в HTTP-код.
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrBadRequest),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidView),
		errors.Is(err, service.ErrInvalidKind):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// fail отвечает ошибкой сервиса; 5xx пишется в лог, текст наружу не отдаётся.
func fail(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error, kv ...any) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		logger.Errorw(op+": service error", append(kv, "error", err)...)
		writeError(w, code, "internal server error")
		return
	}
	logger.Warnw(op+": rejected", append(kv, "status", code, "error", err)...)
	writeError(w, code, err.Error())
}
