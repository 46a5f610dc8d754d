package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Ошибки сервисного слоя; хендлеры переводят их в HTTP-коды.
var (
	ErrBadRequest  = errors.New("bad request")
	ErrInvalidRole = errors.New("invalid role")
	ErrInvalidView = errors.New("invalid tab")
	ErrInvalidKind = errors.New("type must be file or folder")
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("not authorized to manage shares of this file")
	ErrConflict    = errors.New("file already shared with this user")
)

// inputError - ошибка входных данных с текстом для клиента.
type inputError struct{ msg string }

func (e inputError) Error() string { return e.msg }
func (e inputError) Unwrap() error { return ErrBadRequest }

func badRequest(msg string) error {
	return inputError{msg: msg}
}

// notFound переводит gorm.ErrRecordNotFound в ErrNotFound с указанием сущности.
func notFound(what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return err
}
