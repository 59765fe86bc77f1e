// Package apperrors содержит типизированные ошибки доменного ядра.
// Каждая ошибка несет стабильный Kind для маппинга на транспортный уровень
// и человекочитаемое сообщение без внутренних деталей.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind - стабильная категория ошибки
type Kind string

const (
	KindValidation         Kind = "validation_error"
	KindOutOfRange         Kind = "out_of_range"
	KindPermissionDenied   Kind = "permission_denied"
	KindNotFound           Kind = "not_found"
	KindConflict           Kind = "conflict"
	KindInvalidCoordinate  Kind = "invalid_coordinate"
	KindInvalidRadius      Kind = "invalid_radius"
	KindUnauthenticated    Kind = "unauthenticated"
	KindStorageUnavailable Kind = "storage_unavailable"
)

// Error - ошибка ядра с категорией и необязательной причиной
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New создает ошибку заданной категории
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf создает ошибку с форматированным сообщением
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap оборачивает причину, сохраняя категорию для транспортного уровня
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf возвращает категорию ошибки или пустую строку,
// если в цепочке нет типизированной ошибки
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind сообщает, принадлежит ли ошибка заданной категории
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
