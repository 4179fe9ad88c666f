package domain

import (
	"errors"
	"fmt"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrTeamExists - команда с таким именем уже существует
	ErrTeamExists = &DomainError{
		Code:    "TEAM_EXISTS",
		Message: "team name already exists",
	}

	// ErrNoResult - ожидался ровно один результат, найдено ноль
	ErrNoResult = &DomainError{
		Code:    "NO_RESULT",
		Message: "no row matched the query",
	}

	// ErrAmbiguousResult - ожидался ровно один результат, найдено больше
	ErrAmbiguousResult = &DomainError{
		Code:    "AMBIGUOUS_RESULT",
		Message: "more than one row matched the query",
	}

	// ErrStoreUnavailable - хранилище недоступно
	ErrStoreUnavailable = &DomainError{
		Code:    "STORE_UNAVAILABLE",
		Message: "store is unavailable",
	}

	// ErrInvalidArgument - некорректный параметр запроса
	ErrInvalidArgument = &DomainError{
		Code:    "BAD_REQUEST",
		Message: "invalid argument",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInvalidArgumentError создает ошибку BAD_REQUEST с описанием параметра
func NewInvalidArgumentError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    "BAD_REQUEST",
		Message: fmt.Sprintf(format, args...),
	}
}

// StoreError оборачивает ошибку соединения с БД. Совпадает с
// ErrStoreUnavailable через errors.Is и сохраняет исходную причину.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: store unavailable: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// IsStoreUnavailable сообщает, является ли ошибка отказом хранилища.
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
