package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error classes surfaced by the store.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// DomainError standardizes application errors. Message is the user-facing
// `error` field of the wire body; Detalle carries whatever detail the store
// provided.
type DomainError struct {
	Code       string
	Message    string
	Detalle    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest)
}

func NewNotFound(message string) error {
	return NewDomainError("NOT_FOUND", message, http.StatusNotFound)
}

func NewInternalError(message string, err error) error {
	detalle := ""
	if err != nil {
		detalle = err.Error()
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    message,
		Detalle:    detalle,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// MapStoreError converts a store failure into the wire taxonomy: missing rows
// become 404, integrity violations keep their store detail on a 500 body, and
// everything else is a generic 500. `message` is the operation-level text for
// the `error` field.
func MapStoreError(message string, notFoundMessage string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewNotFound(notFoundMessage)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &DomainError{
				Code:       "CONSTRAINT_VIOLATION",
				Message:    message,
				Detalle:    pgErr.Message,
				HTTPStatus: http.StatusInternalServerError,
				Err:        err,
			}
		case pgForeignKeyViolation:
			return &DomainError{
				Code:       "FOREIGN_KEY_VIOLATION",
				Message:    message,
				Detalle:    pgErr.Message,
				HTTPStatus: http.StatusInternalServerError,
				Err:        err,
			}
		case pgNotNullViolation:
			return &DomainError{
				Code:       "VALIDATION_FAILED",
				Message:    message,
				Detalle:    pgErr.Message,
				HTTPStatus: http.StatusInternalServerError,
				Err:        err,
			}
		}
	}
	return NewInternalError(message, err)
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("recurso no encontrado").(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "error interno del servidor",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
