package apperrors

import (
	"net/http"
)

// Factories for the domain error taxonomy: NotFound, Conflict, Validation,
// Forbidden, ContentTooLarge. Repositories return sentinel errors; services
// wrap them with these before they reach the HTTP layer.

// ErrNotFound converts a repository not-found sentinel into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists is for duplicate natural keys (409).
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrConflict is for non-uniqueness business conflicts (409).
func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// ErrContentTooLarge answers 413; used for review content over the ceiling.
func ErrContentTooLarge(domain, message string) *AppError {
	return New(CodeContentTooLarge, domain, message, http.StatusRequestEntityTooLarge)
}

// ErrInvalidOperation is a logical 400 that is not a field-format failure.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrNotOwner: the actor is not the record's author/owner.
func ErrNotOwner(domain, message string) *AppError {
	return New(CodeForbidden, domain, message, http.StatusForbidden)
}

// ErrInvalidCredentials covers failed logins (401).
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)
