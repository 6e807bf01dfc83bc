package services

import "errors"

// ErrorKind classifies a failure so controllers can pick the HTTP status
// and callers know whether a retry can help.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindConflict
	KindAuthorization
	KindNotFound
	KindStorage
)

// AppError wraps a domain failure with its kind.
type AppError struct {
	Kind ErrorKind
	Err  error
}

func (e *AppError) Error() string { return e.Err.Error() }
func (e *AppError) Unwrap() error { return e.Err }

func validationErr(msg string) *AppError {
	return &AppError{Kind: KindValidation, Err: errors.New(msg)}
}

func conflictErr(msg string) *AppError {
	return &AppError{Kind: KindConflict, Err: errors.New(msg)}
}

func authorizationErr(msg string) *AppError {
	return &AppError{Kind: KindAuthorization, Err: errors.New(msg)}
}

func notFoundErr(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Err: errors.New(msg)}
}

func storageErr(err error) *AppError {
	return &AppError{Kind: KindStorage, Err: err}
}

// KindOf returns the classification of err, or 0 for unclassified errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}
