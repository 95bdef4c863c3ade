package domain

import "errors"

var (
	ErrSessionRejected  = errors.New("session rejected by backend")
	ErrForbidden        = errors.New("access forbidden")
	ErrValidation       = errors.New("request rejected by backend")
	ErrBackend          = errors.New("backend failure")
	ErrTransport        = errors.New("transport failure")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrInvalidSession   = errors.New("invalid persisted session")
	ErrSecretNotFound   = errors.New("secret not found")
	ErrSessionNotFound  = errors.New("session not found")
)
