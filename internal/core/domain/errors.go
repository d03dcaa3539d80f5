package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSelfDeletion       = errors.New("users cannot delete their own account")
	ErrInvalidRole        = errors.New("invalid role")
)
