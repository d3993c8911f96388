package errors

import (
	"errors"
)

var (
	ErrAuthenticationFailed = errors.New("authentication unsuccessful")
	ErrTokenNotFound        = errors.New("refresh token not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrNotFound             = errors.New("resource not found")
	ErrConflict             = errors.New("resource conflict or duplicate")
)
