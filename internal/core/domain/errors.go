package domain

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email is already in use")
	ErrTokenInvalid       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access forbidden")
	ErrVendorNotFound     = errors.New("vendor not found or invalid role")
	ErrProductNotFound    = errors.New("product not found")
)
