package domain

import "errors"

var ErrInvalidInput = errors.New("invalid input")
var ErrUnauthorized = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrCatNotFound = errors.New("cat not found")
