package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrSessionCorrupt = errors.New("persisted session does not match directory")
var ErrNoSession = errors.New("no persisted session")
var ErrForbidden = errors.New("access forbidden")
