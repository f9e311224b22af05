package users

import "errors"

// ErrNotFound indicates no user exists for the given email.
var ErrNotFound = errors.New("user not found")
