package domain

import "errors"

// ErrNotFound marks a lookup/update/delete that matched no row. Handlers
// translate it to 404; anything else from the repositories is treated as
// an infrastructure failure.
var ErrNotFound = errors.New("not found")

// ErrAuthFailed covers every authentication failure without detail, so a
// caller can never tell a wrong email from a wrong password.
var ErrAuthFailed = errors.New("not authorized")
