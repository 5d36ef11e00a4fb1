package services

import "errors"

// Expected outcomes of account and message operations. The messages are
// returned to clients verbatim.
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrDuplicateUsername  = errors.New("Username already exists in the database")
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrRejected           = errors.New("Message rejected")
)
