package gameclient

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrNetwork         = errors.New("network_failure")
	ErrSessionNotFound = errors.New("session_not_found")
)
