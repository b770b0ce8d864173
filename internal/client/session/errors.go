package session

import "errors"

var (
	ErrEmptyToken = errors.New("empty token")
)
