package session

import "errors"

var (
	ErrEmptyToken = errors.New("empty session token")
	ErrTokenStore = errors.New("token store error")
)
