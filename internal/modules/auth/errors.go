package auth

import "errors"

var (
	ErrNoToken = errors.New("login response carried no token")
)
