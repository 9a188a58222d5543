package client

import "errors"

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrNotFound        = errors.New("profile not found")
	ErrAlreadyExists   = errors.New("profile already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)
