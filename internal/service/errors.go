package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoAdapterProvided     = errors.New("no account adapter provided")
)
