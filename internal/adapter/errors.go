package adapter

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("account service unavailable")
	ErrUpstreamTimeout     = errors.New("account service timed out")
	ErrInvalidAddress      = errors.New("invalid account service address")
)
