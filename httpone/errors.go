package httpone

import "errors"

var (
	ErrMalformedRequest  = errors.New("httpone: malformed request line")
	ErrMalformedResponse = errors.New("httpone: malformed status line")
	ErrServerClosed      = errors.New("httpone: server closed")
)
