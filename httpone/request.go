package httpone

import (
	"dqx0.com/go/oneshot/httpone/internal/wire"
)

// Header holds request headers with keys exactly as received on the
// wire. No case normalization is applied; lookups are byte-for-byte.
type Header map[string]string

// Get returns the value stored under key, or "" if absent.
func (h Header) Get(key string) string {
	if h == nil {
		return ""
	}
	return h[key]
}

// Set stores value under key, replacing any existing value.
func (h Header) Set(key, value string) {
	if h == nil {
		return
	}
	h[key] = value
}

// Request represents one decoded inbound message. It is built once
// per connection and not mutated afterward.
type Request struct {
	Method string
	Path   string
	Header Header
	Body   string
	// ConnID identifies the connection the request arrived on. The
	// server fills it in before dispatch; it appears in log lines.
	ConnID string
}

// ParseRequest decodes the raw bytes of one transport read into a
// Request. The buffer is assumed to contain the complete message:
// request line, header lines, blank line, optional body. A missing
// blank line means an empty body, not an error. The path is kept as
// the exact byte sequence from the request line (no percent-decoding)
// and the method keeps its case. A request line without both a method
// and a path token yields ErrMalformedRequest.
func ParseRequest(raw []byte) (*Request, error) {
	wr, err := wire.ParseRequest(raw)
	if err != nil {
		return nil, ErrMalformedRequest
	}
	return &Request{
		Method: wr.Method,
		Path:   wr.Path,
		Header: Header(wr.Header),
		Body:   wr.Body,
	}, nil
}
