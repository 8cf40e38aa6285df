package wire

import (
	"errors"
	"strings"
)

// ErrMalformedRequestLine is returned when the first line of a message
// does not carry both a method and a path token.
var ErrMalformedRequestLine = errors.New("wire: malformed request line")

// Request is the decoded form of one inbound message. Header keys are
// kept exactly as received; no canonicalization is applied.
type Request struct {
	Method string
	Path   string
	Header map[string]string
	Body   string
}

// ParseRequest decodes one complete message from raw. The buffer is
// split on the first blank line; when no blank line is present the
// whole buffer is treated as the head and the body is empty. A third
// request-line token (the protocol version) is discarded. Header lines
// without a ": " separator are skipped. Later duplicates of a header
// key overwrite earlier ones.
func ParseRequest(raw []byte) (*Request, error) {
	head, body, _ := strings.Cut(string(raw), "\r\n\r\n")
	lines := strings.Split(head, "\r\n")

	parts := strings.SplitN(lines[0], " ", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, ErrMalformedRequestLine
	}

	hdr := make(map[string]string, len(lines)-1)
	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		hdr[name] = value
	}
	return &Request{
		Method: parts[0],
		Path:   parts[1],
		Header: hdr,
		Body:   body,
	}, nil
}

// FormatRequest is the inverse of ParseRequest for well-formed input:
// it reassembles a request line, header lines and body into wire bytes.
func FormatRequest(method, path string, header map[string]string, body string) []byte {
	var b strings.Builder
	b.WriteString(method)
	b.WriteByte(' ')
	b.WriteString(path)
	b.WriteString(" HTTP/1.1\r\n")
	for k, v := range header {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
