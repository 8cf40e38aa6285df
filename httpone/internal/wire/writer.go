package wire

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedStatusLine is returned when the first line of a response
// does not carry a protocol token and a numeric status code.
var ErrMalformedStatusLine = errors.New("wire: malformed status line")

// Reason maps a status code to its reason phrase. The mapping is
// deliberately coarse: 200 is "OK" and every other code is "Error".
// This matches the observable behavior of the system being reproduced;
// 201 renders "Error", not "Created".
func Reason(status int) string {
	if status == 200 {
		return "OK"
	}
	return "Error"
}

// WriteResponse serializes one response. Content-Length is the UTF-8
// byte length of body. No Connection header is written; the caller
// closes the transport after the write.
func WriteResponse(w io.Writer, status int, contentType, body string) error {
	if _, err := fmt.Fprintf(w, "HTTP/1.1 %d %s\r\n", status, Reason(status)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Content-Type: %s\r\n", contentType); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		return err
	}
	_, err := io.WriteString(w, body)
	return err
}

// Response is the decoded form of one outbound message, used by the
// client side of a one-shot exchange.
type Response struct {
	StatusCode int
	Reason     string
	Header     map[string]string
	Body       string
}

// ParseResponse decodes one complete response from raw. Head and body
// are split the same way ParseRequest splits a request.
func ParseResponse(raw []byte) (*Response, error) {
	head, body, _ := strings.Cut(string(raw), "\r\n\r\n")
	lines := strings.Split(head, "\r\n")

	parts := strings.SplitN(lines[0], " ", 3)
	if len(parts) < 2 || !strings.HasPrefix(parts[0], "HTTP/") {
		return nil, ErrMalformedStatusLine
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, ErrMalformedStatusLine
	}
	reason := ""
	if len(parts) == 3 {
		reason = parts[2]
	}

	hdr := make(map[string]string, len(lines)-1)
	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		hdr[name] = value
	}
	return &Response{
		StatusCode: code,
		Reason:     reason,
		Header:     hdr,
		Body:       body,
	}, nil
}
