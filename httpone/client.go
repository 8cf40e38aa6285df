package httpone

import (
	"io"
	"net"
	"time"

	"dqx0.com/go/oneshot/httpone/internal/wire"
)

// Client performs one-shot exchanges against a httpone server: dial,
// write one request, read until the server closes, decode one
// response. There is no connection pooling because every response
// terminates its connection.
type Client struct {
	DialTimeout time.Duration
}

// Do sends req to the TCP address addr and returns the decoded
// response. The returned ContentType is the response's verbatim
// Content-Type header value.
func (c *Client) Do(addr string, req *Request) (*Response, error) {
	d := net.Dialer{Timeout: c.DialTimeout}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	raw := wire.FormatRequest(req.Method, req.Path, map[string]string(req.Header), req.Body)
	if _, err := conn.Write(raw); err != nil {
		return nil, err
	}
	// The server closes after one response; read to EOF.
	data, err := io.ReadAll(conn)
	if err != nil {
		return nil, err
	}
	wr, err := wire.ParseResponse(data)
	if err != nil {
		return nil, ErrMalformedResponse
	}
	return &Response{
		StatusCode:  wr.StatusCode,
		ContentType: wr.Header["Content-Type"],
		Body:        wr.Body,
	}, nil
}

// Get performs a GET for path against addr with a Host header.
func (c *Client) Get(addr, path string) (*Response, error) {
	return c.Do(addr, &Request{
		Method: "GET",
		Path:   path,
		Header: Header{"Host": addr},
	})
}
