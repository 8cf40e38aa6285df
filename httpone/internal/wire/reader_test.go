package wire

import (
	"reflect"
	"testing"
)

func TestParseRequest_HeadersAndBody(t *testing.T) {
	raw := "POST /submit HTTP/1.1\r\nHost: example.com\r\nContent-Type: application/x-www-form-urlencoded\r\n\r\nname=a&email=b"
	r, err := ParseRequest([]byte(raw))
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if r.Method != "POST" || r.Path != "/submit" {
		t.Fatalf("request line = %q %q", r.Method, r.Path)
	}
	if got := r.Header["Host"]; got != "example.com" {
		t.Fatalf("Host = %q", got)
	}
	if got := r.Header["Content-Type"]; got != "application/x-www-form-urlencoded" {
		t.Fatalf("Content-Type = %q", got)
	}
	if r.Body != "name=a&email=b" {
		t.Fatalf("body = %q", r.Body)
	}
}

func TestParseRequest_NoBlankLine(t *testing.T) {
	// Missing delimiter is a defined fallback: whole buffer is the
	// head, body is empty.
	r, err := ParseRequest([]byte("GET /x HTTP/1.1\r\nHost: a\r\n"))
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if r.Body != "" {
		t.Fatalf("body = %q, want empty", r.Body)
	}
	if got := r.Header["Host"]; got != "a" {
		t.Fatalf("Host = %q", got)
	}
}

func TestParseRequest_VersionTokenOptional(t *testing.T) {
	r, err := ParseRequest([]byte("GET /\r\n\r\n"))
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if r.Method != "GET" || r.Path != "/" {
		t.Fatalf("request line = %q %q", r.Method, r.Path)
	}
}

func TestParseRequest_MalformedRequestLine(t *testing.T) {
	for _, raw := range []string{"", "GET", "GET\r\n\r\n", " /\r\n\r\n"} {
		if _, err := ParseRequest([]byte(raw)); err != ErrMalformedRequestLine {
			t.Fatalf("ParseRequest(%q) err = %v, want ErrMalformedRequestLine", raw, err)
		}
	}
}

func TestParseRequest_HeaderWithoutSeparatorSkipped(t *testing.T) {
	// Lines without ": " (including a bare colon) do not produce
	// header entries.
	raw := "GET / HTTP/1.1\r\nweird line\r\nName:NoSpace\r\nHost: x\r\n\r\n"
	r, err := ParseRequest([]byte(raw))
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if len(r.Header) != 1 || r.Header["Host"] != "x" {
		t.Fatalf("headers = %v, want only Host", r.Header)
	}
}

func TestParseRequest_KeysVerbatim(t *testing.T) {
	r, err := ParseRequest([]byte("GET / HTTP/1.1\r\nhost: x\r\nX-c: 1\r\n\r\n"))
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if _, ok := r.Header["Host"]; ok {
		t.Fatal("header key was canonicalized")
	}
	if r.Header["host"] != "x" || r.Header["X-c"] != "1" {
		t.Fatalf("headers = %v", r.Header)
	}
}

func TestParseRequest_BodyVerbatim(t *testing.T) {
	// Only the first blank line delimits; the body may contain one.
	raw := "PUT /raw HTTP/1.1\r\n\r\nline1\r\n\r\nline2"
	r, err := ParseRequest([]byte(raw))
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if r.Body != "line1\r\n\r\nline2" {
		t.Fatalf("body = %q", r.Body)
	}
}

func TestFormatRequest_RoundTrip(t *testing.T) {
	hdr := map[string]string{"Host": "example.com", "x-token": "abc"}
	raw := FormatRequest("POST", "/a%20b", hdr, "payload")
	r, err := ParseRequest(raw)
	if err != nil {
		t.Fatalf("ParseRequest error: %v", err)
	}
	if r.Method != "POST" || r.Path != "/a%20b" || r.Body != "payload" {
		t.Fatalf("round trip = %+v", r)
	}
	if !reflect.DeepEqual(r.Header, hdr) {
		t.Fatalf("headers = %v, want %v", r.Header, hdr)
	}
}
