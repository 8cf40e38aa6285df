// Package httpone implements a one-shot HTTP/1.1 request/response
// exchange directly on top of a TCP byte stream, without net/http.
// Every accepted connection carries exactly one request and one
// response; the server closes the connection after writing.
//
// Highlights
//   - Decoder: single-buffer request parsing (method, path, verbatim
//     headers, body) with an explicit error on a malformed request
//     line instead of silently undefined fields.
//   - Mux: immutable-after-registration (method, path) route table
//     with exact path matching and a default 404 response.
//   - Encoder: fixed status line / Content-Type / Content-Length wire
//     format with a deliberately coarse reason phrase (200 is "OK",
//     everything else is "Error").
//   - Session: an explicit per-connection state machine, one
//     goroutine per connection, logging/metrics hooks.
//   - Client: a minimal one-shot counterpart for tests and tools.
//
// Quick start (server):
//
//	mux := httpone.NewMux()
//	mux.HandleFunc("GET", "/", func(r *httpone.Request) httpone.Response {
//	    return httpone.Text(200, "Welcome to the home page!")
//	})
//	s := &httpone.Server{Addr: ":3000", Mux: mux}
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
//
// Quick start (client):
//
//	c := &httpone.Client{}
//	res, err := c.Get("127.0.0.1:3000", "/")
//	if err != nil { log.Fatal(err) }
//	fmt.Println(res.StatusCode, res.Body)
//
// Out of scope: keep-alive, chunked transfer, pipelining, TLS, and
// any header semantics beyond verbatim key/value capture.
package httpone
