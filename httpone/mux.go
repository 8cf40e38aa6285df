package httpone

import "strings"

// Handler computes a Response for a decoded Request. Handlers are
// expected to be pure and non-blocking.
type Handler interface {
	Serve(*Request) Response
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(*Request) Response

func (f HandlerFunc) Serve(r *Request) Response {
	return f(r)
}

type routeKey struct {
	method string
	path   string
}

// Mux maps (method, path) pairs to handlers. Registration happens
// during startup; after that the table is read-only, so dispatch
// needs no lock. Matching is exact: the method is compared
// case-insensitively (upper-cased on both sides), the path
// byte-for-byte. No wildcard, prefix, or parameter patterns.
type Mux struct {
	routes map[routeKey]Handler
}

// NewMux returns an empty route table.
func NewMux() *Mux {
	return &Mux{routes: make(map[routeKey]Handler)}
}

// Handle stores h under the upper-cased method and the exact path.
// Registering the same (method, path) pair again silently replaces
// the earlier handler.
func (m *Mux) Handle(method, path string, h Handler) {
	m.routes[routeKey{strings.ToUpper(method), path}] = h
}

// HandleFunc registers a plain function as the handler for
// (method, path).
func (m *Mux) HandleFunc(method, path string, h func(*Request) Response) {
	m.Handle(method, path, HandlerFunc(h))
}

// Lookup returns the handler for (method, path), or false when no
// route matches.
func (m *Mux) Lookup(method, path string) (Handler, bool) {
	h, ok := m.routes[routeKey{strings.ToUpper(method), path}]
	return h, ok
}

// Dispatch routes r to its handler and returns the handler's
// response, or the default 404 response when no route matches.
func (m *Mux) Dispatch(r *Request) Response {
	h, ok := m.Lookup(r.Method, r.Path)
	if !ok {
		return NotFound()
	}
	return h.Serve(r)
}
