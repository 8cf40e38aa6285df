package httpone

import (
	"bufio"
	"context"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"dqx0.com/go/oneshot/httpone/internal/wire"
	"dqx0.com/go/oneshot/internal/obs"
)

// Server accepts TCP connections and runs one request/response
// exchange per connection. The Mux must be fully registered before
// Serve is called; it is read-only afterward.
type Server struct {
	Addr string // listen address, ":3000" if empty
	Mux  *Mux

	// ReadTimeout and WriteTimeout bound the single read and the
	// response write. Zero means no deadline, which matches the
	// designed behavior: a connection that never sends data is never
	// reaped by protocol logic.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MaxRequestBytes caps the request buffer. Zero means 64 KiB.
	// The entire request is assumed to arrive in a single read.
	MaxRequestBytes int

	Logger obs.Logger
	Meter  obs.Meter

	mu      sync.Mutex
	ln      net.Listener
	closing bool
	active  sync.WaitGroup
}

// ListenAndServe binds s.Addr and serves until the listener fails or
// the server is shut down.
func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = ":3000"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on l, one session goroutine per
// connection. It returns ErrServerClosed after Shutdown.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		l.Close()
		return ErrServerClosed
	}
	s.ln = l
	s.mu.Unlock()
	defer l.Close()
	for {
		c, err := l.Accept()
		if err != nil {
			s.mu.Lock()
			closing := s.closing
			s.mu.Unlock()
			if closing {
				return ErrServerClosed
			}
			s.logf(obs.Error, "accept failed: %v", err)
			return err
		}
		sess := &session{srv: s, conn: c, id: connID()}
		s.active.Add(1)
		go func() {
			defer s.active.Done()
			sess.run()
		}()
	}
}

// Shutdown closes the listener and waits for in-flight sessions to
// finish, or for ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	ln := s.ln
	s.mu.Unlock()
	if ln != nil {
		_ = ln.Close()
	}
	done := make(chan struct{})
	go func() {
		s.active.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) requestLimit() int {
	if s.MaxRequestBytes <= 0 {
		return 64 << 10
	}
	return s.MaxRequestBytes
}

func (s *Server) logf(level obs.Level, format string, args ...interface{}) {
	lg := s.Logger
	if lg == nil {
		lg = obs.NopLogger{}
	}
	lg.Logf(level, format, args...)
}

func (s *Server) meter() obs.Meter {
	if s.Meter != nil {
		return s.Meter
	}
	return obs.NopMeter{}
}

// sessionState tracks one connection through its exchange.
type sessionState uint8

const (
	stateAwaitingData sessionState = iota
	stateDispatching
	stateResponded
	stateErrored
	stateClosed
)

func (st sessionState) String() string {
	switch st {
	case stateAwaitingData:
		return "awaiting-data"
	case stateDispatching:
		return "dispatching"
	case stateResponded:
		return "responded"
	case stateErrored:
		return "errored"
	case stateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// session owns one accepted connection end to end: one read, one
// dispatch, one response, then close. Only the first data arrival is
// processed; whatever the peer sends afterwards is dropped with the
// connection. Sessions share nothing mutable with one another.
type session struct {
	srv   *Server
	conn  net.Conn
	id    string
	state sessionState
}

func (n *session) run() {
	start := time.Now()
	defer n.close()

	buf := make([]byte, n.srv.requestLimit())
	if rt := n.srv.ReadTimeout; rt > 0 {
		_ = n.conn.SetReadDeadline(time.Now().Add(rt))
	}
	nr, err := n.conn.Read(buf)
	if err != nil {
		if err == io.EOF {
			n.srv.logf(obs.Debug, "conn %s: closed before data", n.id)
		} else {
			n.state = stateErrored
			n.srv.logf(obs.Warn, "conn %s: read failed: %v", n.id, err)
		}
		return
	}

	n.state = stateDispatching
	resp := n.dispatch(buf[:nr])

	if wt := n.srv.WriteTimeout; wt > 0 {
		_ = n.conn.SetWriteDeadline(time.Now().Add(wt))
	}
	bw := bufio.NewWriter(n.conn)
	if err := wire.WriteResponse(bw, resp.StatusCode, resp.ContentType, resp.Body); err != nil {
		n.state = stateErrored
		n.srv.logf(obs.Warn, "conn %s: write failed: %v", n.id, err)
		return
	}
	if err := bw.Flush(); err != nil {
		n.state = stateErrored
		n.srv.logf(obs.Warn, "conn %s: flush failed: %v", n.id, err)
		return
	}
	n.state = stateResponded

	n.srv.meter().Counter("httpone_server_requests", 1,
		obs.Label{Key: "code", Value: strconv.Itoa(resp.StatusCode)})
	n.srv.meter().Histogram("httpone_server_session_seconds", time.Since(start).Seconds())
}

// dispatch decodes the buffer and routes the request. Decode failures
// become the 400 default instead of propagating undefined fields.
func (n *session) dispatch(raw []byte) Response {
	req, err := ParseRequest(raw)
	if err != nil {
		n.srv.logf(obs.Info, "conn %s: %v", n.id, err)
		return BadRequest()
	}
	req.ConnID = n.id
	return n.invoke(req)
}

// invoke runs the route table against req. A handler panic is
// converted into the 500 default; it never takes down the accept
// loop or other sessions.
func (n *session) invoke(req *Request) (resp Response) {
	defer func() {
		if v := recover(); v != nil {
			n.srv.logf(obs.Error, "conn %s: handler panic on %s %s: %v", n.id, req.Method, req.Path, v)
			resp = InternalError()
		}
	}()
	if n.srv.Mux == nil {
		return NotFound()
	}
	return n.srv.Mux.Dispatch(req)
}

// close releases the transport. Every path through run ends here;
// a response always terminates its connection.
func (n *session) close() {
	_ = n.conn.Close()
	n.state = stateClosed
}
