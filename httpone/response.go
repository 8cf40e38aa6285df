package httpone

// Response represents one outbound message. A handler constructs it
// and the encoder consumes it exactly once.
type Response struct {
	StatusCode  int
	ContentType string
	Body        string
}

// Text builds a text/plain response with the given status and body.
func Text(status int, body string) Response {
	return Response{StatusCode: status, ContentType: "text/plain", Body: body}
}

// NotFound is the default response for an unroutable (method, path)
// pair. An unmatched method and an unmatched path are
// indistinguishable; both yield 404, never 405.
func NotFound() Response {
	return Text(404, "Not Found")
}

// BadRequest is the response for a request the decoder rejected.
func BadRequest() Response {
	return Text(400, "Bad Request")
}

// InternalError is the response substituted when a handler panics.
func InternalError() Response {
	return Text(500, "Internal Server Error")
}
