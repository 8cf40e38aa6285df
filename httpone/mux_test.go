package httpone

import "testing"

func TestMux_MethodCaseInsensitive(t *testing.T) {
	m := NewMux()
	m.HandleFunc("get", "/", func(r *Request) Response { return Text(200, "home") })
	if _, ok := m.Lookup("GET", "/"); !ok {
		t.Fatal("lookup GET / missed")
	}
	if _, ok := m.Lookup("Get", "/"); !ok {
		t.Fatal("lookup Get / missed")
	}
}

func TestMux_PathCaseSensitive(t *testing.T) {
	m := NewMux()
	m.HandleFunc("GET", "/Foo", func(r *Request) Response { return Text(200, "") })
	if _, ok := m.Lookup("GET", "/foo"); ok {
		t.Fatal("lookup /foo matched /Foo; paths must compare byte-for-byte")
	}
}

func TestMux_LastRegistrationWins(t *testing.T) {
	m := NewMux()
	m.HandleFunc("GET", "/", func(r *Request) Response { return Text(200, "first") })
	m.HandleFunc("GET", "/", func(r *Request) Response { return Text(200, "second") })
	got := m.Dispatch(&Request{Method: "GET", Path: "/"})
	if got.Body != "second" {
		t.Fatalf("body = %q, want second", got.Body)
	}
}

func TestMux_DispatchNotFound(t *testing.T) {
	m := NewMux()
	m.HandleFunc("GET", "/", func(r *Request) Response { return Text(200, "home") })
	// An unmatched path and an unmatched method both yield the same
	// 404 default.
	for _, req := range []*Request{
		{Method: "GET", Path: "/missing"},
		{Method: "POST", Path: "/"},
	} {
		got := m.Dispatch(req)
		want := Response{StatusCode: 404, ContentType: "text/plain", Body: "Not Found"}
		if got != want {
			t.Fatalf("Dispatch(%s %s) = %+v, want %+v", req.Method, req.Path, got, want)
		}
	}
}

func TestMux_DispatchDeterministic(t *testing.T) {
	m := NewMux()
	m.HandleFunc("GET", "/a", func(r *Request) Response { return Text(200, "a") })
	m.HandleFunc("GET", "/b", func(r *Request) Response { return Text(200, "b") })
	req := &Request{Method: "GET", Path: "/a"}
	first := m.Dispatch(req)
	second := m.Dispatch(req)
	if first != second {
		t.Fatalf("dispatch not deterministic: %+v vs %+v", first, second)
	}
}
