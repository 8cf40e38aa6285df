package main

import (
	"fmt"
	"log"
	"os"

	"dqx0.com/go/oneshot/httpone"
	"dqx0.com/go/oneshot/internal/obs"
)

func main() {
	addr := ":3000"
	if len(os.Args) > 1 {
		addr = os.Args[1]
	}

	mux := httpone.NewMux()
	mux.HandleFunc("GET", "/", func(r *httpone.Request) httpone.Response {
		return httpone.Text(200, "Welcome to the home page!")
	})
	mux.HandleFunc("GET", "/about", func(r *httpone.Request) httpone.Response {
		return httpone.Text(200, "A one-shot HTTP/1.1 server over raw TCP.")
	})
	mux.HandleFunc("POST", "/submit", func(r *httpone.Request) httpone.Response {
		form := httpone.ParseForm(r.Body)
		return httpone.Text(200, fmt.Sprintf("received name=%q email=%q", form["name"], form["email"]))
	})

	s := &httpone.Server{
		Addr:   addr,
		Mux:    mux,
		Logger: obs.Stderr(obs.Info),
	}
	log.Fatal(s.ListenAndServe())
}
