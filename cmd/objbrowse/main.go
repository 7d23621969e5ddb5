package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jask/objbrowse"
)

// demoServer is a small object graph with some of everything: nested
// structs, maps, unexported fields, methods and function values.
type demoServer struct {
	Addr     string
	Timeout  time.Duration
	Routes   map[string]http.HandlerFunc
	Client   *http.Client
	OnPanic  func(error)
	requests int
	mu       struct{ held bool }
}

// Healthy reports whether the server would accept traffic.
func (s *demoServer) Healthy() bool { return s.requests >= 0 }

func (s *demoServer) Hits() int { return s.requests }

func main() {
	label := flag.String("label", "server", "breadcrumb label for the root object")
	noHistory := flag.Bool("no-history", false, "do not record this session's visits")
	flag.Parse()

	demo := &demoServer{
		Addr:    "127.0.0.1:8080",
		Timeout: 30 * time.Second,
		Routes: map[string]http.HandlerFunc{
			"/healthz": func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) },
			"/version": func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("demo")) },
		},
		Client:   http.DefaultClient,
		OnPanic:  func(err error) { log.Println(err) },
		requests: 42,
	}

	opts := []objbrowse.Option{objbrowse.WithLabel(*label)}
	if *noHistory {
		opts = append(opts, objbrowse.WithoutHistory())
	}
	if err := objbrowse.Explore(demo, opts...); err != nil {
		log.Printf("objbrowse: %v", err)
		os.Exit(1)
	}
}
