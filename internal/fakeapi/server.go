// Package fakeapi provides a fake JSONPlaceholder-style server for testing.
// It serves the four routes the remote data client uses and can inject
// failures per route: error status codes, unparseable bodies, or dropped
// connections.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/taskboard/taskboard.go/pkg/model"
)

// Failure describes how a route should misbehave. Zero value means serve
// normally.
type Failure struct {
	// Status, when non-zero, is returned instead of the payload.
	Status int
	// Garbage replaces the response body with bytes that do not parse as
	// JSON.
	Garbage bool
	// Drop closes the TCP connection without writing a response, so the
	// caller sees a transport error.
	Drop bool
	// Delay holds the response back before serving it normally.
	Delay time.Duration
}

// Server is a fake remote mock API backed by httptest.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	users    []model.User
	tasks    map[int]model.Tasks
	failures map[string]Failure
}

// New starts a fake API serving the given users and task collections.
// Callers own shutdown via Close.
func New(users []model.User, tasks map[int]model.Tasks) *Server {
	if tasks == nil {
		tasks = make(map[int]model.Tasks)
	}
	s := &Server{
		users:    users,
		tasks:    tasks,
		failures: make(map[string]Failure),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// FailWith injects a failure for one route. Route keys are the request
// path plus raw query, e.g. "/users", "/users/3", "/todos?userId=2" or
// "/todos" for creation.
func (s *Server) FailWith(route string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = f
}

// Reset clears all injected failures.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]Failure)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	route := r.URL.Path
	if r.URL.RawQuery != "" {
		route += "?" + r.URL.RawQuery
	}

	s.mu.Lock()
	failure := s.failures[route]
	s.mu.Unlock()

	if failure.Delay > 0 {
		time.Sleep(failure.Delay)
	}

	switch {
	case failure.Drop:
		hj, ok := w.(http.Hijacker)
		if !ok {
			panic("fakeapi: response writer does not support hijacking")
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			panic(fmt.Sprintf("fakeapi: hijack failed: %v", err))
		}
		conn.Close()
		return
	case failure.Status != 0:
		http.Error(w, http.StatusText(failure.Status), failure.Status)
		return
	case failure.Garbage:
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		fmt.Fprint(w, "{not json")
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/users":
		writeJSON(w, http.StatusOK, s.listUsers())
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/users/"):
		s.serveUser(w, r, strings.TrimPrefix(r.URL.Path, "/users/"))
	case r.Method == http.MethodGet && r.URL.Path == "/todos":
		s.serveTasks(w, r.URL.Query().Get("userId"))
	case r.Method == http.MethodPost && r.URL.Path == "/todos":
		serveCreate(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) listUsers() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users
}

func (s *Server) serveUser(w http.ResponseWriter, r *http.Request, rawID string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	for _, u := range s.listUsers() {
		if u.ID == id {
			writeJSON(w, http.StatusOK, u)
			return
		}
	}
	http.NotFound(w, r)
}

func (s *Server) serveTasks(w http.ResponseWriter, rawID string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		writeJSON(w, http.StatusOK, model.Tasks{})
		return
	}
	s.mu.Lock()
	tasks := s.tasks[id]
	s.mu.Unlock()
	if tasks == nil {
		tasks = model.Tasks{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// serveCreate mimics the real mock: it accepts the payload and echoes it
// back with a fabricated id, without storing anything.
func serveCreate(w http.ResponseWriter, r *http.Request) {
	var task model.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	task.ID = 201
	writeJSON(w, http.StatusCreated, task)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic(fmt.Sprintf("fakeapi: encoding response: %v", err))
	}
}
