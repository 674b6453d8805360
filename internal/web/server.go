// Package web is the server-rendered front-end. Pages carry static chrome
// only; every data region is rendered server-side from the view-state store
// and pushed to the browser as an HTML fragment over a WebSocket. User
// interactions travel the other way as small JSON commands.
package web

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard.go/pkg/logger"
)

// Config configures the web front-end.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// BaseURL overrides the remote API endpoint; empty selects the public
	// mock API.
	BaseURL string
	// PageSize is the home-view "load more" step.
	PageSize int
	// Timeout bounds each remote request made on behalf of a connection.
	Timeout time.Duration
	// Logger receives request and session diagnostics. Nil disables it.
	Logger *zerolog.Logger
}

// Server serves the two page shells, the static stylesheet and the
// WebSocket endpoint driving both views.
type Server struct {
	cfg Config
	log zerolog.Logger
}

// New creates a Server.
func New(cfg Config) *Server {
	if cfg.PageSize == 0 {
		cfg.PageSize = 6
	}
	log := logger.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Server{cfg: cfg, log: log}
}

// Handler builds the HTTP routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/users/", s.handleUser)
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/static/app.css", handleStylesheet)
	return mux
}

// ListenAndServe runs the front-end until the listener fails.
func (s *Server) ListenAndServe() error {
	s.log.Info().Str("addr", s.cfg.Addr).Msg("web front-end listening")
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

type pageData struct {
	Title  string
	Page   string
	Year   int
	Script template.JS
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.renderPage(w, "home", pageData{
		Title:  "Taskboard",
		Page:   "home",
		Year:   time.Now().Year(),
		Script: template.JS(homeScript),
	})
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	rawID := strings.TrimPrefix(r.URL.Path, "/users/")
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return
	}
	s.renderPage(w, "user", pageData{
		Title:  "Taskboard — user",
		Page:   "user",
		Year:   time.Now().Year(),
		Script: template.JS(fmt.Sprintf(userScript, id)),
	})
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error().Err(err).Str("page", name).Msg("rendering page failed")
	}
}

func handleStylesheet(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	fmt.Fprint(w, stylesheet)
}
