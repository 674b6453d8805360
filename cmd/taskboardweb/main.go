// Command taskboardweb is the server-rendered web front-end with live
// updates pushed over a WebSocket.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard.go/internal/web"
	"github.com/taskboard/taskboard.go/pkg/logger"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	baseURL := flag.String("base-url", "", "remote API base URL (default: public mock API)")
	pageSize := flag.Int("page-size", 6, "users revealed per load-more step")
	timeout := flag.Duration("timeout", 0, "per-request timeout (0 disables)")
	flag.Parse()

	log := logger.New().Console().Level(zerolog.InfoLevel).Make()

	srv := web.New(web.Config{
		Addr:     *addr,
		BaseURL:  *baseURL,
		PageSize: *pageSize,
		Timeout:  *timeout,
		Logger:   &log,
	})
	if err := srv.ListenAndServe(); err != nil {
		log.Error().Err(err).Msg("web front-end stopped")
		os.Exit(1)
	}
}
