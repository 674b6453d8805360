// Command taskboard is the interactive terminal front-end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard.go/internal/cli"
	"github.com/taskboard/taskboard.go/pkg/logger"
)

func main() {
	baseURL := flag.String("base-url", "", "remote API base URL (default: public mock API)")
	pageSize := flag.Int("page-size", 6, "users revealed per load-more step (0 disables)")
	timeout := flag.Duration("timeout", 0, "per-request timeout (0 disables)")
	verbose := flag.Bool("v", false, "log load diagnostics")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.New().Console().Level(level).Make()

	rl, err := readline.New("taskboard> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init failed: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	app := cli.New(cli.Config{
		BaseURL:  *baseURL,
		PageSize: *pageSize,
		Timeout:  *timeout,
		Logger:   &log,
	}, rl)

	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
