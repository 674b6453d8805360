// Package cli is the terminal front-end: a readline loop that renders the
// store's derived views as text and maps commands onto the documented
// mutators.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	taskboard "github.com/taskboard/taskboard.go"
	"github.com/taskboard/taskboard.go/pkg/logger"
	"github.com/taskboard/taskboard.go/pkg/store"
)

// loaderFallback force-ends the loading indicator even when a fetch hangs.
const loaderFallback = 6 * time.Second

const (
	viewHome = "home"
	viewUser = "user"
)

// CLI drives one interactive session.
type CLI struct {
	sess     *taskboard.Session
	rl       *readline.Instance
	out      io.Writer
	log      zerolog.Logger
	pageSize int

	view   string
	userID int
}

// Config configures the terminal front-end.
type Config struct {
	BaseURL  string
	PageSize int
	Timeout  time.Duration
	Logger   *zerolog.Logger
}

// New builds a CLI around a fresh session and the given readline instance.
func New(cfg Config, rl *readline.Instance) *CLI {
	log := logger.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 6
	}
	return &CLI{
		sess: taskboard.New(taskboard.Config{
			BaseURL:  cfg.BaseURL,
			PageSize: cfg.PageSize,
			Timeout:  cfg.Timeout,
			Logger:   cfg.Logger,
		}),
		rl:       rl,
		out:      rl.Stdout(),
		log:      log,
		pageSize: cfg.PageSize,
		view:     viewHome,
	}
}

// Run loads the home view and then reads commands until exit or EOF.
func (c *CLI) Run(ctx context.Context) error {
	if err := c.loadHome(ctx); err != nil {
		// Load failures replace the content region; the prompt stays
		// usable for a manual retry via the users command.
		fmt.Fprintf(c.out, "! %s\n", err)
	}

	for {
		line, err := c.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if done := c.execute(ctx, line); done {
			return nil
		}
	}
}

func (c *CLI) execute(ctx context.Context, line string) bool {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	var err error
	switch cmd {
	case "users":
		err = c.loadHome(ctx)
	case "open":
		err = c.openUser(ctx, rest)
	case "search":
		err = c.search(rest)
	case "clear":
		err = c.search("")
	case "more":
		err = c.more()
	case "filter":
		err = c.filter(rest)
	case "toggle":
		err = c.toggle(rest)
	case "add":
		err = c.add(ctx, rest)
	case "help":
		c.printHelp()
	case "exit", "quit":
		fmt.Fprintln(c.out, "bye")
		return true
	default:
		err = fmt.Errorf("unknown command: %s (try help)", cmd)
	}
	if err != nil {
		fmt.Fprintf(c.out, "! %s\n", err)
	}
	return false
}

// withLoader runs fn with a loading indicator. The indicator is abandoned
// after the fallback delay no matter what fn is still doing.
func (c *CLI) withLoader(fn func() error) error {
	fmt.Fprintln(c.out, "loading...")
	done := make(chan struct{})
	go func() {
		select {
		case <-done:
		case <-time.After(loaderFallback):
			fmt.Fprintln(c.out, "(remote is slow, giving up on the loading indicator)")
		}
	}()
	err := fn()
	close(done)
	return err
}

func (c *CLI) loadHome(ctx context.Context) error {
	err := c.withLoader(func() error { return c.sess.LoadHome(ctx) })
	if err != nil {
		return err
	}
	c.view = viewHome
	c.userID = 0
	c.renderHome()
	return nil
}

func (c *CLI) openUser(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return fmt.Errorf("usage: open <user id>")
	}
	err = c.withLoader(func() error { return c.sess.LoadUserDetail(ctx, id) })
	if err != nil {
		return err
	}
	c.view = viewUser
	c.userID = id
	c.renderUser()
	return nil
}

func (c *CLI) search(q string) error {
	if c.view != viewHome {
		return fmt.Errorf("search works on the users view")
	}
	if q == "" {
		c.sess.Store().ClearQuery()
	} else {
		c.sess.Store().SetQuery(q)
	}
	c.renderHome()
	return nil
}

func (c *CLI) more() error {
	if c.view != viewHome {
		return fmt.Errorf("more works on the users view")
	}
	c.sess.Store().AdvanceVisibleCursor(c.pageSize)
	c.renderHome()
	return nil
}

func (c *CLI) filter(kind string) error {
	if c.view != viewUser {
		return fmt.Errorf("filter works on a user view (open <id> first)")
	}
	c.sess.Store().SetCompletionFilter(store.Filter(kind))
	c.renderUser()
	return nil
}

func (c *CLI) toggle(arg string) error {
	if c.view != viewUser {
		return fmt.Errorf("toggle works on a user view (open <id> first)")
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("usage: toggle <task id>")
	}
	st := c.sess.Store()
	tasks := st.TasksFor(c.userID)
	i := tasks.IndexByID(id)
	if i == -1 {
		// Unknown ids are tolerated silently, same as the store.
		return nil
	}
	st.ToggleTask(id, !tasks[i].Completed)
	c.renderUser()
	return nil
}

func (c *CLI) add(ctx context.Context, title string) error {
	if c.view != viewUser {
		return fmt.Errorf("add works on a user view (open <id> first)")
	}
	_, err := c.sess.AddTask(ctx, c.userID, title, false)
	status := c.sess.Store().FormStatus()
	if err != nil {
		return fmt.Errorf("%s", status.Message)
	}
	fmt.Fprintf(c.out, "%s\n", status.Message)
	c.renderUser()
	return nil
}

func (c *CLI) printHelp() {
	fmt.Fprint(c.out, `commands:
  users              reload and show the user list
  open <id>          open one user's detail view
  search <text>      filter users by name, username, company, city or task titles
  clear              drop the search query
  more               reveal more users (disabled while searching)
  filter <all|open|done>  filter the task list
  toggle <task id>   flip a task's completion
  add <title>        create a task for the open user (3-120 characters)
  help               this text
  exit               leave
`)
}
