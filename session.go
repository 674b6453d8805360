package taskboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/taskboard/taskboard.go/pkg/client"
	"github.com/taskboard/taskboard.go/pkg/logger"
	"github.com/taskboard/taskboard.go/pkg/model"
	"github.com/taskboard/taskboard.go/pkg/store"
)

// Config configures a Session.
type Config struct {
	// BaseURL overrides the remote API endpoint. Empty selects the fixed
	// public mock API.
	BaseURL string
	// PageSize enables home-view pagination when non-zero.
	PageSize int
	// Timeout bounds each remote request. Zero means no timeout; the
	// presentation layer's loader fallback covers stuck requests instead.
	Timeout time.Duration
	// Logger receives load diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}

// Session ties the remote client to a per-view store. Each Load* call is one
// view activation: it swaps in a fresh store and bumps a generation counter
// so results of a superseded load never write into the current view's state.
type Session struct {
	client   *client.Client
	log      zerolog.Logger
	pageSize int

	mu         sync.Mutex
	store      *store.Store
	generation uint64
}

// New creates a Session. The store starts empty; call LoadHome or
// LoadUserDetail to populate it.
func New(cfg Config) *Session {
	log := logger.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	c := client.New(cfg.BaseURL)
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	return &Session{
		client:   c,
		log:      log,
		pageSize: cfg.PageSize,
		store:    store.New(store.Options{PageSize: cfg.PageSize}),
	}
}

// Client returns the underlying remote client.
func (s *Session) Client() *client.Client {
	return s.client
}

// Store returns the store of the current view activation.
func (s *Session) Store() *store.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store
}

// begin starts a view activation: fresh store, next generation.
func (s *Session) begin(opts store.Options) (uint64, *store.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.store = store.New(opts)
	return s.generation, s.store
}

// current reports whether the given activation is still the live one.
func (s *Session) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation == gen
}

// LoadHome populates the store for the home view: every user plus each
// user's task list. The per-user task fetches run concurrently and a failing
// one is isolated, leaving that user with an empty collection instead of
// aborting the load.
func (s *Session) LoadHome(ctx context.Context) error {
	gen, st := s.begin(store.Options{PageSize: s.pageSize})

	users, err := s.client.ListUsers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("loading users failed")
		return err
	}

	results := make([]model.Tasks, len(users))
	g := new(errgroup.Group)
	for i, u := range users {
		i, u := i, u
		g.Go(func() error {
			tasks, terr := s.client.ListTasksForUser(ctx, u.ID)
			if terr != nil {
				// Isolated partial failure: this user renders
				// with no tasks, siblings are unaffected.
				s.log.Warn().Err(terr).Int("user_id", u.ID).Msg("task fetch failed, using empty collection")
				results[i] = model.Tasks{}
				return nil
			}
			results[i] = tasks
			return nil
		})
	}
	_ = g.Wait()

	if !s.current(gen) {
		s.log.Debug().Uint64("generation", gen).Msg("dropping stale home load")
		return nil
	}
	st.SetUsers(users)
	for i, u := range users {
		st.SetTasksForUser(u.ID, results[i])
	}
	s.log.Info().Int("users", len(users)).Msg("home view loaded")
	return nil
}

// LoadUserDetail populates the store for one user's detail view. The profile
// and task fetches run concurrently; either failure fails the whole load.
func (s *Session) LoadUserDetail(ctx context.Context, userID int) error {
	gen, st := s.begin(store.Options{})

	var (
		user  *model.User
		tasks model.Tasks
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		user, err = s.client.GetUser(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.client.ListTasksForUser(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Int("user_id", userID).Msg("loading user detail failed")
		return err
	}

	if !s.current(gen) {
		s.log.Debug().Uint64("generation", gen).Msg("dropping stale detail load")
		return nil
	}
	st.SetUsers([]model.User{*user})
	st.SetTasksForUser(user.ID, tasks)
	s.log.Info().Int("user_id", userID).Int("tasks", len(tasks)).Msg("detail view loaded")
	return nil
}

// AddTask runs the store's creation flow against the remote client.
func (s *Session) AddTask(ctx context.Context, userID int, title string, completed bool) (*model.Task, error) {
	task, err := s.Store().CreateTask(ctx, s.client, userID, title, completed)
	if err != nil {
		s.log.Warn().Err(err).Int("user_id", userID).Msg("task creation failed")
		return nil, err
	}
	s.log.Info().Int("user_id", userID).Int("task_id", task.ID).Msg("task created")
	return task, nil
}
