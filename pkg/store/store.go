// Package store owns the client-side view state: the fetched users, each
// user's task collection, the text query, the completion filter and the
// visible-count cursor. What to render is always derived on read from that
// state, never cached.
//
// A Store is built per view activation and discarded on teardown. It is the
// sole mutator of the entities it holds; presentation layers only read the
// derived views and call the documented mutators.
package store

import (
	"strings"

	"github.com/taskboard/taskboard.go/pkg/model"
)

// Filter selects which tasks a detail view shows.
type Filter string

const (
	FilterAll  Filter = "all"
	FilterOpen Filter = "open"
	FilterDone Filter = "done"
)

// EmptyState tells a consumer which empty message to show when the derived
// user list has no entries.
type EmptyState int

const (
	// EmptyNone means the derived list is not empty.
	EmptyNone EmptyState = iota
	// EmptyNoUsers means nothing was loaded in the first place.
	EmptyNoUsers
	// EmptyNoMatch means an active search yielded nothing.
	EmptyNoMatch
)

// Options configure a Store for one view activation.
type Options struct {
	// PageSize is the number of users revealed initially and per "load
	// more" step on the home view. Zero disables pagination: every user is
	// visible at once.
	PageSize int
}

// Store holds the in-memory session state for one view activation.
type Store struct {
	users       []model.User
	tasksByUser map[int]model.Tasks

	query    string
	filter   Filter
	cursor   int
	pageSize int

	form FormStatus
}

// New creates an empty Store with view-state defaults: no query, the "all"
// filter and an idle creation form.
func New(opts Options) *Store {
	return &Store{
		tasksByUser: make(map[int]model.Tasks),
		filter:      FilterAll,
		pageSize:    opts.PageSize,
	}
}

// SetUsers replaces the user list wholesale and resets the visible cursor to
// the configured page size. The task collections are left untouched; entries
// for users no longer listed are simply orphaned.
func (s *Store) SetUsers(users []model.User) {
	s.users = users
	s.cursor = s.pageSize
	if s.cursor > len(s.users) {
		s.cursor = len(s.users)
	}
}

// SetTasksForUser replaces the task collection of exactly one user.
func (s *Store) SetTasksForUser(userID int, tasks model.Tasks) {
	s.tasksByUser[userID] = tasks
}

// SetQuery updates the text filter. The cursor is deliberately left alone:
// search bypasses pagination and shows every match at once.
func (s *Store) SetQuery(text string) {
	s.query = text
}

// ClearQuery is equivalent to SetQuery("").
func (s *Store) ClearQuery() {
	s.query = ""
}

// SetCompletionFilter updates the detail-view completion filter. Unrecognized
// values are stored as-is and behave like FilterAll on derivation.
func (s *Store) SetCompletionFilter(kind Filter) {
	s.filter = kind
}

// ToggleTask locates a task by id across every loaded collection and sets its
// completion flag. An unknown id is a silent no-op.
func (s *Store) ToggleTask(taskID int, completed bool) {
	for uid, tasks := range s.tasksByUser {
		if i := tasks.IndexByID(taskID); i != -1 {
			tasks[i].Completed = completed
			s.tasksByUser[uid] = tasks
			return
		}
	}
}

// AdvanceVisibleCursor reveals step more users on the home view, clamped to
// the total user count. It is meaningless while a search is active and does
// nothing then.
func (s *Store) AdvanceVisibleCursor(step int) {
	if s.Searching() {
		return
	}
	s.cursor += step
	if s.cursor > len(s.users) {
		s.cursor = len(s.users)
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// Users returns the full fetched user list in original order.
func (s *Store) Users() []model.User {
	return s.users
}

// UserByID returns the fetched user with the given id, or nil.
func (s *Store) UserByID(id int) *model.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

// TasksFor returns one user's full task collection, unfiltered.
func (s *Store) TasksFor(userID int) model.Tasks {
	return s.tasksByUser[userID]
}

// Query returns the current text filter.
func (s *Store) Query() string {
	return s.query
}

// Filter returns the current completion filter.
func (s *Store) Filter() Filter {
	return s.filter
}

// Searching reports whether a non-blank query is active.
func (s *Store) Searching() bool {
	return strings.TrimSpace(s.query) != ""
}

// HasMore reports whether the home view can reveal more users. Always false
// during a search.
func (s *Store) HasMore() bool {
	if s.pageSize == 0 || s.Searching() {
		return false
	}
	return s.cursor < len(s.users)
}
