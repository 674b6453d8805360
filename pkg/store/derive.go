package store

import (
	"strings"

	"github.com/taskboard/taskboard.go/pkg/model"
)

// VisibleUsers derives the user list the home view should render.
//
// With an active query it returns every user whose name, username, company
// name, city or any owned task title contains the query substring,
// case-insensitively, in original order and with no cursor limit applied.
// Matching is byte-wise on the lowered strings; no diacritic normalization is
// performed.
//
// With an empty query it returns the first cursor users, or all of them when
// pagination is disabled.
func (s *Store) VisibleUsers() []model.User {
	q := strings.ToLower(strings.TrimSpace(s.query))
	if q == "" {
		if s.pageSize == 0 {
			return s.users
		}
		return s.users[:s.cursor]
	}

	var matched []model.User
	for _, u := range s.users {
		if s.userMatches(u, q) {
			matched = append(matched, u)
		}
	}
	return matched
}

func (s *Store) userMatches(u model.User, q string) bool {
	if strings.Contains(strings.ToLower(u.Name), q) ||
		strings.Contains(strings.ToLower(u.Username), q) ||
		strings.Contains(strings.ToLower(u.Company.Name), q) ||
		strings.Contains(strings.ToLower(u.Address.City), q) {
		return true
	}
	for _, t := range s.tasksByUser[u.ID] {
		if strings.Contains(strings.ToLower(t.Title), q) {
			return true
		}
	}
	return false
}

// VisibleTasks derives one user's task list filtered by the completion
// filter, original order preserved. Any filter other than open or done
// behaves as all.
func (s *Store) VisibleTasks(userID int) model.Tasks {
	tasks := s.tasksByUser[userID]
	switch s.filter {
	case FilterOpen:
		return selectTasks(tasks, false)
	case FilterDone:
		return selectTasks(tasks, true)
	default:
		return tasks
	}
}

func selectTasks(tasks model.Tasks, completed bool) model.Tasks {
	var out model.Tasks
	for _, t := range tasks {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}

// Empty reports which empty-state message applies to the current derived
// user list, so consumers can distinguish a fruitless search from a view
// with no data at all.
func (s *Store) Empty() EmptyState {
	if len(s.VisibleUsers()) > 0 {
		return EmptyNone
	}
	if s.Searching() {
		return EmptyNoMatch
	}
	return EmptyNoUsers
}

// FirstTasks returns up to n leading tasks of one user's collection, used by
// summary cards.
func (s *Store) FirstTasks(userID, n int) model.Tasks {
	tasks := s.tasksByUser[userID]
	if len(tasks) > n {
		return tasks[:n]
	}
	return tasks
}
