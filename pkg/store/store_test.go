package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard.go/pkg/model"
)

func someUsers(n int) []model.User {
	users := make([]model.User, n)
	for i := range users {
		users[i] = model.User{ID: i + 1, Name: "User"}
	}
	return users
}

func TestSetUsersResetsCursor(t *testing.T) {
	s := New(Options{PageSize: 6})
	s.SetUsers(someUsers(10))
	assert.Len(t, s.VisibleUsers(), 6)

	// Replacing the list resets the cursor even if it had advanced.
	s.AdvanceVisibleCursor(4)
	s.SetUsers(someUsers(10))
	assert.Len(t, s.VisibleUsers(), 6)
}

func TestSetUsersCursorClampedToShortList(t *testing.T) {
	s := New(Options{PageSize: 6})
	s.SetUsers(someUsers(3))
	assert.Len(t, s.VisibleUsers(), 3)
	assert.False(t, s.HasMore())
}

func TestAdvanceVisibleCursorClamps(t *testing.T) {
	s := New(Options{PageSize: 6})
	s.SetUsers(someUsers(10))

	s.AdvanceVisibleCursor(4)
	assert.Len(t, s.VisibleUsers(), 10)
	assert.False(t, s.HasMore())

	// Already at the end, a further step keeps the cursor at 10.
	s.AdvanceVisibleCursor(4)
	assert.Len(t, s.VisibleUsers(), 10)
}

func TestAdvanceVisibleCursorNoOpDuringSearch(t *testing.T) {
	s := New(Options{PageSize: 6})
	s.SetUsers(someUsers(10))
	s.SetQuery("user")

	s.AdvanceVisibleCursor(4)
	s.ClearQuery()
	assert.Len(t, s.VisibleUsers(), 6)
}

func TestHasMoreFalseDuringSearch(t *testing.T) {
	s := New(Options{PageSize: 6})
	s.SetUsers(someUsers(10))
	require.True(t, s.HasMore())

	s.SetQuery("user")
	assert.False(t, s.HasMore())
}

func TestSetTasksForUserReplacesOneKeyOnly(t *testing.T) {
	s := New(Options{})
	s.SetUsers(someUsers(2))
	s.SetTasksForUser(1, model.Tasks{{ID: 1, UserID: 1, Title: "keep me"}})

	// User 2's fetch failed upstream; its collection becomes empty
	// without touching user 1.
	s.SetTasksForUser(2, model.Tasks{})

	assert.Len(t, s.TasksFor(1), 1)
	assert.Empty(t, s.TasksFor(2))
}

func TestToggleTaskUpdatesOnlyThatTask(t *testing.T) {
	s := New(Options{})
	s.SetUsers([]model.User{{ID: 3}})
	s.SetTasksForUser(3, model.Tasks{
		{ID: 6, UserID: 3, Title: "first"},
		{ID: 7, UserID: 3, Title: "second"},
	})

	s.ToggleTask(7, true)

	tasks := s.TasksFor(3)
	assert.False(t, tasks[0].Completed)
	assert.True(t, tasks[1].Completed)

	s.SetCompletionFilter(FilterDone)
	visible := s.VisibleTasks(3)
	require.Len(t, visible, 1)
	assert.Equal(t, 7, visible[0].ID)
}

func TestToggleTaskUnknownIDIsNoOp(t *testing.T) {
	s := New(Options{})
	s.SetTasksForUser(1, model.Tasks{{ID: 1, UserID: 1}})

	assert.NotPanics(t, func() { s.ToggleTask(99, true) })
	assert.False(t, s.TasksFor(1)[0].Completed)
}

func TestUserByID(t *testing.T) {
	s := New(Options{})
	s.SetUsers(someUsers(3))

	u := s.UserByID(2)
	require.NotNil(t, u)
	assert.Equal(t, 2, u.ID)
	assert.Nil(t, s.UserByID(42))
}
