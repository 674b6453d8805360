package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard.go/internal/fakeapi"
	"github.com/taskboard/taskboard.go/pkg/model"
	"github.com/taskboard/taskboard.go/pkg/store"
)

func loadedStore() *store.Store {
	st := store.New(store.Options{})
	st.SetUsers(fakeapi.SampleUsers())
	for id, tasks := range fakeapi.SampleTasks() {
		st.SetTasksForUser(id, tasks)
	}
	return st
}

func TestRenderUsersGrid(t *testing.T) {
	html, err := renderUsersGrid(loadedStore())
	require.NoError(t, err)
	assert.Contains(t, html, "Nora Vance")
	assert.Contains(t, html, `href="/users/1"`)
	assert.Contains(t, html, "Deckow-Crist")
}

func TestRenderUsersGridEmptyStates(t *testing.T) {
	st := store.New(store.Options{})
	html, err := renderUsersGrid(st)
	require.NoError(t, err)
	assert.Contains(t, html, emptyNoUsers)
	assert.Contains(t, html, `role="alert"`)

	st = loadedStore()
	st.SetQuery("zzz-nothing")
	html, err = renderUsersGrid(st)
	require.NoError(t, err)
	assert.Contains(t, html, emptyNoMatch)
	// A fruitless search is not an error condition.
	assert.NotContains(t, html, `role="alert"`)
}

func TestRenderUsersGridEscapesContent(t *testing.T) {
	st := store.New(store.Options{})
	st.SetUsers([]model.User{{ID: 1, Name: `<script>alert("x")</script>`}})

	html, err := renderUsersGrid(st)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}

func TestRenderTasksHonorsFilter(t *testing.T) {
	st := loadedStore()
	st.SetCompletionFilter(store.FilterDone)

	html, err := renderTasks(st, 1)
	require.NoError(t, err)
	assert.Contains(t, html, "quis ut nam facilis")
	assert.NotContains(t, html, "delectus aut autem")
}

func TestRenderTasksEmpty(t *testing.T) {
	st := loadedStore()
	html, err := renderTasks(st, 3)
	require.NoError(t, err)
	assert.Contains(t, html, "No tasks.")
}

func TestRenderUserInfo(t *testing.T) {
	st := loadedStore()
	html, err := renderUserInfo(st, 1)
	require.NoError(t, err)
	assert.Contains(t, html, "Nora Vance")
	assert.Contains(t, html, "Victor Plains")
	assert.Contains(t, html, "-43.9509")

	html, err = renderUserInfo(st, 42)
	require.NoError(t, err)
	assert.Contains(t, html, "User not found.")
}
