package fakeapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard.go/pkg/model"
)

func TestServesUsersAndTasks(t *testing.T) {
	srv := New(SampleUsers(), SampleTasks())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/users")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []model.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 3)

	resp, err = http.Get(srv.URL + "/todos?userId=2")
	require.NoError(t, err)
	defer resp.Body.Close()

	var tasks model.Tasks
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tasks))
	assert.Len(t, tasks, 2)
}

func TestUnknownRoutesAre404(t *testing.T) {
	srv := New(SampleUsers(), nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/comments")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFailureInjectionIsPerRoute(t *testing.T) {
	srv := New(SampleUsers(), SampleTasks())
	defer srv.Close()
	srv.FailWith("/todos?userId=1", Failure{Status: 500})

	resp, err := http.Get(srv.URL + "/todos?userId=1")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// Sibling routes are unaffected.
	resp, err = http.Get(srv.URL + "/todos?userId=2")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	srv.Reset()
	resp, err = http.Get(srv.URL + "/todos?userId=1")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
