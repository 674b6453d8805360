package client_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard.go/internal/fakeapi"
	"github.com/taskboard/taskboard.go/pkg/client"
)

func newFake(t *testing.T) *fakeapi.Server {
	t.Helper()
	srv := fakeapi.New(fakeapi.SampleUsers(), fakeapi.SampleTasks())
	t.Cleanup(srv.Close)
	return srv
}

func TestListUsers(t *testing.T) {
	srv := newFake(t)
	c := client.New(srv.URL)

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Nora Vance", users[0].Name)
	assert.Equal(t, "Wisokyburgh", users[0].Address.City)
	assert.Equal(t, "Deckow-Crist", users[0].Company.Name)
}

func TestGetUser(t *testing.T) {
	srv := newFake(t)
	c := client.New(srv.URL)

	user, err := c.GetUser(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Abel Okafor", user.Name)
	assert.Equal(t, "-68.6102", user.Address.Geo.Lat)
}

func TestGetUserNotFound(t *testing.T) {
	srv := newFake(t)
	c := client.New(srv.URL)

	_, err := c.GetUser(context.Background(), 99)
	var remoteErr *client.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, 404, remoteErr.Status)
}

func TestListTasksForUser(t *testing.T) {
	srv := newFake(t)
	c := client.New(srv.URL)

	tasks, err := c.ListTasksForUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "delectus aut autem", tasks[0].Title)

	// A user with no tasks gets an empty list, not an error.
	tasks, err = c.ListTasksForUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCreateTaskEchoesFabricatedRecord(t *testing.T) {
	srv := newFake(t)
	c := client.New(srv.URL)

	created, err := c.CreateTask(context.Background(), 2, "write more tests", true)
	require.NoError(t, err)
	assert.Equal(t, 2, created.UserID)
	assert.Equal(t, "write more tests", created.Title)
	assert.True(t, created.Completed)
	// The mock fabricates the id; callers must not trust it.
	assert.Equal(t, 201, created.ID)
}

func TestRemoteErrorOnServerFailure(t *testing.T) {
	srv := newFake(t)
	srv.FailWith("/users", fakeapi.Failure{Status: 500})
	c := client.New(srv.URL)

	_, err := c.ListUsers(context.Background())
	var remoteErr *client.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, 500, remoteErr.Status)
}

func TestDecodeErrorOnGarbageBody(t *testing.T) {
	srv := newFake(t)
	srv.FailWith("/todos?userId=1", fakeapi.Failure{Garbage: true})
	c := client.New(srv.URL)

	_, err := c.ListTasksForUser(context.Background(), 1)
	assert.ErrorIs(t, err, client.ErrDecode)
}

func TestNetworkErrorOnDroppedConnection(t *testing.T) {
	srv := newFake(t)
	srv.FailWith("/users/1", fakeapi.Failure{Drop: true})
	c := client.New(srv.URL)

	_, err := c.GetUser(context.Background(), 1)
	assert.ErrorIs(t, err, client.ErrNetwork)
}

func TestNetworkErrorOnUnreachableHost(t *testing.T) {
	c := client.New("http://127.0.0.1:1")

	_, err := c.ListUsers(context.Background())
	assert.ErrorIs(t, err, client.ErrNetwork)
}

func TestSetTimeoutStillServes(t *testing.T) {
	srv := newFake(t)
	c := client.New(srv.URL).SetTimeout(2 * time.Second)

	_, err := c.ListUsers(context.Background())
	require.NoError(t, err)
}

func TestDefaultBaseURL(t *testing.T) {
	c := client.New("")
	assert.Equal(t, client.DefaultBaseURL, c.BaseURL)
}
