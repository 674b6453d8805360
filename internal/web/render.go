package web

import (
	"bytes"

	"github.com/taskboard/taskboard.go/pkg/model"
	"github.com/taskboard/taskboard.go/pkg/store"
)

const (
	emptyNoUsers = "No users."
	emptyNoMatch = "No profiles match your search."
)

type userCardView struct {
	User           model.User
	CompletedCount int
	FirstTasks     model.Tasks
}

type usersGridView struct {
	Users        []userCardView
	Searching    bool
	EmptyMessage string
}

type userInfoView struct {
	User           model.User
	TaskCount      int
	CompletedCount int
}

type tasksView struct {
	Tasks model.Tasks
}

type errorView struct {
	Message string
}

func renderUsersGrid(st *store.Store) (string, error) {
	view := usersGridView{Searching: st.Searching()}
	for _, u := range st.VisibleUsers() {
		view.Users = append(view.Users, userCardView{
			User:           u,
			CompletedCount: st.TasksFor(u.ID).CompletedCount(),
			FirstTasks:     st.FirstTasks(u.ID, 3),
		})
	}
	switch st.Empty() {
	case store.EmptyNoMatch:
		view.EmptyMessage = emptyNoMatch
	case store.EmptyNoUsers:
		view.EmptyMessage = emptyNoUsers
	}
	return execFragment("users_grid", view)
}

func renderUserInfo(st *store.Store, userID int) (string, error) {
	user := st.UserByID(userID)
	if user == nil {
		return execFragment("error_region", errorView{Message: "User not found."})
	}
	tasks := st.TasksFor(userID)
	return execFragment("user_info", userInfoView{
		User:           *user,
		TaskCount:      len(tasks),
		CompletedCount: tasks.CompletedCount(),
	})
}

func renderTasks(st *store.Store, userID int) (string, error) {
	return execFragment("todos_list", tasksView{Tasks: st.VisibleTasks(userID)})
}

func renderError(msg string) string {
	out, err := execFragment("error_region", errorView{Message: msg})
	if err != nil {
		return msg
	}
	return out
}

func execFragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
