package store

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/taskboard/taskboard.go/pkg/model"
)

// Title length bounds enforced at creation time.
const (
	MinTitleLen = 3
	MaxTitleLen = 120
)

// FormState is the phase of the task-creation flow. It is presentation
// visible (disable the form, show progress) but owned by the store.
type FormState string

const (
	FormIdle       FormState = "idle"
	FormSubmitting FormState = "submitting"
	FormSuccess    FormState = "success"
	FormError      FormState = "error"
)

// FormStatus is the creation flow's current phase plus a human-readable
// message for the error and success states.
type FormStatus struct {
	State   FormState
	Message string
}

// ValidationError reports a title that failed the length bounds before any
// network call was made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// TaskCreator is the remote-client surface the creation flow needs.
type TaskCreator interface {
	CreateTask(ctx context.Context, ownerID int, title string, completed bool) (*model.Task, error)
}

// FormStatus returns the current creation-flow status.
func (s *Store) FormStatus() FormStatus {
	return s.form
}

// ResetForm returns the creation flow to idle, e.g. when the user edits the
// title after an error.
func (s *Store) ResetForm() {
	s.form = FormStatus{State: FormIdle}
}

// CreateTask runs the task-creation flow: validate the title, submit it to
// the remote, then prepend the new task to the owner's collection with a
// locally assigned id. The id echoed by the remote mock is ignored since it
// never persists writes.
//
// Validation failures return a *ValidationError without contacting the
// remote. Remote failures are propagated unchanged. Both leave the form in
// the error state with a message; success clears it.
func (s *Store) CreateTask(ctx context.Context, remote TaskCreator, userID int, title string, completed bool) (*model.Task, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < MinTitleLen {
		err := &ValidationError{Reason: "title too short"}
		s.form = FormStatus{State: FormError, Message: err.Reason}
		return nil, err
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		err := &ValidationError{Reason: "title too long"}
		s.form = FormStatus{State: FormError, Message: err.Reason}
		return nil, err
	}

	s.form = FormStatus{State: FormSubmitting, Message: "adding task..."}

	created, err := remote.CreateTask(ctx, userID, title, completed)
	if err != nil {
		s.form = FormStatus{State: FormError, Message: err.Error()}
		return nil, err
	}

	task := *created
	task.UserID = userID
	task.ID = s.nextTaskID(userID)
	if task.Title == "" {
		task.Title = title
	}

	s.tasksByUser[userID] = append(model.Tasks{task}, s.tasksByUser[userID]...)
	s.form = FormStatus{State: FormSuccess, Message: "task added"}
	return &task, nil
}

// nextTaskID assigns max(existing ids)+1, or 1 for an empty collection, so
// local ids never collide with remotely issued ones.
func (s *Store) nextTaskID(userID int) int {
	maxID := 0
	for _, t := range s.tasksByUser[userID] {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// String implements fmt.Stringer for log output.
func (f FormStatus) String() string {
	if f.Message == "" {
		return string(f.State)
	}
	return fmt.Sprintf("%s: %s", f.State, f.Message)
}
