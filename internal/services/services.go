package services

import (
	"context"
	"errors"

	"github.com/taskmaster/taskmaster-server/internal/models"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidTaskID = errors.New("invalid task id")
)

type TaskService interface {
	// ListTasks returns every task in the collection. The result is
	// never nil, so it always serializes as a JSON array.
	ListTasks(ctx context.Context) ([]models.Task, error)

	// ListTasksByAssignee returns the tasks whose assignedTo field
	// equals the given email. No user lookup is performed.
	ListTasksByAssignee(ctx context.Context, email string) ([]models.Task, error)

	// CreateTask inserts the task verbatim. The store generates the
	// identifier unless the document already carries one.
	CreateTask(ctx context.Context, task models.Task) (*models.InsertAck, error)

	// UpdateTask merges fields into the task with the given ID,
	// overwriting top-level keys.
	//
	// It returns ErrInvalidTaskID if the ID is not a valid ObjectID
	// or ErrTaskNotFound if no task has that ID.
	UpdateTask(ctx context.Context, id string, fields models.Task) (*models.UpdateAck, error)

	// DeleteTask removes the task with the given ID. Deleting a task
	// that does not exist is not an error: DeletedCount is zero.
	//
	// It returns ErrInvalidTaskID if the ID is not a valid ObjectID.
	DeleteTask(ctx context.Context, id string) (*models.DeleteAck, error)
}

type UserService interface {
	CreateUser(ctx context.Context, user models.User) (*models.InsertAck, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}
