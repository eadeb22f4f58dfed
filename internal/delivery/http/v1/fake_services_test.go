package v1

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskmaster/taskmaster-server/internal/models"
	"github.com/taskmaster/taskmaster-server/internal/services"
)

// fakeTaskService keeps tasks in memory and mimics the store's
// identifier and acknowledgment semantics.
type fakeTaskService struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	tasks map[primitive.ObjectID]models.Task
	err   error
}

func newFakeTaskService() *fakeTaskService {
	return &fakeTaskService{tasks: make(map[primitive.ObjectID]models.Task)}
}

func (s *fakeTaskService) list(match func(models.Task) bool) ([]models.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	tasks := []models.Task{}
	for _, id := range s.order {
		task, ok := s.tasks[id]
		if ok && match(task) {
			tasks = append(tasks, copyTask(task))
		}
	}
	return tasks, nil
}

func (s *fakeTaskService) ListTasks(context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(func(models.Task) bool { return true })
}

func (s *fakeTaskService) ListTasksByAssignee(_ context.Context, email string) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(func(task models.Task) bool {
		return task[models.AssignedToField] == email
	})
}

func (s *fakeTaskService) CreateTask(_ context.Context, task models.Task) (*models.InsertAck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	id := primitive.NewObjectID()
	stored := copyTask(task)
	stored[models.IDField] = id
	s.tasks[id] = stored
	s.order = append(s.order, id)
	return &models.InsertAck{Acknowledged: true, InsertedID: id}, nil
}

func (s *fakeTaskService) UpdateTask(_ context.Context, id string, fields models.Task) (*models.UpdateAck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrInvalidTaskID, err)
	}
	if s.err != nil {
		return nil, s.err
	}
	task, ok := s.tasks[oid]
	if !ok {
		return nil, services.ErrTaskNotFound
	}
	for k, v := range fields {
		task[k] = v
	}
	return &models.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *fakeTaskService) DeleteTask(_ context.Context, id string) (*models.DeleteAck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrInvalidTaskID, err)
	}
	if s.err != nil {
		return nil, s.err
	}
	if _, ok := s.tasks[oid]; !ok {
		return &models.DeleteAck{Acknowledged: true}, nil
	}
	delete(s.tasks, oid)
	return &models.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
}

func copyTask(task models.Task) models.Task {
	c := make(models.Task, len(task))
	for k, v := range task {
		c[k] = v
	}
	return c
}

type fakeUserService struct {
	mu    sync.Mutex
	users []models.User
	err   error
}

func (s *fakeUserService) CreateUser(_ context.Context, user models.User) (*models.InsertAck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	id := primitive.NewObjectID()
	stored := make(models.User, len(user)+1)
	for k, v := range user {
		stored[k] = v
	}
	stored[models.IDField] = id
	s.users = append(s.users, stored)
	return &models.InsertAck{Acknowledged: true, InsertedID: id}, nil
}

func (s *fakeUserService) ListUsers(context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users, nil
}
