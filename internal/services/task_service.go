package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskmaster/taskmaster-server/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	tasks  *mongo.Collection
}

func NewTaskService(
	logger zerolog.Logger,
	tasks *mongo.Collection,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		tasks:  tasks,
	}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.findTasks(ctx, bson.M{})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to find tasks")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("found tasks")
	return tasks, nil
}

func (s *taskServiceImpl) ListTasksByAssignee(ctx context.Context, email string) ([]models.Task, error) {
	tasks, err := s.findTasks(ctx, bson.M{models.AssignedToField: email})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("assigned_to", email).
			Msg("failed to find tasks by assignee")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Str("assigned_to", email).
		Msg("found tasks by assignee")
	return tasks, nil
}

func (s *taskServiceImpl) findTasks(ctx context.Context, filter bson.M) ([]models.Task, error) {
	cursor, err := s.tasks.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}

	tasks := make([]models.Task, 0)
	err = cursor.All(ctx, &tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, task models.Task) (*models.InsertAck, error) {
	result, err := s.tasks.InsertOne(ctx, task)
	if err != nil {
		if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
			s.logger.Warn().Msg("task insert was not acknowledged")
			return &models.InsertAck{}, nil
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}

	s.logger.Info().
		Interface("task_id", result.InsertedID).
		Msg("created task")
	return &models.InsertAck{
		Acknowledged: true,
		InsertedID:   result.InsertedID,
	}, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id string, fields models.Task) (*models.UpdateAck, error) {
	oid, err := parseTaskID(id)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("rejected task update")
		return nil, err
	}

	result, err := s.tasks.UpdateOne(
		ctx,
		bson.M{models.IDField: oid},
		bson.M{"$set": fields},
	)
	if err != nil {
		if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
			s.logger.Warn().
				Str("task_id", id).
				Msg("task update was not acknowledged")
			return &models.UpdateAck{}, nil
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to update task")
		return nil, err
	}
	s.logger.Debug().
		Str("task_id", id).
		Int64("matched", result.MatchedCount).
		Int64("modified", result.ModifiedCount).
		Msg("updated task")

	if result.MatchedCount == 0 {
		s.logger.Info().
			Str("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	s.logger.Info().
		Str("task_id", id).
		Msg("updated task")
	return &models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) (*models.DeleteAck, error) {
	oid, err := parseTaskID(id)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("rejected task deletion")
		return nil, err
	}

	result, err := s.tasks.DeleteOne(ctx, bson.M{models.IDField: oid})
	if err != nil {
		if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
			s.logger.Warn().
				Str("task_id", id).
				Msg("task deletion was not acknowledged")
			return &models.DeleteAck{}, nil
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", id).
		Int64("deleted", result.DeletedCount).
		Msg("deleted task")
	return &models.DeleteAck{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	}, nil
}
