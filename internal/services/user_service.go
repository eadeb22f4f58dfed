package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskmaster/taskmaster-server/internal/models"
)

type userServiceImpl struct {
	logger zerolog.Logger
	users  *mongo.Collection
}

func NewUserService(
	logger zerolog.Logger,
	users *mongo.Collection,
) UserService {
	return &userServiceImpl{
		logger: logger,
		users:  users,
	}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, user models.User) (*models.InsertAck, error) {
	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
			s.logger.Warn().Msg("user insert was not acknowledged")
			return &models.InsertAck{}, nil
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return nil, err
	}

	s.logger.Info().
		Interface("user_id", result.InsertedID).
		Msg("created user")
	return &models.InsertAck{
		Acknowledged: true,
		InsertedID:   result.InsertedID,
	}, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to find users")
		return nil, err
	}

	users := make([]models.User, 0)
	err = cursor.All(ctx, &users)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to decode users")
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}

	s.logger.Debug().
		Int("count", len(users)).
		Msg("found users")
	return users, nil
}
