package app

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/taskmaster/taskmaster-server/internal/config"
	"github.com/taskmaster/taskmaster-server/internal/services"
)

const (
	tasksCollection = "tasks"
	usersCollection = "users"
)

func mongoClientOptions(cfg config.MongoConfig) *options.ClientOptions {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	return options.Client().
		ApplyURI(cfg.URI()).
		SetServerAPIOptions(serverAPI).
		SetRetryWrites(true).
		SetWriteConcern(writeconcern.Majority()).
		SetAppName(cfg.AppName).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetBSONOptions(services.DocumentBSONOptions())
}

func MustConnectMongo(logger zerolog.Logger, cfg config.MongoConfig) *mongo.Client {
	client, err := mongo.Connect(context.Background(), mongoClientOptions(cfg))
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to connect to mongo")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to ping mongo")
		panic(err)
	}
	logger.Info().
		Str("host", cfg.Host).
		Str("database", cfg.Database).
		Msg("connected to mongo")

	return client
}

func DisconnectMongo(logger zerolog.Logger, client *mongo.Client) {
	err := client.Disconnect(context.Background())
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to disconnect from mongo")
		return
	}
	logger.Info().Msg("disconnected from mongo")
}

// Collections are the store handles shared by every request.
type Collections struct {
	Tasks *mongo.Collection
	Users *mongo.Collection
}

func NewCollections(client *mongo.Client, database string) Collections {
	db := client.Database(database)
	return Collections{
		Tasks: db.Collection(tasksCollection),
		Users: db.Collection(usersCollection),
	}
}
