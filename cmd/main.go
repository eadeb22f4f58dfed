package main

import "github.com/taskmaster/taskmaster-server/internal/app"

func main() {
	logger := app.NewDefaultLogger()
	cfg := app.MustReadEnv(logger)
	logger = app.MustInitApplicationLogger(logger, cfg)

	client := app.MustConnectMongo(logger, cfg.Mongo)
	defer app.DisconnectMongo(logger, client)

	router := app.NewRouter(logger, cfg, app.NewCollections(client, cfg.Mongo.Database))
	app.MustListenAndServeHTTP(logger, cfg.HTTP, router)
}
