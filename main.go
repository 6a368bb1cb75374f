// @title        videotube API
// @version      1.0
// @description  Comment and playlist endpoints of the videotube platform.
// @host         localhost:8000
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization

package main

import (
	"context"
	"time"

	_ "github.com/pllus/videotube/docs"

	"github.com/pllus/videotube/bootstrap"
	"github.com/pllus/videotube/config"
	"github.com/pllus/videotube/database"
	"github.com/pllus/videotube/internal/logger"
	"github.com/pllus/videotube/internal/repository"
	"github.com/pllus/videotube/internal/routes"
	"github.com/pllus/videotube/internal/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.WithError(err).Fatal("load config")
	}
	logger.Init(cfg.LogLevel)

	client, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Log.WithError(err).Fatal("connect mongo")
	}
	defer database.DisconnectMongo(client)

	db := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		cancel()
		logger.Log.WithError(err).Fatal("ensure indexes failed")
	}
	cancel()

	videos := repository.NewVideoRepository(db)

	app := routes.NewApp(routes.Deps{
		Comments: &services.CommentService{Store: repository.NewCommentRepository(db)},
		Playlists: &services.PlaylistService{
			Playlists: repository.NewPlaylistRepository(db),
			Videos:    videos,
		},
		Auth: &services.AuthService{
			Users:  repository.NewUserRepository(db),
			Secret: []byte(cfg.JWTSecret),
			TTL:    cfg.JWTTTL,
		},
		Videos:         videos,
		JWTSecret:      cfg.JWTSecret,
		RequestTimeout: cfg.RequestTimeout,
		CORSOrigins:    cfg.CORSOrigins,
	})

	logger.Log.WithField("port", cfg.Port).Info("videotube listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.WithError(err).Error("server stopped")
	}
}
