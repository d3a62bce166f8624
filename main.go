package main

import (
	"log"

	"github.com/joshijay655/justdostuff/cmd"
	"github.com/joshijay655/justdostuff/internal/data/repository"
	"github.com/joshijay655/justdostuff/internal/wire"
	"github.com/joshijay655/justdostuff/pkg/cache"
	"github.com/joshijay655/justdostuff/pkg/database"
	"github.com/joshijay655/justdostuff/pkg/mailer"
	"github.com/joshijay655/justdostuff/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	redisCache, err := cache.InitCache(config.Redis, logger)
	if err != nil {
		// Cache and pub/sub are optional; the service degrades to
		// DB-only reads without them.
		logger.Warn("Redis unavailable, running without cache", zap.Error(err))
		redisCache = nil
	} else {
		defer redisCache.Close()
		logger.Info("Redis connected successfully")
	}

	mail := mailer.NewMailer(config.SMTP, logger)

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, redisCache, mail, config, logger)

	cmd.APIServer(app.Router, config.App.Port, logger)
}
