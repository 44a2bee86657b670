package main

import (
	"log"

	"github.com/ShurikGr/greek-learning-bot/internal/bot"
	"github.com/ShurikGr/greek-learning-bot/internal/config"
	"github.com/ShurikGr/greek-learning-bot/internal/repository"
	"github.com/ShurikGr/greek-learning-bot/internal/service"
	"github.com/ShurikGr/greek-learning-bot/internal/storage/cache"
	"github.com/ShurikGr/greek-learning-bot/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db)

	services := service.InitServices(repos, logger)
	cache := cache.NewCache()

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cache, cfg.Admins, cfg.App.QuizAdvanceDelay)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
