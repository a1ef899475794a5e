package main

import (
	"RecipeHub/cmd/config"
	migration "RecipeHub/cmd/database/migrate"
	"RecipeHub/internal/utils"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"go.uber.org/zap"
)

func main() {
	utils.LoadConfig()

	logger, err := utils.InitLogger(utils.GetConfig("APP_ENV"))
	if err != nil {
		log.Fatalf("error initialising logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := migration.Seed(db, utils.GetConfig("ADMIN_EMAIL")); err != nil {
		zap.L().Warn("seeding failed", zap.Error(err))
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	go func() {
		addr := ":" + utils.GetConfig("APP_PORT")
		zap.L().Info("listening", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		zap.L().Error("shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
