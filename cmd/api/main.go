package main

import (
	"context"

	"go.uber.org/zap"

	httpadapter "github.com/gnsaved/kanban-board-showcase/internal/adapter/http"
	"github.com/gnsaved/kanban-board-showcase/internal/app/bootstrap"
	"github.com/gnsaved/kanban-board-showcase/internal/config"
	"github.com/gnsaved/kanban-board-showcase/internal/logging"
	"github.com/gnsaved/kanban-board-showcase/pkg/translator"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	store, closeStore, err := bootstrap.NewStore(cfg)
	if err != nil {
		logger.Fatal("failed to open board storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("failed to close board storage", zap.Error(err))
		}
	}()

	boardService, err := bootstrap.NewBoardService(context.Background(), cfg, store)
	if err != nil {
		logger.Fatal("failed to load board", zap.Error(err))
	}

	r, err := httpadapter.NewRouter(logger, cfg.TrustedProxies, store, boardService)
	if err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
