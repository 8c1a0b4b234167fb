package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/gnsaved/kanban-board-showcase/internal/adapter/cli"
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
	zap.ReplaceGlobals(logger)

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	err = cli.Execute(cli.Options{Config: cfg, Logger: logger})
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
