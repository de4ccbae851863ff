// Утилита одноразового запуска выгрузки подписчиков в Google Sheets.
// Предназначена для запуска из cron вне веб-процесса.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ai-advantage/resources-api/internal/config"
	"github.com/ai-advantage/resources-api/internal/lib/sl"
	sheetsyncservice "github.com/ai-advantage/resources-api/internal/services/sheetsync"
	"github.com/ai-advantage/resources-api/internal/sheets"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("starting sheet-sync", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tokenSource, err := sheets.NewTokenSource(cfg.ServiceAccountEmail, cfg.PrivateKey)
	if err != nil {
		logger.Error("failed to build sheets credentials", sl.Err(err))
		os.Exit(1)
	}
	client := sheets.NewClient(cfg.SheetID, tokenSource)

	syncService := sheetsyncservice.New(cfg.APIURL, cfg.CronSecret, client, logger)

	result, err := syncService.Run(ctx)
	if err != nil {
		logger.Error("sync run failed", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("sync run finished",
		slog.String("run_id", result.RunID),
		slog.Int("count", result.Count),
		slog.String("message", result.Message))
}
