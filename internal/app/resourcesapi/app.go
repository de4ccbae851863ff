// Package resourcesapi собирает приложение каталога и рассылки:
// хранилище, кеш, сервисы, маршруты и жизненный цикл HTTP-сервера.
package resourcesapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"

	"github.com/ai-advantage/resources-api/internal/cache"
	"github.com/ai-advantage/resources-api/internal/catalog"
	"github.com/ai-advantage/resources-api/internal/config"
	"github.com/ai-advantage/resources-api/internal/lib/sl"
	catalogservice "github.com/ai-advantage/resources-api/internal/services/catalog"
	sheetsyncservice "github.com/ai-advantage/resources-api/internal/services/sheetsync"
	subscriptionservice "github.com/ai-advantage/resources-api/internal/services/subscription"
	"github.com/ai-advantage/resources-api/internal/sheets"
	"github.com/ai-advantage/resources-api/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	storage *repository.Storage
	cache   *cache.Cache
}

// New создает приложение: подключения, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	storage, err := repository.New(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	sheetsClient := newSheetsClient(cfg, logger)

	catalogService := catalogservice.New(
		newCatalogSource(cfg, sheetsClient), cacheRedis, cfg.CacheTTL, logger)
	subscriptionService := subscriptionservice.New(storage, logger)
	syncService := sheetsyncservice.New(
		adminSubscribersURL(cfg), cfg.CronSecret, newAppender(sheetsClient, cfg, logger), logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, catalogService, subscriptionService, syncService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		storage: storage,
		cache:   cacheRedis,
	}, nil
}

// Run запускает сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.storage.Db.Close()
		_ = a.cache.Db.Close()
		return err
	}
}

// newSheetsClient создает клиент таблицы, если заданы учетные данные
// сервисного аккаунта. Без них возвращает nil: каталог и подписка работают,
// а выгрузка сообщит об отсутствии настроек при запуске.
func newSheetsClient(cfg *config.Config, logger *slog.Logger) *sheets.Client {
	tokenSource, err := sheets.NewTokenSource(cfg.ServiceAccountEmail, cfg.PrivateKey)
	if err != nil {
		logger.Warn("google sheets credentials are not configured", sl.Err(err))
		return nil
	}
	return sheets.NewClient(cfg.SheetID, tokenSource)
}

// newCatalogSource выбирает основной источник каталога: лист таблицы,
// JSON-файл или встроенный резервный список.
func newCatalogSource(cfg *config.Config, sheetsClient *sheets.Client) catalogservice.Source {
	if cfg.SheetRange != "" && sheetsClient != nil {
		return catalog.SheetSource{Reader: sheetsClient, Range: cfg.SheetRange}
	}
	if cfg.ToolsFile != "" {
		return catalog.FileSource{Path: cfg.ToolsFile}
	}
	return catalog.StaticSource(catalog.Fallback())
}

// newAppender оборачивает клиент таблицы для выгрузки. При отсутствии
// учетных данных каждое обращение завершается ошибкой конфигурации —
// запуск выгрузки падает, не трогая таблицу.
func newAppender(sheetsClient *sheets.Client, cfg *config.Config, logger *slog.Logger) sheetsyncservice.Appender {
	if sheetsClient != nil {
		return sheetsClient
	}
	return sheetsyncservice.AppenderFunc(func(_ context.Context, _ string, _ [][]string) error {
		logger.Error("sheet append requested without configured credentials")
		return fmt.Errorf("google sheets credentials are not configured (sheet_id=%q)", cfg.SheetID)
	})
}

// adminSubscribersURL возвращает адрес admin-эндпоинта для выгрузки;
// по умолчанию — собственный сервер.
func adminSubscribersURL(cfg *config.Config) string {
	if cfg.APIURL != "" {
		return cfg.APIURL
	}
	addr := cfg.AddressHTTP
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/api/admin/subscribers"
}
