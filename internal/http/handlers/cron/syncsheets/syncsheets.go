// Package syncsheets реализует cron-эндпоинт запуска выгрузки подписчиков
// в таблицу. Маршрут закрыт bearer-секретом на уровне middleware.
package syncsheets

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ai-advantage/resources-api/internal/http/response"
	"github.com/ai-advantage/resources-api/internal/lib/sl"
	"github.com/ai-advantage/resources-api/internal/services/sheetsync"
)

// Service описывает интерфейс запуска выгрузки.
type Service interface {
	Run(ctx context.Context) (sheetsync.Result, error)
}

// Handler обслуживает запуск выгрузки по расписанию.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выгрузить подписчиков в таблицу
// @Description Запускает одно задание выгрузки. Пустой список — успешный запуск без обращения к таблице.
// @Tags Cron
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/cron/sync-sheets [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cron.syncsheets"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	result, err := h.service.Run(r.Context())
	if err != nil {
		log.Error("sync job failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err("sync job failed"))
		return
	}

	log.Info("sync job finished",
		slog.String("run_id", result.RunID),
		slog.Int("count", result.Count))
	render.JSON(w, r, response.SyncCompleted(result.Message, time.Now().UTC().Format(time.RFC3339)))
}
