// Package subscribers реализует admin-эндпоинт со списком подписчиков.
// Маршрут закрыт bearer-секретом на уровне middleware.
package subscribers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ai-advantage/resources-api/internal/http/response"
	"github.com/ai-advantage/resources-api/internal/lib/sl"
	"github.com/ai-advantage/resources-api/internal/models"
)

// Service описывает интерфейс выдачи списка подписчиков.
type Service interface {
	List(ctx context.Context) ([]models.Subscriber, error)
}

// Handler обслуживает запросы списка подписчиков.
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
// @Summary Список подписчиков рассылки
// @Description Возвращает всех подписчиков, новые первыми.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/admin/subscribers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.subscribers"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	subs, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list subscribers", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err("failed to list subscribers"))
		return
	}

	log.Info("subscribers listed", slog.Int("count", len(subs)))
	render.JSON(w, r, response.SubscriberList(subs))
}
