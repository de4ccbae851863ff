// Package list реализует HTTP-обработчик выдачи каталога инструментов.
//
// Обработчик читает параметры type и sector, нормализует тип аудитории
// и возвращает отфильтрованный список записей. Каталог всегда отвечает 200
// с какими-то данными: сбои источника маскируются резервным списком
// на уровне сервиса.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ai-advantage/resources-api/internal/models"
)

// Service описывает интерфейс бизнес-логики запросов к каталогу.
type Service interface {
	Query(ctx context.Context, typeFilter, sector string) []models.ToolRecord
}

// Handler обслуживает запросы каталога инструментов.
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
// @Summary Список инструментов каталога
// @Description Возвращает записи каталога, отфильтрованные по аудитории и сектору.
// @Tags Tools
// @Produce json
// @Param type query string false "Аудитория: personal или enterprise; new трактуется как personal"
// @Param sector query string false "Подстрока сектора без учета регистра"
// @Success 200 {array} models.ToolRecord
// @Router /api/tools [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tools.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	typeFilter := r.URL.Query().Get("type")
	sector := r.URL.Query().Get("sector")
	// параметр group исторически присылается фронтендом для псевдокатегорий
	// "все спортивные"/"все AI" и трактуется как отсутствие фильтра по сектору

	tools := h.service.Query(r.Context(), typeFilter, sector)

	log.Info("tools listed",
		slog.String("type", typeFilter),
		slog.String("sector", sector),
		slog.Int("count", len(tools)))
	render.JSON(w, r, tools)
}
