// Package subscribe реализует HTTP-обработчик регистрации подписчика рассылки.
//
// Обработчик принимает JSON с адресом, валидирует его, вызывает бизнес-логику
// подписки и возвращает единый JSON-ответ. Дубликат адреса — ожидаемый исход
// и отдается со статусом 200, а не ошибкой.
package subscribe

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ai-advantage/resources-api/internal/http/response"
	"github.com/ai-advantage/resources-api/internal/lib/metrics"
	"github.com/ai-advantage/resources-api/internal/lib/sl"
	"github.com/ai-advantage/resources-api/internal/models"
	"github.com/ai-advantage/resources-api/internal/services/subscription"
)

// Request тело запроса на подписку.
type Request struct {
	Email string `json:"email" validate:"required"`
}

// Service описывает интерфейс бизнес-логики подписки.
type Service interface {
	Subscribe(ctx context.Context, email string) (models.Subscriber, error)
}

// Handler обслуживает запросы на подписку.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Подписаться на рассылку
// @Description Регистрирует адрес в рассылке. Дубликат возвращает success=false со статусом 200.
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body Request true "Адрес подписчика"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "Отсутствующий или некорректный адрес"
// @Failure 500 {object} response.Response "Сбой хранилища"
// @Router /api/subscribe [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscribe"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		metrics.SubscriptionsTotal.WithLabelValues("invalid").Inc()
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("Email is required"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		metrics.SubscriptionsTotal.WithLabelValues("invalid").Inc()
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("Email is required"))
		return
	}

	sub, err := h.service.Subscribe(r.Context(), req.Email)
	switch {
	case errors.Is(err, subscription.ErrEmailRequired):
		metrics.SubscriptionsTotal.WithLabelValues("invalid").Inc()
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("Email is required"))
	case errors.Is(err, subscription.ErrInvalidEmail):
		metrics.SubscriptionsTotal.WithLabelValues("invalid").Inc()
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("Please enter a valid email address"))
	case errors.Is(err, subscription.ErrAlreadySubscribed):
		metrics.SubscriptionsTotal.WithLabelValues("duplicate").Inc()
		render.JSON(w, r, response.Conflict("Email already subscribed"))
	case err != nil:
		log.Error("failed to store subscription", sl.Err(err))
		metrics.SubscriptionsTotal.WithLabelValues("error").Inc()
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err("An error occurred during subscription"))
	default:
		metrics.SubscriptionsTotal.WithLabelValues("subscribed").Inc()
		log.Info("subscription stored", slog.String("email", sub.Email))
		render.JSON(w, r, response.Subscribed("Thank you for subscribing!", sub.Email))
	}
}
