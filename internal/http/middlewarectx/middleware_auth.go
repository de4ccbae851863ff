// Package middlewarectx содержит HTTP middleware: проверку bearer-секрета
// для служебных конечных точек и ограничение частоты запросов.
package middlewarectx

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ai-advantage/resources-api/internal/http/response"
)

// BearerSecretMiddleware возвращает middleware, пропускающий запрос только
// с заголовком Authorization: Bearer <secret>. Используется для cron- и
// admin-эндпоинтов: оба закрыты одним общим секретом.
func BearerSecretMiddleware(secret string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.BearerSecretMiddleware"

			reqLog := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				reqLog.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Err("unauthorized"))
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				reqLog.Error("bearer token mismatch")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Err("unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
