package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/ai-advantage/resources-api/internal/http/response"
)

// RateLimitMiddleware ограничивает частоту запросов общим лимитером процесса.
// Применяется к пишущей конечной точке подписки.
func RateLimitMiddleware(log *slog.Logger, limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Error("too many requests")
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Err("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
