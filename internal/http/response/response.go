// Package response содержит единый формат JSON-ответов HTTP-обработчиков.
//
// Все конечные точки API (каталог, подписка, admin-список, cron-выгрузка)
// используют одну структуру Response вместо разрозненных ad hoc форматов.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/ai-advantage/resources-api/internal/models"
)

// Response описывает стандартную структуру JSON-ответа сервера.
// Success — признак успеха; Error заполняется при неуспехе,
// Message — при информационных ответах. Остальные поля опциональны
// и заполняются конструкторами под конкретную конечную точку.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Email   string `json:"email,omitempty"`
	Count   *int   `json:"count,omitempty"`
	// Subscribers указатель, чтобы пустой список сериализовался как [],
	// а не пропадал из ответа admin-эндпоинта.
	Subscribers *[]models.Subscriber `json:"subscribers,omitempty"`
	Timestamp   string               `json:"timestamp,omitempty"`
}

// OK возвращает успешный Response с информационным сообщением.
func OK(msg string) Response {
	return Response{Success: true, Message: msg}
}

// Subscribed возвращает ответ об успешной подписке с нормализованным адресом.
func Subscribed(msg, email string) Response {
	return Response{Success: true, Message: msg, Email: email}
}

// Conflict возвращает мягкий отказ: запрос корректен, но действие не выполнено.
// Отдается со статусом 200, так как дубликат подписки — ожидаемый исход.
func Conflict(msg string) Response {
	return Response{Success: false, Message: msg}
}

// Err возвращает Response с ошибкой и переданным сообщением.
func Err(msg string) Response {
	return Response{Success: false, Error: msg}
}

// SubscriberList возвращает ответ admin-эндпоинта: количество и список подписчиков.
// Поле Count присутствует в JSON и при нулевом списке.
func SubscriberList(subs []models.Subscriber) Response {
	if subs == nil {
		subs = []models.Subscriber{}
	}
	n := len(subs)
	return Response{Success: true, Count: &n, Subscribers: &subs}
}

// SyncCompleted возвращает ответ cron-эндпоинта с отметкой времени запуска.
func SyncCompleted(msg, timestamp string) Response {
	return Response{Success: true, Message: msg, Timestamp: timestamp}
}

// ValidationError формирует Response на основе ошибок валидации структуры запроса.
// Каждое нарушение превращается в человеко-читаемый текст, объединенный через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Success: false,
		Error:   strings.Join(errsMsgs, ", "),
	}
}
