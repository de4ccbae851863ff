// Package sheetsync реализует выгрузку подписчиков во внешнюю таблицу.
//
// Задание читает admin-эндпоинт со списком подписчиков и дописывает строки
// [email, subscribed_at] в лист. Выгрузка строго append-only: задание не
// читает таблицу обратно и не дедуплицирует строки, повторный запуск
// продублирует уже выгруженных подписчиков.
package sheetsync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ai-advantage/resources-api/internal/lib/metrics"
	"github.com/ai-advantage/resources-api/internal/lib/sl"
	"github.com/ai-advantage/resources-api/internal/models"
)

// DefaultAppendRange диапазон листа, куда дописываются строки подписчиков.
const DefaultAppendRange = "Sheet1!A2"

// Appender дописывает строки в таблицу.
type Appender interface {
	Append(ctx context.Context, valueRange string, values [][]string) error
}

// AppenderFunc адаптер функции к интерфейсу Appender.
type AppenderFunc func(ctx context.Context, valueRange string, values [][]string) error

// Append вызывает f(ctx, valueRange, values).
func (f AppenderFunc) Append(ctx context.Context, valueRange string, values [][]string) error {
	return f(ctx, valueRange, values)
}

// Result итог одного запуска выгрузки.
type Result struct {
	RunID   string
	Count   int
	Message string
}

// Service реализует одно задание выгрузки. Шаги последовательны,
// без конкурентности: чтение списка, маппинг строк, один batch-append.
type Service struct {
	apiURL      string
	cronSecret  string
	appender    Appender
	appendRange string
	httpClient  *http.Client
	log         *slog.Logger
}

// New создает новый экземпляр Service. apiURL — адрес admin-эндпоинта
// со списком подписчиков, secret — bearer-секрет для него.
func New(apiURL, cronSecret string, appender Appender, log *slog.Logger) *Service {
	return &Service{
		apiURL:      apiURL,
		cronSecret:  cronSecret,
		appender:    appender,
		appendRange: DefaultAppendRange,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		log:         log,
	}
}

// Run выполняет одну выгрузку. Пустой список подписчиков — успешный запуск
// без обращения к таблице. Любой сбой прерывает запуск целиком: частичных
// повторов и отката нет, append — единая операция.
func (s *Service) Run(ctx context.Context) (Result, error) {
	const op = "sheetsync.Run"

	runID := uuid.New().String()
	log := s.log.With(sl.Op(op), slog.String("run_id", runID))
	log.Info("starting subscriber sync")

	subs, err := s.fetchSubscribers(ctx)
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues("error").Inc()
		log.Error("failed to fetch subscribers", sl.Err(err))
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(subs) == 0 {
		metrics.SyncRunsTotal.WithLabelValues("ok").Inc()
		log.Info("no subscribers to sync")
		return Result{RunID: runID, Count: 0, Message: "No subscribers to sync"}, nil
	}

	rows := make([][]string, 0, len(subs))
	for _, sub := range subs {
		rows = append(rows, []string{sub.Email, sub.SubscribedAt})
	}

	if err := s.appender.Append(ctx, s.appendRange, rows); err != nil {
		metrics.SyncRunsTotal.WithLabelValues("error").Inc()
		log.Error("failed to append rows to sheet", sl.Err(err))
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.SyncRunsTotal.WithLabelValues("ok").Inc()
	metrics.SyncedSubscribersTotal.Add(float64(len(rows)))
	log.Info("synced subscribers to sheet", slog.Int("count", len(rows)))

	return Result{
		RunID:   runID,
		Count:   len(rows),
		Message: fmt.Sprintf("Synced %d subscribers to Google Sheets", len(rows)),
	}, nil
}

// fetchSubscribers читает текущий список подписчиков через admin-эндпоинт.
func (s *Service) fetchSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	const op = "sheetsync.fetchSubscribers"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cronSecret)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %s", op, resp.Status)
	}

	var listResp struct {
		Success     bool                `json:"success"`
		Count       int                 `json:"count"`
		Subscribers []models.Subscriber `json:"subscribers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !listResp.Success {
		return nil, fmt.Errorf("%s: admin endpoint reported failure", op)
	}
	return listResp.Subscribers, nil
}
