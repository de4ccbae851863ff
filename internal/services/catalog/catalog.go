// Package catalog содержит бизнес-логику каталога инструментов:
// загрузку записей со сквозным кешированием и фильтрацию по аудитории и сектору.
package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ai-advantage/resources-api/internal/catalog"
	"github.com/ai-advantage/resources-api/internal/lib/sl"
	"github.com/ai-advantage/resources-api/internal/models"
)

// cacheKey ключ полного списка каталога в кеше.
const cacheKey = "catalog:tools"

// Source поставляет полный список записей каталога.
type Source interface {
	LoadAll(ctx context.Context) ([]models.ToolRecord, error)
}

// Cache описывает методы для кеширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Service реализует хранилище и запросы каталога инструментов.
type Service struct {
	source   Source
	cache    Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

// New создает новый экземпляр Service с явным TTL кеша.
func New(source Source, cache Cache, cacheTTL time.Duration, log *slog.Logger) *Service {
	return &Service{
		source:   source,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// LoadAll возвращает полный каталог: сперва кеш, затем источник.
// Любой сбой или пустой результат источника маскируется встроенным
// резервным списком — каталог никогда не возвращает ошибку.
func (s *Service) LoadAll(ctx context.Context) []models.ToolRecord {
	var cached []models.ToolRecord
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read catalog cache", sl.Err(err))
	}
	if found && len(cached) > 0 {
		return cached
	}

	tools, err := s.source.LoadAll(ctx)
	if err != nil {
		s.log.Error("failed to load catalog, serving fallback data", sl.Err(err))
		return catalog.Fallback()
	}
	if len(tools) == 0 {
		s.log.Warn("catalog source returned no records, serving fallback data")
		return catalog.Fallback()
	}

	if err := s.cache.Set(ctx, cacheKey, tools, s.cacheTTL); err != nil {
		s.log.Warn("failed to cache catalog", slog.String("key", cacheKey), sl.Err(err))
	}
	return tools
}

// NormalizeType приводит фильтр аудитории к каноническому значению.
// Пустое значение и историческое "new" означают "personal".
func NormalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "" || t == "new" {
		return models.TypePersonal
	}
	return t
}

// Query возвращает записи каталога, отфильтрованные по аудитории и сектору.
//
// Фильтр по типу обязателен и сравнивается без учета регистра. Непустой
// sector оставляет записи, чей сектор содержит его как подстроку, также
// без учета регистра. Порядок записей каталога сохраняется; отсутствие
// совпадений — корректный пустой результат, а не ошибка.
func (s *Service) Query(ctx context.Context, typeFilter, sector string) []models.ToolRecord {
	mappedType := NormalizeType(typeFilter)
	sector = strings.TrimSpace(sector)

	result := make([]models.ToolRecord, 0)
	for _, tool := range s.LoadAll(ctx) {
		if !strings.EqualFold(tool.Type, mappedType) {
			continue
		}
		if sector != "" && !strings.Contains(strings.ToLower(tool.Sector), strings.ToLower(sector)) {
			continue
		}
		result = append(result, tool.WithScreenshotDefault())
	}

	s.log.Info("catalog query served",
		slog.String("type", mappedType),
		slog.String("sector", sector),
		slog.Int("count", len(result)))
	return result
}
