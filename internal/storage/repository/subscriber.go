// Package repository реализует хранилище подписчиков поверх Redis.
//
// Все записи лежат в одном хеше subscribers: поле — email, значение — момент
// подписки в формате RFC 3339. Ключи чувствительны к регистру, нормализация
// адреса — ответственность сервисного слоя.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ai-advantage/resources-api/internal/config"
	"github.com/ai-advantage/resources-api/internal/models"
)

// subscribersKey имя хеша со всеми подписчиками.
const subscribersKey = "subscribers"

// Storage инкапсулирует соединение с Redis и реализует операции
// над записями подписчиков.
type Storage struct {
	Db *redis.Client
}

// New создает подключение к Redis и проверяет его доступность.
func New(ctx context.Context, cfg config.RedisConnection) (*Storage, error) {
	const op = "storage.New"

	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})
	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Storage{Db: db}, nil
}

// Get возвращает момент подписки для адреса. Второе значение — признак
// наличия записи: отсутствие подписчика не является ошибкой.
func (s *Storage) Get(ctx context.Context, email string) (string, bool, error) {
	const op = "storage.Get"

	val, err := s.Db.HGet(ctx, subscribersKey, email).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return val, true, nil
}

// PutIfAbsent записывает подписчика, только если адреса еще нет в хеше.
// Возвращает true при вставке и false, если запись уже существовала.
// Единственная условная операция закрывает гонку "проверил — записал"
// между одновременными запросами на один адрес.
func (s *Storage) PutIfAbsent(ctx context.Context, email, subscribedAt string) (bool, error) {
	const op = "storage.PutIfAbsent"

	inserted, err := s.Db.HSetNX(ctx, subscribersKey, email, subscribedAt).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return inserted, nil
}

// ListAll возвращает всех подписчиков. Порядок записей на уровне хранилища
// не определен, сортировка — забота вызывающего кода.
func (s *Storage) ListAll(ctx context.Context) ([]models.Subscriber, error) {
	const op = "storage.ListAll"

	raw, err := s.Db.HGetAll(ctx, subscribersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subs := make([]models.Subscriber, 0, len(raw))
	for email, ts := range raw {
		subs = append(subs, models.Subscriber{Email: email, SubscribedAt: ts})
	}
	return subs, nil
}
