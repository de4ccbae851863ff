// Package subscription содержит бизнес-логику регистрации подписчиков рассылки.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ai-advantage/resources-api/internal/models"
)

// Ожидаемые исходы подписки. ErrAlreadySubscribed — мягкий конфликт:
// запрос корректен, но новая запись не создается.
var (
	ErrEmailRequired     = errors.New("email is required")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrAlreadySubscribed = errors.New("email already subscribed")
)

// emailPattern примитивная проверка local@domain.tld без точной RFC-валидации.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubscriberRepository определяет методы для работы с подписчиками в хранилище.
type SubscriberRepository interface {
	// PutIfAbsent записывает подписчика, если адреса еще нет.
	// Возвращает true при вставке.
	PutIfAbsent(ctx context.Context, email, subscribedAt string) (bool, error)
	// ListAll возвращает всех подписчиков без определенного порядка.
	ListAll(ctx context.Context) ([]models.Subscriber, error)
}

// Service реализует регистрацию подписчиков с гарантией
// "одна запись на адрес".
type Service struct {
	repo SubscriberRepository
	log  *slog.Logger
	now  func() time.Time
}

// New создает новый экземпляр Service.
func New(repo SubscriberRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Subscribe валидирует адрес и регистрирует нового подписчика.
//
// Адрес обрезается по пробелам, но регистр сохраняется: ключи хранилища
// чувствительны к регистру. Дубликат возвращает ErrAlreadySubscribed без
// изменения записанного ранее момента подписки.
func (s *Service) Subscribe(ctx context.Context, email string) (models.Subscriber, error) {
	const op = "subscription.Subscribe"

	email = strings.TrimSpace(email)
	if email == "" {
		return models.Subscriber{}, ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return models.Subscriber{}, ErrInvalidEmail
	}

	sub := models.Subscriber{
		Email:        email,
		SubscribedAt: s.now().UTC().Format(time.RFC3339),
	}

	inserted, err := s.repo.PutIfAbsent(ctx, sub.Email, sub.SubscribedAt)
	if err != nil {
		return models.Subscriber{}, fmt.Errorf("%s: %w", op, err)
	}
	if !inserted {
		s.log.Info("duplicate subscription attempt", slog.String("email", email))
		return models.Subscriber{}, ErrAlreadySubscribed
	}

	s.log.Info("stored new subscription",
		slog.String("email", sub.Email),
		slog.String("subscribed_at", sub.SubscribedAt))
	return sub, nil
}

// List возвращает всех подписчиков, отсортированных по моменту подписки
// по убыванию (новые первыми).
func (s *Service) List(ctx context.Context) ([]models.Subscriber, error) {
	const op = "subscription.List"

	subs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sort.SliceStable(subs, func(i, j int) bool {
		ti, _ := time.Parse(time.RFC3339, subs[i].SubscribedAt)
		tj, _ := time.Parse(time.RFC3339, subs[j].SubscribedAt)
		return ti.After(tj)
	})
	return subs, nil
}
