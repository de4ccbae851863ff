package subscription

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ai-advantage/resources-api/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) PutIfAbsent(ctx context.Context, email, subscribedAt string) (bool, error) {
	args := m.Called(ctx, email, subscribedAt)
	return args.Bool(0), args.Error(1)
}

func (m *RepoMock) ListAll(ctx context.Context) ([]models.Subscriber, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Subscriber), args.Error(1)
}

func NewNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSubscribe(t *testing.T) {
	frozen := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	frozenTS := frozen.Format(time.RFC3339)

	tests := []struct {
		name       string
		email      string
		setupMocks func(repo *RepoMock)
		wantErr    error
		wantEmail  string
	}{
		{
			name:  "success",
			email: "a@b.com",
			setupMocks: func(repo *RepoMock) {
				repo.On("PutIfAbsent", mock.Anything, "a@b.com", frozenTS).Return(true, nil).Once()
			},
			wantEmail: "a@b.com",
		},
		{
			name:  "trims whitespace",
			email: "  a@b.com  ",
			setupMocks: func(repo *RepoMock) {
				repo.On("PutIfAbsent", mock.Anything, "a@b.com", frozenTS).Return(true, nil).Once()
			},
			wantEmail: "a@b.com",
		},
		{
			name:       "empty email",
			email:      "",
			setupMocks: func(_ *RepoMock) {},
			wantErr:    ErrEmailRequired,
		},
		{
			name:       "missing domain",
			email:      "nobody",
			setupMocks: func(_ *RepoMock) {},
			wantErr:    ErrInvalidEmail,
		},
		{
			name:       "missing tld",
			email:      "nobody@host",
			setupMocks: func(_ *RepoMock) {},
			wantErr:    ErrInvalidEmail,
		},
		{
			name:       "spaces inside address",
			email:      "no body@b.com",
			setupMocks: func(_ *RepoMock) {},
			wantErr:    ErrInvalidEmail,
		},
		{
			name:  "duplicate",
			email: "a@b.com",
			setupMocks: func(repo *RepoMock) {
				repo.On("PutIfAbsent", mock.Anything, "a@b.com", frozenTS).Return(false, nil).Once()
			},
			wantErr: ErrAlreadySubscribed,
		},
		{
			name:  "storage failure",
			email: "a@b.com",
			setupMocks: func(repo *RepoMock) {
				repo.On("PutIfAbsent", mock.Anything, "a@b.com", frozenTS).
					Return(false, errors.New("connection refused")).Once()
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setupMocks(repo)

			svc := New(repo, NewNoopLogger())
			svc.now = func() time.Time { return frozen }

			sub, err := svc.Subscribe(context.Background(), tt.email)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrEmailRequired) ||
					errors.Is(tt.wantErr, ErrInvalidEmail) ||
					errors.Is(tt.wantErr, ErrAlreadySubscribed) {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantEmail, sub.Email)
				assert.Equal(t, frozenTS, sub.SubscribedAt)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestList_SortsNewestFirst(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListAll", mock.Anything).Return([]models.Subscriber{
		{Email: "old@b.com", SubscribedAt: "2025-01-01T00:00:00Z"},
		{Email: "new@b.com", SubscribedAt: "2025-03-01T00:00:00Z"},
		{Email: "mid@b.com", SubscribedAt: "2025-02-01T00:00:00Z"},
	}, nil).Once()

	svc := New(repo, NewNoopLogger())
	subs, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, subs, 3)
	assert.Equal(t, "new@b.com", subs[0].Email)
	assert.Equal(t, "mid@b.com", subs[1].Email)
	assert.Equal(t, "old@b.com", subs[2].Email)
}

func TestList_StorageFailure(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListAll", mock.Anything).
		Return([]models.Subscriber(nil), errors.New("connection refused")).Once()

	svc := New(repo, NewNoopLogger())
	_, err := svc.List(context.Background())
	require.Error(t, err)
}
