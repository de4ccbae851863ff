package subscribers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ai-advantage/resources-api/internal/models"
)

// MockService реализует интерфейс subscribers.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]models.Subscriber, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Subscriber), args.Error(1)
}

func TestSubscribersHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "список с подписчиками",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return([]models.Subscriber{
					{Email: "new@b.com", SubscribedAt: "2025-03-02T00:00:00Z"},
					{Email: "old@b.com", SubscribedAt: "2025-03-01T00:00:00Z"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":2`,
		},
		{
			name: "пустой список",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return([]models.Subscriber{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":0`,
		},
		{
			name: "сбой хранилища",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).
					Return([]models.Subscriber(nil), errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to list subscribers"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/subscribers", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
