package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// pingOnlyStore implements store.TaskStore for health checks; only Ping is
// expected to be called.
type pingOnlyStore struct {
	pingErr error
}

func (s *pingOnlyStore) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	return nil, errors.New("not implemented")
}

func (s *pingOnlyStore) List(ctx context.Context) ([]domain.Task, error) {
	return nil, errors.New("not implemented")
}

func (s *pingOnlyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return nil, errors.New("not implemented")
}

func (s *pingOnlyStore) Update(ctx context.Context, id uuid.UUID, update store.TaskUpdate) (*domain.Task, error) {
	return nil, errors.New("not implemented")
}

func (s *pingOnlyStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return nil, errors.New("not implemented")
}

func (s *pingOnlyStore) Stats(ctx context.Context) (*domain.TaskStats, error) {
	return nil, errors.New("not implemented")
}

func (s *pingOnlyStore) Ping(ctx context.Context) error {
	return s.pingErr
}

// pingOnlyCache implements cache.Cache for health checks.
type pingOnlyCache struct {
	pingErr error
}

func (c *pingOnlyCache) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("not implemented")
}

func (c *pingOnlyCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.New("not implemented")
}

func (c *pingOnlyCache) Delete(ctx context.Context, keys ...string) error {
	return errors.New("not implemented")
}

func (c *pingOnlyCache) Ping(ctx context.Context) error {
	return c.pingErr
}

func (c *pingOnlyCache) Close() error {
	return nil
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name           string
		storePingErr   error
		cachePingErr   error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "both reachable",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "database unreachable",
			storePingErr:   errors.New("dial tcp: connection refused"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  "database unreachable",
		},
		{
			name:           "redis unreachable",
			cachePingErr:   errors.New("dial tcp: connection refused"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  "redis unreachable",
		},
		{
			name:           "both unreachable reports database first",
			storePingErr:   errors.New("db down"),
			cachePingErr:   errors.New("redis down"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  "database unreachable",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewHealthHandler(
				&pingOnlyStore{pingErr: tc.storePingErr},
				&pingOnlyCache{pingErr: tc.cachePingErr},
				slog.Default(),
			)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rr := httptest.NewRecorder()
			handler.Check(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code)

			var body HealthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, "healthy", body.Status)
				assert.False(t, body.Timestamp.IsZero())
				assert.Equal(t, "connected", body.Services["database"])
				assert.Equal(t, "connected", body.Services["redis"])
				return
			}

			assert.Equal(t, "unhealthy", body.Status)
			assert.Equal(t, tc.expectedError, body.Error)
		})
	}
}
