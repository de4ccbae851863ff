package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ai-advantage/resources-api/internal/config"
)

var redisPort = nat.Port("6379/tcp")

// setupTestStorage поднимает хранилище поверх miniredis для юнит-тестов.
func setupTestStorage(t *testing.T) *Storage {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	return &Storage{Db: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
}

// setupRedisContainer создает хранилище поверх настоящего Redis в контейнере.
func setupRedisContainer(t *testing.T) *Storage {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{string(redisPort)},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(redisPort),
			wait.ForLog("Ready to accept connections"),
		).WithDeadline(3 * time.Minute),
	}

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		_ = redisContainer.Terminate(context.Background())
	})

	host, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	port, err := redisContainer.MappedPort(ctx, redisPort)
	require.NoError(t, err, "failed to get port")

	var storage *Storage
	for range 10 {
		storage, err = New(ctx, config.RedisConnection{
			AddressRedis: host + ":" + port.Port(),
			DialTimeout:  5 * time.Second,
			TimeoutRedis: 5 * time.Second,
		})
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to connect to redis after retries")
	return storage
}
