package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_SubscriberLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage := setupRedisContainer(t)
	ctx := context.Background()

	inserted, err := storage.PutIfAbsent(ctx, "a@b.com", "2025-03-01T00:00:00Z")
	require.NoError(t, err)
	assert.True(t, inserted)

	ts, found, err := storage.Get(ctx, "a@b.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2025-03-01T00:00:00Z", ts)

	subs, err := storage.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestIntegration_PutIfAbsent_Concurrent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage := setupRedisContainer(t)
	ctx := context.Background()

	// одновременные запросы на один адрес: вставка должна пройти ровно один раз
	const workers = 16
	var wg sync.WaitGroup
	results := make(chan bool, workers)

	for i := range workers {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			inserted, err := storage.PutIfAbsent(ctx, "race@example.com",
				fmt.Sprintf("2025-03-01T00:00:%02dZ", n))
			if err == nil && inserted {
				results <- true
			}
		}(i)
	}
	wg.Wait()
	close(results)

	var wins int
	for range results {
		wins++
	}
	assert.Equal(t, 1, wins)
}
