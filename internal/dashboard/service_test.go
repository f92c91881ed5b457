package dashboard

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	calls int
	stats Stats
}

func (r *countingRepo) Collect(context.Context) (*Stats, error) {
	r.calls++
	cp := r.stats
	return &cp, nil
}

func newTestService(t *testing.T, repo Repository, ttl time.Duration) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewService(slog.New(slog.DiscardHandler), repo, rdb, ttl), mr
}

func TestStatsServedFromCache(t *testing.T) {
	repo := &countingRepo{stats: Stats{TotalCustomers: 3, TotalInvoices: 9, TotalRevenue: 4720}}
	svc, _ := newTestService(t, repo, time.Minute)

	first, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, first.TotalCustomers)
	assert.Equal(t, 1, repo.calls)

	second, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, second.TotalInvoices)
	assert.Equal(t, 1, repo.calls, "second read should not hit the database")
}

func TestStatsRecomputedAfterExpiry(t *testing.T) {
	repo := &countingRepo{stats: Stats{TotalProducts: 2}}
	svc, mr := newTestService(t, repo, time.Minute)

	_, err := svc.Stats(context.Background())
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestRefreshRewritesCache(t *testing.T) {
	repo := &countingRepo{stats: Stats{TotalInvoices: 1}}
	svc, _ := newTestService(t, repo, time.Minute)

	_, err := svc.Stats(context.Background())
	require.NoError(t, err)

	repo.stats.TotalInvoices = 5
	refreshed, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, refreshed.TotalInvoices)

	cached, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, cached.TotalInvoices)
}

func TestStatsWithoutCacheFallsThrough(t *testing.T) {
	repo := &countingRepo{stats: Stats{TotalCustomers: 1}}
	svc := NewService(slog.New(slog.DiscardHandler), repo, nil, time.Minute)

	_, err := svc.Stats(context.Background())
	require.NoError(t, err)
	_, err = svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
