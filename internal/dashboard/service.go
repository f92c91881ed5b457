package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKey = "dashboard:stats"

// Service serves dashboard stats through a Redis cache. A cache miss
// falls through to the database and repopulates the key; Redis being
// down degrades to direct queries instead of failing the request.
type Service struct {
	logger *slog.Logger
	repo   Repository
	cache  *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewService(logger *slog.Logger, repo Repository, cache *redis.Client, ttl time.Duration) *Service {
	return &Service{logger: logger, repo: repo, cache: cache, ttl: ttl, now: time.Now}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var cached Stats
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
			s.logger.Warn("discarding corrupt stats cache entry")
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("stats cache read failed", slog.Any("error", err))
		}
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the stats from the database and rewrites the cache
// entry. The warmup job calls this on a schedule so interactive requests
// mostly hit the cache.
func (s *Service) Refresh(ctx context.Context) (*Stats, error) {
	stats, err := s.repo.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect dashboard stats: %w", err)
	}
	stats.GeneratedAt = s.now()

	if s.cache != nil {
		raw, err := json.Marshal(stats)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, s.ttl).Err(); err != nil {
				s.logger.Warn("stats cache write failed", slog.Any("error", err))
			}
		}
	}
	return stats, nil
}
