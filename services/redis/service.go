package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ReviewEventsChannel carries document review outcomes for any listener
// (dashboards, future mailers).
const ReviewEventsChannel = "review-events"

// ErrCacheMiss is returned when a report key has no cached value.
var ErrCacheMiss = redis.Nil

// RedisService caches assembled reports and publishes review events.
// Cache keys are explicit per filter set; nothing is invalidated
// implicitly, entries just expire.
type RedisService struct {
	redisClient RedisClient
	lg          *zap.SugaredLogger
}

func NewRedisService(redisClient RedisClient, lg *zap.SugaredLogger) *RedisService {
	return &RedisService{redisClient: redisClient, lg: lg}
}

// ReportKey builds the cache key for one report view and filter set.
func ReportKey(view, filterSet string) string {
	if filterSet == "" {
		filterSet = "all"
	}
	return fmt.Sprintf("report:%s:%s", view, filterSet)
}

func (s *RedisService) CacheReport(ctx context.Context, key string, payload any, ttl time.Duration) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode report for cache: %w", err)
	}
	if err := s.redisClient.Set(ctx, key, raw, ttl); err != nil {
		s.lg.Warnw("report cache write failed", "key", key, "error", err)
		return err
	}
	return nil
}

func (s *RedisService) GetCachedReport(ctx context.Context, key string, out any) error {
	raw, err := s.redisClient.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), out)
}

func (s *RedisService) DeleteValue(ctx context.Context, key string) error {
	if err := s.redisClient.Delete(ctx, key); err != nil {
		s.lg.Warnw("redis delete failed", "key", key, "error", err)
		return err
	}
	return nil
}

type ReviewEvent struct {
	SubmissionID string `json:"submission_id"`
	VendorID     string `json:"vendor_id"`
	DocumentName string `json:"document_name"`
	Outcome      string `json:"outcome"`
}

func (s *RedisService) PublishReviewEvent(ctx context.Context, event ReviewEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode review event: %w", err)
	}
	return s.redisClient.Publish(ctx, ReviewEventsChannel, raw)
}

func (s *RedisService) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return s.redisClient.Subscribe(ctx, channel)
}
