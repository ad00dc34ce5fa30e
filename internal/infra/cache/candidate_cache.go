package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"promo/config"
	deliverycontext "promo/internal/delivery/context"
	"promo/internal/domain/entity"
	"promo/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix  = "promo:candidates"
	versionKey = keyPrefix + ":version"
	emptyPart  = "-"
)

// CandidateCacheParams holds dependencies for the candidate cache, injected by Fx.
type CandidateCacheParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewCandidateCache returns the Redis candidate cache, or a no-op cache without a Redis client.
func NewCandidateCache(params CandidateCacheParams) service.CandidateCache {
	if params.Client == nil {
		return noopCandidateCache{}
	}

	return &redisCandidateCache{
		client: params.Client,
		ttl:    params.Config.PromotionSettings().CandidateCacheTTL,
		logger: params.Logger,
	}
}

// redisCandidateCache stores candidate lists as JSON under a versioned key.
// Bumping the version orphans every older entry, which then expires by TTL.
type redisCandidateCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func (c *redisCandidateCache) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// Get returns the cached candidates for key. Any failure is a miss.
func (c *redisCandidateCache) Get(ctx context.Context, key service.CandidateKey) ([]*entity.Promotion, bool) {
	version, err := c.version(ctx)
	if err != nil {
		c.log(ctx).Warn("Candidate cache version lookup failed", slog.Any("error", err))

		return nil, false
	}

	raw, err := c.client.Get(ctx, candidateKey(version, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log(ctx).Warn("Candidate cache read failed", slog.Any("error", err))

		return nil, false
	}

	var promotions []*entity.Promotion
	if err := json.Unmarshal(raw, &promotions); err != nil {
		c.log(ctx).Warn("Candidate cache entry is corrupt", slog.Any("error", err))

		return nil, false
	}

	return promotions, true
}

// Set stores candidates for key.
func (c *redisCandidateCache) Set(ctx context.Context, key service.CandidateKey, promotions []*entity.Promotion) {
	version, err := c.version(ctx)
	if err != nil {
		c.log(ctx).Warn("Candidate cache version lookup failed", slog.Any("error", err))

		return
	}

	if promotions == nil {
		promotions = []*entity.Promotion{}
	}

	raw, err := json.Marshal(promotions)
	if err != nil {
		c.log(ctx).Warn("Failed to encode candidates", slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, candidateKey(version, key), raw, c.ttl).Err(); err != nil {
		c.log(ctx).Warn("Candidate cache write failed", slog.Any("error", err))
	}
}

// Invalidate bumps the cache version.
func (c *redisCandidateCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		c.log(ctx).Warn("Candidate cache invalidation failed", slog.Any("error", err))
	}
}

func (c *redisCandidateCache) version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return version, errors.WithStack(err)
}

// candidateKey renders promo:candidates:v{version}:{placement}:{city}:{channel}:{date}.
func candidateKey(version int64, key service.CandidateKey) string {
	return fmt.Sprintf("%s:v%d:%s:%s:%s:%s",
		keyPrefix,
		version,
		keyPart(key.Placement.String()),
		keyPart(key.City),
		keyPart(key.Channel.String()),
		keyPart(key.Date),
	)
}

func keyPart(s string) string {
	if s == "" {
		return emptyPart
	}

	return url.QueryEscape(s)
}

type noopCandidateCache struct{}

func (noopCandidateCache) Get(context.Context, service.CandidateKey) ([]*entity.Promotion, bool) {
	return nil, false
}

func (noopCandidateCache) Set(context.Context, service.CandidateKey, []*entity.Promotion) {}

func (noopCandidateCache) Invalidate(context.Context) {}
