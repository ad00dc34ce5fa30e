package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"promo/config"
	"promo/internal/domain/promotion"
	"promo/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const rollupPrefix = "promo:engagement"

// ErrRollupUnavailable is returned when no Redis client backs the rollup.
var ErrRollupUnavailable = errors.New("engagement rollup requires redis")

// EngagementRollupParams holds dependencies for the engagement rollup, injected by Fx.
type EngagementRollupParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewEngagementRollup creates the Redis engagement rollup.
func NewEngagementRollup(params EngagementRollupParams) service.EngagementRollup {
	settings := params.Config.PromotionSettings()

	return &redisEngagementRollup{
		client:      params.Client,
		ttl:         settings.EngagementRollupTTL,
		offsetHours: settings.BusinessDayOffsetHours,
		logger:      params.Logger,
	}
}

// redisEngagementRollup keeps one hash per promotion and business day,
// with a field per engagement kind.
type redisEngagementRollup struct {
	client      *redis.Client
	ttl         time.Duration
	offsetHours int
	logger      *slog.Logger
}

// Record increments the kind field of every promotion in the event.
func (r *redisEngagementRollup) Record(ctx context.Context, event *service.EngagementEvent) error {
	if r.client == nil {
		return ErrRollupUnavailable
	}
	if len(event.PromotionIDs) == 0 {
		return nil
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	date := promotion.BusinessDayOf(occurredAt, r.offsetHours).Date()

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range event.PromotionIDs {
			key := rollupKey(date, id)
			pipe.HIncrBy(ctx, key, string(event.Kind), 1)
			pipe.Expire(ctx, key, r.ttl)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to record engagement rollup")
	}

	return nil
}

// Counts reads the rollup hash of a promotion for a business day.
func (r *redisEngagementRollup) Counts(ctx context.Context, promotionID, date string) (service.EngagementCounts, error) {
	if r.client == nil {
		return service.EngagementCounts{}, ErrRollupUnavailable
	}

	var counts service.EngagementCounts
	fields, err := r.client.HGetAll(ctx, rollupKey(date, promotionID)).Result()
	if err != nil {
		return counts, errors.Wrap(err, "failed to read engagement rollup")
	}

	counts.Views = parseCount(fields[string(service.EngagementView)])
	counts.Clicks = parseCount(fields[string(service.EngagementClick)])
	counts.Conversions = parseCount(fields[string(service.EngagementConversion)])

	return counts, nil
}

// rollupKey renders promo:engagement:{date}:{promotionID}.
func rollupKey(date, promotionID string) string {
	return rollupPrefix + ":" + keyPart(date) + ":" + keyPart(promotionID)
}

func parseCount(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}

	return n
}
