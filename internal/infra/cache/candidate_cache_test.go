package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"promo/config"
	"promo/internal/domain/entity"
	"promo/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestCandidateKey(t *testing.T) {
	tests := []struct {
		name    string
		version int64
		key     service.CandidateKey
		want    string
	}{
		{
			name:    "full scope",
			version: 3,
			key: service.CandidateKey{
				Placement: entity.PlacementHomeHero,
				City:      "Aden",
				Channel:   entity.ChannelApp,
				Date:      "2025-06-15",
			},
			want: "promo:candidates:v3:home_hero:Aden:app:2025-06-15",
		},
		{
			name: "empty city and channel",
			key: service.CandidateKey{
				Placement: entity.PlacementCart,
				Date:      "2025-06-15",
			},
			want: "promo:candidates:v0:cart:-:-:2025-06-15",
		},
		{
			name: "city with separator is escaped",
			key: service.CandidateKey{
				Placement: entity.PlacementCart,
				City:      "a:b c",
				Channel:   entity.ChannelWeb,
				Date:      "2025-06-15",
			},
			want: "promo:candidates:v0:cart:a%3Ab+c:web:2025-06-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, candidateKey(tt.version, tt.key))
		})
	}
}

func TestNewCandidateCache_NoClientIsNoop(t *testing.T) {
	cache := NewCandidateCache(CandidateCacheParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ctx := context.Background()
	key := service.CandidateKey{Placement: entity.PlacementCart, Date: "2025-06-15"}

	cache.Set(ctx, key, []*entity.Promotion{{Title: "x"}})
	cache.Invalidate(ctx)

	got, ok := cache.Get(ctx, key)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRedisCandidateCache_UnreachableServerIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	cache := NewCandidateCache(CandidateCacheParams{
		Client: client,
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ctx := context.Background()
	key := service.CandidateKey{Placement: entity.PlacementCart, Date: "2025-06-15"}

	cache.Set(ctx, key, nil)
	cache.Invalidate(ctx)

	_, ok := cache.Get(ctx, key)
	assert.False(t, ok)
}
