package promotion

import (
	"testing"
	"time"

	"promo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sanaa = "صنعاء"

func createTestPromotion(opts ...func(*entity.Promotion)) *entity.Promotion {
	p := &entity.Promotion{
		ID:         uuid.New(),
		Title:      "Summer sale",
		Target:     entity.StoreTarget("store-1"),
		Placements: entity.Placements{entity.PlacementHomeHero},
		Channels:   entity.Channels{entity.ChannelApp},
		Stacking:   entity.StackingBest,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
		CreatedAt:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

func TestFilter_ResolvesPlacementForCityAndDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	second := createTestPromotion(func(p *entity.Promotion) { p.Title = "second"; p.Order = 2 })
	first := createTestPromotion(func(p *entity.Promotion) {
		p.Title = "first"
		p.Order = 1
		p.Cities = []string{sanaa}
	})
	candidates := []*entity.Promotion{
		second,
		first,
		createTestPromotion(func(p *entity.Promotion) { p.Title = "inactive"; p.IsActive = false }),
		createTestPromotion(func(p *entity.Promotion) { p.Title = "other city"; p.Cities = []string{"عدن"} }),
		createTestPromotion(func(p *entity.Promotion) {
			p.Title = "other placement"
			p.Placements = entity.Placements{entity.PlacementCart}
		}),
		createTestPromotion(func(p *entity.Promotion) { p.Title = "web only"; p.Channels = entity.Channels{entity.ChannelWeb} }),
		createTestPromotion(func(p *entity.Promotion) {
			p.Title = "expired"
			p.EndDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		}),
		createTestPromotion(func(p *entity.Promotion) {
			p.Title = "future"
			p.StartDate = time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
		}),
	}

	scope := Scope{Placement: entity.PlacementHomeHero, City: sanaa, Channel: entity.ChannelApp, Now: now}
	result := Filter(candidates, scope, DefaultOffsetHours)

	require.Len(t, result, 2)
	assert.Equal(t, "first", result[0].Title)
	assert.Equal(t, "second", result[1].Title)
}

func TestEligible_Boundaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC) // 23:00 business time
	day := BusinessDayOf(now, DefaultOffsetHours)
	base := Scope{Placement: entity.PlacementHomeHero, Channel: entity.ChannelApp, Now: now}

	tests := []struct {
		name  string
		promo *entity.Promotion
		scope Scope
		want  bool
	}{
		{
			name: "end earlier the same business day still valid",
			promo: createTestPromotion(func(p *entity.Promotion) {
				p.EndDate = time.Date(2025, 6, 15, 6, 0, 0, 0, time.UTC)
			}),
			scope: base,
			want:  true,
		},
		{
			name: "starts later the same business day",
			promo: createTestPromotion(func(p *entity.Promotion) {
				p.StartDate = time.Date(2025, 6, 15, 20, 59, 0, 0, time.UTC)
			}),
			scope: base,
			want:  true,
		},
		{
			name: "starts on next business day",
			promo: createTestPromotion(func(p *entity.Promotion) {
				p.StartDate = time.Date(2025, 6, 15, 21, 0, 0, 0, time.UTC)
			}),
			scope: base,
			want:  false,
		},
		{
			name:  "no city only matches global",
			promo: createTestPromotion(func(p *entity.Promotion) { p.Cities = []string{sanaa} }),
			scope: base,
			want:  false,
		},
		{
			name:  "global promotion matches any city",
			promo: createTestPromotion(),
			scope: Scope{Placement: entity.PlacementHomeHero, City: sanaa, Channel: entity.ChannelApp, Now: now},
			want:  true,
		},
		{
			name:  "empty channel matches any channel",
			promo: createTestPromotion(func(p *entity.Promotion) { p.Channels = entity.Channels{entity.ChannelWeb} }),
			scope: Scope{Placement: entity.PlacementHomeHero, Now: now},
			want:  true,
		},
		{
			name:  "nil promotion",
			promo: nil,
			scope: base,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eligible(tt.promo, tt.scope, day))
		})
	}
}

func TestSortForDisplay_TiesNewestFirst(t *testing.T) {
	older := createTestPromotion(func(p *entity.Promotion) { p.Title = "older" })
	newer := createTestPromotion(func(p *entity.Promotion) {
		p.Title = "newer"
		p.CreatedAt = older.CreatedAt.Add(time.Hour)
	})
	top := createTestPromotion(func(p *entity.Promotion) { p.Title = "top"; p.Order = -1 })

	promotions := []*entity.Promotion{older, newer, top}
	SortForDisplay(promotions)

	assert.Equal(t, []string{"top", "newer", "older"}, []string{promotions[0].Title, promotions[1].Title, promotions[2].Title})
}
