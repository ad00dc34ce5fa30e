package promotion

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"promo/internal/domain/entity"
)

// Scope is the rendering context a promotion is resolved for.
type Scope struct {
	Placement entity.Placement
	City      string         // empty: only city-agnostic promotions qualify
	Channel   entity.Channel // empty: any channel qualifies
	Now       time.Time
}

// Eligible reports whether p may be shown for scope on the business day of scope.Now.
func Eligible(p *entity.Promotion, scope Scope, day BusinessDay) bool {
	if p == nil || !p.IsActive {
		return false
	}
	if !p.Placements.Contains(scope.Placement) {
		return false
	}
	if !OverlapsDay(p, day) {
		return false
	}
	if !matchesCity(p, scope.City) {
		return false
	}

	return scope.Channel == "" || p.Channels.Contains(scope.Channel)
}

// OverlapsDay reports whether the promotion's validity window touches the business day.
// A promotion stays valid for its whole end day even after its end time has passed.
func OverlapsDay(p *entity.Promotion, day BusinessDay) bool {
	return !p.StartDate.After(day.End) && !p.EndDate.Before(day.Start)
}

func matchesCity(p *entity.Promotion, city string) bool {
	if city == "" {
		return p.IsGlobal()
	}

	return p.ServesCity(city)
}

// Filter returns the eligible promotions in display order.
func Filter(candidates []*entity.Promotion, scope Scope, offsetHours int) []*entity.Promotion {
	day := BusinessDayOf(scope.Now, offsetHours)

	result := make([]*entity.Promotion, 0, len(candidates))
	for _, p := range candidates {
		if Eligible(p, scope, day) {
			result = append(result, p)
		}
	}

	SortForDisplay(result)

	return result
}

// SortForDisplay orders promotions by ascending Order, newest first on ties.
func SortForDisplay(promotions []*entity.Promotion) {
	slices.SortStableFunc(promotions, func(a, b *entity.Promotion) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}

		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})
}
