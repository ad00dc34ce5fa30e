package promotion

import (
	"promo/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderContext is the priced amount a set of promotions is evaluated against.
type OrderContext struct {
	Subtotal float64
	ItemQty  *int
}

// Applied is a promotion that survived stacking together with its standalone discount.
type Applied struct {
	Promotion *entity.Promotion `json:"promotion"`
	Discount  float64           `json:"discount"`
}

// Group is the outcome of stacking for one pricing target.
type Group struct {
	Target  entity.Target         `json:"target"`
	Policy  entity.StackingPolicy `json:"policy"` // policy that decided the group
	Applied []Applied             `json:"applied"`
	Total   float64               `json:"total"` // combined discount, within [0, subtotal]
}

// Selection is the stacking result for every target present in the candidates.
type Selection []Group

// Promotions returns the surviving promotions in group order.
func (s Selection) Promotions() []*entity.Promotion {
	var result []*entity.Promotion
	for _, g := range s {
		for _, a := range g.Applied {
			result = append(result, a.Promotion)
		}
	}

	return result
}

// Total sums the group totals and caps the result at subtotal.
func (s Selection) Total(subtotal float64) float64 {
	total := decimal.Zero
	for _, g := range s {
		total = total.Add(decimal.NewFromFloat(g.Total))
	}

	return capToSubtotal(total, subtotal).InexactFloat64()
}

// Select applies each target group's stacking policy to candidates, which are
// expected in display order. Groups keep the order in which their target first
// appears; targets with no candidates produce no group.
func (c Calculator) Select(candidates []*entity.Promotion, order OrderContext) Selection {
	groups := make(map[string][]*entity.Promotion)
	var keys []string

	for _, p := range candidates {
		if p == nil {
			continue
		}

		key := p.Target.Key()
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], p)
	}

	selection := make(Selection, 0, len(keys))
	for _, key := range keys {
		selection = append(selection, c.selectGroup(groups[key], order))
	}

	return selection
}

func (c Calculator) selectGroup(members []*entity.Promotion, order OrderContext) Group {
	target := members[0].Target

	for _, p := range members {
		if p.Stacking == entity.StackingNone {
			discount := c.compute(p, order.Subtotal, order.ItemQty)

			return Group{
				Target:  target,
				Policy:  entity.StackingNone,
				Applied: []Applied{{Promotion: p, Discount: discount.InexactFloat64()}},
				Total:   discount.InexactFloat64(),
			}
		}
	}

	for _, p := range members {
		if p.Stacking != entity.StackingSameTarget {
			return c.selectBest(target, members, order)
		}
	}

	return c.stackAll(target, members, order)
}

// selectBest keeps the member with the largest discount; ties go to the lower Order,
// then to the earlier candidate.
func (c Calculator) selectBest(target entity.Target, members []*entity.Promotion, order OrderContext) Group {
	var (
		best         *entity.Promotion
		bestDiscount decimal.Decimal
	)

	for _, p := range members {
		discount := c.compute(p, order.Subtotal, order.ItemQty)
		if best == nil ||
			discount.GreaterThan(bestDiscount) ||
			(discount.Equal(bestDiscount) && p.Order < best.Order) {
			best = p
			bestDiscount = discount
		}
	}

	return Group{
		Target:  target,
		Policy:  entity.StackingBest,
		Applied: []Applied{{Promotion: best, Discount: bestDiscount.InexactFloat64()}},
		Total:   bestDiscount.InexactFloat64(),
	}
}

// stackAll applies every member and caps the summed discount at the subtotal.
func (c Calculator) stackAll(target entity.Target, members []*entity.Promotion, order OrderContext) Group {
	applied := make([]Applied, 0, len(members))
	sum := decimal.Zero

	for _, p := range members {
		discount := c.compute(p, order.Subtotal, order.ItemQty)
		sum = sum.Add(discount)
		applied = append(applied, Applied{Promotion: p, Discount: discount.InexactFloat64()})
	}

	return Group{
		Target:  target,
		Policy:  entity.StackingSameTarget,
		Applied: applied,
		Total:   capToSubtotal(sum, order.Subtotal).InexactFloat64(),
	}
}

func capToSubtotal(amount decimal.Decimal, subtotal float64) decimal.Decimal {
	limit, ok := toDecimal(subtotal)
	if !ok || !limit.IsPositive() {
		return decimal.Zero
	}

	if amount.IsNegative() {
		return decimal.Zero
	}

	return clampToCents(amount, limit)
}
