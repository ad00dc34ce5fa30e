package promotion

import (
	"testing"

	"promo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Select_NoneIsExclusive(t *testing.T) {
	exclusive := discountPromotion(entity.ValueTypeFixed, 5, func(p *entity.Promotion) {
		p.Title = "exclusive"
		p.Stacking = entity.StackingNone
	})
	bigger := discountPromotion(entity.ValueTypePercentage, 50, func(p *entity.Promotion) { p.Title = "bigger" })

	for _, candidates := range [][]*entity.Promotion{{exclusive, bigger}, {bigger, exclusive}} {
		selection := NewCalculator().Select(candidates, OrderContext{Subtotal: 100})

		require.Len(t, selection, 1)
		assert.Equal(t, entity.StackingNone, selection[0].Policy)
		require.Len(t, selection[0].Applied, 1)
		assert.Equal(t, "exclusive", selection[0].Applied[0].Promotion.Title)
		assert.InDelta(t, 5, selection[0].Total, 1e-9)
	}
}

func TestCalculator_Select_BestKeepsLargest(t *testing.T) {
	small := discountPromotion(entity.ValueTypeFixed, 10, func(p *entity.Promotion) { p.Title = "small" })
	large := discountPromotion(entity.ValueTypePercentage, 25, func(p *entity.Promotion) { p.Title = "large" })
	sameTarget := discountPromotion(entity.ValueTypeFixed, 1, func(p *entity.Promotion) {
		p.Title = "stackable"
		p.Stacking = entity.StackingSameTarget
	})

	calc := NewCalculator()
	candidates := []*entity.Promotion{small, sameTarget, large}
	selection := calc.Select(candidates, OrderContext{Subtotal: 200})

	require.Len(t, selection, 1)
	require.Len(t, selection[0].Applied, 1)
	assert.Equal(t, "large", selection[0].Applied[0].Promotion.Title)
	assert.InDelta(t, 50, selection[0].Total, 1e-9)

	for _, p := range candidates {
		assert.GreaterOrEqual(t, selection[0].Total, calc.Compute(p, 200, nil))
	}
}

func TestCalculator_Select_BestTieGoesToLowerOrder(t *testing.T) {
	later := discountPromotion(entity.ValueTypeFixed, 10, func(p *entity.Promotion) { p.Title = "later"; p.Order = 5 })
	earlier := discountPromotion(entity.ValueTypeFixed, 10, func(p *entity.Promotion) { p.Title = "earlier"; p.Order = 1 })

	selection := NewCalculator().Select([]*entity.Promotion{later, earlier}, OrderContext{Subtotal: 100})

	require.Len(t, selection, 1)
	assert.Equal(t, "earlier", selection[0].Applied[0].Promotion.Title)
}

func TestCalculator_Select_StackSameTargetSumsAndCaps(t *testing.T) {
	stack := func(title string, value float64) *entity.Promotion {
		return discountPromotion(entity.ValueTypeFixed, value, func(p *entity.Promotion) {
			p.Title = title
			p.Stacking = entity.StackingSameTarget
		})
	}

	calc := NewCalculator()

	selection := calc.Select([]*entity.Promotion{stack("a", 10), stack("b", 15)}, OrderContext{Subtotal: 100})
	require.Len(t, selection, 1)
	assert.Len(t, selection[0].Applied, 2)
	assert.InDelta(t, 25, selection[0].Total, 1e-9)

	selection = calc.Select([]*entity.Promotion{stack("a", 60), stack("b", 70)}, OrderContext{Subtotal: 100})
	assert.InDelta(t, 100, selection[0].Total, 1e-9)
}

func TestCalculator_Select_SubCentSubtotalBoundsTotals(t *testing.T) {
	stack := func(value float64) *entity.Promotion {
		return discountPromotion(entity.ValueTypeFixed, value, func(p *entity.Promotion) {
			p.Stacking = entity.StackingSameTarget
		})
	}
	exclusive := discountPromotion(entity.ValueTypeFixed, 20, func(p *entity.Promotion) {
		p.Target = entity.ProductTarget("sku-1")
		p.Stacking = entity.StackingNone
	})

	const subtotal = 10.005
	selection := NewCalculator().Select([]*entity.Promotion{stack(6), stack(5), exclusive}, OrderContext{Subtotal: subtotal})

	require.Len(t, selection, 2)
	assert.InDelta(t, 10, selection[0].Total, 1e-9)
	assert.InDelta(t, 10, selection[1].Total, 1e-9)
	for _, g := range selection {
		assert.LessOrEqual(t, g.Total, subtotal)
	}
	assert.LessOrEqual(t, selection.Total(subtotal), subtotal)
	assert.InDelta(t, 10, selection.Total(subtotal), 1e-9)
}

func TestCalculator_Select_GroupsByTarget(t *testing.T) {
	store := discountPromotion(entity.ValueTypeFixed, 10)
	product := discountPromotion(entity.ValueTypeFixed, 20, func(p *entity.Promotion) {
		p.Target = entity.ProductTarget("sku-9")
	})
	otherStore := discountPromotion(entity.ValueTypeFixed, 30, func(p *entity.Promotion) {
		p.Target = entity.StoreTarget("store-2")
	})

	selection := NewCalculator().Select([]*entity.Promotion{store, product, otherStore}, OrderContext{Subtotal: 50})

	require.Len(t, selection, 3)
	assert.Equal(t, "store:store-1", selection[0].Target.Key())
	assert.Equal(t, "product:sku-9", selection[1].Target.Key())
	assert.Equal(t, "store:store-2", selection[2].Target.Key())
	assert.Len(t, selection.Promotions(), 3)
	assert.InDelta(t, 50, selection.Total(50), 1e-9)
}

func TestCalculator_Select_Empty(t *testing.T) {
	selection := NewCalculator().Select(nil, OrderContext{Subtotal: 100})

	assert.Empty(t, selection)
	assert.Zero(t, selection.Total(100))
}
