package promotion

import (
	"math"

	"promo/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculator computes bounded discounts. The zero value caps both value types.
type Calculator struct {
	legacyFixedCap bool
}

// CalculatorOption configures a Calculator.
type CalculatorOption func(*Calculator)

// WithLegacyFixedCap restores the legacy rule where maxDiscountAmount caps
// percentage promotions only and fixed promotions are bounded by the subtotal alone.
func WithLegacyFixedCap(enabled bool) CalculatorOption {
	return func(c *Calculator) {
		c.legacyFixedCap = enabled
	}
}

// NewCalculator creates a Calculator.
func NewCalculator(opts ...CalculatorOption) Calculator {
	var c Calculator
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Compute returns the discount p grants on an order, rounded half-up to 2 decimals.
// It never fails: unusable inputs such as a negative subtotal yield zero.
func (c Calculator) Compute(p *entity.Promotion, orderSubtotal float64, itemQty *int) float64 {
	return c.compute(p, orderSubtotal, itemQty).InexactFloat64()
}

func (c Calculator) compute(p *entity.Promotion, orderSubtotal float64, itemQty *int) decimal.Decimal {
	if p == nil || !p.HasDiscount() {
		return decimal.Zero
	}

	subtotal, ok := toDecimal(orderSubtotal)
	if !ok || !subtotal.IsPositive() {
		return decimal.Zero
	}

	if p.MinOrderSubtotal != nil {
		minSubtotal, ok := toDecimal(*p.MinOrderSubtotal)
		if ok && subtotal.LessThan(minSubtotal) {
			return decimal.Zero
		}
	}

	if p.MinQty != nil && (itemQty == nil || *itemQty < *p.MinQty) {
		return decimal.Zero
	}

	value, ok := toDecimal(*p.Value)
	if !ok || value.IsNegative() {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch p.ValueType {
	case entity.ValueTypePercentage:
		discount = subtotal.Mul(value).Div(hundred)
	case entity.ValueTypeFixed:
		discount = value
	default:
		return decimal.Zero
	}

	if p.MaxDiscountAmount != nil && c.capApplies(p.ValueType) {
		if maxDiscount, ok := toDecimal(*p.MaxDiscountAmount); ok {
			discount = decimal.Min(discount, maxDiscount)
		}
	}

	if discount.IsNegative() {
		return decimal.Zero
	}

	// decimal rounds half away from zero, which is half-up for non-negative amounts.
	return clampToCents(discount, subtotal)
}

// clampToCents rounds amount to cents and bounds it by limit rounded down, so a
// sub-cent limit can never be exceeded by rounding.
func clampToCents(amount, limit decimal.Decimal) decimal.Decimal {
	return decimal.Min(amount.Round(2), limit.RoundFloor(2))
}

func (c Calculator) capApplies(valueType entity.ValueType) bool {
	return !c.legacyFixedCap || valueType == entity.ValueTypePercentage
}

func toDecimal(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}

	return decimal.NewFromFloat(f), true
}
