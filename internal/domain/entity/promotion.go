// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Target identifies the single product, store or category a promotion prices.
// Type is the tag and RefID the payload for that tag; there is never more than one reference.
type Target struct {
	Type  TargetType `json:"type"`
	RefID string     `json:"ref_id"`
}

// ProductTarget builds a Target for a product reference.
func ProductTarget(refID string) Target {
	return Target{Type: TargetProduct, RefID: refID}
}

// StoreTarget builds a Target for a store reference.
func StoreTarget(refID string) Target {
	return Target{Type: TargetStore, RefID: refID}
}

// CategoryTarget builds a Target for a category reference.
func CategoryTarget(refID string) Target {
	return Target{Type: TargetCategory, RefID: refID}
}

// IsZero reports whether no target is set.
func (t Target) IsZero() bool {
	return t.Type == "" && t.RefID == ""
}

// Key returns a stable grouping key such as "store:42".
func (t Target) Key() string {
	return string(t.Type) + ":" + t.RefID
}

// Promotion is a time-bounded, scoped promotional record.
type Promotion struct {
	ID uuid.UUID `json:"id"`

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image,omitempty"`
	LinkURL     string `json:"link,omitempty"`

	Target Target `json:"target"`

	// Value is nil for display-only promotions that carry no discount.
	Value     *float64  `json:"value,omitempty"`
	ValueType ValueType `json:"value_type,omitempty"`

	Placements Placements `json:"placements"`
	Cities     []string   `json:"cities"` // empty means every city
	Channels   Channels   `json:"channels"`

	Stacking StackingPolicy `json:"stacking"`
	Order    int            `json:"order"`

	MinQty            *int     `json:"min_qty,omitempty"`
	MinOrderSubtotal  *float64 `json:"min_order_subtotal,omitempty"`
	MaxDiscountAmount *float64 `json:"max_discount_amount,omitempty"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`

	ViewsCount       int64 `json:"views_count"`
	ClicksCount      int64 `json:"clicks_count"`
	ConversionsCount int64 `json:"conversions_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsGlobal reports whether the promotion applies to every city.
func (p *Promotion) IsGlobal() bool {
	return len(p.Cities) == 0
}

// ServesCity reports whether the promotion is shown in the given city.
func (p *Promotion) ServesCity(city string) bool {
	return p.IsGlobal() || slices.Contains(p.Cities, city)
}

// HasDiscount reports whether the promotion carries a priced value.
func (p *Promotion) HasDiscount() bool {
	return p.ValueType != "" && p.Value != nil
}
