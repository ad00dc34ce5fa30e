// Package entity contains the core business objects of the project.
package entity

import "slices"

// Placement is a named UI slot that can display promotions.
type Placement string

const (
	PlacementHomeHero       Placement = "home_hero"
	PlacementHomeStrip      Placement = "home_strip"
	PlacementCategoryHeader Placement = "category_header"
	PlacementCategoryFeed   Placement = "category_feed"
	PlacementStoreHeader    Placement = "store_header"
	PlacementSearchBanner   Placement = "search_banner"
	PlacementCart           Placement = "cart"
	PlacementCheckout       Placement = "checkout"
	PlacementOnboarding     Placement = "onboarding"
)

// String returns the string representation of the Placement.
func (p Placement) String() string {
	return string(p)
}

// IsValid checks if the Placement is a valid value.
func (p Placement) IsValid() bool {
	switch p {
	case PlacementHomeHero, PlacementHomeStrip, PlacementCategoryHeader, PlacementCategoryFeed,
		PlacementStoreHeader, PlacementSearchBanner, PlacementCart, PlacementCheckout, PlacementOnboarding:
		return true
	default:
		return false
	}
}

// Placements is a slice of Placement for convenience.
type Placements []Placement

// Contains checks if the placements slice contains a specific placement.
func (ps Placements) Contains(p Placement) bool {
	return slices.Contains(ps, p)
}

// ToStrings converts Placements to []string for persistence.
func (ps Placements) ToStrings() []string {
	result := make([]string, len(ps))
	for i, p := range ps {
		result[i] = p.String()
	}

	return result
}

// PlacementsFromStrings converts []string to Placements, filtering out invalid values.
func PlacementsFromStrings(ss []string) Placements {
	result := make(Placements, 0, len(ss))
	for _, s := range ss {
		if p := Placement(s); p.IsValid() {
			result = append(result, p)
		}
	}

	return result
}

// Channel is the client surface a promotion is shown on.
type Channel string

const (
	ChannelApp Channel = "app"
	ChannelWeb Channel = "web"
)

// String returns the string representation of the Channel.
func (c Channel) String() string {
	return string(c)
}

// IsValid checks if the Channel is a valid value.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelApp, ChannelWeb:
		return true
	default:
		return false
	}
}

// Channels is a slice of Channel for convenience.
type Channels []Channel

// Contains checks if the channels slice contains a specific channel.
func (cs Channels) Contains(c Channel) bool {
	return slices.Contains(cs, c)
}

// ToStrings converts Channels to []string for persistence.
func (cs Channels) ToStrings() []string {
	result := make([]string, len(cs))
	for i, c := range cs {
		result[i] = c.String()
	}

	return result
}

// ChannelsFromStrings converts []string to Channels, filtering out invalid values.
func ChannelsFromStrings(ss []string) Channels {
	result := make(Channels, 0, len(ss))
	for _, s := range ss {
		if c := Channel(s); c.IsValid() {
			result = append(result, c)
		}
	}

	return result
}

// DefaultChannels is applied when a promotion is created without channels.
func DefaultChannels() Channels {
	return Channels{ChannelApp}
}

// StackingPolicy governs whether promotions for the same target may combine.
type StackingPolicy string

const (
	// StackingNone makes a promotion exclusive within its target group.
	StackingNone StackingPolicy = "none"
	// StackingBest keeps only the largest discount within the target group.
	StackingBest StackingPolicy = "best"
	// StackingSameTarget applies every promotion of the group together.
	StackingSameTarget StackingPolicy = "stack_same_target"
)

// String returns the string representation of the StackingPolicy.
func (s StackingPolicy) String() string {
	return string(s)
}

// IsValid checks if the StackingPolicy is a valid value.
func (s StackingPolicy) IsValid() bool {
	switch s {
	case StackingNone, StackingBest, StackingSameTarget:
		return true
	default:
		return false
	}
}

// ValueType says how a promotion's value turns into a discount.
type ValueType string

const (
	ValueTypePercentage ValueType = "percentage"
	ValueTypeFixed      ValueType = "fixed"
)

// String returns the string representation of the ValueType.
func (v ValueType) String() string {
	return string(v)
}

// IsValid checks if the ValueType is a valid value.
func (v ValueType) IsValid() bool {
	switch v {
	case ValueTypePercentage, ValueTypeFixed:
		return true
	default:
		return false
	}
}

// TargetType is the kind of entity a promotion discounts.
type TargetType string

const (
	TargetProduct  TargetType = "product"
	TargetStore    TargetType = "store"
	TargetCategory TargetType = "category"
)

// String returns the string representation of the TargetType.
func (t TargetType) String() string {
	return string(t)
}

// IsValid checks if the TargetType is a valid value.
func (t TargetType) IsValid() bool {
	switch t {
	case TargetProduct, TargetStore, TargetCategory:
		return true
	default:
		return false
	}
}
