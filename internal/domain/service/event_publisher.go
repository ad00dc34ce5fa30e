package service

import (
	"context"
	"time"
)

// EngagementKind names the counter an engagement event was recorded against.
type EngagementKind string

const (
	EngagementView       EngagementKind = "view"
	EngagementClick      EngagementKind = "click"
	EngagementConversion EngagementKind = "conversion"
)

// EngagementEvent is published after an engagement counter was incremented.
type EngagementEvent struct {
	RequestID    string         `json:"request_id,omitempty"` // For distributed tracing
	Kind         EngagementKind `json:"kind"`
	PromotionIDs []string       `json:"promotion_ids"`
	OccurredAt   time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEngagementEvent publishes an engagement event for downstream analytics
	PublishEngagementEvent(ctx context.Context, event *EngagementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
