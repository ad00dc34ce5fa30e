package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"promo/config"
	deliverycontext "promo/internal/delivery/context"
	domainerrors "promo/internal/domain/errors"
	"promo/internal/domain/repository"
	"promo/internal/domain/service"
	"promo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type viewBatch struct {
	ctx context.Context
	ids []uuid.UUID
}

// EngagementService records analytics counters. Views are written by a bounded
// worker pool, clicks and conversions synchronously.
type EngagementService struct {
	promotionRepo repository.PromotionRepository
	publisher     service.EventPublisher
	logger        *slog.Logger

	workers      int
	writeTimeout time.Duration
	queue        chan viewBatch

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// EngagementServiceParams holds dependencies for EngagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In
	fx.Lifecycle

	PromotionRepo repository.PromotionRepository
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewEngagementService creates the tracker and ties its worker pool to the fx lifecycle.
func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	settings := params.Config.PromotionSettings()
	srv := newEngagementService(params.PromotionRepo, params.Publisher, params.Logger, settings)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			srv.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Stop(ctx)
		},
	})

	return srv
}

func newEngagementService(
	promotionRepo repository.PromotionRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
	settings *config.PromotionConfig,
) *EngagementService {
	return &EngagementService{
		promotionRepo: promotionRepo,
		publisher:     publisher,
		logger:        logger,
		workers:       settings.EngagementWorkers,
		writeTimeout:  settings.EngagementWriteTimeout,
		queue:         make(chan viewBatch, settings.EngagementQueueSize),
	}
}

func (srv *EngagementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start launches the view workers.
func (srv *EngagementService) Start() {
	for range srv.workers {
		srv.wg.Add(1)
		go srv.worker()
	}
}

// Stop closes the queue and waits for queued view batches to drain or ctx to end.
func (srv *EngagementService) Stop(ctx context.Context) error {
	srv.mu.Lock()
	if !srv.stopped {
		srv.stopped = true
		close(srv.queue)
	}
	srv.mu.Unlock()

	done := make(chan struct{})
	go func() {
		srv.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "engagement workers did not drain")
	}
}

func (srv *EngagementService) worker() {
	defer srv.wg.Done()

	for batch := range srv.queue {
		srv.writeViews(batch)
	}
}

// RecordViews queues one batched view increment. It never blocks: a full queue drops the batch.
func (srv *EngagementService) RecordViews(ctx context.Context, ids []uuid.UUID) {
	if len(ids) == 0 {
		return
	}

	batch := viewBatch{
		// Once dispatched the write must not depend on the request's lifetime.
		ctx: context.WithoutCancel(ctx),
		ids: append([]uuid.UUID(nil), ids...),
	}

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.stopped {
		srv.log(ctx).Warn("Engagement tracker stopped, dropping views", slog.Int("count", len(ids)))

		return
	}

	select {
	case srv.queue <- batch:
	default:
		srv.log(ctx).Warn("Engagement queue full, dropping views", slog.Int("count", len(ids)))
	}
}

func (srv *EngagementService) writeViews(batch viewBatch) {
	ctx, cancel := context.WithTimeout(batch.ctx, srv.writeTimeout)
	defer cancel()

	if err := srv.promotionRepo.IncrementViews(ctx, batch.ids); err != nil {
		srv.log(ctx).Warn("Failed to record promotion views", slog.Int("count", len(batch.ids)), slog.Any("error", err))

		return
	}

	srv.publish(ctx, service.EngagementView, batch.ids...)
}

// RecordClick increments the click counter of the promotion.
func (srv *EngagementService) RecordClick(ctx context.Context, id uuid.UUID) error {
	return srv.record(ctx, service.EngagementClick, id, srv.promotionRepo.IncrementClicks)
}

// RecordConversion increments the conversion counter of the promotion.
func (srv *EngagementService) RecordConversion(ctx context.Context, id uuid.UUID) error {
	return srv.record(ctx, service.EngagementConversion, id, srv.promotionRepo.IncrementConversions)
}

func (srv *EngagementService) record(
	ctx context.Context,
	kind service.EngagementKind,
	id uuid.UUID,
	increment func(context.Context, uuid.UUID) error,
) error {
	err := increment(ctx, id)
	if errors.Is(err, repository.ErrPromotionNotFound) {
		return errors.Wrapf(domainerrors.ErrPromotionNotFound, "record %s for %s", kind, id)
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to record promotion engagement",
			slog.String("kind", string(kind)),
			slog.String("promotionID", id.String()),
			slog.Any("error", err),
		)

		return nil
	}

	srv.publish(ctx, kind, id)

	return nil
}

func (srv *EngagementService) publish(ctx context.Context, kind service.EngagementKind, ids ...uuid.UUID) {
	promotionIDs := make([]string, len(ids))
	for i, id := range ids {
		promotionIDs[i] = id.String()
	}

	event := &service.EngagementEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Kind:         kind,
		PromotionIDs: promotionIDs,
		OccurredAt:   time.Now().UTC(),
	}

	if err := srv.publisher.PublishEngagementEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish engagement event", slog.String("kind", string(kind)), slog.Any("error", err))
	}
}
