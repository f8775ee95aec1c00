package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/events"
	"github.com/noah-isme/school-services/internal/observability"
)

// CountFunc counts local rows that reference the given id.
type CountFunc func(ctx context.Context, id uint) (int64, error)

// OrphanWatch pairs a remote entity deletion with the local rows pointing at it.
type OrphanWatch struct {
	Referenced string // entity deleted upstream, e.g. events.EntityClass
	Entity     string // local entity holding the reference
	Count      CountFunc
}

// OrphanReporter logs and counts rows left dangling by upstream deletes.
// It never modifies storage.
type OrphanReporter struct {
	subscriber events.Subscriber
	watches    []OrphanWatch
	logger     zerolog.Logger
}

// NewOrphanReporter builds a reporter for the given watches.
func NewOrphanReporter(subscriber events.Subscriber, logger zerolog.Logger, watches ...OrphanWatch) *OrphanReporter {
	if subscriber == nil {
		subscriber = events.Nop{}
	}
	return &OrphanReporter{
		subscriber: subscriber,
		watches:    watches,
		logger:     logger.With().Str("component", "orphan_reporter").Logger(),
	}
}

// Start subscribes to the delete subject of every watched entity. The
// returned function drains all subscriptions.
func (r *OrphanReporter) Start() (func(), error) {
	stops := make([]func(), 0, len(r.watches))
	stopAll := func() {
		for _, stop := range stops {
			stop()
		}
	}

	for _, watch := range r.watches {
		watch := watch
		subject := events.Subject(watch.Referenced, events.ActionDeleted)
		stop, err := r.subscriber.Subscribe(subject, func(ctx context.Context, event events.Event) {
			r.handle(ctx, watch, event)
		})
		if err != nil {
			stopAll()
			return nil, fmt.Errorf("watch %s: %w", subject, err)
		}
		stops = append(stops, stop)
	}

	return stopAll, nil
}

func (r *OrphanReporter) handle(ctx context.Context, watch OrphanWatch, event events.Event) {
	count, err := watch.Count(ctx, event.ID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("entity", watch.Entity).
			Str("referenced", watch.Referenced).
			Uint("referenced_id", event.ID).
			Msg("failed to count orphaned rows")
		return
	}
	if count == 0 {
		return
	}

	observability.OrphanedReferences().WithLabelValues(watch.Entity, watch.Referenced).Add(float64(count))
	r.logger.Warn().
		Str("entity", watch.Entity).
		Str("referenced", watch.Referenced).
		Uint("referenced_id", event.ID).
		Int64("rows", count).
		Msg("rows reference a deleted entity")
}
