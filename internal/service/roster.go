package service

import (
	"context"

	"github.com/noah-isme/school-services/internal/cache"
	"github.com/noah-isme/school-services/internal/events"
)

// Roster list cache keys. Lists denormalize across the three roster tables,
// so every roster write drops all of them.
const (
	studentsListKey = "students"
	teachersListKey = "teachers"
	classesListKey  = "classes"
)

// rosterWrites is the post-commit side of every roster write.
type rosterWrites struct {
	cache     cache.ListCache
	publisher events.Publisher
}

func newRosterWrites(listCache cache.ListCache, publisher events.Publisher) rosterWrites {
	if listCache == nil {
		listCache = cache.NopCache{}
	}
	if publisher == nil {
		publisher = events.Nop{}
	}
	return rosterWrites{cache: listCache, publisher: publisher}
}

func (w rosterWrites) committed(ctx context.Context, entity, action string, id uint) {
	w.cache.Invalidate(ctx)
	w.publisher.Publish(ctx, entity, action, id)
}
