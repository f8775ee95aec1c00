package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/school-services/internal/database"
	"github.com/noah-isme/school-services/internal/events"
	"github.com/noah-isme/school-services/internal/reference"
	"github.com/noah-isme/school-services/internal/validation"
)

func setupTestDB(t *testing.T, tables ...interface{}) *gorm.DB {
	t.Helper()
	db, err := database.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(tables...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func testValidator() PayloadValidator {
	return validation.New()
}

type fakeChecker struct {
	entity      string
	missing     map[uint]bool
	unavailable bool
	calls       []uint
}

func newFakeChecker(entity string, missing ...uint) *fakeChecker {
	checker := &fakeChecker{entity: entity, missing: map[uint]bool{}}
	for _, id := range missing {
		checker.missing[id] = true
	}
	return checker
}

func (f *fakeChecker) Entity() string { return f.entity }

func (f *fakeChecker) Check(_ context.Context, field string, id uint) reference.Result {
	f.calls = append(f.calls, id)
	result := reference.Result{Outcome: reference.OK, Field: field, Entity: f.entity, ID: id}
	switch {
	case f.unavailable:
		result.Outcome = reference.DependencyUnavailable
		result.Cause = fmt.Errorf("dial tcp: connection refused")
	case f.missing[id]:
		result.Outcome = reference.NotFound
	}
	return result
}

type recordedEvent struct {
	entity string
	action string
	id     uint
}

type recordingPublisher struct {
	events []recordedEvent
}

func (r *recordingPublisher) Publish(_ context.Context, entity, action string, id uint) {
	r.events = append(r.events, recordedEvent{entity: entity, action: action, id: id})
}

type fakeSubscriber struct {
	handlers map[string]func(context.Context, events.Event)
	stopped  int
}

func (f *fakeSubscriber) Subscribe(subject string, handle func(context.Context, events.Event)) (func(), error) {
	if f.handlers == nil {
		f.handlers = map[string]func(context.Context, events.Event){}
	}
	f.handlers[subject] = handle
	return func() { f.stopped++ }, nil
}

func strPtr(value string) *string     { return &value }
func intPtr(value int) *int           { return &value }
func uintPtr(value uint) *uint        { return &value }
func floatPtr(value float64) *float64 { return &value }
func boolPtr(value bool) *bool        { return &value }
