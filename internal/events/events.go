// Package events publishes write notifications between services.
package events

import (
	"context"
	"fmt"
	"time"
)

// Actions emitted after a successful write.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Entity names used in subjects.
const (
	EntityStudent     = "student"
	EntityTeacher     = "teacher"
	EntityClass       = "class"
	EntityActivity    = "activity"
	EntityGrade       = "grade"
	EntityReservation = "reservation"
)

// Event is the payload published for every write.
type Event struct {
	Type       string    `json:"type"`
	Entity     string    `json:"entity"`
	ID         uint      `json:"id"`
	Service    string    `json:"service"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Subject returns the subject an entity action is published on.
func Subject(entity, action string) string {
	return fmt.Sprintf("school.%s.%s", entity, action)
}

// Publisher emits write events. Implementations must not fail the caller's
// write; delivery problems are logged.
type Publisher interface {
	Publish(ctx context.Context, entity, action string, id uint)
}

// Subscriber delivers events published on a subject.
type Subscriber interface {
	Subscribe(subject string, handle func(context.Context, Event)) (func(), error)
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, string, string, uint) {}

func (Nop) Subscribe(string, func(context.Context, Event)) (func(), error) {
	return func() {}, nil
}
