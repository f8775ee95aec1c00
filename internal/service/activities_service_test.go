package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/events"
	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/internal/observability"
	"github.com/noah-isme/school-services/internal/reference"
	"github.com/noah-isme/school-services/internal/repository"
	"github.com/noah-isme/school-services/internal/validation"
)

func validActivity() dto.ActivityCreateRequest {
	return dto.ActivityCreateRequest{
		Name:          strPtr("Prova 1"),
		Description:   strPtr("Frações"),
		WeightPercent: floatPtr(30),
		DueDate:       strPtr("2025-04-10"),
		ClassID:       uintPtr(1),
		TeacherID:     uintPtr(1),
	}
}

func TestActivityCreateChecksBothReferences(t *testing.T) {
	db := setupTestDB(t, models.ActivitiesModels()...)
	repo := repository.NewActivityRepository(db)
	classes := newFakeChecker("turma")
	teachers := newFakeChecker("professor", 999)
	publisher := &recordingPublisher{}
	svc := NewActivityService(repo, classes, teachers, testValidator(), publisher, testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, validActivity())
	require.NoError(t, err)
	require.Equal(t, "2025-04-10", created.DueDate)
	require.Equal(t, []recordedEvent{{entity: events.EntityActivity, action: events.ActionCreated, id: created.ID}}, publisher.events)

	payload := validActivity()
	payload.TeacherID = uintPtr(999)
	_, err = svc.Create(ctx, payload)

	var notFound *reference.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "professor not found", err.Error())

	activities, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 1)
}

func TestActivityCreateFailsClosedWhenRosterUnavailable(t *testing.T) {
	db := setupTestDB(t, models.ActivitiesModels()...)
	repo := repository.NewActivityRepository(db)
	classes := newFakeChecker("turma")
	classes.unavailable = true
	svc := NewActivityService(repo, classes, newFakeChecker("professor"), testValidator(), nil, testLogger())

	_, err := svc.Create(context.Background(), validActivity())
	require.ErrorIs(t, err, reference.ErrDependencyUnavailable)

	activities, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, activities)
}

func TestActivityCreateValidatesPayload(t *testing.T) {
	db := setupTestDB(t, models.ActivitiesModels()...)
	svc := NewActivityService(repository.NewActivityRepository(db), newFakeChecker("turma"), newFakeChecker("professor"), testValidator(), nil, testLogger())

	payload := validActivity()
	payload.DueDate = strPtr("10/04/2025")
	_, err := svc.Create(context.Background(), payload)
	require.True(t, validation.IsValidationError(err))

	payload = validActivity()
	payload.WeightPercent = nil
	_, err = svc.Create(context.Background(), payload)
	require.True(t, validation.IsValidationError(err))
}

func TestActivityUpdateOnlyChecksPresentReferences(t *testing.T) {
	db := setupTestDB(t, models.ActivitiesModels()...)
	classes := newFakeChecker("turma")
	teachers := newFakeChecker("professor")
	svc := NewActivityService(repository.NewActivityRepository(db), classes, teachers, testValidator(), nil, testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, validActivity())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.ActivityUpdateRequest{TeacherID: uintPtr(2)})
	require.NoError(t, err)
	require.Equal(t, uint(2), updated.TeacherID)
	require.Equal(t, "Prova 1", updated.Name)
	require.Equal(t, []uint{1}, classes.calls)
	require.Equal(t, []uint{1, 2}, teachers.calls)

	_, err = svc.Update(ctx, 404, dto.ActivityUpdateRequest{Name: strPtr("x")})
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestGradeCreateRejectsUnknownActivity(t *testing.T) {
	db := setupTestDB(t, models.ActivitiesModels()...)
	activities := repository.NewActivityRepository(db)
	grades := repository.NewGradeRepository(db)
	svc := NewGradeService(grades, newFakeChecker("aluno"), reference.NewLookupChecker("atividade", activities.Exists), testValidator(), nil, testLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.GradeCreateRequest{Score: floatPtr(8.5), StudentID: uintPtr(1), ActivityID: uintPtr(5)})
	var notFound *reference.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "atividade not found", err.Error())

	activity := models.Activity{Name: "Prova 1", WeightPercent: 30, DueDate: datatypes.Date{}, ClassID: 1, TeacherID: 1}
	require.NoError(t, activities.Create(ctx, &activity))

	grade, err := svc.Create(ctx, dto.GradeCreateRequest{Score: floatPtr(8.5), StudentID: uintPtr(1), ActivityID: uintPtr(activity.ID)})
	require.NoError(t, err)
	require.InDelta(t, 8.5, grade.Score, 0.0001)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestGradeUpdateScoreSkipsReferenceChecks(t *testing.T) {
	db := setupTestDB(t, models.ActivitiesModels()...)
	students := newFakeChecker("aluno")
	activities := newFakeChecker("atividade")
	svc := NewGradeService(repository.NewGradeRepository(db), students, activities, testValidator(), nil, testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.GradeCreateRequest{Score: floatPtr(6), StudentID: uintPtr(2), ActivityID: uintPtr(3)})
	require.NoError(t, err)

	students.unavailable = true
	updated, err := svc.Update(ctx, created.ID, dto.GradeUpdateRequest{Score: floatPtr(9)})
	require.NoError(t, err)
	require.InDelta(t, 9, updated.Score, 0.0001)

	_, err = svc.Update(ctx, created.ID, dto.GradeUpdateRequest{StudentID: uintPtr(4)})
	require.ErrorIs(t, err, reference.ErrDependencyUnavailable)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrGradeNotFound)
}

func TestReservationCreateDefaultsLab(t *testing.T) {
	db := setupTestDB(t, models.ReservationsModels()...)
	classes := newFakeChecker("turma", 8)
	svc := NewReservationService(repository.NewReservationRepository(db), classes, testValidator(), nil, testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.ReservationCreateRequest{RoomNumber: strPtr("101"), Date: strPtr("2025-05-02"), ClassID: uintPtr(1)})
	require.NoError(t, err)
	require.False(t, created.Lab)
	require.Equal(t, "2025-05-02", created.Date)

	updated, err := svc.Update(ctx, created.ID, dto.ReservationUpdateRequest{Lab: boolPtr(true)})
	require.NoError(t, err)
	require.True(t, updated.Lab)
	require.Equal(t, "101", updated.RoomNumber)

	_, err = svc.Create(ctx, dto.ReservationCreateRequest{RoomNumber: strPtr("102"), Date: strPtr("2025-05-02"), ClassID: uintPtr(8)})
	var notFound *reference.NotFoundError
	require.ErrorAs(t, err, &notFound)

	require.ErrorIs(t, svc.Delete(ctx, 77), ErrReservationNotFound)
}

func TestOrphanReporterCountsDanglingRows(t *testing.T) {
	db := setupTestDB(t, models.ReservationsModels()...)
	repo := repository.NewReservationRepository(db)
	ctx := context.Background()
	for _, room := range []string{"101", "102"} {
		require.NoError(t, repo.Create(ctx, &models.Reservation{RoomNumber: room, ClassID: 3}))
	}

	subscriber := &fakeSubscriber{}
	reporter := NewOrphanReporter(subscriber, testLogger(), OrphanWatch{
		Referenced: events.EntityClass,
		Entity:     events.EntityReservation,
		Count:      repo.CountByClass,
	})
	stop, err := reporter.Start()
	require.NoError(t, err)

	counter := observability.OrphanedReferences().WithLabelValues(events.EntityReservation, events.EntityClass)
	before := testutil.ToFloat64(counter)

	handle := subscriber.handlers["school.class.deleted"]
	require.NotNil(t, handle)
	handle(ctx, events.Event{Entity: events.EntityClass, ID: 3})
	handle(ctx, events.Event{Entity: events.EntityClass, ID: 4})

	require.InDelta(t, before+2, testutil.ToFloat64(counter), 0.0001)

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 2)

	stop()
	require.Equal(t, 1, subscriber.stopped)
}
