package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/noah-isme/school-services/internal/database"
	"github.com/noah-isme/school-services/internal/models"
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

func date(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func TestRosterRepositoriesPreloadRelations(t *testing.T) {
	db := setupTestDB(t, models.RosterModels()...)
	ctx := context.Background()

	teachers := NewTeacherRepository(db)
	classes := NewClassRepository(db)
	students := NewStudentRepository(db)

	teacher := models.Teacher{Name: "Marta", Age: 41, Subject: "Matemática"}
	require.NoError(t, teachers.Create(ctx, &teacher))
	class := models.Class{Description: "Turma A", TeacherID: teacher.ID}
	require.NoError(t, classes.Create(ctx, &class))
	student := models.Student{Name: "Ana", Age: 15, ClassID: class.ID}
	require.NoError(t, students.Create(ctx, &student))

	listed, err := students.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Class)
	require.Equal(t, "Turma A", listed[0].Class.Description)

	gotClass, err := classes.GetByID(ctx, class.ID)
	require.NoError(t, err)
	require.NotNil(t, gotClass.Teacher)
	require.Equal(t, "Marta", gotClass.Teacher.Name)

	gotTeacher, err := teachers.GetByID(ctx, teacher.ID)
	require.NoError(t, err)
	require.Len(t, gotTeacher.Classes, 1)
}

func TestClassDeleteLeavesStudentsOrphaned(t *testing.T) {
	db := setupTestDB(t, models.RosterModels()...)
	ctx := context.Background()

	classes := NewClassRepository(db)
	students := NewStudentRepository(db)

	class := models.Class{Description: "Turma B", TeacherID: 99}
	require.NoError(t, classes.Create(ctx, &class))
	student := models.Student{Name: "Caio", Age: 16, ClassID: class.ID}
	require.NoError(t, students.Create(ctx, &student))

	require.NoError(t, classes.Delete(ctx, class.ID))

	got, err := students.GetByID(ctx, student.ID)
	require.NoError(t, err)
	require.Equal(t, class.ID, got.ClassID)
	require.Nil(t, got.Class)
}

func TestUpdateDoesNotWriteBackPreloadedAssociations(t *testing.T) {
	db := setupTestDB(t, models.RosterModels()...)
	ctx := context.Background()

	teachers := NewTeacherRepository(db)
	classes := NewClassRepository(db)

	teacher := models.Teacher{Name: "Rui", Age: 50, Subject: "História"}
	require.NoError(t, teachers.Create(ctx, &teacher))
	class := models.Class{Description: "Turma C", TeacherID: teacher.ID}
	require.NoError(t, classes.Create(ctx, &class))

	loaded, err := classes.GetByID(ctx, class.ID)
	require.NoError(t, err)
	loaded.Teacher.Name = "changed through association"
	loaded.Description = "Turma C2"
	require.NoError(t, classes.Update(ctx, &loaded))

	gotTeacher, err := teachers.GetByID(ctx, teacher.ID)
	require.NoError(t, err)
	require.Equal(t, "Rui", gotTeacher.Name)

	gotClass, err := classes.GetByID(ctx, class.ID)
	require.NoError(t, err)
	require.Equal(t, "Turma C2", gotClass.Description)
}

func TestDeleteMissingRowReturnsNotFound(t *testing.T) {
	db := setupTestDB(t, models.ActivitiesModels()...)
	repo := NewGradeRepository(db)

	err := repo.Delete(context.Background(), 404)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestActivityRepositoryExistsAndCounts(t *testing.T) {
	db := setupTestDB(t, models.ActivitiesModels()...)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	first := models.Activity{Name: "Prova 1", WeightPercent: 40, DueDate: date(2025, time.December, 1), ClassID: 2, TeacherID: 3}
	second := models.Activity{Name: "Trabalho", WeightPercent: 20, DueDate: date(2025, time.November, 10), ClassID: 2, TeacherID: 4}
	require.NoError(t, repo.Create(ctx, &first))
	require.NoError(t, repo.Create(ctx, &second))

	exists, err := repo.Exists(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	require.False(t, exists)

	byClass, err := repo.CountByClass(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), byClass)

	byTeacher, err := repo.CountByTeacher(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, int64(1), byTeacher)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Trabalho", listed[0].Name, "activities are ordered by due date")
}

func TestReservationRepositoryRoundTripsDate(t *testing.T) {
	db := setupTestDB(t, models.ReservationsModels()...)
	ctx := context.Background()
	repo := NewReservationRepository(db)

	reservation := models.Reservation{RoomNumber: "101", Lab: true, Date: date(2025, time.November, 20), ClassID: 2}
	require.NoError(t, repo.Create(ctx, &reservation))

	got, err := repo.GetByID(ctx, reservation.ID)
	require.NoError(t, err)
	require.Equal(t, "2025-11-20", time.Time(got.Date).Format("2006-01-02"))
	require.True(t, got.Lab)

	count, err := repo.CountByClass(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}
