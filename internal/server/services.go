package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/cache"
	"github.com/noah-isme/school-services/internal/config"
	"github.com/noah-isme/school-services/internal/events"
	"github.com/noah-isme/school-services/internal/handler"
	"github.com/noah-isme/school-services/internal/reference"
	"github.com/noah-isme/school-services/internal/repository"
	"github.com/noah-isme/school-services/internal/router"
	"github.com/noah-isme/school-services/internal/service"
)

// Mount builds the application and registers the given routes.
func Mount(cfg config.Config, logger zerolog.Logger, deps router.Dependencies) *fiber.App {
	app := NewApp(cfg, logger)
	router.Register(app, cfg, deps)
	return app
}

// Roster wires students, teachers and classes. Its references are all
// local to its own storage.
func Roster(rt *Runtime) router.Dependencies {
	students := repository.NewStudentRepository(rt.DB)
	teachers := repository.NewTeacherRepository(rt.DB)
	classes := repository.NewClassRepository(rt.DB)

	listCache := cache.NewListCache(rt.Redis, "roster", rt.Config.ListCacheTTL, rt.Logger)
	classRefs := reference.NewLookupChecker("turma", classes.Exists)
	teacherRefs := reference.NewLookupChecker("professor", teachers.Exists)

	return router.Dependencies{
		StudentHandler: handler.NewStudentHandler(
			service.NewStudentService(students, classRefs, rt.Validator, listCache, rt.Bus, rt.Logger),
			rt.Validator, rt.Logger),
		TeacherHandler: handler.NewTeacherHandler(
			service.NewTeacherService(teachers, rt.Validator, listCache, rt.Bus, rt.Logger),
			rt.Validator, rt.Logger),
		ClassHandler: handler.NewClassHandler(
			service.NewClassService(classes, teacherRefs, rt.Validator, listCache, rt.Bus, rt.Logger),
			rt.Validator, rt.Logger),
		Database: rt,
	}
}

// Activities wires activities and grades. Class, teacher and student
// references are checked against the roster; activity references are resolved
// locally unless an activities URL is configured.
func Activities(rt *Runtime) (router.Dependencies, *service.OrphanReporter) {
	activities := repository.NewActivityRepository(rt.DB)
	grades := repository.NewGradeRepository(rt.DB)

	var activityRefs reference.Checker = reference.NewLookupChecker("atividade", activities.Exists)
	if rt.Config.ActivitiesURL != "" {
		activityRefs = reference.NewHTTPChecker("atividade", rt.Config.ActivitiesURL+"/activities", rt.HTTPClient, rt.Logger)
	}

	deps := router.Dependencies{
		ActivityHandler: handler.NewActivityHandler(
			service.NewActivityService(activities, rt.RosterChecker("turma", "classes"), rt.RosterChecker("professor", "teachers"), rt.Validator, rt.Bus, rt.Logger),
			rt.Validator, rt.Logger),
		GradeHandler: handler.NewGradeHandler(
			service.NewGradeService(grades, rt.RosterChecker("aluno", "students"), activityRefs, rt.Validator, rt.Bus, rt.Logger),
			rt.Validator, rt.Logger),
		Database: rt,
	}

	reporter := service.NewOrphanReporter(rt.Bus, rt.Logger,
		service.OrphanWatch{Referenced: events.EntityClass, Entity: events.EntityActivity, Count: activities.CountByClass},
		service.OrphanWatch{Referenced: events.EntityTeacher, Entity: events.EntityActivity, Count: activities.CountByTeacher},
		service.OrphanWatch{Referenced: events.EntityStudent, Entity: events.EntityGrade, Count: grades.CountByStudent},
	)

	return deps, reporter
}

// Reservations wires room reservations against roster classes.
func Reservations(rt *Runtime) (router.Dependencies, *service.OrphanReporter) {
	reservations := repository.NewReservationRepository(rt.DB)

	deps := router.Dependencies{
		ReservationHandler: handler.NewReservationHandler(
			service.NewReservationService(reservations, rt.RosterChecker("turma", "classes"), rt.Validator, rt.Bus, rt.Logger),
			rt.Validator, rt.Logger),
		Database: rt,
	}

	reporter := service.NewOrphanReporter(rt.Bus, rt.Logger,
		service.OrphanWatch{Referenced: events.EntityClass, Entity: events.EntityReservation, Count: reservations.CountByClass},
	)

	return deps, reporter
}
