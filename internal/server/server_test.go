package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-services/internal/config"
	"github.com/noah-isme/school-services/internal/models"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testConfig(service config.Service, rosterURL string) config.Config {
	return config.Config{
		Service:           service,
		AppName:           string(service),
		AppEnv:            "test",
		DatabaseURL:       fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		RosterURL:         rosterURL,
		ValidationTimeout: time.Second,
		ListCacheTTL:      time.Minute,
	}
}

func openRuntime(t *testing.T, cfg config.Config, tables ...interface{}) *Runtime {
	t.Helper()
	rt, err := Open(context.Background(), cfg, zerolog.Nop(), tables...)
	require.NoError(t, err)
	t.Cleanup(rt.Close)
	return rt
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

type services struct {
	roster       *fiber.App
	rosterServer *httptest.Server
	activities   *fiber.App
	reservations *fiber.App
}

func startServices(t *testing.T) services {
	t.Helper()
	logger := zerolog.Nop()

	rosterCfg := testConfig(config.ServiceRoster, "")
	roster := Mount(rosterCfg, logger, Roster(openRuntime(t, rosterCfg, models.RosterModels()...)))
	rosterServer := httptest.NewServer(adaptor.FiberApp(roster))
	t.Cleanup(rosterServer.Close)

	activitiesCfg := testConfig(config.ServiceActivities, rosterServer.URL+"/api")
	activityDeps, _ := Activities(openRuntime(t, activitiesCfg, models.ActivitiesModels()...))

	reservationsCfg := testConfig(config.ServiceReservations, rosterServer.URL+"/api")
	reservationDeps, _ := Reservations(openRuntime(t, reservationsCfg, models.ReservationsModels()...))

	return services{
		roster:       roster,
		rosterServer: rosterServer,
		activities:   Mount(activitiesCfg, logger, activityDeps),
		reservations: Mount(reservationsCfg, logger, reservationDeps),
	}
}

func createdID(t *testing.T, body envelope) uint {
	t.Helper()
	var record struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &record))
	require.NotZero(t, record.ID)
	return record.ID
}

func TestActivityWithUnknownTeacherIsRejected(t *testing.T) {
	s := startServices(t)

	status, body := call(t, s.roster, http.MethodPost, "/api/teachers", `{"nome":"Marta","idade":41,"materia":"Matemática"}`)
	require.Equal(t, fiber.StatusCreated, status)
	teacherID := createdID(t, body)

	status, body = call(t, s.roster, http.MethodPost, "/api/classes", fmt.Sprintf(`{"descricao":"Turma A","professor_id":%d}`, teacherID))
	require.Equal(t, fiber.StatusCreated, status)
	classID := createdID(t, body)

	status, body = call(t, s.activities, http.MethodPost, "/api/activities",
		fmt.Sprintf(`{"nome_atividade":"Prova 1","peso_porcento":30,"data_entrega":"2025-04-10","turma_id":%d,"professor_id":999}`, classID))
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "professor not found", body.Message)

	status, body = call(t, s.activities, http.MethodGet, "/api/activities", "")
	require.Equal(t, fiber.StatusOK, status)
	require.JSONEq(t, `[]`, string(body.Data))
}

func TestActivityRoundTripAndPartialUpdate(t *testing.T) {
	s := startServices(t)

	_, body := call(t, s.roster, http.MethodPost, "/api/teachers", `{"nome":"Marta","idade":41,"materia":"Matemática"}`)
	teacherID := createdID(t, body)
	_, body = call(t, s.roster, http.MethodPost, "/api/classes", fmt.Sprintf(`{"descricao":"Turma A","professor_id":%d}`, teacherID))
	classID := createdID(t, body)

	payload := fmt.Sprintf(`{"nome_atividade":"Prova 1","descricao":"Frações","peso_porcento":30,"data_entrega":"2025-04-10","turma_id":%d,"professor_id":%d}`, classID, teacherID)
	status, body := call(t, s.activities, http.MethodPost, "/api/activities", payload)
	require.Equal(t, fiber.StatusCreated, status)
	activityID := createdID(t, body)

	status, body = call(t, s.activities, http.MethodGet, fmt.Sprintf("/api/activities/%d", activityID), "")
	require.Equal(t, fiber.StatusOK, status)
	require.JSONEq(t, fmt.Sprintf(`{"id":%d,"nome_atividade":"Prova 1","descricao":"Frações","peso_porcento":30,"data_entrega":"2025-04-10","turma_id":%d,"professor_id":%d}`,
		activityID, classID, teacherID), string(body.Data))

	status, _ = call(t, s.activities, http.MethodPut, fmt.Sprintf("/api/activities/%d", activityID), `{"peso_porcento":40}`)
	require.Equal(t, fiber.StatusOK, status)

	_, body = call(t, s.activities, http.MethodGet, fmt.Sprintf("/api/activities/%d", activityID), "")
	require.JSONEq(t, fmt.Sprintf(`{"id":%d,"nome_atividade":"Prova 1","descricao":"Frações","peso_porcento":40,"data_entrega":"2025-04-10","turma_id":%d,"professor_id":%d}`,
		activityID, classID, teacherID), string(body.Data))

	status, _ = call(t, s.activities, http.MethodDelete, fmt.Sprintf("/api/activities/%d", activityID), "")
	require.Equal(t, fiber.StatusOK, status)
	status, _ = call(t, s.activities, http.MethodGet, fmt.Sprintf("/api/activities/%d", activityID), "")
	require.Equal(t, fiber.StatusNotFound, status)
	status, _ = call(t, s.activities, http.MethodDelete, fmt.Sprintf("/api/activities/%d", activityID), "")
	require.Equal(t, fiber.StatusNotFound, status)
}

func TestGradeNeedsStudentOnRosterAndLocalActivity(t *testing.T) {
	s := startServices(t)

	_, body := call(t, s.roster, http.MethodPost, "/api/teachers", `{"nome":"Marta","idade":41,"materia":"Matemática"}`)
	teacherID := createdID(t, body)
	_, body = call(t, s.roster, http.MethodPost, "/api/classes", fmt.Sprintf(`{"descricao":"Turma A","professor_id":%d}`, teacherID))
	classID := createdID(t, body)
	status, body := call(t, s.roster, http.MethodPost, "/api/students", fmt.Sprintf(`{"nome":"Ana","idade":15,"turma_id":%d}`, classID))
	require.Equal(t, fiber.StatusCreated, status)
	studentID := createdID(t, body)

	status, body = call(t, s.activities, http.MethodPost, "/api/grades", fmt.Sprintf(`{"nota":8,"aluno_id":%d,"atividade_id":1}`, studentID))
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "atividade not found", body.Message)

	_, body = call(t, s.activities, http.MethodPost, "/api/activities",
		fmt.Sprintf(`{"nome_atividade":"Prova 1","peso_porcento":30,"data_entrega":"2025-04-10","turma_id":%d,"professor_id":%d}`, classID, teacherID))
	activityID := createdID(t, body)

	status, body = call(t, s.activities, http.MethodPost, "/api/grades", fmt.Sprintf(`{"nota":8,"aluno_id":%d,"atividade_id":%d}`, studentID+100, activityID))
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "aluno not found", body.Message)

	status, _ = call(t, s.activities, http.MethodPost, "/api/grades", fmt.Sprintf(`{"nota":8,"aluno_id":%d,"atividade_id":%d}`, studentID, activityID))
	require.Equal(t, fiber.StatusCreated, status)
}

func TestRosterUnreachableFailsClosed(t *testing.T) {
	s := startServices(t)
	s.rosterServer.Close()

	status, body := call(t, s.reservations, http.MethodPost, "/api/reservations", `{"num_sala":"101","data":"2025-05-02","turma_id":1}`)
	require.Equal(t, fiber.StatusServiceUnavailable, status)
	require.Equal(t, "turma validation unavailable", body.Message)

	status, body = call(t, s.reservations, http.MethodGet, "/api/reservations", "")
	require.Equal(t, fiber.StatusOK, status)
	require.JSONEq(t, `[]`, string(body.Data))
}

func TestMissingFieldsAreRejectedEverywhere(t *testing.T) {
	s := startServices(t)

	cases := []struct {
		app  *fiber.App
		path string
	}{
		{s.roster, "/api/students"},
		{s.roster, "/api/teachers"},
		{s.roster, "/api/classes"},
		{s.activities, "/api/activities"},
		{s.activities, "/api/grades"},
		{s.reservations, "/api/reservations"},
	}

	for _, tc := range cases {
		status, body := call(t, tc.app, http.MethodPost, tc.path, `{}`)
		require.Equal(t, fiber.StatusBadRequest, status, tc.path)
		require.True(t, strings.HasPrefix(body.Message, "missing required fields"), tc.path)

		_, list := call(t, tc.app, http.MethodGet, tc.path, "")
		require.JSONEq(t, `[]`, string(list.Data), tc.path)
	}
}

func TestHealthAndMetricsAreServed(t *testing.T) {
	s := startServices(t)

	status, body := call(t, s.reservations, http.MethodGet, "/api/health", "")
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, body.Success)

	resp, err := s.reservations.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(raw), "http_requests_total")
}
