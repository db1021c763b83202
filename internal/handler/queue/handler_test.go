package queue

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleviannaf/laboratory-app/config"
	"github.com/aleviannaf/laboratory-app/internal/model"
	queuesvc "github.com/aleviannaf/laboratory-app/internal/service/queue"
	"github.com/aleviannaf/laboratory-app/internal/service/toast"
)

type stubBridge struct {
	queue       []model.AttendanceQueueItemDTO
	completed   *model.AttendanceQueueItemDTO
	completeErr error
}

func (s *stubBridge) ListAttendanceQueue(ctx context.Context, q model.AttendanceQueueQuery) ([]model.AttendanceQueueItemDTO, error) {
	return s.queue, nil
}

func (s *stubBridge) CompleteAttendance(ctx context.Context, input model.CompleteAttendanceInput) (*model.AttendanceQueueItemDTO, error) {
	return s.completed, s.completeErr
}

func (s *stubBridge) GetPatientRecord(ctx context.Context, patientID string) (*model.PatientRecordDTO, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBridge) ListExamCatalog(ctx context.Context) ([]model.ExamCatalogItemDTO, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBridge) CreateAttendance(ctx context.Context, input model.CreateAttendanceInput) (*model.PatientRecordEntryDTO, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBridge) CreatePatient(ctx context.Context, input model.CreatePatientInput) (*model.PatientView, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBridge) ListPatients(ctx context.Context, query string) ([]model.PatientView, error) {
	return nil, errors.New("not implemented")
}

func newTestRouter(bridge *stubBridge) (*gin.Engine, *toast.Service) {
	gin.SetMode(gin.TestMode)

	svc := queuesvc.NewService(bridge, nil)
	store := queuesvc.NewStore()
	toasts := toast.NewService(config.ToastConfig{SuccessDuration: time.Minute, ErrorDuration: time.Minute})

	engine := gin.New()
	NewHandler(svc, store, toasts).RegisterRoutes(engine.Group("/api/v1"))
	return engine, toasts
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestListQueue(t *testing.T) {
	bridge := &stubBridge{
		queue: []model.AttendanceQueueItemDTO{
			{AttendanceID: "att-1", PatientName: "Maria Souza", ExamDate: "2026-02-13", Status: "scheduled", ExamNames: []string{"Hemograma"}},
			{AttendanceID: "att-2", PatientName: "Joao Lima", ExamDate: "2026-02-13", Status: "completed", UpdatedAt: "2026-02-13T10:15:00"},
		},
	}
	engine, _ := newTestRouter(bridge)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances?date=2026-02-13", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	var items []model.AttendanceItem
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, model.AttendanceStatusWaiting, items[0].Status)
	assert.Equal(t, model.AttendanceStatusDone, items[1].Status)
}

func TestListQueueTabFilter(t *testing.T) {
	bridge := &stubBridge{
		queue: []model.AttendanceQueueItemDTO{
			{AttendanceID: "att-1", ExamDate: "2026-02-13", Status: "scheduled"},
			{AttendanceID: "att-2", ExamDate: "2026-02-13", Status: "completed", UpdatedAt: "2026-02-13T10:15:00"},
		},
	}
	engine, _ := newTestRouter(bridge)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances?date=2026-02-13&tab=completed", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var items []model.AttendanceItem
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "att-2", items[0].ID)
}

func TestCountByTab(t *testing.T) {
	bridge := &stubBridge{
		queue: []model.AttendanceQueueItemDTO{
			{AttendanceID: "att-1", ExamDate: "2026-02-13", Status: "scheduled"},
			{AttendanceID: "att-2", ExamDate: "2026-02-13", Status: "completed", UpdatedAt: "2026-02-13T10:15:00"},
		},
	}
	engine, _ := newTestRouter(bridge)

	// Counts read the store snapshot, so load it first.
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/attendances?date=2026-02-13", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/attendances/counts?date=2026-02-13", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var counts model.AttendanceTabCounts
	require.NoError(t, json.Unmarshal(resp.Data, &counts))
	assert.Equal(t, model.AttendanceTabCounts{Scheduled: 1, Completed: 1}, counts)
}

func TestCompleteAttendance(t *testing.T) {
	bridge := &stubBridge{
		completed: &model.AttendanceQueueItemDTO{AttendanceID: "att-1", ExamDate: "2026-02-13", Status: "completed", UpdatedAt: "2026-02-13T10:00:00"},
		queue: []model.AttendanceQueueItemDTO{
			{AttendanceID: "att-1", ExamDate: "2026-02-13", Status: "completed", UpdatedAt: "2026-02-13T10:00:00"},
		},
	}
	engine, toasts := newTestRouter(bridge)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendances/att-1/complete?date=2026-02-13", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	items := toasts.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Atendimento concluido.", items[0].Message)
	assert.Equal(t, model.ToastTypeSuccess, items[0].Type)
}

func TestCompleteAttendanceNotFound(t *testing.T) {
	bridge := &stubBridge{completeErr: errors.New("attendance not found")}
	engine, toasts := newTestRouter(bridge)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendances/att-9/complete?date=2026-02-13", nil)
	engine.ServeHTTP(w, req)

	// The stub returns an unclassified error, so the backend fallback
	// status applies.
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, toasts.Items())
}
