package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleviannaf/laboratory-app/internal/model"
)

// stubBridge implements backend.Bridge with canned queue responses.
type stubBridge struct {
	queue       []model.AttendanceQueueItemDTO
	queueErr    error
	completed   *model.AttendanceQueueItemDTO
	completeErr error

	listCalls     int
	completeCalls []string
	lastQuery     model.AttendanceQueueQuery
}

func (s *stubBridge) ListAttendanceQueue(ctx context.Context, q model.AttendanceQueueQuery) ([]model.AttendanceQueueItemDTO, error) {
	s.listCalls++
	s.lastQuery = q
	return s.queue, s.queueErr
}

func (s *stubBridge) CompleteAttendance(ctx context.Context, input model.CompleteAttendanceInput) (*model.AttendanceQueueItemDTO, error) {
	s.completeCalls = append(s.completeCalls, input.AttendanceID)
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

func TestMapQueueItemScheduled(t *testing.T) {
	dto := model.AttendanceQueueItemDTO{
		AttendanceID: "att-1",
		PatientID:    "pat-1",
		PatientName:  "Maria Souza",
		PatientCPF:   "12345678901",
		ExamDate:     "2026-02-13",
		Status:       "scheduled",
		ExamNames:    []string{"Hemograma"},
		UpdatedAt:    "2026-02-13T07:00:00",
	}

	item := MapQueueItem(dto)

	assert.Equal(t, "att-1", item.ID)
	assert.Equal(t, "Maria Souza", item.PatientName)
	assert.Equal(t, "#ATT-1", item.Protocol)
	assert.Equal(t, model.AttendanceStatusWaiting, item.Status)
	assert.Equal(t, model.AttendanceUrgencyNormal, item.Urgency)
	assert.Equal(t, "2026-02-13T00:00:00", item.ScheduledAt)
	assert.Empty(t, item.CompletedAt)
}

func TestMapQueueItemCompleted(t *testing.T) {
	dto := model.AttendanceQueueItemDTO{
		AttendanceID: "4f9d12ab-77aa-4f0e-9f1e-000000000000",
		PatientName:  "Joao Lima",
		ExamDate:     "2026-02-13T09:00:00",
		Status:       "completed",
		ExamNames:    []string{"Glicemia"},
		UpdatedAt:    "2026-02-13T10:15:00",
	}

	item := MapQueueItem(dto)

	assert.Equal(t, model.AttendanceStatusDone, item.Status)
	assert.Equal(t, "2026-02-13T10:15:00", item.CompletedAt)
	assert.Equal(t, "2026-02-13T09:00:00", item.ScheduledAt)
	assert.Equal(t, "#4F9D12AB", item.Protocol)
}

func TestLoadQueueOmitsBlankQuery(t *testing.T) {
	bridge := &stubBridge{}
	svc := NewService(bridge, nil)

	_, err := svc.LoadQueue(context.Background(), LoadRequest{Date: "2026-02-13", Query: "   "})
	require.NoError(t, err)

	assert.Equal(t, "2026-02-13", bridge.lastQuery.Date)
	assert.Empty(t, bridge.lastQuery.Query)

	_, err = svc.LoadQueue(context.Background(), LoadRequest{Date: "2026-02-13", Query: "  maria "})
	require.NoError(t, err)
	assert.Equal(t, "maria", bridge.lastQuery.Query)
}

func TestCompleteAndReload(t *testing.T) {
	bridge := &stubBridge{
		completed: &model.AttendanceQueueItemDTO{
			AttendanceID: "att-1",
			PatientName:  "Maria Souza",
			ExamDate:     "2026-02-13",
			Status:       "completed",
			UpdatedAt:    "2026-02-13T10:00:00",
		},
		queue: []model.AttendanceQueueItemDTO{
			{AttendanceID: "att-1", PatientName: "Maria Souza", ExamDate: "2026-02-13", Status: "completed", UpdatedAt: "2026-02-13T10:00:00"},
			{AttendanceID: "att-2", PatientName: "Joao Lima", ExamDate: "2026-02-13", Status: "scheduled"},
		},
	}
	svc := NewService(bridge, nil)
	store := NewStore()

	items, err := svc.CompleteAndReload(context.Background(), store, "att-1", LoadRequest{Date: "2026-02-13"})
	require.NoError(t, err)

	// Completion then reload, in that order.
	assert.Equal(t, []string{"att-1"}, bridge.completeCalls)
	assert.Equal(t, 1, bridge.listCalls)

	// The store carries the refetched snapshot, not a local mutation.
	require.Len(t, items, 2)
	assert.Equal(t, items, store.Items())
	assert.Equal(t, model.AttendanceStatusDone, items[0].Status)
	assert.Equal(t, "2026-02-13T10:00:00", items[0].CompletedAt)
	assert.Equal(t, model.AttendanceStatusWaiting, items[1].Status)
}

func TestCompleteAndReloadStopsOnCompletionFailure(t *testing.T) {
	bridge := &stubBridge{completeErr: errors.New("attendance not found")}
	svc := NewService(bridge, nil)
	store := NewStore()

	_, err := svc.CompleteAndReload(context.Background(), store, "att-9", LoadRequest{Date: "2026-02-13"})
	require.Error(t, err)
	assert.Zero(t, bridge.listCalls)
	assert.Empty(t, store.Items())
}

func TestReloadIntoDiscardsStaleResult(t *testing.T) {
	bridge := &stubBridge{
		queue: []model.AttendanceQueueItemDTO{
			{AttendanceID: "att-old", ExamDate: "2026-02-13", Status: "scheduled"},
		},
	}
	svc := NewService(bridge, nil)
	store := NewStore()

	// A newer reload begins before the first commits; the first result
	// is stale and must not overwrite the store.
	staleToken := store.begin()

	fresh, err := svc.ReloadInto(context.Background(), store, LoadRequest{Date: "2026-02-13"})
	require.NoError(t, err)
	require.Len(t, fresh, 1)

	stale := []model.AttendanceItem{{ID: "att-stale"}}
	assert.False(t, store.commit(staleToken, stale))
	assert.Equal(t, fresh, store.Items())
}

func TestLoadQueueError(t *testing.T) {
	bridge := &stubBridge{queueErr: errors.New("backend unavailable")}
	svc := NewService(bridge, nil)

	_, err := svc.LoadQueue(context.Background(), LoadRequest{Date: "2026-02-13"})
	assert.Error(t, err)
}
