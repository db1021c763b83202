package queue

import (
	"context"
	"fmt"
	"strings"

	"github.com/aleviannaf/laboratory-app/internal/backend"
	"github.com/aleviannaf/laboratory-app/internal/model"
	"github.com/aleviannaf/laboratory-app/pkg/metrics"
)

// LoadRequest scopes a queue load. An empty or whitespace-only query
// is omitted from the backend invocation.
type LoadRequest struct {
	Date  string
	Query string
}

// Service is the backend-synchronized attendance queue. After a
// completion the queue must be re-fetched; the server state is the
// sole source of truth and no optimistic local mutation is applied.
type Service struct {
	bridge  backend.Bridge
	metrics *metrics.Metrics
}

func NewService(bridge backend.Bridge, m *metrics.Metrics) *Service {
	return &Service{bridge: bridge, metrics: m}
}

// LoadQueue fetches and maps the attendance queue for the given scope.
func (s *Service) LoadQueue(ctx context.Context, req LoadRequest) ([]model.AttendanceItem, error) {
	query := model.AttendanceQueueQuery{Date: req.Date}
	if trimmed := strings.TrimSpace(req.Query); trimmed != "" {
		query.Query = trimmed
	}

	dtos, err := s.bridge.ListAttendanceQueue(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance queue: %w", err)
	}

	if s.metrics != nil {
		s.metrics.QueueReloads.Inc()
	}

	items := make([]model.AttendanceItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, MapQueueItem(dto))
	}
	return items, nil
}

// CompleteAttendance invokes the backend completion command and
// returns the mapped, updated item. Callers reload the queue
// afterwards; the returned item is not merged into any local state.
func (s *Service) CompleteAttendance(ctx context.Context, attendanceID string) (*model.AttendanceItem, error) {
	dto, err := s.bridge.CompleteAttendance(ctx, model.CompleteAttendanceInput{AttendanceID: attendanceID})
	if err != nil {
		return nil, fmt.Errorf("failed to complete attendance: %w", err)
	}

	if s.metrics != nil {
		s.metrics.AttendancesCompleted.Inc()
	}

	item := MapQueueItem(*dto)
	return &item, nil
}

// CompleteAndReload performs the completion and then reloads the queue
// into the store. The two backend calls are strictly sequential.
func (s *Service) CompleteAndReload(ctx context.Context, store *Store, attendanceID string, req LoadRequest) ([]model.AttendanceItem, error) {
	if _, err := s.CompleteAttendance(ctx, attendanceID); err != nil {
		return nil, err
	}
	return s.ReloadInto(ctx, store, req)
}

// ReloadInto loads the queue and commits the snapshot to the store
// under a request version token. A stale result (a newer reload began
// meanwhile) is discarded rather than overwriting fresher state.
func (s *Service) ReloadInto(ctx context.Context, store *Store, req LoadRequest) ([]model.AttendanceItem, error) {
	token := store.begin()

	items, err := s.LoadQueue(ctx, req)
	if err != nil {
		return nil, err
	}

	if !store.commit(token, items) && s.metrics != nil {
		s.metrics.StaleResultsDiscarded.Inc()
	}
	return items, nil
}

// MapQueueItem converts a backend queue row into the UI item shape.
// A completed status maps to done and carries the row's update
// timestamp as the completion time; everything else is waiting. A
// bare-date exam_date is coerced to a full civil timestamp.
func MapQueueItem(dto model.AttendanceQueueItemDTO) model.AttendanceItem {
	status := model.AttendanceStatusWaiting
	completedAt := ""
	if strings.EqualFold(dto.Status, "completed") {
		status = model.AttendanceStatusDone
		completedAt = dto.UpdatedAt
	}

	return model.AttendanceItem{
		ID:          dto.AttendanceID,
		PatientName: dto.PatientName,
		Protocol:    protocolFor(dto.AttendanceID),
		Exams:       dto.ExamNames,
		Urgency:     model.AttendanceUrgencyNormal,
		Status:      status,
		ScheduledAt: coerceTimestamp(dto.ExamDate),
		CompletedAt: completedAt,
	}
}

// protocolFor derives the staff-facing display code from the internal
// attendance identifier.
func protocolFor(attendanceID string) string {
	code := attendanceID
	if len(code) > 8 {
		code = code[:8]
	}
	return "#" + strings.ToUpper(code)
}

func coerceTimestamp(examDate string) string {
	if len(examDate) == 10 {
		return examDate + "T00:00:00"
	}
	return examDate
}
