package record

import (
	"context"
	"fmt"

	"github.com/aleviannaf/laboratory-app/internal/backend"
	"github.com/aleviannaf/laboratory-app/internal/model"
	"github.com/aleviannaf/laboratory-app/internal/service/catalog"
	apperrors "github.com/aleviannaf/laboratory-app/pkg/errors"
)

// Service aggregates patient clinical records. Records are fetched
// fresh per lookup and reloaded wholesale after any mutating action;
// there is no partial update.
type Service struct {
	bridge  backend.Bridge
	catalog *catalog.Service
}

func NewService(bridge backend.Bridge, catalogSvc *catalog.Service) *Service {
	return &Service{bridge: bridge, catalog: catalogSvc}
}

func (s *Service) GetRecord(ctx context.Context, patientID string) (*model.PatientRecordView, error) {
	dto, err := s.bridge.GetPatientRecord(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient record: %w", err)
	}

	view := MapRecord(*dto)
	return &view, nil
}

// CreateAttendance resolves the chosen catalog exam ids to items and
// invokes the backend creation command. The caller re-fetches the
// record afterwards to observe the new entry.
func (s *Service) CreateAttendance(ctx context.Context, payload model.CreateAttendancePayload) (*model.RecordEntry, error) {
	if len(payload.ExamIDs) == 0 {
		return nil, apperrors.NewValidation("Selecione ao menos um exame.")
	}

	// Warm the cache so FindByID can resolve every selection.
	if _, err := s.catalog.List(ctx, ""); err != nil {
		return nil, fmt.Errorf("failed to load exam catalog: %w", err)
	}

	items := make([]model.CreateAttendanceItemInput, 0, len(payload.ExamIDs))
	for _, examID := range payload.ExamIDs {
		exam, ok := s.catalog.FindByID(examID)
		if !ok {
			return nil, apperrors.NewValidation("Exame invalido para criacao do atendimento.")
		}
		items = append(items, model.CreateAttendanceItemInput{Name: exam.Name})
	}

	input := model.CreateAttendanceInput{
		PatientID:   payload.PatientID,
		ExamDate:    payload.ExamDate,
		RequesterID: payload.RequesterID,
		Items:       items,
	}

	created, err := s.bridge.CreateAttendance(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance: %w", err)
	}

	entry := MapEntry(*created)
	return &entry, nil
}
