// Package local implements the backend Bridge in-process, dispatching
// commands to the repository layer.
package local

import (
	"context"
	"strings"
	"time"

	"github.com/aleviannaf/laboratory-app/internal/backend"
	"github.com/aleviannaf/laboratory-app/internal/model"
	"github.com/aleviannaf/laboratory-app/internal/repository"
	apperrors "github.com/aleviannaf/laboratory-app/pkg/errors"
	"github.com/aleviannaf/laboratory-app/pkg/metrics"
)

type Bridge struct {
	patients    repository.PatientRepository
	catalog     repository.CatalogRepository
	attendances repository.AttendanceRepository
	metrics     *metrics.Metrics
}

func NewBridge(
	patients repository.PatientRepository,
	catalog repository.CatalogRepository,
	attendances repository.AttendanceRepository,
	m *metrics.Metrics,
) *Bridge {
	return &Bridge{
		patients:    patients,
		catalog:     catalog,
		attendances: attendances,
		metrics:     m,
	}
}

func (b *Bridge) GetPatientRecord(ctx context.Context, patientID string) (*model.PatientRecordDTO, error) {
	defer b.observe(backend.CmdGetPatientRecord, time.Now())

	if strings.TrimSpace(patientID) == "" {
		return nil, apperrors.NewValidation("patient_id is required")
	}

	record, err := b.patients.GetRecord(ctx, patientID)
	if err != nil {
		return nil, b.fail(backend.CmdGetPatientRecord, err, "failed to fetch patient record")
	}
	return record, nil
}

func (b *Bridge) ListExamCatalog(ctx context.Context) ([]model.ExamCatalogItemDTO, error) {
	defer b.observe(backend.CmdListExamCatalog, time.Now())

	items, err := b.catalog.ListExamCatalog(ctx)
	if err != nil {
		return nil, b.fail(backend.CmdListExamCatalog, err, "failed to fetch exam catalog")
	}
	return items, nil
}

func (b *Bridge) CreateAttendance(ctx context.Context, input model.CreateAttendanceInput) (*model.PatientRecordEntryDTO, error) {
	defer b.observe(backend.CmdCreateAttendance, time.Now())

	if strings.TrimSpace(input.PatientID) == "" {
		return nil, apperrors.NewValidation("patient_id is required")
	}
	if strings.TrimSpace(input.ExamDate) == "" {
		return nil, apperrors.NewValidation("exam_date is required")
	}
	if len(input.Items) == 0 {
		return nil, apperrors.NewValidation("at least one exam item is required")
	}
	for _, item := range input.Items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, apperrors.NewValidation("exam item name is required")
		}
	}

	entry, err := b.attendances.Create(ctx, input)
	if err != nil {
		return nil, b.fail(backend.CmdCreateAttendance, err, "failed to create attendance")
	}
	return entry, nil
}

func (b *Bridge) ListAttendanceQueue(ctx context.Context, q model.AttendanceQueueQuery) ([]model.AttendanceQueueItemDTO, error) {
	defer b.observe(backend.CmdListAttendanceQueue, time.Now())

	if q.Date != "" && !isDateOnly(q.Date) {
		return nil, apperrors.NewValidation("date must be YYYY-MM-DD")
	}
	if q.Status != "" && q.Status != "waiting" && q.Status != "completed" {
		return nil, apperrors.NewValidation("status must be waiting or completed")
	}

	items, err := b.attendances.ListQueue(ctx, q)
	if err != nil {
		return nil, b.fail(backend.CmdListAttendanceQueue, err, "failed to fetch attendance queue")
	}
	return items, nil
}

func (b *Bridge) CompleteAttendance(ctx context.Context, input model.CompleteAttendanceInput) (*model.AttendanceQueueItemDTO, error) {
	defer b.observe(backend.CmdCompleteAttendance, time.Now())

	if strings.TrimSpace(input.AttendanceID) == "" {
		return nil, apperrors.NewValidation("attendance_id is required")
	}

	dto, err := b.attendances.Complete(ctx, input.AttendanceID)
	if err != nil {
		return nil, b.fail(backend.CmdCompleteAttendance, err, "failed to complete attendance")
	}
	return dto, nil
}

func (b *Bridge) CreatePatient(ctx context.Context, input model.CreatePatientInput) (*model.PatientView, error) {
	defer b.observe(backend.CmdCreatePatient, time.Now())

	if strings.TrimSpace(input.FullName) == "" {
		return nil, apperrors.NewValidation("full_name is required")
	}
	if strings.TrimSpace(input.CPF) == "" {
		return nil, apperrors.NewValidation("cpf is required")
	}

	view, err := b.patients.Insert(ctx, input)
	if err != nil {
		return nil, b.fail(backend.CmdCreatePatient, err, "failed to persist patient")
	}
	return view, nil
}

func (b *Bridge) ListPatients(ctx context.Context, query string) ([]model.PatientView, error) {
	defer b.observe(backend.CmdListPatients, time.Now())

	patients, err := b.patients.List(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, b.fail(backend.CmdListPatients, err, "failed to list patients")
	}
	return patients, nil
}

func (b *Bridge) observe(command string, start time.Time) {
	if b.metrics == nil {
		return
	}
	b.metrics.BridgeInvocations.WithLabelValues(command).Inc()
	b.metrics.BridgeLatency.WithLabelValues(command).Observe(time.Since(start).Seconds())
}

func (b *Bridge) fail(command string, err error, fallback string) error {
	if b.metrics != nil {
		b.metrics.BridgeFailures.WithLabelValues(command).Inc()
	}
	return apperrors.Classify(err, fallback)
}

func isDateOnly(value string) bool {
	if len(value) != 10 || value[4] != '-' || value[7] != '-' {
		return false
	}
	for i, c := range value {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
