package repository

import (
	"context"

	"github.com/aleviannaf/laboratory-app/internal/model"
)

type PatientRepository interface {
	Insert(ctx context.Context, input model.CreatePatientInput) (*model.PatientView, error)
	List(ctx context.Context, query string) ([]model.PatientView, error)
	GetRecord(ctx context.Context, patientID string) (*model.PatientRecordDTO, error)
}

type CatalogRepository interface {
	ListExamCatalog(ctx context.Context) ([]model.ExamCatalogItemDTO, error)
}

type AttendanceRepository interface {
	Create(ctx context.Context, input model.CreateAttendanceInput) (*model.PatientRecordEntryDTO, error)
	ListQueue(ctx context.Context, q model.AttendanceQueueQuery) ([]model.AttendanceQueueItemDTO, error)
	Complete(ctx context.Context, attendanceID string) (*model.AttendanceQueueItemDTO, error)
}
