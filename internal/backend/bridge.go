// Package backend defines the command surface of the native records
// backend. Services consume the Bridge and never the storage layer
// directly; failures cross this boundary as opaque text, normalized
// and classified by pkg/errors.
package backend

import (
	"context"

	"github.com/aleviannaf/laboratory-app/internal/model"
)

// Command names, used for metrics and logging.
const (
	CmdGetPatientRecord    = "get_patient_record"
	CmdListExamCatalog     = "list_exam_catalog"
	CmdCreateAttendance    = "create_attendance"
	CmdListAttendanceQueue = "list_attendance_queue"
	CmdCompleteAttendance  = "complete_attendance"
	CmdCreatePatient       = "create_patient"
	CmdListPatients        = "list_patients"
)

type Bridge interface {
	GetPatientRecord(ctx context.Context, patientID string) (*model.PatientRecordDTO, error)
	ListExamCatalog(ctx context.Context) ([]model.ExamCatalogItemDTO, error)
	CreateAttendance(ctx context.Context, input model.CreateAttendanceInput) (*model.PatientRecordEntryDTO, error)
	ListAttendanceQueue(ctx context.Context, q model.AttendanceQueueQuery) ([]model.AttendanceQueueItemDTO, error)
	CompleteAttendance(ctx context.Context, input model.CompleteAttendanceInput) (*model.AttendanceQueueItemDTO, error)
	CreatePatient(ctx context.Context, input model.CreatePatientInput) (*model.PatientView, error)
	ListPatients(ctx context.Context, query string) ([]model.PatientView, error)
}
