package model

type RecordExamStatus string

const (
	RecordExamStatusPending   RecordExamStatus = "pending"
	RecordExamStatusCompleted RecordExamStatus = "completed"
)

// Backend DTOs for the patient clinical record.

type PatientRecordExamItemDTO struct {
	ExamItemID      string `db:"exam_item_id" json:"exam_item_id"`
	Name            string `db:"name" json:"name"`
	Unit            string `db:"unit" json:"unit,omitempty"`
	Method          string `db:"method" json:"method,omitempty"`
	ReferenceRange  string `db:"reference_range" json:"reference_range,omitempty"`
	ResultValue     string `db:"result_value" json:"result_value,omitempty"`
	ResultFlag      string `db:"result_flag" json:"result_flag,omitempty"`
	ReportAvailable bool   `db:"report_available" json:"report_available"`
}

type PatientRecordEntryDTO struct {
	ExamID        string                     `db:"exam_id" json:"exam_id"`
	ExamDate      string                     `db:"exam_date" json:"exam_date"`
	Status        string                     `db:"status" json:"status"`
	RequesterName string                     `db:"requester_name" json:"requester_name,omitempty"`
	Items         []PatientRecordExamItemDTO `json:"items"`
}

type PatientRecordDTO struct {
	Patient PatientView             `json:"patient"`
	Entries []PatientRecordEntryDTO `json:"entries"`
}

// UI view models, denormalized and display-formatted.

type RecordExam struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Protocol        string           `json:"protocol"`
	Status          RecordExamStatus `json:"status"`
	ReportAvailable bool             `json:"report_available"`
}

type RecordEntry struct {
	ID    string       `json:"id"`
	Date  string       `json:"date"`
	Exams []RecordExam `json:"exams"`
}

// PatientRecordView aggregates the patient with their record entries.
// Email is derived from the full name for display; it is not an
// authoritative contact channel.
type PatientRecordView struct {
	Patient Patient       `json:"patient"`
	Email   string        `json:"email"`
	Entries []RecordEntry `json:"entries"`
}

// Attendance creation through the record surface.

type CreateAttendanceItemInput struct {
	Name           string `json:"name" binding:"required"`
	Unit           string `json:"unit,omitempty"`
	Method         string `json:"method,omitempty"`
	ReferenceRange string `json:"reference_range,omitempty"`
}

type CreateAttendanceInput struct {
	PatientID     string                      `json:"patient_id" binding:"required"`
	ExamDate      string                      `json:"exam_date" binding:"required,civildate"`
	RequesterID   string                      `json:"requester_id,omitempty"`
	Status        string                      `json:"status,omitempty"`
	ProcedureType string                      `json:"procedure_type,omitempty"`
	DeliveredTo   string                      `json:"delivered_to,omitempty"`
	Notes         string                      `json:"notes,omitempty"`
	Items         []CreateAttendanceItemInput `json:"items" binding:"required,min=1,dive"`
}

// CreateAttendancePayload is the UI-side submission: exams chosen by
// catalog id, resolved to names before invoking the backend. The
// patient id comes from the route, not the body.
type CreateAttendancePayload struct {
	PatientID   string   `json:"patient_id,omitempty"`
	ExamDate    string   `json:"exam_date" binding:"required,civildate"`
	RequesterID string   `json:"requester_id,omitempty"`
	ExamIDs     []string `json:"exam_ids" binding:"required,min=1"`
}
