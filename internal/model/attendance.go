package model

type AttendanceStatus string

const (
	AttendanceStatusWaiting AttendanceStatus = "waiting"
	AttendanceStatusDone    AttendanceStatus = "done"
)

type AttendanceTab string

const (
	AttendanceTabScheduled AttendanceTab = "scheduled"
	AttendanceTabCompleted AttendanceTab = "completed"
)

type AttendanceUrgency string

const (
	AttendanceUrgencyNormal    AttendanceUrgency = "normal"
	AttendanceUrgencyUrgent    AttendanceUrgency = "urgent"
	AttendanceUrgencyEmergency AttendanceUrgency = "emergency"
)

// AttendanceItem is the queue-facing view of one attendance.
// Timestamps are civil datetime strings (YYYY-MM-DDTHH:MM:SS) as stored
// by the backend; CompletedAt is set iff Status is done.
type AttendanceItem struct {
	ID          string            `json:"id"`
	PatientName string            `json:"patient_name"`
	Protocol    string            `json:"protocol"`
	Exams       []string          `json:"exams"`
	Urgency     AttendanceUrgency `json:"urgency"`
	Status      AttendanceStatus  `json:"status"`
	ScheduledAt string            `json:"scheduled_at"`
	CompletedAt string            `json:"completed_at,omitempty"`
}

type AttendanceTabCounts struct {
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
}

// AttendanceQueueItemDTO mirrors the backend queue listing row.
type AttendanceQueueItemDTO struct {
	AttendanceID string   `db:"attendance_id" json:"attendance_id"`
	PatientID    string   `db:"patient_id" json:"patient_id"`
	PatientName  string   `db:"patient_name" json:"patient_name"`
	PatientCPF   string   `db:"patient_cpf" json:"patient_cpf"`
	ExamDate     string   `db:"exam_date" json:"exam_date"`
	Status       string   `db:"status" json:"status"`
	ExamNames    []string `json:"exam_names"`
	UpdatedAt    string   `db:"updated_at" json:"updated_at"`
}

// AttendanceQueueQuery narrows the backend queue listing. Empty fields
// are omitted from the command invocation.
type AttendanceQueueQuery struct {
	Date   string `json:"date,omitempty" form:"date"`
	Status string `json:"status,omitempty" form:"status"`
	Query  string `json:"query,omitempty" form:"query"`
}

type CompleteAttendanceInput struct {
	AttendanceID string `json:"attendance_id" binding:"required"`
}
