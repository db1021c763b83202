package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/aleviannaf/laboratory-app/internal/model"
	"github.com/aleviannaf/laboratory-app/internal/repository"
)

type attendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, input model.CreateAttendanceInput) (*model.PatientRecordEntryDTO, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	status := input.Status
	if status == "" {
		status = string(model.AttendanceStatusWaiting)
	}

	examID := uuid.New().String()
	now := civilNow()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO exams (id, patient_id, requester_id, exam_date, status, procedure_type, delivered_to, notes, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10)
	`, examID, input.PatientID, input.RequesterID, input.ExamDate, status,
		input.ProcedureType, input.DeliveredTo, input.Notes, now, now)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("patient not found")
		}
		return nil, fmt.Errorf("failed to create attendance: %w", err)
	}

	items := make([]model.PatientRecordExamItemDTO, 0, len(input.Items))
	for _, item := range input.Items {
		itemID := uuid.New().String()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO exam_items (id, exam_id, name, unit, method, reference_range, created_at, updated_at)
			VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)
		`, itemID, examID, item.Name, item.Unit, item.Method, item.ReferenceRange, now, now)
		if err != nil {
			return nil, fmt.Errorf("failed to create exam item: %w", err)
		}
		items = append(items, model.PatientRecordExamItemDTO{
			ExamItemID:     itemID,
			Name:           item.Name,
			Unit:           item.Unit,
			Method:         item.Method,
			ReferenceRange: item.ReferenceRange,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit attendance: %w", err)
	}

	return &model.PatientRecordEntryDTO{
		ExamID:   examID,
		ExamDate: input.ExamDate,
		Status:   status,
		Items:    items,
	}, nil
}

func (r *attendanceRepository) ListQueue(ctx context.Context, q model.AttendanceQueueQuery) ([]model.AttendanceQueueItemDTO, error) {
	query := `
		SELECT e.id AS attendance_id, e.patient_id, p.full_name AS patient_name,
		       p.cpf AS patient_cpf, e.exam_date, e.status, e.updated_at
		FROM exams e
		JOIN patients p ON p.id = e.patient_id
		WHERE 1=1
	`
	args := []interface{}{}

	if q.Date != "" {
		args = append(args, q.Date)
		query += fmt.Sprintf(" AND substr(e.exam_date, 1, 10) = $%d", len(args))
	}
	if q.Status != "" {
		args = append(args, q.Status)
		query += fmt.Sprintf(" AND e.status = $%d", len(args))
	}
	if q.Query != "" {
		args = append(args, "%"+q.Query+"%")
		query += fmt.Sprintf(" AND (p.full_name ILIKE $%d OR p.cpf LIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY e.exam_date ASC, e.created_at ASC"

	var rows []model.AttendanceQueueItemDTO
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch attendance queue: %w", err)
	}

	for i := range rows {
		names, err := r.listExamNames(ctx, rows[i].AttendanceID)
		if err != nil {
			return nil, err
		}
		rows[i].ExamNames = names
	}
	return rows, nil
}

func (r *attendanceRepository) Complete(ctx context.Context, attendanceID string) (*model.AttendanceQueueItemDTO, error) {
	var dto model.AttendanceQueueItemDTO
	err := r.db.GetContext(ctx, &dto, `
		UPDATE exams e
		SET status = 'completed', updated_at = $2
		FROM patients p
		WHERE e.id = $1 AND p.id = e.patient_id
		RETURNING e.id AS attendance_id, e.patient_id, p.full_name AS patient_name,
		          p.cpf AS patient_cpf, e.exam_date, e.status, e.updated_at
	`, attendanceID, civilNow())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("attendance not found")
		}
		return nil, fmt.Errorf("failed to complete attendance: %w", err)
	}

	names, err := r.listExamNames(ctx, dto.AttendanceID)
	if err != nil {
		return nil, err
	}
	dto.ExamNames = names
	return &dto, nil
}

func (r *attendanceRepository) listExamNames(ctx context.Context, examID string) ([]string, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names, `
		SELECT name FROM exam_items WHERE exam_id = $1 ORDER BY created_at ASC
	`, examID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exam names: %w", err)
	}
	return names, nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
