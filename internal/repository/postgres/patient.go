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

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Insert(ctx context.Context, input model.CreatePatientInput) (*model.PatientView, error) {
	query := `
		INSERT INTO patients (id, full_name, cpf, birth_date, sex, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, full_name, cpf, birth_date, sex, phone, address, created_at, updated_at
	`
	now := civilNow()

	var view model.PatientView
	err := r.db.GetContext(ctx, &view, query,
		uuid.New().String(),
		input.FullName,
		input.CPF,
		input.BirthDate,
		input.Sex,
		input.Phone,
		input.Address,
		now,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("conflict while saving patient")
		}
		return nil, fmt.Errorf("failed to persist patient: %w", err)
	}
	return &view, nil
}

func (r *patientRepository) List(ctx context.Context, query string) ([]model.PatientView, error) {
	var patients []model.PatientView
	var err error

	if query == "" {
		err = r.db.SelectContext(ctx, &patients, `
			SELECT id, full_name, cpf, birth_date, sex, phone, address, created_at, updated_at
			FROM patients
			ORDER BY created_at DESC
		`)
	} else {
		like := "%" + query + "%"
		err = r.db.SelectContext(ctx, &patients, `
			SELECT id, full_name, cpf, birth_date, sex, phone, address, created_at, updated_at
			FROM patients
			WHERE full_name ILIKE $1 OR cpf LIKE $1
			ORDER BY created_at DESC
		`, like)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) GetRecord(ctx context.Context, patientID string) (*model.PatientRecordDTO, error) {
	var patient model.PatientView
	err := r.db.GetContext(ctx, &patient, `
		SELECT id, full_name, cpf, birth_date, sex, phone, address, created_at, updated_at
		FROM patients
		WHERE id = $1
	`, patientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("patient not found")
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	type entryRow struct {
		ExamID        string         `db:"exam_id"`
		ExamDate      string         `db:"exam_date"`
		Status        string         `db:"status"`
		RequesterName sql.NullString `db:"requester_name"`
	}
	var entryRows []entryRow
	err = r.db.SelectContext(ctx, &entryRows, `
		SELECT e.id AS exam_id, e.exam_date, e.status, r.name AS requester_name
		FROM exams e
		LEFT JOIN requesters r ON r.id = e.requester_id
		WHERE e.patient_id = $1
		ORDER BY e.exam_date DESC, e.created_at DESC
	`, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list record entries: %w", err)
	}

	entries := make([]model.PatientRecordEntryDTO, 0, len(entryRows))
	for _, row := range entryRows {
		items, err := r.listEntryItems(ctx, row.ExamID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, model.PatientRecordEntryDTO{
			ExamID:        row.ExamID,
			ExamDate:      row.ExamDate,
			Status:        row.Status,
			RequesterName: row.RequesterName.String,
			Items:         items,
		})
	}

	return &model.PatientRecordDTO{Patient: patient, Entries: entries}, nil
}

func (r *patientRepository) listEntryItems(ctx context.Context, examID string) ([]model.PatientRecordExamItemDTO, error) {
	type itemRow struct {
		ExamItemID     string         `db:"exam_item_id"`
		Name           string         `db:"name"`
		Unit           sql.NullString `db:"unit"`
		Method         sql.NullString `db:"method"`
		ReferenceRange sql.NullString `db:"reference_range"`
		ResultValue    sql.NullString `db:"result_value"`
		ResultFlag     sql.NullString `db:"result_flag"`
	}
	var rows []itemRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id AS exam_item_id, name, unit, method, reference_range, result_value, result_flag
		FROM exam_items
		WHERE exam_id = $1
		ORDER BY created_at ASC
	`, examID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exam items: %w", err)
	}

	items := make([]model.PatientRecordExamItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.PatientRecordExamItemDTO{
			ExamItemID:     row.ExamItemID,
			Name:           row.Name,
			Unit:           row.Unit.String,
			Method:         row.Method.String,
			ReferenceRange: row.ReferenceRange.String,
			ResultValue:    row.ResultValue.String,
			ResultFlag:     row.ResultFlag.String,
			// A report exists once a result value has been recorded.
			ReportAvailable: row.ResultValue.Valid && row.ResultValue.String != "",
		})
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
